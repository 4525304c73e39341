package systems

import (
	"log"

	"github.com/decker502/whackamole/pkg/components"
	"github.com/decker502/whackamole/pkg/config"
	"github.com/decker502/whackamole/pkg/ecs"
	"github.com/decker502/whackamole/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// CursorSystem 木槌光标系统
// 光标是一个带 CursorComponent 和 PositionComponent 的实体。
// 有光标图片时隐藏系统光标，并在指针位置绘制缩放后的图片；
// 图片缺失时保留系统光标。
type CursorSystem struct {
	entityManager  *ecs.EntityManager
	lastCursorMode ebiten.CursorModeType
	modeApplied    bool
	setCursorMode  func(ebiten.CursorModeType)
}

// NewCursorSystem 创建光标系统和光标实体
// img 会被缩放为 config.CursorSize 见方，热点位于左上角
func NewCursorSystem(em *ecs.EntityManager, img *ebiten.Image) *CursorSystem {
	cursor := &components.CursorComponent{
		Size: config.CursorSize,
	}
	if img != nil {
		cursor.Image = utils.ScaleImage(img, config.CursorSize, config.CursorSize)
	} else {
		log.Printf("[CursorSystem] No cursor image, keeping system cursor")
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, cursor)
	ecs.AddComponent(em, id, &components.PositionComponent{})

	return &CursorSystem{
		entityManager: em,
		setCursorMode: ebiten.SetCursorMode,
	}
}

// DesiredMode 返回当前应使用的系统光标模式
// 只要有一个光标实体带图片就隐藏系统光标
func (s *CursorSystem) DesiredMode() ebiten.CursorModeType {
	for _, id := range ecs.GetEntitiesWith1[*components.CursorComponent](s.entityManager) {
		if cursor, _ := ecs.GetComponent[*components.CursorComponent](s.entityManager, id); cursor.Image != nil {
			return ebiten.CursorModeHidden
		}
	}
	return ebiten.CursorModeVisible
}

// Update 让光标实体跟随指针 (x, y)，只在模式变化时调用 ebiten.SetCursorMode
func (s *CursorSystem) Update(x, y int) {
	for _, id := range ecs.GetEntitiesWith2[*components.CursorComponent, *components.PositionComponent](s.entityManager) {
		cursor, _ := ecs.GetComponent[*components.CursorComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		pos.X = float64(x) - cursor.AnchorX
		pos.Y = float64(y) - cursor.AnchorY
	}

	mode := s.DesiredMode()
	if s.modeApplied && s.lastCursorMode == mode {
		return
	}
	s.setCursorMode(mode)
	s.lastCursorMode = mode
	s.modeApplied = true
}

// Draw 在光标实体的位置绘制图片
func (s *CursorSystem) Draw(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith2[*components.CursorComponent, *components.PositionComponent](s.entityManager) {
		cursor, _ := ecs.GetComponent[*components.CursorComponent](s.entityManager, id)
		if cursor.Image == nil {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(pos.X, pos.Y)
		screen.DrawImage(cursor.Image, op)
	}
}

// Restore 恢复系统光标（场景退出时调用）
func (s *CursorSystem) Restore() {
	if s.modeApplied && s.lastCursorMode == ebiten.CursorModeVisible {
		return
	}
	s.setCursorMode(ebiten.CursorModeVisible)
	s.lastCursorMode = ebiten.CursorModeVisible
	s.modeApplied = true
}
