package systems

import (
	"fmt"
	"image/color"
	"log"

	"github.com/decker502/whackamole/pkg/components"
	"github.com/decker502/whackamole/pkg/config"
	"github.com/decker502/whackamole/pkg/ecs"
	"github.com/decker502/whackamole/pkg/mole"
	"github.com/decker502/whackamole/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 对话框文字
const (
	dialogButtonLabel = "OK"
	winTitle          = "Congratulations"
	loseTitle         = "Game Over"
	winMessage        = "You won the game!"
	loseMessageFormat = "Time's up! Final score: %d"
)

// OutcomeText 返回一局结果对应的对话框标题与消息
func OutcomeText(outcome mole.Outcome) (title, message string) {
	if outcome.Phase == mole.PhaseWon {
		return winTitle, winMessage
	}
	return loseTitle, fmt.Sprintf(loseMessageFormat, outcome.Score)
}

// DialogSystem 模态对话框系统
//
// 职责：
//   - 实现 mole.Announcer，在一局结束时创建结果对话框实体
//   - 对话框可见期间由场景冻结计时器，只处理对话框输入
//   - 点击按钮或按下回车/空格关闭，关闭时销毁对话框实体并调用 OnClose
type DialogSystem struct {
	entityManager *ecs.EntityManager
	windowWidth   int
	windowHeight  int
	titleFont     *text.GoTextFace
	messageFont   *text.GoTextFace
	overlay       *ebiten.Image
	onClose       func()
}

// NewDialogSystem 创建对话框系统
// 字体可为 nil，此时只绘制对话框框体
func NewDialogSystem(em *ecs.EntityManager, windowWidth, windowHeight int, titleFont, messageFont *text.GoTextFace) *DialogSystem {
	return &DialogSystem{
		entityManager: em,
		windowWidth:   windowWidth,
		windowHeight:  windowHeight,
		titleFont:     titleFont,
		messageFont:   messageFont,
	}
}

// Announce 实现 mole.Announcer
func (s *DialogSystem) Announce(outcome mole.Outcome) {
	title, message := OutcomeText(outcome)
	s.Show(title, message)
}

// Show 显示对话框
// 已有可见对话框时替换其内容，否则创建新的对话框实体（窗口居中）
func (s *DialogSystem) Show(title, message string) {
	if _, dialog, _, ok := s.activeDialog(); ok {
		dialog.Title = title
		dialog.Message = message
		log.Printf("[DialogSystem] Replacing dialog: %s - %s", title, message)
		return
	}

	id := s.entityManager.CreateEntity()
	x, y := s.centeredPosition()
	ecs.AddComponent(s.entityManager, id, &components.DialogComponent{
		Title:       title,
		Message:     message,
		ButtonLabel: dialogButtonLabel,
		IsVisible:   true,
		Width:       config.DialogWidth,
		Height:      config.DialogHeight,
		OnClose:     s.onClose,
	})
	ecs.AddComponent(s.entityManager, id, &components.PositionComponent{X: x, Y: y})
	log.Printf("[DialogSystem] Showing dialog entity %d: %s - %s", id, title, message)
}

// SetOnClose 设置之后创建的对话框的关闭回调
func (s *DialogSystem) SetOnClose(fn func()) {
	s.onClose = fn
}

// IsVisible 返回是否有可见的对话框
func (s *DialogSystem) IsVisible() bool {
	_, _, _, ok := s.activeDialog()
	return ok
}

// Dismiss 关闭对话框，标记实体待删除并触发回调
func (s *DialogSystem) Dismiss() {
	id, dialog, _, ok := s.activeDialog()
	if !ok {
		return
	}
	dialog.IsVisible = false
	s.entityManager.DestroyEntity(id)
	log.Printf("[DialogSystem] Dialog entity %d dismissed", id)
	if dialog.OnClose != nil {
		dialog.OnClose()
	}
}

// activeDialog 查询第一个可见的对话框实体
func (s *DialogSystem) activeDialog() (ecs.EntityID, *components.DialogComponent, *components.PositionComponent, bool) {
	for _, id := range ecs.GetEntitiesWith2[*components.DialogComponent, *components.PositionComponent](s.entityManager) {
		dialog, _ := ecs.GetComponent[*components.DialogComponent](s.entityManager, id)
		if !dialog.IsVisible {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		return id, dialog, pos, true
	}
	return 0, nil, nil, false
}

// centeredPosition 返回对话框在窗口居中时的左上角坐标
func (s *DialogSystem) centeredPosition() (x, y float64) {
	return (float64(s.windowWidth) - config.DialogWidth) / 2, (float64(s.windowHeight) - config.DialogHeight) / 2
}

// buttonRect 返回按钮区域 (x, y, w, h)
// 按钮水平居中，位于对话框底部
func buttonRect(dialog *components.DialogComponent, pos *components.PositionComponent) (x, y, w, h float64) {
	w, h = config.DialogButtonWidth, config.DialogButtonHeight
	x = pos.X + (dialog.Width-w)/2
	y = pos.Y + dialog.Height - h - 20
	return x, y, w, h
}

// HandleInput 处理一帧的对话框输入
//
// 参数：
//   - pressed, x, y: 指针是否刚按下及位置
//   - confirm: 确认键是否刚按下
//
// 返回：
//   - bool: 对话框是否在本次调用中被关闭
func (s *DialogSystem) HandleInput(pressed bool, x, y int, confirm bool) bool {
	_, dialog, pos, ok := s.activeDialog()
	if !ok {
		return false
	}

	if confirm {
		s.Dismiss()
		return true
	}

	if pressed {
		bx, by, bw, bh := buttonRect(dialog, pos)
		px, py := float64(x), float64(y)
		if px >= bx && px <= bx+bw && py >= by && py <= by+bh {
			s.Dismiss()
			return true
		}
	}
	return false
}

// Draw 绘制可见的对话框
func (s *DialogSystem) Draw(screen *ebiten.Image) {
	_, dialog, pos, ok := s.activeDialog()
	if !ok {
		return
	}

	s.drawOverlay(screen)

	x, y := pos.X, pos.Y
	w, h := float32(dialog.Width), float32(dialog.Height)
	vector.DrawFilledRect(screen, float32(x), float32(y), w, h, config.DialogBackgroundColor, false)
	vector.StrokeRect(screen, float32(x), float32(y), w, h, 3, config.DialogBorderColor, false)

	centerX := x + dialog.Width/2
	if s.titleFont != nil && dialog.Title != "" {
		drawCenteredText(screen, dialog.Title, s.titleFont, centerX, y+20, config.DialogTitleColor, true)
	}

	if s.messageFont != nil && dialog.Message != "" {
		lineHeight := s.messageFont.Size * 1.4
		lines := utils.WrapText(dialog.Message, s.messageFont, dialog.Width-40)
		for i, line := range lines {
			drawCenteredText(screen, line, s.messageFont, centerX, y+65+float64(i)*lineHeight, config.HUDTextColor, false)
		}
	}

	bx, by, bw, bh := buttonRect(dialog, pos)
	vector.DrawFilledRect(screen, float32(bx), float32(by), float32(bw), float32(bh), config.DialogButtonColor, false)
	vector.StrokeRect(screen, float32(bx), float32(by), float32(bw), float32(bh), 2, config.DialogBorderColor, false)
	if s.messageFont != nil {
		labelY := by + (bh-s.messageFont.Size*1.2)/2
		drawCenteredText(screen, dialog.ButtonLabel, s.messageFont, bx+bw/2, labelY, config.HUDTextColor, false)
	}
}

// drawOverlay 绘制半透明遮罩
func (s *DialogSystem) drawOverlay(screen *ebiten.Image) {
	if s.overlay == nil {
		s.overlay = ebiten.NewImage(s.windowWidth, s.windowHeight)
		s.overlay.Fill(config.DialogOverlayColor)
	}
	screen.DrawImage(s.overlay, &ebiten.DrawImageOptions{})
}

// drawCenteredText 以 (centerX, top) 为顶部中心绘制文字，可选阴影
func drawCenteredText(screen *ebiten.Image, str string, face *text.GoTextFace, centerX, top float64, clr color.Color, shadow bool) {
	if shadow {
		op := &text.DrawOptions{}
		op.GeoM.Translate(centerX+2, top+2)
		op.ColorScale.ScaleWithColor(color.RGBA{0, 0, 0, 180})
		op.PrimaryAlign = text.AlignCenter
		text.Draw(screen, str, face, op)
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(centerX, top)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignCenter
	text.Draw(screen, str, face, op)
}
