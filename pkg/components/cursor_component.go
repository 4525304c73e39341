package components

import "github.com/hajimehoshi/ebiten/v2"

// CursorComponent 自定义光标组件
// 光标实体的 PositionComponent 每帧跟随指针，图片以 (AnchorX, AnchorY) 对齐到该位置
type CursorComponent struct {
	Image   *ebiten.Image // 光标图片，nil 时使用系统光标
	Size    float64       // 绘制边长（像素），图片按此尺寸缩放
	AnchorX float64       // 热点X偏移（缩放后坐标）
	AnchorY float64       // 热点Y偏移（缩放后坐标）
}
