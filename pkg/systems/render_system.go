package systems

import (
	"image"
	"image/color"
	"math/rand/v2"

	"github.com/decker502/whackamole/pkg/config"
	"github.com/decker502/whackamole/pkg/mole"
	"github.com/decker502/whackamole/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 图片缺失时的矢量回退配色
var (
	fallbackMoleColor = color.RGBA{139, 90, 43, 255}
	fallbackTrapColor = color.RGBA{220, 30, 30, 255}
)

// fallbackTrapStroke 陷阱回退图形的线宽
const fallbackTrapStroke = 8

// RenderSystem 渲染系统
// 负责把 mole.Frame 描述的画面绘制到屏幕
//
// 绘制顺序：
//  1. 背景渐变（缓存为一张整屏图片）
//  2. 背景噪点（由帧的 SpeckleSeed 决定）
//  3. 洞口
//  4. 目标精灵（图片缺失时使用矢量图形）
//  5. HUD 文字
type RenderSystem struct {
	width, height int
	background    *ebiten.Image // 懒加载的渐变背景
	gradient      [2]color.RGBA // background 对应的顶部/底部颜色
	moleImage     *ebiten.Image
	trapImage     *ebiten.Image
	hudFont       *text.GoTextFace
}

// NewRenderSystem 创建渲染系统
//
// 参数：
//   - hudFont: HUD 字体，nil 时不绘制文字
//   - moleImage, trapImage: 目标图片，nil 时使用矢量回退
func NewRenderSystem(hudFont *text.GoTextFace, moleImage, trapImage *ebiten.Image) *RenderSystem {
	return &RenderSystem{
		width:     config.GameWindowWidth,
		height:    config.GameWindowHeight,
		moleImage: moleImage,
		trapImage: trapImage,
		hudFont:   hudFont,
	}
}

// Draw 绘制一帧
func (s *RenderSystem) Draw(screen *ebiten.Image, frame mole.Frame) {
	s.drawBackground(screen, frame.BackgroundTop, frame.BackgroundBottom)
	s.drawSpeckles(screen, frame.SpeckleSeed)
	s.drawHoles(screen, frame.Holes)
	s.drawTarget(screen, frame.Target)
	s.drawText(screen, frame.Score)
	s.drawText(screen, frame.Time)
}

// drawBackground 绘制渐变背景，颜色变化时才重新生成缓存图片
func (s *RenderSystem) drawBackground(screen *ebiten.Image, top, bottom color.RGBA) {
	if s.background == nil || s.gradient != [2]color.RGBA{top, bottom} {
		s.background = ebiten.NewImageFromImage(GradientImage(s.width, s.height, top, bottom))
		s.gradient = [2]color.RGBA{top, bottom}
	}
	screen.DrawImage(s.background, &ebiten.DrawImageOptions{})
}

func (s *RenderSystem) drawSpeckles(screen *ebiten.Image, seed uint64) {
	for _, p := range SpecklePositions(seed, config.SpeckleCount, s.width, s.height) {
		x := float32(p.X) + 0.5
		vector.StrokeLine(screen, x, float32(p.Y), x, float32(p.Y+config.SpeckleLength), 1, config.SpeckleColor, false)
	}
}

func (s *RenderSystem) drawHoles(screen *ebiten.Image, holes []mole.Rect) {
	for _, hole := range holes {
		cx, cy := hole.Center()
		vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(hole.Size)/2, config.HoleColor, true)
	}
}

func (s *RenderSystem) drawTarget(screen *ebiten.Image, target mole.Sprite) {
	r := target.Rect
	x, y, size := float64(r.X), float64(r.Y), float64(r.Size)

	img := s.moleImage
	if target.Kind == mole.TargetTrap {
		img = s.trapImage
	}
	if utils.DrawImageScaled(screen, img, x, y, size, size) {
		return
	}

	if target.Kind == mole.TargetTrap {
		x0, y0 := float32(x)+fallbackTrapStroke, float32(y)+fallbackTrapStroke
		x1, y1 := float32(x+size)-fallbackTrapStroke, float32(y+size)-fallbackTrapStroke
		vector.StrokeLine(screen, x0, y0, x1, y1, fallbackTrapStroke, fallbackTrapColor, true)
		vector.StrokeLine(screen, x0, y1, x1, y0, fallbackTrapStroke, fallbackTrapColor, true)
		return
	}

	cx, cy := r.Center()
	vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(size)*0.4, fallbackMoleColor, true)
}

// drawText 在基线位置绘制文字
func (s *RenderSystem) drawText(screen *ebiten.Image, t mole.Text) {
	if s.hudFont == nil || t.Content == "" {
		return
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(t.X), float64(t.Y)-s.hudFont.Metrics().HAscent)
	op.ColorScale.ScaleWithColor(config.HUDTextColor)
	text.Draw(screen, t.Content, s.hudFont, op)
}

// GradientColor 返回垂直渐变在第 y 行的颜色
// y = 0 为顶部颜色，y = height 为底部颜色
func GradientColor(top, bottom color.RGBA, y, height int) color.RGBA {
	if height <= 0 {
		return top
	}
	if y < 0 {
		y = 0
	}
	if y > height {
		y = height
	}

	lerp := func(a, b uint8) uint8 {
		return uint8(int(a) + (int(b)-int(a))*y/height)
	}
	return color.RGBA{
		R: lerp(top.R, bottom.R),
		G: lerp(top.G, bottom.G),
		B: lerp(top.B, bottom.B),
		A: lerp(top.A, bottom.A),
	}
}

// GradientImage 生成 width×height 的垂直渐变图片
func GradientImage(width, height int, top, bottom color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		c := GradientColor(top, bottom, y, height-1)
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// SpecklePositions 由种子生成噪点竖线的起点
// 相同种子总是得到相同结果，保证同一帧重复绘制时画面不闪烁
func SpecklePositions(seed uint64, count, width, height int) []image.Point {
	if count <= 0 || width <= 0 || height <= 0 {
		return nil
	}

	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	points := make([]image.Point, count)
	for i := range points {
		points[i] = image.Point{X: rng.IntN(width), Y: rng.IntN(height)}
	}
	return points
}
