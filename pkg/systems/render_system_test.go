package systems

import (
	"image/color"
	"reflect"
	"testing"

	"github.com/decker502/whackamole/pkg/config"
	"github.com/decker502/whackamole/pkg/mole"
	"github.com/hajimehoshi/ebiten/v2"
)

func TestGradientColor(t *testing.T) {
	top := color.RGBA{0, 0, 0, 255}
	bottom := color.RGBA{64, 64, 64, 255}

	tests := []struct {
		y, height int
		want      color.RGBA
	}{
		{0, 100, top},
		{100, 100, bottom},
		{50, 100, color.RGBA{32, 32, 32, 255}},
		{-5, 100, top},
		{200, 100, bottom},
		{10, 0, top},
	}

	for _, tt := range tests {
		if got := GradientColor(top, bottom, tt.y, tt.height); got != tt.want {
			t.Errorf("GradientColor(y=%d, h=%d): got %v, want %v", tt.y, tt.height, got, tt.want)
		}
	}
}

func TestGradientImage(t *testing.T) {
	img := GradientImage(4, 11, config.BackgroundTopColor, config.BackgroundBottomColor)

	if got := img.RGBAAt(0, 0); got != config.BackgroundTopColor {
		t.Errorf("top row: got %v, want %v", got, config.BackgroundTopColor)
	}
	if got := img.RGBAAt(3, 10); got != config.BackgroundBottomColor {
		t.Errorf("bottom row: got %v, want %v", got, config.BackgroundBottomColor)
	}
	if img.RGBAAt(0, 5) != img.RGBAAt(3, 5) {
		t.Error("gradient should be constant across a row")
	}
}

func TestSpecklePositions_Deterministic(t *testing.T) {
	a := SpecklePositions(42, config.SpeckleCount, 800, 600)
	b := SpecklePositions(42, config.SpeckleCount, 800, 600)

	if len(a) != config.SpeckleCount {
		t.Fatalf("count: got %d, want %d", len(a), config.SpeckleCount)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("same seed should produce the same speckles")
	}

	c := SpecklePositions(43, config.SpeckleCount, 800, 600)
	if reflect.DeepEqual(a, c) {
		t.Error("different seeds should produce different speckles")
	}

	for _, p := range a {
		if p.X < 0 || p.X >= 800 || p.Y < 0 || p.Y >= 600 {
			t.Errorf("speckle %v outside window", p)
		}
	}
}

func TestSpecklePositions_Empty(t *testing.T) {
	if got := SpecklePositions(1, 0, 800, 600); got != nil {
		t.Errorf("count 0: got %v, want nil", got)
	}
	if got := SpecklePositions(1, 10, 0, 600); got != nil {
		t.Errorf("width 0: got %v, want nil", got)
	}
}

// TestRenderSystem_DrawFallback 图片和字体缺失时仍能完整绘制
func TestRenderSystem_DrawFallback(t *testing.T) {
	c := mole.NewController(mole.Options{})
	c.Start()

	s := NewRenderSystem(nil, nil, nil)
	screen := ebiten.NewImage(config.GameWindowWidth, config.GameWindowHeight)

	s.Draw(screen, c.Frame())
	if s.background == nil {
		t.Error("background should be cached after first draw")
	}

	frame := c.Frame()
	frame.Target.Kind = mole.TargetTrap
	s.Draw(screen, frame)
}

// TestRenderSystem_BackgroundFollowsFrameColors 背景颜色来自帧描述，颜色不变时复用缓存
func TestRenderSystem_BackgroundFollowsFrameColors(t *testing.T) {
	c := mole.NewController(mole.Options{})
	c.Start()

	s := NewRenderSystem(nil, nil, nil)
	screen := ebiten.NewImage(config.GameWindowWidth, config.GameWindowHeight)

	frame := c.Frame()
	s.Draw(screen, frame)
	cached := s.background
	if s.gradient != [2]color.RGBA{config.BackgroundTopColor, config.BackgroundBottomColor} {
		t.Errorf("gradient: got %v, want default colors", s.gradient)
	}

	s.Draw(screen, frame)
	if s.background != cached {
		t.Error("background should be reused when colors do not change")
	}

	frame.BackgroundBottom = color.RGBA{0, 0, 128, 255}
	s.Draw(screen, frame)
	if s.background == cached {
		t.Error("background should be regenerated when colors change")
	}
	if s.gradient[1] != frame.BackgroundBottom {
		t.Errorf("bottom color: got %v, want %v", s.gradient[1], frame.BackgroundBottom)
	}
}
