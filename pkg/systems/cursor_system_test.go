package systems

import (
	"testing"

	"github.com/decker502/whackamole/pkg/components"
	"github.com/decker502/whackamole/pkg/config"
	"github.com/decker502/whackamole/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
)

// recordCursorModes 替换 ebiten.SetCursorMode，记录每次调用
func recordCursorModes(s *CursorSystem) *[]ebiten.CursorModeType {
	var modes []ebiten.CursorModeType
	s.setCursorMode = func(m ebiten.CursorModeType) {
		modes = append(modes, m)
	}
	return &modes
}

// cursorEntity 返回唯一的光标实体的组件
func cursorEntity(t *testing.T, em *ecs.EntityManager) (*components.CursorComponent, *components.PositionComponent) {
	t.Helper()
	entities := ecs.GetEntitiesWith2[*components.CursorComponent, *components.PositionComponent](em)
	if len(entities) != 1 {
		t.Fatalf("cursor entities: got %d, want 1", len(entities))
	}
	cursor, _ := ecs.GetComponent[*components.CursorComponent](em, entities[0])
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, entities[0])
	return cursor, pos
}

func TestCursorSystem_WithImage(t *testing.T) {
	em := ecs.NewEntityManager()
	s := NewCursorSystem(em, ebiten.NewImage(32, 48))
	modes := recordCursorModes(s)

	cursor, pos := cursorEntity(t, em)
	if cursor.Image == nil {
		t.Fatal("cursor image should be set")
	}
	if b := cursor.Image.Bounds(); b.Dx() != config.CursorSize || b.Dy() != config.CursorSize {
		t.Errorf("cursor size: got %dx%d, want %dx%d", b.Dx(), b.Dy(), config.CursorSize, config.CursorSize)
	}
	if cursor.AnchorX != 0 || cursor.AnchorY != 0 {
		t.Errorf("hotspot: got (%v, %v), want (0, 0)", cursor.AnchorX, cursor.AnchorY)
	}

	s.Update(120, 45)
	s.Update(130, 50)
	if len(*modes) != 1 || (*modes)[0] != ebiten.CursorModeHidden {
		t.Errorf("cursor modes: got %v, want [hidden] once", *modes)
	}
	if pos.X != 130 || pos.Y != 50 {
		t.Errorf("cursor position: got (%v, %v), want (130, 50)", pos.X, pos.Y)
	}

	s.Draw(ebiten.NewImage(200, 200))

	s.Restore()
	if last := (*modes)[len(*modes)-1]; last != ebiten.CursorModeVisible {
		t.Errorf("after Restore: got %v, want visible", last)
	}
}

func TestCursorSystem_WithoutImage(t *testing.T) {
	em := ecs.NewEntityManager()
	s := NewCursorSystem(em, nil)
	modes := recordCursorModes(s)

	if got := s.DesiredMode(); got != ebiten.CursorModeVisible {
		t.Errorf("DesiredMode: got %v, want visible", got)
	}

	s.Update(5, 5)
	if len(*modes) != 1 || (*modes)[0] != ebiten.CursorModeVisible {
		t.Errorf("cursor modes: got %v, want [visible]", *modes)
	}

	// Draw without image must be a no-op
	s.Draw(ebiten.NewImage(10, 10))
}
