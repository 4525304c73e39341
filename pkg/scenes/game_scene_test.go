package scenes

import (
	"math"
	"testing"

	"github.com/decker502/whackamole/pkg/components"
	"github.com/decker502/whackamole/pkg/config"
	"github.com/decker502/whackamole/pkg/ecs"
	"github.com/decker502/whackamole/pkg/game"
	"github.com/decker502/whackamole/pkg/mole"
)

const frame = 1.0 / 60.0

// newTestScene 创建不加载任何资源的场景
func newTestScene(t *testing.T) (*GameScene, *game.SettingsManager) {
	t.Helper()
	sm := game.NewSettingsManager(nil)
	return NewGameScene(nil, nil, sm, 7), sm
}

// runFrames 推进 n 帧，没有任何输入
func runFrames(s *GameScene, n int) {
	for i := 0; i < n; i++ {
		s.step(frame, frameInput{})
	}
}

// activeCenter 返回当前目标洞口中心
func activeCenter(s *GameScene) (int, int) {
	c := s.Controller()
	cx, cy := c.Board().Hole(c.Round().ActiveIndex).Center()
	return int(cx), int(cy)
}

// visibleDialogMessage 返回可见对话框实体的消息
func visibleDialogMessage(t *testing.T, s *GameScene) string {
	t.Helper()
	for _, id := range ecs.GetEntitiesWith1[*components.DialogComponent](s.entityManager) {
		if dialog, _ := ecs.GetComponent[*components.DialogComponent](s.entityManager, id); dialog.IsVisible {
			return dialog.Message
		}
	}
	t.Fatal("no visible dialog entity")
	return ""
}

func TestGameScene_StartsPlaying(t *testing.T) {
	s, _ := newTestScene(t)

	c := s.Controller()
	if c.Phase() != mole.PhasePlaying {
		t.Errorf("phase: got %v, want %v", c.Phase(), mole.PhasePlaying)
	}
	if got := c.Round().TimeRemaining; got != config.RoundTimeLimit {
		t.Errorf("TimeRemaining: got %d, want %d", got, config.RoundTimeLimit)
	}
	if s.redrawRequests == 0 {
		t.Error("Start should request a redraw")
	}
}

func TestGameScene_CountdownFollowsFrames(t *testing.T) {
	s, _ := newTestScene(t)

	runFrames(s, 60)

	if got := s.Controller().Round().TimeRemaining; got != config.RoundTimeLimit-1 {
		t.Errorf("TimeRemaining after 60 frames: got %d, want %d", got, config.RoundTimeLimit-1)
	}
}

func TestGameScene_DeltaTimeClamped(t *testing.T) {
	s, _ := newTestScene(t)
	before := s.Controller().Frame().SpeckleSeed

	// 卡顿 10 秒只推进 MaxDeltaTime，不足一个刷新周期
	s.step(10, frameInput{})

	if got := s.Controller().Round().TimeRemaining; got != config.RoundTimeLimit {
		t.Errorf("TimeRemaining: got %d, want %d", got, config.RoundTimeLimit)
	}
	if got := s.Controller().Frame().SpeckleSeed; got != before {
		t.Errorf("Revision: got %d, want %d", got, before)
	}

	s.step(-1, frameInput{})
	if got := s.Controller().Round().TimeRemaining; got != config.RoundTimeLimit {
		t.Errorf("negative delta changed TimeRemaining to %d", got)
	}
}

func TestClampDeltaTime(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{-0.5, 0},
		{0.016, 0.016},
		{config.MaxDeltaTime, config.MaxDeltaTime},
		{3, config.MaxDeltaTime},
	}
	for _, tt := range tests {
		if got := clampDeltaTime(tt.in); got != tt.want {
			t.Errorf("clampDeltaTime(%v): got %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestGameScene_PressScores(t *testing.T) {
	s, _ := newTestScene(t)
	c := s.Controller()

	isTrap := c.Round().IsTrap
	x, y := activeCenter(s)
	s.step(frame, frameInput{pressed: true, x: x, y: y})

	want := 1
	if isTrap {
		want = -1
	}
	if got := c.Round().Score; got != want {
		t.Errorf("Score: got %d, want %d", got, want)
	}

	// 窗口角落不在任何洞口内
	s.step(frame, frameInput{pressed: true, x: 0, y: 0})
	if got := c.Round().Score; got != want {
		t.Errorf("Score after miss: got %d, want %d", got, want)
	}
}

func TestGameScene_TimeoutShowsModalDialog(t *testing.T) {
	s, _ := newTestScene(t)
	c := s.Controller()

	runFrames(s, config.RoundTimeLimit*60)

	if !s.dialogSystem.IsVisible() {
		t.Fatal("dialog should be visible after timeout")
	}
	if got := c.Round().TimeRemaining; got != config.RoundTimeLimit {
		t.Errorf("new round TimeRemaining: got %d, want %d", got, config.RoundTimeLimit)
	}

	// 对话框可见时计时器冻结，点击洞口无效
	x, y := activeCenter(s)
	s.step(frame, frameInput{pressed: true, x: x, y: y})
	runFrames(s, 120)
	if got := c.Round().TimeRemaining; got != config.RoundTimeLimit {
		t.Errorf("TimeRemaining while dialog visible: got %d, want %d", got, config.RoundTimeLimit)
	}
	if got := c.Round().Score; got != 0 {
		t.Errorf("Score while dialog visible: got %d, want 0", got)
	}

	// 回车关闭后计时恢复
	s.step(frame, frameInput{confirm: true})
	if s.dialogSystem.IsVisible() {
		t.Fatal("dialog should be dismissed by confirm")
	}
	runFrames(s, 60)
	if got := c.Round().TimeRemaining; got != config.RoundTimeLimit-1 {
		t.Errorf("TimeRemaining after dismiss: got %d, want %d", got, config.RoundTimeLimit-1)
	}
}

func TestGameScene_WinAfterTenMoleHits(t *testing.T) {
	s, _ := newTestScene(t)
	c := s.Controller()

	// 只打地鼠，跳过陷阱，直到获胜弹窗出现
	for i := 0; i < 10000 && !s.dialogSystem.IsVisible(); i++ {
		if c.Round().IsTrap {
			runFrames(s, 30)
			continue
		}
		x, y := activeCenter(s)
		s.step(frame, frameInput{pressed: true, x: x, y: y})
	}

	if !s.dialogSystem.IsVisible() {
		t.Fatal("dialog should be visible after winning")
	}
	if got := visibleDialogMessage(t, s); got != "You won the game!" {
		t.Errorf("dialog message: got %q, want %q", got, "You won the game!")
	}
	if got := c.Round().Score; got != 0 {
		t.Errorf("Score after restart: got %d, want 0", got)
	}

	// 获胜的那一帧不再推进新一局的计时器
	for _, id := range ecs.GetEntitiesWith1[*components.TimerComponent](s.entityManager) {
		timer, _ := ecs.GetComponent[*components.TimerComponent](s.entityManager, id)
		if !timer.IsRunning || timer.CurrentTime != 0 {
			t.Errorf("timer %s after winning press: running=%v CurrentTime=%v, want true 0",
				timer.Name, timer.IsRunning, timer.CurrentTime)
		}
	}
}

func TestGameScene_MuteToggle(t *testing.T) {
	s, sm := newTestScene(t)

	s.step(frame, frameInput{mute: true})
	if !sm.IsMuted() {
		t.Error("M should mute")
	}

	s.step(frame, frameInput{mute: true})
	if sm.IsMuted() {
		t.Error("second M should unmute")
	}

	if !s.SaveOnExit() {
		t.Error("SaveOnExit: got false, want true")
	}
}

func TestGameScene_NilSettings(t *testing.T) {
	s := NewGameScene(nil, nil, nil, 1)
	s.step(frame, frameInput{mute: true, volume: -1}) // must not panic
	if !s.SaveOnExit() {
		t.Error("SaveOnExit without settings: got false, want true")
	}
}

func TestGameScene_Entities(t *testing.T) {
	s, _ := newTestScene(t)

	if got := len(ecs.GetEntitiesWith1[*components.TimerComponent](s.entityManager)); got != 2 {
		t.Errorf("timer entities: got %d, want 2", got)
	}
	cursors := ecs.GetEntitiesWith2[*components.CursorComponent, *components.PositionComponent](s.entityManager)
	if len(cursors) != 1 {
		t.Errorf("cursor entities: got %d, want 1", len(cursors))
	}
	if got := len(ecs.GetEntitiesWith1[*components.DialogComponent](s.entityManager)); got != 0 {
		t.Errorf("dialog entities before any outcome: got %d, want 0", got)
	}
}

func TestGameScene_DialogCloseDestroysEntity(t *testing.T) {
	s, _ := newTestScene(t)

	runFrames(s, config.RoundTimeLimit*60)
	if got := visibleDialogMessage(t, s); got != "Time's up! Final score: 0" {
		t.Errorf("dialog message: got %q, want %q", got, "Time's up! Final score: 0")
	}

	s.step(frame, frameInput{confirm: true})

	if s.dialogsResolved != 1 {
		t.Errorf("dialogsResolved: got %d, want 1", s.dialogsResolved)
	}
	if got := len(ecs.GetEntitiesWith1[*components.DialogComponent](s.entityManager)); got != 0 {
		t.Errorf("dialog entities after close: got %d, want 0", got)
	}
}

func TestGameScene_VolumeKeys(t *testing.T) {
	s, sm := newTestScene(t)
	defaults := game.DefaultAudioSettings()

	s.step(frame, frameInput{volume: 1})
	settings := sm.GetSettings()
	if math.Abs(settings.MusicVolume-(defaults.MusicVolume+config.VolumeStep)) > 1e-9 {
		t.Errorf("MusicVolume after +: got %v, want %v", settings.MusicVolume, defaults.MusicVolume+config.VolumeStep)
	}
	if math.Abs(settings.SoundVolume-1.0) > 1e-9 {
		t.Errorf("SoundVolume after +: got %v, want 1.0 (clamped)", settings.SoundVolume)
	}

	for i := 0; i < 20; i++ {
		s.step(frame, frameInput{volume: -1})
	}
	if settings.MusicVolume != 0 || settings.SoundVolume != 0 {
		t.Errorf("volumes after many -: got (%v, %v), want (0, 0)", settings.MusicVolume, settings.SoundVolume)
	}
}
