package scenes

import (
	"log"

	"github.com/decker502/whackamole/pkg/config"
	"github.com/decker502/whackamole/pkg/ecs"
	"github.com/decker502/whackamole/pkg/game"
	"github.com/decker502/whackamole/pkg/mole"
	"github.com/decker502/whackamole/pkg/systems"
	"github.com/decker502/whackamole/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// GameScene 打地鼠主场景
//
// 职责：
//   - 组装控制器与各个系统（计时、渲染、对话框、光标）
//   - 计时器、对话框、光标都是 entityManager 中的实体
//   - 每帧把输入转交给对话框或控制器，并推进计时器
//   - 对话框可见时冻结计时器，只处理对话框输入
type GameScene struct {
	audioManager    *game.AudioManager
	settingsManager *game.SettingsManager

	entityManager *ecs.EntityManager
	controller    *mole.Controller
	timerSystem  *systems.TimerSystem
	renderSystem *systems.RenderSystem
	dialogSystem *systems.DialogSystem
	cursorSystem *systems.CursorSystem

	redrawRequests  int // 控制器请求重绘的次数（调试信息）
	dialogsResolved int // 已关闭的结果对话框数量
}

// frameInput 一帧的输入快照
type frameInput struct {
	pressed bool // 指针刚按下
	x, y    int
	confirm bool // 回车或空格
	mute    bool // M 键
	volume  int  // +/- 键：1 调高，-1 调低
}

// audioAdapter 把 mole.Audio 的命令转交给 AudioManager
type audioAdapter struct {
	manager *game.AudioManager
}

func (a audioAdapter) PlayLooping(id mole.SoundID) {
	a.manager.PlayMusic(string(id))
}

func (a audioAdapter) PlayOnce(id mole.SoundID) {
	a.manager.PlaySound(string(id))
}

// NewGameScene 创建主场景并立即开始第一局
//
// 参数：
//   - rm: 资源管理器（可为 nil，全部使用回退绘制）
//   - am: 音频管理器（可为 nil，静音运行）
//   - sm: 设置管理器（可为 nil，M 键静音不持久化）
//   - seed: 随机种子
//
// 返回：
//   - *GameScene: 已开始游戏的场景
func NewGameScene(rm *game.ResourceManager, am *game.AudioManager, sm *game.SettingsManager, seed int64) *GameScene {
	assets := loadSceneAssets(rm)

	if am == nil {
		am = game.NewAudioManager(nil, sm)
	}
	am.PreloadSounds(effectSoundIDs)

	em := ecs.NewEntityManager()
	s := &GameScene{
		audioManager:    am,
		settingsManager: sm,
		entityManager:   em,
		timerSystem:     systems.NewTimerSystem(em),
		renderSystem:    systems.NewRenderSystem(assets.hudFont, assets.moleImage, assets.trapImage),
		dialogSystem: systems.NewDialogSystem(em, config.GameWindowWidth, config.GameWindowHeight,
			assets.titleFont, assets.messageFont),
		cursorSystem: systems.NewCursorSystem(em, assets.malletImage),
	}
	s.dialogSystem.SetOnClose(s.onDialogClosed)

	board := mole.NewBoard()
	s.controller = mole.NewController(mole.Options{
		Board:     board,
		Picker:    mole.NewRandomPicker(seed, board.Len()),
		Scheduler: s.timerSystem,
		Audio:     audioAdapter{manager: am},
		Announcer: s.dialogSystem,
		OnRedraw:  func() { s.redrawRequests++ },
	})
	s.controller.Start()

	log.Printf("[GameScene] Game scene created (seed=%d)", seed)
	return s
}

// Update 读取本帧输入并推进游戏
func (s *GameScene) Update(deltaTime float64) {
	s.cursorSystem.Update(utils.GetPointerPosition())

	pressed, x, y := utils.IsPointerJustPressed()
	s.step(deltaTime, frameInput{
		pressed: pressed,
		x:       x,
		y:       y,
		confirm: utils.IsConfirmKeyJustPressed(),
		mute:    utils.IsAnyKeyJustPressed(ebiten.KeyM),
		volume:  utils.VolumeKeyDelta(),
	})
}

// step 处理一帧，与 ebiten 输入解耦以便测试
func (s *GameScene) step(deltaTime float64, in frameInput) {
	deltaTime = clampDeltaTime(deltaTime)
	defer s.entityManager.RemoveMarkedEntities()

	if in.mute {
		s.toggleMute()
	}
	if in.volume != 0 {
		s.adjustVolume(float64(in.volume) * config.VolumeStep)
	}

	// 模态对话框：计时器冻结，指针只作用于对话框
	if s.dialogSystem.IsVisible() {
		s.dialogSystem.HandleInput(in.pressed, in.x, in.y, in.confirm)
		return
	}

	if in.pressed {
		s.controller.OnPointerPress(in.x, in.y)
		// 这次点击赢下一局，新一局的计时器从对话框关闭后开始走
		if s.dialogSystem.IsVisible() {
			return
		}
	}

	s.timerSystem.Update(deltaTime)
}

// Draw 绘制画面、对话框和光标
func (s *GameScene) Draw(screen *ebiten.Image) {
	s.renderSystem.Draw(screen, s.controller.Frame())
	s.dialogSystem.Draw(screen)

	s.cursorSystem.Draw(screen)
}

// SaveOnExit 实现 game.Saveable，退出时保存音频设置并恢复系统光标
func (s *GameScene) SaveOnExit() bool {
	s.cursorSystem.Restore()
	if s.settingsManager == nil {
		return true
	}
	if err := s.settingsManager.Save(); err != nil {
		log.Printf("[GameScene] Warning: Failed to save settings on exit: %v", err)
		return false
	}
	return true
}

// Controller 返回游戏控制器
func (s *GameScene) Controller() *mole.Controller {
	return s.controller
}

// toggleMute 切换静音并持久化
func (s *GameScene) toggleMute() {
	if s.settingsManager == nil {
		log.Printf("[GameScene] Mute toggle ignored: no SettingsManager")
		return
	}

	muted := s.settingsManager.ToggleMute()
	s.audioManager.ApplySettings()
	if err := s.settingsManager.Save(); err != nil {
		log.Printf("[GameScene] Warning: Failed to save settings: %v", err)
	}
	log.Printf("[GameScene] Muted: %v", muted)
}

// adjustVolume 同时调整音乐和音效音量并持久化
func (s *GameScene) adjustVolume(delta float64) {
	if s.settingsManager == nil {
		log.Printf("[GameScene] Volume change ignored: no SettingsManager")
		return
	}

	settings := s.settingsManager.GetSettings()
	s.settingsManager.SetMusicVolume(settings.MusicVolume + delta)
	s.settingsManager.SetSoundVolume(settings.SoundVolume + delta)
	s.audioManager.ApplySettings()
	if err := s.settingsManager.Save(); err != nil {
		log.Printf("[GameScene] Warning: Failed to save settings: %v", err)
	}
	log.Printf("[GameScene] Volume: music=%.1f sound=%.1f", settings.MusicVolume, settings.SoundVolume)
}

// onDialogClosed 结果对话框关闭后恢复计时
func (s *GameScene) onDialogClosed() {
	s.dialogsResolved++
	round := s.controller.Round()
	log.Printf("[GameScene] Dialog closed, resuming round (time left %ds)", round.TimeRemaining)
}

// clampDeltaTime 限制单帧时间步长，负数视为 0
func clampDeltaTime(deltaTime float64) float64 {
	if deltaTime < 0 {
		return 0
	}
	if deltaTime > config.MaxDeltaTime {
		return config.MaxDeltaTime
	}
	return deltaTime
}
