package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioManager 音频管理器
// 职责：
//   - 通过资源ID播放背景音乐（循环）与音效（单次）
//   - 从 SettingsManager 读取开关与音量
//   - 设备或文件缺失时记录日志并静默
type AudioManager struct {
	resourceManager *ResourceManager         // 资源管理器（用于加载音频，可为 nil）
	settingsManager *SettingsManager         // 设置管理器（可为 nil）
	soundPlayers    map[string]*audio.Player // 音效播放器缓存（资源ID -> 播放器）
	musicPlayers    map[string]*audio.Player // 背景音乐播放器缓存（资源ID -> 播放器）
	currentMusic    *audio.Player            // 当前背景音乐
	currentMusicID  string                   // 当前背景音乐ID
	missing         map[string]bool          // 已报告过缺失的资源ID，避免重复刷日志
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - rm: ResourceManager 实例（可为 nil，此时所有播放请求都是空操作）
//   - sm: SettingsManager 实例（可为 nil，使用默认音量）
//
// 返回：
//   - *AudioManager: 音频管理器实例
func NewAudioManager(rm *ResourceManager, sm *SettingsManager) *AudioManager {
	return &AudioManager{
		resourceManager: rm,
		settingsManager: sm,
		soundPlayers:    make(map[string]*audio.Player),
		musicPlayers:    make(map[string]*audio.Player),
		missing:         make(map[string]bool),
	}
}

// PlaySound 从头播放一次音效
//
// 参数：
//   - soundID: 音效资源ID（如 "SOUND_HIT"）
//
// 返回：
//   - bool: 是否成功播放
func (am *AudioManager) PlaySound(soundID string) bool {
	if !am.settings().SoundEnabled {
		return false
	}

	player := am.getPlayer(soundID, am.soundPlayers, false)
	if player == nil {
		return false
	}

	player.SetVolume(am.settings().SoundVolume)

	// 重置并播放
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %s: %v", soundID, err)
	}
	player.Play()
	return true
}

// PlayMusic 循环播放背景音乐
// 同一首音乐正在播放时不会重新开始
//
// 参数：
//   - musicID: 音乐资源ID（如 "SOUND_MUSIC"）
//
// 返回：
//   - bool: 音乐是否处于播放状态
func (am *AudioManager) PlayMusic(musicID string) bool {
	if am.currentMusicID == musicID && am.currentMusic != nil && am.currentMusic.IsPlaying() {
		return true
	}

	if !am.settings().MusicEnabled {
		// 记住请求的音乐，取消静音时再恢复
		am.StopMusic()
		am.currentMusicID = musicID
		return false
	}

	am.StopMusic()

	player := am.getPlayer(musicID, am.musicPlayers, true)
	if player == nil {
		return false
	}

	volume := am.settings().MusicVolume
	player.SetVolume(volume)
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind music %s: %v", musicID, err)
	}
	player.Play()

	am.currentMusic = player
	am.currentMusicID = musicID

	log.Printf("[AudioManager] Playing music: %s (volume: %.2f)", musicID, volume)
	return true
}

// StopMusic 停止当前背景音乐
func (am *AudioManager) StopMusic() {
	if am.currentMusic != nil {
		am.currentMusic.Pause()
	}
	am.currentMusic = nil
	am.currentMusicID = ""
}

// ApplySettings 将 SettingsManager 中的开关与音量立即应用到播放器
// 静音切换后调用：关闭音乐时暂停，重新开启时恢复之前请求的音乐
func (am *AudioManager) ApplySettings() {
	settings := am.settings()

	for _, player := range am.soundPlayers {
		player.SetVolume(settings.SoundVolume)
		if !settings.SoundEnabled && player.IsPlaying() {
			player.Pause()
		}
	}

	if !settings.MusicEnabled {
		if am.currentMusic != nil {
			am.currentMusic.Pause()
		}
		log.Printf("[AudioManager] Music disabled")
		return
	}

	if am.currentMusic != nil {
		am.currentMusic.SetVolume(settings.MusicVolume)
		am.currentMusic.Play()
		return
	}
	if am.currentMusicID != "" {
		am.PlayMusic(am.currentMusicID)
	}
}

// PreloadSounds 预加载音效，避免首次播放时的解码延迟
func (am *AudioManager) PreloadSounds(soundIDs []string) {
	loaded := 0
	for _, soundID := range soundIDs {
		if am.getPlayer(soundID, am.soundPlayers, false) != nil {
			loaded++
		}
	}
	log.Printf("[AudioManager] Preloaded %d/%d sounds", loaded, len(soundIDs))
}

// settings 返回当前音频设置，没有 SettingsManager 时使用默认值
func (am *AudioManager) settings() *AudioSettings {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings()
	}
	return DefaultAudioSettings()
}

// getPlayer 从缓存获取或通过资源ID加载播放器
func (am *AudioManager) getPlayer(id string, cache map[string]*audio.Player, loop bool) *audio.Player {
	if player, exists := cache[id]; exists {
		return player
	}
	if am.resourceManager == nil || am.missing[id] {
		return nil
	}

	filePath, exists := am.resourceManager.ResolvePath(id)
	if !exists {
		log.Printf("[AudioManager] Warning: Audio resource not found: %s", id)
		am.missing[id] = true
		return nil
	}

	var (
		player *audio.Player
		err    error
	)
	if loop {
		player, err = am.resourceManager.LoadAudio(filePath)
	} else {
		player, err = am.resourceManager.LoadSoundEffect(filePath)
	}
	if err != nil {
		log.Printf("[AudioManager] Warning: Failed to load %s: %v", id, err)
		am.missing[id] = true
		return nil
	}

	cache[id] = player
	return player
}
