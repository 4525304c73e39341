package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// AudioSettings 玩家的音频偏好
// 只保存声音相关的偏好，不保存任何得分
type AudioSettings struct {
	MusicVolume  float64 `yaml:"musicVolume"`  // 音乐音量 0.0 ~ 1.0
	SoundVolume  float64 `yaml:"soundVolume"`  // 音效音量 0.0 ~ 1.0
	MusicEnabled bool    `yaml:"musicEnabled"` // 音乐开关
	SoundEnabled bool    `yaml:"soundEnabled"` // 音效开关
}

// DefaultAudioSettings 返回默认音频设置
func DefaultAudioSettings() *AudioSettings {
	return &AudioSettings{
		MusicVolume:  0.6,
		SoundVolume:  0.9,
		MusicEnabled: true,
		SoundEnabled: true,
	}
}

// 存储位置：gdata 对象 "settings" 的属性 "audio"
const (
	settingsObject   = "settings"
	settingsProperty = "audio"
)

// SettingsManager 设置管理器
// 负责音频设置的加载、保存和内存管理
//
// gdataManager 为 nil 时进入降级模式：设置只保存在内存中，Save 不报错。
type SettingsManager struct {
	gdataManager *gdata.Manager
	settings     *AudioSettings
}

// NewSettingsManager 创建设置管理器并尝试加载已保存的设置
// 加载失败只记录日志，使用默认设置
func NewSettingsManager(gdataManager *gdata.Manager) *SettingsManager {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultAudioSettings(),
	}

	if err := sm.Load(); err != nil {
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}

	return sm
}

// Load 从 gdata 加载设置
// 任何失败都会把内存中的设置恢复为默认值
func (sm *SettingsManager) Load() error {
	sm.settings = DefaultAudioSettings()

	if sm.gdataManager == nil {
		return nil
	}

	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	loaded := DefaultAudioSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	loaded.MusicVolume = clampVolume(loaded.MusicVolume)
	loaded.SoundVolume = clampVolume(loaded.SoundVolume)

	sm.settings = loaded
	log.Printf("[SettingsManager] Settings loaded (music=%v sound=%v)", loaded.MusicEnabled, loaded.SoundEnabled)
	return nil
}

// Save 保存设置到 gdata
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	log.Printf("[SettingsManager] Settings saved")
	return nil
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *AudioSettings {
	return sm.settings
}

// SetMusicVolume 设置音乐音量，超出 0.0 ~ 1.0 的值会被截断
// 仅修改内存中的设置，需调用 Save() 持久化
func (sm *SettingsManager) SetMusicVolume(volume float64) {
	sm.settings.MusicVolume = clampVolume(volume)
}

// SetSoundVolume 设置音效音量，超出 0.0 ~ 1.0 的值会被截断
func (sm *SettingsManager) SetSoundVolume(volume float64) {
	sm.settings.SoundVolume = clampVolume(volume)
}

// SetMusicEnabled 设置音乐开关
func (sm *SettingsManager) SetMusicEnabled(enabled bool) {
	sm.settings.MusicEnabled = enabled
}

// SetSoundEnabled 设置音效开关
func (sm *SettingsManager) SetSoundEnabled(enabled bool) {
	sm.settings.SoundEnabled = enabled
}

// IsMuted 音乐和音效都关闭时视为静音
func (sm *SettingsManager) IsMuted() bool {
	return !sm.settings.MusicEnabled && !sm.settings.SoundEnabled
}

// ToggleMute 切换静音
// 任一声音开启时全部关闭，否则全部开启
//
// 返回：
//   - bool: 切换后是否处于静音状态
func (sm *SettingsManager) ToggleMute() bool {
	enabled := sm.IsMuted()
	sm.SetMusicEnabled(enabled)
	sm.SetSoundEnabled(enabled)
	return !enabled
}

func clampVolume(volume float64) float64 {
	if volume < 0.0 {
		return 0.0
	}
	if volume > 1.0 {
		return 1.0
	}
	return volume
}
