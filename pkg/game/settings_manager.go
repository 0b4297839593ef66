package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// AudioSettings 音频偏好设置
// 只保存音量和开关，宠物状态从不持久化
type AudioSettings struct {
	SoundVolume  float64 `yaml:"soundVolume"`  // 一次性音效音量倍率 0.0 ~ 1.0
	LoopVolume   float64 `yaml:"loopVolume"`   // 循环音音量倍率 0.0 ~ 1.0
	SoundEnabled bool    `yaml:"soundEnabled"` // 一次性音效开关
	LoopEnabled  bool    `yaml:"loopEnabled"`  // 循环音开关
}

// DefaultSettings 返回默认设置
// 倍率为 1.0，最终音量等于配置中的 clip 音量
func DefaultSettings() *AudioSettings {
	return &AudioSettings{
		SoundVolume:  1.0,
		LoopVolume:   1.0,
		SoundEnabled: true,
		LoopEnabled:  true,
	}
}

// SettingsManager 设置管理器
// 负责音频设置的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	settings     *AudioSettings // 当前设置
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "audio"
)

// NewSettingsManager 创建新的设置管理器实例
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存设置）
//
// 加载失败不是致命错误，使用默认设置。
func NewSettingsManager(gdataManager *gdata.Manager) *SettingsManager {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}

	// 尝试加载已保存的设置
	if err := sm.Load(); err != nil {
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}

	return sm
}

// Load 从 gdata 加载设置
//
// 如果 gdataManager 为 nil 或文件不存在，使用默认设置
func (sm *SettingsManager) Load() error {
	// 降级模式：无法持久化，使用默认设置
	if sm.gdataManager == nil {
		sm.settings = DefaultSettings()
		return nil
	}

	// 检查设置文件是否存在
	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = DefaultSettings()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	// 未出现的字段保持默认值
	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	loaded.SoundVolume = clampVolume(loaded.SoundVolume)
	loaded.LoopVolume = clampVolume(loaded.LoopVolume)

	sm.settings = loaded
	log.Printf("[SettingsManager] Settings loaded successfully")
	return nil
}

// Save 保存设置到 gdata
//
// 如果 gdataManager 为 nil，返回 nil（降级模式，不报错）
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

	log.Printf("[SettingsManager] Settings saved successfully")
	return nil
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *AudioSettings {
	return sm.settings
}

// SetSoundVolume 设置一次性音效音量倍率（限制在 0.0 ~ 1.0）
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetSoundVolume(volume float64) {
	sm.settings.SoundVolume = clampVolume(volume)
}

// SetLoopVolume 设置循环音音量倍率（限制在 0.0 ~ 1.0）
func (sm *SettingsManager) SetLoopVolume(volume float64) {
	sm.settings.LoopVolume = clampVolume(volume)
}

// SetSoundEnabled 设置一次性音效开关
func (sm *SettingsManager) SetSoundEnabled(enabled bool) {
	sm.settings.SoundEnabled = enabled
}

// SetLoopEnabled 设置循环音开关
func (sm *SettingsManager) SetLoopEnabled(enabled bool) {
	sm.settings.LoopEnabled = enabled
}

// ToggleMute 同时切换两个开关：任一开启则全部关闭，否则全部开启
// 返回切换后是否静音
func (sm *SettingsManager) ToggleMute() bool {
	muted := sm.settings.SoundEnabled || sm.settings.LoopEnabled
	sm.settings.SoundEnabled = !muted
	sm.settings.LoopEnabled = !muted
	return muted
}

// IsMuted 两个开关都关闭时为静音
func (sm *SettingsManager) IsMuted() bool {
	return !sm.settings.SoundEnabled && !sm.settings.LoopEnabled
}

// clampVolume 将音量值限制在 0.0 ~ 1.0 范围内
func clampVolume(volume float64) float64 {
	if volume < 0.0 {
		return 0.0
	}
	if volume > 1.0 {
		return 1.0
	}
	return volume
}
