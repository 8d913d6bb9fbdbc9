package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// settings 存档位置
const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

// GameSettings 本机偏好，与跨局进度分开保存
type GameSettings struct {
	SoundVolume  float64 `yaml:"soundVolume"`
	SoundEnabled bool    `yaml:"soundEnabled"`

	// 只影响表现层，模拟结果不变
	ParticlesEnabled   bool `yaml:"particlesEnabled"`
	ScreenShakeEnabled bool `yaml:"screenShakeEnabled"`

	Fullscreen bool `yaml:"fullscreen"`
}

// DefaultSettings 返回首次启动时的设置
func DefaultSettings() *GameSettings {
	return &GameSettings{
		SoundVolume:        0.8,
		SoundEnabled:       true,
		ParticlesEnabled:   true,
		ScreenShakeEnabled: true,
	}
}

// normalize 把越界的数值拉回合法范围
func (s *GameSettings) normalize() {
	s.SoundVolume = clampVolume(s.SoundVolume)
}

// SettingsManager 持有当前设置并负责持久化
//
// 同时实现 Toggles，供模拟内核查询表现开关。
// store 为 nil 时所有修改只留在内存中。
type SettingsManager struct {
	store    *gdata.Manager
	settings *GameSettings
}

// NewSettingsManager 创建设置管理器并尝试读取存档，读取失败时使用默认值
func NewSettingsManager(store *gdata.Manager) *SettingsManager {
	sm := &SettingsManager{store: store, settings: DefaultSettings()}
	if err := sm.Load(); err != nil {
		log.Printf("[SettingsManager] Warning: %v (using defaults)", err)
	}
	return sm
}

// Load 重新读取存档
//
// 没有存储或没有存档时回到默认设置，存档损坏时同样回到默认并返回错误。
func (sm *SettingsManager) Load() error {
	loaded, err := sm.read()
	if err != nil || loaded == nil {
		sm.settings = DefaultSettings()
		return err
	}
	sm.settings = loaded
	log.Printf("[SettingsManager] Loaded settings (volume=%.2f sound=%v particles=%v shake=%v)",
		loaded.SoundVolume, loaded.SoundEnabled, loaded.ParticlesEnabled, loaded.ScreenShakeEnabled)
	return nil
}

// read 返回存档中的设置，没有存档时返回 nil
func (sm *SettingsManager) read() (*GameSettings, error) {
	if sm.store == nil || !sm.store.ObjectPropExists(settingsObject, settingsProperty) {
		return nil, nil
	}

	data, err := sm.store.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	// 旧存档缺少的字段保留默认值
	s := DefaultSettings()
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	s.normalize()
	return s, nil
}

// Save 写回存档，没有存储时什么也不做
func (sm *SettingsManager) Save() error {
	if sm.store == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := sm.store.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	log.Printf("[SettingsManager] Settings saved")
	return nil
}

// GetSettings 返回当前设置，修改后需调用 Save 持久化
func (sm *SettingsManager) GetSettings() *GameSettings { return sm.settings }

func (sm *SettingsManager) ParticlesEnabled() bool   { return sm.settings.ParticlesEnabled }
func (sm *SettingsManager) ScreenShakeEnabled() bool { return sm.settings.ScreenShakeEnabled }

// SetSoundVolume 设置音效音量，超出 [0, 1] 的值会被截断
func (sm *SettingsManager) SetSoundVolume(volume float64) {
	sm.settings.SoundVolume = clampVolume(volume)
}

func (sm *SettingsManager) SetSoundEnabled(enabled bool) {
	sm.settings.SoundEnabled = enabled
}

func (sm *SettingsManager) SetParticlesEnabled(enabled bool) {
	sm.settings.ParticlesEnabled = enabled
}

func (sm *SettingsManager) SetScreenShakeEnabled(enabled bool) {
	sm.settings.ScreenShakeEnabled = enabled
}

// SetFullscreen 记录全屏状态，下次启动时恢复
func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
}

func clampVolume(volume float64) float64 {
	switch {
	case volume < 0:
		return 0
	case volume > 1:
		return 1
	default:
		return volume
	}
}
