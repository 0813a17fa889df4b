package game

import (
	"fmt"
	"image/color"
	"log"
	"math"

	"github.com/decker502/dimologo/pkg/config"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// LogoSettings 用户可调整并持久化的 Logo 设置
type LogoSettings struct {
	Duration   float64 `yaml:"duration"`   // 动画周期时长（秒）
	Interval   float64 `yaml:"interval"`   // 周期间停顿（秒）
	Foreground string  `yaml:"foreground"` // 前景色 #RRGGBB[AA]
	HUDTitle   string  `yaml:"hudTitle"`   // HUD 文字
	HUDVisible bool    `yaml:"hudVisible"` // 启动时是否显示 HUD
}

// DefaultLogoSettings 从应用配置派生默认设置
func DefaultLogoSettings(cfg *config.AppConfig) *LogoSettings {
	if cfg == nil {
		cfg = config.DefaultAppConfig()
	}
	return &LogoSettings{
		Duration:   cfg.Logo.Duration,
		Interval:   cfg.Logo.Interval,
		Foreground: cfg.Logo.Foreground,
		HUDTitle:   cfg.HUD.Title,
		HUDVisible: cfg.HUD.Enabled,
	}
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "logo"
)

// SettingsManager 设置管理器
// 负责 Logo 设置的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager // 可为 nil（降级模式，仅内存设置）
	defaults     LogoSettings
	settings     *LogoSettings
}

// NewSettingsManager 创建设置管理器并尝试加载已保存的设置
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil
//   - defaults: 默认设置，nil 时使用内置默认配置
func NewSettingsManager(gdataManager *gdata.Manager, defaults *LogoSettings) *SettingsManager {
	if defaults == nil {
		defaults = DefaultLogoSettings(nil)
	}
	sm := &SettingsManager{
		gdataManager: gdataManager,
		defaults:     *defaults,
	}
	sm.resetToDefaults()

	if err := sm.Load(); err != nil {
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}
	return sm
}

func (sm *SettingsManager) resetToDefaults() {
	copied := sm.defaults
	sm.settings = &copied
}

// IsPersistent 是否可以持久化
func (sm *SettingsManager) IsPersistent() bool {
	return sm.gdataManager != nil
}

// Load 从 gdata 加载设置
//
// gdataManager 为 nil 或尚未保存过时使用默认设置。
// 已保存数据中缺失或无效的字段回退为默认值。
func (sm *SettingsManager) Load() error {
	if sm.gdataManager == nil || !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.resetToDefaults()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.resetToDefaults()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	loaded := sm.defaults
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		sm.resetToDefaults()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	sm.settings = &loaded
	sm.sanitize()

	log.Printf("[SettingsManager] Settings loaded: duration=%.2f interval=%.2f foreground=%s",
		loaded.Duration, loaded.Interval, loaded.Foreground)
	return nil
}

// sanitize 修正越界或无法解析的字段
func (sm *SettingsManager) sanitize() {
	s := sm.settings
	if math.IsNaN(s.Duration) || s.Duration < config.MinLogoDuration {
		s.Duration = sm.defaults.Duration
	}
	if math.IsNaN(s.Interval) || s.Interval < 0 {
		s.Interval = sm.defaults.Interval
	}
	if _, err := config.ParseHexColor(s.Foreground); err != nil {
		s.Foreground = sm.defaults.Foreground
	}
}

// Save 保存设置到 gdata，降级模式下直接返回 nil
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
func (sm *SettingsManager) GetSettings() *LogoSettings {
	return sm.settings
}

// ForegroundColor 当前前景色，解析失败时返回白色
func (sm *SettingsManager) ForegroundColor() color.RGBA {
	c, err := config.ParseHexColor(sm.settings.Foreground)
	if err != nil {
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	return c
}

// 以下 Set 方法仅修改内存中的设置，需调用 Save() 持久化

// SetDuration 设置动画时长，不低于 MinLogoDuration
func (sm *SettingsManager) SetDuration(duration float64) float64 {
	if math.IsNaN(duration) || duration < config.MinLogoDuration {
		duration = config.MinLogoDuration
	}
	sm.settings.Duration = duration
	return duration
}

// SetInterval 设置周期间停顿，负数截断为 0
func (sm *SettingsManager) SetInterval(interval float64) {
	sm.settings.Interval = math.Max(0, interval)
}

// SetForeground 设置前景色
func (sm *SettingsManager) SetForeground(clr color.RGBA) {
	sm.settings.Foreground = config.FormatHexColor(clr)
}

// SetHUDVisible 设置 HUD 是否显示
func (sm *SettingsManager) SetHUDVisible(visible bool) {
	sm.settings.HUDVisible = visible
}

// SetHUDTitle 设置 HUD 文字
func (sm *SettingsManager) SetHUDTitle(title string) {
	sm.settings.HUDTitle = title
}
