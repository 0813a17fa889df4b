package config

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// 应用默认配置
const (
	DefaultWindowWidth  = 360
	DefaultWindowHeight = 360
	DefaultWindowTitle  = "Dimo Logo"
	DefaultTPS          = 60
	DefaultLogoSize     = 120.0
	DefaultForeground   = "#FFFFFF"
	DefaultBackground   = "#000000"
	DefaultHUDTitle     = "Loading..."

	// HUD 尺寸（像素）
	HUDSize        = 116.0
	HUDLogoTop     = 16.0
	HUDTextSpacing = 12.0
	HUDCornerInset = 12.0
)

// 交互控制步长
const (
	MinLogoDuration    = 0.1  // 时长下限（秒）
	DurationAdjustStep = 0.1  // ↑/↓ 每次调整的时长
	ProgressScrubStep  = 0.05 // ←/→ 每次拖动的进度
	HUDTitleFontSize   = 14.0
)

// ForegroundPalette C 键循环切换的前景色
var ForegroundPalette = []string{"#FFFFFF", "#FFB000", "#4FC3F7", "#81C784", "#F06292"}

// DefaultConfigPath 内嵌默认配置文件路径
const DefaultConfigPath = "data/dimo.yaml"

// WindowConfig 窗口配置
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// LogoConfig Logo 动画配置
type LogoConfig struct {
	Duration   float64 `yaml:"duration"`   // 动画周期时长（秒）
	Interval   float64 `yaml:"interval"`   // 周期间停顿（秒）
	Size       float64 `yaml:"size"`       // Logo 绘制区域边长（像素）
	Foreground string  `yaml:"foreground"` // 前景色 #RRGGBB[AA]
	Background string  `yaml:"background"` // 背景色 #RRGGBB[AA]
	AutoPlay   *bool   `yaml:"auto_play"`  // 启动后自动播放，缺省为 true
}

// PlaybackConfig 播放配置
type PlaybackConfig struct {
	TPS      int     `yaml:"tps"`       // 游戏循环 TPS
	TickRate int     `yaml:"tick_rate"` // 动画 tick 频率（次/秒）
	TickStep float64 `yaml:"tick_step"` // 每次 tick 推进的动画时间（秒）
}

// HUDConfig 加载 HUD 配置
type HUDConfig struct {
	Enabled bool   `yaml:"enabled"` // 启动时是否显示 HUD
	Title   string `yaml:"title"`   // HUD 文字
}

// AppConfig 应用完整配置
type AppConfig struct {
	Window   WindowConfig   `yaml:"window"`
	Logo     LogoConfig     `yaml:"logo"`
	Playback PlaybackConfig `yaml:"playback"`
	HUD      HUDConfig      `yaml:"hud"`
}

// DefaultAppConfig 返回全部字段为默认值的配置
func DefaultAppConfig() *AppConfig {
	cfg := &AppConfig{}
	cfg.applyDefaults()
	return cfg
}

// LoadAppConfig 从文件加载配置
func LoadAppConfig(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}
	return ParseAppConfig(data)
}

// ParseAppConfig 解析 YAML 配置内容，并为缺省字段设置默认值
func ParseAppConfig(data []byte) (*AppConfig, error) {
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}
	cfg.applyDefaults()

	if _, err := ParseHexColor(cfg.Logo.Foreground); err != nil {
		return nil, fmt.Errorf("logo.foreground 无效: %w", err)
	}
	if _, err := ParseHexColor(cfg.Logo.Background); err != nil {
		return nil, fmt.Errorf("logo.background 无效: %w", err)
	}
	return &cfg, nil
}

// applyDefaults 为零值字段设置默认值
func (c *AppConfig) applyDefaults() {
	if c.Window.Width == 0 {
		c.Window.Width = DefaultWindowWidth
	}
	if c.Window.Height == 0 {
		c.Window.Height = DefaultWindowHeight
	}
	if c.Window.Title == "" {
		c.Window.Title = DefaultWindowTitle
	}
	if c.Logo.Duration == 0 {
		c.Logo.Duration = DefaultLogoDuration
	}
	if c.Logo.Interval == 0 {
		c.Logo.Interval = DefaultLogoInterval
	}
	if c.Logo.Size == 0 {
		c.Logo.Size = DefaultLogoSize
	}
	if c.Logo.Foreground == "" {
		c.Logo.Foreground = DefaultForeground
	}
	if c.Logo.Background == "" {
		c.Logo.Background = DefaultBackground
	}
	if c.Logo.AutoPlay == nil {
		autoPlay := true
		c.Logo.AutoPlay = &autoPlay
	}
	if c.Playback.TPS == 0 {
		c.Playback.TPS = DefaultTPS
	}
	if c.Playback.TickRate == 0 {
		c.Playback.TickRate = DefaultLogoTickRate
	}
	if c.Playback.TickStep == 0 {
		c.Playback.TickStep = DefaultLogoTickStep
	}
	if c.HUD.Title == "" {
		c.HUD.Title = DefaultHUDTitle
	}
}

// ForegroundColor 返回解析后的前景色，解析失败时返回白色
func (c *AppConfig) ForegroundColor() color.RGBA {
	clr, err := ParseHexColor(c.Logo.Foreground)
	if err != nil {
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	return clr
}

// BackgroundColor 返回解析后的背景色，解析失败时返回黑色
func (c *AppConfig) BackgroundColor() color.RGBA {
	clr, err := ParseHexColor(c.Logo.Background)
	if err != nil {
		return color.RGBA{A: 255}
	}
	return clr
}

// ParseHexColor 解析 #RRGGBB 或 #RRGGBBAA 格式的颜色
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("颜色格式错误: %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("颜色格式错误: %q: %w", s, err)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xFF
	}
	// 配置中的颜色为非预乘 alpha，color.RGBA 为预乘 alpha
	nrgba := color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}
	return color.RGBAModel.Convert(nrgba).(color.RGBA), nil
}

// FormatHexColor 将颜色格式化为 #RRGGBBAA
func FormatHexColor(c color.RGBA) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02X%02X%02X%02X", n.R, n.G, n.B, n.A)
}
