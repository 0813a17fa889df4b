package config

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestParseAppConfigDefaults 测试空配置使用默认值
func TestParseAppConfigDefaults(t *testing.T) {
	cfg, err := ParseAppConfig([]byte(""))
	if err != nil {
		t.Fatalf("ParseAppConfig 失败: %v", err)
	}

	if cfg.Window.Width != DefaultWindowWidth || cfg.Window.Height != DefaultWindowHeight {
		t.Errorf("窗口尺寸 = %dx%d, 期望 %dx%d", cfg.Window.Width, cfg.Window.Height, DefaultWindowWidth, DefaultWindowHeight)
	}
	if cfg.Logo.Duration != DefaultLogoDuration {
		t.Errorf("Duration = %v, 期望 %v", cfg.Logo.Duration, DefaultLogoDuration)
	}
	if cfg.Logo.Interval != DefaultLogoInterval {
		t.Errorf("Interval = %v, 期望 %v", cfg.Logo.Interval, DefaultLogoInterval)
	}
	if cfg.Playback.TickRate != DefaultLogoTickRate || cfg.Playback.TickStep != DefaultLogoTickStep {
		t.Errorf("Playback = %+v, 期望 tick_rate=%d tick_step=%v", cfg.Playback, DefaultLogoTickRate, DefaultLogoTickStep)
	}
	if cfg.Logo.AutoPlay == nil || !*cfg.Logo.AutoPlay {
		t.Error("AutoPlay 默认应为 true")
	}
	if cfg.ForegroundColor() != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("默认前景色 = %v, 期望白色", cfg.ForegroundColor())
	}
}

// TestParseAppConfigOverrides 测试 YAML 覆盖默认值
func TestParseAppConfigOverrides(t *testing.T) {
	data := []byte(`
window:
  width: 640
  title: "Test"
logo:
  duration: 2.4
  interval: 0.3
  foreground: "#FF8000"
  auto_play: false
playback:
  tick_rate: 30
hud:
  enabled: true
  title: "请稍候"
`)
	cfg, err := ParseAppConfig(data)
	if err != nil {
		t.Fatalf("ParseAppConfig 失败: %v", err)
	}

	if cfg.Window.Width != 640 || cfg.Window.Height != DefaultWindowHeight || cfg.Window.Title != "Test" {
		t.Errorf("Window = %+v", cfg.Window)
	}
	if cfg.Logo.Duration != 2.4 || cfg.Logo.Interval != 0.3 {
		t.Errorf("Logo = %+v", cfg.Logo)
	}
	if *cfg.Logo.AutoPlay {
		t.Error("AutoPlay 应为 false")
	}
	if cfg.Playback.TickRate != 30 {
		t.Errorf("TickRate = %d, 期望 30", cfg.Playback.TickRate)
	}
	if !cfg.HUD.Enabled || cfg.HUD.Title != "请稍候" {
		t.Errorf("HUD = %+v", cfg.HUD)
	}
	if got := cfg.ForegroundColor(); got != (color.RGBA{R: 255, G: 128, A: 255}) {
		t.Errorf("ForegroundColor = %v", got)
	}
}

// TestParseAppConfigInvalidColor 测试无效颜色返回错误
func TestParseAppConfigInvalidColor(t *testing.T) {
	_, err := ParseAppConfig([]byte("logo:\n  foreground: \"red\"\n"))
	if err == nil {
		t.Fatal("期望返回错误")
	}
	if !strings.Contains(err.Error(), "logo.foreground") {
		t.Errorf("错误信息应包含字段名: %v", err)
	}
}

// TestLoadAppConfig 测试从文件加载
func TestLoadAppConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dimo.yaml")
	if err := os.WriteFile(path, []byte("logo:\n  size: 200\n"), 0o644); err != nil {
		t.Fatalf("写入临时文件失败: %v", err)
	}

	cfg, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("LoadAppConfig 失败: %v", err)
	}
	if cfg.Logo.Size != 200 {
		t.Errorf("Size = %v, 期望 200", cfg.Logo.Size)
	}

	if _, err := LoadAppConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("文件不存在时应返回错误")
	}
}

// TestParseHexColor 测试颜色解析
func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input    string
		expected color.RGBA
		wantErr  bool
	}{
		{"#FFFFFF", color.RGBA{255, 255, 255, 255}, false},
		{"000000", color.RGBA{0, 0, 0, 255}, false},
		{"#12345678", color.RGBAModel.Convert(color.NRGBA{0x12, 0x34, 0x56, 0x78}).(color.RGBA), false},
		{" #ff0000 ", color.RGBA{255, 0, 0, 255}, false},
		{"#FFF", color.RGBA{}, true},
		{"#GGGGGG", color.RGBA{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseHexColor(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHexColor(%q) err = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.expected {
				t.Errorf("ParseHexColor(%q) = %v, 期望 %v", tt.input, got, tt.expected)
			}
		})
	}
}

// TestFormatHexColor 测试颜色格式化可被重新解析
func TestFormatHexColor(t *testing.T) {
	if got := FormatHexColor(color.RGBA{R: 255, G: 128, B: 0, A: 255}); got != "#FF8000FF" {
		t.Errorf("FormatHexColor = %q, 期望 #FF8000FF", got)
	}
}
