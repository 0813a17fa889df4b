// Package app 提供应用的核心包装器
//
// 初始化逻辑从 main 包提取出来，桌面端（main.go）与移动端（mobile/mobile.go）共用。
package app

import (
	"fmt"
	"io"
	"log"

	"github.com/decker502/dimologo/pkg/config"
	"github.com/decker502/dimologo/pkg/embedded"
	"github.com/decker502/dimologo/pkg/game"
	"github.com/decker502/dimologo/pkg/scenes"
	"github.com/decker502/dimologo/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// AppName gdata 存储使用的应用名
const AppName = "dimologo"

// Config 应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 外部配置文件路径，为空时使用内嵌的 data/dimo.yaml
	ConfigPath string
	// Scene 启动场景（scenes.SceneLogo / scenes.SceneHUD），为空时为 Logo 场景
	Scene string
	// Memory 不读写持久化设置
	Memory bool

	// 以下字段非零时覆盖配置与已保存的设置
	Duration   float64
	Interval   float64
	Foreground string
	HUDTitle   string
}

// App 应用包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	settings     *game.SettingsManager
	appConfig    *config.AppConfig
	deltaTime    float64
	verbose      bool
	mobile       bool // 移动端没有窗口与 F11

	pendingWindowSizeReset   bool
	windowSizeResetCountdown int
}

// SetupLogging 配置日志输出，非 verbose 时丢弃所有日志
func SetupLogging(verbose bool) {
	if !verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
		return
	}
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
}

// LoadAppConfig 加载应用配置
// path 为空时读取内嵌配置，内嵌资源不可用时使用默认配置
func LoadAppConfig(path string) (*config.AppConfig, error) {
	if path != "" {
		cfg, err := config.LoadAppConfig(path)
		if err != nil {
			return nil, fmt.Errorf("配置加载失败 %s: %w", path, err)
		}
		log.Printf("[Config] 加载配置文件: %s", path)
		return cfg, nil
	}

	if !embedded.IsInitialized() {
		log.Printf("[Config] Warning: embedded resources not initialized, using defaults")
		return config.DefaultAppConfig(), nil
	}
	data, err := embedded.ReadFile(config.DefaultConfigPath)
	if err != nil {
		return nil, fmt.Errorf("内嵌配置读取失败: %w", err)
	}
	cfg, err := config.ParseAppConfig(data)
	if err != nil {
		return nil, fmt.Errorf("内嵌配置解析失败: %w", err)
	}
	log.Printf("[Config] 加载内嵌配置: %s", config.DefaultConfigPath)
	return cfg, nil
}

// openStorage 打开 gdata 存储，失败时返回 nil（降级模式）
func openStorage() *gdata.Manager {
	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
	m, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		log.Printf("[App] Warning: gdata unavailable, settings will not persist: %v", err)
		return nil
	}
	return m
}

// applyOverrides 将命令行覆盖写入设置
func applyOverrides(cfg Config, sm *game.SettingsManager) error {
	if cfg.Duration != 0 {
		sm.SetDuration(cfg.Duration)
	}
	if cfg.Interval != 0 {
		sm.SetInterval(cfg.Interval)
	}
	if cfg.Foreground != "" {
		clr, err := config.ParseHexColor(cfg.Foreground)
		if err != nil {
			return fmt.Errorf("前景色无效: %w", err)
		}
		sm.SetForeground(clr)
	}
	if cfg.HUDTitle != "" {
		sm.SetHUDTitle(cfg.HUDTitle)
	}
	return nil
}

// NewApp 创建并初始化应用
//
// 调用此函数前应先调用 embedded.Init() 注入内嵌资源。
func NewApp(cfg Config) (*App, error) {
	SetupLogging(cfg.Verbose)

	appConfig, err := LoadAppConfig(cfg.ConfigPath)
	if err != nil {
		return nil, err
	}

	var storage *gdata.Manager
	if !cfg.Memory {
		storage = openStorage()
	}
	settings := game.NewSettingsManager(storage, game.DefaultLogoSettings(appConfig))
	if err := applyOverrides(cfg, settings); err != nil {
		return nil, err
	}

	sceneManager := game.NewSceneManager()
	opts := scenes.SceneOptions{
		Config:       appConfig,
		Settings:     settings,
		SceneManager: sceneManager,
		Fonts:        game.NewFontLoader(),
	}
	sceneManager.SetSceneFactory(func(name string) game.Scene {
		var (
			scene game.Scene
			err   error
		)
		switch name {
		case scenes.SceneHUD:
			scene, err = scenes.NewHUDScene(opts)
		case scenes.SceneLogo:
			scene, err = scenes.NewLogoScene(opts)
		default:
			log.Printf("[App] 未知场景: %s", name)
			return nil
		}
		if err != nil {
			log.Printf("[App] 场景创建失败 %s: %v", name, err)
			return nil
		}
		return scene
	})

	start := cfg.Scene
	if start == "" {
		start = scenes.SceneLogo
	}
	if !sceneManager.SwitchToNamed(start) {
		return nil, fmt.Errorf("无法创建启动场景: %s", start)
	}

	tps := appConfig.Playback.TPS
	if tps <= 0 {
		tps = config.DefaultTPS
	}
	log.Printf("[App] Started: scene=%s tps=%d persistent=%v mobile=%v", start, tps, settings.IsPersistent(), utils.IsMobile())

	return &App{
		sceneManager: sceneManager,
		settings:     settings,
		appConfig:    appConfig,
		deltaTime:    1.0 / float64(tps),
		verbose:      cfg.Verbose,
		mobile:       utils.IsMobile(),
	}, nil
}

// Update 更新逻辑，每个 tick 调用一次
func (a *App) Update() error {
	if ebiten.IsWindowBeingClosed() {
		a.sceneManager.SaveOnExit()
		return ebiten.Termination
	}

	if !a.mobile {
		a.updateWindow()
	}

	a.sceneManager.Update(a.deltaTime)
	return nil
}

// updateWindow 处理 F11 全屏切换
func (a *App) updateWindow() {
	// 退出全屏后等待几帧再恢复窗口尺寸
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.appConfig.Window.Width, a.appConfig.Window.Height)
			a.pendingWindowSizeReset = false
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
		} else {
			ebiten.SetFullscreen(true)
		}
	}
}

// Draw 绘制当前场景
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 全屏时以背景色填充 letterbox 并线性缩放
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(a.appConfig.BackgroundColor())
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 逻辑屏幕尺寸固定为配置的窗口尺寸
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.appConfig.Window.Width, a.appConfig.Window.Height
}

// AppConfig 当前应用配置
func (a *App) AppConfig() *config.AppConfig {
	return a.appConfig
}

// GetSceneManager 场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// Settings 设置管理器
func (a *App) Settings() *game.SettingsManager {
	return a.settings
}

// TPS 游戏循环频率
func (a *App) TPS() int {
	return int(1.0/a.deltaTime + 0.5)
}

// IsVerbose 是否启用详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}

// IsMobile 是否以移动端模式运行
func (a *App) IsMobile() bool {
	return a.mobile
}
