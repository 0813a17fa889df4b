package scenes

import (
	"fmt"
	"image/color"
	"log"
	"math"

	"github.com/decker502/dimologo/pkg/components"
	"github.com/decker502/dimologo/pkg/config"
	"github.com/decker502/dimologo/pkg/ecs"
	"github.com/decker502/dimologo/pkg/entities"
	"github.com/decker502/dimologo/pkg/game"
	"github.com/decker502/dimologo/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// SceneOptions 场景依赖
type SceneOptions struct {
	Config       *config.AppConfig     // 应用配置，nil 时使用默认配置
	Settings     *game.SettingsManager // 设置管理器，nil 时使用仅内存设置
	SceneManager *game.SceneManager    // 用于切换场景，可为 nil
	Fonts        *game.FontLoader      // 字体加载器，nil 时不绘制 HUD 文字
	Keys         KeySource             // 按键来源，nil 时读取 ebiten 输入
	Pointer      PointerSource         // 指针来源，nil 时读取 ebiten 输入
}

// withDefaults 填充缺省依赖
func (o SceneOptions) withDefaults() SceneOptions {
	if o.Config == nil {
		o.Config = config.DefaultAppConfig()
	}
	if o.Settings == nil {
		o.Settings = game.NewSettingsManager(nil, game.DefaultLogoSettings(o.Config))
	}
	if o.Keys == nil {
		o.Keys = ebitenKeys{}
	}
	if o.Pointer == nil {
		o.Pointer = ReadPointer
	}
	return o
}

// logoOptions 由配置与设置生成 Logo 实体参数
func (o SceneOptions) logoOptions() entities.LogoOptions {
	s := o.Settings.GetSettings()
	opts := entities.DefaultLogoOptions()
	opts.Duration = s.Duration
	opts.Interval = s.Interval
	opts.TickStep = o.Config.Playback.TickStep
	opts.TickRate = o.Config.Playback.TickRate
	opts.Foreground = o.Settings.ForegroundColor()
	return opts
}

// titleFont 加载 HUD 标题字体，失败时返回 nil
func (o SceneOptions) titleFont() *text.GoTextFace {
	if o.Fonts == nil {
		return nil
	}
	face, err := o.Fonts.LoadFont("", config.HUDTitleFontSize)
	if err != nil {
		log.Printf("[Scenes] Warning: Failed to load HUD font: %v", err)
		return nil
	}
	return face
}

// LogoScene Logo 演示场景
//
// 窗口中央是一个可交互的 Logo，上方叠加可切换的加载 HUD。
// 键盘：Space 播放/暂停，←/→ 拖动进度，↑/↓ 调整时长，C 切换颜色，
// H 显示/隐藏 HUD，S 保存设置，Tab 切换到 HUD 场景。
// 触摸/鼠标：水平拖动调整进度，点击播放/暂停。
type LogoScene struct {
	opts SceneOptions

	entityManager   *ecs.EntityManager
	animationSystem *systems.LogoAnimationSystem
	logoRenderer    *systems.LogoRenderSystem
	hudRenderer     *systems.HUDRenderSystem

	logoEntity    ecs.EntityID
	hudEntity     ecs.EntityID
	hudLogoEntity ecs.EntityID

	background   color.RGBA
	paletteIndex int

	drag              *DragManager
	dragStartProgress float64

	statusMessage string
}

// NewLogoScene 创建 Logo 演示场景
func NewLogoScene(opts SceneOptions) (*LogoScene, error) {
	opts = opts.withDefaults()
	cfg := opts.Config
	settings := opts.Settings.GetSettings()

	em := ecs.NewEntityManager()
	width, height := float64(cfg.Window.Width), float64(cfg.Window.Height)

	logoOpts := opts.logoOptions()
	logoOpts.Size = cfg.Logo.Size
	logoOpts.X = (width - cfg.Logo.Size) / 2
	logoOpts.Y = (height - cfg.Logo.Size) / 2
	logoOpts.AutoPlay = cfg.Logo.AutoPlay == nil || *cfg.Logo.AutoPlay

	logoID, err := entities.NewLogoEntity(em, logoOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to create logo: %w", err)
	}

	hudID, hudLogoID, err := entities.NewHUDEntity(em, entities.HUDOptions{
		CenterX: width / 2,
		CenterY: height / 2,
		Title:   settings.HUDTitle,
		Visible: settings.HUDVisible,
		Logo:    opts.logoOptions(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create hud: %w", err)
	}

	logoRenderer := systems.NewLogoRenderSystem(em)
	scene := &LogoScene{
		opts:            opts,
		entityManager:   em,
		animationSystem: systems.NewLogoAnimationSystem(em),
		logoRenderer:    logoRenderer,
		hudRenderer:     systems.NewHUDRenderSystem(em, logoRenderer, opts.titleFont()),
		logoEntity:      logoID,
		hudEntity:       hudID,
		hudLogoEntity:   hudLogoID,
		background:      cfg.BackgroundColor(),
		paletteIndex:    paletteIndexOf(settings.Foreground),
		drag:            NewDragManager(),
	}

	log.Printf("[LogoScene] Created: window=%vx%v logo=%.0f duration=%.2f hud=%v",
		width, height, cfg.Logo.Size, settings.Duration, settings.HUDVisible)
	return scene, nil
}

// paletteIndexOf 颜色在调色板中的位置，不在调色板中时返回 -1
func paletteIndexOf(hex string) int {
	target, err := config.ParseHexColor(hex)
	if err != nil {
		return -1
	}
	for i, p := range config.ForegroundPalette {
		if c, err := config.ParseHexColor(p); err == nil && c == target {
			return i
		}
	}
	return -1
}

// Logo 演示 Logo 的组件
func (s *LogoScene) Logo() *components.LogoComponent {
	comp, _ := ecs.GetComponent[*components.LogoComponent](s.entityManager, s.logoEntity)
	return comp
}

// HUD HUD 组件
func (s *LogoScene) HUD() *components.HUDComponent {
	comp, _ := ecs.GetComponent[*components.HUDComponent](s.entityManager, s.hudEntity)
	return comp
}

// hudLogo HUD 内 Logo 的组件
func (s *LogoScene) hudLogo() *components.LogoComponent {
	comp, _ := ecs.GetComponent[*components.LogoComponent](s.entityManager, s.hudLogoEntity)
	return comp
}

// Update 处理输入并推进动画
func (s *LogoScene) Update(deltaTime float64) {
	for _, action := range pressedActions(s.opts.Keys) {
		s.HandleAction(action)
	}

	s.drag.Advance(s.opts.Pointer())
	s.handleDrag()

	s.animationSystem.Update(deltaTime)
	s.entityManager.RemoveMarkedEntities()
}

// handleDrag 水平拖动按窗口宽度映射为进度变化，点击切换播放
func (s *LogoScene) handleDrag() {
	logoComp := s.Logo()

	switch s.drag.GetState() {
	case DragStateStarted:
		s.dragStartProgress = logoComp.Clock.Progress()

	case DragStateDragging:
		dx, _ := s.drag.GetDragDistance()
		if TapSlop < dx || dx < -TapSlop {
			width := float64(s.opts.Config.Window.Width)
			logoComp.Clock.SetProgress(s.dragStartProgress + float64(dx)/width)
		}

	case DragStateEnded:
		if s.drag.WasTap() {
			s.HandleAction(ActionTogglePlay)
		}
	}
}

// HandleAction 执行一个操作
func (s *LogoScene) HandleAction(action Action) {
	logoComp := s.Logo()
	clock := logoComp.Clock

	switch action {
	case ActionTogglePlay:
		if clock.IsRunning() {
			clock.Stop()
		} else {
			clock.Play()
		}
		s.statusMessage = ""

	case ActionScrubBackward:
		clock.SetProgress(clock.Progress() - config.ProgressScrubStep)

	case ActionScrubForward:
		clock.SetProgress(clock.Progress() + config.ProgressScrubStep)

	case ActionDurationUp:
		s.setDuration(clock.Duration() + config.DurationAdjustStep)

	case ActionDurationDown:
		s.setDuration(clock.Duration() - config.DurationAdjustStep)

	case ActionCycleColor:
		s.cycleColor()

	case ActionToggleHUD:
		hud := s.HUD()
		hud.Visible = !hud.Visible
		s.opts.Settings.SetHUDVisible(hud.Visible)

	case ActionSave:
		if err := s.opts.Settings.Save(); err != nil {
			log.Printf("[LogoScene] Warning: Failed to save settings: %v", err)
			s.statusMessage = "save failed"
		} else if s.opts.Settings.IsPersistent() {
			s.statusMessage = "saved"
		} else {
			s.statusMessage = "not persistent"
		}

	case ActionSwitchScene:
		if s.opts.SceneManager != nil {
			s.opts.SceneManager.SwitchToNamed(SceneHUD)
		}
	}

	log.Printf("[LogoScene] %s: state=%s progress=%.2f duration=%.2f",
		action, clock.State(), clock.Progress(), clock.Duration())
}

// setDuration 修改两个 Logo 的时长（保留两位小数，避免步进累积误差）
func (s *LogoScene) setDuration(duration float64) {
	duration = math.Round(duration*100) / 100
	duration = s.opts.Settings.SetDuration(duration)
	s.Logo().SetDuration(duration)
	s.hudLogo().SetDuration(duration)
}

// cycleColor 切换到调色板中的下一个颜色
func (s *LogoScene) cycleColor() {
	palette := config.ForegroundPalette
	s.paletteIndex = (s.paletteIndex + 1) % len(palette)

	clr, err := config.ParseHexColor(palette[s.paletteIndex])
	if err != nil {
		log.Printf("[LogoScene] Warning: invalid palette color %q: %v", palette[s.paletteIndex], err)
		return
	}
	s.Logo().SetForeground(clr)
	s.hudLogo().SetForeground(clr)
	s.opts.Settings.SetForeground(clr)
}

// Draw 绘制背景、Logo、HUD 与状态栏
func (s *LogoScene) Draw(screen *ebiten.Image) {
	screen.Fill(s.background)
	s.logoRenderer.Draw(screen)
	s.hudRenderer.Draw(screen)
	ebitenutil.DebugPrintAt(screen, s.StatusLine(), 8, 8)
}

// StatusLine 状态栏文字
func (s *LogoScene) StatusLine() string {
	clock := s.Logo().Clock
	line := fmt.Sprintf("%s  progress %.2f  duration %.1fs", clock.State(), clock.Progress(), clock.Duration())
	if s.statusMessage != "" {
		line += "  [" + s.statusMessage + "]"
	}
	return line
}

// SaveOnExit 退出时保存设置
func (s *LogoScene) SaveOnExit() bool {
	if err := s.opts.Settings.Save(); err != nil {
		log.Printf("[LogoScene] Warning: Failed to save settings on exit: %v", err)
		return false
	}
	return true
}
