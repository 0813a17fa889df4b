package entities

import (
	"fmt"
	"image/color"
	"log"

	"github.com/decker502/dimologo/pkg/components"
	"github.com/decker502/dimologo/pkg/config"
	"github.com/decker502/dimologo/pkg/ecs"
	"github.com/decker502/dimologo/pkg/logo"
)

// LogoOptions Logo 实体参数
type LogoOptions struct {
	X, Y       float64    // 绘制区域左上角
	Size       float64    // 绘制区域边长，<=0 时使用固有尺寸
	Duration   float64    // 动画周期时长
	Interval   float64    // 周期间停顿
	TickStep   float64    // 每次 tick 推进的动画时间
	TickRate   int        // tick 频率（次/秒）
	Foreground color.RGBA // 前景色
	AutoPlay   bool       // 创建后立即播放
	Overlay    bool       // 属于 HUD 覆盖层
}

// DefaultLogoOptions 返回默认参数（固有尺寸、白色、自动播放）
func DefaultLogoOptions() LogoOptions {
	return LogoOptions{
		Size:       config.LogoIntrinsicSize,
		Duration:   config.DefaultLogoDuration,
		Interval:   config.DefaultLogoInterval,
		TickStep:   config.DefaultLogoTickStep,
		TickRate:   config.DefaultLogoTickRate,
		Foreground: color.RGBA{R: 255, G: 255, B: 255, A: 255},
		AutoPlay:   true,
	}
}

// NewLogoEntity 创建 Logo 实体
//
// 参数:
//   - em: 实体管理器
//   - opts: Logo 参数
//
// 返回:
//   - ecs.EntityID: 创建的实体ID
//   - error: 参数无效时返回错误
func NewLogoEntity(em *ecs.EntityManager, opts LogoOptions) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if opts.TickRate <= 0 {
		return 0, fmt.Errorf("invalid tick rate %d, must be positive", opts.TickRate)
	}
	size := opts.Size
	if size <= 0 {
		size = config.LogoIntrinsicSize
	}

	logoComp := &components.LogoComponent{
		Clock:      logo.NewClock(opts.Duration, opts.Interval, opts.TickStep),
		Schedule:   logo.ComputeSchedule(opts.Duration),
		Foreground: opts.Foreground,
		TickPeriod: 1.0 / float64(opts.TickRate),
		Overlay:    opts.Overlay,
	}
	logoComp.Resize(size, size)
	logoComp.Clock.SetRedrawFunc(logoComp.MarkDirty)
	if opts.AutoPlay {
		logoComp.Clock.Play()
	}

	entityID := em.CreateEntity()
	em.AddComponent(entityID, &components.PositionComponent{X: opts.X, Y: opts.Y})
	em.AddComponent(entityID, logoComp)

	log.Printf("[LogoFactory] Created logo entity %d: size=%.0f duration=%.2f interval=%.2f overlay=%v",
		entityID, size, opts.Duration, opts.Interval, opts.Overlay)
	return entityID, nil
}

// HUDOptions HUD 实体参数
type HUDOptions struct {
	CenterX, CenterY float64     // 面板中心
	Title            string      // 面板文字
	Visible          bool        // 初始是否显示
	Logo             LogoOptions // 面板内 Logo 参数（位置与尺寸由面板决定）
}

// NewHUDEntity 创建加载 HUD 实体及其内部的 Logo 实体
//
// 面板为 116×116 的深色圆角矩形，Logo 以固有尺寸水平居中、距顶部 16 像素。
//
// 返回:
//   - ecs.EntityID: HUD 实体ID
//   - ecs.EntityID: HUD 内 Logo 实体ID
//   - error: 创建失败时返回错误
func NewHUDEntity(em *ecs.EntityManager, opts HUDOptions) (ecs.EntityID, ecs.EntityID, error) {
	if em == nil {
		return 0, 0, fmt.Errorf("entity manager cannot be nil")
	}

	hudX := opts.CenterX - config.HUDSize/2
	hudY := opts.CenterY - config.HUDSize/2

	logoOpts := opts.Logo
	logoOpts.Size = config.LogoIntrinsicSize
	logoOpts.X = hudX + (config.HUDSize-config.LogoIntrinsicSize)/2
	logoOpts.Y = hudY + config.HUDLogoTop
	logoOpts.Overlay = true

	logoID, err := NewLogoEntity(em, logoOpts)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to create HUD logo: %w", err)
	}

	hudID := em.CreateEntity()
	em.AddComponent(hudID, &components.PositionComponent{X: hudX, Y: hudY})
	em.AddComponent(hudID, &components.HUDComponent{
		Title:      opts.Title,
		Visible:    opts.Visible,
		Size:       config.HUDSize,
		LogoEntity: logoID,
		BezelColor: color.RGBA{A: 204}, // 黑色 80% 不透明（预乘）
		TextColor:  color.RGBA{R: 255, G: 255, B: 255, A: 255},
	})

	log.Printf("[LogoFactory] Created HUD entity %d (logo %d) title=%q", hudID, logoID, opts.Title)
	return hudID, logoID, nil
}
