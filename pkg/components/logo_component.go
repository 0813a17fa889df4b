package components

import (
	"image/color"

	"github.com/decker502/dimologo/pkg/config"
	"github.com/decker502/dimologo/pkg/logo"
	"github.com/hajimehoshi/ebiten/v2"
)

// LogoComponent Logo 动画组件
//
// 持有动画时钟、时间分段与按尺寸换算的几何参数。
// 时长或尺寸变化时，Schedule / Metrics 会被整体替换（值类型），
// 渲染系统读到的始终是一组完整的参数。
type LogoComponent struct {
	// Clock 动画时钟，唯一的时间游标
	Clock *logo.Clock

	// Schedule 当前时长对应的时间分段
	Schedule logo.Schedule

	// Metrics 当前尺寸对应的几何参数
	Metrics config.LogoMetrics

	// Bounds 绘制区域尺寸
	Bounds logo.Bounds

	// Foreground 前景色，水滴与横线共用
	Foreground color.RGBA

	// TickPeriod 两次 tick 之间的真实时间（秒），如 1/20
	TickPeriod float64

	// TickAccumulator 距上次 tick 累积的真实时间（秒）
	TickAccumulator float64

	// Overlay 是否属于覆盖层（由 HUD 负责绘制，普通渲染流程跳过）
	Overlay bool

	// Dirty 需要重新绘制离屏缓存
	// 由时钟的重绘回调、尺寸/颜色/时长变化置位
	Dirty bool

	// Canvas 离屏缓存，尺寸与 Bounds 一致，由渲染系统创建
	Canvas *ebiten.Image
}

// SetDuration 修改动画时长并重新计算时间分段
func (c *LogoComponent) SetDuration(duration float64) {
	c.Clock.SetDuration(duration)
	c.Schedule = logo.ComputeSchedule(duration)
	c.Dirty = true
}

// SetInterval 修改周期间停顿
func (c *LogoComponent) SetInterval(interval float64) {
	c.Clock.SetInterval(interval)
}

// Resize 修改绘制区域尺寸并重新计算几何参数
func (c *LogoComponent) Resize(width, height float64) {
	c.Bounds = logo.Bounds{Width: width, Height: height}
	c.Metrics = config.NewLogoMetrics(width, height)
	c.Dirty = true
}

// SetForeground 修改前景色
func (c *LogoComponent) SetForeground(clr color.RGBA) {
	c.Foreground = clr
	c.Dirty = true
}

// MarkDirty 请求重绘，作为时钟的重绘回调
func (c *LogoComponent) MarkDirty() {
	c.Dirty = true
}

// Frame 计算当前时刻的几何
func (c *LogoComponent) Frame() logo.Frame {
	return logo.ComputeFrame(c.Clock.Time(), c.Schedule, c.Metrics, c.Bounds)
}
