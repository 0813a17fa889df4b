package logo

import (
	"math"

	"github.com/decker502/dimologo/pkg/utils"
)

// ClockState 时钟状态
type ClockState int

const (
	// ClockIdle 时间冻结，不响应 tick
	ClockIdle ClockState = iota
	// ClockRunning 每次 tick 推进时间
	ClockRunning
)

// String 返回状态名称
func (s ClockState) String() string {
	if s == ClockRunning {
		return "running"
	}
	return "idle"
}

// Clock 动画时钟
//
// 持有唯一的动画时间游标及运行状态。时钟本身不计时，
// 由外部驱动（游戏循环、定时器）以固定频率调用 Tick。
// 所有方法需在同一线程内串行调用。
type Clock struct {
	time     float64
	duration float64
	interval float64
	step     float64
	state    ClockState
	redraw   func()
}

// NewClock 创建时钟，初始为 idle 状态、时间为 0
//
// 参数：
//   - duration: 动画周期时长
//   - interval: 周期之间的停顿
//   - step: 每次 tick 推进的时间
func NewClock(duration, interval, step float64) *Clock {
	return &Clock{
		duration: duration,
		interval: interval,
		step:     step,
		state:    ClockIdle,
	}
}

// SetRedrawFunc 设置重绘请求回调，每次 tick 与 SetProgress 后调用
func (c *Clock) SetRedrawFunc(fn func()) {
	c.redraw = fn
}

// Play 开始自动播放（已在播放时无操作）
func (c *Clock) Play() {
	if c.state == ClockRunning {
		return
	}
	c.state = ClockRunning
}

// Stop 停止播放，时间冻结在当前值
func (c *Clock) Stop() {
	c.state = ClockIdle
}

// State 当前状态
func (c *Clock) State() ClockState {
	return c.state
}

// IsRunning 是否正在播放
func (c *Clock) IsRunning() bool {
	return c.state == ClockRunning
}

// Time 当前动画时间
func (c *Clock) Time() float64 {
	return c.time
}

// Duration 动画周期时长
func (c *Clock) Duration() float64 {
	return c.duration
}

// Interval 周期间停顿
func (c *Clock) Interval() float64 {
	return c.interval
}

// Step 每次 tick 的时间步长
func (c *Clock) Step() float64 {
	return c.step
}

// SetDuration 修改周期时长
// 调用方需同时用 ComputeSchedule 重新计算时间分段
func (c *Clock) SetDuration(duration float64) {
	c.duration = duration
}

// SetInterval 修改周期间停顿
func (c *Clock) SetInterval(interval float64) {
	c.interval = interval
}

// Progress 归一化进度 [0, 1]；时长不为正时返回 0
func (c *Clock) Progress() float64 {
	if c.duration <= 0 {
		return 0
	}
	return utils.Clamp01(c.time / c.duration)
}

// SetProgress 停止播放并跳转到指定进度，超出 [0, 1] 的值会被截断
func (c *Clock) SetProgress(p float64) {
	c.Stop()
	if math.IsNaN(p) {
		p = 0
	}
	c.time = c.duration * utils.Clamp01(p)
	c.requestRedraw()
}

// Tick 推进一个固定步长
//
// 时间超过 duration + interval 后直接归零（而非取余），
// 多出的部分被丢弃。idle 状态下不推进，返回 false。
func (c *Clock) Tick() bool {
	if c.state != ClockRunning {
		return false
	}
	c.time += c.step
	if c.time > c.duration+c.interval {
		c.time = 0
	}
	c.requestRedraw()
	return true
}

func (c *Clock) requestRedraw() {
	if c.redraw != nil {
		c.redraw()
	}
}

// maxCycleSamples 单个周期采样上限
const maxCycleSamples = 1 << 16

// CycleTimes 返回运行中的时钟在一个完整周期内依次经过的时间点
//
// 从 0 开始逐次 tick，直到时间归零为止（不含归零后的 0）。
// step 不为正时只返回 [0]。
func CycleTimes(duration, interval, step float64) []float64 {
	times := []float64{0}
	if step <= 0 {
		return times
	}

	c := NewClock(duration, interval, step)
	c.Play()
	for len(times) < maxCycleSamples {
		c.Tick()
		if c.Time() == 0 {
			break
		}
		times = append(times, c.Time())
	}
	return times
}
