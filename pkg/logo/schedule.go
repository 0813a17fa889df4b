// Package logo 实现 Dimo Logo 动画的核心：
// 从单一的动画时间映射到水滴与横线的矢量几何参数。
//
// 本包不依赖任何渲染接口，所有函数均为纯函数（Clock 除外），
// 渲染层（ebiten、CPU 光栅化、终端）只消费这里输出的几何值对象。
package logo

import (
	"github.com/decker502/dimologo/pkg/config"
	"github.com/decker502/dimologo/pkg/utils"
)

// TimeRange 闭区间时间段 [Start, End]
type TimeRange struct {
	Start float64
	End   float64
}

// Length 区间长度
func (r TimeRange) Length() float64 {
	return r.End - r.Start
}

// Contains 判断时间是否落在闭区间内
func (r TimeRange) Contains(t float64) bool {
	return t >= r.Start && t <= r.End
}

// Progress 计算 t 在区间内的进度（不截断）
// 区间长度为 0 时返回 0，避免除零
func (r TimeRange) Progress(t float64) float64 {
	length := r.Length()
	if length <= 0 {
		return 0
	}
	return (t - r.Start) / length
}

// ClampedProgress 计算 t 在区间内的进度，并截断到 [0, 1]
func (r TimeRange) ClampedProgress(t float64) float64 {
	return utils.Clamp01(r.Progress(t))
}

// scaled 按动画时长生成区间
func scaled(duration, from, to float64) TimeRange {
	return TimeRange{Start: duration * from, End: duration * to}
}

// DropSchedule 水滴的各个阶段
type DropSchedule struct {
	Expand   TimeRange // 弹出：半径从 0 增大到 arcRadius+bounce
	Shrink   TimeRange // 回弹：半径回落到 arcRadius
	Standing TimeRange // 静止（= [0, Shrink.End]）
	Move     TimeRange // 向下移动
	Round    TimeRange // 圆形阶段
	Stretch  TimeRange // 拉伸为水滴形
	FadeIn   TimeRange // 淡出
}

// LineStageCount 横线波动阶段数
const LineStageCount = 3

// Schedule 一个动画周期内的全部时间分段
//
// Schedule 是值类型：时长变化时整体重新计算并一次性替换，
// 不存在读到半更新状态的可能。
type Schedule struct {
	Duration float64
	Drop     DropSchedule
	Line     [LineStageCount]TimeRange
}

// ComputeSchedule 根据动画时长计算时间分段
//
// 纯函数，对任意输入都有定义：负时长按 0 处理，此时所有区间退化为 [0, 0]。
func ComputeSchedule(duration float64) Schedule {
	if duration < 0 {
		duration = 0
	}
	d := duration
	return Schedule{
		Duration: d,
		Drop: DropSchedule{
			Expand:   scaled(d, 0, config.PhaseExpandEnd),
			Shrink:   scaled(d, config.PhaseExpandEnd, config.PhaseShrinkEnd),
			Standing: scaled(d, 0, config.PhaseShrinkEnd),
			Move:     scaled(d, config.PhaseShrinkEnd, config.PhaseMoveEnd),
			Round:    scaled(d, 0, config.PhaseRoundEnd),
			Stretch:  scaled(d, config.PhaseRoundEnd, config.PhaseStretchEnd),
			FadeIn:   scaled(d, config.PhaseFadeInStart, 1),
		},
		Line: [LineStageCount]TimeRange{
			scaled(d, config.PhaseLineStart, config.PhaseLineFirstEnd),
			scaled(d, config.PhaseLineFirstEnd, config.PhaseLineSecondEnd),
			scaled(d, config.PhaseLineSecondEnd, 1),
		},
	}
}

// LineStageAt 返回包含 t 的第一个横线阶段索引，不在任何阶段内时返回 -1
func (s Schedule) LineStageAt(t float64) int {
	for i, r := range s.Line {
		if r.Contains(t) {
			return i
		}
	}
	return -1
}
