package config

import "math"

// Logo 几何比例配置
//
// 所有长度都以参考尺寸 LogoBaseReference 的比例表示，
// 运行时根据控件尺寸换算为像素（见 NewLogoMetrics）。
const (
	// LogoBaseReference 参考尺寸（最小参考边长）
	LogoBaseReference float64 = 60.0

	// LogoIntrinsicSize 无外部约束时控件的固有尺寸（宽高相同）
	LogoIntrinsicSize float64 = 60.0

	// WaterDropArcRadiusRatio 水滴圆弧半径
	WaterDropArcRadiusRatio float64 = 1.0 / 12.0

	// WaterDropControlPointOffsetYRatio 水滴两侧曲线控制点的纵向偏移
	WaterDropControlPointOffsetYRatio float64 = 1.0 / 15.0

	// WaterDropStretchLengthRatio 水滴拉伸长度（顶点最大额外上移量）
	WaterDropStretchLengthRatio float64 = 1.0 / 15.0

	// WaterDropElemMaxIntervalRatio 水滴与横线之间的最大间距
	WaterDropElemMaxIntervalRatio float64 = 7.0 / 30.0

	// LineMarginHorizontalRatio 横线左右边距
	LineMarginHorizontalRatio float64 = 1.0 / 12.0

	// LineWidthRatio 横线线宽
	LineWidthRatio float64 = 1.0 / 20.0

	// BounceSizeRatio 水滴弹出时的过冲大小
	BounceSizeRatio float64 = 1.0 / 60.0

	// LineControlOffsetX 横线平滑曲线控制点的水平偏移（固定值，不随尺寸缩放）
	LineControlOffsetX float64 = 16.0
)

// LineBulgePeakRatios 横线三次波动的峰值（带符号，y 轴向下）
// 顺序对应三个横线阶段：下压、回弹、下压
var LineBulgePeakRatios = [3]float64{0.2, -2.0 / 15.0, 0.1}

// 动画时间相关配置
const (
	// DefaultLogoDuration 默认动画周期时长（秒）
	DefaultLogoDuration float64 = 1.2

	// DefaultLogoInterval 默认周期间停顿（秒）
	DefaultLogoInterval float64 = 0.15

	// DefaultLogoTickStep 每次 tick 推进的动画时间（秒）
	DefaultLogoTickStep float64 = 0.05

	// DefaultLogoTickRate tick 频率（次/秒）
	DefaultLogoTickRate int = 20
)

// 阶段时间比例（相对于动画总时长）
const (
	// PhaseExpandEnd 弹出阶段结束
	PhaseExpandEnd float64 = 0.125
	// PhaseShrinkEnd 回弹阶段结束（同时是静止阶段结束、移动阶段开始）
	PhaseShrinkEnd float64 = 0.15
	// PhaseMoveEnd 水滴移动结束
	PhaseMoveEnd float64 = 0.85
	// PhaseRoundEnd 圆形阶段结束（之后变为水滴形）
	PhaseRoundEnd float64 = 0.5
	// PhaseStretchEnd 水滴拉伸结束
	PhaseStretchEnd float64 = 0.875
	// PhaseFadeInStart 淡出开始
	PhaseFadeInStart float64 = 0.8

	// PhaseLineStart 横线第一次波动开始
	PhaseLineStart float64 = 0.5
	// PhaseLineFirstEnd 横线第一次波动结束
	PhaseLineFirstEnd float64 = 0.8
	// PhaseLineSecondEnd 横线第二次波动结束
	PhaseLineSecondEnd float64 = 0.9
)

// LogoMetrics 按控件尺寸换算后的 Logo 几何参数（像素）
type LogoMetrics struct {
	Reference            float64    // 实际参考尺寸
	ArcRadius            float64    // 水滴圆弧半径
	ControlPointOffsetY  float64    // 水滴曲线控制点纵向偏移
	StretchLength        float64    // 水滴拉伸长度
	ElemMaxInterval      float64    // 水滴与横线的间距
	LineMarginHorizontal float64    // 横线左右边距
	LineWidth            float64    // 横线线宽
	BounceSize           float64    // 弹出过冲
	LineBulgePeaks       [3]float64 // 横线三次波动峰值
}

// LogoReference 计算参考尺寸
// 取宽高中较小者，且不小于 LogoBaseReference
func LogoReference(width, height float64) float64 {
	return math.Max(math.Min(width, height), LogoBaseReference)
}

// NewLogoMetrics 根据控件尺寸计算几何参数
//
// 参数：
//   - width, height: 控件尺寸（像素）
//
// 返回：
//   - LogoMetrics: 换算后的几何参数
func NewLogoMetrics(width, height float64) LogoMetrics {
	return MetricsForReference(LogoReference(width, height))
}

// MetricsForReference 直接按参考尺寸计算几何参数
func MetricsForReference(reference float64) LogoMetrics {
	m := LogoMetrics{
		Reference:            reference,
		ArcRadius:            reference * WaterDropArcRadiusRatio,
		ControlPointOffsetY:  reference * WaterDropControlPointOffsetYRatio,
		StretchLength:        reference * WaterDropStretchLengthRatio,
		ElemMaxInterval:      reference * WaterDropElemMaxIntervalRatio,
		LineMarginHorizontal: reference * LineMarginHorizontalRatio,
		LineWidth:            reference * LineWidthRatio,
		BounceSize:           reference * BounceSizeRatio,
	}
	for i, ratio := range LineBulgePeakRatios {
		m.LineBulgePeaks[i] = reference * ratio
	}
	return m
}
