package logo

import (
	"github.com/decker502/dimologo/pkg/config"
	"github.com/decker502/dimologo/pkg/utils"
)

// DropBaseCenter 水滴初始（未移动）圆心
// 位于横线上方 elemMaxInterval + (arcRadius + lineWidth) / 2 处
func DropBaseCenter(m config.LogoMetrics, b Bounds) Point {
	return Point{
		X: b.Width / 2,
		Y: b.Height/2 - m.ElemMaxInterval - (m.ArcRadius+m.LineWidth)/2,
	}
}

// ComputeDrop 计算 t 时刻的水滴几何
//
// 参数：
//   - t: 动画时间（秒）
//   - s: 时间分段
//   - m: 按尺寸换算后的几何参数
//   - b: 绘制区域
//
// 返回：
//   - DropGeometry: 圆心、半径、透明度以及水滴形关键点
func ComputeDrop(t float64, s Schedule, m config.LogoMetrics, b Bounds) DropGeometry {
	ds := s.Drop
	center := DropBaseCenter(m, b)

	// 移动：从初始位置向下移动，总位移为到区域中线距离的两倍（穿过横线）
	if !ds.Standing.Contains(t) {
		distance := 2 * (b.Height/2 - center.Y)
		center.Y += distance * ds.Move.ClampedProgress(t)
	}

	// 弹出与回弹
	radius := m.ArcRadius
	if ds.Expand.Contains(t) {
		radius = utils.Lerp(0, m.ArcRadius+m.BounceSize, ds.Expand.Progress(t))
	} else if ds.Shrink.Contains(t) {
		radius = utils.Lerp(m.ArcRadius+m.BounceSize, m.ArcRadius, ds.Shrink.Progress(t))
	}

	geom := DropGeometry{
		Center:  center,
		Radius:  radius,
		Opacity: 1,
		Shape:   DropShapeCircle,
	}
	if ds.Round.Contains(t) {
		return geom
	}

	if t >= ds.FadeIn.Start {
		geom.Opacity = utils.Clamp01(1 - ds.FadeIn.Progress(t))
	}

	geom.Shape = DropShapeTeardrop
	geom.Stretch = ds.Stretch.ClampedProgress(t)
	geom.Teardrop = Teardrop{
		Apex:         center.Offset(0, -m.ArcRadius-m.StretchLength*geom.Stretch),
		Right:        center.Offset(radius, 0),
		Left:         center.Offset(-radius, 0),
		RightControl: center.Offset(radius, -m.ControlPointOffsetY),
		LeftControl:  center.Offset(-radius, -m.ControlPointOffsetY),
	}
	return geom
}

// LineBaseline 未变形时横线的三个点
func LineBaseline(m config.LogoMetrics, b Bounds) LinePoints {
	mid := b.Mid()
	half := (b.Width - 2*m.LineMarginHorizontal) / 2
	return LinePoints{
		Left:   Point{X: mid.X - half, Y: mid.Y},
		Center: mid,
		Right:  Point{X: mid.X + half, Y: mid.Y},
	}
}

// ComputeLine 计算 t 时刻的横线几何
//
// 只移动中心点：在所处波动阶段内，进度超过一半后折返（1 - p），
// 形成“压下再弹回”的效果，位移 = 峰值 × 折返后的进度。
func ComputeLine(t float64, s Schedule, m config.LogoMetrics, b Bounds) LineGeometry {
	points := LineBaseline(m, b)

	if i := s.LineStageAt(t); i >= 0 {
		p := s.Line[i].Progress(t)
		if p > 0.5 {
			p = 1 - p
		}
		points.Center.Y += m.LineBulgePeaks[i] * p
	}

	return LineGeometry{
		LinePoints:  points,
		StrokeWidth: m.LineWidth,
	}
}

// Frame 同一时刻的完整几何
type Frame struct {
	Time   float64
	Bounds Bounds
	Drop   DropGeometry
	Line   LineGeometry
}

// ComputeFrame 同时计算水滴与横线，两者共享同一个时间点
func ComputeFrame(t float64, s Schedule, m config.LogoMetrics, b Bounds) Frame {
	return Frame{
		Time:   t,
		Bounds: b,
		Drop:   ComputeDrop(t, s, m, b),
		Line:   ComputeLine(t, s, m, b),
	}
}
