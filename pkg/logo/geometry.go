package logo

// Point 二维点（屏幕坐标系，y 轴向下）
type Point struct {
	X float64
	Y float64
}

// Offset 返回偏移后的新点
func (p Point) Offset(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Bounds 绘制区域尺寸，原点位于左上角
type Bounds struct {
	Width  float64
	Height float64
}

// Mid 绘制区域中心点
func (b Bounds) Mid() Point {
	return Point{X: b.Width / 2, Y: b.Height / 2}
}

// DropShape 水滴当前的形状
type DropShape int

const (
	// DropShapeCircle 实心圆
	DropShapeCircle DropShape = iota
	// DropShapeTeardrop 水滴形
	DropShapeTeardrop
)

// String 返回形状名称
func (s DropShape) String() string {
	switch s {
	case DropShapeCircle:
		return "circle"
	case DropShapeTeardrop:
		return "teardrop"
	default:
		return "unknown"
	}
}

// Teardrop 水滴形轮廓的关键点
//
// 轮廓：Apex 经 RightControl 二次曲线到 Right，
// 沿下半圆弧到 Left，再经 LeftControl 二次曲线回到 Apex。
type Teardrop struct {
	Apex         Point
	Right        Point
	Left         Point
	RightControl Point
	LeftControl  Point
}

// DropGeometry 某一帧的水滴几何
type DropGeometry struct {
	Center   Point
	Radius   float64
	Opacity  float64   // 仅对水滴形生效；圆形阶段恒为 1
	Shape    DropShape
	Stretch  float64   // 拉伸进度 [0, 1]，圆形阶段为 0
	Teardrop Teardrop  // 仅当 Shape == DropShapeTeardrop 时有效
}

// IsRound 是否为圆形阶段
func (g DropGeometry) IsRound() bool {
	return g.Shape == DropShapeCircle
}

// LinePoints 横线的左、中、右三个点
type LinePoints struct {
	Left   Point
	Center Point
	Right  Point
}

// Offsetting 三个点整体纵向偏移
func (lp LinePoints) Offsetting(dy float64) LinePoints {
	return LinePoints{
		Left:   lp.Left.Offset(0, dy),
		Center: lp.Center.Offset(0, dy),
		Right:  lp.Right.Offset(0, dy),
	}
}

// QuadSegment 二次贝塞尔曲线段（起点为上一段的终点）
type QuadSegment struct {
	Control Point
	To      Point
}

// LineOutline 横线填充轮廓
//
// 顺序：Start(左上) → TopToCenter → TopToRight → 直线到 BottomRight
// → BottomToCenter → BottomToLeft → 直线回 Start。
type LineOutline struct {
	Start          Point
	TopToCenter    QuadSegment
	TopToRight     QuadSegment
	BottomRight    Point
	BottomToCenter QuadSegment
	BottomToLeft   QuadSegment
}

// LineGeometry 某一帧的横线几何
type LineGeometry struct {
	LinePoints
	StrokeWidth float64
}

// Top 上轮廓
func (g LineGeometry) Top() LinePoints {
	return g.LinePoints.Offsetting(-g.StrokeWidth / 2)
}

// Bottom 下轮廓
func (g LineGeometry) Bottom() LinePoints {
	return g.LinePoints.Offsetting(g.StrokeWidth / 2)
}

// Outline 计算带平滑控制点的填充轮廓
// controlOffsetX 为控制点相对端点的水平偏移
func (g LineGeometry) Outline(controlOffsetX float64) LineOutline {
	top := g.Top()
	bottom := g.Bottom()
	return LineOutline{
		Start: top.Left,
		TopToCenter: QuadSegment{
			Control: top.Left.Offset(controlOffsetX, 0),
			To:      top.Center,
		},
		TopToRight: QuadSegment{
			Control: top.Right.Offset(-controlOffsetX, 0),
			To:      top.Right,
		},
		BottomRight: bottom.Right,
		BottomToCenter: QuadSegment{
			Control: bottom.Right.Offset(-controlOffsetX, 0),
			To:      bottom.Center,
		},
		BottomToLeft: QuadSegment{
			Control: bottom.Left.Offset(controlOffsetX, 0),
			To:      bottom.Left,
		},
	}
}
