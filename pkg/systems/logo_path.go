package systems

import (
	"math"

	"github.com/decker502/dimologo/pkg/config"
	"github.com/decker502/dimologo/pkg/logo"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// AppendDropPath 将水滴轮廓追加到 path（坐标相对绘制区域左上角）
//
// 圆形阶段为完整的圆；水滴形为：顶点 → 右侧曲线 → 下半圆弧 → 左侧曲线 → 顶点。
// 半径为 0 时不追加任何内容。
func AppendDropPath(path *vector.Path, g logo.DropGeometry) {
	if g.Radius <= 0 {
		return
	}
	cx, cy, r := float32(g.Center.X), float32(g.Center.Y), float32(g.Radius)

	if g.IsRound() {
		path.MoveTo(cx+r, cy)
		path.Arc(cx, cy, r, 0, 2*math.Pi, vector.Clockwise)
		path.Close()
		return
	}

	td := g.Teardrop
	path.MoveTo(float32(td.Apex.X), float32(td.Apex.Y))
	path.QuadTo(float32(td.RightControl.X), float32(td.RightControl.Y), float32(td.Right.X), float32(td.Right.Y))
	// 屏幕坐标 y 轴向下，顺时针从 0 到 π 经过圆的下半部分
	path.Arc(cx, cy, r, 0, math.Pi, vector.Clockwise)
	path.QuadTo(float32(td.LeftControl.X), float32(td.LeftControl.Y), float32(td.Apex.X), float32(td.Apex.Y))
	path.Close()
}

// AppendLinePath 将横线填充轮廓追加到 path
func AppendLinePath(path *vector.Path, g logo.LineGeometry) {
	o := g.Outline(config.LineControlOffsetX)

	path.MoveTo(float32(o.Start.X), float32(o.Start.Y))
	appendQuad(path, o.TopToCenter)
	appendQuad(path, o.TopToRight)
	path.LineTo(float32(o.BottomRight.X), float32(o.BottomRight.Y))
	appendQuad(path, o.BottomToCenter)
	appendQuad(path, o.BottomToLeft)
	path.Close()
}

func appendQuad(path *vector.Path, seg logo.QuadSegment) {
	path.QuadTo(float32(seg.Control.X), float32(seg.Control.Y), float32(seg.To.X), float32(seg.To.Y))
}
