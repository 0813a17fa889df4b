// Package raster 在 CPU 上把 Logo 帧栅格化为位图
//
// 与 systems 包中的 GPU 渲染共用同一套几何（logo.Frame），
// 供离线导出（PNG 序列、精灵图）与终端预览使用，不依赖图形上下文。
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/decker502/dimologo/pkg/config"
	"github.com/decker502/dimologo/pkg/logo"
	"golang.org/x/image/vector"
)

// Renderer 帧栅格化器
type Renderer struct {
	Width, Height int
	Foreground    color.RGBA
	Background    color.RGBA
}

// NewRenderer 创建指定尺寸的栅格化器
func NewRenderer(width, height int, fg, bg color.RGBA) *Renderer {
	return &Renderer{Width: width, Height: height, Foreground: fg, Background: bg}
}

// Bounds 绘制区域
func (r *Renderer) Bounds() logo.Bounds {
	return logo.Bounds{Width: float64(r.Width), Height: float64(r.Height)}
}

// Render 将帧绘制为新的 RGBA 图像
func (r *Renderer) Render(f logo.Frame) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, r.Width, r.Height))
	r.RenderInto(dst, image.Point{}, f)
	return dst
}

// RenderInto 将帧绘制到 dst 中以 origin 为左上角的区域
func (r *Renderer) RenderInto(dst draw.Image, origin image.Point, f logo.Frame) {
	area := image.Rect(0, 0, r.Width, r.Height).Add(origin)
	draw.Draw(dst, area, image.NewUniform(r.Background), image.Point{}, draw.Src)

	if z := dropRasterizer(r.Width, r.Height, f.Drop); z != nil {
		z.Draw(dst, area, image.NewUniform(scaleAlpha(r.Foreground, f.Drop.Opacity)), image.Point{})
	}
	lineRasterizer(r.Width, r.Height, f.Line).Draw(dst, area, image.NewUniform(r.Foreground), image.Point{})
}

// Mask 返回帧的覆盖率（水滴透明度已计入），用于单色输出
func (r *Renderer) Mask(f logo.Frame) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, r.Width, r.Height))
	if z := dropRasterizer(r.Width, r.Height, f.Drop); z != nil {
		a := uint8(math.Round(255 * f.Drop.Opacity))
		z.Draw(mask, mask.Bounds(), image.NewUniform(color.Alpha{A: a}), image.Point{})
	}
	lineRasterizer(r.Width, r.Height, f.Line).Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask
}

// dropRasterizer 水滴轮廓；半径为 0 或完全透明时返回 nil
func dropRasterizer(w, h int, g logo.DropGeometry) *vector.Rasterizer {
	if g.Radius <= 0 || g.Opacity <= 0 {
		return nil
	}
	z := vector.NewRasterizer(w, h)
	cx, cy, r := g.Center.X, g.Center.Y, g.Radius

	if g.IsRound() {
		z.MoveTo(float32(cx+r), float32(cy))
		arcTo(z, cx, cy, r, 0, 2*math.Pi)
		z.ClosePath()
		return z
	}

	td := g.Teardrop
	z.MoveTo(float32(td.Apex.X), float32(td.Apex.Y))
	z.QuadTo(float32(td.RightControl.X), float32(td.RightControl.Y), float32(td.Right.X), float32(td.Right.Y))
	arcTo(z, cx, cy, r, 0, math.Pi)
	z.QuadTo(float32(td.LeftControl.X), float32(td.LeftControl.Y), float32(td.Apex.X), float32(td.Apex.Y))
	z.ClosePath()
	return z
}

// lineRasterizer 横线填充轮廓
func lineRasterizer(w, h int, g logo.LineGeometry) *vector.Rasterizer {
	o := g.Outline(config.LineControlOffsetX)
	z := vector.NewRasterizer(w, h)
	z.MoveTo(float32(o.Start.X), float32(o.Start.Y))
	quadTo(z, o.TopToCenter)
	quadTo(z, o.TopToRight)
	z.LineTo(float32(o.BottomRight.X), float32(o.BottomRight.Y))
	quadTo(z, o.BottomToCenter)
	quadTo(z, o.BottomToLeft)
	z.ClosePath()
	return z
}

func quadTo(z *vector.Rasterizer, seg logo.QuadSegment) {
	z.QuadTo(float32(seg.Control.X), float32(seg.Control.Y), float32(seg.To.X), float32(seg.To.Y))
}

// arcTo 以三次贝塞尔近似圆弧（y 轴向下，角度递增方向）
// 当前点须已位于起始角处
func arcTo(z *vector.Rasterizer, cx, cy, r, start, end float64) {
	n := int(math.Ceil(math.Abs(end-start) / (math.Pi / 2)))
	if n == 0 {
		return
	}
	step := (end - start) / float64(n)
	k := 4.0 / 3.0 * math.Tan(step/4)

	a0 := start
	for i := 0; i < n; i++ {
		a1 := a0 + step
		cos0, sin0 := math.Cos(a0), math.Sin(a0)
		cos1, sin1 := math.Cos(a1), math.Sin(a1)
		z.CubeTo(
			float32(cx+r*(cos0-k*sin0)), float32(cy+r*(sin0+k*cos0)),
			float32(cx+r*(cos1+k*sin1)), float32(cy+r*(sin1-k*cos1)),
			float32(cx+r*cos1), float32(cy+r*sin1),
		)
		a0 = a1
	}
}

// logoMetrics 按位图尺寸换算几何参数
func logoMetrics(w, h int) config.LogoMetrics {
	return config.NewLogoMetrics(float64(w), float64(h))
}

// scaleAlpha 将预乘颜色整体乘以透明度
func scaleAlpha(c color.RGBA, opacity float64) color.RGBA {
	if opacity >= 1 {
		return c
	}
	s := math.Max(0, opacity)
	return color.RGBA{
		R: uint8(math.Round(float64(c.R) * s)),
		G: uint8(math.Round(float64(c.G) * s)),
		B: uint8(math.Round(float64(c.B) * s)),
		A: uint8(math.Round(float64(c.A) * s)),
	}
}
