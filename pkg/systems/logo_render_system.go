package systems

import (
	"image"
	"image/color"

	"github.com/decker502/dimologo/pkg/components"
	"github.com/decker502/dimologo/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// LogoRenderSystem Logo 渲染系统
//
// 每个 Logo 拥有一张离屏缓存（Canvas）。只有组件被标记为 Dirty 时才重新
// 计算几何并填充路径，其余帧直接把缓存绘制到屏幕上。
type LogoRenderSystem struct {
	entityManager *ecs.EntityManager

	// 纯白 1×1 源图像，三角形填充时作为纹理，颜色由顶点提供
	whiteSubImage *ebiten.Image

	// 重用的顶点缓冲（避免每帧分配）
	vertices []ebiten.Vertex
	indices  []uint16
	drawOpts ebiten.DrawImageOptions
}

// NewLogoRenderSystem 创建 Logo 渲染系统
func NewLogoRenderSystem(em *ecs.EntityManager) *LogoRenderSystem {
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)

	return &LogoRenderSystem{
		entityManager: em,
		whiteSubImage: white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
	}
}

// Draw 绘制所有非覆盖层的 Logo
func (s *LogoRenderSystem) Draw(screen *ebiten.Image) {
	entities := ecs.GetEntitiesWith2[*components.LogoComponent, *components.PositionComponent](s.entityManager)
	for _, id := range entities {
		logoComp, _ := ecs.GetComponent[*components.LogoComponent](s.entityManager, id)
		if logoComp.Overlay {
			continue
		}
		s.DrawEntity(screen, id)
	}
}

// DrawEntity 绘制指定 Logo 实体（覆盖层由 HUD 渲染系统调用）
func (s *LogoRenderSystem) DrawEntity(screen *ebiten.Image, id ecs.EntityID) {
	logoComp, ok := ecs.GetComponent[*components.LogoComponent](s.entityManager, id)
	if !ok {
		return
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	if !ok {
		return
	}

	s.refreshCanvas(logoComp)
	if logoComp.Canvas == nil {
		return
	}

	s.drawOpts.GeoM.Reset()
	s.drawOpts.GeoM.Translate(pos.X, pos.Y)
	screen.DrawImage(logoComp.Canvas, &s.drawOpts)
}

// refreshCanvas 在需要时重建离屏缓存
func (s *LogoRenderSystem) refreshCanvas(logoComp *components.LogoComponent) {
	w, h := int(logoComp.Bounds.Width), int(logoComp.Bounds.Height)
	if w <= 0 || h <= 0 {
		return
	}

	if logoComp.Canvas != nil {
		size := logoComp.Canvas.Bounds().Size()
		if size.X != w || size.Y != h {
			logoComp.Canvas.Deallocate()
			logoComp.Canvas = nil
		}
	}
	if logoComp.Canvas == nil {
		logoComp.Canvas = ebiten.NewImage(w, h)
		logoComp.Dirty = true
	}
	if !logoComp.Dirty {
		return
	}

	logoComp.Canvas.Clear()
	frame := logoComp.Frame()

	var dropPath vector.Path
	AppendDropPath(&dropPath, frame.Drop)
	s.fillPath(logoComp.Canvas, &dropPath, logoComp.Foreground, frame.Drop.Opacity)

	var linePath vector.Path
	AppendLinePath(&linePath, frame.Line)
	s.fillPath(logoComp.Canvas, &linePath, logoComp.Foreground, 1)

	logoComp.Dirty = false
}

// fillPath 以指定颜色与透明度填充路径（非零环绕规则）
func (s *LogoRenderSystem) fillPath(dst *ebiten.Image, path *vector.Path, clr color.RGBA, opacity float64) {
	if opacity <= 0 {
		return
	}
	s.vertices, s.indices = path.AppendVerticesAndIndicesForFilling(s.vertices[:0], s.indices[:0])
	if len(s.indices) == 0 {
		return
	}

	// color.RGBA 为预乘 alpha，整体乘以透明度即可
	scale := float32(opacity) / 0xFF
	r, g, b, a := float32(clr.R)*scale, float32(clr.G)*scale, float32(clr.B)*scale, float32(clr.A)*scale
	for i := range s.vertices {
		s.vertices[i].SrcX = 1
		s.vertices[i].SrcY = 1
		s.vertices[i].ColorR = r
		s.vertices[i].ColorG = g
		s.vertices[i].ColorB = b
		s.vertices[i].ColorA = a
	}

	dst.DrawTriangles(s.vertices, s.indices, s.whiteSubImage, &ebiten.DrawTrianglesOptions{
		FillRule:  ebiten.NonZero,
		AntiAlias: true,
	})
}
