package systems

import (
	"math"
	"strings"

	"github.com/decker502/dimologo/pkg/components"
	"github.com/decker502/dimologo/pkg/config"
	"github.com/decker502/dimologo/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// HUDRenderSystem 加载 HUD 渲染系统
//
// 绘制顺序：圆角面板 → 面板内 Logo（覆盖层）→ 标题文字。
type HUDRenderSystem struct {
	entityManager *ecs.EntityManager
	logoRenderer  *LogoRenderSystem
	titleFont     *text.GoTextFace // 标题字体，为 nil 时不绘制文字
}

// NewHUDRenderSystem 创建 HUD 渲染系统
func NewHUDRenderSystem(em *ecs.EntityManager, logoRenderer *LogoRenderSystem, titleFont *text.GoTextFace) *HUDRenderSystem {
	return &HUDRenderSystem{
		entityManager: em,
		logoRenderer:  logoRenderer,
		titleFont:     titleFont,
	}
}

// Draw 绘制所有可见的 HUD
func (s *HUDRenderSystem) Draw(screen *ebiten.Image) {
	entities := ecs.GetEntitiesWith2[*components.HUDComponent, *components.PositionComponent](s.entityManager)
	for _, id := range entities {
		hud, _ := ecs.GetComponent[*components.HUDComponent](s.entityManager, id)
		if !hud.Visible {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		s.drawHUD(screen, hud, pos)
	}
}

func (s *HUDRenderSystem) drawHUD(screen *ebiten.Image, hud *components.HUDComponent, pos *components.PositionComponent) {
	lines := s.titleLines(hud)

	// 标题超过一行时面板向下延伸
	height := hud.Size
	if len(lines) > 1 {
		height += float64(len(lines)-1) * titleLineHeight(s.titleFont)
	}

	var bezel vector.Path
	AppendRoundedRectPath(&bezel, pos.X, pos.Y, hud.Size, height, config.HUDCornerInset)
	s.logoRenderer.fillPath(screen, &bezel, hud.BezelColor, 1)

	s.logoRenderer.DrawEntity(screen, hud.LogoEntity)

	if len(lines) == 0 {
		return
	}

	// 文字位于 Logo 下方，水平居中
	textY := pos.Y + config.HUDLogoTop + config.LogoIntrinsicSize + config.HUDTextSpacing
	op := &text.DrawOptions{}
	op.GeoM.Translate(pos.X+hud.Size/2, textY)
	op.ColorScale.ScaleWithColor(hud.TextColor)
	op.LineSpacing = titleLineHeight(s.titleFont)
	op.LayoutOptions.PrimaryAlign = text.AlignCenter
	op.LayoutOptions.SecondaryAlign = text.AlignStart
	text.Draw(screen, strings.Join(lines, "\n"), s.titleFont, op)
}

// titleLines 按面板内宽断行后的标题，无字体或无标题时为空
func (s *HUDRenderSystem) titleLines(hud *components.HUDComponent) []string {
	if s.titleFont == nil || hud.Title == "" {
		return nil
	}
	return wrapText(hud.Title, hud.Size-2*config.HUDCornerInset, faceMeasure(s.titleFont))
}

// AppendRoundedRectPath 将圆角矩形轮廓追加到 path
// 圆角半径不超过短边的一半
func AppendRoundedRectPath(path *vector.Path, x, y, width, height, radius float64) {
	if width <= 0 || height <= 0 {
		return
	}
	radius = math.Max(0, math.Min(radius, math.Min(width, height)/2))

	x0, y0 := float32(x), float32(y)
	x1, y1 := float32(x+width), float32(y+height)
	r := float32(radius)

	path.MoveTo(x0+r, y0)
	path.LineTo(x1-r, y0)
	path.Arc(x1-r, y0+r, r, -math.Pi/2, 0, vector.Clockwise)
	path.LineTo(x1, y1-r)
	path.Arc(x1-r, y1-r, r, 0, math.Pi/2, vector.Clockwise)
	path.LineTo(x0+r, y1)
	path.Arc(x0+r, y1-r, r, math.Pi/2, math.Pi, vector.Clockwise)
	path.LineTo(x0, y0+r)
	path.Arc(x0+r, y0+r, r, math.Pi, 3*math.Pi/2, vector.Clockwise)
	path.Close()
}
