package components

import (
	"image/color"

	"github.com/decker502/dimologo/pkg/ecs"
)

// HUDComponent 加载 HUD 组件
//
// HUD 是一个深色圆角面板：上方居中放置固有尺寸的 Logo，下方显示文字。
// 面板位置由同一实体上的 PositionComponent 给出（左上角）。
type HUDComponent struct {
	// Title 面板文字
	Title string

	// Visible 是否显示
	Visible bool

	// Size 面板边长（正方形）
	Size float64

	// LogoEntity 面板内 Logo 实体
	LogoEntity ecs.EntityID

	// BezelColor 面板背景色
	BezelColor color.RGBA

	// TextColor 文字颜色
	TextColor color.RGBA
}
