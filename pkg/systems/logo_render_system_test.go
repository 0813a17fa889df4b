package systems

import (
	"image/color"
	"testing"

	"github.com/decker502/dimologo/pkg/components"
	"github.com/decker502/dimologo/pkg/ecs"
	"github.com/decker502/dimologo/pkg/entities"
	"github.com/hajimehoshi/ebiten/v2"
)

// TestLogoRenderSystemCanvasCache 测试离屏缓存只在 Dirty 时重建
func TestLogoRenderSystemCanvasCache(t *testing.T) {
	em := ecs.NewEntityManager()
	id, logoComp := createTestLogo(t, em, false)
	rs := NewLogoRenderSystem(em)
	screen := ebiten.NewImage(200, 200)

	rs.Draw(screen)
	if logoComp.Canvas == nil {
		t.Fatal("首次绘制后应创建 Canvas")
	}
	if logoComp.Dirty {
		t.Error("绘制后 Dirty 应被清除")
	}
	canvas := logoComp.Canvas

	rs.Draw(screen)
	if logoComp.Canvas != canvas {
		t.Error("未变化时不应重建 Canvas")
	}

	logoComp.Clock.SetProgress(0.5)
	if !logoComp.Dirty {
		t.Fatal("SetProgress 应标记 Dirty")
	}
	rs.DrawEntity(screen, id)
	if logoComp.Dirty {
		t.Error("重绘后 Dirty 应被清除")
	}

	logoComp.Resize(90, 90)
	rs.Draw(screen)
	if size := logoComp.Canvas.Bounds().Size(); size.X != 90 || size.Y != 90 {
		t.Errorf("Resize 后 Canvas 尺寸 = %v, 期望 90x90", size)
	}
}

// TestLogoRenderSystemSkipsOverlay 测试普通绘制跳过覆盖层 Logo
func TestLogoRenderSystemSkipsOverlay(t *testing.T) {
	em := ecs.NewEntityManager()
	_, logoComp := createTestLogo(t, em, false)
	logoComp.Overlay = true

	rs := NewLogoRenderSystem(em)
	rs.Draw(ebiten.NewImage(100, 100))
	if logoComp.Canvas != nil {
		t.Error("覆盖层 Logo 不应由普通绘制流程渲染")
	}
}

// TestHUDRenderSystemDrawsOverlayLogo 测试 HUD 绘制面板内 Logo
func TestHUDRenderSystemDrawsOverlayLogo(t *testing.T) {
	em := ecs.NewEntityManager()
	opts := entities.DefaultLogoOptions()
	hudID, logoID, err := entities.NewHUDEntity(em, entities.HUDOptions{
		CenterX: 100,
		CenterY: 100,
		Title:   "Loading...",
		Visible: true,
		Logo:    opts,
	})
	if err != nil {
		t.Fatalf("NewHUDEntity 失败: %v", err)
	}

	logoRS := NewLogoRenderSystem(em)
	hudRS := NewHUDRenderSystem(em, logoRS, nil)
	screen := ebiten.NewImage(200, 200)

	logoRS.Draw(screen)
	logoComp, _ := ecs.GetComponent[*components.LogoComponent](em, logoID)
	if logoComp.Canvas != nil {
		t.Fatal("HUD 内 Logo 不应由 LogoRenderSystem.Draw 绘制")
	}

	hudRS.Draw(screen)
	if logoComp.Canvas == nil {
		t.Error("HUD 绘制后面板内 Logo 应已渲染")
	}

	hud, _ := ecs.GetComponent[*components.HUDComponent](em, hudID)
	hud.Visible = false
	hud.TextColor = color.RGBA{A: 255}
	logoComp.Canvas = nil
	hudRS.Draw(screen)
	if logoComp.Canvas != nil {
		t.Error("隐藏的 HUD 不应绘制")
	}
}
