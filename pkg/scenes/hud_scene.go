package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/decker502/dimologo/pkg/components"
	"github.com/decker502/dimologo/pkg/ecs"
	"github.com/decker502/dimologo/pkg/entities"
	"github.com/decker502/dimologo/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

// HUDScene 加载 HUD 场景
//
// 只显示居中的加载面板，面板内 Logo 持续播放。
// Tab 或点击返回 Logo 演示场景。
type HUDScene struct {
	opts SceneOptions

	entityManager   *ecs.EntityManager
	animationSystem *systems.LogoAnimationSystem
	hudRenderer     *systems.HUDRenderSystem

	hudEntity  ecs.EntityID
	background color.RGBA
	drag       *DragManager
}

// NewHUDScene 创建加载 HUD 场景
func NewHUDScene(opts SceneOptions) (*HUDScene, error) {
	opts = opts.withDefaults()
	cfg := opts.Config
	settings := opts.Settings.GetSettings()

	em := ecs.NewEntityManager()
	logoOpts := opts.logoOptions()
	logoOpts.AutoPlay = true

	hudID, _, err := entities.NewHUDEntity(em, entities.HUDOptions{
		CenterX: float64(cfg.Window.Width) / 2,
		CenterY: float64(cfg.Window.Height) / 2,
		Title:   settings.HUDTitle,
		Visible: true,
		Logo:    logoOpts,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create hud: %w", err)
	}

	log.Printf("[HUDScene] Created: title=%q", settings.HUDTitle)
	return &HUDScene{
		opts:            opts,
		entityManager:   em,
		animationSystem: systems.NewLogoAnimationSystem(em),
		hudRenderer:     systems.NewHUDRenderSystem(em, systems.NewLogoRenderSystem(em), opts.titleFont()),
		hudEntity:       hudID,
		background:      cfg.BackgroundColor(),
		drag:            NewDragManager(),
	}, nil
}

// HUD HUD 组件
func (s *HUDScene) HUD() *components.HUDComponent {
	comp, _ := ecs.GetComponent[*components.HUDComponent](s.entityManager, s.hudEntity)
	return comp
}

// HUDLogo 面板内 Logo 的组件
func (s *HUDScene) HUDLogo() *components.LogoComponent {
	comp, _ := ecs.GetComponent[*components.LogoComponent](s.entityManager, s.HUD().LogoEntity)
	return comp
}

// Update 推进动画，Tab 或点击返回
func (s *HUDScene) Update(deltaTime float64) {
	for _, action := range pressedActions(s.opts.Keys) {
		s.HandleAction(action)
	}

	s.drag.Advance(s.opts.Pointer())
	if s.drag.WasTap() {
		s.HandleAction(ActionSwitchScene)
	}

	s.animationSystem.Update(deltaTime)
}

// HandleAction 只响应场景切换
func (s *HUDScene) HandleAction(action Action) {
	if action != ActionSwitchScene || s.opts.SceneManager == nil {
		return
	}
	s.opts.SceneManager.SwitchToNamed(SceneLogo)
}

// Draw 绘制背景与 HUD
func (s *HUDScene) Draw(screen *ebiten.Image) {
	screen.Fill(s.background)
	s.hudRenderer.Draw(screen)
}

// SaveOnExit 退出时保存设置（Logo 场景中的修改可能尚未保存）
func (s *HUDScene) SaveOnExit() bool {
	if err := s.opts.Settings.Save(); err != nil {
		log.Printf("[HUDScene] Warning: Failed to save settings on exit: %v", err)
		return false
	}
	return true
}
