package scenes

import (
	"testing"

	"github.com/decker502/dimologo/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
)

// TestNewHUDScene 测试 HUD 场景始终可见且自动播放
func TestNewHUDScene(t *testing.T) {
	settings := game.NewSettingsManager(nil, nil)
	settings.SetHUDTitle("请稍候")

	scene, err := NewHUDScene(SceneOptions{Settings: settings, Keys: fakeKeys{}, Pointer: noPointer})
	if err != nil {
		t.Fatalf("NewHUDScene 失败: %v", err)
	}

	hud := scene.HUD()
	if !hud.Visible {
		t.Error("HUD 场景中面板应始终可见")
	}
	if hud.Title != "请稍候" {
		t.Errorf("Title = %q, 期望 请稍候", hud.Title)
	}
	if !scene.HUDLogo().Overlay {
		t.Error("面板内 Logo 应属于覆盖层")
	}
	if !scene.HUDLogo().Clock.IsRunning() {
		t.Error("面板内 Logo 应自动播放")
	}

	// 20 Hz tick，0.1 秒推进两次
	scene.Update(0.1)
	if got := scene.HUDLogo().Clock.Time(); got <= 0 {
		t.Errorf("Update 后 Time = %v, 期望大于 0", got)
	}
}

// TestHUDSceneTapReturns 测试点击返回 Logo 场景
func TestHUDSceneTapReturns(t *testing.T) {
	var samples []PointerSample
	pointer := func() PointerSample {
		if len(samples) == 0 {
			return PointerSample{}
		}
		s := samples[0]
		samples = samples[1:]
		return s
	}

	sm := game.NewSceneManager()
	opts := SceneOptions{SceneManager: sm, Keys: fakeKeys{}, Pointer: pointer}
	sm.SetSceneFactory(func(name string) game.Scene {
		if name == SceneLogo {
			s, _ := NewLogoScene(SceneOptions{SceneManager: sm, Keys: fakeKeys{}, Pointer: noPointer})
			return s
		}
		return nil
	})

	scene, err := NewHUDScene(opts)
	if err != nil {
		t.Fatalf("NewHUDScene 失败: %v", err)
	}
	sm.SwitchTo(scene)

	samples = []PointerSample{
		{JustPressed: true, Pressed: true, X: 100, Y: 100},
		{X: 101, Y: 100},
	}
	scene.Update(1.0 / 60)
	if _, ok := sm.GetCurrentScene().(*HUDScene); !ok {
		t.Fatal("按下时不应切换场景")
	}
	scene.Update(1.0 / 60)
	if _, ok := sm.GetCurrentScene().(*LogoScene); !ok {
		t.Errorf("点击后当前场景 = %T, 期望 *LogoScene", sm.GetCurrentScene())
	}
}

// TestHUDSceneTabReturns 测试 Tab 返回 Logo 场景
func TestHUDSceneTabReturns(t *testing.T) {
	sm := game.NewSceneManager()
	sm.SetSceneFactory(func(name string) game.Scene {
		s, _ := NewLogoScene(SceneOptions{Keys: fakeKeys{}, Pointer: noPointer})
		return s
	})

	scene, err := NewHUDScene(SceneOptions{
		SceneManager: sm,
		Keys:         fakeKeys{ebiten.KeyTab: true},
		Pointer:      noPointer,
	})
	if err != nil {
		t.Fatalf("NewHUDScene 失败: %v", err)
	}
	sm.SwitchTo(scene)
	scene.Update(1.0 / 60)

	if sm.CurrentName() != SceneLogo {
		t.Errorf("CurrentName = %q, 期望 %q", sm.CurrentName(), SceneLogo)
	}
	if !scene.SaveOnExit() {
		t.Error("仅内存模式下 SaveOnExit 应返回 true")
	}
}
