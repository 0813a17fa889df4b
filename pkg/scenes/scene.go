package scenes

import (
	"github.com/decker502/dimologo/pkg/game"
)

// Scene game.Scene 的别名
type Scene = game.Scene

// 场景名称（SceneManager.SwitchToNamed 使用）
const (
	SceneLogo = "logo"
	SceneHUD  = "hud"
)
