package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene 场景接口（Logo 演示、加载 HUD 等）
// 每个场景有独立的更新与绘制逻辑
type Scene interface {
	// Update 按经过的时间（秒）更新场景
	Update(deltaTime float64)

	// Draw 将场景绘制到 screen
	Draw(screen *ebiten.Image)
}

// Saveable 可选接口，场景在程序退出时保存状态
//
// 实现此接口的场景会在窗口关闭时被调用 SaveOnExit()
type Saveable interface {
	// SaveOnExit 返回 true 表示保存成功或无需保存
	SaveOnExit() bool
}
