package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Action 场景可响应的操作
type Action int

const (
	ActionNone Action = iota
	ActionTogglePlay
	ActionScrubBackward
	ActionScrubForward
	ActionDurationUp
	ActionDurationDown
	ActionCycleColor
	ActionToggleHUD
	ActionSave
	ActionSwitchScene
)

// String 操作名称（日志用）
func (a Action) String() string {
	switch a {
	case ActionTogglePlay:
		return "toggle-play"
	case ActionScrubBackward:
		return "scrub-backward"
	case ActionScrubForward:
		return "scrub-forward"
	case ActionDurationUp:
		return "duration-up"
	case ActionDurationDown:
		return "duration-down"
	case ActionCycleColor:
		return "cycle-color"
	case ActionToggleHUD:
		return "toggle-hud"
	case ActionSave:
		return "save"
	case ActionSwitchScene:
		return "switch-scene"
	default:
		return "none"
	}
}

// keyBinding 按键与操作的对应
type keyBinding struct {
	key    ebiten.Key
	action Action
}

// defaultKeyBindings 键盘操作
var defaultKeyBindings = []keyBinding{
	{ebiten.KeySpace, ActionTogglePlay},
	{ebiten.KeyArrowLeft, ActionScrubBackward},
	{ebiten.KeyArrowRight, ActionScrubForward},
	{ebiten.KeyArrowUp, ActionDurationUp},
	{ebiten.KeyArrowDown, ActionDurationDown},
	{ebiten.KeyC, ActionCycleColor},
	{ebiten.KeyH, ActionToggleHUD},
	{ebiten.KeyS, ActionSave},
	{ebiten.KeyTab, ActionSwitchScene},
}

// KeySource 按键输入来源
type KeySource interface {
	IsKeyJustPressed(key ebiten.Key) bool
}

// ebitenKeys 从 ebiten 读取按键
type ebitenKeys struct{}

func (ebitenKeys) IsKeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

// pressedActions 返回本帧触发的操作（按绑定顺序）
func pressedActions(keys KeySource) []Action {
	var actions []Action
	for _, b := range defaultKeyBindings {
		if keys.IsKeyJustPressed(b.key) {
			actions = append(actions, b.action)
		}
	}
	return actions
}
