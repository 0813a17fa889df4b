package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneFactory 场景工厂函数，按名称创建场景
type SceneFactory func(name string) Scene

// SceneManager 管理当前活动场景
// 任一时刻只有一个场景的 Update / Draw 会被调用
type SceneManager struct {
	currentScene Scene
	currentName  string
	sceneFactory SceneFactory
}

// NewSceneManager 创建场景管理器，初始没有活动场景
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo 切换到指定场景
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
	sm.currentName = ""
}

// SwitchToNamed 通过工厂创建并切换到指定名称的场景
//
// 返回：
//   - bool: 工厂未设置或创建失败时返回 false，当前场景保持不变
func (sm *SceneManager) SwitchToNamed(name string) bool {
	if sm.sceneFactory == nil {
		log.Printf("[SceneManager] 错误: SceneFactory 未设置")
		return false
	}

	scene := sm.sceneFactory(name)
	if scene == nil {
		log.Printf("[SceneManager] 错误: 无法创建场景: %s", name)
		return false
	}

	sm.currentScene = scene
	sm.currentName = name
	log.Printf("[SceneManager] 切换到场景: %s", name)
	return true
}

// GetCurrentScene 返回当前活动场景，没有时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// CurrentName 当前场景名称（通过 SwitchTo 直接切换时为空）
func (sm *SceneManager) CurrentName() string {
	return sm.currentName
}

// Update 更新当前场景
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw 绘制当前场景
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}

// SaveOnExit 若当前场景实现了 Saveable，调用其保存逻辑
func (sm *SceneManager) SaveOnExit() bool {
	if saveable, ok := sm.currentScene.(Saveable); ok {
		return saveable.SaveOnExit()
	}
	return true
}
