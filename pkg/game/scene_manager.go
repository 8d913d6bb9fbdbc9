package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneFactory 场景工厂函数类型
// 每次开新局时调用，避免 game 包依赖 scenes 包
type SceneFactory func() Scene

// SceneManager 管理当前活动场景
// 保证任一时刻只有一个场景的 Update 和 Draw 被调用
type SceneManager struct {
	currentScene Scene
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

// SwitchTo 切换活动场景
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
}

// Restart 用工厂函数创建新场景并切换过去
func (sm *SceneManager) Restart() {
	if sm.sceneFactory == nil {
		log.Printf("[SceneManager] 错误: SceneFactory 未设置")
		return
	}
	if scene := sm.sceneFactory(); scene != nil {
		sm.SwitchTo(scene)
		log.Printf("[SceneManager] 开始新的一局")
	}
}

// NotifyResumed 通知当前场景窗口已恢复
func (sm *SceneManager) NotifyResumed() {
	if r, ok := sm.currentScene.(Resumable); ok {
		r.OnResume()
	}
}

// Update 更新当前场景
// 场景报告结束时自动开新局
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene == nil {
		return
	}
	sm.currentScene.Update(deltaTime)
	if f, ok := sm.currentScene.(Finishable); ok && f.Finished() {
		sm.Restart()
	}
}

// Draw 绘制当前场景
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
