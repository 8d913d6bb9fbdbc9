package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene 一个可独立更新和绘制的场景（目前只有对局场景）
type Scene interface {
	// Update 按经过的时间（秒）更新场景
	Update(deltaTime float64)

	// Draw 绘制到屏幕
	Draw(screen *ebiten.Image)
}

// Resumable 可选接口：窗口从隐藏/失焦恢复时被调用
// 对局场景借此让模拟跳过恢复后的第一帧
type Resumable interface {
	OnResume()
}

// Finishable 可选接口：场景结束后由 SceneManager 切换到下一个场景
type Finishable interface {
	Finished() bool
}
