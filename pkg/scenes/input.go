package scenes

import (
	"github.com/gonewx/horde/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// keyboardInput 从键盘鼠标采集输入
//
// 按键:
//   - WASD / 方向键: 移动
//   - 鼠标: 瞄准，左键或空格开火
//   - 左 Shift 或右键: 冲刺
//   - Q: 切换自动瞄准
type keyboardInput struct {
	autoAim bool
}

func newKeyboardInput() *keyboardInput {
	return &keyboardInput{}
}

func (k *keyboardInput) read(*game.SimulationState) game.Input {
	var in game.Input

	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		in.MoveX--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		in.MoveX++
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		in.MoveY--
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		in.MoveY++
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		k.autoAim = !k.autoAim
	}
	in.AutoAim = k.autoAim

	mx, my := ebiten.CursorPosition()
	in.AimX, in.AimY = float64(mx), float64(my)
	in.HasAim = true
	in.Fire = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) || ebiten.IsKeyPressed(ebiten.KeySpace)

	in.Dash = inpututil.IsKeyJustPressed(ebiten.KeyShiftLeft) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)
	return in
}

func (k *keyboardInput) pausePressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

func (k *keyboardInput) restartPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeyEnter)
}
