package components

import (
	"github.com/gonewx/horde/pkg/ecs"
	"github.com/gonewx/horde/pkg/types"
)

// PowerUpComponent 掉落道具
type PowerUpComponent struct {
	ID       ecs.EntityID
	Type     types.PowerUpType
	X, Y     float64
	Radius   float64
	Life     float64 // 剩余寿命，<= 0 自动消失
	BobPhase float64 // 上下浮动相位，仅用于显示
}
