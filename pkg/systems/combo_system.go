package systems

import (
	"github.com/gonewx/horde/pkg/game"
)

// ComboSystem 连击计数器
//
// 每次击杀 +1 并重置衰减计时，玩家受到伤害时清零，
// 计时耗尽时清零。连击只影响界面显示，不放大奖励。
type ComboSystem struct {
	state  *game.SimulationState
	window float64
}

// NewComboSystem 创建连击系统
func NewComboSystem(state *game.SimulationState) *ComboSystem {
	return &ComboSystem{
		state:  state,
		window: state.Tuning.Combo.Window,
	}
}

// Register 记录一次击杀
func (cs *ComboSystem) Register() {
	c := &cs.state.Combo
	c.Count++
	c.Timer = cs.window
	if c.Count > c.Best {
		c.Best = c.Count
	}
}

// Break 玩家受伤，连击清零
func (cs *ComboSystem) Break() {
	cs.state.Combo.Count = 0
	cs.state.Combo.Timer = 0
}

// Update 推进衰减计时
func (cs *ComboSystem) Update(deltaTime float64) {
	c := &cs.state.Combo
	if c.Count == 0 {
		return
	}
	c.Timer -= deltaTime
	if c.Timer <= 0 {
		c.Count = 0
		c.Timer = 0
	}
}
