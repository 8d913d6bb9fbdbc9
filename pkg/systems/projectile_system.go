package systems

import (
	"github.com/gonewx/horde/pkg/components"
	"github.com/gonewx/horde/pkg/game"
)

// ProjectileSystem 推进玩家子弹和敌方子弹
// 寿命耗尽或飞出场地（含余量）的子弹在本帧删除
type ProjectileSystem struct {
	state *game.SimulationState
}

// NewProjectileSystem 创建子弹系统
func NewProjectileSystem(state *game.SimulationState) *ProjectileSystem {
	return &ProjectileSystem{state: state}
}

// Update 积分位置并删除越界和过期的子弹
func (ps *ProjectileSystem) Update(deltaTime float64) {
	arena := ps.state.Tuning.Arena

	for _, b := range ps.state.Bullets.Items() {
		b.X += b.VX * deltaTime
		b.Y += b.VY * deltaTime
		b.Life -= deltaTime
	}
	ps.state.Bullets.Retain(func(b *components.BulletComponent) bool {
		return b.Life > 0 && insideRect(b.X, b.Y, arena.Width, arena.Height, arena.BulletMargin)
	})

	for _, b := range ps.state.EnemyBullets.Items() {
		b.X += b.VX * deltaTime
		b.Y += b.VY * deltaTime
		b.Life -= deltaTime
	}
	ps.state.EnemyBullets.Retain(func(b *components.EnemyBulletComponent) bool {
		return b.Life > 0 && insideRect(b.X, b.Y, arena.Width, arena.Height, arena.BulletMargin)
	})
}
