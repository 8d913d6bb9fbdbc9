package systems

import (
	"github.com/gonewx/horde/pkg/components"
	"github.com/gonewx/horde/pkg/entities"
	"github.com/gonewx/horde/pkg/game"
	"github.com/gonewx/horde/pkg/types"
)

// EnemySystem 推进普通敌人
//
// 所有类型都朝玩家移动，射手和精英额外有自己的行为分支。
// 尚未进入场地的敌人不会开火，也不会被剔除。
type EnemySystem struct {
	state *game.SimulationState
	hooks game.Hooks
}

// NewEnemySystem 创建敌人系统
func NewEnemySystem(state *game.SimulationState, hooks game.Hooks) *EnemySystem {
	return &EnemySystem{
		state: state,
		hooks: hooks,
	}
}

// Update 移动所有敌人并执行类型行为
func (es *EnemySystem) Update(deltaTime float64) {
	arena := es.state.Tuning.Arena
	p := es.state.Player

	for _, e := range es.state.Enemies.Items() {
		if !e.Alive() {
			continue
		}
		if !e.HasEnteredScreen && insideRect(e.X, e.Y, arena.Width, arena.Height, 0) {
			e.HasEnteredScreen = true
		}

		// 没有玩家时原地不动
		if p == nil {
			e.VX, e.VY = 0, 0
			continue
		}

		switch e.Type {
		case types.EnemyShooter:
			es.updateShooter(e, p, deltaTime)
		case types.EnemyEnforcer:
			es.updateEnforcer(e, p, deltaTime)
		default:
			seek(e, p, e.Speed)
		}

		e.X += e.VX * deltaTime
		e.Y += e.VY * deltaTime
	}
}

// seek 朝玩家方向设置速度
func seek(e *components.EnemyComponent, p *components.PlayerComponent, speed float64) {
	dx, dy := normalize(p.X-e.X, p.Y-e.Y)
	e.VX = dx * speed
	e.VY = dy * speed
}

// updateShooter 射手：靠近到偏好距离后停下，按冷却瞄准玩家开火
func (es *EnemySystem) updateShooter(e *components.EnemyComponent, p *components.PlayerComponent, dt float64) {
	stats := es.state.Tuning.Enemy(types.EnemyShooter)

	rangeSq := stats.PreferredRange * stats.PreferredRange
	if distSq(e.X, e.Y, p.X, p.Y) > rangeSq || !e.HasEnteredScreen {
		seek(e, p, e.Speed)
	} else {
		e.VX, e.VY = 0, 0
	}

	e.ShootCooldown -= dt
	if e.ShootCooldown > 0 {
		return
	}
	e.ShootCooldown = stats.ShootCooldown
	if !e.HasEnteredScreen || !p.Alive() {
		return
	}
	combat := es.state.Tuning.Combat
	angle := angleTo(e.X, e.Y, p.X, p.Y)
	es.state.EnemyBullets.Add(entities.NewEnemyBullet(combat, e.X, e.Y, angle, 0, EnemyColor(e.Type)))
}

// updateEnforcer 精英：追踪 -> 蓄力预警 -> 沿锁定方向冲刺 -> 追踪
func (es *EnemySystem) updateEnforcer(e *components.EnemyComponent, p *components.PlayerComponent, dt float64) {
	stats := es.state.Tuning.Enemy(types.EnemyEnforcer)

	switch e.EnforcerState {
	case components.EnforcerSeeking:
		seek(e, p, e.Speed)
		e.DashCooldown -= dt
		if e.DashCooldown <= 0 && e.HasEnteredScreen {
			e.EnforcerState = components.EnforcerCharging
			e.StateTimer = stats.ChargeTime
			e.VX, e.VY = 0, 0
		}

	case components.EnforcerCharging:
		e.VX, e.VY = 0, 0
		e.StateTimer -= dt
		if e.StateTimer <= 0 {
			// 蓄力结束时锁定方向
			e.DashDirX, e.DashDirY = normalize(p.X-e.X, p.Y-e.Y)
			e.EnforcerState = components.EnforcerDashing
			e.StateTimer = stats.DashDuration
			es.hooks.EmitAudioCue(game.CueEnforcerDash)
		}

	case components.EnforcerDashing:
		e.VX = e.DashDirX * stats.DashSpeed
		e.VY = e.DashDirY * stats.DashSpeed
		e.StateTimer -= dt
		if e.StateTimer <= 0 {
			e.EnforcerState = components.EnforcerSeeking
			e.DashCooldown = stats.DashCooldown
		}
	}
}

// Cull 剔除离开场地（含余量）的敌人
//
// 只剔除进入过场地的敌人；被剔除的敌人从本波已生成数中扣除，
// 使本波的击杀目标仍然可以达成。
//
// 返回:
//   - int: 被剔除的数量
func (es *EnemySystem) Cull() int {
	arena := es.state.Tuning.Arena
	spawned := 0
	removed := es.state.Enemies.Retain(func(e *components.EnemyComponent) bool {
		if !e.HasEnteredScreen || insideRect(e.X, e.Y, arena.Width, arena.Height, arena.CullMargin) {
			return true
		}
		if !e.Summoned {
			spawned++
		}
		return false
	})
	es.state.Wave.Spawned -= spawned
	if es.state.Wave.Spawned < 0 {
		es.state.Wave.Spawned = 0
	}
	return removed
}
