package systems

import (
	"log"

	"github.com/gonewx/horde/pkg/game"
)

// Simulation 模拟内核的逐帧编排器
//
// 每帧严格按以下顺序执行：
//  1. 夹紧帧时间（恢复后的第一帧整帧跳过）
//  2. 玩家
//  3. 子弹
//  4. 敌方子弹与玩家
//  5. Boss，然后普通敌人
//  6. 剔除离场敌人
//  7. 道具
//  8. 重建空间索引
//  9. 玩家子弹与 Boss、敌人
//  10. 敌人与玩家接触
//  11. Boss 与玩家接触
//  12. 波次导演
//  13. 连击衰减
//  14. 结束判定：玩家死亡后只推进粒子，宽限期结束后通知 RunObserver
//
// Step 不返回错误，也不会因为玩家或 Boss 缺席而 panic。
type Simulation struct {
	state *game.SimulationState
	hooks game.Hooks

	combo       *ComboSystem
	particles   *ParticleSystem
	player      *PlayerSystem
	projectiles *ProjectileSystem
	enemies     *EnemySystem
	bosses      *BossSystem
	powerUps    *PowerUpSystem
	collisions  *CollisionSystem
	waves       *WaveDirector

	// skipNext 恢复后跳过下一次 Step
	skipNext bool
}

// NewSimulation 创建编排器
//
// 参数:
//   - state: 本局状态，由 Simulation 独占修改
//   - hooks: 外部协作者，nil 时使用 game.NopHooks
func NewSimulation(state *game.SimulationState, hooks game.Hooks) *Simulation {
	if hooks == nil {
		hooks = game.NopHooks{}
	}

	sim := &Simulation{
		state: state,
		hooks: hooks,
	}
	sim.combo = NewComboSystem(state)
	sim.particles = NewParticleSystem(state, hooks)
	sim.player = NewPlayerSystem(state, hooks, sim.combo, sim.particles)
	sim.projectiles = NewProjectileSystem(state)
	sim.enemies = NewEnemySystem(state, hooks)
	sim.bosses = NewBossSystem(state, hooks, sim.particles)
	sim.powerUps = NewPowerUpSystem(state, hooks, sim.particles)
	rewards := &rewarder{
		state:     state,
		hooks:     hooks,
		combo:     sim.combo,
		particles: sim.particles,
	}
	sim.collisions = NewCollisionSystem(state, hooks, sim.player, rewards)
	sim.waves = NewWaveDirector(state, hooks, sim.particles)

	log.Printf("[Simulation] New run starting at wave %d", state.Wave.Number)
	return sim
}

// State 返回本局状态
func (sim *Simulation) State() *game.SimulationState {
	return sim.state
}

// NotifyResumed 宿主从挂起或隐藏恢复时调用，下一次 Step 整帧跳过
func (sim *Simulation) NotifyResumed() {
	sim.skipNext = true
}

// Step 推进一帧
//
// 参数:
//   - deltaTime: 距上一帧的时间（秒），超过 simulation.maxDeltaTime 时被夹紧
//   - input: 本帧输入，玩家死亡后被忽略
func (sim *Simulation) Step(deltaTime float64, input game.Input) {
	if sim.skipNext {
		sim.skipNext = false
		return
	}
	s := sim.state
	if s.RunEnded {
		return
	}

	dt := deltaTime
	if maxDt := s.Tuning.Simulation.MaxDeltaTime; dt > maxDt {
		dt = maxDt
	}
	// NaN 也在这里被丢弃
	if !(dt > 0) {
		return
	}

	if s.GameOver {
		sim.particles.Update(dt)
		sim.tickGameOver(dt)
		return
	}

	s.Elapsed += dt

	sim.player.Update(dt, input)
	sim.projectiles.Update(dt)
	sim.collisions.EnemyBulletsVsPlayer()
	sim.bosses.Update(dt)
	sim.enemies.Update(dt)
	sim.enemies.Cull()
	sim.powerUps.Update(dt)
	sim.collisions.RebuildIndex()
	sim.collisions.PlayerBulletsVsTargets()
	sim.collisions.EnemiesVsPlayer()
	sim.collisions.BossVsPlayer()
	sim.waves.Update(dt)
	sim.combo.Update(dt)
	sim.particles.Update(dt)

	sim.checkGameOver()
}

// checkGameOver 玩家死亡时冻结模拟并开始宽限期
func (sim *Simulation) checkGameOver() {
	s := sim.state
	if s.Player == nil || s.Player.Alive() {
		return
	}
	s.GameOver = true
	s.GameOverTimer = s.Tuning.Simulation.GameOverGrace
	sim.hooks.EmitAudioCue(game.CueGameOver)
	sim.particles.Burst(s.Player.X, s.Player.Y, "white", 30)
	sim.particles.Shake(14, 0.7)
	log.Printf("[Simulation] Player died: score=%d wave=%d kills=%d", s.Score, s.Wave.Number, s.Kills)
}

// tickGameOver 宽限期结束后通知 RunObserver，只通知一次
func (sim *Simulation) tickGameOver(dt float64) {
	s := sim.state
	s.GameOverTimer -= dt
	if s.GameOverTimer > 0 || s.RunEnded {
		return
	}
	s.RunEnded = true
	sim.hooks.OnRunEnded(s.Score, s.Wave.Number, s.Kills)
	log.Printf("[Simulation] Run ended")
}
