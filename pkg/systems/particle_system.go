package systems

import (
	"math"

	"github.com/gonewx/horde/pkg/components"
	"github.com/gonewx/horde/pkg/entities"
	"github.com/gonewx/horde/pkg/game"
)

// particleDrag 粒子每秒保留的速度比例
const particleDrag = 0.04

// ParticleSystem 管理粒子和震屏
//
// 粒子是纯视觉实体，只在这里创建和过期，不参与碰撞。
// 创建前会查询 Toggles，关闭时既不生成粒子也不写入震屏状态。
type ParticleSystem struct {
	state *game.SimulationState
	hooks game.Hooks
}

// NewParticleSystem 创建粒子系统
func NewParticleSystem(state *game.SimulationState, hooks game.Hooks) *ParticleSystem {
	return &ParticleSystem{
		state: state,
		hooks: hooks,
	}
}

// Burst 在 (x, y) 生成一簇粒子，并通知表现层
// 数量受 simulation.maxParticles 限制
func (ps *ParticleSystem) Burst(x, y float64, color string, count int) {
	if count <= 0 || !ps.hooks.ParticlesEnabled() {
		return
	}
	ps.hooks.EmitVisualBurst(x, y, color, count)

	room := ps.state.Tuning.Simulation.MaxParticles - ps.state.Particles.Len()
	if count > room {
		count = room
	}
	for _, p := range entities.NewParticleBurst(ps.state.Rand, ps.state.Tuning.Simulation, x, y, color, count) {
		ps.state.Particles.Add(p)
	}
}

// Shake 请求震屏，取当前与新请求中较强、较长的一方
func (ps *ParticleSystem) Shake(magnitude, duration float64) {
	if !ps.hooks.ScreenShakeEnabled() {
		return
	}
	s := ps.state
	s.ShakeTime = math.Max(s.ShakeTime, duration)
	s.ShakeMagnitude = math.Max(s.ShakeMagnitude, magnitude)
}

// Update 推进粒子和震屏计时，删除过期粒子
func (ps *ParticleSystem) Update(deltaTime float64) {
	drag := math.Pow(particleDrag, deltaTime)
	for _, p := range ps.state.Particles.Items() {
		p.X += p.VX * deltaTime
		p.Y += p.VY * deltaTime
		p.VX *= drag
		p.VY *= drag
		p.Life -= deltaTime
	}
	ps.state.Particles.Retain(func(p *components.ParticleComponent) bool {
		return p.Life > 0
	})

	if ps.state.ShakeTime > 0 {
		ps.state.ShakeTime -= deltaTime
		if ps.state.ShakeTime <= 0 {
			ps.state.ShakeTime = 0
			ps.state.ShakeMagnitude = 0
		}
	}
}
