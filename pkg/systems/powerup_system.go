package systems

import (
	"math"

	"github.com/gonewx/horde/pkg/components"
	"github.com/gonewx/horde/pkg/game"
	"github.com/gonewx/horde/pkg/types"
)

// powerUpBobSpeed 道具上下浮动的角速度（弧度/秒）
const powerUpBobSpeed = 4.0

// PowerUpSystem 道具寿命、浮动和拾取
type PowerUpSystem struct {
	state     *game.SimulationState
	hooks     game.Hooks
	particles *ParticleSystem
}

// NewPowerUpSystem 创建道具系统
func NewPowerUpSystem(state *game.SimulationState, hooks game.Hooks, particles *ParticleSystem) *PowerUpSystem {
	return &PowerUpSystem{
		state:     state,
		hooks:     hooks,
		particles: particles,
	}
}

// Update 推进道具并处理拾取
func (ps *PowerUpSystem) Update(deltaTime float64) {
	p := ps.state.Player
	ps.state.PowerUps.Retain(func(pu *components.PowerUpComponent) bool {
		pu.Life -= deltaTime
		pu.BobPhase = math.Mod(pu.BobPhase+powerUpBobSpeed*deltaTime, 2*math.Pi)
		if pu.Life <= 0 {
			return false
		}
		if p.Alive() && circlesOverlap(p.X, p.Y, p.Radius, pu.X, pu.Y, pu.Radius) {
			ps.Apply(pu.Type)
			ps.hooks.EmitAudioCue(game.CuePowerUp)
			ps.particles.Burst(pu.X, pu.Y, "cyan", 6)
			return false
		}
		return true
	})
}

// Apply 对玩家施加道具效果
// 计时类增益取剩余时间与新时长中的较大值
func (ps *PowerUpSystem) Apply(pt types.PowerUpType) {
	p := ps.state.Player
	if p == nil {
		return
	}
	cfg := ps.state.Tuning.PowerUps

	switch pt {
	case types.PowerUpHealth:
		p.Heal(cfg.HealAmount)
	case types.PowerUpShield:
		p.ShieldTime = math.Max(p.ShieldTime, cfg.ShieldDuration)
	case types.PowerUpSpeed:
		p.SpeedBoostTime = math.Max(p.SpeedBoostTime, cfg.SpeedDuration)
	case types.PowerUpPierce:
		p.PierceTime = math.Max(p.PierceTime, cfg.PierceDuration)
	case types.PowerUpExplosive:
		p.ExplosiveTime = math.Max(p.ExplosiveTime, cfg.ExplosiveDuration)
	case types.PowerUpWeapon:
		if p.WeaponTier < len(ps.state.Tuning.Weapon.TierSpreads) {
			p.WeaponTier++
		} else {
			// 武器已满级，改为加分
			ps.state.Score += cfg.WeaponMaxedScore
			ps.hooks.EmitScorePopup(p.X, p.Y, cfg.WeaponMaxedScore)
		}
	}
}
