package systems

import (
	"math"

	"github.com/gonewx/horde/pkg/components"
	"github.com/gonewx/horde/pkg/entities"
	"github.com/gonewx/horde/pkg/game"
)

// PlayerSystem 处理玩家移动、冲刺、开火和受伤
type PlayerSystem struct {
	state     *game.SimulationState
	hooks     game.Hooks
	combo     *ComboSystem
	particles *ParticleSystem
}

// NewPlayerSystem 创建玩家系统
func NewPlayerSystem(state *game.SimulationState, hooks game.Hooks, combo *ComboSystem, particles *ParticleSystem) *PlayerSystem {
	return &PlayerSystem{
		state:     state,
		hooks:     hooks,
		combo:     combo,
		particles: particles,
	}
}

// Update 推进玩家一帧
//
// 参数:
//   - deltaTime: 已夹紧的帧时间（秒）
//   - input: 本帧输入
func (ps *PlayerSystem) Update(deltaTime float64, input game.Input) {
	p := ps.state.Player
	if !p.Alive() {
		return
	}
	cfg := ps.state.Tuning.Player

	ps.decayTimers(p, deltaTime)

	moveX, moveY := normalize(input.MoveX, input.MoveY)

	// 冲刺：优先沿移动方向，静止时沿瞄准方向
	if input.Dash && p.DashCooldown <= 0 && !p.Dashing() {
		dx, dy := moveX, moveY
		if dx == 0 && dy == 0 {
			dx, dy = p.AimX, p.AimY
		}
		if dx != 0 || dy != 0 {
			p.DashDirX, p.DashDirY = normalize(dx, dy)
			p.DashTime = cfg.DashDuration
			p.InvulnTime = cfg.DashDuration
			p.DashCooldown = cfg.DashCooldown
		}
	}

	speed := p.Speed
	if p.SpeedBoostTime > 0 {
		speed *= cfg.SpeedBoostMultiplier
	}
	if p.Dashing() {
		p.X += p.DashDirX * speed * cfg.DashSpeedMultiplier * deltaTime
		p.Y += p.DashDirY * speed * cfg.DashSpeedMultiplier * deltaTime
	} else {
		p.X += moveX * speed * deltaTime
		p.Y += moveY * speed * deltaTime
	}

	arena := ps.state.Tuning.Arena
	p.X = clamp(p.X, p.Radius, arena.Width-p.Radius)
	p.Y = clamp(p.Y, p.Radius, arena.Height-p.Radius)

	fire := input.Fire
	if input.AutoAim {
		if tx, ty, ok := ps.nearestTarget(p); ok {
			p.AimX, p.AimY = normalize(tx-p.X, ty-p.Y)
			fire = true
		}
	} else if input.HasAim {
		if ax, ay := normalize(input.AimX-p.X, input.AimY-p.Y); ax != 0 || ay != 0 {
			p.AimX, p.AimY = ax, ay
		}
	}

	if fire && p.FireCooldown <= 0 {
		ps.fire(p)
	}
}

func (ps *PlayerSystem) decayTimers(p *components.PlayerComponent, dt float64) {
	p.FireCooldown -= dt
	p.InvulnTime -= dt
	p.ShieldTime -= dt
	p.SpeedBoostTime -= dt
	p.PierceTime -= dt
	p.ExplosiveTime -= dt
	p.DashCooldown -= dt
	p.DashTime -= dt
	p.BossContactCooldown -= dt
}

// fire 按武器等级发射一组子弹
func (ps *PlayerSystem) fire(p *components.PlayerComponent) {
	w := ps.state.Tuning.Weapon
	for _, b := range entities.NewPlayerVolley(ps.state.Entities, w, p.WeaponTier, p.X, p.Y, p.AimX, p.AimY) {
		ps.state.Bullets.Add(b)
	}
	p.FireCooldown = w.FireCooldown
	ps.hooks.EmitAudioCue(game.CueShoot)
}

// nearestTarget 返回最近的可命中目标（已入场的敌人或 Boss）
func (ps *PlayerSystem) nearestTarget(p *components.PlayerComponent) (float64, float64, bool) {
	best := math.Inf(1)
	var tx, ty float64
	found := false

	for _, e := range ps.state.Enemies.Items() {
		if !e.Alive() || !e.HasEnteredScreen {
			continue
		}
		if d := distSq(p.X, p.Y, e.X, e.Y); d < best {
			best, tx, ty, found = d, e.X, e.Y, true
		}
	}
	if b := ps.state.Boss; b.Alive() {
		if d := distSq(p.X, p.Y, b.X, b.Y); d < best {
			tx, ty, found = b.X, b.Y, true
		}
	}
	return tx, ty, found
}

// TakeDamage 对玩家造成伤害
//
// 冲刺无敌期间不受伤害；护盾期间伤害被吸收，连击保留。
//
// 返回:
//   - bool: 是否真正扣除了生命值
func (ps *PlayerSystem) TakeDamage(amount int) bool {
	p := ps.state.Player
	if !p.Alive() || p.Invulnerable() || amount <= 0 {
		return false
	}
	if p.Shielded() {
		ps.particles.Burst(p.X, p.Y, "blue", 4)
		return false
	}

	p.HP -= amount
	ps.combo.Break()
	ps.hooks.EmitAudioCue(game.CuePlayerHurt)
	ps.particles.Burst(p.X, p.Y, "white", 6)
	ps.particles.Shake(4+float64(amount)*0.2, 0.25)
	return true
}
