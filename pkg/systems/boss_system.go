package systems

import (
	"log"
	"math"

	"github.com/gonewx/horde/pkg/components"
	"github.com/gonewx/horde/pkg/game"
	"github.com/gonewx/horde/pkg/types"
)

// 移动模式参数
const (
	bossDashCharge    = 0.6  // 冲撞前的蓄力时间
	bossDashLunge     = 0.5  // 冲撞持续时间
	bossDashSpeedMul  = 4.0  // 冲撞速度倍率
	bossApproachMul   = 0.6  // 逼近速度倍率
	bossJitterMul     = 1.5  // 抖动速度倍率
	bossJitterRange   = 120  // 抖动目标点的最大偏移
	bossStrafeSpeed   = 0.9  // 横移相位的角速度（弧度/秒）
	bossMinPhaseScale = 0.5  // 冷却随阶段缩短的下限
	bossPhaseScale    = 0.08 // 每个阶段缩短的冷却比例
)

// bossAttack 一种攻击及其冷却
type bossAttack struct {
	name     string
	minPhase int     // 从该阶段起启用
	interval float64 // 基础冷却（秒），再乘以 attackScale 和阶段系数
	fire     func(bs *BossSystem, b *components.BossComponent)
}

// bossBehavior 一种 Boss 变体的状态机
type bossBehavior interface {
	// patterns 当前阶段可以循环的移动模式，随阶段增加
	patterns(phase int) []components.MovePattern
	// attacks 全部攻击，下标即 Cooldowns 的槽位
	attacks() []bossAttack
	// onPhase 进入新阶段时调用一次
	onPhase(bs *BossSystem, b *components.BossComponent)
}

var bossBehaviors = map[types.BossType]bossBehavior{
	types.BossBase:      baseBoss{},
	types.BossMega:      megaBoss{},
	types.BossUltra:     ultraBoss{},
	types.BossLegendary: legendaryBoss{},
}

// BossSystem 驱动当前 Boss 的阶段、移动、攻击和延迟齐射
type BossSystem struct {
	state     *game.SimulationState
	hooks     game.Hooks
	particles *ParticleSystem
}

// NewBossSystem 创建 Boss 系统
func NewBossSystem(state *game.SimulationState, hooks game.Hooks, particles *ParticleSystem) *BossSystem {
	return &BossSystem{
		state:     state,
		hooks:     hooks,
		particles: particles,
	}
}

// Update 推进当前 Boss 一帧，没有 Boss 时什么也不做
func (bs *BossSystem) Update(deltaTime float64) {
	b := bs.state.Boss
	if b == nil {
		return
	}
	if !b.Alive() {
		b.Pending = nil
		bs.state.Boss = nil
		return
	}
	beh, ok := bossBehaviors[b.Type]
	if !ok {
		return
	}

	b.Clock += deltaTime
	bs.updatePhase(b, beh)
	bs.updateMovement(b, beh, deltaTime)
	bs.firePending(b)
	bs.updateAttacks(b, beh, deltaTime)
}

// PhaseFor 根据血量比例计算阶段：比例 <= 阈值的个数
func PhaseFor(b *components.BossComponent) int {
	ratio := b.HPRatio()
	phase := 0
	for _, th := range b.Thresholds {
		if ratio <= th {
			phase++
		}
	}
	return phase
}

// updatePhase 阶段只增不减，跨越阈值时触发一次性事件
func (bs *BossSystem) updatePhase(b *components.BossComponent, beh bossBehavior) {
	phase := PhaseFor(b)
	if phase <= b.Phase {
		return
	}
	b.Phase = phase

	bs.hooks.EmitAudioCue(game.CueBossPhase)
	bs.particles.Shake(10, 0.5)
	bs.particles.Burst(b.X, b.Y, BossColor(b.Type), 16)
	beh.onPhase(bs, b)

	log.Printf("[BossSystem] %s boss entered phase %d (hp=%d/%d)", b.Type, b.Phase, b.HP, b.MaxHP)
}

// updateMovement 按计时切换移动模式并移动
func (bs *BossSystem) updateMovement(b *components.BossComponent, beh bossBehavior, dt float64) {
	b.MoveTimer -= dt
	if b.MoveTimer <= 0 {
		b.MoveTimer = b.PatternTime
		bs.nextPattern(b, beh.patterns(b.Phase))
	}

	p := bs.state.Player
	arena := bs.state.Tuning.Arena

	switch b.MovePattern {
	case components.MoveStrafe:
		b.StrafePhase += bossStrafeSpeed * dt
		tx := arena.Width/2 + math.Sin(b.StrafePhase)*arena.Width/3
		ty := bs.state.Tuning.Wave.BossSpawnY + math.Sin(2*b.StrafePhase)*40
		moveToward(b, tx, ty, b.Speed, dt)

	case components.MoveApproach:
		if p != nil {
			stop := b.Radius + p.Radius + 20
			if distSq(b.X, b.Y, p.X, p.Y) > stop*stop {
				moveToward(b, p.X, p.Y, b.Speed*bossApproachMul, dt)
			}
		}

	case components.MoveDash:
		switch {
		case b.ChargeTime > 0:
			b.ChargeTime -= dt
			if b.ChargeTime <= 0 {
				tx, ty := arena.Width/2, arena.Height/2
				if p != nil {
					tx, ty = p.X, p.Y
				}
				b.LungeDirX, b.LungeDirY = normalize(tx-b.X, ty-b.Y)
				b.LungeTime = bossDashLunge
			}
		case b.LungeTime > 0:
			b.X += b.LungeDirX * b.Speed * bossDashSpeedMul * dt
			b.Y += b.LungeDirY * b.Speed * bossDashSpeedMul * dt
			b.LungeTime -= dt
			if b.LungeTime <= 0 {
				b.ChargeTime = bossDashCharge
			}
		default:
			b.ChargeTime = bossDashCharge
		}

	case components.MoveJitter:
		if distSq(b.X, b.Y, b.JitterX, b.JitterY) < 16 {
			bs.pickJitterTarget(b)
		}
		moveToward(b, b.JitterX, b.JitterY, b.Speed*bossJitterMul, dt)
	}

	b.X = clamp(b.X, b.Radius, arena.Width-b.Radius)
	b.Y = clamp(b.Y, b.Radius, arena.Height-b.Radius)
}

// nextPattern 切换到可用集合中的下一个模式
func (bs *BossSystem) nextPattern(b *components.BossComponent, patterns []components.MovePattern) {
	if len(patterns) == 0 {
		return
	}
	next := patterns[0]
	for i, mp := range patterns {
		if mp == b.MovePattern {
			next = patterns[(i+1)%len(patterns)]
			break
		}
	}
	b.MovePattern = next

	switch next {
	case components.MoveDash:
		b.ChargeTime = bossDashCharge
		b.LungeTime = 0
	case components.MoveJitter:
		bs.pickJitterTarget(b)
	}
}

// pickJitterTarget 在当前位置附近、场地上半部分选择新的抖动目标
func (bs *BossSystem) pickJitterTarget(b *components.BossComponent) {
	arena := bs.state.Tuning.Arena
	rng := bs.state.Rand
	b.JitterX = clamp(b.X+(rng.Float64()*2-1)*bossJitterRange, b.Radius, arena.Width-b.Radius)
	b.JitterY = clamp(b.Y+(rng.Float64()*2-1)*bossJitterRange, b.Radius, arena.Height*0.6)
}

// moveToward 以 speed 朝 (tx, ty) 移动，不越过目标点
func moveToward(b *components.BossComponent, tx, ty, speed, dt float64) {
	dx, dy := tx-b.X, ty-b.Y
	dist := math.Hypot(dx, dy)
	step := speed * dt
	if dist <= step || dist == 0 {
		b.X, b.Y = tx, ty
		return
	}
	b.X += dx / dist * step
	b.Y += dy / dist * step
}

// firePending 发射到期的延迟齐射
// Boss 已终结或死亡时丢弃全部未发射的齐射
func (bs *BossSystem) firePending(b *components.BossComponent) {
	if b.Terminated || b.HP <= 0 {
		b.Pending = nil
		return
	}
	if len(b.Pending) == 0 {
		return
	}

	pending := b.Pending
	b.Pending = nil
	for _, pv := range pending {
		if b.Clock >= pv.FireAt {
			bs.fireVolley(b, pv.Volley)
		} else {
			b.Pending = append(b.Pending, pv)
		}
	}
}

// updateAttacks 推进本阶段已启用攻击的冷却，到期即发射
func (bs *BossSystem) updateAttacks(b *components.BossComponent, beh bossBehavior, dt float64) {
	scale := b.AttackScale * math.Max(bossMinPhaseScale, 1-bossPhaseScale*float64(b.Phase))
	for i, a := range beh.attacks() {
		if i >= components.MaxAttackSlots {
			break
		}
		if b.Phase < a.minPhase {
			continue
		}
		b.Cooldowns[i] -= dt
		if b.Cooldowns[i] <= 0 {
			a.fire(bs, b)
			b.Cooldowns[i] = a.interval * scale
		}
	}
}
