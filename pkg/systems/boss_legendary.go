package systems

import (
	"math"

	"github.com/gonewx/horde/pkg/components"
	"github.com/gonewx/horde/pkg/types"
)

// legendaryBoss 第 3 波之后以 0.1% 概率出现，五个阶段
// 死亡时置 Terminated，未发射的延迟齐射全部作废
type legendaryBoss struct{}

var legendaryBossAttacks = []bossAttack{
	{name: "multi_burst", minPhase: 0, interval: 2.6, fire: func(bs *BossSystem, b *components.BossComponent) {
		bs.multiBurst(b, 3, 24, 0.2)
	}},
	{name: "aimed_fan", minPhase: 0, interval: 1.4, fire: func(bs *BossSystem, b *components.BossComponent) {
		bs.aimedFan(b, 9, 1.1)
	}},
	{name: "cross", minPhase: 1, interval: 2.0, fire: func(bs *BossSystem, b *components.BossComponent) {
		bs.cross(b, 5)
	}},
	{name: "laser_sweep", minPhase: 1, interval: 4.5, fire: func(bs *BossSystem, b *components.BossComponent) {
		bs.laserSweep(b, 14, math.Pi*2/3, 0.06)
	}},
	{name: "chaos_burst", minPhase: 2, interval: 3.0, fire: func(bs *BossSystem, b *components.BossComponent) {
		bs.chaosBurst(b, 32)
	}},
	{name: "wave", minPhase: 2, interval: 3.5, fire: func(bs *BossSystem, b *components.BossComponent) {
		bs.wave(b, 7, 0.12)
	}},
	{name: "spiral", minPhase: 3, interval: 0.08, fire: func(bs *BossSystem, b *components.BossComponent) {
		bs.spiral(b, 5, 0.22)
	}},
	{name: "summon", minPhase: 4, interval: 6.0, fire: func(bs *BossSystem, b *components.BossComponent) {
		bs.summon(b, types.EnemyEnforcer, types.EnemyFast, types.EnemyFast)
	}},
}

func (legendaryBoss) patterns(phase int) []components.MovePattern {
	if phase == 0 {
		return []components.MovePattern{components.MoveStrafe, components.MoveJitter}
	}
	if phase < 3 {
		return []components.MovePattern{components.MoveStrafe, components.MoveApproach, components.MoveJitter}
	}
	return []components.MovePattern{components.MoveStrafe, components.MoveApproach, components.MoveJitter, components.MoveDash}
}

func (legendaryBoss) attacks() []bossAttack {
	return legendaryBossAttacks
}

// onPhase 换阶段时释放混乱爆发并强烈震屏
func (legendaryBoss) onPhase(bs *BossSystem, b *components.BossComponent) {
	bs.chaosBurst(b, 16+4*b.Phase)
	bs.particles.Shake(16, 0.8)
}
