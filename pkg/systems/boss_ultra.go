package systems

import (
	"math"

	"github.com/gonewx/horde/pkg/components"
	"github.com/gonewx/horde/pkg/types"
)

// ultraBoss 每 20 波出现，四个阶段
// 死亡时置 Terminated，未发射的延迟齐射全部作废
type ultraBoss struct{}

var ultraBossAttacks = []bossAttack{
	{name: "multi_burst", minPhase: 0, interval: 3.0, fire: func(bs *BossSystem, b *components.BossComponent) {
		bs.multiBurst(b, 3, 18, 0.25)
	}},
	{name: "aimed_fan", minPhase: 0, interval: 1.6, fire: func(bs *BossSystem, b *components.BossComponent) {
		bs.aimedFan(b, 7, 0.9)
	}},
	{name: "laser_sweep", minPhase: 1, interval: 5.0, fire: func(bs *BossSystem, b *components.BossComponent) {
		bs.laserSweep(b, 10, math.Pi/2, 0.08)
	}},
	{name: "chaos_burst", minPhase: 2, interval: 3.5, fire: func(bs *BossSystem, b *components.BossComponent) {
		bs.chaosBurst(b, 24)
	}},
	{name: "spiral", minPhase: 3, interval: 0.1, fire: func(bs *BossSystem, b *components.BossComponent) {
		bs.spiral(b, 4, 0.25)
	}},
	{name: "summon", minPhase: 3, interval: 8.0, fire: func(bs *BossSystem, b *components.BossComponent) {
		bs.summon(b, types.EnemyFast, types.EnemyFast, types.EnemyTank)
	}},
}

func (ultraBoss) patterns(phase int) []components.MovePattern {
	all := []components.MovePattern{components.MoveStrafe, components.MoveApproach, components.MoveDash, components.MoveJitter}
	n := phase + 2
	if n > len(all) {
		n = len(all)
	}
	return all[:n]
}

func (ultraBoss) attacks() []bossAttack {
	return ultraBossAttacks
}

// onPhase 换阶段时立即释放一次多段爆发
func (ultraBoss) onPhase(bs *BossSystem, b *components.BossComponent) {
	bs.multiBurst(b, 3, 24, 0.2)
}
