package systems

import (
	"github.com/gonewx/horde/pkg/components"
	"github.com/gonewx/horde/pkg/types"
)

// megaBoss 每 10 波出现，三个阶段
type megaBoss struct{}

var megaBossAttacks = []bossAttack{
	{name: "ring", minPhase: 0, interval: 2.4, fire: func(bs *BossSystem, b *components.BossComponent) {
		bs.ring(b, 16+2*b.Phase, 0)
	}},
	{name: "aimed_fan", minPhase: 0, interval: 1.8, fire: func(bs *BossSystem, b *components.BossComponent) {
		bs.aimedFan(b, 5, 0.7)
	}},
	{name: "cross", minPhase: 1, interval: 2.2, fire: func(bs *BossSystem, b *components.BossComponent) {
		bs.cross(b, 4)
	}},
	{name: "wave", minPhase: 1, interval: 4.0, fire: func(bs *BossSystem, b *components.BossComponent) {
		bs.wave(b, 5, 0.15)
	}},
	{name: "summon", minPhase: 2, interval: 7.0, fire: func(bs *BossSystem, b *components.BossComponent) {
		bs.summon(b, types.EnemyFast, types.EnemyFast)
	}},
	{name: "spiral", minPhase: 2, interval: 0.14, fire: func(bs *BossSystem, b *components.BossComponent) {
		bs.spiral(b, 3, 0.3)
	}},
}

func (megaBoss) patterns(phase int) []components.MovePattern {
	switch phase {
	case 0:
		return []components.MovePattern{components.MoveStrafe, components.MoveApproach}
	case 1:
		return []components.MovePattern{components.MoveStrafe, components.MoveApproach, components.MoveDash}
	}
	return []components.MovePattern{components.MoveStrafe, components.MoveApproach, components.MoveDash, components.MoveJitter}
}

func (megaBoss) attacks() []bossAttack {
	return megaBossAttacks
}

// onPhase 每次换阶段召唤两个普通小怪
func (megaBoss) onPhase(bs *BossSystem, b *components.BossComponent) {
	bs.summon(b, types.EnemyNormal, types.EnemyNormal)
}
