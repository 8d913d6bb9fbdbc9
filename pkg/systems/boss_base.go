package systems

import "github.com/gonewx/horde/pkg/components"

// baseBoss 第 5 波起出现的基础 Boss，两个阶段
type baseBoss struct{}

var baseBossAttacks = []bossAttack{
	{name: "aimed_fan", minPhase: 0, interval: 1.6, fire: func(bs *BossSystem, b *components.BossComponent) {
		bs.aimedFan(b, 3+2*b.Phase, 0.5)
	}},
	{name: "ring", minPhase: 0, interval: 3.0, fire: func(bs *BossSystem, b *components.BossComponent) {
		bs.ring(b, 12, 0)
	}},
	{name: "spiral", minPhase: 1, interval: 0.18, fire: func(bs *BossSystem, b *components.BossComponent) {
		bs.spiral(b, 2, 0.35)
	}},
}

func (baseBoss) patterns(phase int) []components.MovePattern {
	if phase == 0 {
		return []components.MovePattern{components.MoveStrafe, components.MoveApproach}
	}
	return []components.MovePattern{components.MoveStrafe, components.MoveApproach, components.MoveDash}
}

func (baseBoss) attacks() []bossAttack {
	return baseBossAttacks
}

// onPhase 进入第二阶段时释放一圈密集弹幕
func (baseBoss) onPhase(bs *BossSystem, b *components.BossComponent) {
	bs.ring(b, 20, 0)
}
