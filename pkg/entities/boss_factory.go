package entities

import (
	"github.com/gonewx/horde/pkg/components"
	"github.com/gonewx/horde/pkg/config"
	"github.com/gonewx/horde/pkg/ecs"
	"github.com/gonewx/horde/pkg/types"
)

// NewBoss 创建 Boss 实体
//
// 参数:
//   - em: 实体管理器
//   - t: 调优参数
//   - bt: Boss 变体
//   - x, y: 出生点
//
// 返回:
//   - *components.BossComponent: 阶段 0、横移模式的 Boss
func NewBoss(em *ecs.EntityManager, t *config.Tuning, bt types.BossType, x, y float64) *components.BossComponent {
	stats := t.Boss(bt)
	thresholds := make([]float64, len(stats.PhaseThresholds))
	copy(thresholds, stats.PhaseThresholds)

	b := &components.BossComponent{
		ID:          em.CreateEntity(),
		Type:        bt,
		X:           x,
		Y:           y,
		Radius:      stats.Radius,
		Speed:       stats.Speed,
		HP:          stats.HP,
		MaxHP:       stats.HP,
		Thresholds:  thresholds,
		MovePattern: components.MoveStrafe,
		MoveTimer:   stats.PatternDuration,
		PatternTime: stats.PatternDuration,
		Score:       stats.Score,
		Currency:    stats.Currency,
		Experience:  stats.Experience,
		BulletSpeed: stats.BulletSpeed,
		AttackScale: stats.AttackScale,
		JitterX:     x,
		JitterY:     y,
	}

	// 入场后稍作停顿再开始攻击，各槽位错开
	for i := range b.Cooldowns {
		b.Cooldowns[i] = 1.0 + 0.5*float64(i)
	}
	return b
}
