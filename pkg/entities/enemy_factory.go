package entities

import (
	"github.com/gonewx/horde/pkg/components"
	"github.com/gonewx/horde/pkg/config"
	"github.com/gonewx/horde/pkg/ecs"
	"github.com/gonewx/horde/pkg/types"
)

// NewEnemy 创建敌人实体
// 参数从调优表复制一次，之后行为分支只看 Type
//
// 参数:
//   - em: 实体管理器，用于分配ID
//   - t: 调优参数
//   - et: 敌人类型
//   - x, y: 生成位置（通常在场地外）
func NewEnemy(em *ecs.EntityManager, t *config.Tuning, et types.EnemyType, x, y float64) *components.EnemyComponent {
	stats := t.Enemy(et)
	e := &components.EnemyComponent{
		ID:            em.CreateEntity(),
		Type:          et,
		X:             x,
		Y:             y,
		Radius:        stats.Radius,
		Speed:         stats.Speed,
		HP:            stats.HP,
		MaxHP:         stats.HP,
		ContactDamage: stats.ContactDamage,
		Score:         stats.Score,
		Currency:      stats.Currency,
		Experience:    stats.Experience,
		AlwaysDrops:   stats.AlwaysDrops,
	}

	switch et {
	case types.EnemyShooter:
		// 首发延迟半个冷却，避免入场即开火
		e.ShootCooldown = stats.ShootCooldown / 2
	case types.EnemyEnforcer:
		e.EnforcerState = components.EnforcerSeeking
		e.DashCooldown = stats.DashCooldown
	}
	return e
}
