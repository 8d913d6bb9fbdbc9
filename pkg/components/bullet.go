package components

import "github.com/gonewx/horde/pkg/ecs"

// BulletComponent 玩家子弹
type BulletComponent struct {
	ID     ecs.EntityID
	X, Y   float64
	VX, VY float64
	Radius float64
	Damage int
	Life   float64 // 剩余寿命（秒）

	// Hits 已命中过的目标，穿透子弹对同一目标只结算一次
	Hits []ecs.EntityID
}

// HasHit 是否已命中过指定目标
func (b *BulletComponent) HasHit(id ecs.EntityID) bool {
	for _, h := range b.Hits {
		if h == id {
			return true
		}
	}
	return false
}

// EnemyBulletComponent 敌人和 Boss 发射的子弹
type EnemyBulletComponent struct {
	X, Y   float64
	VX, VY float64
	Radius float64
	Damage int
	Life   float64
	Color  string
}
