package entities

import (
	"math"

	"github.com/gonewx/horde/pkg/components"
	"github.com/gonewx/horde/pkg/config"
	"github.com/gonewx/horde/pkg/ecs"
)

// NewPlayerVolley 按武器等级创建一组玩家子弹
// 子弹沿 (dirX, dirY) 方向，按该等级的散射角偏移展开成扇形
//
// 参数:
//   - em: 实体管理器
//   - w: 武器参数
//   - tier: 武器等级（1-3）
//   - x, y: 发射位置
//   - dirX, dirY: 瞄准方向（无需归一化，零向量时朝上）
//
// 返回:
//   - []*components.BulletComponent: 新子弹，数量等于该等级的散射数
func NewPlayerVolley(em *ecs.EntityManager, w config.WeaponConfig, tier int, x, y, dirX, dirY float64) []*components.BulletComponent {
	base := math.Atan2(dirY, dirX)
	if dirX == 0 && dirY == 0 {
		base = -math.Pi / 2
	}

	spread := w.Spread(tier)
	bullets := make([]*components.BulletComponent, 0, len(spread))
	for _, offset := range spread {
		angle := base + offset
		bullets = append(bullets, &components.BulletComponent{
			ID:     em.CreateEntity(),
			X:      x,
			Y:      y,
			VX:     math.Cos(angle) * w.BulletSpeed,
			VY:     math.Sin(angle) * w.BulletSpeed,
			Radius: w.BulletRadius,
			Damage: w.BulletDamage,
			Life:   w.BulletLifetime,
		})
	}
	return bullets
}

// NewEnemyBullet 创建一颗敌方子弹
//
// 参数:
//   - c: 战斗参数（半径、伤害、寿命）
//   - x, y: 发射位置
//   - angle: 飞行角度（弧度）
//   - speed: 速度，<= 0 时使用 c.EnemyBulletSpeed
//   - color: 颜色标签
func NewEnemyBullet(c config.CombatConfig, x, y, angle, speed float64, color string) *components.EnemyBulletComponent {
	if speed <= 0 {
		speed = c.EnemyBulletSpeed
	}
	return &components.EnemyBulletComponent{
		X:      x,
		Y:      y,
		VX:     math.Cos(angle) * speed,
		VY:     math.Sin(angle) * speed,
		Radius: c.EnemyBulletRadius,
		Damage: c.EnemyBulletDamage,
		Life:   c.EnemyBulletLifetime,
		Color:  color,
	}
}
