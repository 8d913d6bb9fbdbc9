package entities

import (
	"github.com/gonewx/horde/pkg/components"
	"github.com/gonewx/horde/pkg/config"
)

// NewPlayer 创建本局的玩家实体，位于场地中心
//
// 参数:
//   - t: 调优参数
//   - maxHPTier: 生命上限永久升级等级（1-3）
//   - speedTier: 速度永久升级等级（1-3）
//
// 返回:
//   - *components.PlayerComponent: 满血、武器 1 级的玩家
func NewPlayer(t *config.Tuning, maxHPTier, speedTier int) *components.PlayerComponent {
	maxHP := t.Player.MaxHP(maxHPTier)
	return &components.PlayerComponent{
		X:          t.Arena.Width / 2,
		Y:          t.Arena.Height / 2,
		Radius:     t.Player.Radius,
		HP:         maxHP,
		MaxHP:      maxHP,
		Speed:      t.Player.Speed(speedTier),
		WeaponTier: 1,
		MaxHPTier:  clampTier(maxHPTier),
		SpeedTier:  clampTier(speedTier),
		AimX:       0,
		AimY:       -1,
	}
}

func clampTier(tier int) int {
	if tier < 1 {
		return 1
	}
	if tier > 3 {
		return 3
	}
	return tier
}
