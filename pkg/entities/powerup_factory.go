package entities

import (
	"math/rand"

	"github.com/gonewx/horde/pkg/components"
	"github.com/gonewx/horde/pkg/config"
	"github.com/gonewx/horde/pkg/ecs"
	"github.com/gonewx/horde/pkg/types"
)

// NewPowerUp 创建指定类型的道具
func NewPowerUp(em *ecs.EntityManager, t *config.Tuning, pt types.PowerUpType, x, y float64) *components.PowerUpComponent {
	return &components.PowerUpComponent{
		ID:     em.CreateEntity(),
		Type:   pt,
		X:      x,
		Y:      y,
		Radius: t.PowerUps.Radius,
		Life:   t.PowerUps.Lifetime,
	}
}

// RandomPowerUpType 等概率随机选择道具类型
func RandomPowerUpType(rng *rand.Rand) types.PowerUpType {
	all := types.AllPowerUpTypes()
	return all[rng.Intn(len(all))]
}
