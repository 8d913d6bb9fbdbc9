package entities

import (
	"math"
	"math/rand"

	"github.com/gonewx/horde/pkg/components"
	"github.com/gonewx/horde/pkg/config"
)

// NewParticleBurst 在 (x, y) 创建一簇向四周飞散的粒子
//
// 参数:
//   - rng: 随机源
//   - s: 模拟参数（粒子寿命和速度）
//   - x, y: 爆发中心
//   - color: 颜色标签
//   - count: 粒子数量
func NewParticleBurst(rng *rand.Rand, s config.SimulationConfig, x, y float64, color string, count int) []*components.ParticleComponent {
	if count <= 0 {
		return nil
	}
	particles := make([]*components.ParticleComponent, 0, count)
	for i := 0; i < count; i++ {
		angle := rng.Float64() * 2 * math.Pi
		speed := s.ParticleSpeed * (0.3 + 0.7*rng.Float64())
		life := s.ParticleLife * (0.5 + 0.5*rng.Float64())
		particles = append(particles, &components.ParticleComponent{
			X:       x,
			Y:       y,
			VX:      math.Cos(angle) * speed,
			VY:      math.Sin(angle) * speed,
			Color:   color,
			Size:    2 + 2*rng.Float64(),
			Life:    life,
			MaxLife: life,
		})
	}
	return particles
}
