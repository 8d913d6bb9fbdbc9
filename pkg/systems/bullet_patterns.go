package systems

import (
	"math"

	"github.com/gonewx/horde/pkg/components"
	"github.com/gonewx/horde/pkg/entities"
	"github.com/gonewx/horde/pkg/types"
)

// lineSpeedStep 直线齐射中相邻子弹的速度递增比例
const lineSpeedStep = 0.12

// fireVolley 以 Boss 当前位置发射一次齐射
func (bs *BossSystem) fireVolley(b *components.BossComponent, v components.Volley) {
	if v.Count <= 0 {
		return
	}
	base := v.Angle
	if v.Aimed {
		base += bs.aimAngle(b)
	}
	speed := v.Speed
	if speed <= 0 {
		speed = b.BulletSpeed
	}
	color := v.Color
	if color == "" {
		color = BossColor(b.Type)
	}

	combat := bs.state.Tuning.Combat
	add := func(angle, speed float64) {
		bs.state.EnemyBullets.Add(entities.NewEnemyBullet(combat, b.X, b.Y, angle, speed, color))
	}

	switch v.Shape {
	case components.VolleyRing:
		step := 2 * math.Pi / float64(v.Count)
		for i := 0; i < v.Count; i++ {
			add(base+step*float64(i), speed)
		}
	case components.VolleyFan:
		if v.Count == 1 {
			add(base, speed)
			return
		}
		start := base - v.Spread/2
		step := v.Spread / float64(v.Count-1)
		for i := 0; i < v.Count; i++ {
			add(start+step*float64(i), speed)
		}
	case components.VolleyLine:
		for i := 0; i < v.Count; i++ {
			add(base, speed*(1+lineSpeedStep*float64(i)))
		}
	}
}

// aimAngle Boss 指向玩家的角度，没有玩家时朝下
func (bs *BossSystem) aimAngle(b *components.BossComponent) float64 {
	if p := bs.state.Player; p != nil {
		return angleTo(b.X, b.Y, p.X, p.Y)
	}
	return math.Pi / 2
}

// ring 均匀环形弹幕
func (bs *BossSystem) ring(b *components.BossComponent, count int, offset float64) {
	bs.fireVolley(b, components.Volley{Shape: components.VolleyRing, Count: count, Angle: offset})
}

// aimedFan 朝玩家的扇形弹幕
func (bs *BossSystem) aimedFan(b *components.BossComponent, count int, spread float64) {
	bs.fireVolley(b, components.Volley{Shape: components.VolleyFan, Count: count, Spread: spread, Aimed: true})
}

// spiral 螺旋弹幕：每次发射 arms 颗并旋转 step
func (bs *BossSystem) spiral(b *components.BossComponent, arms int, step float64) {
	bs.fireVolley(b, components.Volley{
		Shape: components.VolleyRing,
		Count: arms,
		Angle: b.SpiralAngle,
		Speed: b.BulletSpeed * 0.8,
	})
	b.SpiralAngle = math.Mod(b.SpiralAngle+step, 2*math.Pi)
}

// cross 十字弹幕：四个方向各一列，每次发射后旋转 45 度
func (bs *BossSystem) cross(b *components.BossComponent, length int) {
	for k := 0; k < 4; k++ {
		bs.fireVolley(b, components.Volley{
			Shape: components.VolleyLine,
			Count: length,
			Angle: b.SpiralAngle + float64(k)*math.Pi/2,
		})
	}
	b.SpiralAngle = math.Mod(b.SpiralAngle+math.Pi/4, 2*math.Pi)
}

// wave 波浪弹幕：连续几组扇形，中心角按正弦摆动
func (bs *BossSystem) wave(b *components.BossComponent, fans int, delay float64) {
	for i := 0; i < fans; i++ {
		b.Schedule(float64(i)*delay, components.Volley{
			Shape:  components.VolleyFan,
			Count:  5,
			Spread: 0.8,
			Angle:  math.Sin(float64(i)*0.9) * 0.5,
			Aimed:  true,
		})
	}
}

// chaosBurst 混乱爆发：随机方向、随机速度、随机延迟的散弹
func (bs *BossSystem) chaosBurst(b *components.BossComponent, count int) {
	rng := bs.state.Rand
	for i := 0; i < count; i++ {
		b.Schedule(rng.Float64()*0.4, components.Volley{
			Shape: components.VolleyLine,
			Count: 1,
			Angle: rng.Float64() * 2 * math.Pi,
			Speed: b.BulletSpeed * (0.6 + 0.8*rng.Float64()),
		})
	}
}

// laserSweep 激光扫射：发射时锁定玩家方向，按顺序扫过 sweep 弧度
func (bs *BossSystem) laserSweep(b *components.BossComponent, steps int, sweep, delay float64) {
	if steps < 2 {
		steps = 2
	}
	start := bs.aimAngle(b) - sweep/2
	for i := 0; i < steps; i++ {
		b.Schedule(float64(i)*delay, components.Volley{
			Shape: components.VolleyLine,
			Count: 5,
			Angle: start + sweep*float64(i)/float64(steps-1),
			Speed: b.BulletSpeed * 1.3,
			Color: "red",
		})
	}
}

// multiBurst 多段爆发：立即发射一圈，其余各圈按 delay 间隔延迟发射
func (bs *BossSystem) multiBurst(b *components.BossComponent, waves, count int, delay float64) {
	for i := 0; i < waves; i++ {
		v := components.Volley{
			Shape: components.VolleyRing,
			Count: count,
			Angle: float64(i) * math.Pi / float64(count),
		}
		if i == 0 {
			bs.fireVolley(b, v)
			continue
		}
		b.Schedule(float64(i)*delay, v)
	}
}

// summon 在 Boss 周围召唤小怪
// 召唤物不计入本波生成数，但被击杀时照常计入击杀数
func (bs *BossSystem) summon(b *components.BossComponent, kinds ...types.EnemyType) {
	s := bs.state
	for i, et := range kinds {
		angle := 2 * math.Pi * float64(i) / float64(len(kinds))
		dist := b.Radius + 24
		e := entities.NewEnemy(s.Entities, s.Tuning, et, b.X+math.Cos(angle)*dist, b.Y+math.Sin(angle)*dist)
		e.Summoned = true
		s.Enemies.Add(e)
	}
	if len(kinds) > 0 {
		bs.particles.Burst(b.X, b.Y, "purple", 12)
	}
}
