package main

import (
	"math"

	"github.com/gonewx/horde/pkg/game"
)

// 机器人参数
const (
	botEnemyRange  = 260.0 // 在此距离内的敌人产生排斥
	botBulletRange = 120.0 // 在此距离内的敌方子弹产生排斥
	botBossRange   = 320.0
	botEdgeMargin  = 120.0 // 离边界多近时开始向中心回拉
	botDashRange   = 70.0  // 最近威胁进入此距离时冲刺
)

// kiteBot 自动瞄准并远离威胁的简单机器人
// 每帧根据当前状态生成输入，不保存历史
type kiteBot struct{}

// Input 生成一帧输入
func (kiteBot) Input(s *game.SimulationState) game.Input {
	in := game.Input{AutoAim: true, Fire: true}
	p := s.Player
	if !p.Alive() {
		return in
	}

	var fx, fy float64
	nearest := math.Inf(1)

	repel := func(x, y, rng, weight float64) {
		dx, dy := p.X-x, p.Y-y
		d := math.Hypot(dx, dy)
		if d >= rng {
			return
		}
		if d < nearest {
			nearest = d
		}
		if d < 1 {
			// 重叠时随便选一个方向
			fx += weight
			return
		}
		f := weight * (rng - d) / rng
		fx += dx / d * f
		fy += dy / d * f
	}

	for _, e := range s.Enemies.Items() {
		if e.Alive() && e.HasEnteredScreen {
			repel(e.X, e.Y, botEnemyRange+e.Radius, 1)
		}
	}
	for _, b := range s.EnemyBullets.Items() {
		repel(b.X, b.Y, botBulletRange, 1.5)
	}
	if b := s.Boss; b != nil && b.Alive() {
		repel(b.X, b.Y, botBossRange+b.Radius, 3)
	}

	// 靠近边界时向中心回拉，避免被逼进角落
	arena := s.Tuning.Arena
	cx, cy := arena.Width/2, arena.Height/2
	if p.X < botEdgeMargin || p.X > arena.Width-botEdgeMargin {
		fx += (cx - p.X) / cx * 2
	}
	if p.Y < botEdgeMargin || p.Y > arena.Height-botEdgeMargin {
		fy += (cy - p.Y) / cy * 2
	}

	if l := math.Hypot(fx, fy); l > 1e-6 {
		in.MoveX, in.MoveY = fx/l, fy/l
	}
	in.Dash = nearest < botDashRange+p.Radius && p.DashCooldown <= 0
	return in
}
