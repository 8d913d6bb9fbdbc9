package scenes

import (
	"fmt"
	"image/color"
	"math"

	"github.com/gonewx/horde/pkg/components"
	"github.com/gonewx/horde/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// debugCharWidth DebugPrint 字体的字符宽度（像素）
const debugCharWidth = 6

func (s *GameScene) drawWorld(screen *ebiten.Image, ox, oy float64) {
	st := s.state
	arena := st.Tuning.Arena

	screen.Fill(backgroundColor)
	vector.StrokeRect(screen, float32(ox), float32(oy), float32(arena.Width), float32(arena.Height), 2, arenaEdgeColor, false)

	for _, p := range st.Particles.Items() {
		c := fade(paletteColor(p.Color), p.Alpha())
		vector.FillCircle(screen, float32(p.X+ox), float32(p.Y+oy), float32(p.Size), c, false)
	}

	for _, pu := range st.PowerUps.Items() {
		// 即将消失时闪烁
		if pu.Life < 2 && int(pu.Life*8)%2 == 0 {
			continue
		}
		y := pu.Y + math.Sin(pu.BobPhase)*3
		vector.FillCircle(screen, float32(pu.X+ox), float32(y+oy), float32(pu.Radius), powerUpColors[pu.Type], true)
		vector.StrokeCircle(screen, float32(pu.X+ox), float32(y+oy), float32(pu.Radius+2), 1, namedColors["white"], true)
	}

	for _, e := range st.Enemies.Items() {
		s.drawEnemy(screen, e, ox, oy)
	}
	if b := st.Boss; b != nil {
		s.drawBoss(screen, b, ox, oy)
	}

	for _, b := range st.Bullets.Items() {
		vector.FillCircle(screen, float32(b.X+ox), float32(b.Y+oy), float32(b.Radius), bulletColor, false)
	}
	for _, b := range st.EnemyBullets.Items() {
		vector.FillCircle(screen, float32(b.X+ox), float32(b.Y+oy), float32(b.Radius), paletteColor(b.Color), false)
	}

	if p := st.Player; p.Alive() {
		s.drawPlayer(screen, p, ox, oy)
	}

	for _, pp := range s.popups {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("+%d", pp.amount), int(pp.x+ox), int(pp.y+oy))
	}
}

func (s *GameScene) drawEnemy(screen *ebiten.Image, e *components.EnemyComponent, ox, oy float64) {
	x, y := float32(e.X+ox), float32(e.Y+oy)
	vector.FillCircle(screen, x, y, float32(e.Radius), paletteColor(systems.EnemyColor(e.Type)), true)

	if e.EnforcerState == components.EnforcerCharging {
		vector.StrokeCircle(screen, x, y, float32(e.Radius+4), 2, namedColors["white"], true)
	}
	if e.MaxHP > 2 && e.HP < e.MaxHP {
		drawBar(screen, e.X+ox-e.Radius, e.Y+oy-e.Radius-6, e.Radius*2, 3, float64(e.HP)/float64(e.MaxHP), namedColors["red"])
	}
}

func (s *GameScene) drawBoss(screen *ebiten.Image, b *components.BossComponent, ox, oy float64) {
	x, y := float32(b.X+ox), float32(b.Y+oy)
	c := paletteColor(systems.BossColor(b.Type))
	vector.FillCircle(screen, x, y, float32(b.Radius), c, true)
	vector.StrokeCircle(screen, x, y, float32(b.Radius+3), 3, namedColors["white"], true)

	// 冲撞蓄力时画出锁定方向
	if b.MovePattern == components.MoveDash && b.ChargeTime > 0 {
		if p := s.state.Player; p != nil {
			vector.StrokeLine(screen, x, y, float32(p.X+ox), float32(p.Y+oy), 1, namedColors["red"], true)
		}
	}
}

func (s *GameScene) drawPlayer(screen *ebiten.Image, p *components.PlayerComponent, ox, oy float64) {
	x, y := float32(p.X+ox), float32(p.Y+oy)
	c := playerColor
	if p.Invulnerable() {
		c = fade(c, 0.5)
	}
	vector.FillCircle(screen, x, y, float32(p.Radius), c, true)
	if p.Shielded() {
		vector.StrokeCircle(screen, x, y, float32(p.Radius+5), 2, shieldColor, true)
	}

	aimLen := float32(p.Radius + 10)
	vector.StrokeLine(screen, x, y, x+float32(p.AimX)*aimLen, y+float32(p.AimY)*aimLen, 2, playerColor, true)
}

func (s *GameScene) drawHUD(screen *ebiten.Image) {
	st := s.state
	snap := st.Snapshot()

	lines := []string{
		fmt.Sprintf("SCORE %d   WAVE %d   KILLS %d", snap.Score, snap.Wave, snap.Kills),
		fmt.Sprintf("HP %d/%d   WEAPON %d   COMBO x%d (best %d)", snap.PlayerHP, snap.PlayerMaxHP, snap.WeaponTier, snap.Combo, snap.BestCombo),
		fmt.Sprintf("REMAINING %d   TIME %.0fs", snap.RemainingEnemies, snap.Elapsed),
	}
	if p := st.Player; p != nil {
		if buffs := activeBuffs(p); buffs != "" {
			lines = append(lines, buffs)
		}
	}
	switch {
	case snap.BossCountdown > 0:
		lines = append(lines, fmt.Sprintf("WARNING: %s BOSS IN %.1f", st.Wave.PendingBoss, snap.BossCountdown))
	case snap.BreakTime > 0:
		lines = append(lines, fmt.Sprintf("WAVE %d STARTS IN %.1f", snap.Wave, snap.BreakTime))
	}
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, 10, 8+i*16)
	}

	if snap.Boss != "" && snap.BossMaxHP > 0 {
		w := st.Tuning.Arena.Width * 0.5
		x := (st.Tuning.Arena.Width - w) / 2
		drawBar(screen, x, 12, w, 10, float64(snap.BossHP)/float64(snap.BossMaxHP), paletteColor(systems.BossColor(st.Boss.Type)))
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s boss - phase %d", snap.Boss, snap.BossPhase+1), int(x), 24)
	}
}

// activeBuffs 返回剩余增益时间的文字描述
func activeBuffs(p *components.PlayerComponent) string {
	out := ""
	add := func(name string, t float64) {
		if t > 0 {
			out += fmt.Sprintf("%s %.0fs  ", name, math.Ceil(t))
		}
	}
	add("SHIELD", p.ShieldTime)
	add("SPEED", p.SpeedBoostTime)
	add("PIERCE", p.PierceTime)
	add("EXPLOSIVE", p.ExplosiveTime)
	return out
}

func (s *GameScene) drawGameOver(screen *ebiten.Image) {
	arena := s.state.Tuning.Arena
	vector.FillRect(screen, 0, 0, float32(arena.Width), float32(arena.Height), overlayColor, false)

	snap := s.state.Snapshot()
	msg := fmt.Sprintf("GAME OVER\n\nscore %d  wave %d  kills %d  best combo %d",
		snap.Score, snap.Wave, snap.Kills, snap.BestCombo)
	if s.state.RunEnded {
		msg += "\n\npress R or Enter to play again"
	}
	drawCenteredBanner(screen, msg)
}

// drawCenteredBanner 在屏幕中央绘制多行文字
func drawCenteredBanner(screen *ebiten.Image, msg string) {
	b := screen.Bounds()
	width := 0
	lines := 1
	cur := 0
	for _, r := range msg {
		if r == '\n' {
			lines++
			cur = 0
			continue
		}
		cur++
		if cur > width {
			width = cur
		}
	}
	x := (b.Dx() - width*debugCharWidth) / 2
	y := (b.Dy() - lines*16) / 2
	ebitenutil.DebugPrintAt(screen, msg, x, y)
}

// drawBar 绘制进度条
func drawBar(screen *ebiten.Image, x, y, w, h, ratio float64, fill color.Color) {
	ratio = math.Max(0, math.Min(1, ratio))
	vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), barBackColor, false)
	vector.FillRect(screen, float32(x), float32(y), float32(w*ratio), float32(h), fill, false)
}
