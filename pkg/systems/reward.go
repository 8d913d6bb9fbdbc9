package systems

import (
	"log"

	"github.com/gonewx/horde/pkg/components"
	"github.com/gonewx/horde/pkg/entities"
	"github.com/gonewx/horde/pkg/game"
	"github.com/gonewx/horde/pkg/types"
)

// enemyColors 各类敌人死亡时的粒子颜色
var enemyColors = map[types.EnemyType]string{
	types.EnemyNormal:   "red",
	types.EnemyFast:     "yellow",
	types.EnemyTank:     "green",
	types.EnemyShooter:  "purple",
	types.EnemyMiniboss: "orange",
	types.EnemyEnforcer: "crimson",
}

// bossColors 各类 Boss 的弹幕与死亡粒子颜色
var bossColors = map[types.BossType]string{
	types.BossBase:      "magenta",
	types.BossMega:      "cyan",
	types.BossUltra:     "white",
	types.BossLegendary: "gold",
}

// EnemyColor 返回敌人类型的颜色标签
func EnemyColor(et types.EnemyType) string {
	if c, ok := enemyColors[et]; ok {
		return c
	}
	return "red"
}

// BossColor 返回 Boss 变体的颜色标签
func BossColor(bt types.BossType) string {
	if c, ok := bossColors[bt]; ok {
		return c
	}
	return "magenta"
}

// rewarder 在击杀结算点发放奖励
// 每个目标只结算一次：结算后敌人标记 Dead，Boss 从状态中移除
type rewarder struct {
	state     *game.SimulationState
	hooks     game.Hooks
	combo     *ComboSystem
	particles *ParticleSystem
}

// killEnemy 结算敌人死亡：分数、货币、经验、连击、掉落
func (r *rewarder) killEnemy(e *components.EnemyComponent) {
	if e.Dead {
		return
	}
	e.Dead = true
	if e.HP > 0 {
		e.HP = 0
	}

	s := r.state
	s.Score += e.Score
	s.Kills++
	s.Wave.Killed++
	r.combo.Register()

	r.hooks.AwardCurrency(e.Currency)
	r.hooks.AwardExperience(e.Experience, game.ExperienceKill)
	r.hooks.EmitScorePopup(e.X, e.Y, e.Score)
	r.hooks.EmitAudioCue(game.CueKill)
	r.particles.Burst(e.X, e.Y, EnemyColor(e.Type), 8)

	r.maybeDrop(e)
}

// maybeDrop 按掉落概率生成道具，必掉敌人总是掉落
func (r *rewarder) maybeDrop(e *components.EnemyComponent) {
	s := r.state
	if !e.AlwaysDrops && s.Rand.Float64() >= s.Tuning.PowerUps.DropChance {
		return
	}
	pt := entities.RandomPowerUpType(s.Rand)
	s.PowerUps.Add(entities.NewPowerUp(s.Entities, s.Tuning, pt, e.X, e.Y))
}

// killBoss 结算 Boss 死亡
// 清空未发射的延迟齐射并把 Boss 从状态中移除
func (r *rewarder) killBoss(b *components.BossComponent) {
	if r.state.Boss != b {
		return
	}
	if b.HP > 0 {
		b.HP = 0
	}
	if b.Type.Terminable() {
		b.Terminated = true
	}
	b.Pending = nil

	s := r.state
	s.Boss = nil
	s.Score += b.Score
	s.Kills++
	s.BossesDefeated++
	r.combo.Register()

	r.hooks.AwardCurrency(b.Currency)
	r.hooks.AwardExperience(b.Experience, game.ExperienceBoss)
	r.hooks.EmitScorePopup(b.X, b.Y, b.Score)
	r.hooks.EmitAudioCue(game.CueBossDeath)
	r.particles.Burst(b.X, b.Y, BossColor(b.Type), 40)
	r.particles.Shake(12, 0.6)

	log.Printf("[BossSystem] %s boss defeated on wave %d (score=%d)", b.Type, s.Wave.Number, s.Score)
}
