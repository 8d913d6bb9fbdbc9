package systems

import (
	"github.com/gonewx/horde/pkg/components"
	"github.com/gonewx/horde/pkg/ecs"
	"github.com/gonewx/horde/pkg/game"
	"github.com/gonewx/horde/pkg/spatial"
)

// hitTarget 空间索引中的一个可被击中的目标：敌人或 Boss 二选一
type hitTarget struct {
	enemy *components.EnemyComponent
	boss  *components.BossComponent
}

func (t hitTarget) id() ecs.EntityID {
	if t.boss != nil {
		return t.boss.ID
	}
	return t.enemy.ID
}

func (t hitTarget) pos() (float64, float64) {
	if t.boss != nil {
		return t.boss.X, t.boss.Y
	}
	return t.enemy.X, t.enemy.Y
}

func (t hitTarget) radius() float64 {
	if t.boss != nil {
		return t.boss.Radius
	}
	return t.enemy.Radius
}

// hittable 目标仍然存活且可以被玩家子弹命中
// 未进入场地的敌人不可命中
func (t hitTarget) hittable() bool {
	if t.boss != nil {
		return t.boss.Alive()
	}
	return t.enemy.Alive() && t.enemy.HasEnteredScreen
}

// CollisionSystem 碰撞检测
//
// 粗检测使用每帧重建的空间哈希，候选目标一律再做精确的圆形相交判定。
type CollisionSystem struct {
	state   *game.SimulationState
	hooks   game.Hooks
	player  *PlayerSystem
	rewards *rewarder

	index     *spatial.Hash[hitTarget]
	queryBuf  []hitTarget
	maxRadius float64
}

// NewCollisionSystem 创建碰撞系统
func NewCollisionSystem(state *game.SimulationState, hooks game.Hooks, player *PlayerSystem, rewards *rewarder) *CollisionSystem {
	return &CollisionSystem{
		state:     state,
		hooks:     hooks,
		player:    player,
		rewards:   rewards,
		index:     spatial.NewHash[hitTarget](state.Tuning.Simulation.SpatialCellSize),
		maxRadius: state.Tuning.MaxEnemyRadius(),
	}
}

// EnemyBulletsVsPlayer 敌方子弹与玩家
// 命中时造成固定伤害并删除子弹；冲刺无敌期间子弹穿过玩家
func (cs *CollisionSystem) EnemyBulletsVsPlayer() {
	p := cs.state.Player
	if !p.Alive() || p.Invulnerable() {
		return
	}
	pool := cs.state.EnemyBullets
	for i := pool.Len() - 1; i >= 0; i-- {
		b := pool.At(i)
		if !circlesOverlap(p.X, p.Y, p.Radius, b.X, b.Y, b.Radius) {
			continue
		}
		cs.player.TakeDamage(b.Damage)
		pool.RemoveAt(i)
		if !p.Alive() {
			return
		}
	}
}

// RebuildIndex 用当前的敌人和 Boss 重建空间索引
func (cs *CollisionSystem) RebuildIndex() {
	cs.index.Clear()
	for _, e := range cs.state.Enemies.Items() {
		if e.Alive() {
			cs.index.Insert(hitTarget{enemy: e}, e.X, e.Y)
		}
	}
	if b := cs.state.Boss; b.Alive() {
		cs.index.Insert(hitTarget{boss: b}, b.X, b.Y)
	}
}

// PlayerBulletsVsTargets 玩家子弹与敌人、Boss
//
// 每颗子弹对同一目标只结算一次。持有穿透增益时子弹命中后保留，
// 否则命中第一个目标后删除。持有爆炸增益时，命中点周围
// combat.splashRadius 内的其他目标各受到一次溅射伤害。
func (cs *CollisionSystem) PlayerBulletsVsTargets() {
	p := cs.state.Player
	piercing := p != nil && p.Piercing()
	explosive := p != nil && p.Explosive()

	pool := cs.state.Bullets
	for i := pool.Len() - 1; i >= 0; i-- {
		b := pool.At(i)
		cs.queryBuf = cs.index.AppendQueryRadius(cs.queryBuf[:0], b.X, b.Y, b.Radius+cs.maxRadius)

		consumed := false
		for _, t := range cs.queryBuf {
			if !t.hittable() || b.HasHit(t.id()) {
				continue
			}
			tx, ty := t.pos()
			if !circlesOverlap(b.X, b.Y, b.Radius, tx, ty, t.radius()) {
				continue
			}

			b.Hits = append(b.Hits, t.id())
			cs.damage(t, b.Damage)
			if explosive {
				cs.splash(t, tx, ty)
			}
			if !piercing {
				consumed = true
				break
			}
		}
		if consumed {
			pool.RemoveAt(i)
		}
	}

	cs.removeDead()
}

// splash 对命中点周围的其他目标各造成一次溅射伤害
func (cs *CollisionSystem) splash(direct hitTarget, x, y float64) {
	combat := cs.state.Tuning.Combat
	if combat.SplashRadius <= 0 || combat.SplashDamage <= 0 {
		return
	}
	cs.particles().Burst(x, y, "orange", 10)

	rSq := combat.SplashRadius * combat.SplashRadius
	for _, n := range cs.index.QueryRadius(x, y, combat.SplashRadius) {
		if n.id() == direct.id() || !n.hittable() {
			continue
		}
		nx, ny := n.pos()
		if distSq(x, y, nx, ny) > rSq {
			continue
		}
		cs.damage(n, combat.SplashDamage)
	}
}

// damage 扣除目标生命值，归零时结算击杀
func (cs *CollisionSystem) damage(t hitTarget, amount int) {
	if t.boss != nil {
		b := t.boss
		b.HP -= amount
		if b.HP <= 0 {
			cs.rewards.killBoss(b)
		}
		return
	}

	e := t.enemy
	e.HP -= amount
	if e.HP <= 0 {
		cs.rewards.killEnemy(e)
	} else {
		cs.hooks.EmitAudioCue(game.CueHit)
	}
}

// EnemiesVsPlayer 敌人与玩家的接触
// 接触的敌人被消灭并照常结算奖励，玩家受到该类型的接触伤害
func (cs *CollisionSystem) EnemiesVsPlayer() {
	p := cs.state.Player
	if !p.Alive() || p.Invulnerable() {
		return
	}
	for _, e := range cs.state.Enemies.Items() {
		if !e.Alive() || !e.HasEnteredScreen {
			continue
		}
		if !circlesOverlap(p.X, p.Y, p.Radius, e.X, e.Y, e.Radius) {
			continue
		}
		cs.rewards.killEnemy(e)
		cs.player.TakeDamage(e.ContactDamage)
		if !p.Alive() {
			break
		}
	}
	cs.removeDead()
}

// BossVsPlayer Boss 与玩家的接触，Boss 不会被移除
// 伤害受 combat.bossContactCooldown 限制
func (cs *CollisionSystem) BossVsPlayer() {
	p := cs.state.Player
	b := cs.state.Boss
	if !p.Alive() || !b.Alive() || p.Invulnerable() || p.BossContactCooldown > 0 {
		return
	}
	if !circlesOverlap(p.X, p.Y, p.Radius, b.X, b.Y, b.Radius) {
		return
	}
	combat := cs.state.Tuning.Combat
	cs.player.TakeDamage(combat.BossContactDamage)
	p.BossContactCooldown = combat.BossContactCooldown
}

// removeDead 删除已结算死亡的敌人
func (cs *CollisionSystem) removeDead() {
	cs.state.Enemies.Retain(func(e *components.EnemyComponent) bool {
		return !e.Dead
	})
}

func (cs *CollisionSystem) particles() *ParticleSystem {
	return cs.rewards.particles
}
