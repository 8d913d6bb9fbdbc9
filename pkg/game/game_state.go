package game

import (
	"math/rand"

	"github.com/gonewx/horde/pkg/components"
	"github.com/gonewx/horde/pkg/config"
	"github.com/gonewx/horde/pkg/ecs"
	"github.com/gonewx/horde/pkg/entities"
	"github.com/gonewx/horde/pkg/types"
)

// WaveState 波次导演的状态
type WaveState struct {
	Number  int // 当前波次（从1开始，只增不减）
	Spawned int // 本波已生成的敌人数
	Killed  int // 本波已击杀的敌人数

	SpawnTimer    float64 // 距下一次生成的剩余时间
	BreakTimer    float64 // 波间休息剩余时间，> 0 时暂停生成
	BossCountdown float64 // Boss 出场倒计时，> 0 时暂停生成
	PendingBoss   types.BossType
}

// ComboState 连击状态
type ComboState struct {
	Count int     // 当前连击数
	Timer float64 // 距连击清零的剩余时间
	Best  int     // 本局最高连击
}

// SimulationState 一局游戏的全部模拟状态
//
// 由 systems.Simulation 独占持有，按固定顺序传给每个系统。
// 不存在全局单例，新开一局即创建新的 SimulationState。
type SimulationState struct {
	Tuning   *config.Tuning
	Entities *ecs.EntityManager
	Rand     *rand.Rand

	// Player 本局玩家，只在开局时创建
	Player *components.PlayerComponent
	// Boss 当前 Boss，不存在时为 nil
	Boss *components.BossComponent

	Bullets      *ecs.Pool[*components.BulletComponent]
	EnemyBullets *ecs.Pool[*components.EnemyBulletComponent]
	Enemies      *ecs.Pool[*components.EnemyComponent]
	Particles    *ecs.Pool[*components.ParticleComponent]
	PowerUps     *ecs.Pool[*components.PowerUpComponent]

	Wave  WaveState
	Combo ComboState

	Score          int
	Kills          int // 本局总击杀数
	BossesDefeated int
	Elapsed        float64 // 本局存活时间（秒）

	// 震屏，仅在开关打开时写入
	ShakeTime      float64
	ShakeMagnitude float64

	// GameOver 玩家死亡后置位，此后只推进粒子
	GameOver      bool
	GameOverTimer float64
	// RunEnded 已通知 RunObserver
	RunEnded bool
}

// NewSimulationState 创建新的一局
//
// 参数:
//   - t: 调优参数
//   - opts: 开局参数（永久升级等级、起始波次、随机源）
//
// 返回:
//   - *SimulationState: 玩家位于场地中心、尚未生成任何敌人的状态
func NewSimulationState(t *config.Tuning, opts RunOptions) *SimulationState {
	start := opts.StartWave
	if start <= 0 {
		start = t.Wave.StartWave
	}

	s := &SimulationState{
		Tuning:       t,
		Entities:     ecs.NewEntityManager(),
		Rand:         opts.newRand(),
		Player:       entities.NewPlayer(t, opts.MaxHPTier, opts.SpeedTier),
		Bullets:      ecs.NewPool[*components.BulletComponent](128),
		EnemyBullets: ecs.NewPool[*components.EnemyBulletComponent](256),
		Enemies:      ecs.NewPool[*components.EnemyComponent](64),
		Particles:    ecs.NewPool[*components.ParticleComponent](t.Simulation.MaxParticles),
		PowerUps:     ecs.NewPool[*components.PowerUpComponent](8),
	}
	s.Wave.Number = start
	s.Wave.SpawnTimer = t.Wave.SpawnInterval(start)
	return s
}

// KillTarget 本波需要的击杀数
func (s *SimulationState) KillTarget() int {
	return s.Tuning.Wave.KillTarget(s.Wave.Number)
}

// RemainingEnemies 本波还需击杀的敌人数
func (s *SimulationState) RemainingEnemies() int {
	n := s.KillTarget() - s.Wave.Killed
	if n < 0 {
		return 0
	}
	return n
}

// LiveEnemies 返回未结算死亡的敌人数
func (s *SimulationState) LiveEnemies() int {
	n := 0
	for _, e := range s.Enemies.Items() {
		if e.Alive() {
			n++
		}
	}
	return n
}

// Snapshot 复制一份供表现层读取的只读状态
func (s *SimulationState) Snapshot() Snapshot {
	snap := Snapshot{
		Score:            s.Score,
		Wave:             s.Wave.Number,
		Combo:            s.Combo.Count,
		BestCombo:        s.Combo.Best,
		RemainingEnemies: s.RemainingEnemies(),
		Kills:            s.Kills,
		BossesDefeated:   s.BossesDefeated,
		Elapsed:          s.Elapsed,
		Enemies:          s.Enemies.Len(),
		EnemyBullets:     s.EnemyBullets.Len(),
		BreakTime:        s.Wave.BreakTimer,
		BossCountdown:    s.Wave.BossCountdown,
		GameOver:         s.GameOver,
	}
	if p := s.Player; p != nil {
		snap.PlayerHP = p.HP
		snap.PlayerMaxHP = p.MaxHP
		snap.WeaponTier = p.WeaponTier
	}
	if b := s.Boss; b != nil {
		snap.Boss = b.Type.String()
		snap.BossHP = b.HP
		snap.BossMaxHP = b.MaxHP
		snap.BossPhase = b.Phase
	}
	return snap
}
