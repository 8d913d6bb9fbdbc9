package systems

import (
	"math/rand"
	"testing"

	"github.com/gonewx/horde/pkg/components"
	"github.com/gonewx/horde/pkg/config"
	"github.com/gonewx/horde/pkg/entities"
	"github.com/gonewx/horde/pkg/game"
	"github.com/gonewx/horde/pkg/types"
)

// recordingHooks 记录内核对外部协作者的全部调用
type recordingHooks struct {
	currency   int
	experience map[string]int
	bursts     int
	popups     int
	cues       []string

	particles bool
	shake     bool

	runEnded   int
	finalScore int
	finalWave  int
	finalKills int
}

func newRecordingHooks() *recordingHooks {
	return &recordingHooks{
		experience: map[string]int{},
		particles:  true,
		shake:      true,
	}
}

func (r *recordingHooks) AwardCurrency(amount int) { r.currency += amount }

func (r *recordingHooks) AwardExperience(amount int, kind string) { r.experience[kind] += amount }

func (r *recordingHooks) EmitVisualBurst(x, y float64, color string, count int) { r.bursts++ }

func (r *recordingHooks) EmitScorePopup(x, y float64, amount int) { r.popups++ }

func (r *recordingHooks) EmitAudioCue(tag string) { r.cues = append(r.cues, tag) }

func (r *recordingHooks) ParticlesEnabled() bool { return r.particles }

func (r *recordingHooks) ScreenShakeEnabled() bool { return r.shake }

func (r *recordingHooks) OnRunEnded(finalScore, finalWave, totalKills int) {
	r.runEnded++
	r.finalScore, r.finalWave, r.finalKills = finalScore, finalWave, totalKills
}

// cueCount 统计某个音效标签出现的次数
func (r *recordingHooks) cueCount(tag string) int {
	n := 0
	for _, c := range r.cues {
		if c == tag {
			n++
		}
	}
	return n
}

// constSource 恒定输出的随机源
type constSource struct{ v int64 }

func (s constSource) Int63() int64 { return s.v }
func (s constSource) Seed(int64)   {}

// midSource 使 Float64() 恒为 0.5：不触发掉落，也不会掷出传说 Boss
func midSource() rand.Source { return constSource{v: 1 << 62} }

// newTestSim 创建使用默认调优参数和恒定随机源的模拟
func newTestSim(t *testing.T, opts game.RunOptions) (*Simulation, *game.SimulationState, *recordingHooks) {
	t.Helper()
	if opts.Source == nil {
		opts.Source = midSource()
	}
	if opts.MaxHPTier == 0 {
		opts.MaxHPTier = 1
	}
	if opts.SpeedTier == 0 {
		opts.SpeedTier = 1
	}
	state := game.NewSimulationState(config.DefaultTuning(), opts)
	hooks := newRecordingHooks()
	return NewSimulation(state, hooks), state, hooks
}

// addEnemy 在指定位置放置一个已入场的敌人
func addEnemy(state *game.SimulationState, et types.EnemyType, x, y float64) *components.EnemyComponent {
	e := entities.NewEnemy(state.Entities, state.Tuning, et, x, y)
	e.HasEnteredScreen = true
	state.Enemies.Add(e)
	return e
}

// addBullet 在指定位置放置一颗静止的玩家子弹
func addBullet(state *game.SimulationState, x, y float64) *components.BulletComponent {
	w := state.Tuning.Weapon
	b := &components.BulletComponent{
		ID:     state.Entities.CreateEntity(),
		X:      x,
		Y:      y,
		Radius: w.BulletRadius,
		Damage: w.BulletDamage,
		Life:   w.BulletLifetime,
	}
	state.Bullets.Add(b)
	return b
}

// movePlayerToCorner 把玩家移到远离测试实体的角落
func movePlayerToCorner(state *game.SimulationState) {
	state.Player.X = state.Player.Radius
	state.Player.Y = state.Tuning.Arena.Height - state.Player.Radius
}

// silenceBossCooldowns 让 Boss 的所有攻击冷却足够长，测试中不会自动开火
func silenceBossCooldowns(b *components.BossComponent) {
	for i := range b.Cooldowns {
		b.Cooldowns[i] = 1e9
	}
}

// newTestBoss 在出生点放置一个不会自动开火的 Boss
func newTestBoss(state *game.SimulationState, bt types.BossType) *components.BossComponent {
	b := entities.NewBoss(state.Entities, state.Tuning, bt, state.Tuning.Arena.Width/2, state.Tuning.Wave.BossSpawnY)
	silenceBossCooldowns(b)
	state.Boss = b
	return b
}
