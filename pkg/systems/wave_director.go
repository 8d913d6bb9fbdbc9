package systems

import (
	"log"

	"github.com/gonewx/horde/pkg/entities"
	"github.com/gonewx/horde/pkg/game"
	"github.com/gonewx/horde/pkg/types"
)

// WaveDirector 波次导演
//
// 职责：
//   - 按生成间隔曲线生成敌人，直到本波生成数达到击杀目标
//   - 检测波次完成：击杀数达标且场上没有敌人和 Boss
//   - 发放波次奖励、回复玩家，并决定进入 Boss 倒计时还是波间休息
//   - Boss 倒计时结束后在固定出生点生成 Boss
//
// Boss 存活、Boss 倒计时和波间休息期间都暂停生成。
type WaveDirector struct {
	state     *game.SimulationState
	hooks     game.Hooks
	particles *ParticleSystem
}

// NewWaveDirector 创建波次导演
func NewWaveDirector(state *game.SimulationState, hooks game.Hooks, particles *ParticleSystem) *WaveDirector {
	return &WaveDirector{
		state:     state,
		hooks:     hooks,
		particles: particles,
	}
}

// Update 推进一帧
func (wd *WaveDirector) Update(deltaTime float64) {
	s := wd.state
	w := &s.Wave

	if w.BossCountdown > 0 {
		w.BossCountdown -= deltaTime
		if w.BossCountdown <= 0 {
			w.BossCountdown = 0
			wd.spawnBoss()
		}
		return
	}

	if s.Boss != nil {
		return
	}

	if w.BreakTimer > 0 {
		w.BreakTimer -= deltaTime
		if w.BreakTimer <= 0 {
			w.BreakTimer = 0
			log.Printf("[WaveDirector] Break over, wave %d begins", w.Number)
		}
		return
	}

	target := s.KillTarget()
	if w.Killed >= target && s.LiveEnemies() == 0 {
		wd.completeWave()
		return
	}

	if w.Spawned >= target {
		return
	}
	w.SpawnTimer -= deltaTime
	if w.SpawnTimer <= 0 {
		wd.spawnEnemy()
		w.SpawnTimer = s.Tuning.Wave.SpawnInterval(w.Number)
	}
}

// spawnEnemy 在场地外生成一个敌人
func (wd *WaveDirector) spawnEnemy() {
	s := wd.state
	et := PickEnemyType(s.Tuning, s.Wave.Number, s.Rand.Float64())
	x, y := spawnPoint(s.Rand, s.Tuning.Arena, s.Tuning.Enemy(et).Radius)
	s.Enemies.Add(entities.NewEnemy(s.Entities, s.Tuning, et, x, y))
	s.Wave.Spawned++
}

// completeWave 结算当前波次并进入下一波
func (wd *WaveDirector) completeWave() {
	s := wd.state
	w := &s.Wave
	cfg := s.Tuning.Wave
	cleared := w.Number

	bonus := cleared * cfg.BonusScorePerWave
	s.Score += bonus
	wd.hooks.AwardCurrency(cleared * cfg.BonusCurrencyPerWave)
	wd.hooks.AwardExperience(cleared*cfg.BonusExperiencePerWave, game.ExperienceWave)
	wd.hooks.EmitAudioCue(game.CueWaveClear)
	if p := s.Player; p.Alive() {
		p.Heal(healAmount(p.MaxHP, cfg.HealFraction))
		wd.hooks.EmitScorePopup(p.X, p.Y, bonus)
	}

	w.Number++
	w.Spawned = 0
	w.Killed = 0
	w.SpawnTimer = cfg.SpawnInterval(w.Number)

	bt := bossRoll(cfg, w.Number, s.Rand.Float64())
	if bt != types.BossNone {
		w.PendingBoss = bt
		w.BossCountdown = cfg.BossCountdown
		wd.hooks.EmitAudioCue(game.CueBossWarn)
		log.Printf("[WaveDirector] Wave %d cleared, %s boss in %.1fs", cleared, bt, cfg.BossCountdown)
		return
	}

	w.BreakTimer = cfg.BreakDuration
	log.Printf("[WaveDirector] Wave %d cleared, break %.1fs before wave %d", cleared, cfg.BreakDuration, w.Number)
}

// spawnBoss 在固定出生点生成待出场的 Boss
func (wd *WaveDirector) spawnBoss() {
	s := wd.state
	bt := s.Wave.PendingBoss
	s.Wave.PendingBoss = types.BossNone
	if bt == types.BossNone || s.Boss != nil {
		return
	}

	b := entities.NewBoss(s.Entities, s.Tuning, bt, s.Tuning.Arena.Width/2, s.Tuning.Wave.BossSpawnY)
	s.Boss = b
	wd.hooks.EmitAudioCue(game.CueBossSpawn)
	wd.particles.Shake(8, 0.5)
	log.Printf("[WaveDirector] %s boss spawned on wave %d (hp=%d)", bt, s.Wave.Number, b.HP)
}
