package game

// RewardSink 接收击杀、波次和 Boss 奖励
type RewardSink interface {
	AwardCurrency(amount int)
	// AwardExperience kind 为 "kill"、"wave" 或 "boss"
	AwardExperience(amount int, kind string)
}

// Presenter 表现层钩子，模拟内核只调用、不等待结果
type Presenter interface {
	EmitVisualBurst(x, y float64, color string, count int)
	EmitScorePopup(x, y float64, amount int)
	EmitAudioCue(tag string)
}

// Toggles 只读功能开关，内核在生成粒子和震屏前查询
type Toggles interface {
	ParticlesEnabled() bool
	ScreenShakeEnabled() bool
}

// RunObserver 一局结束时被调用且只调用一次
type RunObserver interface {
	OnRunEnded(finalScore, finalWave, totalKills int)
}

// 经验类型
const (
	ExperienceKill = "kill"
	ExperienceWave = "wave"
	ExperienceBoss = "boss"
)

// 音效标签
const (
	CueShoot      = "shoot"
	CueHit        = "hit"
	CueKill       = "kill"
	CuePlayerHurt = "player_hurt"
	CuePowerUp    = "powerup"
	CueWaveClear  = "wave_clear"
	CueBossWarn   = "boss_warning"
	CueBossSpawn  = "boss_spawn"
	CueBossPhase  = "boss_phase"
	CueBossDeath  = "boss_death"
	CueGameOver   = "game_over"

	CueEnforcerDash = "enforcer_dash"
)

// Hooks 模拟内核依赖的全部外部协作者
type Hooks interface {
	RewardSink
	Presenter
	Toggles
	RunObserver
}

// NopHooks 空实现：不发放奖励、不做表现，粒子和震屏均开启
type NopHooks struct{}

func (NopHooks) AwardCurrency(int)                             {}
func (NopHooks) AwardExperience(int, string)                   {}
func (NopHooks) EmitVisualBurst(float64, float64, string, int) {}
func (NopHooks) EmitScorePopup(float64, float64, int)          {}
func (NopHooks) EmitAudioCue(string)                           {}
func (NopHooks) ParticlesEnabled() bool                        { return true }
func (NopHooks) ScreenShakeEnabled() bool                      { return true }
func (NopHooks) OnRunEnded(int, int, int)                      {}

// MultiHooks 把事件依次转发给多个协作者
// 功能开关取所有协作者的逻辑与
type MultiHooks []Hooks

func (m MultiHooks) AwardCurrency(amount int) {
	for _, h := range m {
		h.AwardCurrency(amount)
	}
}

func (m MultiHooks) AwardExperience(amount int, kind string) {
	for _, h := range m {
		h.AwardExperience(amount, kind)
	}
}

func (m MultiHooks) EmitVisualBurst(x, y float64, color string, count int) {
	for _, h := range m {
		h.EmitVisualBurst(x, y, color, count)
	}
}

func (m MultiHooks) EmitScorePopup(x, y float64, amount int) {
	for _, h := range m {
		h.EmitScorePopup(x, y, amount)
	}
}

func (m MultiHooks) EmitAudioCue(tag string) {
	for _, h := range m {
		h.EmitAudioCue(tag)
	}
}

func (m MultiHooks) ParticlesEnabled() bool {
	for _, h := range m {
		if !h.ParticlesEnabled() {
			return false
		}
	}
	return true
}

func (m MultiHooks) ScreenShakeEnabled() bool {
	for _, h := range m {
		if !h.ScreenShakeEnabled() {
			return false
		}
	}
	return true
}

func (m MultiHooks) OnRunEnded(finalScore, finalWave, totalKills int) {
	for _, h := range m {
		h.OnRunEnded(finalScore, finalWave, totalKills)
	}
}

// HookSet 按职责组合协作者，未设置的部分退化为 NopHooks 的行为
type HookSet struct {
	Rewards   RewardSink
	Presenter Presenter
	Toggles   Toggles
	Observer  RunObserver
}

func (h HookSet) AwardCurrency(amount int) {
	if h.Rewards != nil {
		h.Rewards.AwardCurrency(amount)
	}
}

func (h HookSet) AwardExperience(amount int, kind string) {
	if h.Rewards != nil {
		h.Rewards.AwardExperience(amount, kind)
	}
}

func (h HookSet) EmitVisualBurst(x, y float64, color string, count int) {
	if h.Presenter != nil {
		h.Presenter.EmitVisualBurst(x, y, color, count)
	}
}

func (h HookSet) EmitScorePopup(x, y float64, amount int) {
	if h.Presenter != nil {
		h.Presenter.EmitScorePopup(x, y, amount)
	}
}

func (h HookSet) EmitAudioCue(tag string) {
	if h.Presenter != nil {
		h.Presenter.EmitAudioCue(tag)
	}
}

func (h HookSet) ParticlesEnabled() bool {
	return h.Toggles == nil || h.Toggles.ParticlesEnabled()
}

func (h HookSet) ScreenShakeEnabled() bool {
	return h.Toggles == nil || h.Toggles.ScreenShakeEnabled()
}

func (h HookSet) OnRunEnded(finalScore, finalWave, totalKills int) {
	if h.Observer != nil {
		h.Observer.OnRunEnded(finalScore, finalWave, totalKills)
	}
}
