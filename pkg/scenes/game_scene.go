package scenes

import (
	"log"
	"math/rand"

	"github.com/gonewx/horde/pkg/config"
	"github.com/gonewx/horde/pkg/game"
	"github.com/gonewx/horde/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

// 分数飘字参数
const (
	popupLifetime = 0.9 // 秒
	popupRise     = 40  // 像素/秒
	maxPopups     = 48
)

// CuePlayer 播放音效标签，由 app 包的合成音效实现
type CuePlayer interface {
	PlayCue(tag string)
}

// SnapshotSink 每帧接收一份只读快照（HUD 推送等）
type SnapshotSink interface {
	Publish(snap game.Snapshot)
}

// InputSource 采集一帧输入
type InputSource func(s *game.SimulationState) game.Input

// GameSceneConfig 对局场景的依赖
// 除 Tuning 外都可以为 nil
type GameSceneConfig struct {
	Tuning  *config.Tuning
	Options game.RunOptions

	Rewards   game.RewardSink
	Toggles   game.Toggles
	Observer  game.RunObserver
	Audio     CuePlayer
	Snapshots SnapshotSink

	// Input 为 nil 时从键盘鼠标采集
	Input InputSource
}

// scorePopup 击杀或奖励时的飘字
type scorePopup struct {
	x, y   float64
	amount int
	life   float64
}

// GameScene 对局场景
//
// 持有一局模拟，同时作为模拟内核的 Presenter：
// 音效转发给 CuePlayer，分数飘字由场景自己绘制。
type GameScene struct {
	sim   *systems.Simulation
	state *game.SimulationState

	audio     CuePlayer
	snapshots SnapshotSink
	input     InputSource
	keyboard  *keyboardInput

	popups []scorePopup
	shake  *rand.Rand

	paused   bool
	finished bool
}

// NewGameScene 创建对局场景并开始新的一局
//
// 参数:
//   - cfg: 场景依赖，cfg.Tuning 不能为 nil
//
// 返回:
//   - *GameScene: 已创建模拟、等待第一帧 Update 的场景
func NewGameScene(cfg GameSceneConfig) *GameScene {
	scene := &GameScene{
		audio:     cfg.Audio,
		snapshots: cfg.Snapshots,
		input:     cfg.Input,
		shake:     rand.New(rand.NewSource(1)),
	}
	if scene.input == nil {
		scene.keyboard = newKeyboardInput()
		scene.input = scene.keyboard.read
	}

	hooks := game.HookSet{
		Rewards:   cfg.Rewards,
		Presenter: scene,
		Toggles:   cfg.Toggles,
		Observer:  cfg.Observer,
	}
	scene.state = game.NewSimulationState(cfg.Tuning, cfg.Options)
	scene.sim = systems.NewSimulation(scene.state, hooks)

	log.Printf("[GameScene] Scene created (wave %d, hp %d)", scene.state.Wave.Number, scene.state.Player.HP)
	return scene
}

// State 返回当前对局状态（只读使用）
func (s *GameScene) State() *game.SimulationState {
	return s.state
}

// Update 采集输入并推进一帧
func (s *GameScene) Update(deltaTime float64) {
	if s.keyboard != nil {
		if s.keyboard.pausePressed() {
			s.togglePause()
		}
		if s.state.RunEnded && s.keyboard.restartPressed() {
			s.finished = true
			return
		}
	}
	if s.paused {
		return
	}

	s.sim.Step(deltaTime, s.input(s.state))
	s.updatePopups(deltaTime)

	if s.snapshots != nil {
		s.snapshots.Publish(s.state.Snapshot())
	}
}

// togglePause 暂停或继续，继续后的第一帧整帧跳过
func (s *GameScene) togglePause() {
	s.paused = !s.paused
	if !s.paused {
		s.sim.NotifyResumed()
	}
	log.Printf("[GameScene] Paused: %v", s.paused)
}

// OnResume 窗口重新获得焦点
func (s *GameScene) OnResume() {
	s.sim.NotifyResumed()
}

// Finished 本局已结束且玩家请求重开
func (s *GameScene) Finished() bool {
	return s.finished
}

// RequestRestart 结束后重开，用于无键盘的宿主
func (s *GameScene) RequestRestart() {
	if s.state.RunEnded {
		s.finished = true
	}
}

func (s *GameScene) updatePopups(dt float64) {
	n := 0
	for _, p := range s.popups {
		p.life -= dt
		p.y -= popupRise * dt
		if p.life > 0 {
			s.popups[n] = p
			n++
		}
	}
	s.popups = s.popups[:n]
}

// EmitVisualBurst 粒子由模拟状态直接绘制，这里不需要额外处理
func (s *GameScene) EmitVisualBurst(x, y float64, color string, count int) {}

// EmitScorePopup 添加分数飘字
func (s *GameScene) EmitScorePopup(x, y float64, amount int) {
	if amount <= 0 {
		return
	}
	if len(s.popups) >= maxPopups {
		s.popups = s.popups[1:]
	}
	s.popups = append(s.popups, scorePopup{x: x, y: y, amount: amount, life: popupLifetime})
}

// EmitAudioCue 转发给 CuePlayer
func (s *GameScene) EmitAudioCue(tag string) {
	if s.audio != nil {
		s.audio.PlayCue(tag)
	}
}

// Draw 绘制对局画面
func (s *GameScene) Draw(screen *ebiten.Image) {
	ox, oy := s.shakeOffset()
	s.drawWorld(screen, ox, oy)
	s.drawHUD(screen)
	if s.paused {
		drawCenteredBanner(screen, "PAUSED - press P to continue")
	}
	if s.state.GameOver {
		s.drawGameOver(screen)
	}
}

// shakeOffset 当前震屏的随机偏移
func (s *GameScene) shakeOffset() (float64, float64) {
	st := s.state
	if st.ShakeTime <= 0 || st.ShakeMagnitude <= 0 {
		return 0, 0
	}
	m := st.ShakeMagnitude
	return (s.shake.Float64()*2 - 1) * m, (s.shake.Float64()*2 - 1) * m
}
