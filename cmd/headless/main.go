// headless 在无窗口环境中运行一局，由机器人操控
//
// 用法:
//
//	go run ./cmd/headless --seed 42 --duration 300
//	go run ./cmd/headless --hud 127.0.0.1:8090 --realtime   # 浏览器订阅 ws://127.0.0.1:8090/hud
//	go run ./cmd/headless --profile                          # 把奖励累加到本机存档
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"time"

	"github.com/gonewx/horde/pkg/config"
	"github.com/gonewx/horde/pkg/game"
	"github.com/gonewx/horde/pkg/hud"
	"github.com/gonewx/horde/pkg/systems"
	"github.com/quasilyte/gdata/v2"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	seed       = flag.Int64("seed", 1, "随机种子（0 表示使用当前时间）")
	duration   = flag.Float64("duration", 300, "最长模拟时间（秒）")
	step       = flag.Float64("dt", 1.0/60, "每帧模拟时间（秒）")
	startWave  = flag.Int("wave", 0, "起始波次（0 使用调优表）")
	tuningPath = flag.String("tuning", "", "调优文件路径（为空使用内置默认值）")
	hudAddr    = flag.String("hud", "", "HUD websocket 监听地址，如 127.0.0.1:8090")
	realtime   = flag.Bool("realtime", false, "按真实时间推进（配合 --hud 观看）")
	useProfile = flag.Bool("profile", false, "把奖励和最佳记录写入本机存档")
)

// runStats 统计一局的奖励和事件，作为 RewardSink、Presenter 和 RunObserver
type runStats struct {
	currency   int
	experience map[string]int
	cues       map[string]int
	popups     int

	ended                 bool
	finalScore, finalWave int
	finalKills            int
}

func newRunStats() *runStats {
	return &runStats{experience: map[string]int{}, cues: map[string]int{}}
}

func (r *runStats) AwardCurrency(amount int)                      { r.currency += amount }
func (r *runStats) AwardExperience(amount int, kind string)       { r.experience[kind] += amount }
func (r *runStats) EmitVisualBurst(float64, float64, string, int) {}
func (r *runStats) EmitScorePopup(float64, float64, int)          { r.popups++ }
func (r *runStats) EmitAudioCue(tag string)                       { r.cues[tag]++ }

func (r *runStats) OnRunEnded(finalScore, finalWave, totalKills int) {
	r.ended = true
	r.finalScore, r.finalWave, r.finalKills = finalScore, finalWave, totalKills
}

func main() {
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	if err := run(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "headless: %v\n", err)
		os.Exit(1)
	}
}

func run(out io.Writer) error {
	if *step <= 0 {
		return fmt.Errorf("--dt must be positive, got %v", *step)
	}

	tuning := config.DefaultTuning()
	if *tuningPath != "" {
		t, err := config.LoadTuning(*tuningPath)
		if err != nil {
			return err
		}
		tuning = t
	}

	stats := newRunStats()
	hooks := game.MultiHooks{game.HookSet{Rewards: stats, Presenter: stats, Observer: stats}}

	opts := game.DefaultRunOptions()
	var profile *game.ProfileManager
	if *useProfile {
		store, err := gdata.Open(gdata.Config{AppName: game.StorageName})
		if err != nil {
			return fmt.Errorf("failed to open profile storage: %w", err)
		}
		profile = game.NewProfileManager(store)
		opts = profile.RunOptions()
		hooks = append(hooks, game.HookSet{Rewards: profile, Observer: profile})
	}
	opts.Seed = *seed
	opts.StartWave = *startWave

	var server *hud.Server
	if *hudAddr != "" {
		server = hud.NewServer(*hudAddr)
		if err := server.Start(); err != nil {
			return fmt.Errorf("failed to start HUD server: %w", err)
		}
		defer server.Close()
		fmt.Fprintf(out, "HUD: ws://%s%s\n", server.Addr(), hud.Path)
	}

	state := game.NewSimulationState(tuning, opts)
	sim := systems.NewSimulation(state, hooks)
	bot := kiteBot{}

	frame := time.Duration(*step * float64(time.Second))
	started := time.Now()
	frames := 0
	for !state.RunEnded && (state.GameOver || state.Elapsed < *duration) {
		sim.Step(*step, bot.Input(state))
		frames++

		if server != nil {
			server.Publish(state.Snapshot())
		}
		if *realtime {
			time.Sleep(frame)
		}
	}

	printSummary(out, state, stats, frames, time.Since(started))
	if profile != nil {
		if !state.RunEnded {
			// 时间到但玩家仍存活，也记录本局
			profile.OnRunEnded(state.Score, state.Wave.Number, state.Kills)
		}
		p := profile.Profile()
		fmt.Fprintf(out, "profile: currency=%d best score=%d best wave=%d runs=%d\n", p.Currency, p.BestScore, p.BestWave, p.Runs)
	}
	return nil
}

func printSummary(out io.Writer, s *game.SimulationState, stats *runStats, frames int, wall time.Duration) {
	outcome := "survived"
	if s.GameOver {
		outcome = "died"
	}
	if stats.ended {
		outcome = fmt.Sprintf("died (reported score=%d wave=%d kills=%d)", stats.finalScore, stats.finalWave, stats.finalKills)
	}
	fmt.Fprintf(out, "result: %s after %.1fs (%d frames, %v wall)\n", outcome, s.Elapsed, frames, wall.Round(time.Millisecond))
	fmt.Fprintf(out, "score=%d wave=%d kills=%d bosses=%d bestCombo=%d\n", s.Score, s.Wave.Number, s.Kills, s.BossesDefeated, s.Combo.Best)
	fmt.Fprintf(out, "rewards: currency=%d experience=%v popups=%d\n", stats.currency, stats.experience, stats.popups)
	fmt.Fprintf(out, "entities: created=%d\n", s.Entities.Created())

	tags := make([]string, 0, len(stats.cues))
	for tag := range stats.cues {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	fmt.Fprint(out, "cues:")
	for _, tag := range tags {
		fmt.Fprintf(out, " %s=%d", tag, stats.cues[tag])
	}
	fmt.Fprintln(out)
}
