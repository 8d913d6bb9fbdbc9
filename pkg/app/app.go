// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"log"
	"time"

	"github.com/gonewx/horde/pkg/config"
	"github.com/gonewx/horde/pkg/game"
	"github.com/gonewx/horde/pkg/hud"
	"github.com/gonewx/horde/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Tuning 调优参数，为 nil 时使用内置默认值
	Tuning *config.Tuning
	// Seed 随机种子，0 表示每局使用当前时间
	Seed int64
	// StartWave 起始波次，<= 0 时使用调优表中的值
	StartWave int
	// Upgrade 启动前尝试购买的永久升级（"maxhp" 或 "speed"），为空则跳过
	Upgrade string
	// HUDAddr 非空时在该地址推送每帧快照
	HUDAddr string
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	settings     *game.SettingsManager
	profile      *game.ProfileManager
	hud          *hud.Server
	tuning       *config.Tuning
	verbose      bool

	lastUpdate time.Time
	focused    bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 存储不可用时降级为仅内存的设置和进度，不视为错误。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	tuning := cfg.Tuning
	if tuning == nil {
		tuning = config.DefaultTuning()
	}

	store, err := gdata.Open(gdata.Config{AppName: game.StorageName})
	if err != nil {
		log.Printf("[App] Warning: storage unavailable, progress will not be saved: %v", err)
		store = nil
	}
	settings := game.NewSettingsManager(store)
	profile := game.NewProfileManager(store)

	if cfg.Upgrade != "" {
		if err := profile.PurchaseUpgrade(game.UpgradeStat(cfg.Upgrade)); err != nil {
			return nil, fmt.Errorf("failed to purchase upgrade: %w", err)
		}
	}

	a := &App{
		sceneManager: game.NewSceneManager(),
		settings:     settings,
		profile:      profile,
		tuning:       tuning,
		verbose:      cfg.Verbose,
		focused:      true,
	}

	var snapshots scenes.SnapshotSink
	if cfg.HUDAddr != "" {
		a.hud = hud.NewServer(cfg.HUDAddr)
		if err := a.hud.Start(); err != nil {
			return nil, fmt.Errorf("failed to start HUD server: %w", err)
		}
		snapshots = a.hud
		log.Printf("[App] HUD broadcasting on ws://%s%s", a.hud.Addr(), hud.Path)
	}

	// 初始化音频上下文
	cues := NewCuePlayer(audio.NewContext(SampleRate), settings)

	a.sceneManager.SetSceneFactory(func() game.Scene {
		opts := profile.RunOptions()
		opts.Seed = cfg.Seed
		opts.StartWave = cfg.StartWave
		return scenes.NewGameScene(scenes.GameSceneConfig{
			Tuning:    tuning,
			Options:   opts,
			Rewards:   profile,
			Toggles:   settings,
			Observer:  profile,
			Audio:     cues,
			Snapshots: snapshots,
		})
	})
	a.sceneManager.Restart()

	if settings.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	p := profile.Profile()
	log.Printf("[App] Profile: currency=%d best score=%d best wave=%d runs=%d", p.Currency, p.BestScore, p.BestWave, p.Runs)
	return a, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			w, h := a.Layout(0, 0)
			ebiten.SetWindowSize(w, h)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	// 失焦时不推进模拟
	if !a.updateFocus(ebiten.IsFocused()) {
		return nil
	}

	a.sceneManager.Update(a.frameDelta(time.Now()))
	return nil
}

// updateFocus 记录焦点变化，返回本帧是否推进模拟
// 重新获得焦点时通知场景跳过恢复后的第一帧
func (a *App) updateFocus(focused bool) bool {
	if focused == a.focused {
		return focused
	}
	a.focused = focused
	if focused {
		log.Printf("[App] Window focused, resuming")
		a.sceneManager.NotifyResumed()
	} else {
		log.Printf("[App] Window lost focus, pausing")
	}
	a.lastUpdate = time.Time{}
	return focused
}

// frameDelta 返回距上一帧的墙钟时间（秒）
// 第一帧按一个 tick 计算，过大的值由模拟内核截断
func (a *App) frameDelta(now time.Time) float64 {
	last := a.lastUpdate
	a.lastUpdate = now
	if last.IsZero() {
		return 1.0 / float64(ebiten.TPS())
	}
	return now.Sub(last).Seconds()
}

func (a *App) toggleFullscreen() {
	fullscreen := !ebiten.IsFullscreen()
	ebiten.SetFullscreen(fullscreen)
	if !fullscreen {
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
	}

	a.settings.SetFullscreen(fullscreen)
	if err := a.settings.Save(); err != nil {
		log.Printf("[App] Warning: failed to save settings: %v", err)
	}
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸，即场地尺寸
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(a.tuning.Arena.Width), int(a.tuning.Arena.Height)
}

// Profile 返回跨局进度
func (a *App) Profile() *game.ProfileManager {
	return a.profile
}

// Close 保存设置和进度并关闭 HUD 推送
// 游戏窗口关闭后调用
func (a *App) Close() error {
	var errs []error
	if err := a.settings.Save(); err != nil {
		errs = append(errs, err)
	}
	if err := a.profile.Save(); err != nil {
		errs = append(errs, err)
	}
	if a.hud != nil {
		if err := a.hud.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
