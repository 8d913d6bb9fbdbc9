package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/gonewx/horde/pkg/app"
	"github.com/gonewx/horde/pkg/config"
	"github.com/gonewx/horde/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	seed       = flag.Int64("seed", 0, "随机种子（0 表示每局使用当前时间）")
	startWave  = flag.Int("wave", 0, "起始波次（0 使用调优表）")
	tuningPath = flag.String("tuning", "", "调优文件路径（为空使用内置调优）")
	preset     = flag.String("preset", "", "内置调优预设名，如 hard、rush（与 --tuning 互斥）")
	listPreset = flag.Bool("list-presets", false, "列出内置调优预设后退出")
	upgrade    = flag.String("upgrade", "", "开局前购买一级永久升级：maxhp 或 speed")
	hudAddr    = flag.String("hud", "", "HUD websocket 监听地址，如 127.0.0.1:8090")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源（必须在加载调优之前）
	embedded.Init(dataFS)

	if *listPreset {
		names, err := config.ListPresets()
		if err != nil {
			log.Fatalf("读取预设失败: %v", err)
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return
	}

	tuning, err := loadTuning(*tuningPath, *preset)
	if err != nil {
		log.Fatalf("调优参数加载失败: %v", err)
	}

	gameApp, err := app.NewApp(app.Config{
		Verbose:   *verbose,
		Tuning:    tuning,
		Seed:      *seed,
		StartWave: *startWave,
		Upgrade:   *upgrade,
		HUDAddr:   *hudAddr,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	w, h := gameApp.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Horde")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	runErr := ebiten.RunGame(gameApp)
	if err := gameApp.Close(); err != nil {
		log.Printf("[Main] Warning: failed to save on exit: %v", err)
	}
	if runErr != nil {
		log.Fatal(runErr)
	}
}

// loadTuning 依次尝试磁盘上的调优文件、内置预设、内置默认调优
func loadTuning(path, preset string) (*config.Tuning, error) {
	switch {
	case path != "" && preset != "":
		return nil, fmt.Errorf("--tuning and --preset cannot be used together")
	case path != "":
		return config.LoadTuning(path)
	case preset != "":
		return config.LoadEmbeddedPreset(preset)
	default:
		return config.LoadEmbeddedTuning(config.DefaultTuningPath)
	}
}
