//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包。
// 使用 ebitenmobile 工具构建时会自动调用 init() 函数。
//
// 此文件仅在使用 -tags mobile 构建时编译，构建前需要把 data/tuning.yaml
// 复制到本目录的 data/ 下：
//
//	mkdir -p mobile/data && cp data/tuning.yaml mobile/data/
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.gonewx.horde -o build/android/horde.aar -v ./mobile
//	ebitenmobile bind -target ios -tags mobile -o build/ios/Horde.xcframework -v ./mobile
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/gonewx/horde/pkg/app"
	"github.com/gonewx/horde/pkg/config"
	"github.com/gonewx/horde/pkg/embedded"
)

func init() {
	// dataFS 在 embed.go 中声明
	embedded.Init(dataFS)

	tuning, err := config.LoadEmbeddedTuning(config.DefaultTuningPath)
	if err != nil {
		log.Fatalf("调优参数加载失败: %v", err)
	}

	gameApp, err := app.NewApp(app.Config{Verbose: true, Tuning: tuning})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	// 注册游戏到 ebitenmobile
	mobile.SetGame(gameApp)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
