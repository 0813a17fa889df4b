//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 用于构建 Android (.aar) 和 iOS (.xcframework) 包，
// ebitenmobile 加载包时会调用 init()。
//
//	# Android
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.decker.dimologo -o build/android/dimologo.aar ./mobile
//
//	# iOS (仅 macOS)
//	ebitenmobile bind -target ios -tags mobile -o build/ios/DimoLogo.xcframework ./mobile
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/decker502/dimologo/pkg/app"
	"github.com/decker502/dimologo/pkg/embedded"
)

func init() {
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{Verbose: true})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	mobile.SetGame(gameApp)
}

// Dummy 空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
