//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包。
// 使用 ebitenmobile 工具构建时会自动调用 init() 函数。
//
// 此文件仅在使用 -tags mobile 构建时编译。
//
//	# Android
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.decker.misopet -o build/android/misopet.aar -v ./mobile
//
//	# iOS (仅 macOS)
//	ebitenmobile bind -target ios -tags mobile -o build/ios/Misopet.xcframework -v ./mobile
package mobile

import (
	"io/fs"
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/decker502/misopet/pkg/app"
	"github.com/decker502/misopet/pkg/embedded"
)

func init() {
	// assetsFS 和 dataFS 在 embed.go 中声明
	embedded.Init(dataFS)

	assets, err := fs.Sub(assetsFS, "assets")
	if err != nil {
		log.Fatalf("嵌入资源无效: %v", err)
	}

	petApp, err := app.NewApp(app.Config{
		Verbose: true,
		Assets:  assets,
	})
	if err != nil {
		log.Fatalf("小部件初始化失败: %v", err)
	}

	// 注册到 ebitenmobile
	mobile.SetGame(petApp)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
