//go:build js

package main

import (
	"embed"
	"io/fs"
	"log"
)

// 浏览器里没有本地文件系统，图片和声音随 wasm 一起嵌入
//
//go:embed all:assets
var assetsFS embed.FS

// bundledAssets 返回嵌入的 assets/ 目录，路径形如 "images/Miso.jpg"
func bundledAssets() fs.FS {
	sub, err := fs.Sub(assetsFS, "assets")
	if err != nil {
		log.Printf("[main] Warning: embedded assets unavailable: %v", err)
		return nil
	}
	return sub
}
