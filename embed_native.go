//go:build !js

package main

import "io/fs"

// bundledAssets 桌面端不嵌入资源，从 --assets 目录读取
func bundledAssets() fs.FS {
	return nil
}
