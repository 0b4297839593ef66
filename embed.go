// embed.go - 配置数据嵌入声明
// 必须放在项目根目录（与 data/ 同级）
// 因为 //go:embed 指令只能嵌入当前包目录及其子目录的文件
package main

import "embed"

// 图片和声音体积较大，桌面端从 --assets 目录读取；浏览器构建见 embed_js.go
//
//go:embed data/pet.yaml
var dataFS embed.FS
