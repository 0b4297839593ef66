package config

import "image/color"

// UI 外观相关的常量配置：字号和配色

const (
	// TitleFontSize 宠物名字字号
	TitleFontSize = 28.0
	// StatFontSize 属性面板字号
	StatFontSize = 18.0
	// ButtonFontSize 动作按钮字号
	ButtonFontSize = 18.0
	// CaptionFontSize 主图标题字号
	CaptionFontSize = 16.0
	// LogFontSize 活动日志字号
	LogFontSize = 14.0
)

var (
	// BackgroundColor 画面背景
	BackgroundColor = color.RGBA{R: 0xfd, G: 0xf6, B: 0xec, A: 0xff}
	// PanelColor 面板背景
	PanelColor = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	// PanelBorderColor 面板边框
	PanelBorderColor = color.RGBA{R: 0xe0, G: 0xc9, B: 0xa6, A: 0xff}
	// TextColor 正文文字
	TextColor = color.RGBA{R: 0x3b, G: 0x2a, B: 0x1a, A: 0xff}
	// MutedTextColor 次要文字（标题、时间戳）
	MutedTextColor = color.RGBA{R: 0x8a, G: 0x76, B: 0x60, A: 0xff}
	// PlaceholderColor 图片缺失时的占位色
	PlaceholderColor = color.RGBA{R: 0xd8, G: 0xcf, B: 0xc4, A: 0xff}
	// ButtonTextColor 按钮文字颜色（RGBA）
	ButtonTextColor = [4]uint8{0xff, 0xff, 0xff, 0xff}
)
