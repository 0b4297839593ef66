package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// ButtonComponent 动作按钮组件（ECS 架构）
// 包含按钮的所有数据：文字、快捷键、尺寸、状态、回调
//
// 与 PositionComponent 配合使用：
//   - ButtonSystem 处理指针和快捷键
//   - ButtonRenderSystem 绘制背景和居中文字
type ButtonComponent struct {
	// Text 按钮上显示的文字，如 "Treat"
	Text string
	// Font 文字字体
	Font *text.GoTextFace
	// TextColor 文字颜色（RGBA）
	TextColor [4]uint8

	// Hotkey 键盘快捷键，HasHotkey 为 false 时无快捷键
	Hotkey    ebiten.Key
	HasHotkey bool

	// Width, Height 按钮尺寸（像素）
	Width  float64
	Height float64

	// State 当前交互状态（Normal/Hover/Clicked/Disabled）
	State UIState
	// Enabled 是否启用（禁用时不响应点击和快捷键）
	Enabled bool

	// OnClick 点击或按下快捷键时的回调
	OnClick func()
}
