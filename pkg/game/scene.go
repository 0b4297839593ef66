package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a screen of the widget (currently only the pet scene).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Closer 是一个可选接口，场景在程序退出时收到通知
//
// 实现此接口的场景会在以下时机被调用 Close()：
//   - 窗口关闭
//   - 用户通过 OS 命令关闭程序
type Closer interface {
	Close()
}
