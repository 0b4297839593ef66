// Package utils 提供输入、文本排版和平台检测等通用工具函数
package utils

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerInput 一帧内的指针输入快照
// 鼠标和触摸统一为一个指针，触摸优先
type PointerInput struct {
	X, Y int
	// Pressed 指针当前是否按下
	Pressed bool
	// JustReleased 指针是否在本帧释放
	JustReleased bool
	// WheelX, WheelY 鼠标滚轮偏移
	WheelX, WheelY float64
}

// 保存最后一次触摸位置（触摸释放时已经拿不到位置）
var lastTouchX, lastTouchY int

// ReadPointer 读取当前帧的指针输入，每帧调用一次
func ReadPointer() PointerInput {
	var in PointerInput
	in.WheelX, in.WheelY = ebiten.Wheel()

	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		lastTouchX, lastTouchY = ebiten.TouchPosition(touchIDs[0])
		in.X, in.Y = lastTouchX, lastTouchY
		in.Pressed = true
		return in
	}
	if len(inpututil.AppendJustReleasedTouchIDs(nil)) > 0 {
		in.X, in.Y = lastTouchX, lastTouchY
		in.JustReleased = true
		return in
	}

	in.X, in.Y = ebiten.CursorPosition()
	in.Pressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	in.JustReleased = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	return in
}

// letterKeys A-Z 对应的按键
var letterKeys = [...]ebiten.Key{
	ebiten.KeyA, ebiten.KeyB, ebiten.KeyC, ebiten.KeyD, ebiten.KeyE, ebiten.KeyF, ebiten.KeyG,
	ebiten.KeyH, ebiten.KeyI, ebiten.KeyJ, ebiten.KeyK, ebiten.KeyL, ebiten.KeyM, ebiten.KeyN,
	ebiten.KeyO, ebiten.KeyP, ebiten.KeyQ, ebiten.KeyR, ebiten.KeyS, ebiten.KeyT, ebiten.KeyU,
	ebiten.KeyV, ebiten.KeyW, ebiten.KeyX, ebiten.KeyY, ebiten.KeyZ,
}

// ParseLetterKey 把单个字母（不区分大小写）转换为按键
func ParseLetterKey(s string) (ebiten.Key, bool) {
	if len(s) != 1 {
		return 0, false
	}
	c := strings.ToUpper(s)[0]
	if c < 'A' || c > 'Z' {
		return 0, false
	}
	return letterKeys[c-'A'], true
}

// JustPressedKeys 返回本帧刚按下的按键
func JustPressedKeys(buf []ebiten.Key) []ebiten.Key {
	return inpututil.AppendJustPressedKeys(buf[:0])
}

// ============================================================================
// 拖拽跟踪 - 用于拖动拼贴图片条
// ============================================================================

// DragState 拖拽状态
type DragState int

const (
	// DragStateNone 无拖拽
	DragStateNone DragState = iota
	// DragStateStarted 拖拽开始（刚按下）
	DragStateStarted
	// DragStateDragging 拖拽中（按住移动）
	DragStateDragging
	// DragStateEnded 拖拽结束（释放）
	DragStateEnded
)

// DragTracker 跟踪指针拖拽，只在按下点位于指定区域内时开始
type DragTracker struct {
	state        DragState
	lastX, lastY int
	// 本帧相对上一帧的位移
	stepX, stepY int
}

// Feed 输入一帧的指针状态
// inRegion 判断按下点是否属于被拖拽的区域，为 nil 时任何位置都可以开始拖拽
func (d *DragTracker) Feed(in PointerInput, inRegion func(x, y int) bool) {
	d.stepX, d.stepY = 0, 0

	switch d.state {
	case DragStateNone, DragStateEnded:
		d.state = DragStateNone
		if in.Pressed && (inRegion == nil || inRegion(in.X, in.Y)) {
			d.state = DragStateStarted
			d.lastX, d.lastY = in.X, in.Y
		}

	case DragStateStarted, DragStateDragging:
		if !in.Pressed {
			d.state = DragStateEnded
			return
		}
		d.state = DragStateDragging
		d.stepX, d.stepY = in.X-d.lastX, in.Y-d.lastY
		d.lastX, d.lastY = in.X, in.Y
	}
}

// State 当前拖拽状态
func (d *DragTracker) State() DragState {
	return d.state
}

// IsDragging 是否正在拖拽
func (d *DragTracker) IsDragging() bool {
	return d.state == DragStateDragging
}

// Step 本帧位移
func (d *DragTracker) Step() (dx, dy int) {
	return d.stepX, d.stepY
}
