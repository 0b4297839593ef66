// Package systems 实现小部件界面的 ECS 系统
package systems

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/misopet/pkg/components"
	"github.com/decker502/misopet/pkg/ecs"
	"github.com/decker502/misopet/pkg/utils"
)

// ButtonSystem 按钮交互系统
// 负责处理按钮的指针悬停、点击以及键盘快捷键
//
// 职责：
//   - 检测指针悬停（更新按钮状态为 UIHovered）
//   - 在同一个按钮上按下并释放指针时触发 OnClick 回调
//   - 按下快捷键时触发 OnClick 回调
//   - 根据 Enabled 状态决定是否响应交互
//
// 输入由调用者每帧读取一次后传入，同一帧的滚轮和拖拽也使用这份输入
type ButtonSystem struct {
	entityManager *ecs.EntityManager

	pressed    ecs.EntityID // 本次按下开始时指针下的按钮，0 表示没有
	wasPressed bool         // 上一帧指针是否按下
}

// NewButtonSystem 创建按钮交互系统
func NewButtonSystem(em *ecs.EntityManager) *ButtonSystem {
	return &ButtonSystem{
		entityManager: em,
	}
}

// Apply 根据给定的输入更新按钮状态并触发回调
// 返回本帧触发的回调次数
//
// 指针点击要求按下和释放发生在同一个按钮上：
// 从别处按下（如拖动拼贴）后在按钮上释放不会触发。
func (s *ButtonSystem) Apply(in utils.PointerInput, justPressed []ebiten.Key) int {
	fired := 0
	pressStarted := in.Pressed && !s.wasPressed
	if pressStarted {
		s.pressed = 0
	}
	entities := ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](s.entityManager)

	for _, entityID := range entities {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)

		// 禁用状态不响应交互
		if !button.Enabled {
			button.State = components.UIDisabled
			continue
		}

		if button.HasHotkey && containsKey(justPressed, button.Hotkey) {
			log.Printf("[ButtonSystem] Hotkey %v -> %s", button.Hotkey, button.Text)
			fired += click(button)
		}

		isHovered := isPointInButton(float64(in.X), float64(in.Y), pos.X, pos.Y, button.Width, button.Height)
		if pressStarted && isHovered {
			s.pressed = entityID
		}
		armed := s.pressed == entityID

		switch {
		case !isHovered:
			button.State = components.UINormal
		case in.Pressed && armed:
			button.State = components.UIClicked
		case in.JustReleased && armed:
			// 释放瞬间触发回调，之后恢复悬停状态
			fired += click(button)
			button.State = components.UIHovered
		default:
			button.State = components.UIHovered
		}
	}

	if !in.Pressed {
		s.pressed = 0
	}
	s.wasPressed = in.Pressed
	return fired
}

func click(button *components.ButtonComponent) int {
	if button.OnClick == nil {
		return 0
	}
	button.OnClick()
	return 1
}

func containsKey(keys []ebiten.Key, k ebiten.Key) bool {
	for _, key := range keys {
		if key == k {
			return true
		}
	}
	return false
}

// isPointInButton 检测指针是否在按钮范围内
func isPointInButton(x, y, buttonX, buttonY, buttonWidth, buttonHeight float64) bool {
	return x >= buttonX &&
		x <= buttonX+buttonWidth &&
		y >= buttonY &&
		y <= buttonY+buttonHeight
}
