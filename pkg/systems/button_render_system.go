package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/misopet/pkg/components"
	"github.com/decker502/misopet/pkg/ecs"
)

// 按钮配色
var (
	buttonFillNormal   = color.RGBA{R: 0xf4, G: 0xa2, B: 0x61, A: 0xff}
	buttonFillHovered  = color.RGBA{R: 0xf7, G: 0xb9, B: 0x83, A: 0xff}
	buttonFillClicked  = color.RGBA{R: 0xd9, G: 0x83, B: 0x42, A: 0xff}
	buttonFillDisabled = color.RGBA{R: 0xb0, G: 0xb0, B: 0xb0, A: 0xff}
	buttonBorder       = color.RGBA{R: 0x6b, G: 0x3e, B: 0x1f, A: 0xff}
)

// ButtonRenderSystem 按钮渲染系统
//
// 职责：
//   - 按状态选择填充色绘制按钮背景和边框
//   - 渲染按钮文字（自动居中，带阴影）
type ButtonRenderSystem struct {
	entityManager *ecs.EntityManager
}

// NewButtonRenderSystem 创建按钮渲染系统
func NewButtonRenderSystem(em *ecs.EntityManager) *ButtonRenderSystem {
	return &ButtonRenderSystem{
		entityManager: em,
	}
}

// Draw 渲染所有按钮
// 查询所有拥有 ButtonComponent 和 PositionComponent 的实体并渲染
func (s *ButtonRenderSystem) Draw(screen *ebiten.Image) {
	entities := ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](s.entityManager)
	for _, entityID := range entities {
		s.DrawButton(screen, entityID)
	}
}

// DrawButton 渲染单个按钮实体
func (s *ButtonRenderSystem) DrawButton(screen *ebiten.Image, entityID ecs.EntityID) {
	button, ok := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)
	if !ok {
		return
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)
	if !ok {
		return
	}

	s.drawButtonBackground(screen, button, pos.X, pos.Y)
	s.drawButtonText(screen, button, pos.X, pos.Y)
}

// buttonFill 按状态选择填充色
func buttonFill(state components.UIState) color.RGBA {
	switch state {
	case components.UIHovered:
		return buttonFillHovered
	case components.UIClicked:
		return buttonFillClicked
	case components.UIDisabled:
		return buttonFillDisabled
	default:
		return buttonFillNormal
	}
}

// drawButtonBackground 渲染按钮背景
func (s *ButtonRenderSystem) drawButtonBackground(screen *ebiten.Image, button *components.ButtonComponent, x, y float64) {
	if button.Width <= 0 || button.Height <= 0 {
		return
	}
	// 按下时整体下移 1 像素
	if button.State == components.UIClicked {
		y++
	}
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(button.Width), float32(button.Height), buttonFill(button.State), true)
	vector.StrokeRect(screen, float32(x), float32(y), float32(button.Width), float32(button.Height), 2, buttonBorder, true)
}

// drawButtonText 渲染按钮文字（自动居中，带阴影效果）
func (s *ButtonRenderSystem) drawButtonText(screen *ebiten.Image, button *components.ButtonComponent, x, y float64) {
	if button.Text == "" || button.Font == nil {
		return
	}

	centerX := x + button.Width/2
	centerY := y + button.Height/2
	if button.State == components.UIClicked {
		centerY++
	}

	// 阴影
	shadowOp := &text.DrawOptions{}
	shadowOp.LayoutOptions.PrimaryAlign = text.AlignCenter
	shadowOp.LayoutOptions.SecondaryAlign = text.AlignCenter
	shadowOp.GeoM.Translate(centerX+1, centerY+1)
	shadowOp.ColorScale.ScaleWithColor(color.RGBA{0, 0, 0, 120})
	text.Draw(screen, button.Text, button.Font, shadowOp)

	op := &text.DrawOptions{}
	op.LayoutOptions.PrimaryAlign = text.AlignCenter
	op.LayoutOptions.SecondaryAlign = text.AlignCenter
	op.GeoM.Translate(centerX, centerY)
	op.ColorScale.ScaleWithColor(color.RGBA{
		R: button.TextColor[0],
		G: button.TextColor[1],
		B: button.TextColor[2],
		A: button.TextColor[3],
	})
	text.Draw(screen, button.Text, button.Font, op)
}
