package scenes

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/decker502/misopet/pkg/components"
	"github.com/decker502/misopet/pkg/config"
	"github.com/decker502/misopet/pkg/ecs"
	"github.com/decker502/misopet/pkg/systems"
	"github.com/decker502/misopet/pkg/utils"
	"github.com/decker502/misopet/pkg/widget"
)

// ResourceLoader 场景需要的资源能力
// *game.ResourceManager 满足该接口
type ResourceLoader interface {
	LoadImage(path string) (*ebiten.Image, error)
	UIFont(size float64) (*text.GoTextFace, error)
}

// sceneFonts 场景使用的字体，加载失败的字体为 nil（对应文字不绘制）
type sceneFonts struct {
	title   *text.GoTextFace
	stat    *text.GoTextFace
	button  *text.GoTextFace
	caption *text.GoTextFace
	log     *text.GoTextFace
}

// PetScene 宠物小部件的主场景
//
// 职责：
//   - 实现 widget.View：主图、属性面板、拼贴图片条、活动日志
//   - 动作按钮是 ECS 实体，由 ButtonSystem 处理点击和快捷键
//   - 滚轮滚动拼贴和日志，拖拽滚动拼贴
//   - 每帧推进 Widget 的恢复计时器
type PetScene struct {
	resources ResourceLoader
	fonts     sceneFonts

	entityManager *ecs.EntityManager
	buttonSystem  *systems.ButtonSystem
	buttonRender  *systems.ButtonRenderSystem

	widget *widget.Widget

	// 主图
	mainPhoto   string
	mainAlt     string
	mainDefault bool

	// 属性面板
	name                     string
	weight, happiness, sleep int

	collage *collageStrip
	log     *logPanel

	drag utils.DragTracker
	keys []ebiten.Key

	placeholder *ebiten.Image
	missing     map[string]bool // 已记录过加载失败的图片
}

// NewPetScene 创建宠物场景
//
// 参数：
//   - res: 资源加载器（通常是 *game.ResourceManager）
//   - initialPhoto: 主图初始显示的图片，Widget 启动时把它记录为默认图
func NewPetScene(res ResourceLoader, initialPhoto string) *PetScene {
	s := &PetScene{
		resources:   res,
		mainPhoto:   initialPhoto,
		mainDefault: true,
		collage:     newCollageStrip(config.CollageArea),
		missing:     make(map[string]bool),
	}
	s.fonts = loadFonts(res)

	s.entityManager = ecs.NewEntityManager()
	s.buttonSystem = systems.NewButtonSystem(s.entityManager)
	s.buttonRender = systems.NewButtonRenderSystem(s.entityManager)

	logWidth := config.LogArea.W - 2*config.PanelPadding
	s.log = newLogPanel(config.LogArea, func(line string) []string {
		return utils.WrapText(line, s.fonts.log, logWidth)
	})

	log.Printf("[PetScene] Created (initial photo: %s)", initialPhoto)
	return s
}

func loadFonts(res ResourceLoader) sceneFonts {
	load := func(size float64) *text.GoTextFace {
		face, err := res.UIFont(size)
		if err != nil {
			log.Printf("[PetScene] Warning: font %.0fpx unavailable: %v", size, err)
			return nil
		}
		return face
	}
	return sceneFonts{
		title:   load(config.TitleFontSize),
		stat:    load(config.StatFontSize),
		button:  load(config.ButtonFontSize),
		caption: load(config.CaptionFontSize),
		log:     load(config.LogFontSize),
	}
}

// Bind 绑定 Widget：为每个动作创建按钮实体
// 按钮顺序与配置中的动作顺序一致；桌面端按钮文字带快捷键提示
func (s *PetScene) Bind(w *widget.Widget) {
	s.widget = w

	for i, action := range w.Actions() {
		action := action
		rect := config.ButtonRect(i)
		label := action.Label()

		button := &components.ButtonComponent{
			Text:      label,
			Font:      s.fonts.button,
			TextColor: config.ButtonTextColor,
			Width:     rect.W,
			Height:    rect.H,
			Enabled:   true,
			OnClick:   func() { w.Perform(action) },
		}
		hotkey := w.ActionKey(action)
		if key, ok := utils.ParseLetterKey(hotkey); ok {
			button.Hotkey = key
			button.HasHotkey = true
			if !utils.IsMobile() {
				button.Text = fmt.Sprintf("%s [%s]", label, strings.ToUpper(hotkey))
			}
		}

		id := s.entityManager.CreateEntity()
		ecs.AddComponent(s.entityManager, id, button)
		ecs.AddComponent(s.entityManager, id, &components.PositionComponent{X: rect.X, Y: rect.Y})
	}
	log.Printf("[PetScene] Bound %d action buttons", len(w.Actions()))
}

// Update 处理输入并推进 Widget 的计时器
func (s *PetScene) Update(deltaTime float64) {
	s.keys = utils.JustPressedKeys(s.keys)
	s.handleInput(utils.ReadPointer(), s.keys)

	if s.widget != nil {
		s.widget.Update(time.Duration(deltaTime * float64(time.Second)))
	}
}

// handleInput 处理一帧的输入：按钮、滚轮、拖拽
func (s *PetScene) handleInput(in utils.PointerInput, keys []ebiten.Key) {
	s.buttonSystem.Apply(in, keys)

	x, y := float64(in.X), float64(in.Y)
	if in.WheelX != 0 || in.WheelY != 0 {
		switch {
		case config.CollageArea.Contains(x, y):
			s.collage.ScrollBy(-(in.WheelX + in.WheelY) * config.WheelScrollStep)
		case config.LogArea.Contains(x, y):
			s.log.ScrollBy(-in.WheelY * config.WheelScrollStep)
		}
	}

	s.drag.Feed(in, func(px, py int) bool {
		return config.CollageArea.Contains(float64(px), float64(py))
	})
	if s.drag.IsDragging() {
		dx, _ := s.drag.Step()
		s.collage.ScrollBy(-float64(dx))
	}
}

// Close 场景关闭时取消待执行的恢复并停止循环音
func (s *PetScene) Close() {
	if s.widget != nil {
		s.widget.Close()
	}
	log.Printf("[PetScene] Closed")
}

// ===== widget.View =====

// MainPhoto 返回主图当前显示的图片路径
func (s *PetScene) MainPhoto() string {
	return s.mainPhoto
}

// SetMainPhoto 设置主图；默认图放大显示
func (s *PetScene) SetMainPhoto(path, alt string, isDefault bool) {
	s.mainPhoto = path
	s.mainAlt = alt
	s.mainDefault = isDefault
}

// SetDisplayedAttributes 更新属性面板
func (s *PetScene) SetDisplayedAttributes(name string, weight, happiness, sleep int) {
	s.name = name
	s.weight = weight
	s.happiness = happiness
	s.sleep = sleep
}

// Collage 返回拼贴图片条
func (s *PetScene) Collage() widget.ScrollArea {
	if s.collage == nil {
		return nil
	}
	return s.collage
}

// Log 返回日志面板
func (s *PetScene) Log() widget.LogPanel {
	if s.log == nil {
		return nil
	}
	return s.log
}
