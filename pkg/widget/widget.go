// Package widget 实现虚拟宠物小部件的核心逻辑
//
// 用户动作（喂零食、玩耍、运动、睡觉）修改宠物数值，并驱动界面反馈：
// 主图切换与自动恢复、拼贴滚动、活动日志以及声音播放。
// 所有界面操作都经过 View 接口，音频经过 AudioPlayer 接口。
//
// 单线程模型：所有方法都在游戏循环的 Update 中调用，不需要加锁。
package widget

import (
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/decker502/misopet/pkg/config"
	"github.com/decker502/misopet/pkg/pet"
)

// Action 用户动作标识
type Action string

const (
	ActionTreat    Action = config.ActionTreat
	ActionPlay     Action = config.ActionPlay
	ActionExercise Action = config.ActionExercise
	ActionSleep    Action = config.ActionSleep
)

// Label 按钮和替代文本使用的显示名，如 "Treat"
func (a Action) Label() string {
	return capitalize(string(a))
}

// delta 单个属性增量
type delta struct {
	attr   pet.Attribute
	amount float64
}

// handler 一个动作的固定执行步骤
type handler struct {
	action  Action
	deltas  []delta
	loop    bool // true: 启动循环音；false: 停止循环音并播放一次性音效
	message string
	nudge   float64
	key     string
}

// Options 创建 Widget 所需的依赖
type Options struct {
	Config    *config.PetConfig
	View      View
	Audio     AudioPlayer      // 可为 nil（静音）
	Preloader Preloader        // 可为 nil（不预取）
	Clock     func() time.Time // 可为 nil（time.Now）
}

// Widget 宠物小部件控制器，独占宠物状态
type Widget struct {
	cfg       *config.PetConfig
	view      View
	audio     AudioPlayer
	preloader Preloader

	state    *pet.PetState
	catalog  *PhotoCatalog
	photo    *MainPhotoController
	collage  *Collage
	activity *ActivityLog

	handlers map[Action]*handler
	order    []Action
	started  bool
}

// New 根据配置创建 Widget
func New(opts Options) (*Widget, error) {
	if opts.View == nil {
		return nil, fmt.Errorf("widget: view is required")
	}
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultPetConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("widget: %w", err)
	}
	audio := opts.Audio
	if audio == nil {
		audio = silentAudio{}
	}

	w := &Widget{
		cfg:       cfg,
		view:      opts.View,
		audio:     audio,
		preloader: opts.Preloader,
		state:     pet.NewPetState(cfg.Pet.Name, cfg.Pet.Weight, cfg.Pet.Happiness, cfg.Pet.Sleep),
		handlers:  make(map[Action]*handler, len(cfg.Actions)),
	}

	photos := make(map[Action]string, len(cfg.Actions))
	for _, ac := range cfg.Actions {
		h, err := newHandler(ac)
		if err != nil {
			return nil, fmt.Errorf("widget: %w", err)
		}
		w.handlers[h.action] = h
		w.order = append(w.order, h.action)
		photos[h.action] = ac.Photo
	}

	w.catalog = NewPhotoCatalog(photos, cfg.Collage)
	w.photo = NewMainPhotoController(w.view, w.catalog, w.audio, w.state, time.Duration(cfg.RevertDelayMS)*time.Millisecond)
	w.collage = NewCollage(w.view, w.catalog.CollagePhotos())
	w.activity = NewActivityLog(w.view, opts.Clock)
	return w, nil
}

func newHandler(ac config.ActionConfig) (*handler, error) {
	h := &handler{
		action:  Action(ac.Name),
		loop:    ac.Audio == config.AudioCueLoop,
		message: ac.Message,
		nudge:   ac.Nudge,
		key:     ac.Key,
	}
	// 按属性名排序，保证执行顺序稳定
	names := make([]string, 0, len(ac.Deltas))
	for name := range ac.Deltas {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		attr, err := pet.ParseAttribute(name)
		if err != nil {
			return nil, fmt.Errorf("action %q: %w", ac.Name, err)
		}
		h.deltas = append(h.deltas, delta{attr: attr, amount: ac.Deltas[name]})
	}
	return h, nil
}

// Start 一次性初始化：记录默认主图、首次渲染、渲染拼贴、预取动作图片
// 重复调用无效
func (w *Widget) Start() {
	if w.started {
		return
	}
	w.started = true

	w.photo.CaptureDefault(w.cfg.DefaultPhoto)
	w.Refresh()
	w.collage.Render()
	w.catalog.Preload(w.preloader)

	log.Printf("[Widget] Started: pet=%s actions=%v default=%s", w.state.Name, w.order, w.photo.DefaultPhoto())
}

// Perform 执行动作
//
// 固定步骤：
//  1. 停止/启动循环音
//  2. 应用增量
//  3. 规范化
//  4. 播放一次性音效（非循环动作）
//  5. 写日志
//  6. 切换主图（重新调度恢复）
//  7. 滚动拼贴
//  8. 刷新显示
//
// 返回 false 表示动作未知。
func (w *Widget) Perform(action Action) bool {
	h, ok := w.handlers[action]
	if !ok {
		log.Printf("[Widget] Unknown action ignored: %q", action)
		return false
	}

	if h.loop {
		w.audio.StartLoop()
	} else {
		w.audio.StopLoop()
	}

	for _, d := range h.deltas {
		// 属性在 New 中已校验，这里不会出错
		_ = w.state.ApplyDelta(d.attr, d.amount)
	}
	w.state.Normalize()

	if !h.loop {
		w.audio.PlayOneShot()
	}
	w.activity.Speak(h.message)
	w.photo.ShowAction(action)
	w.collage.Nudge(h.nudge)
	w.Refresh()

	log.Printf("[Widget] %s: weight=%d happiness=%d sleep=%d",
		action, w.state.Weight(), w.state.Happiness(), w.state.Sleep())
	return true
}

// Treat 喂零食
func (w *Widget) Treat() { w.Perform(ActionTreat) }

// Play 玩耍
func (w *Widget) Play() { w.Perform(ActionPlay) }

// Exercise 运动
func (w *Widget) Exercise() { w.Perform(ActionExercise) }

// Sleep 睡觉
func (w *Widget) Sleep() { w.Perform(ActionSleep) }

// Refresh 把当前名字和属性写入显示区域，不修改状态
func (w *Widget) Refresh() {
	w.view.SetDisplayedAttributes(w.state.Name, w.state.Weight(), w.state.Happiness(), w.state.Sleep())
}

// Update 推进延迟任务（主图恢复）
func (w *Widget) Update(dt time.Duration) {
	w.photo.Update(dt)
}

// Close 取消待执行的恢复并停止循环音
func (w *Widget) Close() {
	w.photo.CancelRevert()
	w.audio.StopLoop()
}

// Actions 按配置顺序返回所有动作
func (w *Widget) Actions() []Action {
	return append([]Action(nil), w.order...)
}

// ActionKey 返回动作的键盘快捷键（可能为空）
func (w *Widget) ActionKey(action Action) string {
	if h, ok := w.handlers[action]; ok {
		return h.key
	}
	return ""
}
