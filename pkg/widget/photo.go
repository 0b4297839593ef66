package widget

import (
	"log"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/decker502/misopet/pkg/pet"
)

// DefaultRevertDelay 动作图片显示时长
const DefaultRevertDelay = 2000 * time.Millisecond

// PhotoCatalog 动作 -> 图片路径映射，以及拼贴图片列表
// 创建后不可修改
type PhotoCatalog struct {
	actions map[Action]string
	collage []string
}

// NewPhotoCatalog 创建图片目录（复制输入，调用方后续修改不影响目录）
func NewPhotoCatalog(actionPhotos map[Action]string, collage []string) *PhotoCatalog {
	c := &PhotoCatalog{
		actions: make(map[Action]string, len(actionPhotos)),
		collage: append([]string(nil), collage...),
	}
	for a, p := range actionPhotos {
		c.actions[a] = p
	}
	return c
}

// ActionPhoto 查找动作对应的图片
func (c *PhotoCatalog) ActionPhoto(action Action) (string, bool) {
	p, ok := c.actions[action]
	return p, ok
}

// CollagePhotos 返回拼贴图片列表的副本
func (c *PhotoCatalog) CollagePhotos() []string {
	return append([]string(nil), c.collage...)
}

// Preload 预取所有动作图片，避免首次切换时闪烁
func (c *PhotoCatalog) Preload(p Preloader) {
	if p == nil {
		return
	}
	for _, path := range c.actions {
		p.Preload(path)
	}
}

// MainPhotoController 主图控制器
//
// 状态：
//   - Default: 显示默认图（放大显示）
//   - ActionDisplay: 显示动作图，等待恢复
//
// 每次 ShowAction 都会重新调度恢复任务，旧任务被取消，
// 因此快速连续点击只会在最后一次点击之后恢复一次。
type MainPhotoController struct {
	view    View
	catalog *PhotoCatalog
	audio   AudioPlayer
	state   *pet.PetState
	timer   DebounceTimer
	delay   time.Duration

	defaultPhoto string
	captured     bool
	reverts      int // 已执行的恢复次数
}

// NewMainPhotoController 创建主图控制器
// delay <= 0 时使用 DefaultRevertDelay
func NewMainPhotoController(view View, catalog *PhotoCatalog, audio AudioPlayer, state *pet.PetState, delay time.Duration) *MainPhotoController {
	if delay <= 0 {
		delay = DefaultRevertDelay
	}
	if audio == nil {
		audio = silentAudio{}
	}
	return &MainPhotoController{
		view:    view,
		catalog: catalog,
		audio:   audio,
		state:   state,
		delay:   delay,
	}
}

// CaptureDefault 记录启动时主图显示的图片作为默认图，只生效一次
// 主图为空时使用 fallback
func (c *MainPhotoController) CaptureDefault(fallback string) {
	if c.captured {
		return
	}
	c.defaultPhoto = c.view.MainPhoto()
	if c.defaultPhoto == "" {
		c.defaultPhoto = fallback
	}
	c.captured = true
	c.view.SetMainPhoto(c.defaultPhoto, c.altText("Default"), true)
}

// ShowAction 切换到动作图片并重新调度恢复
// 未知动作直接忽略（不改变状态，不调度）
func (c *MainPhotoController) ShowAction(action Action) bool {
	src, ok := c.catalog.ActionPhoto(action)
	if !ok {
		return false
	}
	c.view.SetMainPhoto(src, c.altText(action.Label()), false)
	if c.timer.Schedule(c.delay, c.revert) {
		log.Printf("[MainPhoto] Pending revert cancelled by %s", action)
	}
	return true
}

// revert 恢复默认图，同时停止循环音
func (c *MainPhotoController) revert() {
	c.audio.StopLoop()
	c.reverts++
	log.Printf("[MainPhoto] Reverted to default (#%d)", c.reverts)
	c.view.SetMainPhoto(c.defaultPhoto, c.altText("Default"), true)
}

// CancelRevert 取消待执行的恢复，主图保持当前图片
func (c *MainPhotoController) CancelRevert() bool {
	return c.timer.Cancel()
}

// Update 推进恢复计时器
func (c *MainPhotoController) Update(dt time.Duration) {
	c.timer.Advance(dt)
}

// DefaultPhoto 返回记录的默认图路径
func (c *MainPhotoController) DefaultPhoto() string {
	return c.defaultPhoto
}

func (c *MainPhotoController) altText(suffix string) string {
	return c.state.Name + " - " + suffix
}

// capitalize 首字母大写
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
