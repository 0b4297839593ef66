package widget

// View 小部件需要的界面能力集合
//
// 核心逻辑只通过该接口操作界面，因此可以在没有图形环境的情况下测试。
// Ebitengine 实现见 scenes.PetScene。
type View interface {
	// MainPhoto 返回主图当前显示的图片路径
	MainPhoto() string
	// SetMainPhoto 设置主图、替代文本以及是否处于默认（放大）状态
	SetMainPhoto(path, alt string, isDefault bool)
	// SetDisplayedAttributes 将宠物属性写入显示区域
	SetDisplayedAttributes(name string, weight, happiness, sleep int)
	// Collage 返回拼贴滚动条，不存在时返回 nil
	Collage() ScrollArea
	// Log 返回日志面板，不存在时返回 nil
	Log() LogPanel
}

// ScrollArea 可横向滚动的图片条
type ScrollArea interface {
	ClearImages()
	AppendImage(path, alt string, lazy bool)

	ScrollOffset() float64
	SetScrollOffset(offset float64)
	// ScrollWidth 内容总宽度
	ScrollWidth() float64
	// ClientWidth 可见区域宽度
	ClientWidth() float64
}

// LogPanel 可纵向滚动的日志面板
type LogPanel interface {
	AppendLine(line string)
	// ScrollHeight 内容总高度
	ScrollHeight() float64
	SetScrollTop(top float64)
}

// Preloader 预取图片资源，失败时静默
type Preloader interface {
	Preload(path string)
}
