package config

// 布局配置常量
// 本文件定义了小部件画面中各区域的位置和尺寸
// 所有坐标都是逻辑屏幕坐标（左上角为原点），与窗口实际大小无关

// Rect 屏幕上的矩形区域
type Rect struct {
	X, Y, W, H float64
}

// Contains 判断点是否在区域内（含边界）
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// Overlaps 判断两个区域是否相交（边界相接不算）
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W && r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

const (
	// ScreenWidth, ScreenHeight 逻辑屏幕尺寸
	ScreenWidth  = 800
	ScreenHeight = 600

	// DefaultPhotoScale 主图处于默认状态时的放大倍数
	DefaultPhotoScale = 1.15

	// ButtonColumns, ButtonRows 按钮区域的列数和行数（按钮按行排列）
	ButtonColumns = 2
	ButtonRows    = 2
	// MaxActionButtons 按钮区域最多容纳的动作数
	MaxActionButtons = ButtonColumns * ButtonRows
	// ButtonWidth, ButtonHeight 动作按钮尺寸
	ButtonWidth  = 170.0
	ButtonHeight = 44.0
	// ButtonGap 按钮之间的间距
	ButtonGap = 20.0

	// ThumbnailWidth, ThumbnailHeight 拼贴缩略图尺寸
	ThumbnailWidth  = 130.0
	ThumbnailHeight = 96.0
	// ThumbnailGap 缩略图之间的间距
	ThumbnailGap = 10.0

	// LogLineHeight 日志每行高度
	LogLineHeight = 20.0
	// PanelPadding 面板内边距
	PanelPadding = 8.0

	// WheelScrollStep 鼠标滚轮每格滚动的像素
	WheelScrollStep = 40.0
)

var (
	// PhotoArea 主图区域
	PhotoArea = Rect{X: 20, Y: 20, W: 360, H: 300}
	// CaptionArea 主图替代文本（标题）
	CaptionArea = Rect{X: 20, Y: 330, W: 360, H: 28}
	// StatsArea 名字与属性面板
	StatsArea = Rect{X: 420, Y: 20, W: 360, H: 130}
	// ButtonArea 动作按钮区域
	ButtonArea = Rect{X: 420, Y: 170, W: 360, H: 108}
	// LogArea 活动日志面板
	LogArea = Rect{X: 420, Y: 296, W: 360, H: 150}
	// CollageArea 拼贴图片条
	CollageArea = Rect{X: 20, Y: 466, W: 760, H: 116}
)

// ButtonRect 计算第 index 个动作按钮的位置
// 按钮在 ButtonArea 内从左到右、从上到下排列
func ButtonRect(index int) Rect {
	if index < 0 {
		index = 0
	}
	col := index % ButtonColumns
	row := index / ButtonColumns
	return Rect{
		X: ButtonArea.X + float64(col)*(ButtonWidth+ButtonGap),
		Y: ButtonArea.Y + float64(row)*(ButtonHeight+ButtonGap),
		W: ButtonWidth,
		H: ButtonHeight,
	}
}

// ButtonFits 第 index 个按钮是否完整落在 ButtonArea 内且不压住其他区域
func ButtonFits(index int) bool {
	if index < 0 {
		return false
	}
	r := ButtonRect(index)
	if !ButtonArea.Contains(r.X, r.Y) || !ButtonArea.Contains(r.X+r.W, r.Y+r.H) {
		return false
	}
	for _, other := range []Rect{PhotoArea, CaptionArea, StatsArea, LogArea, CollageArea} {
		if r.Overlaps(other) {
			return false
		}
	}
	return true
}

// ThumbnailX 第 index 张缩略图相对拼贴内容起点的 X 坐标
func ThumbnailX(index int) float64 {
	return PanelPadding + float64(index)*(ThumbnailWidth+ThumbnailGap)
}

// CollageContentWidth n 张缩略图的内容总宽度
func CollageContentWidth(n int) float64 {
	if n <= 0 {
		return 0
	}
	return ThumbnailX(n-1) + ThumbnailWidth + PanelPadding
}
