package scenes

import (
	"github.com/decker502/misopet/pkg/config"
	"github.com/decker502/misopet/pkg/widget"
)

// collageImage 拼贴中的一张图片
type collageImage struct {
	path string
	alt  string
	lazy bool
	// requested 是否已经请求加载（懒加载图片第一次可见时才请求）
	requested bool
}

// collageStrip 横向滚动的拼贴图片条，实现 widget.ScrollArea
type collageStrip struct {
	area   config.Rect
	images []collageImage
	offset float64
}

func newCollageStrip(area config.Rect) *collageStrip {
	return &collageStrip{area: area}
}

func (c *collageStrip) ClearImages() {
	c.images = nil
	c.offset = 0
}

func (c *collageStrip) AppendImage(path, alt string, lazy bool) {
	c.images = append(c.images, collageImage{path: path, alt: alt, lazy: lazy})
}

func (c *collageStrip) ScrollOffset() float64 { return c.offset }

// SetScrollOffset 与浏览器的 scrollLeft 一致，超出范围的值会被限制
func (c *collageStrip) SetScrollOffset(offset float64) {
	c.offset = widget.ClampScroll(offset, c.ScrollWidth(), c.ClientWidth())
}

func (c *collageStrip) ScrollWidth() float64 {
	return config.CollageContentWidth(len(c.images))
}

func (c *collageStrip) ClientWidth() float64 { return c.area.W }

// ScrollBy 相对滚动（滚轮、拖拽）
func (c *collageStrip) ScrollBy(delta float64) {
	c.SetScrollOffset(c.offset + delta)
}

// visible 返回当前可见的图片下标及其屏幕 X 坐标
func (c *collageStrip) visible() (indexes []int, xs []float64) {
	for i := range c.images {
		x := c.area.X + config.ThumbnailX(i) - c.offset
		if x+config.ThumbnailWidth < c.area.X || x > c.area.X+c.area.W {
			continue
		}
		indexes = append(indexes, i)
		xs = append(xs, x)
	}
	return indexes, xs
}

// logPanel 纵向滚动的日志面板，实现 widget.LogPanel
// 每条日志按面板宽度换行后存储
type logPanel struct {
	area      config.Rect
	wrap      func(line string) []string
	entries   int
	lines     []string
	scrollTop float64
}

func newLogPanel(area config.Rect, wrap func(string) []string) *logPanel {
	if wrap == nil {
		wrap = func(line string) []string { return []string{line} }
	}
	return &logPanel{area: area, wrap: wrap}
}

func (p *logPanel) AppendLine(line string) {
	p.entries++
	p.lines = append(p.lines, p.wrap(line)...)
}

// ScrollHeight 内容总高度（含上下内边距）
func (p *logPanel) ScrollHeight() float64 {
	return float64(len(p.lines))*config.LogLineHeight + 2*config.PanelPadding
}

// ClientHeight 可见高度
func (p *logPanel) ClientHeight() float64 { return p.area.H }

// SetScrollTop 与浏览器的 scrollTop 一致，超出范围的值会被限制
func (p *logPanel) SetScrollTop(top float64) {
	p.scrollTop = widget.ClampScroll(top, p.ScrollHeight(), p.ClientHeight())
}

// ScrollBy 相对滚动（滚轮）
func (p *logPanel) ScrollBy(delta float64) {
	p.SetScrollTop(p.scrollTop + delta)
}

// visible 返回可见行的下标及其屏幕 Y 坐标（行顶部）
func (p *logPanel) visible() (indexes []int, ys []float64) {
	for i := range p.lines {
		y := p.area.Y + config.PanelPadding + float64(i)*config.LogLineHeight - p.scrollTop
		if y+config.LogLineHeight < p.area.Y || y > p.area.Y+p.area.H {
			continue
		}
		indexes = append(indexes, i)
		ys = append(ys, y)
	}
	return indexes, ys
}
