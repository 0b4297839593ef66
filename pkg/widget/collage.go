package widget

import "strconv"

// Collage 拼贴图片条：启动时渲染一次，之后只做相对滚动
type Collage struct {
	view   View
	photos []string
}

// NewCollage 创建拼贴控制器
func NewCollage(view View, photos []string) *Collage {
	return &Collage{view: view, photos: photos}
}

// Render 清空拼贴并按顺序追加所有图片
// 拼贴区域不存在时什么也不做
func (c *Collage) Render() {
	area := c.view.Collage()
	if area == nil {
		return
	}
	area.ClearImages()
	for i, src := range c.photos {
		area.AppendImage(src, "Pet photo "+strconv.Itoa(i+1), true)
	}
}

// Nudge 横向滚动 delta 像素（正数向右），结果限制在 [0, scrollWidth-clientWidth]
// 拼贴区域不存在时什么也不做
func (c *Collage) Nudge(delta float64) {
	area := c.view.Collage()
	if area == nil {
		return
	}
	area.SetScrollOffset(ClampScroll(area.ScrollOffset()+delta, area.ScrollWidth(), area.ClientWidth()))
}

// ClampScroll 将滚动位置限制在有效范围内
// 内容没有溢出时范围为 [0, 0]
func ClampScroll(target, scrollWidth, clientWidth float64) float64 {
	max := scrollWidth - clientWidth
	if target > max {
		target = max
	}
	if target < 0 {
		target = 0
	}
	return target
}
