package scenes

import (
	"image"
	"image/color"
	"log"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/misopet/pkg/config"
)

// Draw 绘制整个场景
// 绘制顺序：背景 → 主图 → 标题 → 属性面板 → 按钮 → 日志 → 拼贴
func (s *PetScene) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)

	s.drawMainPhoto(screen)
	s.drawCaption(screen)
	s.drawStats(screen)
	s.buttonRender.Draw(screen)
	s.drawLog(screen)
	s.drawCollage(screen)
}

// drawMainPhoto 绘制主图，默认图放大 DefaultPhotoScale 倍（超出部分被裁剪）
func (s *PetScene) drawMainPhoto(screen *ebiten.Image) {
	area := config.PhotoArea
	drawPanel(screen, area)

	scale := 1.0
	if s.mainDefault {
		scale = config.DefaultPhotoScale
	}
	img, ok := s.image(s.mainPhoto)
	drawFitted(screen, img, area, scale)
	if !ok {
		drawCentered(screen, s.mainAlt, s.fonts.caption, area, config.MutedTextColor)
	}
}

// drawCaption 主图的替代文本
func (s *PetScene) drawCaption(screen *ebiten.Image) {
	drawCentered(screen, s.mainAlt, s.fonts.caption, config.CaptionArea, config.MutedTextColor)
}

// drawStats 名字和三个属性
func (s *PetScene) drawStats(screen *ebiten.Image) {
	area := config.StatsArea
	drawPanel(screen, area)

	x := area.X + 2*config.PanelPadding
	drawText(screen, s.name, s.fonts.title, x, area.Y+config.PanelPadding, text.AlignStart, config.TextColor)

	rows := []struct {
		label string
		value int
	}{
		{"Weight", s.weight},
		{"Happiness", s.happiness},
		{"Sleep", s.sleep},
	}
	y := area.Y + config.PanelPadding + config.TitleFontSize + 12
	right := area.X + area.W - 2*config.PanelPadding
	for _, row := range rows {
		drawText(screen, row.label, s.fonts.stat, x, y, text.AlignStart, config.MutedTextColor)
		drawText(screen, strconv.Itoa(row.value), s.fonts.stat, right, y, text.AlignEnd, config.TextColor)
		y += config.StatFontSize + 8
	}
}

// drawLog 日志面板，只绘制可见行
func (s *PetScene) drawLog(screen *ebiten.Image) {
	area := config.LogArea
	drawPanel(screen, area)

	clip := subImage(screen, area)
	x := area.X + config.PanelPadding
	indexes, ys := s.log.visible()
	for i, idx := range indexes {
		drawText(clip, s.log.lines[idx], s.fonts.log, x, ys[i]+(config.LogLineHeight-config.LogFontSize)/2, text.AlignStart, config.TextColor)
	}
}

// drawCollage 拼贴图片条，懒加载图片在第一次可见时才加载
func (s *PetScene) drawCollage(screen *ebiten.Image) {
	area := config.CollageArea
	drawPanel(screen, area)

	clip := subImage(screen, area)
	indexes, xs := s.collage.visible()
	for i, idx := range indexes {
		entry := &s.collage.images[idx]
		if !entry.requested {
			entry.requested = true
			if entry.lazy {
				log.Printf("[PetScene] Lazy loading %s", entry.path)
			}
		}
		thumb := config.Rect{X: xs[i], Y: area.Y + (area.H-config.ThumbnailHeight)/2, W: config.ThumbnailWidth, H: config.ThumbnailHeight}
		img, ok := s.image(entry.path)
		drawFitted(clip, img, thumb, 1)
		if !ok {
			drawCentered(clip, entry.alt, s.fonts.log, thumb, config.MutedTextColor)
		}
	}
}

// image 返回已加载的图片；加载失败时返回占位图和 false
func (s *PetScene) image(path string) (*ebiten.Image, bool) {
	if path != "" {
		img, err := s.resources.LoadImage(path)
		if err == nil {
			return img, true
		}
		if !s.missing[path] {
			s.missing[path] = true
			log.Printf("[PetScene] Warning: using placeholder for %s: %v", path, err)
		}
	}
	if s.placeholder == nil {
		s.placeholder = ebiten.NewImage(4, 3)
		s.placeholder.Fill(config.PlaceholderColor)
	}
	return s.placeholder, false
}

// subImage 返回裁剪到区域内的子图（坐标系与原图相同）
func subImage(screen *ebiten.Image, area config.Rect) *ebiten.Image {
	r := image.Rect(int(area.X), int(area.Y), int(area.X+area.W), int(area.Y+area.H))
	return screen.SubImage(r).(*ebiten.Image)
}

// drawPanel 绘制带边框的面板背景
func drawPanel(screen *ebiten.Image, area config.Rect) {
	vector.DrawFilledRect(screen, float32(area.X), float32(area.Y), float32(area.W), float32(area.H), config.PanelColor, false)
	vector.StrokeRect(screen, float32(area.X), float32(area.Y), float32(area.W), float32(area.H), 1, config.PanelBorderColor, false)
}

// fitScale 计算把 w×h 的图片等比放入区域的缩放比例
func fitScale(w, h float64, area config.Rect) float64 {
	if w <= 0 || h <= 0 {
		return 0
	}
	sx := area.W / w
	sy := area.H / h
	if sx < sy {
		return sx
	}
	return sy
}

// drawFitted 等比缩放图片并居中绘制到区域内，extra 为额外放大倍数
// 超出区域的部分被裁剪
func drawFitted(screen *ebiten.Image, img *ebiten.Image, area config.Rect, extra float64) {
	if img == nil {
		return
	}
	w := float64(img.Bounds().Dx())
	h := float64(img.Bounds().Dy())
	scale := fitScale(w, h, area) * extra
	if scale == 0 {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(area.X+(area.W-w*scale)/2, area.Y+(area.H-h*scale)/2)
	op.Filter = ebiten.FilterLinear
	subImage(screen, area).DrawImage(img, op)
}

// drawText 在 (x, y) 绘制单行文字，y 为文字顶部
func drawText(screen *ebiten.Image, str string, face *text.GoTextFace, x, y float64, align text.Align, clr color.Color) {
	if str == "" || face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.LayoutOptions.PrimaryAlign = align
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, face, op)
}

// drawCentered 在区域中心绘制单行文字
func drawCentered(screen *ebiten.Image, str string, face *text.GoTextFace, area config.Rect, clr color.Color) {
	if str == "" || face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.LayoutOptions.PrimaryAlign = text.AlignCenter
	op.LayoutOptions.SecondaryAlign = text.AlignCenter
	op.GeoM.Translate(area.X+area.W/2, area.Y+area.H/2)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, face, op)
}
