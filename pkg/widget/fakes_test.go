package widget

// fakeScrollArea 记录拼贴操作的 ScrollArea
type fakeScrollArea struct {
	images      []string
	alts        []string
	lazy        []bool
	offset      float64
	scrollWidth float64
	clientWidth float64
}

func (a *fakeScrollArea) ClearImages() {
	a.images, a.alts, a.lazy = nil, nil, nil
}

func (a *fakeScrollArea) AppendImage(path, alt string, lazy bool) {
	a.images = append(a.images, path)
	a.alts = append(a.alts, alt)
	a.lazy = append(a.lazy, lazy)
}

func (a *fakeScrollArea) ScrollOffset() float64 { return a.offset }
func (a *fakeScrollArea) SetScrollOffset(o float64) { a.offset = o }
func (a *fakeScrollArea) ScrollWidth() float64 { return a.scrollWidth }
func (a *fakeScrollArea) ClientWidth() float64 { return a.clientWidth }

// fakeLogPanel 每行固定 20 像素高
type fakeLogPanel struct {
	lines     []string
	scrollTop float64
}

func (p *fakeLogPanel) AppendLine(line string) { p.lines = append(p.lines, line) }
func (p *fakeLogPanel) ScrollHeight() float64 { return float64(len(p.lines) * 20) }
func (p *fakeLogPanel) SetScrollTop(top float64) { p.scrollTop = top }

// fakeView 内存中的 View
type fakeView struct {
	mainPhoto string
	alt       string
	isDefault bool
	photoSets int

	name                   string
	weight, happiness, slp int
	refreshes              int

	collage *fakeScrollArea
	log     *fakeLogPanel
}

func newFakeView(initialPhoto string) *fakeView {
	return &fakeView{
		mainPhoto: initialPhoto,
		collage:   &fakeScrollArea{scrollWidth: 1000, clientWidth: 300},
		log:       &fakeLogPanel{},
	}
}

func (v *fakeView) MainPhoto() string { return v.mainPhoto }

func (v *fakeView) SetMainPhoto(path, alt string, isDefault bool) {
	v.mainPhoto, v.alt, v.isDefault = path, alt, isDefault
	v.photoSets++
}

func (v *fakeView) SetDisplayedAttributes(name string, weight, happiness, sleep int) {
	v.name, v.weight, v.happiness, v.slp = name, weight, happiness, sleep
	v.refreshes++
}

func (v *fakeView) Collage() ScrollArea {
	if v.collage == nil {
		return nil
	}
	return v.collage
}

func (v *fakeView) Log() LogPanel {
	if v.log == nil {
		return nil
	}
	return v.log
}

// fakeAudio 记录调用顺序
type fakeAudio struct {
	calls []string
}

func (a *fakeAudio) PlayOneShot() { a.calls = append(a.calls, "oneshot") }
func (a *fakeAudio) StartLoop()   { a.calls = append(a.calls, "start") }
func (a *fakeAudio) StopLoop()    { a.calls = append(a.calls, "stop") }

// fakePreloader 记录预取路径
type fakePreloader struct {
	paths map[string]bool
}

func (p *fakePreloader) Preload(path string) {
	if p.paths == nil {
		p.paths = make(map[string]bool)
	}
	p.paths[path] = true
}
