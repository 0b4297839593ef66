package widget

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/decker502/misopet/pkg/config"
)

// newTestWidget 创建使用默认配置和假界面的 Widget
func newTestWidget(t *testing.T, view *fakeView) (*Widget, *fakeAudio) {
	t.Helper()
	audio := &fakeAudio{}
	clock := func() time.Time { return time.Date(2026, 10, 16, 15, 4, 5, 0, time.Local) }
	w, err := New(Options{
		Config: config.DefaultPetConfig(),
		View:   view,
		Audio:  audio,
		Clock:  clock,
	})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	w.Start()
	return w, audio
}

// TestNewRequiresView 没有界面时创建失败
func TestNewRequiresView(t *testing.T) {
	if _, err := New(Options{}); err == nil {
		t.Error("New() without view expected error")
	}
}

// TestStartCapturesInitialPhoto 启动时记录主图当前图片作为默认图
func TestStartCapturesInitialPhoto(t *testing.T) {
	view := newFakeView("images/FromMarkup.jpg")
	pre := &fakePreloader{}
	w, err := New(Options{View: view, Preloader: pre})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	w.Start()

	if got := w.photo.DefaultPhoto(); got != "images/FromMarkup.jpg" {
		t.Errorf("DefaultPhoto: got %q, want images/FromMarkup.jpg", got)
	}
	if !view.isDefault || view.alt != "Miso - Default" {
		t.Errorf("initial main photo state: default=%v alt=%q", view.isDefault, view.alt)
	}
	if view.name != "Miso" || view.weight != 3 || view.happiness != 10 || view.slp != 5 {
		t.Errorf("initial render: %s %d/%d/%d", view.name, view.weight, view.happiness, view.slp)
	}
	for _, p := range []string{"images/Treat.jpg", "images/Play.jpg", "images/Exercise.png", "images/Sleep.jpg"} {
		if !pre.paths[p] {
			t.Errorf("action photo %s was not preloaded", p)
		}
	}

	// 第二次 Start 不会重新记录
	view.mainPhoto = "images/Other.jpg"
	w.Start()
	if got := w.photo.DefaultPhoto(); got != "images/FromMarkup.jpg" {
		t.Errorf("DefaultPhoto after second Start: got %q", got)
	}
}

// TestStartFallsBackToConfigPhoto 主图为空时使用配置中的默认图
func TestStartFallsBackToConfigPhoto(t *testing.T) {
	view := newFakeView("")
	newTestWidget(t, view)
	if view.mainPhoto != "images/Miso.jpg" {
		t.Errorf("main photo: got %q, want images/Miso.jpg", view.mainPhoto)
	}
}

// TestCollageRender 按顺序渲染拼贴图片
func TestCollageRender(t *testing.T) {
	view := newFakeView("images/Miso.jpg")
	view.collage.images = []string{"stale.jpg"}
	newTestWidget(t, view)

	want := config.DefaultPetConfig().Collage
	if len(view.collage.images) != len(want) {
		t.Fatalf("collage has %d images, want %d", len(view.collage.images), len(want))
	}
	for i := range want {
		if view.collage.images[i] != want[i] {
			t.Errorf("image %d: got %s, want %s", i, view.collage.images[i], want[i])
		}
		if !view.collage.lazy[i] {
			t.Errorf("image %d is not lazy", i)
		}
	}
	if view.collage.alts[0] != "Pet photo 1" || view.collage.alts[6] != "Pet photo 7" {
		t.Errorf("alts = %v", view.collage.alts)
	}
}

// TestActionTable 每个动作的数值变化、音频、日志、主图和滚动
func TestActionTable(t *testing.T) {
	tests := []struct {
		action        Action
		wantWeight    int
		wantHappiness int
		wantSleep     int
		wantAudio     []string
		wantMessage   string
		wantPhoto     string
		wantAlt       string
		wantOffset    float64
	}{
		{ActionTreat, 4, 12, 5, []string{"stop", "oneshot"}, "Yummy!", "images/Treat.jpg", "Miso - Treat", 160},
		{ActionPlay, 2, 13, 5, []string{"stop", "oneshot"}, "Play! Play! Play!", "images/Play.jpg", "Miso - Play", 220},
		{ActionExercise, 1, 8, 5, []string{"stop", "oneshot"}, "So tiring...", "images/Exercise.png", "Miso - Exercise", 20},
		{ActionSleep, 3, 11, 7, []string{"start"}, "Zzz...", "images/Sleep.jpg", "Miso - Sleep", 60},
	}

	for _, tt := range tests {
		t.Run(string(tt.action), func(t *testing.T) {
			view := newFakeView("images/Miso.jpg")
			view.collage.offset = 100
			w, audio := newTestWidget(t, view)

			if !w.Perform(tt.action) {
				t.Fatalf("Perform(%s) returned false", tt.action)
			}

			s := w.state
			if s.Weight() != tt.wantWeight || s.Happiness() != tt.wantHappiness || s.Sleep() != tt.wantSleep {
				t.Errorf("state = %d/%d/%d, want %d/%d/%d",
					s.Weight(), s.Happiness(), s.Sleep(), tt.wantWeight, tt.wantHappiness, tt.wantSleep)
			}
			if view.weight != tt.wantWeight || view.happiness != tt.wantHappiness || view.slp != tt.wantSleep {
				t.Errorf("display not refreshed: %d/%d/%d", view.weight, view.happiness, view.slp)
			}
			if len(audio.calls) != len(tt.wantAudio) {
				t.Fatalf("audio calls = %v, want %v", audio.calls, tt.wantAudio)
			}
			for i := range tt.wantAudio {
				if audio.calls[i] != tt.wantAudio[i] {
					t.Errorf("audio calls = %v, want %v", audio.calls, tt.wantAudio)
				}
			}
			lines := view.log.lines
			if len(lines) != 1 || !strings.HasSuffix(lines[0], "] "+tt.wantMessage) {
				t.Errorf("log lines = %v", lines)
			}
			if view.mainPhoto != tt.wantPhoto || view.alt != tt.wantAlt || view.isDefault {
				t.Errorf("main photo = %s %q default=%v", view.mainPhoto, view.alt, view.isDefault)
			}
			if view.collage.offset != tt.wantOffset {
				t.Errorf("collage offset: got %v, want %v", view.collage.offset, tt.wantOffset)
			}
			if !w.photo.timer.Pending() {
				t.Error("revert not scheduled")
			}
		})
	}
}

// TestAttributesNeverNegative 任意动作序列之后属性都是非负整数
func TestAttributesNeverNegative(t *testing.T) {
	view := newFakeView("images/Miso.jpg")
	w, _ := newTestWidget(t, view)

	sequence := []Action{
		ActionExercise, ActionExercise, ActionExercise, ActionPlay, ActionExercise,
		ActionSleep, ActionExercise, ActionExercise, ActionTreat, ActionExercise,
		ActionPlay, ActionPlay, ActionExercise, ActionExercise, ActionExercise,
	}
	for i, a := range sequence {
		w.Perform(a)
		s := w.state
		if s.Weight() < 0 || s.Happiness() < 0 || s.Sleep() < 0 {
			t.Fatalf("step %d (%s): negative attribute %d/%d/%d", i, a, s.Weight(), s.Happiness(), s.Sleep())
		}
	}
	if w.state.Weight() != 0 {
		t.Errorf("weight after heavy exercise: got %d, want 0", w.state.Weight())
	}
}

// TestTreatFromKnownState happiness=10, weight=3 喂零食后为 12 和 4
func TestTreatFromKnownState(t *testing.T) {
	view := newFakeView("images/Miso.jpg")
	w, _ := newTestWidget(t, view)

	w.Treat()

	if w.state.Happiness() != 12 || w.state.Weight() != 4 || w.state.Sleep() != 5 {
		t.Errorf("after treat: happiness=%d weight=%d sleep=%d", w.state.Happiness(), w.state.Weight(), w.state.Sleep())
	}
}

// TestRapidActionsRevertOnce 恢复计时期间再次点击，只恢复一次
func TestRapidActionsRevertOnce(t *testing.T) {
	view := newFakeView("images/Miso.jpg")
	w, audio := newTestWidget(t, view)

	w.Treat()
	w.Update(1500 * time.Millisecond)
	w.Play()

	// 第一次点击的截止时间已过，但不应恢复
	w.Update(1000 * time.Millisecond)
	if view.mainPhoto != "images/Play.jpg" {
		t.Fatalf("reverted mid-display of newer photo: %s", view.mainPhoto)
	}
	if w.photo.reverts != 0 {
		t.Fatalf("reverts = %d, want 0", w.photo.reverts)
	}

	w.Update(1000 * time.Millisecond)
	if w.photo.reverts != 1 {
		t.Errorf("reverts = %d, want 1", w.photo.reverts)
	}
	if view.mainPhoto != "images/Miso.jpg" || view.alt != "Miso - Default" || !view.isDefault {
		t.Errorf("after revert: %s %q default=%v", view.mainPhoto, view.alt, view.isDefault)
	}
	if last := audio.calls[len(audio.calls)-1]; last != "stop" {
		t.Errorf("revert did not stop loop, last audio call %q", last)
	}

	w.Update(10 * time.Second)
	if w.photo.reverts != 1 {
		t.Errorf("duplicate revert: %d", w.photo.reverts)
	}
}

// TestSleepLoopStopsOnRevert 睡觉的循环音在恢复默认图时停止
func TestSleepLoopStopsOnRevert(t *testing.T) {
	view := newFakeView("images/Miso.jpg")
	w, audio := newTestWidget(t, view)

	w.Sleep()
	w.Update(DefaultRevertDelay)

	want := []string{"start", "stop"}
	if len(audio.calls) != 2 || audio.calls[0] != want[0] || audio.calls[1] != want[1] {
		t.Errorf("audio calls = %v, want %v", audio.calls, want)
	}
}

// TestUnknownAction 未知动作不产生任何副作用
func TestUnknownAction(t *testing.T) {
	view := newFakeView("images/Miso.jpg")
	w, audio := newTestWidget(t, view)
	sets := view.photoSets

	if w.Perform("dance") {
		t.Error("Perform(dance) returned true")
	}
	if w.photo.ShowAction("dance") {
		t.Error("ShowAction(dance) returned true")
	}
	if view.photoSets != sets || w.photo.timer.Pending() || len(audio.calls) != 0 {
		t.Errorf("unknown action caused side effects: sets=%d pending=%v audio=%v",
			view.photoSets, w.photo.timer.Pending(), audio.calls)
	}
}

// TestNudgeClamp 滚动限制在 [0, scrollWidth-clientWidth]
func TestNudgeClamp(t *testing.T) {
	view := newFakeView("images/Miso.jpg")
	w, _ := newTestWidget(t, view)
	c := w.collage

	c.Nudge(60)
	c.Nudge(-1000)
	if view.collage.offset != 0 {
		t.Errorf("offset after nudge(+60), nudge(-1000): got %v, want 0", view.collage.offset)
	}

	c.Nudge(5000)
	if view.collage.offset != 700 {
		t.Errorf("offset after nudge(+5000): got %v, want 700", view.collage.offset)
	}

	// 内容没有溢出
	view.collage.scrollWidth = 200
	c.Nudge(50)
	if view.collage.offset != 0 {
		t.Errorf("offset without overflow: got %v, want 0", view.collage.offset)
	}
}

// TestClampScroll 测试纯函数
func TestClampScroll(t *testing.T) {
	tests := []struct {
		target, scrollWidth, clientWidth, want float64
	}{
		{target: 50, scrollWidth: 1000, clientWidth: 300, want: 50},
		{target: -10, scrollWidth: 1000, clientWidth: 300, want: 0},
		{target: 900, scrollWidth: 1000, clientWidth: 300, want: 700},
		{target: 10, scrollWidth: 100, clientWidth: 300, want: 0},
	}
	for _, tt := range tests {
		if got := ClampScroll(tt.target, tt.scrollWidth, tt.clientWidth); got != tt.want {
			t.Errorf("ClampScroll(%v, %v, %v) = %v, want %v", tt.target, tt.scrollWidth, tt.clientWidth, got, tt.want)
		}
	}
}

// TestSpeakThreeTimes 三条日志按顺序追加，面板滚动到底部
func TestSpeakThreeTimes(t *testing.T) {
	view := newFakeView("images/Miso.jpg")
	w, _ := newTestWidget(t, view)
	l := w.activity

	for i := 0; i < 3; i++ {
		l.Speak("Zzz...")
	}

	if len(view.log.lines) != 3 {
		t.Fatalf("log has %d lines, want 3", len(view.log.lines))
	}
	pattern := regexp.MustCompile(`^\[\d{1,2}:\d{2}:\d{2} (AM|PM)\] Zzz\.\.\.$`)
	for i, line := range view.log.lines {
		if !pattern.MatchString(line) {
			t.Errorf("line %d %q does not match %s", i, line, pattern)
		}
	}
	if view.log.lines[0] != "[3:04:05 PM] Zzz..." {
		t.Errorf("line 0 = %q", view.log.lines[0])
	}
	if view.log.scrollTop != view.log.ScrollHeight() {
		t.Errorf("scrollTop = %v, want %v", view.log.scrollTop, view.log.ScrollHeight())
	}
}

// TestMissingCollageAndLog 缺少拼贴和日志面板时静默跳过
func TestMissingCollageAndLog(t *testing.T) {
	view := newFakeView("images/Miso.jpg")
	view.collage = nil
	view.log = nil
	w, _ := newTestWidget(t, view)

	for _, a := range w.Actions() {
		if !w.Perform(a) {
			t.Errorf("Perform(%s) returned false", a)
		}
	}
}

// TestActionsOrderAndKeys 动作顺序与快捷键来自配置
func TestActionsOrderAndKeys(t *testing.T) {
	view := newFakeView("images/Miso.jpg")
	w, _ := newTestWidget(t, view)

	want := []Action{ActionTreat, ActionPlay, ActionExercise, ActionSleep}
	got := w.Actions()
	if len(got) != len(want) {
		t.Fatalf("Actions() = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Actions()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
	if w.ActionKey(ActionSleep) != "S" || w.ActionKey("dance") != "" {
		t.Errorf("ActionKey: sleep=%q dance=%q", w.ActionKey(ActionSleep), w.ActionKey("dance"))
	}
}

// TestCapitalize 首字母大写
func TestCapitalize(t *testing.T) {
	tests := map[string]string{"treat": "Treat", "": "", "élan": "Élan", "X": "X"}
	for in, want := range tests {
		if got := capitalize(in); got != want {
			t.Errorf("capitalize(%q) = %q, want %q", in, got, want)
		}
	}
}

// TestCloseCancelsRevert 关闭后不再恢复默认图，循环音停止
func TestCloseCancelsRevert(t *testing.T) {
	view := newFakeView("images/Miso.jpg")
	w, audio := newTestWidget(t, view)

	w.Sleep()
	w.Close()
	if w.photo.timer.Pending() {
		t.Fatal("revert still pending after Close")
	}
	w.Update(2 * DefaultRevertDelay)
	if view.mainPhoto != "images/Sleep.jpg" || w.photo.reverts != 0 {
		t.Errorf("main photo = %s reverts = %d, want Sleep photo and no revert", view.mainPhoto, w.photo.reverts)
	}
	if last := audio.calls[len(audio.calls)-1]; last != "stop" {
		t.Errorf("last audio call = %s, want stop", last)
	}
}

func TestActionLabel(t *testing.T) {
	if got := ActionExercise.Label(); got != "Exercise" {
		t.Errorf("Label() = %q, want Exercise", got)
	}
}
