package utils

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestParseLetterKey(t *testing.T) {
	tests := []struct {
		input string
		want  ebiten.Key
		ok    bool
	}{
		{"T", ebiten.KeyT, true},
		{"p", ebiten.KeyP, true},
		{"A", ebiten.KeyA, true},
		{"z", ebiten.KeyZ, true},
		{"", 0, false},
		{"TT", 0, false},
		{"1", 0, false},
		{"!", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseLetterKey(tt.input)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("ParseLetterKey(%q) = (%v, %v), want (%v, %v)", tt.input, got, ok, tt.want, tt.ok)
		}
	}
}

func TestDragTrackerInitialState(t *testing.T) {
	var d DragTracker
	if d.State() != DragStateNone {
		t.Errorf("Expected initial state to be DragStateNone, got %v", d.State())
	}
	if d.IsDragging() {
		t.Error("Expected IsDragging to be false initially")
	}
}

func TestDragTrackerStateTransitions(t *testing.T) {
	var d DragTracker

	d.Feed(PointerInput{X: 100, Y: 50, Pressed: true}, nil)
	if d.State() != DragStateStarted {
		t.Fatalf("Expected DragStateStarted, got %v", d.State())
	}

	d.Feed(PointerInput{X: 80, Y: 52, Pressed: true}, nil)
	if !d.IsDragging() {
		t.Fatalf("Expected dragging, got %v", d.State())
	}
	if dx, dy := d.Step(); dx != -20 || dy != 2 {
		t.Errorf("Step = (%d, %d), want (-20, 2)", dx, dy)
	}

	d.Feed(PointerInput{X: 70, Y: 52, Pressed: true}, nil)
	if dx, _ := d.Step(); dx != -10 {
		t.Errorf("Step dx = %d, want -10", dx)
	}

	d.Feed(PointerInput{X: 70, Y: 52, JustReleased: true}, nil)
	if d.State() != DragStateEnded {
		t.Fatalf("Expected DragStateEnded, got %v", d.State())
	}
	if dx, dy := d.Step(); dx != 0 || dy != 0 {
		t.Errorf("Step after release = (%d, %d), want (0, 0)", dx, dy)
	}

	// 结束状态只持续一帧
	d.Feed(PointerInput{X: 70, Y: 52}, nil)
	if d.State() != DragStateNone {
		t.Errorf("Expected DragStateNone, got %v", d.State())
	}
}

func TestDragTrackerRegion(t *testing.T) {
	var d DragTracker
	inStrip := func(x, y int) bool { return y >= 400 && y < 500 }

	d.Feed(PointerInput{X: 10, Y: 100, Pressed: true}, inStrip)
	if d.State() != DragStateNone {
		t.Errorf("Press outside region should not start a drag, got %v", d.State())
	}

	d.Feed(PointerInput{X: 10, Y: 450, Pressed: true}, inStrip)
	if d.State() != DragStateStarted {
		t.Errorf("Press inside region should start a drag, got %v", d.State())
	}

	// 拖拽开始后可以移出区域
	d.Feed(PointerInput{X: 10, Y: 100, Pressed: true}, inStrip)
	if !d.IsDragging() {
		t.Errorf("Drag should continue outside the region, got %v", d.State())
	}
}
