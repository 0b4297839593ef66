package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// MockScene is a mock implementation of the Scene interface for testing.
type MockScene struct {
	updateCalled bool
	drawCalled   bool
	closed       int
	deltaTime    float64
}

// Update records that Update was called and stores the deltaTime.
func (m *MockScene) Update(deltaTime float64) {
	m.updateCalled = true
	m.deltaTime = deltaTime
}

// Draw records that Draw was called.
func (m *MockScene) Draw(screen *ebiten.Image) {
	m.drawCalled = true
}

// Close records that Close was called.
func (m *MockScene) Close() {
	m.closed++
}

// TestNewSceneManager verifies that NewSceneManager creates a valid instance.
func TestNewSceneManager(t *testing.T) {
	sm := NewSceneManager()
	if sm.currentScene != nil {
		t.Error("Expected currentScene to be nil initially")
	}

	// 没有场景时调用不会出错
	sm.Update(1.0 / 60.0)
	sm.Draw(nil)
	sm.Close()
}

// TestSceneManagerSwitchTo verifies that SwitchTo changes the active scene and closes the old one.
func TestSceneManagerSwitchTo(t *testing.T) {
	sm := NewSceneManager()
	first := &MockScene{}
	second := &MockScene{}

	sm.SwitchTo(first)
	if sm.currentScene != first {
		t.Fatal("SwitchTo did not set the current scene correctly")
	}

	sm.SwitchTo(first)
	if first.closed != 0 {
		t.Error("switching to the same scene should not close it")
	}

	sm.SwitchTo(second)
	if first.closed != 1 {
		t.Errorf("previous scene closed %d times, want 1", first.closed)
	}
	if sm.currentScene != second {
		t.Error("current scene not updated")
	}
}

// TestSceneManagerUpdate verifies that Update forwards deltaTime to the current scene.
func TestSceneManagerUpdate(t *testing.T) {
	sm := NewSceneManager()
	scene := &MockScene{}
	sm.SwitchTo(scene)

	sm.Update(0.016)
	if !scene.updateCalled {
		t.Error("Update was not forwarded")
	}
	if scene.deltaTime != 0.016 {
		t.Errorf("deltaTime: got %v, want 0.016", scene.deltaTime)
	}

	sm.Close()
	if scene.closed != 1 {
		t.Errorf("Close forwarded %d times, want 1", scene.closed)
	}
}
