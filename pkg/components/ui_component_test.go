package components

import "testing"

// TestUIState tests that UIState constants are defined correctly.
func TestUIState(t *testing.T) {
	tests := []struct {
		state UIState
		value int
		name  string
	}{
		{UINormal, 0, "normal"},
		{UIHovered, 1, "hovered"},
		{UIClicked, 2, "clicked"},
		{UIDisabled, 3, "disabled"},
		{UIState(42), 42, "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if int(tt.state) != tt.value {
				t.Errorf("Expected %s to be %d, got %d", tt.name, tt.value, int(tt.state))
			}
			if tt.state.String() != tt.name {
				t.Errorf("String() = %q, want %q", tt.state.String(), tt.name)
			}
		})
	}
}

// TestButtonComponentZeroValue 零值按钮处于正常状态且未启用
func TestButtonComponentZeroValue(t *testing.T) {
	var b ButtonComponent
	if b.State != UINormal {
		t.Errorf("Expected zero-value state UINormal, got %v", b.State)
	}
	if b.Enabled || b.HasHotkey || b.OnClick != nil {
		t.Error("Zero-value button should be disabled with no hotkey and no callback")
	}
}
