package utils

import (
	"bytes"
	"reflect"
	"testing"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// monospace 每个字符 10 像素
func monospace(s string) float64 {
	return float64(utf8.RuneCountInString(s) * 10)
}

func TestWrapLines(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth float64
		want     []string
	}{
		{
			name:     "短文本不换行",
			input:    "[1:02:03 PM] Yummy!",
			maxWidth: 1000,
			want:     []string{"[1:02:03 PM] Yummy!"},
		},
		{
			name:     "在空格处断行",
			input:    "[1:02:03 PM] Play! Play! Play!",
			maxWidth: 130,
			want:     []string{"[1:02:03 PM]", "Play! Play!", "Play!"},
		},
		{
			name:     "超长单词强制断行",
			input:    "Zzzzzzzzzzzz ok",
			maxWidth: 50,
			want:     []string{"Zzzzz", "zzzzz", "zz ok"},
		},
		{
			name:     "空文本",
			input:    "",
			maxWidth: 100,
			want:     []string{""},
		},
		{
			name:     "非正宽度返回原文",
			input:    "So tiring...",
			maxWidth: 0,
			want:     []string{"So tiring..."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WrapLines(tt.input, tt.maxWidth, monospace)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("WrapLines(%q, %.0f) = %q, want %q", tt.input, tt.maxWidth, got, tt.want)
			}
			for _, line := range got {
				if tt.maxWidth > 0 && monospace(line) > tt.maxWidth {
					t.Errorf("line %q exceeds %.0f", line, tt.maxWidth)
				}
			}
		})
	}
}

// TestWrapText 使用内置 Go Regular 字体测试真实测量
func TestWrapText(t *testing.T) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		t.Fatalf("无法创建字体源: %v", err)
	}
	font := &text.GoTextFace{Source: source, Size: 16}

	lines := WrapText("[10:15:42 AM] Play! Play! Play! Play! Play! Play!", font, 150)
	if len(lines) < 2 {
		t.Fatalf("期望至少 2 行，实际得到 %d 行: %q", len(lines), lines)
	}
	for _, line := range lines {
		if w := measureTextWidth(line, font); w > 150 {
			t.Errorf("line %q width %.1f exceeds 150", line, w)
		}
	}
}

// TestWrapTextEdgeCases 测试边界情况
func TestWrapTextEdgeCases(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		font     *text.GoTextFace
		maxWidth float64
	}{
		{name: "nil font", input: "Zzz...", font: nil, maxWidth: 100},
		{name: "zero maxWidth", input: "Zzz...", font: &text.GoTextFace{Size: 22}, maxWidth: 0},
		{name: "negative maxWidth", input: "Zzz...", font: &text.GoTextFace{Size: 22}, maxWidth: -100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := WrapText(tt.input, tt.font, tt.maxWidth)
			if len(lines) != 1 || lines[0] != tt.input {
				t.Errorf("期望原文本单行，实际得到 %q", lines)
			}
		})
	}
}
