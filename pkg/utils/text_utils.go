package utils

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// WrapText 将文本按指定宽度自动换行
// 参数:
//   - textStr: 要换行的文本
//   - font: 字体
//   - maxWidth: 最大宽度（像素）
//
// 返回:
//   - []string: 换行后的文本数组（每个元素为一行）
//
// 换行规则见 WrapLines。
func WrapText(textStr string, font *text.GoTextFace, maxWidth float64) []string {
	if textStr == "" || font == nil || maxWidth <= 0 {
		return []string{textStr}
	}
	return WrapLines(textStr, maxWidth, func(s string) float64 {
		return measureTextWidth(s, font)
	})
}

// WrapLines 使用给定的测量函数换行
//
// 换行规则:
//   - 优先在空白处断行
//   - 单词本身超过最大宽度时按字符强制断行
//   - 每行首尾空白被去掉
func WrapLines(textStr string, maxWidth float64, measure func(string) float64) []string {
	if textStr == "" || maxWidth <= 0 || measure(textStr) <= maxWidth {
		return []string{textStr}
	}

	var lines []string
	currentLine := ""
	for _, word := range strings.FieldsFunc(textStr, unicode.IsSpace) {
		candidate := word
		if currentLine != "" {
			candidate = currentLine + " " + word
		}
		if measure(candidate) <= maxWidth {
			currentLine = candidate
			continue
		}
		if currentLine != "" {
			lines = append(lines, currentLine)
			currentLine = ""
		}
		if measure(word) <= maxWidth {
			currentLine = word
			continue
		}
		// 超长单词：按字符切分，最后一段留给后续单词拼接
		pieces := breakWord(word, maxWidth, measure)
		lines = append(lines, pieces[:len(pieces)-1]...)
		currentLine = pieces[len(pieces)-1]
	}
	if currentLine != "" {
		lines = append(lines, currentLine)
	}
	if len(lines) == 0 {
		lines = []string{strings.TrimSpace(textStr)}
	}
	return lines
}

// breakWord 按字符切分超宽单词，单个字符超宽时独占一行
func breakWord(word string, maxWidth float64, measure func(string) float64) []string {
	var pieces []string
	current := ""
	for len(word) > 0 {
		_, size := utf8.DecodeRuneInString(word)
		char := word[:size]
		word = word[size:]

		if current != "" && measure(current+char) > maxWidth {
			pieces = append(pieces, current)
			current = ""
		}
		current += char
	}
	return append(pieces, current)
}

// measureTextWidth 测量文本宽度
func measureTextWidth(textStr string, font *text.GoTextFace) float64 {
	if textStr == "" || font == nil {
		return 0
	}
	width, _ := text.Measure(textStr, font, 0)
	return width
}
