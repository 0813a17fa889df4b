package systems

import (
	"reflect"
	"testing"
	"unicode/utf8"
)

// runeWidth 每个字符宽 10 像素
func runeWidth(s string) float64 {
	return float64(utf8.RuneCountInString(s) * 10)
}

// TestWrapText 测试标题断行
func TestWrapText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth float64
		expected []string
	}{
		{"空文本", "", 50, []string{""}},
		{"无需换行", "短文本", 50, []string{"短文本"}},
		{"在空格处断行", "ab cd ef", 50, []string{"ab", "cd ef"}},
		{"长单词强制断行", "Loading", 50, []string{"Loadi", "ng"}},
		{"中文按字符断行", "正在加载资源请稍候", 50, []string{"正在加载资", "源请稍候"}},
		{"宽度无效", "Loading", 0, []string{"Loading"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrapText(tt.input, tt.maxWidth, runeWidth)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("wrapText(%q, %v) = %q, 期望 %q", tt.input, tt.maxWidth, got, tt.expected)
			}
		})
	}
}

// TestWrapTextFitsWidth 测试断行后每行都不超宽
func TestWrapTextFitsWidth(t *testing.T) {
	lines := wrapText("the quick brown fox jumps over the lazy dog", 60, runeWidth)
	if len(lines) < 2 {
		t.Fatalf("期望多行, 实际 %q", lines)
	}
	for _, line := range lines {
		if w := runeWidth(line); w > 60 {
			t.Errorf("行 %q 宽度 %v 超过 60", line, w)
		}
	}
}
