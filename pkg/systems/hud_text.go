package systems

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// wrapText 将文本按最大宽度断行
//
// 规则：
//   - 优先在空格处断行
//   - 无空格时（中文或超长单词）按字符强制断行
//   - 单个字符超宽时独占一行
func wrapText(s string, maxWidth float64, measure func(string) float64) []string {
	if s == "" || maxWidth <= 0 || measure(s) <= maxWidth {
		return []string{s}
	}

	var lines []string
	current := ""
	for _, r := range s {
		candidate := current + string(r)
		if current == "" || measure(candidate) <= maxWidth {
			current = candidate
			continue
		}

		if i := strings.LastIndexByte(current, ' '); i > 0 {
			lines = append(lines, strings.TrimSpace(current[:i]))
			current = strings.TrimLeft(current[i+1:], " ") + string(r)
		} else {
			lines = append(lines, strings.TrimSpace(current))
			current = strings.TrimLeft(string(r), " ")
		}
	}
	if current = strings.TrimSpace(current); current != "" {
		lines = append(lines, current)
	}
	return lines
}

// faceMeasure 返回按字体测量文本宽度的函数
func faceMeasure(face *text.GoTextFace) func(string) float64 {
	return func(s string) float64 {
		w, _ := text.Measure(s, face, 0)
		return w
	}
}

// titleLineHeight 标题行高
func titleLineHeight(face *text.GoTextFace) float64 {
	m := face.Metrics()
	return m.HAscent + m.HDescent + m.HLineGap
}
