package main

import (
	"image"
	"image/color"
	"testing"
)

// TestHalfBlock 测试半块字符选择
func TestHalfBlock(t *testing.T) {
	tests := []struct {
		name        string
		top, bottom bool
		expected    rune
	}{
		{"全满", true, true, '█'},
		{"上半", true, false, '▀'},
		{"下半", false, true, '▄'},
		{"空", false, false, ' '},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := halfBlock(tt.top, tt.bottom); got != tt.expected {
				t.Errorf("halfBlock(%v, %v) = %q, 期望 %q", tt.top, tt.bottom, got, tt.expected)
			}
		})
	}
}

// TestMaskToCells 测试遮罩转换为字符网格
func TestMaskToCells(t *testing.T) {
	mask := image.NewAlpha(image.Rect(0, 0, 3, 3))
	mask.SetAlpha(0, 0, color.Alpha{A: 255})
	mask.SetAlpha(0, 1, color.Alpha{A: 255})
	mask.SetAlpha(1, 1, color.Alpha{A: 200})
	mask.SetAlpha(2, 0, color.Alpha{A: 50})
	mask.SetAlpha(2, 2, color.Alpha{A: 255})

	cells := maskToCells(mask, 128)
	if len(cells) != 2 {
		t.Fatalf("行数 = %d, 期望 2", len(cells))
	}
	if got := string(cells[0]); got != "█▄ " {
		t.Errorf("第一行 = %q, 期望 %q", got, "█▄ ")
	}
	// 奇数高度的最后一行只有上半像素
	if got := string(cells[1]); got != "  ▀" {
		t.Errorf("第二行 = %q, 期望 %q", got, "  ▀")
	}
}

// TestLogoPixels 测试终端尺寸到 Logo 边长的换算
func TestLogoPixels(t *testing.T) {
	tests := []struct {
		cols, rows int
		expected   int
	}{
		{80, 24, 46},
		{40, 50, 40},
		{10, 0, 0},
	}
	for _, tt := range tests {
		if got := logoPixels(tt.cols, tt.rows); got != tt.expected {
			t.Errorf("logoPixels(%d, %d) = %d, 期望 %d", tt.cols, tt.rows, got, tt.expected)
		}
	}
}
