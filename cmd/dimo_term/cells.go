package main

import (
	"image"
)

// halfBlock 根据上下两个像素的覆盖情况选择字符
func halfBlock(top, bottom bool) rune {
	switch {
	case top && bottom:
		return '█'
	case top:
		return '▀'
	case bottom:
		return '▄'
	default:
		return ' '
	}
}

// maskToCells 将覆盖率遮罩转换为字符网格
// 每个字符对应上下两个像素，覆盖率不低于 threshold 视为点亮
func maskToCells(mask *image.Alpha, threshold uint8) [][]rune {
	b := mask.Bounds()
	rows := (b.Dy() + 1) / 2
	cells := make([][]rune, rows)

	for row := 0; row < rows; row++ {
		line := make([]rune, b.Dx())
		y := b.Min.Y + row*2
		for col := range line {
			x := b.Min.X + col
			top := mask.AlphaAt(x, y).A >= threshold
			bottom := y+1 < b.Max.Y && mask.AlphaAt(x, y+1).A >= threshold
			line[col] = halfBlock(top, bottom)
		}
		cells[row] = line
	}
	return cells
}

// logoPixels 终端尺寸下 Logo 的边长（像素）
// 字符约为 1:2 的宽高比，一行字符对应两行像素；保留一行状态栏
func logoPixels(cols, rows int) int {
	n := min(cols, 2*(rows-1))
	return max(n, 0)
}
