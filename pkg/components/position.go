package components

// PositionComponent 实体在屏幕上的位置（绘制区域左上角，像素）
type PositionComponent struct {
	X float64
	Y float64
}
