package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerSample 单帧指针（触摸或鼠标左键）状态
type PointerSample struct {
	JustPressed bool // 本帧刚按下
	Pressed     bool // 当前处于按下状态
	X, Y        int  // 指针位置（屏幕坐标）
}

// ReadPointer 读取当前帧的指针状态，优先检测触摸
func ReadPointer() PointerSample {
	if ids := ebiten.AppendTouchIDs(nil); len(ids) > 0 {
		x, y := ebiten.TouchPosition(ids[0])
		return PointerSample{
			JustPressed: len(inpututil.AppendJustPressedTouchIDs(nil)) > 0,
			Pressed:     true,
			X:           x,
			Y:           y,
		}
	}

	x, y := ebiten.CursorPosition()
	return PointerSample{
		JustPressed: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Pressed:     ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		X:           x,
		Y:           y,
	}
}

// DragState 拖拽状态
type DragState int

const (
	// DragStateNone 无拖拽
	DragStateNone DragState = iota
	// DragStateStarted 拖拽开始（刚按下，只持续一帧）
	DragStateStarted
	// DragStateDragging 拖拽中
	DragStateDragging
	// DragStateEnded 拖拽结束（刚释放，只持续一帧）
	DragStateEnded
)

// TapSlop 位移不超过该值（像素）的拖拽视为点击
const TapSlop = 8

// DragInfo 拖拽信息
type DragInfo struct {
	State              DragState
	StartX, StartY     int
	CurrentX, CurrentY int
}

// PointerSource 指针输入来源
type PointerSource func() PointerSample

// DragManager 拖拽管理器
// 每帧以当前指针状态调用一次 Advance 推进状态
type DragManager struct {
	info DragInfo
}

// NewDragManager 创建拖拽管理器
func NewDragManager() *DragManager {
	return &DragManager{}
}

// Advance 以给定的指针状态推进一帧
func (dm *DragManager) Advance(p PointerSample) {
	switch dm.info.State {
	case DragStateNone:
		if p.JustPressed {
			dm.info = DragInfo{
				State:    DragStateStarted,
				StartX:   p.X,
				StartY:   p.Y,
				CurrentX: p.X,
				CurrentY: p.Y,
			}
		}

	case DragStateStarted, DragStateDragging:
		if !p.Pressed {
			dm.info.State = DragStateEnded
			return
		}
		dm.info.State = DragStateDragging
		dm.info.CurrentX, dm.info.CurrentY = p.X, p.Y

	case DragStateEnded:
		dm.Reset()
		dm.Advance(p)
	}
}

// Reset 重置拖拽状态
func (dm *DragManager) Reset() {
	dm.info = DragInfo{}
}

// GetState 获取当前拖拽状态
func (dm *DragManager) GetState() DragState {
	return dm.info.State
}

// GetInfo 获取完整拖拽信息
func (dm *DragManager) GetInfo() DragInfo {
	return dm.info
}

// IsDragging 是否正在拖拽
func (dm *DragManager) IsDragging() bool {
	return dm.info.State == DragStateDragging
}

// JustEnded 是否刚结束拖拽（本帧）
func (dm *DragManager) JustEnded() bool {
	return dm.info.State == DragStateEnded
}

// GetDragDistance 获取拖拽距离（从起点到当前位置）
func (dm *DragManager) GetDragDistance() (dx, dy int) {
	return dm.info.CurrentX - dm.info.StartX, dm.info.CurrentY - dm.info.StartY
}

// WasTap 刚结束的拖拽是否可视为一次点击
func (dm *DragManager) WasTap() bool {
	if !dm.JustEnded() {
		return false
	}
	dx, dy := dm.GetDragDistance()
	return abs(dx) <= TapSlop && abs(dy) <= TapSlop
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
