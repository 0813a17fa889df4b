package systems

import (
	"testing"

	"github.com/decker502/dimologo/pkg/config"
	"github.com/decker502/dimologo/pkg/logo"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

func fillVertices(path *vector.Path) ([]ebiten.Vertex, []uint16) {
	return path.AppendVerticesAndIndicesForFilling(nil, nil)
}

// TestAppendDropPath 测试水滴路径在各阶段的生成
func TestAppendDropPath(t *testing.T) {
	b := logo.Bounds{Width: 60, Height: 60}
	m := config.NewLogoMetrics(60, 60)
	s := logo.ComputeSchedule(1.2)

	tests := []struct {
		name      string
		time      float64
		wantEmpty bool
	}{
		{"起始圆形", 0, true}, // 半径为 0
		{"膨胀中", 0.075, false},
		{"移动中", 0.6, false},
		{"水滴形", 0.9, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var path vector.Path
			AppendDropPath(&path, logo.ComputeDrop(tt.time, s, m, b))
			vs, is := fillVertices(&path)
			if tt.wantEmpty && len(is) != 0 {
				t.Errorf("期望空路径, 实际 %d 个索引", len(is))
			}
			if !tt.wantEmpty && (len(vs) == 0 || len(is) == 0) {
				t.Errorf("期望非空路径, 实际 %d 顶点 %d 索引", len(vs), len(is))
			}
		})
	}
}

// TestAppendDropPathStaysInBounds 测试水滴顶点不超出绘制区域
func TestAppendDropPathStaysInBounds(t *testing.T) {
	b := logo.Bounds{Width: 60, Height: 60}
	m := config.NewLogoMetrics(60, 60)
	s := logo.ComputeSchedule(1.2)

	for tm := 0.0; tm <= 1.2; tm += 0.05 {
		var path vector.Path
		AppendDropPath(&path, logo.ComputeDrop(tm, s, m, b))
		vs, _ := fillVertices(&path)
		for _, v := range vs {
			if v.DstX < -0.5 || v.DstX > 60.5 || v.DstY < -0.5 || v.DstY > 60.5 {
				t.Fatalf("t=%v: 顶点 (%v, %v) 超出 60x60", tm, v.DstX, v.DstY)
			}
		}
	}
}

// TestAppendLinePath 测试横线路径覆盖左右端点
func TestAppendLinePath(t *testing.T) {
	b := logo.Bounds{Width: 60, Height: 60}
	m := config.NewLogoMetrics(60, 60)
	s := logo.ComputeSchedule(1.2)

	var path vector.Path
	AppendLinePath(&path, logo.ComputeLine(0, s, m, b))
	vs, is := fillVertices(&path)
	if len(is) == 0 {
		t.Fatal("横线路径为空")
	}

	minX, maxX := float32(1e9), float32(-1e9)
	for _, v := range vs {
		minX = min(minX, v.DstX)
		maxX = max(maxX, v.DstX)
	}
	if minX > 5.01 || minX < 4.99 || maxX < 54.99 || maxX > 55.01 {
		t.Errorf("横线水平范围 = [%v, %v], 期望 [5, 55]", minX, maxX)
	}
}

// TestAppendRoundedRectPath 测试圆角矩形路径
func TestAppendRoundedRectPath(t *testing.T) {
	var path vector.Path
	AppendRoundedRectPath(&path, 10, 20, 100, 50, 12)
	vs, is := fillVertices(&path)
	if len(is) == 0 {
		t.Fatal("圆角矩形路径为空")
	}
	for _, v := range vs {
		if v.DstX < 9.5 || v.DstX > 110.5 || v.DstY < 19.5 || v.DstY > 70.5 {
			t.Fatalf("顶点 (%v, %v) 超出矩形", v.DstX, v.DstY)
		}
	}

	var empty vector.Path
	AppendRoundedRectPath(&empty, 0, 0, 0, 10, 4)
	if _, is := fillVertices(&empty); len(is) != 0 {
		t.Error("零宽度矩形应生成空路径")
	}
}
