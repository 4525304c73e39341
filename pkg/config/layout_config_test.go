package config

import (
	"testing"
)

// TestHolePosition 测试洞口位置计算
func TestHolePosition(t *testing.T) {
	tests := []struct {
		name  string
		index int
		wantX int
		wantY int
	}{
		{name: "第1行第1列", index: 0, wantX: 126, wantY: 135},
		{name: "第1行第2列", index: 1, wantX: 359, wantY: 135},
		{name: "第1行第3列", index: 2, wantX: 592, wantY: 135},
		{name: "第2行第1列", index: 3, wantX: 126, wantY: 385},
		{name: "第2行第3列", index: 5, wantX: 592, wantY: 385},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotX, gotY := HolePosition(tt.index)
			if gotX != tt.wantX || gotY != tt.wantY {
				t.Errorf("HolePosition(%d) = (%d, %d), want (%d, %d)", tt.index, gotX, gotY, tt.wantX, tt.wantY)
			}
		})
	}
}

// TestHolesInsideWindow 验证所有洞口都完整位于窗口内
func TestHolesInsideWindow(t *testing.T) {
	for i := 0; i < HoleCount; i++ {
		x, y := HolePosition(i)
		if x < 0 || y < 0 || x+HoleDiameter > GameWindowWidth || y+HoleDiameter > GameWindowHeight {
			t.Errorf("hole %d at (%d, %d) exceeds window %dx%d", i, x, y, GameWindowWidth, GameWindowHeight)
		}
	}
}

// TestBoardDimensions 验证网格常量之间的关系
func TestBoardDimensions(t *testing.T) {
	if BoardRows*BoardColumns != HoleCount {
		t.Errorf("BoardRows*BoardColumns: got %d, want %d", BoardRows*BoardColumns, HoleCount)
	}
	if CellWidth != 233 {
		t.Errorf("CellWidth: got %d, want 233", CellWidth)
	}
	if CellHeight != 250 {
		t.Errorf("CellHeight: got %d, want 250", CellHeight)
	}
}
