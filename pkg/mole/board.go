// Package mole 实现打地鼠游戏的核心逻辑
//
// 该包不依赖任何图形或音频库：
//   - Board 描述固定的洞口几何
//   - Controller 维护回合状态并驱动 Playing / Won / TimedOut 状态机
//   - Frame 是某一时刻状态的纯数据描述，由宿主的渲染系统绘制
//
// 计时器、音频、对话框均通过接口注入，由 pkg/scenes 负责装配。
package mole

import "github.com/decker502/whackamole/pkg/config"

// Rect 洞口包围盒（正方形）
type Rect struct {
	X    int // 左上角 X 坐标
	Y    int // 左上角 Y 坐标
	Size int // 边长（等于洞口直径）
}

// Contains 判断点是否位于包围盒内（含边界）
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x <= r.X+r.Size &&
		y >= r.Y && y <= r.Y+r.Size
}

// Center 返回包围盒中心坐标
func (r Rect) Center() (float64, float64) {
	half := float64(r.Size) / 2
	return float64(r.X) + half, float64(r.Y) + half
}

// Board 洞口布局
// 在启动时计算一次，之后不再修改
type Board struct {
	holes []Rect
}

// NewBoard 根据 config 中的窗口与网格常量创建洞口布局
func NewBoard() *Board {
	holes := make([]Rect, config.HoleCount)
	for i := range holes {
		x, y := config.HolePosition(i)
		holes[i] = Rect{X: x, Y: y, Size: config.HoleDiameter}
	}
	return &Board{holes: holes}
}

// Len 返回洞口数量
func (b *Board) Len() int {
	return len(b.holes)
}

// Hole 返回第 index 个洞口的包围盒
func (b *Board) Hole(index int) Rect {
	return b.holes[index]
}

// Holes 返回所有洞口包围盒的副本
func (b *Board) Holes() []Rect {
	holes := make([]Rect, len(b.holes))
	copy(holes, b.holes)
	return holes
}
