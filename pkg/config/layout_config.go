package config

// 布局配置常量
// 本文件定义了窗口尺寸与洞口网格的布局参数
// 所有坐标均为窗口本地像素坐标（左上角为原点）

// Window Configuration (窗口配置)
const (
	// GameWindowWidth 是游戏窗口的逻辑宽度（像素）
	GameWindowWidth = 800

	// GameWindowHeight 是游戏窗口的逻辑高度（像素）
	GameWindowHeight = 600

	// GameWindowTitle 是窗口标题
	GameWindowTitle = "Whack-a-Mole"
)

// Board Configuration (洞口网格配置)
// 洞口按 BoardColumns 列排布，行数由 HoleCount / BoardColumns 决定
const (
	// HoleCount 是洞口总数
	HoleCount = 6

	// BoardColumns 是洞口网格的列数
	BoardColumns = 3

	// BoardRows 是洞口网格的行数
	BoardRows = HoleCount / BoardColumns

	// BoardMargin 是网格与窗口边缘的距离（像素）
	BoardMargin = 50

	// HoleDiameter 是洞口直径，同时也是命中判定正方形的边长
	HoleDiameter = 80

	// CellWidth 是每个格子的宽度：(800 - 2*50) / 3 = 233
	CellWidth = (GameWindowWidth - 2*BoardMargin) / BoardColumns

	// CellHeight 是每个格子的高度：(600 - 2*50) / 2 = 250
	CellHeight = (GameWindowHeight - 2*BoardMargin) / BoardRows
)

// HolePosition 返回第 index 个洞口包围盒的左上角坐标
// 洞口居中放置在所属格子内
//
// 参数：
//   - index: 洞口索引（0-based，按行优先排列）
//
// 返回：
//   - x, y: 包围盒左上角的窗口坐标
func HolePosition(index int) (x, y int) {
	row := index / BoardColumns
	col := index % BoardColumns
	x = BoardMargin + col*CellWidth + CellWidth/2 - HoleDiameter/2
	y = BoardMargin + row*CellHeight + CellHeight/2 - HoleDiameter/2
	return x, y
}
