package config

import "image/color"

// UI 布局与配色相关的常量配置
// 包括背景渐变、HUD 文字位置、对话框尺寸和光标尺寸

// 背景配置
var (
	// BackgroundTopColor 背景渐变顶部颜色（黑色）
	BackgroundTopColor = color.RGBA{0, 0, 0, 255}

	// BackgroundBottomColor 背景渐变底部颜色（深灰）
	BackgroundBottomColor = color.RGBA{64, 64, 64, 255}

	// SpeckleColor 背景噪点颜色（白色）
	SpeckleColor = color.RGBA{255, 255, 255, 255}

	// HoleColor 洞口填充颜色（黑色）
	HoleColor = color.RGBA{0, 0, 0, 255}

	// HUDTextColor HUD 文字颜色（白色）
	HUDTextColor = color.RGBA{255, 255, 255, 255}
)

const (
	// SpeckleCount 每帧背景噪点数量
	SpeckleCount = 100

	// SpeckleLength 每个噪点竖线的长度（像素）
	SpeckleLength = 5
)

// HUD 配置
// 坐标为文字基线位置
const (
	HUDFontSize = 20.0

	ScoreTextX = 20
	ScoreTextY = 30

	TimeTextX = 560
	TimeTextY = 30
)

// 光标配置
const (
	// CursorSize 木槌光标缩放后的边长（像素），热点位于左上角
	CursorSize = 100
)

// 对话框配置
const (
	DialogWidth        = 420.0
	DialogHeight       = 180.0
	DialogTitleSize    = 24.0
	DialogMessageSize  = 18.0
	DialogButtonWidth  = 100.0
	DialogButtonHeight = 36.0
)

var (
	DialogOverlayColor    = color.RGBA{0, 0, 0, 128}
	DialogBackgroundColor = color.RGBA{48, 36, 24, 240}
	DialogBorderColor     = color.RGBA{200, 160, 80, 255}
	DialogTitleColor      = color.RGBA{255, 200, 0, 255}
	DialogButtonColor     = color.RGBA{90, 140, 60, 255}
)

// VolumeStep 按一次 +/- 键调整的音量
const VolumeStep = 0.1
