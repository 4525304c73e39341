package mole

import (
	"fmt"
	"image/color"

	"github.com/decker502/whackamole/pkg/config"
)

// TargetKind 目标类型
type TargetKind int

const (
	TargetMole TargetKind = iota // 地鼠：命中加分
	TargetTrap                   // 陷阱：命中扣分
)

// Sprite 目标精灵的绘制命令
type Sprite struct {
	Kind TargetKind
	Rect Rect
}

// Text HUD 文字的绘制命令，坐标为基线位置
type Text struct {
	Content string
	X, Y    int
}

// Frame 一帧画面的完整描述
// 绘制顺序：背景 -> 洞口 -> 目标 -> 文字
type Frame struct {
	BackgroundTop    color.RGBA // 背景渐变顶部颜色
	BackgroundBottom color.RGBA // 背景渐变底部颜色
	SpeckleSeed      uint64     // 背景噪点种子，仅在重绘请求时变化
	Holes       []Rect
	Target      Sprite
	Score       Text
	Time        Text
}

// Frame 根据当前状态生成绘制命令，不修改任何状态
func (c *Controller) Frame() Frame {
	kind := TargetMole
	if c.round.IsTrap {
		kind = TargetTrap
	}

	return Frame{
		BackgroundTop:    config.BackgroundTopColor,
		BackgroundBottom: config.BackgroundBottomColor,
		SpeckleSeed:      c.revision,
		Holes:            c.board.Holes(),
		Target: Sprite{
			Kind: kind,
			Rect: c.board.Hole(c.round.ActiveIndex),
		},
		Score: Text{
			Content: fmt.Sprintf("Hits: %d", c.round.Score),
			X:       config.ScoreTextX,
			Y:       config.ScoreTextY,
		},
		Time: Text{
			Content: fmt.Sprintf("Time left: %ds", c.round.TimeRemaining),
			X:       config.TimeTextX,
			Y:       config.TimeTextY,
		},
	}
}
