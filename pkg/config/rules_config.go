package config

import "time"

// 游戏规则常量
// 规则固定，不提供难度配置

const (
	// RoundTimeLimit 是每局的时间限制（秒）
	RoundTimeLimit = 60

	// WinScore 是获胜所需的得分，得分达到或超过该值即获胜
	WinScore = 10

	// SpawnInterval 是目标重新随机位置的周期
	SpawnInterval = 500 * time.Millisecond

	// CountdownInterval 是倒计时减一秒的周期
	CountdownInterval = time.Second

	// MaxDeltaTime 是单帧允许推进的最大时间（秒）
	// 窗口拖动或卡顿后避免计时器一次性触发过多次
	MaxDeltaTime = 0.25
)
