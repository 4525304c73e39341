package mole

import (
	"log"

	"github.com/decker502/whackamole/pkg/config"
)

// Phase 游戏状态
type Phase int

const (
	// PhasePlaying 游戏进行中
	PhasePlaying Phase = iota
	// PhaseWon 得分达到获胜阈值
	PhaseWon
	// PhaseTimedOut 倒计时结束
	PhaseTimedOut
)

// String 返回状态名称（用于日志）
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "Playing"
	case PhaseWon:
		return "Won"
	case PhaseTimedOut:
		return "TimedOut"
	default:
		return "Unknown"
	}
}

// Round 单局状态
type Round struct {
	ActiveIndex   int  // 当前出现目标的洞口索引
	IsTrap        bool // 目标是否为陷阱
	Score         int  // 得分，可以为负数
	TimeRemaining int  // 剩余时间（秒）
}

// Options 创建 Controller 所需的协作者
// 所有字段均可为 nil：Board 默认按 config 常量创建，其余使用不产生副作用的默认实现
type Options struct {
	Board     *Board
	Picker    Picker
	Scheduler Scheduler
	Audio     Audio
	Announcer Announcer

	// OnRedraw 在每次状态变化需要重绘时调用
	OnRedraw func()
}

// Controller 游戏控制器
//
// 职责：
//   - 持有回合状态（得分、剩余时间、当前洞口、目标类型）
//   - 管理两个周期任务：刷新目标（SpawnInterval）与倒计时（CountdownInterval）
//   - 处理指针按下事件，判定命中并计分
//   - 在获胜或超时时停止计时、播放音效、展示结果，然后自动开始新的一局
//
// 所有方法都必须在同一个线程（游戏主循环）上调用。
type Controller struct {
	board     *Board
	picker    Picker
	audio     Audio
	announcer Announcer
	onRedraw  func()

	spawnTask     Task
	countdownTask Task

	round    Round
	phase    Phase
	revision uint64 // 每次请求重绘时递增
}

// NewController 创建控制器并注册两个周期任务
// 任务在 Start 被调用之前不会运行
func NewController(opts Options) *Controller {
	board := opts.Board
	if board == nil {
		board = NewBoard()
	}

	c := &Controller{
		board:     board,
		picker:    opts.Picker,
		audio:     opts.Audio,
		announcer: opts.Announcer,
		onRedraw:  opts.OnRedraw,
	}
	if c.picker == nil {
		c.picker = NewRandomPicker(1, board.Len())
	}
	if c.audio == nil {
		c.audio = NopAudio{}
	}
	if c.announcer == nil {
		c.announcer = NopAnnouncer{}
	}

	scheduler := opts.Scheduler
	if scheduler == nil {
		scheduler = ManualScheduler{}
	}
	c.spawnTask = scheduler.Every("spawn", config.SpawnInterval, c.OnSpawnTick)
	c.countdownTask = scheduler.Every("countdown", config.CountdownInterval, c.OnCountdownTick)

	return c
}

// Start 开始新的一局
// 重置得分与剩余时间，随机选择目标，启动两个周期任务并开始循环播放背景音乐
func (c *Controller) Start() {
	c.round.Score = 0
	c.round.TimeRemaining = config.RoundTimeLimit
	c.phase = PhasePlaying
	c.reroll()

	c.spawnTask.Start()
	c.countdownTask.Start()

	c.audio.PlayLooping(SoundMusic)

	log.Printf("[Controller] Round started: hole=%d trap=%v", c.round.ActiveIndex, c.round.IsTrap)
	c.redraw()
}

// OnSpawnTick 刷新目标：重新随机洞口与类型
func (c *Controller) OnSpawnTick() {
	c.reroll()
	c.redraw()
}

// OnCountdownTick 剩余时间减一秒，归零时本局以超时结束
func (c *Controller) OnCountdownTick() {
	c.round.TimeRemaining--
	if c.round.TimeRemaining <= 0 {
		c.round.TimeRemaining = 0
		c.finish(PhaseTimedOut, SoundLose)
		return
	}
	c.redraw()
}

// OnPointerPress 处理指针按下事件
//
// 参数：
//   - x, y: 窗口本地坐标
//
// 返回：
//   - bool: 是否命中当前目标
func (c *Controller) OnPointerPress(x, y int) bool {
	if c.phase != PhasePlaying {
		return false
	}

	if !c.board.Hole(c.round.ActiveIndex).Contains(x, y) {
		return false
	}

	if c.round.IsTrap {
		c.round.Score--
		c.audio.PlayOnce(SoundTrap)
	} else {
		c.round.Score++
		c.audio.PlayOnce(SoundHit)
	}

	if c.round.Score >= config.WinScore {
		c.finish(PhaseWon, SoundWin)
		return true
	}

	// 命中后立即移动目标，与周期刷新无关
	c.OnSpawnTick()
	return true
}

// finish 结束当前一局并自动开始下一局
func (c *Controller) finish(phase Phase, sound SoundID) {
	c.spawnTask.Stop()
	c.countdownTask.Stop()
	c.phase = phase

	log.Printf("[Controller] Round finished: %s (score: %d)", phase, c.round.Score)

	c.audio.PlayOnce(sound)
	c.announcer.Announce(Outcome{Phase: phase, Score: c.round.Score})

	c.Start()
}

// reroll 独立地重新选择洞口与目标类型
func (c *Controller) reroll() {
	index, trap := c.picker.Pick()
	if index < 0 || index >= c.board.Len() {
		log.Printf("[Controller] Warning: picker returned out of range hole %d, wrapping", index)
		index = ((index % c.board.Len()) + c.board.Len()) % c.board.Len()
	}
	c.round.ActiveIndex = index
	c.round.IsTrap = trap
}

func (c *Controller) redraw() {
	c.revision++
	if c.onRedraw != nil {
		c.onRedraw()
	}
}

// Round 返回当前回合状态的副本
func (c *Controller) Round() Round {
	return c.round
}

// Phase 返回当前游戏状态
func (c *Controller) Phase() Phase {
	return c.phase
}

// Board 返回洞口布局
func (c *Controller) Board() *Board {
	return c.board
}
