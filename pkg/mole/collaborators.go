package mole

import "time"

// SoundID 音频资源ID，与 assets/config/resources.yaml 中的 id 一一对应
type SoundID string

const (
	SoundMusic SoundID = "SOUND_MUSIC" // 背景音乐（循环）
	SoundHit   SoundID = "SOUND_HIT"   // 打中地鼠
	SoundTrap  SoundID = "SOUND_TRAP"  // 打中陷阱
	SoundWin   SoundID = "SOUND_WIN"   // 获胜
	SoundLose  SoundID = "SOUND_LOSE"  // 超时失败
)

// Audio 音频播放器
// 资源缺失或音频设备不可用时实现应静默忽略
type Audio interface {
	PlayLooping(id SoundID)
	PlayOnce(id SoundID)
}

// Outcome 一局结束的结果
type Outcome struct {
	Phase Phase // PhaseWon 或 PhaseTimedOut
	Score int   // 结束时的得分
}

// Announcer 负责向玩家展示一局的结果（如胜负对话框）
type Announcer interface {
	Announce(outcome Outcome)
}

// Task 可取消的周期任务
type Task interface {
	Start()
	Stop()
	Running() bool
}

// Scheduler 周期任务调度器
// Every 只注册任务，不会自动启动；回调必须在调用方的线程上串行执行
type Scheduler interface {
	Every(name string, period time.Duration, fn func()) Task
}

// NopAudio 不播放任何声音
type NopAudio struct{}

func (NopAudio) PlayLooping(SoundID) {}
func (NopAudio) PlayOnce(SoundID)    {}

// NopAnnouncer 丢弃所有结果
type NopAnnouncer struct{}

func (NopAnnouncer) Announce(Outcome) {}

// manualTask 只记录运行状态，由调用方手动触发回调
type manualTask struct {
	running bool
}

func (t *manualTask) Start()        { t.running = true }
func (t *manualTask) Stop()         { t.running = false }
func (t *manualTask) Running() bool { return t.running }

// ManualScheduler 不会自动触发任何回调的调度器
// 适用于由调用方直接调用 OnSpawnTick / OnCountdownTick 的场景
type ManualScheduler struct{}

// Every 返回一个仅记录状态的任务
func (ManualScheduler) Every(string, time.Duration, func()) Task {
	return &manualTask{}
}
