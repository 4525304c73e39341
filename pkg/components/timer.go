package components

// TimerComponent 通用周期计时器组件
// 用于"每隔 TargetTime 秒执行一次"的行为（如刷新目标、倒计时）
type TimerComponent struct {
	Name        string  // 计时器名称，如 "spawn", "countdown"
	TargetTime  float64 // 周期（秒）
	CurrentTime float64 // 本周期内已过时间（秒）
	IsRunning   bool    // 计时器是否运行中
	OnFire      func()  // 每个周期到达时调用

	// ArmedThisUpdate 标记计时器是在当前 Update 过程中被（重新）启动的
	// 被标记的计时器不累加本次 Update 剩余的时间
	ArmedThisUpdate bool
}
