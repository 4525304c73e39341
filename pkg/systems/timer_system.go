package systems

import (
	"log"
	"time"

	"github.com/decker502/whackamole/pkg/components"
	"github.com/decker502/whackamole/pkg/ecs"
	"github.com/decker502/whackamole/pkg/mole"
)

// fireEpsilon 浮点累加误差容忍度，避免 60 帧 * (1/60) 秒略小于 1 秒时延后一帧
const fireEpsilon = 1e-9

// TimerSystem 周期计时器系统
//
// 职责：
//   - 实现 mole.Scheduler，每个周期任务是一个带 TimerComponent 的实体
//   - 每帧由场景调用 Update(deltaTime)，查询并推进所有运行中的计时器实体
//
// 所有回调都在调用 Update 的线程上按注册顺序（实体ID升序）串行执行，无需加锁。
type TimerSystem struct {
	entityManager *ecs.EntityManager
	updating      bool
}

// NewTimerSystem 创建计时器系统
func NewTimerSystem(em *ecs.EntityManager) *TimerSystem {
	return &TimerSystem{
		entityManager: em,
	}
}

// Every 创建计时器实体（不会自动启动）
//
// 参数：
//   - name: 计时器名称（用于日志）
//   - period: 周期，必须大于 0
//   - fn: 每个周期调用一次的回调
//
// 返回：
//   - mole.Task: 可启动/停止的任务句柄
func (s *TimerSystem) Every(name string, period time.Duration, fn func()) mole.Task {
	if period <= 0 {
		log.Printf("[TimerSystem] Warning: timer %s has non-positive period %v, using 1 frame", name, period)
		period = time.Second / 60
	}

	id := s.entityManager.CreateEntity()
	ecs.AddComponent(s.entityManager, id, &components.TimerComponent{
		Name:       name,
		TargetTime: period.Seconds(),
		OnFire:     fn,
	})
	log.Printf("[TimerSystem] Timer %s registered as entity %d (period %v)", name, id, period)

	return &timerTask{system: s, id: id}
}

// Update 推进所有运行中的计时器
// 一次 Update 中经过多个周期时，回调会被调用多次
func (s *TimerSystem) Update(deltaTime float64) {
	// 回调中可能创建新的计时器实体，只处理本次 Update 开始时已存在的
	entities := ecs.GetEntitiesWith1[*components.TimerComponent](s.entityManager)

	s.updating = true
	defer func() {
		s.updating = false
		for _, id := range entities {
			if timer, ok := ecs.GetComponent[*components.TimerComponent](s.entityManager, id); ok {
				timer.ArmedThisUpdate = false
			}
		}
	}()

	for _, id := range entities {
		timer, ok := ecs.GetComponent[*components.TimerComponent](s.entityManager, id)
		if !ok || !timer.IsRunning || timer.ArmedThisUpdate {
			continue
		}

		timer.CurrentTime += deltaTime
		for timer.IsRunning && timer.CurrentTime+fireEpsilon >= timer.TargetTime {
			timer.CurrentTime -= timer.TargetTime
			if timer.OnFire != nil {
				timer.OnFire()
			}
			// 回调中被重新启动，已从 0 重新计时
			if timer.ArmedThisUpdate {
				break
			}
		}
	}
}

// timerTask 将计时器实体适配为 mole.Task
type timerTask struct {
	system *TimerSystem
	id     ecs.EntityID
}

func (t *timerTask) timer() (*components.TimerComponent, bool) {
	return ecs.GetComponent[*components.TimerComponent](t.system.entityManager, t.id)
}

// Start 从 0 开始计时
func (t *timerTask) Start() {
	timer, ok := t.timer()
	if !ok {
		return
	}
	timer.CurrentTime = 0
	timer.IsRunning = true
	timer.ArmedThisUpdate = t.system.updating
}

// Stop 立即停止，之后不会再触发回调
func (t *timerTask) Stop() {
	if timer, ok := t.timer(); ok {
		timer.IsRunning = false
	}
}

// Running 返回是否运行中
func (t *timerTask) Running() bool {
	timer, ok := t.timer()
	return ok && timer.IsRunning
}
