package mole

import "time"

// recordingAudio 记录所有播放请求
type recordingAudio struct {
	looping []SoundID
	once    []SoundID
}

func (a *recordingAudio) PlayLooping(id SoundID) { a.looping = append(a.looping, id) }
func (a *recordingAudio) PlayOnce(id SoundID)    { a.once = append(a.once, id) }

func (a *recordingAudio) countOnce(id SoundID) int {
	n := 0
	for _, s := range a.once {
		if s == id {
			n++
		}
	}
	return n
}

// fakeTask 记录启动与停止次数
type fakeTask struct {
	name    string
	period  time.Duration
	fn      func()
	running bool
	starts  int
	stops   int
}

func (t *fakeTask) Start()        { t.running = true; t.starts++ }
func (t *fakeTask) Stop()         { t.running = false; t.stops++ }
func (t *fakeTask) Running() bool { return t.running }

// fakeScheduler 保存注册的任务，测试中手动触发
type fakeScheduler struct {
	tasks map[string]*fakeTask
}

func newFakeScheduler() *fakeScheduler {
	return &fakeScheduler{tasks: make(map[string]*fakeTask)}
}

func (s *fakeScheduler) Every(name string, period time.Duration, fn func()) Task {
	t := &fakeTask{name: name, period: period, fn: fn}
	s.tasks[name] = t
	return t
}

// announcement 记录结果展示时刻的控制器状态
type announcement struct {
	outcome Outcome
	phase   Phase
	round   Round
}

type spyAnnouncer struct {
	controller *Controller
	calls      []announcement
	onAnnounce func()
}

func (a *spyAnnouncer) Announce(o Outcome) {
	a.calls = append(a.calls, announcement{
		outcome: o,
		phase:   a.controller.Phase(),
		round:   a.controller.Round(),
	})
	if a.onAnnounce != nil {
		a.onAnnounce()
	}
}

// pick 一次选择结果
type pick struct {
	index int
	trap  bool
}

// scriptedPicker 按顺序循环返回预设结果
func scriptedPicker(picks ...pick) Picker {
	i := 0
	return PickerFunc(func() (int, bool) {
		p := picks[i%len(picks)]
		i++
		return p.index, p.trap
	})
}

// testRig 装配好所有假协作者的控制器
type testRig struct {
	controller *Controller
	scheduler  *fakeScheduler
	audio      *recordingAudio
	announcer  *spyAnnouncer
	redraws    int
}

func newTestRig(picker Picker) *testRig {
	rig := &testRig{
		scheduler: newFakeScheduler(),
		audio:     &recordingAudio{},
		announcer: &spyAnnouncer{},
	}
	rig.controller = NewController(Options{
		Picker:    picker,
		Scheduler: rig.scheduler,
		Audio:     rig.audio,
		Announcer: rig.announcer,
		OnRedraw:  func() { rig.redraws++ },
	})
	rig.announcer.controller = rig.controller
	return rig
}

// pressActive 在当前目标洞口中心按下
func (r *testRig) pressActive() bool {
	hole := r.controller.Board().Hole(r.controller.Round().ActiveIndex)
	cx, cy := hole.Center()
	return r.controller.OnPointerPress(int(cx), int(cy))
}
