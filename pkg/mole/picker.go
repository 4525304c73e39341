package mole

import "math/rand"

// Picker 目标随机选择器
// 每次调用独立地选择一个洞口索引和目标类型，允许与上一次结果重复
type Picker interface {
	Pick() (index int, trap bool)
}

// PickerFunc 将普通函数适配为 Picker
type PickerFunc func() (int, bool)

// Pick 实现 Picker 接口
func (f PickerFunc) Pick() (int, bool) {
	return f()
}

// RandomPicker 基于 math/rand 的均匀随机选择器
type RandomPicker struct {
	rng   *rand.Rand
	holes int
}

// NewRandomPicker 创建随机选择器
//
// 参数：
//   - seed: 随机种子，相同种子产生相同序列（便于测试复现）
//   - holes: 洞口数量，索引范围为 [0, holes)
func NewRandomPicker(seed int64, holes int) *RandomPicker {
	return &RandomPicker{
		rng:   rand.New(rand.NewSource(seed)),
		holes: holes,
	}
}

// Pick 均匀选择洞口索引，并以 1/2 概率选择陷阱
func (p *RandomPicker) Pick() (int, bool) {
	index := p.rng.Intn(p.holes)
	trap := p.rng.Intn(2) == 1
	return index, trap
}
