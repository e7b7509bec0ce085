package systems

// SequenceRand 按固定序列返回随机数的 RandSource
//
// 序列用尽后循环回到开头。用于在测试和回放中锁定生成结果，
// 也被 pkg/game 的测试复用。
type SequenceRand struct {
	values []float64
	next   int
}

// NewSequenceRand 创建固定序列随机源
// values 为空时始终返回 0
func NewSequenceRand(values ...float64) *SequenceRand {
	return &SequenceRand{values: values}
}

// Float64 返回序列中的下一个值
func (r *SequenceRand) Float64() float64 {
	if len(r.values) == 0 {
		return 0
	}
	v := r.values[r.next%len(r.values)]
	r.next++
	return v
}

// Calls 返回已消耗的随机数个数
func (r *SequenceRand) Calls() int {
	return r.next
}
