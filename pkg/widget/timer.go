package widget

import "time"

// DebounceTimer 至多一个待执行任务的延迟计时器
//
// 计时由 Advance 推进（每帧由 Update 调用），不使用 goroutine。
// 重新调度会先取消尚未触发的旧任务（后写者胜）。
type DebounceTimer struct {
	target  time.Duration // 目标时间
	elapsed time.Duration // 已过时间
	task    func()
}

// Schedule 在 delay 之后执行 fn，取消之前的待执行任务
// 返回是否有旧任务被取消
func (t *DebounceTimer) Schedule(delay time.Duration, fn func()) bool {
	cancelled := t.Cancel()
	t.target = delay
	t.elapsed = 0
	t.task = fn
	return cancelled
}

// Cancel 取消待执行任务，返回是否确实取消了一个任务
func (t *DebounceTimer) Cancel() bool {
	if t.task == nil {
		return false
	}
	t.task = nil
	t.elapsed = 0
	return true
}

// Pending 是否有待执行任务
func (t *DebounceTimer) Pending() bool {
	return t.task != nil
}

// Advance 推进计时，到期则执行任务
// 任务在执行前被清除，因此任务内部可以再次调度
func (t *DebounceTimer) Advance(dt time.Duration) {
	if t.task == nil {
		return
	}
	t.elapsed += dt
	if t.elapsed < t.target {
		return
	}
	task := t.task
	t.task = nil
	t.elapsed = 0
	task()
}
