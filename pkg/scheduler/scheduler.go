// Package scheduler 提供由帧时间驱动的延时回调与周期任务
//
// 游戏主循环每帧调用 Advance(dt)，到期的回调按到期时间依次执行，
// 到期时间相同的按登记顺序执行。所有回调都在调用 Advance 的协程中运行，
// 因此回调之间不需要加锁。
package scheduler

import (
	"container/heap"
	"math/rand"
	"time"
)

// MinDelay 最小延迟，避免零间隔的周期任务在一次 Advance 中无限执行
const MinDelay = time.Millisecond

// TaskID 任务标识，周期任务在整个生命周期内保持同一个 ID
type TaskID uint64

// ActiveFunc 周期任务的存活判断；返回 false 时任务链结束
type ActiveFunc func() bool

type task struct {
	id    TaskID
	due   time.Duration
	seq   uint64
	run   func()
	index int
}

// Scheduler 基于游戏时间的任务调度器
type Scheduler struct {
	now      time.Duration
	nextID   TaskID
	seq      uint64
	queue    taskQueue
	live     map[TaskID]*task    // 队列中的任务
	periodic map[TaskID]struct{} // 仍在运行的周期任务
	stopped  map[TaskID]struct{} // 已取消但回调可能正在执行的周期任务
}

// New 创建调度器，游戏时间从 0 开始
func New() *Scheduler {
	return &Scheduler{
		nextID:   1,
		live:     make(map[TaskID]*task),
		periodic: make(map[TaskID]struct{}),
		stopped:  make(map[TaskID]struct{}),
	}
}

// Now 返回当前游戏时间（所有 Advance 的累计）
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Pending 返回等待执行的任务数
func (s *Scheduler) Pending() int {
	return len(s.queue)
}

// After 登记一次性回调，delay 后执行
func (s *Scheduler) After(delay time.Duration, fn func()) TaskID {
	id := s.allocID()
	s.push(id, delay, fn)
	return id
}

// Every 登记周期任务
//
// 每次执行前以及重新登记前都会调用 active；active 为 nil 表示永远存活。
// 第一次执行发生在 interval 之后。
func (s *Scheduler) Every(interval time.Duration, active ActiveFunc, fn func()) TaskID {
	return s.EveryFunc(func() time.Duration { return interval }, active, fn)
}

// EveryRandom 登记周期任务，每次间隔在 [minDelay, maxDelay] 内按毫秒均匀随机
func (s *Scheduler) EveryRandom(minDelay, maxDelay time.Duration, rng *rand.Rand, active ActiveFunc, fn func()) TaskID {
	return s.EveryFunc(func() time.Duration {
		return RandomDelay(rng, minDelay, maxDelay)
	}, active, fn)
}

// EveryFunc 登记周期任务，每次的间隔由 next 给出
func (s *Scheduler) EveryFunc(next func() time.Duration, active ActiveFunc, fn func()) TaskID {
	id := s.allocID()

	alive := func() bool { return active == nil || active() }

	var tick func()
	tick = func() {
		if s.isStopped(id) || !alive() {
			s.finish(id)
			return
		}
		fn()
		if s.isStopped(id) || !alive() {
			s.finish(id)
			return
		}
		s.push(id, next(), tick)
	}

	s.periodic[id] = struct{}{}
	s.push(id, next(), tick)
	return id
}

// Cancel 取消任务；对已完成或未知的任务无效果
// 在周期任务自己的回调中调用同样有效：本次执行结束后不再登记下一次
func (s *Scheduler) Cancel(id TaskID) {
	if t, ok := s.live[id]; ok {
		heap.Remove(&s.queue, t.index)
		delete(s.live, id)
		s.finish(id)
		return
	}
	if _, ok := s.periodic[id]; ok {
		s.stopped[id] = struct{}{}
	}
}

// Advance 推进游戏时间并执行所有到期回调
func (s *Scheduler) Advance(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	target := s.now + dt

	for len(s.queue) > 0 {
		next := s.queue[0]
		if next.due > target {
			break
		}
		heap.Pop(&s.queue)
		delete(s.live, next.id)
		s.now = next.due
		next.run()
	}

	s.now = target
}

func (s *Scheduler) allocID() TaskID {
	id := s.nextID
	s.nextID++
	return id
}

func (s *Scheduler) push(id TaskID, delay time.Duration, fn func()) {
	if delay < MinDelay {
		delay = MinDelay
	}
	s.seq++
	t := &task{id: id, due: s.now + delay, seq: s.seq, run: fn}
	heap.Push(&s.queue, t)
	s.live[id] = t
}

func (s *Scheduler) isStopped(id TaskID) bool {
	_, ok := s.stopped[id]
	return ok
}

func (s *Scheduler) finish(id TaskID) {
	delete(s.periodic, id)
	delete(s.stopped, id)
}
