package scheduler

import (
	"math/rand"
	"time"
)

// taskQueue 按 (due, seq) 排序的最小堆，实现 heap.Interface
type taskQueue []*task

func (q taskQueue) Len() int { return len(q) }

func (q taskQueue) Less(i, j int) bool {
	if q[i].due != q[j].due {
		return q[i].due < q[j].due
	}
	return q[i].seq < q[j].seq
}

func (q taskQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *taskQueue) Push(x any) {
	t := x.(*task)
	t.index = len(*q)
	*q = append(*q, t)
}

func (q *taskQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*q = old[:n-1]
	return t
}

// RandomDelay 返回 [minDelay, maxDelay] 内按毫秒均匀分布的随机延迟
func RandomDelay(rng *rand.Rand, minDelay, maxDelay time.Duration) time.Duration {
	if maxDelay <= minDelay {
		return minDelay
	}
	spanMs := int64((maxDelay - minDelay) / time.Millisecond)
	return minDelay + time.Duration(rng.Int63n(spanMs+1))*time.Millisecond
}
