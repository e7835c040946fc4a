package agent

import (
	"container/heap"
	"sync"
	"time"
)

// TaskQueue is a per-agent priority queue. Ordering is lexicographic on
// (-priority, created-at, sequence): higher-priority tasks pop first, ties
// break FIFO.
type TaskQueue struct {
	mu     sync.Mutex
	items  taskHeap
	nextSq uint64
	notify chan struct{} // capacity 1, signalled on push
}

// NewTaskQueue creates an empty queue.
func NewTaskQueue() *TaskQueue {
	return &TaskQueue{notify: make(chan struct{}, 1)}
}

// Push enqueues a task.
func (q *TaskQueue) Push(t *Task) {
	q.mu.Lock()
	q.nextSq++
	t.seq = q.nextSq
	heap.Push(&q.items, t)
	q.mu.Unlock()

	select {
	case q.notify <- struct{}{}:
	default:
	}
}

// Pop removes and returns the highest-priority task, or nil when empty.
func (q *TaskQueue) Pop() *Task {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.items) == 0 {
		return nil
	}
	return heap.Pop(&q.items).(*Task)
}

// PopBlocking waits up to timeout for a task. A non-positive timeout makes it
// equivalent to Pop.
func (q *TaskQueue) PopBlocking(timeout time.Duration) *Task {
	if t := q.Pop(); t != nil {
		return t
	}
	if timeout <= 0 {
		return nil
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()
	for {
		select {
		case <-q.notify:
			if t := q.Pop(); t != nil {
				return t
			}
		case <-timer.C:
			return q.Pop()
		}
	}
}

// Size returns the number of queued tasks.
func (q *TaskQueue) Size() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// taskHeap implements heap.Interface.
type taskHeap []*Task

func (h taskHeap) Len() int { return len(h) }

func (h taskHeap) Less(i, j int) bool {
	if h[i].Priority != h[j].Priority {
		return h[i].Priority > h[j].Priority
	}
	if !h[i].CreatedAt.Equal(h[j].CreatedAt) {
		return h[i].CreatedAt.Before(h[j].CreatedAt)
	}
	return h[i].seq < h[j].seq
}

func (h taskHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *taskHeap) Push(x any) { *h = append(*h, x.(*Task)) }

func (h *taskHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return t
}
