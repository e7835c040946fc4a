package agent

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskQueuePriorityOrdering(t *testing.T) {
	q := NewTaskQueue()

	low := NewTask(TaskThink, map[string]any{"n": 1}, PriorityLow)
	urgent := NewTask(TaskThink, map[string]any{"n": 2}, PriorityUrgent)
	normal := NewTask(TaskThink, map[string]any{"n": 3}, PriorityNormal)

	q.Push(low)
	q.Push(urgent)
	q.Push(normal)

	assert.Equal(t, urgent.ID, q.Pop().ID)
	assert.Equal(t, normal.ID, q.Pop().ID)
	assert.Equal(t, low.ID, q.Pop().ID)
	assert.Nil(t, q.Pop())
}

func TestTaskQueueFIFOWithinPriority(t *testing.T) {
	q := NewTaskQueue()

	created := time.Now()
	var tasks []*Task
	for i := 0; i < 5; i++ {
		task := NewTask(TaskThink, map[string]any{"n": i}, PriorityNormal)
		task.CreatedAt = created
		tasks = append(tasks, task)
		q.Push(task)
	}

	for i := 0; i < 5; i++ {
		got := q.Pop()
		require.NotNil(t, got)
		assert.Equal(t, tasks[i].ID, got.ID, "equal priority and timestamp must pop in push order")
	}
}

func TestTaskQueuePopBlocking(t *testing.T) {
	q := NewTaskQueue()

	start := time.Now()
	assert.Nil(t, q.PopBlocking(50*time.Millisecond))
	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)

	go func() {
		time.Sleep(20 * time.Millisecond)
		q.Push(NewTask(TaskThink, nil, PriorityNormal))
	}()
	got := q.PopBlocking(2 * time.Second)
	require.NotNil(t, got)
}

func TestTaskExpired(t *testing.T) {
	now := time.Now()
	task := NewTask(TaskThink, nil, PriorityNormal).WithDeadline(now.Add(-time.Minute))
	assert.True(t, task.Expired(now))

	fresh := NewTask(TaskThink, nil, PriorityNormal).WithDeadline(now.Add(time.Minute))
	assert.False(t, fresh.Expired(now))

	noDeadline := NewTask(TaskThink, nil, PriorityNormal)
	assert.False(t, noDeadline.Expired(now))
}
