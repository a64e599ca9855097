package sched

import (
	"sync"
	"time"
)

// Task is a handle to a scheduled callback. Cancel is safe to call more than
// once and after the callback has fired.
type Task interface {
	Cancel()
}

// Scheduler runs a callback once after a delay. Implementations must allow
// the owner to cancel a task before it fires; a cancelled task never runs.
type Scheduler interface {
	After(d time.Duration, fn func()) Task
}

// DefaultScheduler implements Scheduler using the runtime timer wheel
type DefaultScheduler struct{}

// New creates a new DefaultScheduler
func New() *DefaultScheduler {
	return &DefaultScheduler{}
}

// After schedules fn to run once after d
func (s *DefaultScheduler) After(d time.Duration, fn func()) Task {
	return &timerTask{timer: time.AfterFunc(d, fn)}
}

type timerTask struct {
	timer *time.Timer
}

func (t *timerTask) Cancel() {
	t.timer.Stop()
}

// Manual is a Scheduler for tests. Tasks never fire on their own; the test
// drives them with Fire or FireAll.
type Manual struct {
	mu    sync.Mutex
	tasks []*manualTask
}

// NewManual creates a new Manual scheduler
func NewManual() *Manual {
	return &Manual{}
}

// After records fn as pending; it runs only when fired by the test
func (m *Manual) After(d time.Duration, fn func()) Task {
	m.mu.Lock()
	defer m.mu.Unlock()

	task := &manualTask{fn: fn, delay: d}
	m.tasks = append(m.tasks, task)
	return task
}

// Fire runs the oldest pending task that has not been cancelled. It returns
// false when nothing is pending.
func (m *Manual) Fire() bool {
	m.mu.Lock()
	var next *manualTask
	for len(m.tasks) > 0 {
		candidate := m.tasks[0]
		m.tasks = m.tasks[1:]
		if !candidate.cancelled() {
			next = candidate
			break
		}
	}
	m.mu.Unlock()

	if next == nil {
		return false
	}
	next.fn()
	return true
}

// FireAll fires pending tasks until none remain, including tasks scheduled
// by the tasks it fires
func (m *Manual) FireAll() {
	for m.Fire() {
	}
}

// Pending returns the number of tasks waiting to fire
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	count := 0
	for _, task := range m.tasks {
		if !task.cancelled() {
			count++
		}
	}
	return count
}

type manualTask struct {
	fn        func()
	delay     time.Duration
	mu        sync.Mutex
	cancelSet bool
}

func (t *manualTask) Cancel() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cancelSet = true
}

func (t *manualTask) cancelled() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cancelSet
}
