// Package sched runs the app's simulated delays as explicit one-shot
// tasks with cancellation handles, so a view that closes before its timer
// fires can withdraw the effect instead of applying it stale.
package sched

import (
	"sync"
	"time"
)

// Task is a scheduled one-shot function. It either fires once or is
// cancelled; there is no retry and no rescheduling.
type Task struct {
	mu    sync.Mutex
	owner *Scheduler
	timer *time.Timer
	done  bool
}

// Cancel stops the task if it has not fired yet and reports whether it
// did. Cancelling a fired or already-cancelled task is a no-op.
func (t *Task) Cancel() bool {
	t.mu.Lock()
	if t.done {
		t.mu.Unlock()
		return false
	}
	t.done = true
	if t.timer != nil {
		t.timer.Stop()
	}
	t.mu.Unlock()

	if t.owner != nil {
		t.owner.forget(t)
	}
	return true
}

// finish claims the right to run the task body; it loses the race
// against Cancel exactly once.
func (t *Task) finish() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.done {
		return false
	}
	t.done = true
	return true
}

// Scheduler owns outstanding tasks so they can be cancelled in bulk when
// their owner goes away.
type Scheduler struct {
	mu      sync.Mutex
	tasks   map[*Task]struct{}
	stopped bool
}

// New returns an empty scheduler.
func New() *Scheduler {
	return &Scheduler{tasks: make(map[*Task]struct{})}
}

// After schedules fn to run once after d. The returned handle cancels
// just this task; a stopped scheduler returns an already-cancelled task
// and never runs fn.
func (s *Scheduler) After(d time.Duration, fn func()) *Task {
	t := &Task{owner: s}

	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		t.done = true
		return t
	}
	s.tasks[t] = struct{}{}
	s.mu.Unlock()

	t.mu.Lock()
	t.timer = time.AfterFunc(d, func() {
		if !t.finish() {
			return
		}
		s.forget(t)
		fn()
	})
	t.mu.Unlock()
	return t
}

// Stop cancels every outstanding task. The scheduler accepts no new work
// afterwards.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	s.stopped = true
	tasks := make([]*Task, 0, len(s.tasks))
	for t := range s.tasks {
		tasks = append(tasks, t)
	}
	s.tasks = make(map[*Task]struct{})
	s.mu.Unlock()

	for _, t := range tasks {
		t.Cancel()
	}
}

// Pending reports how many tasks are scheduled but not yet fired or
// cancelled.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

func (s *Scheduler) forget(t *Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tasks, t)
}
