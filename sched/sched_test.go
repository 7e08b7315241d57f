package sched

import (
	"testing"
	"time"
)

func TestAfter_FiresOnce(t *testing.T) {
	s := New()
	fired := make(chan struct{})

	s.After(5*time.Millisecond, func() { close(fired) })

	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("task did not fire")
	}

	// A fired task leaves the scheduler.
	deadline := time.Now().Add(2 * time.Second)
	for s.Pending() != 0 {
		if time.Now().After(deadline) {
			t.Fatalf("Pending = %d, want 0", s.Pending())
		}
		time.Sleep(time.Millisecond)
	}
}

func TestCancel_BeforeFire(t *testing.T) {
	s := New()
	fired := make(chan struct{}, 1)

	task := s.After(50*time.Millisecond, func() { fired <- struct{}{} })
	if !task.Cancel() {
		t.Fatal("Cancel = false, want true for unfired task")
	}

	select {
	case <-fired:
		t.Fatal("cancelled task fired")
	case <-time.After(150 * time.Millisecond):
	}
	if got := s.Pending(); got != 0 {
		t.Fatalf("Pending = %d after cancel, want 0", got)
	}
}

func TestCancel_AfterFireIsNoop(t *testing.T) {
	s := New()
	fired := make(chan struct{})

	task := s.After(time.Millisecond, func() { close(fired) })
	<-fired

	if task.Cancel() {
		t.Fatal("Cancel = true on fired task, want false")
	}
	if task.Cancel() {
		t.Fatal("Cancel = true on second call, want false")
	}
}

func TestStop_CancelsOutstandingAndRefusesNewWork(t *testing.T) {
	s := New()
	fired := make(chan struct{}, 2)

	s.After(50*time.Millisecond, func() { fired <- struct{}{} })
	s.After(60*time.Millisecond, func() { fired <- struct{}{} })
	s.Stop()

	if got := s.Pending(); got != 0 {
		t.Fatalf("Pending = %d after Stop, want 0", got)
	}

	task := s.After(time.Millisecond, func() { fired <- struct{}{} })
	if task.Cancel() {
		t.Fatal("Cancel = true on task from stopped scheduler, want already-cancelled")
	}

	select {
	case <-fired:
		t.Fatal("task fired after Stop")
	case <-time.After(150 * time.Millisecond):
	}
}
