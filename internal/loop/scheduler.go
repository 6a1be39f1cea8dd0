package loop

import (
	"sync"
	"time"
)

// Scheduler paces the game loop. Next blocks until the following tick is due
// and returns its timestamp; it returns false once the scheduler has been
// stopped, after which the loop performs no further state mutation.
type Scheduler interface {
	Next() (time.Time, bool)
	Stop()
}

// frameScheduler ticks at a fixed interval on the wall clock. Ticks are
// scheduled relative to the previous due time so a slow frame does not shift
// the whole cadence, but a frame overrunning its slot fires immediately.
type frameScheduler struct {
	interval time.Duration
	next     time.Time
	done     chan struct{}
	stopOnce sync.Once
}

// NewFrameScheduler creates a wall-clock scheduler with the given tick
// interval.
func NewFrameScheduler(interval time.Duration) Scheduler {
	return &frameScheduler{
		interval: interval,
		done:     make(chan struct{}),
	}
}

func (f *frameScheduler) Next() (time.Time, bool) {
	select {
	case <-f.done:
		return time.Time{}, false
	default:
	}

	now := time.Now()
	if f.next.IsZero() {
		f.next = now
		return now, true
	}

	f.next = f.next.Add(f.interval)
	wait := f.next.Sub(now)
	if wait <= 0 {
		f.next = now
		return now, true
	}

	timer := time.NewTimer(wait)
	defer timer.Stop()
	select {
	case <-f.done:
		return time.Time{}, false
	case due := <-timer.C:
		return due, true
	}
}

func (f *frameScheduler) Stop() {
	f.stopOnce.Do(func() {
		close(f.done)
	})
}
