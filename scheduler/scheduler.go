// Package scheduler runs callbacks in the future, once or on a fixed period.
package scheduler

import (
	"sync"
	"time"
)

// Timer is a handle to a scheduled callback.
type Timer interface {
	// Stop cancels the callback. It reports whether the call stopped a
	// pending run; stopping twice is harmless.
	Stop() bool
}

type Scheduler interface {
	// AfterFunc calls f once, after d has elapsed.
	AfterFunc(d time.Duration, f func()) Timer
	// Every calls f every d until the returned Timer is stopped.
	Every(d time.Duration, f func()) Timer
	// Now is the scheduler's current time.
	Now() time.Time
}

// Real returns a Scheduler backed by the runtime timers.
func Real() Scheduler {
	return realScheduler{}
}

type realScheduler struct{}

func (realScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

func (realScheduler) Now() time.Time {
	return time.Now()
}

func (realScheduler) Every(d time.Duration, f func()) Timer {
	t := &ticker{
		ticker: time.NewTicker(d),
		done:   make(chan struct{}),
	}
	go t.run(f)
	return t
}

type ticker struct {
	ticker *time.Ticker
	done   chan struct{}
	once   sync.Once
}

func (t *ticker) run(f func()) {
	for {
		select {
		case <-t.done:
			return
		case <-t.ticker.C:
			f()
		}
	}
}

func (t *ticker) Stop() bool {
	stopped := false
	t.once.Do(func() {
		t.ticker.Stop()
		close(t.done)
		stopped = true
	})
	return stopped
}
