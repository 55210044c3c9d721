package scheduler

import (
	"sort"
	"sync"
	"time"
)

// Fake is a Scheduler driven by Advance instead of the wall clock.
// Callbacks run on the goroutine that calls Advance.
type Fake struct {
	mu     sync.Mutex
	epoch  time.Time
	now    time.Duration
	seq    int
	timers []*fakeTimer
}

func NewFake() *Fake {
	return &Fake{epoch: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
}

// Now is a fixed epoch plus everything passed to Advance so far.
func (f *Fake) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.epoch.Add(f.now)
}

type fakeTimer struct {
	fake   *Fake
	seq    int
	at     time.Duration
	period time.Duration
	f      func()
	active bool
}

func (t *fakeTimer) Stop() bool {
	t.fake.mu.Lock()
	defer t.fake.mu.Unlock()
	was := t.active
	t.active = false
	return was
}

func (f *Fake) AfterFunc(d time.Duration, fn func()) Timer {
	return f.add(d, 0, fn)
}

func (f *Fake) Every(d time.Duration, fn func()) Timer {
	return f.add(d, d, fn)
}

func (f *Fake) add(d, period time.Duration, fn func()) *fakeTimer {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	t := &fakeTimer{fake: f, seq: f.seq, at: f.now + d, period: period, f: fn, active: true}
	f.timers = append(f.timers, t)
	return t
}

// Advance moves the clock forward by d and runs every callback that falls
// due, in deadline order.
func (f *Fake) Advance(d time.Duration) {
	f.mu.Lock()
	target := f.now + d
	f.mu.Unlock()

	for {
		f.mu.Lock()
		next := f.nextDue(target)
		if next == nil {
			f.now = target
			f.prune()
			f.mu.Unlock()
			return
		}
		f.now = next.at
		if next.period > 0 {
			next.at += next.period
		} else {
			next.active = false
		}
		fn := next.f
		f.mu.Unlock()

		fn()
	}
}

func (f *Fake) nextDue(target time.Duration) *fakeTimer {
	var due []*fakeTimer
	for _, t := range f.timers {
		if t.active && t.at <= target {
			due = append(due, t)
		}
	}
	if len(due) == 0 {
		return nil
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].at == due[j].at {
			return due[i].seq < due[j].seq
		}
		return due[i].at < due[j].at
	})
	return due[0]
}

func (f *Fake) prune() {
	kept := f.timers[:0]
	for _, t := range f.timers {
		if t.active {
			kept = append(kept, t)
		}
	}
	f.timers = kept
}

// Pending returns how many callbacks are still scheduled.
func (f *Fake) Pending() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, t := range f.timers {
		if t.active {
			n++
		}
	}
	return n
}
