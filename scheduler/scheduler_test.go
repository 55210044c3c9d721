package scheduler

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestFakeAfterFunc(t *testing.T) {
	t.Run("Happy path - fires once at deadline", func(t *testing.T) {
		f := NewFake()
		calls := 0
		f.AfterFunc(800*time.Millisecond, func() { calls++ })

		f.Advance(799 * time.Millisecond)
		assert.Equal(t, 0, calls, "Should not fire before the deadline")

		f.Advance(time.Millisecond)
		assert.Equal(t, 1, calls, "Should fire at the deadline")

		f.Advance(time.Hour)
		assert.Equal(t, 1, calls, "Should fire only once")
		assert.Equal(t, 0, f.Pending())
	})

	t.Run("Unhappy path - stopped timer never fires", func(t *testing.T) {
		f := NewFake()
		calls := 0
		timer := f.AfterFunc(time.Second, func() { calls++ })

		assert.True(t, timer.Stop(), "First stop should report a pending run")
		assert.False(t, timer.Stop(), "Second stop should be a no-op")

		f.Advance(2 * time.Second)
		assert.Equal(t, 0, calls)
	})
}

func TestFakeEvery(t *testing.T) {
	f := NewFake()
	ticks := 0
	timer := f.Every(time.Second, func() { ticks++ })

	f.Advance(3500 * time.Millisecond)
	assert.Equal(t, 3, ticks)

	timer.Stop()
	f.Advance(10 * time.Second)
	assert.Equal(t, 3, ticks, "Stopped ticker should not tick")
}

func TestFakeOrdering(t *testing.T) {
	f := NewFake()
	var order []string
	f.AfterFunc(2*time.Second, func() { order = append(order, "late") })
	f.AfterFunc(time.Second, func() { order = append(order, "early") })
	f.Every(1500*time.Millisecond, func() { order = append(order, "tick") })

	f.Advance(3 * time.Second)
	assert.Equal(t, []string{"early", "tick", "late", "tick"}, order)
}

func TestRealEveryStops(t *testing.T) {
	var ticks atomic.Int32
	timer := Real().Every(5*time.Millisecond, func() { ticks.Add(1) })

	assert.Eventually(t, func() bool { return ticks.Load() >= 2 }, time.Second, time.Millisecond)
	assert.True(t, timer.Stop())
	assert.False(t, timer.Stop())
}

func TestRealAfterFunc(t *testing.T) {
	done := make(chan struct{})
	Real().AfterFunc(time.Millisecond, func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("callback did not run")
	}
}

func TestFakeNow(t *testing.T) {
	f := NewFake()
	start := f.Now()

	var seen time.Time
	f.AfterFunc(90*time.Second, func() { seen = f.Now() })
	f.Advance(2 * time.Minute)

	assert.Equal(t, 90*time.Second, seen.Sub(start), "Callbacks see their own deadline")
	assert.Equal(t, 2*time.Minute, f.Now().Sub(start))
}
