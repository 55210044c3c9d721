package controllers

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/alex-pricope/feedback-arcade/logging"
	"github.com/alex-pricope/feedback-arcade/scheduler"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingCloser struct {
	closed atomic.Int32
}

func (c *countingCloser) Close() {
	c.closed.Add(1)
}

func TestRegistryEvictIdle(t *testing.T) {
	logging.Log = logrus.New()

	t.Run("Happy path - idle sessions are closed and dropped", func(t *testing.T) {
		clock := scheduler.NewFake()
		r := newRegistry[*countingCloser]("TEST")
		r.evictIdle(clock, 10*time.Minute, time.Minute)
		t.Cleanup(r.closeAll)

		idle, busy := &countingCloser{}, &countingCloser{}
		idleID, err := r.add(idle)
		require.NoError(t, err)
		busyID, err := r.add(busy)
		require.NoError(t, err)

		for i := 0; i < 9; i++ {
			clock.Advance(time.Minute)
			_, ok := r.get(busyID)
			require.True(t, ok)
		}
		assert.Equal(t, 2, r.size(), "Nothing is evicted before the timeout")

		clock.Advance(time.Minute)
		_, ok := r.get(idleID)
		assert.False(t, ok, "Untouched session is evicted at the timeout")
		assert.Equal(t, int32(1), idle.closed.Load())

		_, ok = r.get(busyID)
		assert.True(t, ok, "Recently used session survives")
		assert.Zero(t, busy.closed.Load())
	})

	t.Run("Happy path - close all stops the sweep", func(t *testing.T) {
		clock := scheduler.NewFake()
		r := newRegistry[*countingCloser]("TEST")
		r.evictIdle(clock, time.Minute, time.Second)
		require.Equal(t, 1, clock.Pending())

		c := &countingCloser{}
		_, err := r.add(c)
		require.NoError(t, err)

		r.closeAll()
		assert.Equal(t, 0, clock.Pending())
		assert.Equal(t, int32(1), c.closed.Load())
		assert.Equal(t, 0, r.size())
	})

	t.Run("Unhappy path - non-positive timeout disables eviction", func(t *testing.T) {
		clock := scheduler.NewFake()
		r := newRegistry[*countingCloser]("TEST")
		r.evictIdle(clock, 0, time.Minute)
		assert.Equal(t, 0, clock.Pending())

		id, err := r.add(&countingCloser{})
		require.NoError(t, err)
		clock.Advance(24 * time.Hour)
		_, ok := r.get(id)
		assert.True(t, ok)
		r.closeAll()
	})
}
