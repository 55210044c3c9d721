package controllers

import (
	"sync"
	"time"

	"github.com/alex-pricope/feedback-arcade/logging"
	"github.com/alex-pricope/feedback-arcade/scheduler"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const sessionIDAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// closer is anything that owns timers to release when dropped.
type closer interface {
	Close()
}

type entry[T closer] struct {
	item    T
	touched time.Time
}

// registry keeps live sessions in memory by id. Sessions nobody has asked
// for within the idle timeout are closed by a periodic sweep.
type registry[T closer] struct {
	name  string
	mu    sync.Mutex
	items map[string]*entry[T]
	now   func() time.Time

	sweeper scheduler.Timer
}

func newRegistry[T closer](name string) *registry[T] {
	return &registry[T]{
		name:  name,
		items: make(map[string]*entry[T]),
		now:   time.Now,
	}
}

func (r *registry[T]) add(item T) (string, error) {
	id, err := gonanoid.Generate(sessionIDAlphabet, 12)
	if err != nil {
		logging.Log.Errorf("failed to generate session id: %v", err)
		return "", err
	}
	r.mu.Lock()
	r.items[id] = &entry[T]{item: item, touched: r.now()}
	r.mu.Unlock()
	return id, nil
}

// get returns the session and marks it as used.
func (r *registry[T]) get(id string) (T, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.items[id]
	if !ok {
		var zero T
		return zero, false
	}
	e.touched = r.now()
	return e.item, true
}

func (r *registry[T]) remove(id string) bool {
	r.mu.Lock()
	e, ok := r.items[id]
	delete(r.items, id)
	r.mu.Unlock()
	if ok {
		e.item.Close()
	}
	return ok
}

func (r *registry[T]) size() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}

// evictIdle sweeps every interval and closes sessions idle for at least
// ttl, timed by sched. A non-positive ttl or interval disables eviction.
func (r *registry[T]) evictIdle(sched scheduler.Scheduler, ttl, interval time.Duration) {
	if ttl <= 0 || interval <= 0 {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.sweeper != nil {
		r.sweeper.Stop()
	}
	r.now = sched.Now
	r.sweeper = sched.Every(interval, func() { r.sweep(ttl) })
}

func (r *registry[T]) sweep(ttl time.Duration) {
	r.mu.Lock()
	now := r.now()
	var idle []T
	for id, e := range r.items {
		if now.Sub(e.touched) >= ttl {
			idle = append(idle, e.item)
			delete(r.items, id)
		}
	}
	r.mu.Unlock()

	for _, item := range idle {
		item.Close()
	}
	if len(idle) > 0 {
		logging.Log.Infof("%s: evicted %d idle sessions", r.name, len(idle))
	}
}

func (r *registry[T]) closeAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.sweeper != nil {
		r.sweeper.Stop()
		r.sweeper = nil
	}
	for id, e := range r.items {
		e.item.Close()
		delete(r.items, id)
	}
}
