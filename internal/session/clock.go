package session

import (
	"sync"
	"time"
)

// Clock supplies the current time so the controller can be tested without
// touching the wall clock.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock backed by time.Now.
func SystemClock() Clock { return systemClock{} }

// Ticker drives the rest countdown. Start replaces any previously scheduled
// tick loop, so at most one countdown is ever active per ticker.
type Ticker interface {
	Start(interval time.Duration, fn func())
	Stop()
}

// intervalTicker runs fn on a fixed interval in a goroutine until stopped.
type intervalTicker struct {
	mu   sync.Mutex
	stop chan struct{}
}

// NewIntervalTicker returns a Ticker backed by time.Ticker.
func NewIntervalTicker() Ticker { return &intervalTicker{} }

func (t *intervalTicker) Start(interval time.Duration, fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopLocked()

	stop := make(chan struct{})
	t.stop = stop

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				fn()
			}
		}
	}()
}

func (t *intervalTicker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopLocked()
}

func (t *intervalTicker) stopLocked() {
	if t.stop != nil {
		close(t.stop)
		t.stop = nil
	}
}
