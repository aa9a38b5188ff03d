package viewstate

import (
	"context"
	"sync"
	"time"
)

// DefaultInterval is the carousel auto-advance period.
const DefaultInterval = 4 * time.Second

// Ticker is the subset of *time.Ticker the advancer needs.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// TickerFunc constructs a Ticker firing every d.
type TickerFunc func(d time.Duration) Ticker

type stdTicker struct{ t *time.Ticker }

func (s stdTicker) C() <-chan time.Time { return s.t.C }
func (s stdTicker) Stop()               { s.t.Stop() }

// NewTicker wraps time.NewTicker.
func NewTicker(d time.Duration) Ticker {
	return stdTicker{t: time.NewTicker(d)}
}

// AutoAdvancer runs a repeating task on one goroutine. Starting it again
// replaces the running loop, so loops never stack.
type AutoAdvancer struct {
	interval  time.Duration
	newTicker TickerFunc

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewAutoAdvancer returns a stopped advancer. A nil newTicker uses NewTicker.
func NewAutoAdvancer(interval time.Duration, newTicker TickerFunc) *AutoAdvancer {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if newTicker == nil {
		newTicker = NewTicker
	}
	return &AutoAdvancer{interval: interval, newTicker: newTicker}
}

// Interval returns the tick period.
func (a *AutoAdvancer) Interval() time.Duration { return a.interval }

// Start runs tick every interval until ctx is done or Stop is called.
// Any loop already running is stopped first.
func (a *AutoAdvancer) Start(ctx context.Context, tick func()) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.stopLocked()

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	t := a.newTicker(a.interval)
	a.cancel, a.done = cancel, done

	go func() {
		defer close(done)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C():
				tick()
			}
		}
	}()
}

// Stop cancels the running loop and waits for it to exit.
func (a *AutoAdvancer) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.stopLocked()
}

// Running reports whether a loop is active.
func (a *AutoAdvancer) Running() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.done == nil {
		return false
	}
	select {
	case <-a.done:
		return false
	default:
		return true
	}
}

func (a *AutoAdvancer) stopLocked() {
	if a.cancel == nil {
		return
	}
	a.cancel()
	<-a.done
	a.cancel, a.done = nil, nil
}
