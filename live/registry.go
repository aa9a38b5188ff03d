// Package live keeps the view controllers of open portfolio pages.
// Each page load creates a view; HTMX requests and the carousel stream
// address it by id until it expires.
package live

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mdalaminab17/portfolio/viewstate"
)

// ErrViewNotFound is returned for unknown or expired view ids.
var ErrViewNotFound = errors.New("live: view not found")

// DefaultTTL is how long an unmounted view survives without requests.
const DefaultTTL = 30 * time.Minute

type view struct {
	ctrl     *viewstate.Controller
	lastSeen time.Time
}

// Registry maps view ids to controllers and expires idle views.
type Registry struct {
	mu    sync.Mutex
	views map[string]*view
	count int
	ttl   time.Duration
	opts  []viewstate.Option
	log   *zap.Logger
	now   func() time.Time

	stop     chan struct{}
	stopOnce sync.Once
	done     chan struct{}
}

// NewRegistry creates a registry whose views carousel over count
// certificates. Views idle for longer than ttl and not mounted are removed.
func NewRegistry(count int, ttl time.Duration, log *zap.Logger, opts ...viewstate.Option) *Registry {
	if log == nil {
		log = zap.NewNop()
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	r := &Registry{
		views: make(map[string]*view),
		count: count,
		ttl:   ttl,
		opts:  opts,
		log:   log,
		now:   time.Now,
		stop:  make(chan struct{}),
		done:  make(chan struct{}),
	}
	go r.cleanup()
	return r
}

func (r *Registry) cleanup() {
	defer close(r.done)
	ticker := time.NewTicker(r.ttl)
	defer ticker.Stop()
	for {
		select {
		case <-r.stop:
			return
		case <-ticker.C:
			r.Expire()
		}
	}
}

// Create registers a new view and returns its id.
func (r *Registry) Create() (string, *viewstate.Controller) {
	id := uuid.NewString()
	r.mu.Lock()
	ctrl := viewstate.New(r.count, r.opts...)
	r.views[id] = &view{ctrl: ctrl, lastSeen: r.now()}
	n := len(r.views)
	r.mu.Unlock()
	r.log.Debug("view created", zap.String("view", id), zap.Int("views", n))
	return id, ctrl
}

// Get returns the controller for id and marks the view as seen.
func (r *Registry) Get(id string) (*viewstate.Controller, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.views[id]
	if !ok {
		return nil, ErrViewNotFound
	}
	v.lastSeen = r.now()
	return v.ctrl, nil
}

// Release removes a view and stops its timer.
func (r *Registry) Release(id string) {
	r.mu.Lock()
	v, ok := r.views[id]
	delete(r.views, id)
	r.mu.Unlock()
	if ok {
		v.ctrl.Close()
		r.log.Debug("view released", zap.String("view", id))
	}
}

// Expire removes views idle for longer than the ttl that have no stream
// attached. It returns the number removed.
func (r *Registry) Expire() int {
	cutoff := r.now().Add(-r.ttl)
	var expired []*viewstate.Controller

	r.mu.Lock()
	for id, v := range r.views {
		if v.lastSeen.After(cutoff) || v.ctrl.Mounted() {
			continue
		}
		delete(r.views, id)
		expired = append(expired, v.ctrl)
	}
	r.mu.Unlock()

	for _, ctrl := range expired {
		ctrl.Close()
	}
	if len(expired) > 0 {
		r.log.Debug("views expired", zap.Int("expired", len(expired)))
	}
	return len(expired)
}

// Resize propagates a new certificate count to every view. New views use it
// as well.
func (r *Registry) Resize(count int) {
	r.mu.Lock()
	r.count = count
	ctrls := make([]*viewstate.Controller, 0, len(r.views))
	for _, v := range r.views {
		ctrls = append(ctrls, v.ctrl)
	}
	r.mu.Unlock()

	for _, ctrl := range ctrls {
		ctrl.SetCertificateCount(count)
	}
	r.log.Info("certificate count changed", zap.Int("count", count), zap.Int("views", len(ctrls)))
}

// Len returns the number of live views.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.views)
}

// Close stops the cleanup loop and every view.
func (r *Registry) Close() {
	r.stopOnce.Do(func() { close(r.stop) })
	<-r.done

	r.mu.Lock()
	views := r.views
	r.views = make(map[string]*view)
	r.mu.Unlock()
	for _, v := range views {
		v.ctrl.Close()
	}
}
