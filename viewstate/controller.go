package viewstate

import (
	"context"
	"sync"
	"time"
)

// State is a snapshot of one page's view state.
type State struct {
	Active    Section
	MenuOpen  bool
	Index     int
	Count     int
	Selected  int
	ModalOpen bool
	Revision  uint64
}

// Scroller brings a section's anchor into view. It reports false when the
// anchor does not exist.
type Scroller interface {
	ScrollIntoView(Section) bool
}

// ScrollerFunc adapts a function to Scroller.
type ScrollerFunc func(Section) bool

func (f ScrollerFunc) ScrollIntoView(s Section) bool { return f(s) }

// Option configures a Controller.
type Option func(*controllerConfig)

type controllerConfig struct {
	interval  time.Duration
	newTicker TickerFunc
}

// WithInterval sets the carousel auto-advance period.
func WithInterval(d time.Duration) Option {
	return func(c *controllerConfig) { c.interval = d }
}

// WithTicker replaces the ticker constructor.
func WithTicker(fn TickerFunc) Option {
	return func(c *controllerConfig) { c.newTicker = fn }
}

// Controller owns the view state of one page. All writes, including timer
// ticks, are serialized on mu; the last write wins.
type Controller struct {
	mu       sync.Mutex
	active   Section
	menuOpen bool
	carousel Carousel
	modal    Modal
	revision uint64
	subs     map[int]chan State
	nextSub  int

	// mountMu guards the timer lifetime. It is never held together with mu
	// while waiting on the advancer, since ticks take mu.
	mountMu  sync.Mutex
	advancer *AutoAdvancer
	mountCtx context.Context
	mountGen uint64
}

// New returns a controller over count certificates with home active.
func New(count int, opts ...Option) *Controller {
	var cfg controllerConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Controller{
		active:   Home,
		carousel: NewCarousel(count),
		subs:     make(map[int]chan State),
		advancer: NewAutoAdvancer(cfg.interval, cfg.newTicker),
	}
}

// State returns the current snapshot.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// Scroll recomputes the active section from a scroll offset. It reports
// whether the active section changed.
func (c *Controller) Scroll(scrollY float64, layout Layout) (Section, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	next := ActiveSection(scrollY, layout, c.active)
	if next == c.active {
		return next, false
	}
	c.active = next
	c.publishLocked()
	return next, true
}

// Navigate closes the mobile menu and asks s to scroll to target. Unknown
// sections and missing anchors are a no-op for the scroll. It reports
// whether a scroll was requested.
func (c *Controller) Navigate(target Section, s Scroller) bool {
	c.mu.Lock()
	c.menuOpen = false
	c.publishLocked()
	c.mu.Unlock()

	if !target.Valid() || s == nil {
		return false
	}
	return s.ScrollIntoView(target)
}

// ToggleMenu flips the mobile menu and returns the new value.
func (c *Controller) ToggleMenu() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.menuOpen = !c.menuOpen
	c.publishLocked()
	return c.menuOpen
}

// SetMenuOpen sets the mobile menu flag.
func (c *Controller) SetMenuOpen(open bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.menuOpen == open {
		return
	}
	c.menuOpen = open
	c.publishLocked()
}

// Next advances the carousel and returns the new index.
func (c *Controller) Next() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.carousel.Next()
	c.publishLocked()
	return c.carousel.Index()
}

// Prev moves the carousel back and returns the new index.
func (c *Controller) Prev() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.carousel.Prev()
	c.publishLocked()
	return c.carousel.Index()
}

// Select jumps the carousel to i.
func (c *Controller) Select(i int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.carousel.Select(i); err != nil {
		return err
	}
	c.publishLocked()
	return nil
}

// OpenModal shows the certificate under the carousel and returns its index.
func (c *Controller) OpenModal() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.carousel.Index()
	c.modal.Open(i)
	c.publishLocked()
	return i
}

// CloseModal closes the certificate modal.
func (c *Controller) CloseModal() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.modal.Close()
	c.publishLocked()
}

// Mount starts the carousel auto-advance for as long as ctx lives and
// returns the matching unmount func. Mounting again replaces the running
// timer; unmounting a replaced mount does nothing.
func (c *Controller) Mount(ctx context.Context) (unmount func()) {
	c.mountMu.Lock()
	defer c.mountMu.Unlock()
	c.mountGen++
	gen := c.mountGen
	c.mountCtx = ctx
	c.advancer.Start(ctx, c.tick)

	return func() {
		c.mountMu.Lock()
		defer c.mountMu.Unlock()
		if c.mountGen != gen {
			return
		}
		c.advancer.Stop()
		c.mountCtx = nil
	}
}

// Mounted reports whether the auto-advance timer is running.
func (c *Controller) Mounted() bool {
	return c.advancer.Running()
}

// SetCertificateCount resizes the carousel and, when mounted, re-establishes
// the timer. A modal showing a certificate that no longer exists closes.
func (c *Controller) SetCertificateCount(n int) {
	c.mu.Lock()
	if n == c.carousel.Count() {
		c.mu.Unlock()
		return
	}
	c.carousel.Resize(n)
	if i, open := c.modal.Selected(); open && i >= c.carousel.Count() {
		c.modal.Close()
	}
	c.publishLocked()
	c.mu.Unlock()

	c.mountMu.Lock()
	defer c.mountMu.Unlock()
	if c.mountCtx != nil && c.mountCtx.Err() == nil {
		c.advancer.Start(c.mountCtx, c.tick)
	}
}

// Subscribe returns a channel that receives the latest state after every
// change. Slow readers only see the most recent state.
func (c *Controller) Subscribe() (<-chan State, func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.nextSub
	c.nextSub++
	ch := make(chan State, 1)
	c.subs[id] = ch
	return ch, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if _, ok := c.subs[id]; ok {
			delete(c.subs, id)
			close(ch)
		}
	}
}

// Close stops the timer and closes every subscription.
func (c *Controller) Close() {
	c.mountMu.Lock()
	c.mountGen++
	c.advancer.Stop()
	c.mountCtx = nil
	c.mountMu.Unlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	for id, ch := range c.subs {
		delete(c.subs, id)
		close(ch)
	}
}

func (c *Controller) tick() {
	c.Next()
}

func (c *Controller) snapshotLocked() State {
	selected, open := c.modal.Selected()
	return State{
		Active:    c.active,
		MenuOpen:  c.menuOpen,
		Index:     c.carousel.Index(),
		Count:     c.carousel.Count(),
		Selected:  selected,
		ModalOpen: open,
		Revision:  c.revision,
	}
}

func (c *Controller) publishLocked() {
	c.revision++
	st := c.snapshotLocked()
	for _, ch := range c.subs {
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- st:
		default:
		}
	}
}
