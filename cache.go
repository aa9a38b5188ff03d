package portfolio

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/mdalaminab17/portfolio/content"
)

// ContentCache holds the site's content tables. When backed by a file it
// reloads them once the TTL has passed; a failed reload keeps the previous
// tables.
type ContentCache struct {
	mu       sync.RWMutex
	content  *content.Content
	fetched  time.Time
	ttl      time.Duration
	path     string
	log      *zap.Logger
	onResize func(int)
	now      func() time.Time
}

// NewContentCache creates a ContentCache serving initial until path (if any)
// is loaded.
func NewContentCache(path string, ttl time.Duration, initial *content.Content, log *zap.Logger) *ContentCache {
	if log == nil {
		log = zap.NewNop()
	}
	return &ContentCache{
		content: initial,
		ttl:     ttl,
		path:    path,
		log:     log,
		now:     time.Now,
	}
}

// OnResize registers fn to be called with the new certificate count
// whenever a reload changes it.
func (c *ContentCache) OnResize(fn func(int)) {
	c.mu.Lock()
	c.onResize = fn
	c.mu.Unlock()
}

func (c *ContentCache) valid() bool {
	return c.path == "" || c.now().Sub(c.fetched) < c.ttl
}

// Invalidate marks the cache stale so the next read reloads the file.
func (c *ContentCache) Invalidate() {
	c.mu.Lock()
	c.fetched = time.Time{}
	c.mu.Unlock()
}

// Get returns the current content, reloading it first when stale.
func (c *ContentCache) Get() *content.Content {
	c.mu.RLock()
	if c.valid() {
		cnt := c.content
		c.mu.RUnlock()
		return cnt
	}
	c.mu.RUnlock()

	if err := c.load(false); err != nil {
		c.log.Warn("content reload failed, keeping previous tables",
			zap.String("path", c.path), zap.Error(err))
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.content
}

// Reload reads the content file now. Without a file it is a no-op.
func (c *ContentCache) Reload() error {
	return c.load(true)
}

func (c *ContentCache) load(force bool) error {
	if c.path == "" {
		return nil
	}

	c.mu.Lock()
	if !force && c.valid() {
		// Another reader reloaded while we waited.
		c.mu.Unlock()
		return nil
	}
	next, err := content.Load(c.path)
	// Stamp the attempt either way so a broken file is not reread on
	// every request.
	c.fetched = c.now()
	if err != nil {
		c.mu.Unlock()
		return err
	}
	before := -1
	if c.content != nil {
		before = len(c.content.Certificates)
	}
	c.content = next
	onResize := c.onResize
	c.mu.Unlock()

	c.log.Info("content loaded", zap.String("path", c.path), zap.Int("certificates", len(next.Certificates)))
	if onResize != nil && len(next.Certificates) != before {
		onResize(len(next.Certificates))
	}
	return nil
}
