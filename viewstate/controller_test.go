package viewstate

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

type fakeTicker struct {
	ch      chan time.Time
	stopped chan struct{}
	once    sync.Once
}

func (f *fakeTicker) C() <-chan time.Time { return f.ch }
func (f *fakeTicker) Stop()               { f.once.Do(func() { close(f.stopped) }) }

func (f *fakeTicker) isStopped() bool {
	select {
	case <-f.stopped:
		return true
	default:
		return false
	}
}

type tickerFactory struct {
	mu      sync.Mutex
	tickers []*fakeTicker
}

func (tf *tickerFactory) New(time.Duration) Ticker {
	tf.mu.Lock()
	defer tf.mu.Unlock()
	ft := &fakeTicker{ch: make(chan time.Time), stopped: make(chan struct{})}
	tf.tickers = append(tf.tickers, ft)
	return ft
}

func (tf *tickerFactory) last() *fakeTicker {
	tf.mu.Lock()
	defer tf.mu.Unlock()
	return tf.tickers[len(tf.tickers)-1]
}

func (tf *tickerFactory) count() int {
	tf.mu.Lock()
	defer tf.mu.Unlock()
	return len(tf.tickers)
}

func fire(t *testing.T, ft *fakeTicker, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		select {
		case ft.ch <- time.Now():
		case <-time.After(time.Second):
			t.Fatalf("tick %d not consumed", i)
		}
	}
}

func TestControllerAutoAdvance(t *testing.T) {
	defer goleak.VerifyNone(t)

	tf := &tickerFactory{}
	c := New(5, WithTicker(tf.New))
	unmount := c.Mount(context.Background())
	fire(t, tf.last(), 7)
	unmount()

	assert.Equal(t, 2, c.State().Index)
	assert.False(t, c.Mounted())
	assert.True(t, tf.last().isStopped())
}

func TestControllerMountDoesNotStack(t *testing.T) {
	defer goleak.VerifyNone(t)

	tf := &tickerFactory{}
	c := New(5, WithTicker(tf.New))
	first := c.Mount(context.Background())
	second := c.Mount(context.Background())
	require.Equal(t, 2, tf.count())
	assert.True(t, tf.tickers[0].isStopped())

	first()
	assert.True(t, c.Mounted(), "superseded unmount must not stop the newer timer")

	fire(t, tf.last(), 3)
	second()
	assert.Equal(t, 3, c.State().Index)
	assert.False(t, c.Mounted())
}

func TestControllerUnmountOnContextDone(t *testing.T) {
	defer goleak.VerifyNone(t)

	tf := &tickerFactory{}
	c := New(3, WithTicker(tf.New))
	ctx, cancel := context.WithCancel(context.Background())
	unmount := c.Mount(ctx)
	cancel()
	require.Eventually(t, func() bool { return !c.Mounted() }, time.Second, 5*time.Millisecond)
	unmount()
}

func TestControllerSetCertificateCountRestartsTimer(t *testing.T) {
	defer goleak.VerifyNone(t)

	tf := &tickerFactory{}
	c := New(5, WithTicker(tf.New))
	unmount := c.Mount(context.Background())
	defer unmount()

	require.NoError(t, c.Select(4))
	c.OpenModal()
	c.SetCertificateCount(3)

	st := c.State()
	assert.Equal(t, 1, st.Index)
	assert.Equal(t, 3, st.Count)
	assert.False(t, st.ModalOpen)
	require.Equal(t, 2, tf.count())
	assert.True(t, tf.tickers[0].isStopped())
	assert.True(t, c.Mounted())

	fire(t, tf.last(), 2)
	require.Eventually(t, func() bool { return c.State().Index == 0 }, time.Second, 5*time.Millisecond)

	c.SetCertificateCount(3)
	assert.Equal(t, 2, tf.count(), "same count keeps the timer")
}

func TestControllerSetCertificateCountUnmounted(t *testing.T) {
	tf := &tickerFactory{}
	c := New(5, WithTicker(tf.New))
	c.SetCertificateCount(2)
	assert.Equal(t, 0, tf.count())
	assert.False(t, c.Mounted())
}

func TestControllerManualNavigation(t *testing.T) {
	c := New(5)
	assert.Equal(t, 4, c.Prev())
	assert.Equal(t, 0, c.Next())
	require.NoError(t, c.Select(3))
	assert.ErrorIs(t, c.Select(9), ErrIndexOutOfRange)
	assert.Equal(t, 3, c.State().Index)
}

func TestControllerNavigateClosesMenu(t *testing.T) {
	for _, target := range Sections {
		c := New(5)
		require.True(t, c.ToggleMenu())

		var scrolled Section
		requested := c.Navigate(target, ScrollerFunc(func(s Section) bool {
			scrolled = s
			return true
		}))

		assert.True(t, requested)
		assert.Equal(t, target, scrolled)
		assert.False(t, c.State().MenuOpen, "menu open after navigating to %s", target)
	}
}

func TestControllerNavigateMissingAnchor(t *testing.T) {
	c := New(5)
	c.SetMenuOpen(true)
	requested := c.Navigate(Projects, ScrollerFunc(func(Section) bool { return false }))
	assert.False(t, requested)
	assert.False(t, c.State().MenuOpen)

	called := false
	requested = c.Navigate(Section("blog"), ScrollerFunc(func(Section) bool {
		called = true
		return true
	}))
	assert.False(t, requested)
	assert.False(t, called)
}

func TestControllerScroll(t *testing.T) {
	c := New(5)
	sec, changed := c.Scroll(1000, pageLayout())
	assert.Equal(t, About, sec)
	assert.True(t, changed)

	sec, changed = c.Scroll(1001, pageLayout())
	assert.Equal(t, About, sec)
	assert.False(t, changed)

	sec, changed = c.Scroll(9000, pageLayout())
	assert.Equal(t, About, sec)
	assert.False(t, changed)
}

func TestControllerModalSurvivesCarouselMovement(t *testing.T) {
	c := New(5)
	c.Next()
	assert.Equal(t, 1, c.OpenModal())
	c.Next()
	c.Next()

	st := c.State()
	assert.True(t, st.ModalOpen)
	assert.Equal(t, 1, st.Selected)
	assert.Equal(t, 3, st.Index)

	assert.Equal(t, 3, c.OpenModal(), "reopening re-reads the carousel index")

	c.Prev()
	c.CloseModal()
	assert.False(t, c.State().ModalOpen)
}

func TestControllerSubscribeLatestWins(t *testing.T) {
	c := New(5)
	updates, cancel := c.Subscribe()
	c.Next()
	c.Next()
	c.ToggleMenu()

	st := <-updates
	assert.Equal(t, 2, st.Index)
	assert.True(t, st.MenuOpen)

	cancel()
	_, ok := <-updates
	assert.False(t, ok)
	cancel()
}

func TestControllerClose(t *testing.T) {
	defer goleak.VerifyNone(t)

	tf := &tickerFactory{}
	c := New(5, WithTicker(tf.New))
	updates, _ := c.Subscribe()
	c.Mount(context.Background())
	c.Close()

	assert.False(t, c.Mounted())
	_, ok := <-updates
	assert.False(t, ok)
}
