package portfolio

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// streamRecorder is a ResponseWriter that can be read while the handler
// is still writing.
type streamRecorder struct {
	mu     sync.Mutex
	header http.Header
	code   int
	body   bytes.Buffer
}

func newStreamRecorder() *streamRecorder {
	return &streamRecorder{header: http.Header{}}
}

func (r *streamRecorder) Header() http.Header { return r.header }

func (r *streamRecorder) WriteHeader(code int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.code == 0 {
		r.code = code
	}
}

func (r *streamRecorder) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.code == 0 {
		r.code = http.StatusOK
	}
	return r.body.Write(p)
}

func (r *streamRecorder) Flush() {}

func (r *streamRecorder) String() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.body.String()
}

func (r *streamRecorder) Code() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.code
}

func TestStreamMountsAndPushesCarousel(t *testing.T) {
	app, tickers := newTestApp(t)
	cl := newClient(t, app)
	id := cl.open()
	ctrl, err := app.Views.Get(id)
	require.NoError(t, err)
	assert.False(t, ctrl.Mounted())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	req := httptest.NewRequest(http.MethodGet, "/v/"+id+"/stream/", nil).WithContext(ctx)
	rec := newStreamRecorder()
	done := make(chan struct{})
	go func() {
		defer close(done)
		app.Echo.ServeHTTP(rec, req)
	}()

	require.Eventually(t, ctrl.Mounted, time.Second, 5*time.Millisecond)
	assert.Equal(t, http.StatusOK, rec.Code())
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))

	ticker := tickers.last()
	require.NotNil(t, ticker)
	for i := 0; i < 2; i++ {
		select {
		case ticker.ch <- time.Now():
		case <-time.After(time.Second):
			t.Fatalf("tick %d not consumed", i)
		}
	}

	require.Eventually(t, func() bool {
		return strings.Contains(rec.String(), `data-index="2"`)
	}, time.Second, 5*time.Millisecond)
	out := rec.String()
	assert.Contains(t, out, "event: carousel\n")
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if line == "" {
			continue
		}
		assert.True(t,
			strings.HasPrefix(line, "event: ") || strings.HasPrefix(line, "data: ") || strings.HasPrefix(line, ": "),
			"bad stream line %q", line)
	}

	// Disconnecting unmounts the view and stops its timer.
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("stream handler did not return")
	}
	assert.False(t, ctrl.Mounted())
	select {
	case <-ticker.stopped:
	case <-time.After(time.Second):
		t.Fatal("ticker not stopped")
	}
	assert.Equal(t, 2, ctrl.State().Index)
}

func TestStreamEndsOnShutdown(t *testing.T) {
	app, _ := newTestApp(t)
	cl := newClient(t, app)
	id := cl.open()

	req := httptest.NewRequest(http.MethodGet, "/v/"+id+"/stream/", nil)
	rec := newStreamRecorder()
	done := make(chan struct{})
	go func() {
		defer close(done)
		app.Echo.ServeHTTP(rec, req)
	}()

	ctrl, _ := app.Views.Get(id)
	require.Eventually(t, ctrl.Mounted, time.Second, 5*time.Millisecond)

	app.Views.Close()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("stream handler did not return after the views closed")
	}
}

func TestStreamUnknownView(t *testing.T) {
	app, _ := newTestApp(t)
	rec := httptest.NewRecorder()
	app.Echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v/missing/stream/", nil))
	assert.Equal(t, http.StatusGone, rec.Code)
}

func TestWriteEventPrefixesEveryLine(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeEvent(&buf, "carousel", []byte("<div>\n  <p>x</p>\n</div>\n")))
	assert.Equal(t, "event: carousel\ndata: <div>\ndata:   <p>x</p>\ndata: </div>\n\n", buf.String())
}
