package portfolio

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/mdalaminab17/portfolio/live"
	"github.com/mdalaminab17/portfolio/viewstate"
	"github.com/mdalaminab17/portfolio/views"
)

// keepAliveInterval is how often an idle event stream sends a comment line.
const keepAliveInterval = 25 * time.Second

// scrollEvent is the client event asking the browser to scroll smoothly to
// an anchor. portfolio.js listens for it.
const scrollEvent = "portfolio:scroll"

// view resolves the :id path parameter. Unknown or expired views answer 410
// with HX-Refresh so htmx reloads the page and gets a new one.
func (a *App) view(c echo.Context) (string, *viewstate.Controller, error) {
	id := c.Param("id")
	ctrl, err := a.Views.Get(id)
	if errors.Is(err, live.ErrViewNotFound) {
		c.Response().Header().Set("HX-Refresh", "true")
		return "", nil, echo.NewHTTPError(http.StatusGone, "view expired")
	}
	if err != nil {
		return "", nil, err
	}
	return id, ctrl, nil
}

// formFloat reads an optional float form value; missing or malformed
// values read as zero.
func formFloat(c echo.Context, name string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(c.FormValue(name)), 64)
	if err != nil {
		return 0
	}
	return f
}

func (a *App) renderNav(c echo.Context, id string, st viewstate.State, progress float64) error {
	return Render(c, views.NavPartial(views.BuildNav(id, st, progress)))
}

// handleScroll recomputes the active section from the client's scroll
// offset and measured section layout, and returns the nav bar.
func (a *App) handleScroll(c echo.Context) error {
	id, ctrl, err := a.view(c)
	if err != nil {
		return err
	}
	layout, err := viewstate.ParseLayout(c.FormValue("layout"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	y := formFloat(c, "y")
	ctrl.Scroll(y, layout)
	progress := viewstate.ScrollProgress(y, formFloat(c, "height"), formFloat(c, "viewport"))
	return a.renderNav(c, id, ctrl.State(), progress)
}

// handleNavigate closes the mobile menu and, when the section exists on the
// page, tells the browser to scroll to it through an HX-Trigger event.
func (a *App) handleNavigate(c echo.Context) error {
	id, ctrl, err := a.view(c)
	if err != nil {
		return err
	}
	target, _ := viewstate.ParseSection(c.Param("section"))
	scroller := viewstate.ScrollerFunc(func(s viewstate.Section) bool {
		payload, err := json.Marshal(map[string]map[string]string{
			scrollEvent: {"target": s.String()},
		})
		if err != nil {
			return false
		}
		c.Response().Header().Set("HX-Trigger", string(payload))
		return true
	})
	ctrl.Navigate(target, scroller)
	return a.renderNav(c, id, ctrl.State(), formFloat(c, "progress"))
}

func (a *App) handleMenu(c echo.Context) error {
	id, ctrl, err := a.view(c)
	if err != nil {
		return err
	}
	ctrl.ToggleMenu()
	return a.renderNav(c, id, ctrl.State(), formFloat(c, "progress"))
}

func (a *App) renderCarousel(c echo.Context, id string, st viewstate.State) error {
	return Render(c, views.CarouselPartial(views.BuildCarousel(id, st, a.Content.Get())))
}

func (a *App) handleCarouselNext(c echo.Context) error {
	id, ctrl, err := a.view(c)
	if err != nil {
		return err
	}
	ctrl.Next()
	return a.renderCarousel(c, id, ctrl.State())
}

func (a *App) handleCarouselPrev(c echo.Context) error {
	id, ctrl, err := a.view(c)
	if err != nil {
		return err
	}
	ctrl.Prev()
	return a.renderCarousel(c, id, ctrl.State())
}

func (a *App) handleCarouselSelect(c echo.Context) error {
	id, ctrl, err := a.view(c)
	if err != nil {
		return err
	}
	i, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid index")
	}
	if err := ctrl.Select(i); err != nil {
		if errors.Is(err, viewstate.ErrIndexOutOfRange) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return err
	}
	return a.renderCarousel(c, id, ctrl.State())
}

// handleModalOpen opens the modal on the certificate the carousel shows.
func (a *App) handleModalOpen(c echo.Context) error {
	id, ctrl, err := a.view(c)
	if err != nil {
		return err
	}
	ctrl.OpenModal()
	return Render(c, views.ModalPartial(views.BuildModal(id, ctrl.State(), a.Content.Get())))
}

func (a *App) handleModalClose(c echo.Context) error {
	id, ctrl, err := a.view(c)
	if err != nil {
		return err
	}
	ctrl.CloseModal()
	return Render(c, views.ModalPartial(views.BuildModal(id, ctrl.State(), a.Content.Get())))
}

// handleStream keeps the view mounted for as long as the browser holds the
// connection. While mounted the carousel auto-advances, and every index
// change is pushed as a "carousel" event carrying the fragment HTML.
func (a *App) handleStream(c echo.Context) error {
	id, ctrl, err := a.view(c)
	if err != nil {
		return err
	}

	w := c.Response()
	w.Header().Set(echo.HeaderContentType, "text/event-stream")
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)
	w.Flush()

	ctx := c.Request().Context()
	updates, unsubscribe := ctrl.Subscribe()
	defer unsubscribe()
	unmount := ctrl.Mount(ctx)
	defer unmount()

	a.Log.Debug("view mounted", zap.String("view", id))
	defer a.Log.Debug("view unmounted", zap.String("view", id))

	last := ctrl.State()
	keepAlive := time.NewTicker(keepAliveInterval)
	defer keepAlive.Stop()

	var buf bytes.Buffer
	for {
		select {
		case <-ctx.Done():
			return nil
		case st, ok := <-updates:
			if !ok {
				return nil
			}
			if st.Index == last.Index && st.Count == last.Count {
				continue
			}
			last = st
			buf.Reset()
			cmp := views.CarouselPartial(views.BuildCarousel(id, st, a.Content.Get()))
			if err := cmp.Render(ctx, &buf); err != nil {
				return err
			}
			if err := writeEvent(w, "carousel", buf.Bytes()); err != nil {
				return nil
			}
			w.Flush()
		case <-keepAlive.C:
			if _, err := io.WriteString(w, ": keepalive\n\n"); err != nil {
				return nil
			}
			w.Flush()
		}
	}
}

// writeEvent writes one server-sent event. Each line of data gets its own
// "data:" prefix.
func writeEvent(w io.Writer, event string, data []byte) error {
	var b bytes.Buffer
	fmt.Fprintf(&b, "event: %s\n", event)
	for _, line := range bytes.Split(bytes.TrimRight(data, "\n"), []byte("\n")) {
		b.WriteString("data: ")
		b.Write(line)
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	_, err := w.Write(b.Bytes())
	return err
}
