package portfolio

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/mdalaminab17/portfolio/views"
)

func (a *App) handleAdmin(c echo.Context) error {
	if !IsAdmin(c) {
		return Render(c, views.AdminLogin(a.siteConfig(), false, CsrfToken(c)))
	}
	return a.renderInbox(c, c.QueryParam("msg"))
}

func (a *App) handleAdminLogin(c echo.Context) error {
	ip := c.RealIP()
	if !a.loginLimiter.Check(ip) {
		return c.String(http.StatusTooManyRequests, "Too many login attempts. Try again later.")
	}
	pass := c.FormValue("password")
	if subtle.ConstantTimeCompare([]byte(pass), []byte(a.Config.AdminPassword)) == 1 {
		if err := setAdminSession(c); err != nil {
			return err
		}
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	a.loginLimiter.Record(ip)
	a.Log.Warn("failed admin login", zap.String("ip_hash", HashIP(a.ipSalt, ip)))
	return Render(c, views.AdminLogin(a.siteConfig(), true, CsrfToken(c)))
}

func handleAdminLogout(c echo.Context) error {
	if err := clearAdminSession(c); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin/")
}

func messageID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid message id")
	}
	return id, nil
}

func (a *App) handleMessageRead(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	id, err := messageID(c)
	if err != nil {
		return err
	}
	if err := a.Store.MarkRead(c.Request().Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.NoContent(http.StatusNotFound)
		}
		return err
	}
	return a.renderInbox(c, "")
}

func (a *App) handleMessageDelete(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	id, err := messageID(c)
	if err != nil {
		return err
	}
	if err := a.Store.DeleteMessage(c.Request().Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.NoContent(http.StatusNotFound)
		}
		return err
	}
	return a.renderInbox(c, "Message deleted.")
}

// handleContentReload rereads CONTENT_PATH immediately. Open views are
// resized when the certificate count changed.
func (a *App) handleContentReload(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	if a.Config.ContentPath == "" {
		return c.Redirect(http.StatusSeeOther, "/admin/?msg=No+content+file+configured.")
	}
	if err := a.Content.Reload(); err != nil {
		a.Log.Warn("content reload failed", zap.Error(err))
		return a.renderInbox(c, "Reload failed: "+err.Error())
	}
	return c.Redirect(http.StatusSeeOther, "/admin/?msg=Content+reloaded.")
}

func (a *App) renderInbox(c echo.Context, notice string) error {
	ctx := c.Request().Context()
	msgs, err := a.Store.ListMessages(ctx)
	if err != nil {
		return err
	}
	unread, err := a.Store.CountUnread(ctx)
	if err != nil {
		return err
	}
	return Render(c, views.AdminInbox(views.Inbox{
		Site:     a.siteConfig(),
		CSRF:     CsrfToken(c),
		Messages: msgs,
		Unread:   unread,
		Views:    a.Views.Len(),
		Notice:   notice,
	}))
}
