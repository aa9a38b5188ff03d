package portfolio

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/mdalaminab17/portfolio/content"
	"github.com/mdalaminab17/portfolio/viewstate"
	"github.com/mdalaminab17/portfolio/views"
)

func (a *App) siteConfig() views.SiteConfig {
	return views.SiteConfig{
		Name:        a.Config.Name,
		URL:         a.Config.URL,
		Description: a.Config.Description,
		Author:      a.Config.Author,
	}
}

// page assembles the full page for a freshly created view.
func (a *App) page(c echo.Context, id string, st viewstate.State, meta views.PageMeta) views.Page {
	cnt := a.Content.Get()
	site := a.siteConfig()
	return views.Page{
		Site:     site,
		Meta:     meta,
		ViewID:   id,
		CSRF:     CsrfToken(c),
		Content:  cnt,
		Nav:      views.BuildNav(id, st, 0),
		Carousel: views.BuildCarousel(id, st, cnt),
		Modal:    views.BuildModal(id, st, cnt),
		JSONLD:   views.PersonJsonLD(site, cnt.Profile, cnt.Social),
	}
}

func (a *App) homeMeta() views.PageMeta {
	cnt := a.Content.Get()
	desc := a.Config.Description
	if desc == "" {
		desc = cnt.Profile.Role + " " + cnt.Profile.Highlight
	}
	return views.PageMeta{
		Title:       cnt.Profile.Name + " · " + a.Config.Name,
		Description: desc,
		URL:         BuildURL(a.Config.URL),
		OGType:      "profile",
	}
}

func (a *App) handleHome(c echo.Context) error {
	id, ctrl := a.Views.Create()
	return Render(c, views.Home(a.page(c, id, ctrl.State(), a.homeMeta())))
}

// handleCertificate renders the page with the carousel on the certificate
// and its modal open.
func (a *App) handleCertificate(c echo.Context) error {
	i, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return echo.ErrNotFound
	}
	cert, ok := a.Content.Get().Certificate(i)
	if !ok {
		return echo.ErrNotFound
	}

	id, ctrl := a.Views.Create()
	if err := ctrl.Select(i); err != nil {
		a.Views.Release(id)
		return echo.ErrNotFound
	}
	ctrl.OpenModal()

	meta := a.homeMeta()
	meta.Title = cert.Title + " · " + a.Config.Name
	meta.Description = cert.Issuer + ", " + cert.Date
	meta.URL = BuildURL(a.Config.URL, "certificates", strconv.Itoa(i))
	meta.OGType = "website"
	return Render(c, views.Home(a.page(c, id, ctrl.State(), meta)))
}

func (a *App) handleSitemap(c echo.Context) error {
	return a.renderSitemap(c, a.Content.Get().Certificates)
}

func (a *App) handleFeed(c echo.Context) error {
	return a.renderRSS(c, a.Content.Get().Certificates)
}

func (a *App) handleFavicon(c echo.Context) error {
	return c.Blob(http.StatusOK, "image/svg+xml", faviconSVG())
}

func (a *App) handleRobots(c echo.Context) error {
	body := "User-agent: *\nAllow: /\nDisallow: /v/\nDisallow: /admin/\n\nSitemap: " + a.Config.URL + "/sitemap.xml\n"
	return c.String(http.StatusOK, body)
}

func (a *App) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status": "ok",
		"views":  a.Views.Len(),
	})
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	if errors.Is(err, content.ErrInvalid) {
		err = echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	var he *echo.HTTPError
	ok := errors.As(err, &he)
	if ok && he.Code == http.StatusNotFound && !isHTMX(c) {
		_ = RenderStatus(c, http.StatusNotFound, views.NotFound(a.siteConfig()))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		a.Log.Error("server error",
			zap.Error(err),
			zap.String("method", c.Request().Method),
			zap.String("uri", c.Request().RequestURI),
		)
		if !isHTMX(c) {
			_ = RenderStatus(c, code, views.ServerError(a.siteConfig()))
			return
		}
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}

func isHTMX(c echo.Context) bool {
	return c.Request().Header.Get("HX-Request") == "true"
}
