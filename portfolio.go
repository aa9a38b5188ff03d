// Package portfolio serves a single-page personal portfolio built with Go,
// Echo, and HTMX.
//
// Every page load creates a view: a server-side controller holding the
// active section, the mobile menu, the certificate carousel and the
// certificate modal. The browser drives the view with small HTMX posts and
// keeps a server-sent-events stream open, which is what mounts the
// carousel's auto-advance timer.
package portfolio

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/mdalaminab17/portfolio/content"
	"github.com/mdalaminab17/portfolio/live"
	"github.com/mdalaminab17/portfolio/viewstate"
)

// App is the central portfolio application. It wires together the store,
// content cache, view registry, handlers, and middleware.
type App struct {
	Config  SiteConfig
	Echo    *echo.Echo
	Store   *Store
	Content *ContentCache
	Views   *live.Registry
	Log     *zap.Logger

	loginLimiter   *RateLimiter
	contactLimiter *RateLimiter
	validate       *validator.Validate
	sinks          []ContactSink
	customRoutes   []func(*App)
	initialContent *content.Content
	newTicker      viewstate.TickerFunc
	ipSalt         string
	initialized    bool
}

// New creates a new portfolio App with the given configuration.
func New(cfg SiteConfig, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config: cfg,
		Echo:   echo.New(),
		Log:    zap.NewNop(),
	}
	a.Echo.HideBanner = true

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Init opens the database, loads content, and sets up middleware and routes.
// Start calls it when needed; tests call it directly and drive a.Echo.
func (a *App) Init() error {
	if a.initialized {
		return nil
	}
	if err := a.Config.validate(); err != nil {
		return err
	}

	store, err := NewStore(a.Config.DatabasePath)
	if err != nil {
		return fmt.Errorf("portfolio: init store: %w", err)
	}
	a.Store = store

	initial := a.initialContent
	if initial == nil {
		initial = content.Default()
	}
	a.Content = NewContentCache(a.Config.ContentPath, a.Config.ContentTTL, initial, a.Log)
	if a.Config.ContentPath != "" {
		if err := a.Content.Reload(); err != nil {
			return fmt.Errorf("portfolio: load content: %w", err)
		}
	}

	viewOpts := []viewstate.Option{viewstate.WithInterval(a.Config.CarouselInterval)}
	if a.newTicker != nil {
		viewOpts = append(viewOpts, viewstate.WithTicker(a.newTicker))
	}
	a.Views = live.NewRegistry(len(a.Content.Get().Certificates), a.Config.ViewTTL, a.Log, viewOpts...)
	a.Content.OnResize(a.Views.Resize)

	a.loginLimiter = NewRateLimiter(5, time.Minute)
	a.contactLimiter = NewRateLimiter(5, 10*time.Minute)
	a.validate = newValidator()
	if a.ipSalt, err = loadSalt(context.Background(), a.Store); err != nil {
		return fmt.Errorf("portfolio: %w", err)
	}
	if a.Config.SMTP.Enabled() {
		a.sinks = append(a.sinks, NewMailer(a.Config.SMTP, a.Config.Name))
	}

	a.setupMiddleware()
	a.setupRoutes()
	for _, fn := range a.customRoutes {
		fn(a)
	}

	a.initialized = true
	return nil
}

// Start initializes the app if needed and serves until Shutdown.
func (a *App) Start() error {
	if err := a.Init(); err != nil {
		return err
	}
	a.Log.Info("listening", zap.String("addr", a.Config.Addr), zap.String("url", a.Config.URL))
	if err := a.Echo.Start(a.Config.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown ends every open view first, which closes their event streams,
// then drains the HTTP server.
func (a *App) Shutdown(ctx context.Context) error {
	if a.Views != nil {
		a.Views.Close()
	}
	return a.Echo.Shutdown(ctx)
}

func (a *App) setupRoutes() {
	e := a.Echo

	// Embedded assets are served under /public/ and fall through to the
	// static dir for anything else.
	embeddedFS, _ := fs.Sub(EmbeddedAssets, "embedded")
	embeddedHandler := echo.WrapHandler(http.StripPrefix("/public/", http.FileServer(http.FS(embeddedFS))))
	for _, name := range embeddedFiles {
		e.GET("/public/"+name, embeddedHandler)
	}

	e.Static("/public", a.Config.StaticDir)
	e.GET("/favicon.svg", a.handleFavicon)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/healthz/", a.handleHealth)

	// Public routes
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)
	e.GET("/", a.handleHome)
	e.GET("/certificates/:index/", a.handleCertificate)
	e.POST("/contact/", a.handleContact)

	// View routes
	v := e.Group("/v/:id")
	v.GET("/stream/", a.handleStream)
	v.POST("/scroll/", a.handleScroll)
	v.POST("/nav/:section/", a.handleNavigate)
	v.POST("/menu/", a.handleMenu)
	v.POST("/carousel/next/", a.handleCarouselNext)
	v.POST("/carousel/prev/", a.handleCarouselPrev)
	v.POST("/carousel/select/:index/", a.handleCarouselSelect)
	v.POST("/modal/open/", a.handleModalOpen)
	v.POST("/modal/close/", a.handleModalClose)

	if !a.Config.AdminEnabled() {
		return
	}

	// Admin routes
	e.GET("/admin/", a.handleAdmin)
	e.POST("/admin/login/", a.handleAdminLogin)
	e.POST("/admin/logout/", handleAdminLogout)
	e.POST("/admin/messages/:id/read/", a.handleMessageRead)
	e.DELETE("/admin/messages/:id/", a.handleMessageDelete)
	e.POST("/admin/content/reload/", a.handleContentReload)
	e.GET("/admin/images/", a.handleImageList)
	e.POST("/admin/images/upload/", a.handleImageUpload)
	e.DELETE("/admin/images/:filename/", a.handleImageDelete)
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.Views != nil {
		a.Views.Close()
	}
	if a.loginLimiter != nil {
		a.loginLimiter.Stop()
	}
	if a.contactLimiter != nil {
		a.contactLimiter.Stop()
	}
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}
