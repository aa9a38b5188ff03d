package portfolio

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap"

	"github.com/mdalaminab17/portfolio/content"
	"github.com/mdalaminab17/portfolio/viewstate"
)

// SiteConfig holds all configuration for a portfolio site.
type SiteConfig struct {
	Name        string `env:"SITE_NAME" envDefault:"Portfolio"`
	URL         string `env:"SITE_URL" envDefault:"http://localhost:3000"`
	Description string `env:"SITE_DESCRIPTION"`
	Author      string `env:"SITE_AUTHOR"`

	Addr         string `env:"ADDR" envDefault:":3000"`
	DatabasePath string `env:"DATABASE_PATH" envDefault:"data/portfolio.db"`
	StaticDir    string `env:"STATIC_DIR" envDefault:"public"`

	ContentPath string        `env:"CONTENT_PATH"`                 // YAML tables; built-in defaults when empty
	ContentTTL  time.Duration `env:"CONTENT_TTL" envDefault:"1m"` // reload period for ContentPath

	CarouselInterval time.Duration `env:"CAROUSEL_INTERVAL" envDefault:"4s"`
	ViewTTL          time.Duration `env:"VIEW_TTL" envDefault:"30m"`

	AdminPassword string `env:"ADMIN_PASSWORD"`       // admin routes are disabled when empty
	SessionSecret string `env:"ADMIN_SESSION_SECRET"` // required with AdminPassword
	CookieSecure  bool   `env:"COOKIE_SECURE"`

	SMTP SMTPConfig `envPrefix:"SMTP_"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// SMTPConfig configures the contact form mailer. Mail is disabled when Host
// or User is empty.
type SMTPConfig struct {
	Host string `env:"HOST"`
	Port string `env:"PORT" envDefault:"587"`
	User string `env:"USER"`
	Pass string `env:"PASS"`
	To   string `env:"TO"`
}

// Enabled reports whether enough is configured to send mail.
func (s SMTPConfig) Enabled() bool {
	return s.Host != "" && s.User != "" && s.To != ""
}

// LoadConfig reads SiteConfig from the environment.
func LoadConfig() (SiteConfig, error) {
	var cfg SiteConfig
	if err := env.Parse(&cfg); err != nil {
		return SiteConfig{}, fmt.Errorf("portfolio: parse env: %w", err)
	}
	cfg.setDefaults()
	return cfg, nil
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Portfolio"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	c.URL = strings.TrimSuffix(c.URL, "/")
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.DatabasePath == "" {
		c.DatabasePath = "data/portfolio.db"
	}
	if c.StaticDir == "" {
		c.StaticDir = "public"
	}
	if c.ContentTTL == 0 {
		c.ContentTTL = time.Minute
	}
	if c.CarouselInterval == 0 {
		c.CarouselInterval = viewstate.DefaultInterval
	}
	if c.ViewTTL == 0 {
		c.ViewTTL = 30 * time.Minute
	}
	if c.SMTP.Port == "" {
		c.SMTP.Port = "587"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

func (c SiteConfig) validate() error {
	if c.AdminPassword != "" && c.SessionSecret == "" {
		return fmt.Errorf("portfolio: ADMIN_SESSION_SECRET is required when ADMIN_PASSWORD is set")
	}
	return nil
}

// AdminEnabled reports whether the admin routes are served.
func (c SiteConfig) AdminEnabled() bool {
	return c.AdminPassword != ""
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App after the built-in routes are set up.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithLogger sets the application logger (default: no-op).
func WithLogger(l *zap.Logger) Option {
	return func(a *App) {
		a.Log = l
	}
}

// WithContent replaces the built-in tables. CONTENT_PATH still wins when set.
func WithContent(c *content.Content) Option {
	return func(a *App) {
		a.initialContent = c
	}
}

// WithContactSink adds a destination for contact form submissions besides
// the SQLite store.
func WithContactSink(s ContactSink) Option {
	return func(a *App) {
		a.sinks = append(a.sinks, s)
	}
}

// WithTicker replaces the carousel ticker constructor for every view.
func WithTicker(fn viewstate.TickerFunc) Option {
	return func(a *App) {
		a.newTicker = fn
	}
}
