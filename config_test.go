package portfolio

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("SITE_URL", "https://example.com/")
	t.Setenv("SITE_NAME", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "Portfolio", cfg.Name)
	assert.Equal(t, "https://example.com", cfg.URL)
	assert.Equal(t, ":3000", cfg.Addr)
	assert.Equal(t, 4*time.Second, cfg.CarouselInterval)
	assert.Equal(t, 30*time.Minute, cfg.ViewTTL)
	assert.False(t, cfg.AdminEnabled())
	assert.False(t, cfg.SMTP.Enabled())
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("SITE_NAME", "Jane")
	t.Setenv("CAROUSEL_INTERVAL", "2s")
	t.Setenv("CONTENT_TTL", "5m")
	t.Setenv("COOKIE_SECURE", "true")
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SMTP_USER", "bot@example.com")
	t.Setenv("SMTP_TO", "jane@example.com")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "Jane", cfg.Name)
	assert.Equal(t, 2*time.Second, cfg.CarouselInterval)
	assert.Equal(t, 5*time.Minute, cfg.ContentTTL)
	assert.True(t, cfg.CookieSecure)
	assert.Equal(t, "587", cfg.SMTP.Port)
	assert.True(t, cfg.SMTP.Enabled())
}

func TestLoadConfigBadDuration(t *testing.T) {
	t.Setenv("VIEW_TTL", "forever")
	_, err := LoadConfig()
	require.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	cfg := SiteConfig{AdminPassword: "secret"}
	require.Error(t, cfg.validate())

	cfg.SessionSecret = "0123456789abcdef"
	require.NoError(t, cfg.validate())
	assert.True(t, cfg.AdminEnabled())
}

func TestNewLogger(t *testing.T) {
	l, err := NewLogger("debug")
	require.NoError(t, err)
	assert.NotNil(t, l)

	_, err = NewLogger("loud")
	require.Error(t, err)
}
