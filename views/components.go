package views

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/mdalaminab17/portfolio/markdown"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.New("").Funcs(template.FuncMap{
	"markdown": markdown.HTML,
	"icon":     icon,
	"add":      func(a, b int) int { return a + b },
	"seq":      seq,
	"percent":  func(f float64) string { return fmt.Sprintf("%.1f", f*100) },
	"join":     strings.Join,
	"jsonld":   func(s string) template.JS { return template.JS(s) },
	"ago":      Ago,
	"bytes":    Bytes,
	"escape":   PathEscape,
	"href":     SafeHref,
	"dict":     dict,
}).ParseFS(templateFS, "templates/*.html"))

// component renders the named template as a templ.Component.
func component(name string, data any) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return templates.ExecuteTemplate(w, name, data)
	})
}

// Home renders the full portfolio page.
func Home(p Page) templ.Component { return component("page", p) }

// NavPartial renders the navigation bar.
func NavPartial(n Nav) templ.Component { return component("nav", n) }

// CarouselPartial renders the inside of the certificate slider.
func CarouselPartial(c Carousel) templ.Component { return component("carousel", c) }

// ModalPartial renders the inside of the modal container.
func ModalPartial(m Modal) templ.Component { return component("modal", m) }

// ContactFormPartial renders the contact form.
func ContactFormPartial(f ContactForm) templ.Component { return component("contact-form", f) }

// ContactSent renders the confirmation shown after a submission.
func ContactSent(name string) templ.Component { return component("contact-sent", name) }

func NotFound(cfg SiteConfig) templ.Component    { return component("not-found", cfg) }
func ServerError(cfg SiteConfig) templ.Component { return component("server-error", cfg) }

// AdminLogin renders the admin password form.
func AdminLogin(cfg SiteConfig, showError bool, csrf string) templ.Component {
	return component("admin-login", struct {
		Site      SiteConfig
		ShowError bool
		CSRF      string
	}{cfg, showError, csrf})
}

// AdminInbox renders the contact message dashboard.
func AdminInbox(in Inbox) templ.Component { return component("admin-inbox", in) }

// AdminImages renders the uploaded image list.
func AdminImages(images []Image, csrf string) templ.Component {
	return component("admin-images", struct {
		Images []Image
		CSRF   string
	}{images, csrf})
}

func dict(pairs ...any) (map[string]any, error) {
	if len(pairs)%2 != 0 {
		return nil, fmt.Errorf("views: dict needs key/value pairs")
	}
	m := make(map[string]any, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			return nil, fmt.Errorf("views: dict key %v is not a string", pairs[i])
		}
		m[key] = pairs[i+1]
	}
	return m, nil
}

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// icon paths follow the 24x24 stroke icon grid used by the page.
var iconPaths = map[string]string{
	"github":         `<path d="M15 22v-4a4.8 4.8 0 0 0-1-3.5c3 0 6-2 6-5.5.08-1.25-.27-2.48-1-3.5.28-1.15.28-2.35 0-3.5 0 0-1 0-3 1.5-2.64-.5-5.36-.5-8 0C6 2 5 2 5 2c-.3 1.15-.3 2.35 0 3.5A5.4 5.4 0 0 0 4 9c0 3.5 3 5.5 6 5.5-.39.49-.68 1.05-.85 1.65-.17.6-.22 1.23-.15 1.85v4"/><path d="M9 18c-4.51 2-5-2-7-2"/>`,
	"linkedin":       `<path d="M16 8a6 6 0 0 1 6 6v7h-4v-7a2 2 0 0 0-4 0v7h-4v-7a6 6 0 0 1 6-6z"/><rect width="4" height="12" x="2" y="9"/><circle cx="4" cy="4" r="2"/>`,
	"mail":           `<rect width="20" height="16" x="2" y="4" rx="2"/><path d="m22 7-8.97 5.7a1.94 1.94 0 0 1-2.06 0L2 7"/>`,
	"phone":          `<path d="M22 16.92v3a2 2 0 0 1-2.18 2 19.79 19.79 0 0 1-8.63-3.07 19.5 19.5 0 0 1-6-6A19.79 19.79 0 0 1 2.12 4.18 2 2 0 0 1 4.11 2h3a2 2 0 0 1 2 1.72c.13.96.36 1.9.7 2.81a2 2 0 0 1-.45 2.11L8.09 9.91a16 16 0 0 0 6 6l1.27-1.27a2 2 0 0 1 2.11-.45c.91.34 1.85.57 2.81.7A2 2 0 0 1 22 16.92z"/>`,
	"map-pin":        `<path d="M20 10c0 6-8 12-8 12s-8-6-8-12a8 8 0 0 1 16 0Z"/><circle cx="12" cy="10" r="3"/>`,
	"book-open":      `<path d="M2 3h6a4 4 0 0 1 4 4v14a3 3 0 0 0-3-3H2z"/><path d="M22 3h-6a4 4 0 0 0-4 4v14a3 3 0 0 1 3-3h7z"/>`,
	"award":          `<circle cx="12" cy="8" r="6"/><path d="M15.48 12.89 17 22l-5-3-5 3 1.52-9.11"/>`,
	"code":           `<polyline points="16 18 22 12 16 6"/><polyline points="8 6 2 12 8 18"/>`,
	"graduation-cap": `<path d="M22 10v6M2 10l10-5 10 5-10 5z"/><path d="M6 12v5c3 3 9 3 12 0v-5"/>`,
	"database":       `<ellipse cx="12" cy="5" rx="9" ry="3"/><path d="M3 5v14a9 3 0 0 0 18 0V5"/><path d="M3 12a9 3 0 0 0 18 0"/>`,
	"cpu":            `<rect width="16" height="16" x="4" y="4" rx="2"/><rect width="6" height="6" x="9" y="9"/>`,
	"globe":          `<circle cx="12" cy="12" r="10"/><path d="M2 12h20"/><path d="M12 2a15.3 15.3 0 0 1 4 10 15.3 15.3 0 0 1-4 10 15.3 15.3 0 0 1-4-10 15.3 15.3 0 0 1 4-10z"/>`,
	"brain":          `<path d="M12 5a3 3 0 1 0-5.997.125 4 4 0 0 0-2.526 5.77 4 4 0 0 0 .556 6.588A4 4 0 1 0 12 18Z"/><path d="M12 5a3 3 0 1 1 5.997.125 4 4 0 0 1 2.526 5.77 4 4 0 0 1-.556 6.588A4 4 0 1 1 12 18Z"/>`,
	"zap":            `<polygon points="13 2 3 14 12 14 11 22 21 10 12 10 13 2"/>`,
	"x":              `<path d="M18 6 6 18"/><path d="m6 6 12 12"/>`,
	"menu":           `<line x1="4" x2="20" y1="12" y2="12"/><line x1="4" x2="20" y1="6" y2="6"/><line x1="4" x2="20" y1="18" y2="18"/>`,
	"chevron-left":   `<path d="m15 18-6-6 6-6"/>`,
	"chevron-right":  `<path d="m9 18 6-6-6-6"/>`,
}

func icon(name string) template.HTML {
	paths, ok := iconPaths[name]
	if !ok {
		return ""
	}
	return template.HTML(`<svg class="icon icon-` + name + `" xmlns="http://www.w3.org/2000/svg" width="20" height="20" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round" aria-hidden="true">` + paths + `</svg>`)
}
