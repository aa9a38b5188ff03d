package views

import (
	"bytes"
	"context"
	"html/template"
	"strings"
	"testing"
	"time"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdalaminab17/portfolio/content"
	"github.com/mdalaminab17/portfolio/viewstate"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	return buf.String()
}

func testPage(st viewstate.State, cnt *content.Content) Page {
	site := SiteConfig{Name: "Test", URL: "https://example.com"}
	return Page{
		Site:     site,
		Meta:     PageMeta{Title: "Jane · Test", URL: "https://example.com/", OGType: "profile"},
		ViewID:   "v1",
		CSRF:     "tok",
		Content:  cnt,
		Nav:      BuildNav("v1", st, 0),
		Carousel: BuildCarousel("v1", st, cnt),
		Modal:    BuildModal("v1", st, cnt),
		JSONLD:   PersonJsonLD(site, cnt.Profile, cnt.Social),
	}
}

func TestHomeRendersEverySection(t *testing.T) {
	cnt := content.Default()
	st := viewstate.New(len(cnt.Certificates)).State()
	out := render(t, Home(testPage(st, cnt)))

	for _, s := range viewstate.Sections {
		assert.Contains(t, out, `id="`+s.String()+`"`)
	}
	assert.Contains(t, out, `sse-connect="/v/v1/stream/"`)
	assert.Contains(t, out, `href="tel:`)
	assert.Contains(t, out, `href="mailto:your.email@example.com"`)
	assert.Contains(t, out, `"@type":"Person"`)
	assert.Contains(t, out, cnt.Projects[0].Title)
	assert.NotContains(t, out, "ZgotmplZ")
}

func TestNavPartial(t *testing.T) {
	st := viewstate.State{Active: viewstate.Skills, MenuOpen: true}
	out := render(t, NavPartial(BuildNav("v1", st, 0.25)))

	assert.Contains(t, out, `nav-item active" data-section="skills"`)
	assert.Equal(t, 1, strings.Count(out, `nav-item active" data-section`))
	assert.Contains(t, out, "nav-mobile")
	assert.Contains(t, out, `value="0.25"`)

	st.MenuOpen = false
	assert.NotContains(t, render(t, NavPartial(BuildNav("v1", st, 0))), "nav-mobile")
}

func TestCarouselPartial(t *testing.T) {
	cnt := content.Default()
	st := viewstate.State{Index: 4, Count: 5}
	out := render(t, CarouselPartial(BuildCarousel("v1", st, cnt)))

	assert.Contains(t, out, `data-index="4"`)
	assert.Contains(t, out, cnt.Certificates[4].Title)
	assert.Equal(t, 5, strings.Count(out, `aria-label="Certificate `))
	assert.Contains(t, out, `/v/v1/carousel/select/4/`)

	empty := &content.Content{Profile: cnt.Profile}
	out = render(t, CarouselPartial(BuildCarousel("v1", viewstate.State{}, empty)))
	assert.Contains(t, out, "No certificates yet.")
}

func TestModalPartial(t *testing.T) {
	cnt := content.Default()

	closed := render(t, ModalPartial(BuildModal("v1", viewstate.State{Selected: 2}, cnt)))
	assert.Empty(t, strings.TrimSpace(closed))

	open := render(t, ModalPartial(BuildModal("v1", viewstate.State{Selected: 2, ModalOpen: true}, cnt)))
	assert.Contains(t, open, cnt.Certificates[2].Title)
	assert.Contains(t, open, `href="/certificates/2/"`)

	gone := BuildModal("v1", viewstate.State{Selected: 9, ModalOpen: true}, cnt)
	assert.False(t, gone.Open)
}

func TestContactForm(t *testing.T) {
	out := render(t, ContactFormPartial(ContactForm{
		Name:   "<b>Ann</b>",
		Errors: map[string]string{"email": "Enter a valid email address."},
	}))
	assert.Contains(t, out, "&lt;b&gt;Ann&lt;/b&gt;")
	assert.Contains(t, out, "Enter a valid email address.")

	assert.Contains(t, render(t, ContactSent("Ann")), "Thank you, Ann!")
}

func TestErrorPages(t *testing.T) {
	cfg := SiteConfig{Name: "Test"}
	assert.Contains(t, render(t, NotFound(cfg)), "<html")
	assert.Contains(t, render(t, ServerError(cfg)), "<html")
}

func TestAdminInbox(t *testing.T) {
	out := render(t, AdminInbox(Inbox{
		Site:   SiteConfig{Name: "Test"},
		CSRF:   "tok",
		Unread: 1,
		Views:  3,
		Messages: []ContactMessage{{
			ID: 7, Name: "Ann", Email: "ann@example.com", Message: "hello",
			CreatedAt: time.Now().Add(-3 * time.Minute).UTC().Format(time.RFC3339),
		}},
	}))
	assert.Contains(t, out, "1 unread")
	assert.Contains(t, out, "3 open pages")
	assert.Contains(t, out, "/admin/messages/7/read/")
	assert.Contains(t, out, "minutes ago")
}

func TestSafeHref(t *testing.T) {
	tests := []struct {
		in   string
		want template.URL
	}{
		{"https://github.com/x", "https://github.com/x"},
		{"mailto:a@b.c", "mailto:a@b.c"},
		{"tel:+8801", "tel:+8801"},
		{"/public/resume.pdf", "/public/resume.pdf"},
		{"javascript:alert(1)", "#"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SafeHref(tt.in), tt.in)
	}
}

func TestNavItemsOrder(t *testing.T) {
	items := NavItems(viewstate.About)
	require.Len(t, items, len(viewstate.Sections))
	for i, it := range items {
		assert.Equal(t, viewstate.Sections[i], it.Section)
		assert.Equal(t, it.Section == viewstate.About, it.Active)
	}
	assert.Equal(t, "Certificates", items[2].Label)
}
