package views

import (
	"encoding/json"
	"html/template"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/mdalaminab17/portfolio/content"
	"github.com/mdalaminab17/portfolio/viewstate"
)

// buildURL joins path segments onto a base URL, ensuring a trailing slash.
func buildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if len(pathSegments) > 0 && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// NavItems builds the navigation entries with active highlighted.
func NavItems(active viewstate.Section) []NavItem {
	items := make([]NavItem, len(viewstate.Sections))
	for i, sec := range viewstate.Sections {
		items[i] = NavItem{Section: sec, Label: sec.Label(), Active: sec == active}
	}
	return items
}

// BuildNav maps a view state to the nav fragment.
func BuildNav(viewID string, st viewstate.State, progress float64) Nav {
	return Nav{
		ViewID:   viewID,
		Items:    NavItems(st.Active),
		MenuOpen: st.MenuOpen,
		Progress: progress,
	}
}

// BuildCarousel maps a view state to the carousel fragment.
func BuildCarousel(viewID string, st viewstate.State, c *content.Content) Carousel {
	cert, _ := c.Certificate(st.Index)
	return Carousel{
		ViewID:  viewID,
		Index:   st.Index,
		Count:   len(c.Certificates),
		Current: cert,
	}
}

// BuildModal maps a view state to the modal fragment.
func BuildModal(viewID string, st viewstate.State, c *content.Content) Modal {
	if !st.ModalOpen {
		return Modal{ViewID: viewID}
	}
	cert, ok := c.Certificate(st.Selected)
	return Modal{ViewID: viewID, Open: ok, Index: st.Selected, Certificate: cert}
}

// PersonJsonLD produces a Schema.org Person JSON-LD block for the profile.
func PersonJsonLD(cfg SiteConfig, p content.Profile, social []content.SocialLink) string {
	data := map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "Person",
		"name":     p.Name,
		"url":      buildURL(cfg.URL),
	}
	if p.University != "" {
		data["affiliation"] = map[string]string{
			"@type": "CollegeOrUniversity",
			"name":  p.University,
		}
	}
	var sameAs []string
	for _, s := range social {
		if strings.HasPrefix(s.Href, "http") {
			sameAs = append(sameAs, s.Href)
		}
	}
	if len(sameAs) > 0 {
		data["sameAs"] = sameAs
	}
	if cfg.Description != "" {
		data["description"] = cfg.Description
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// Ago formats an RFC3339 timestamp relative to now, e.g. "3 minutes ago".
func Ago(ts string) string {
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return ts
	}
	return humanize.Time(t)
}

// Bytes formats a size, e.g. "82 kB".
func Bytes(n int) string {
	if n < 0 {
		n = 0
	}
	return humanize.Bytes(uint64(n))
}

// PathEscape wraps url.PathEscape for use in templates.
func PathEscape(s string) string {
	return url.PathEscape(s)
}

// SafeHref passes http, https, mailto and tel links through to templates
// unescaped. Anything else becomes "#".
func SafeHref(raw string) template.URL {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "#"
	}
	switch strings.ToLower(u.Scheme) {
	case "", "http", "https", "mailto", "tel":
		return template.URL(u.String())
	}
	return "#"
}
