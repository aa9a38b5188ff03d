package views

import (
	"github.com/mdalaminab17/portfolio/content"
	"github.com/mdalaminab17/portfolio/viewstate"
)

// SiteConfig holds site-wide settings populated from environment variables.
// Every handler passes this to templates so nothing is hardcoded.
type SiteConfig struct {
	Name        string // SITE_NAME
	URL         string // SITE_URL
	Description string // SITE_DESCRIPTION
	Author      string // SITE_AUTHOR
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head> template.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "profile"
}

// NavItem is one entry of the navigation bar.
type NavItem struct {
	Section viewstate.Section
	Label   string
	Active  bool
}

// Nav is the navigation bar fragment.
type Nav struct {
	ViewID   string
	Items    []NavItem
	MenuOpen bool
	Progress float64 // scrolled fraction, 0..1
}

// Carousel is the certificate slider fragment.
type Carousel struct {
	ViewID  string
	Index   int
	Count   int
	Current content.Certificate
}

// Modal is the certificate modal fragment. Open is false when closed.
type Modal struct {
	ViewID      string
	Open        bool
	Index       int
	Certificate content.Certificate
}

// ContactForm is the contact form, re-rendered with errors on failure.
type ContactForm struct {
	Name    string
	Email   string
	Subject string
	Message string
	Errors  map[string]string
	Failed  bool // submission accepted but delivery failed
}

// Page is everything the full page template needs.
type Page struct {
	Site     SiteConfig
	Meta     PageMeta
	ViewID   string
	CSRF     string
	Content  *content.Content
	Nav      Nav
	Carousel Carousel
	Modal    Modal
	Form     ContactForm
	JSONLD   string
}

// ContactMessage is a contact form submission as stored and listed in the
// admin inbox.
type ContactMessage struct {
	ID        int64
	Name      string
	Email     string
	Subject   string
	Message   string
	IPHash    string
	CreatedAt string // RFC3339
	Read      bool
}

// Image is an uploaded certificate or project image.
type Image struct {
	Filename     string
	OriginalName string
	Width        int
	Height       int
	Size         int
	UploadedAt   string // RFC3339
}

// Inbox is the admin dashboard.
type Inbox struct {
	Site     SiteConfig
	CSRF     string
	Messages []ContactMessage
	Unread   int
	Views    int
	Notice   string
}
