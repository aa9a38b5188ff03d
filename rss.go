package portfolio

import (
	"encoding/xml"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mdalaminab17/portfolio/content"
)

type rssXML struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	PubDate     string `xml:"pubDate,omitempty"`
	GUID        string `xml:"guid"`
}

// certificateLayouts are the date forms accepted in the content file.
var certificateLayouts = []string{"2006-01-02", "January 2006", "Jan 2006", "2006"}

func parseCertificateDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range certificateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// certificateDate returns the certificate date as YYYY-MM-DD, or "" when it
// cannot be parsed.
func certificateDate(cert content.Certificate) string {
	if t, ok := parseCertificateDate(cert.Date); ok {
		return t.Format("2006-01-02")
	}
	return ""
}

// renderRSS publishes the certificates as a feed, one item per permalink.
func (a *App) renderRSS(c echo.Context, certs []content.Certificate) error {
	base := a.Config.URL
	items := make([]rssItem, 0, len(certs))
	for i, cert := range certs {
		pubDate := ""
		if t, ok := parseCertificateDate(cert.Date); ok {
			pubDate = t.Format(time.RFC1123Z)
		}
		certURL := BuildURL(base, "certificates", strconv.Itoa(i))
		desc := cert.Issuer
		if len(cert.Skills) > 0 {
			desc += ": " + strings.Join(cert.Skills, ", ")
		}
		items = append(items, rssItem{
			Title:       cert.Title,
			Link:        certURL,
			Description: desc,
			PubDate:     pubDate,
			GUID:        certURL,
		})
	}
	title := a.Config.Name
	if name := a.Content.Get().Profile.Name; name != "" {
		title = name + " · Certificates"
	}
	feed := rssXML{
		Version: "2.0",
		Channel: rssChannel{
			Title:       title,
			Link:        base,
			Description: a.Config.Description,
			Items:       items,
		},
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/rss+xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	c.Response().Write([]byte(xml.Header))
	return xml.NewEncoder(c.Response()).Encode(feed)
}
