package viewstate

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ProbeOffset is added to the scroll offset before testing section bounds,
// compensating for the fixed navigation bar.
const ProbeOffset = 100

// ErrBadLayout is returned when a layout string cannot be parsed.
var ErrBadLayout = errors.New("viewstate: malformed layout")

// Bounds is the vertical extent of a section in document coordinates.
type Bounds struct {
	Top    float64
	Height float64
}

// Contains reports whether y lies in [Top, Top+Height).
func (b Bounds) Contains(y float64) bool {
	return y >= b.Top && y < b.Top+b.Height
}

// Layout maps sections to their measured bounds. A section missing from the
// layout has no element on the page and is skipped.
type Layout map[Section]Bounds

// ActiveSection returns the first section, in declaration order, whose
// bounds contain scrollY+ProbeOffset. If none does, prev is returned.
func ActiveSection(scrollY float64, layout Layout, prev Section) Section {
	probe := scrollY + ProbeOffset
	for _, sec := range Sections {
		b, ok := layout[sec]
		if !ok {
			continue
		}
		if b.Contains(probe) {
			return sec
		}
	}
	return prev
}

// ScrollProgress returns how far the document has been scrolled, in [0,1].
func ScrollProgress(scrollY, docHeight, viewport float64) float64 {
	scrollable := docHeight - viewport
	if scrollable <= 0 {
		return 0
	}
	p := scrollY / scrollable
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	}
	return p
}

// ParseLayout parses the wire form "home:0:900,about:900:650".
// Unknown section names are ignored so older pages keep working.
func ParseLayout(s string) (Layout, error) {
	layout := make(Layout)
	s = strings.TrimSpace(s)
	if s == "" {
		return layout, nil
	}
	for _, entry := range strings.Split(s, ",") {
		parts := strings.Split(strings.TrimSpace(entry), ":")
		if len(parts) != 3 {
			return nil, fmt.Errorf("%w: entry %q", ErrBadLayout, entry)
		}
		top, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: top of %q: %v", ErrBadLayout, parts[0], err)
		}
		height, err := strconv.ParseFloat(parts[2], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: height of %q: %v", ErrBadLayout, parts[0], err)
		}
		if height < 0 {
			return nil, fmt.Errorf("%w: negative height for %q", ErrBadLayout, parts[0])
		}
		sec, ok := ParseSection(parts[0])
		if !ok {
			continue
		}
		layout[sec] = Bounds{Top: top, Height: height}
	}
	return layout, nil
}

// String encodes the layout in declaration order using the wire form.
func (l Layout) String() string {
	var b strings.Builder
	for _, sec := range Sections {
		bounds, ok := l[sec]
		if !ok {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(string(sec))
		b.WriteByte(':')
		b.WriteString(strconv.FormatFloat(bounds.Top, 'f', -1, 64))
		b.WriteByte(':')
		b.WriteString(strconv.FormatFloat(bounds.Height, 'f', -1, 64))
	}
	return b.String()
}
