package viewstate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pageLayout() Layout {
	return Layout{
		Home:         {Top: 0, Height: 900},
		About:        {Top: 900, Height: 700},
		Certificates: {Top: 1600, Height: 800},
		Skills:       {Top: 2400, Height: 600},
		Projects:     {Top: 3000, Height: 1200},
		Contact:      {Top: 4200, Height: 900},
	}
}

func TestActiveSection(t *testing.T) {
	tests := []struct {
		name    string
		scrollY float64
		prev    Section
		want    Section
	}{
		{"top of page", 0, About, Home},
		{"probe lands on boundary", 800, Home, About},
		{"just before boundary", 799, About, Home},
		{"middle of skills", 2500, Home, Skills},
		{"last section", 4500, Home, Contact},
		{"past the end keeps previous", 6000, Projects, Projects},
		{"negative offset keeps previous", -500, Skills, Skills},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ActiveSection(tt.scrollY, pageLayout(), tt.prev))
		})
	}
}

func TestActiveSectionFirstMatchWins(t *testing.T) {
	layout := Layout{
		About:  {Top: 0, Height: 1000},
		Skills: {Top: 0, Height: 1000},
	}
	assert.Equal(t, About, ActiveSection(50, layout, Home))
}

func TestActiveSectionSkipsMissingAnchors(t *testing.T) {
	layout := pageLayout()
	delete(layout, Certificates)
	assert.Equal(t, About, ActiveSection(1700, layout, About))
}

func TestActiveSectionMatchesUniqueContainingSection(t *testing.T) {
	layout := pageLayout()
	for y := -200.0; y < 5400; y += 37 {
		got := ActiveSection(y, layout, Home)
		var want []Section
		for _, sec := range Sections {
			if layout[sec].Contains(y + ProbeOffset) {
				want = append(want, sec)
			}
		}
		if len(want) == 0 {
			assert.Equal(t, Home, got, "offset %v", y)
			continue
		}
		require.Len(t, want, 1)
		assert.Equal(t, want[0], got, "offset %v", y)
	}
}

func TestScrollProgress(t *testing.T) {
	assert.Equal(t, 0.0, ScrollProgress(100, 500, 800))
	assert.Equal(t, 0.5, ScrollProgress(500, 1800, 800))
	assert.Equal(t, 1.0, ScrollProgress(5000, 1800, 800))
	assert.Equal(t, 0.0, ScrollProgress(-20, 1800, 800))
}

func TestParseLayout(t *testing.T) {
	layout, err := ParseLayout("home:0:900, about:900:700.5,unknown:1:1")
	require.NoError(t, err)
	assert.Equal(t, Layout{
		Home:  {Top: 0, Height: 900},
		About: {Top: 900, Height: 700.5},
	}, layout)
	assert.Equal(t, "home:0:900,about:900:700.5", layout.String())

	round, err := ParseLayout(pageLayout().String())
	require.NoError(t, err)
	assert.Equal(t, pageLayout(), round)

	empty, err := ParseLayout("  ")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestParseLayoutRejectsMalformed(t *testing.T) {
	for _, in := range []string{"home:0", "home:x:1", "home:0:y", "home:0:-5", "home:0:1,,"} {
		_, err := ParseLayout(in)
		assert.ErrorIs(t, err, ErrBadLayout, in)
	}
}

func TestSectionHelpers(t *testing.T) {
	sec, ok := ParseSection("certificates")
	require.True(t, ok)
	assert.Equal(t, Certificates, sec)
	assert.Equal(t, "Certificates", sec.Label())

	_, ok = ParseSection("blog")
	assert.False(t, ok)
	assert.False(t, Section("blog").Valid())
}
