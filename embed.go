package portfolio

import "embed"

// EmbeddedAssets contains the static assets shipped with the binary:
// portfolio.js, styles.css, favicon.svg, placeholder.svg.
//
//go:embed embedded/*
var EmbeddedAssets embed.FS

// embeddedFiles are served under /public/.
var embeddedFiles = []string{"portfolio.js", "styles.css", "favicon.svg", "placeholder.svg"}

func faviconSVG() []byte {
	b, _ := EmbeddedAssets.ReadFile("embedded/favicon.svg")
	return b
}
