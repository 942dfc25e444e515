// Package web holds the embedded HTML templates.
package web

import "embed"

//go:embed templates/*.html
var Templates embed.FS

// Layout is parsed together with every page template.
const Layout = "templates/layout.html"
