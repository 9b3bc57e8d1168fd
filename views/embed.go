// Package views embeds the HTML templates rendered by the Fiber template engine.
package views

import "embed"

//go:embed layouts/*.html partials/*.html *.html
var FS embed.FS
