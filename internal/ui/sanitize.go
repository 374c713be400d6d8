package ui

import (
	"html"

	"github.com/microcosm-cc/bluemonday"
)

var stripPolicy = bluemonday.StrictPolicy()

// stripHTML removes all markup from user-authored text before it reaches the
// terminal. State keeps the text verbatim; only the rendered form is cleaned.
func stripHTML(s string) string {
	return html.UnescapeString(stripPolicy.Sanitize(s))
}
