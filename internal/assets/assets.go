// Package assets holds files embedded into the binary for rendered pages.
package assets

import (
	_ "embed"
)

//go:embed page.css
var pageCSS string

// Stylesheet returns the stylesheet shared by every rendered page: badge
// classes, inline messages and the empty-state toggle.
func Stylesheet() string { return pageCSS }
