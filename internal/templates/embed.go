package templates

import "embed"

// FS holds the page layouts, page bodies and partials.
//
//go:embed *.html
var FS embed.FS
