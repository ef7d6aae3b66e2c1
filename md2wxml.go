// Package md2wxml converts a markdown subset into WXML markup in one call.
// The underlying node tree and renderer live in the markdown and wxml
// packages; this is the shortcut for callers that only want markup out.
package md2wxml

import (
	"github.com/nexvx/md2wxml/markdown"
	"github.com/nexvx/md2wxml/wxml"
)

// Convert parses text and renders it with the given options.
func Convert(text string, opts wxml.Options) string {
	return wxml.NewRenderer(opts).Render(markdown.Parse(text))
}
