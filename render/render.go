// Package render defines the interface for rendering tag reports and
// directory listings into various output formats.
package render

import (
	"io"

	"github.com/sonnes/kid3/core"
)

// Renderer writes kid3 results to the given writer in a specific format.
type Renderer interface {
	RenderTags(w io.Writer, reports []core.TagReport) error
	RenderListing(w io.Writer, dir string, files []string) error
}
