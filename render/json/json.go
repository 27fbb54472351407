// Package json renders tag reports and listings as JSON.
package json

import (
	"encoding/json"
	"io"

	"github.com/sonnes/kid3/core"
)

// Renderer renders kid3 results to JSON.
type Renderer struct {
	// Indent controls pretty-printing. When true, output is indented.
	Indent bool
}

// New creates a JSON Renderer with indentation enabled.
func New() *Renderer {
	return &Renderer{Indent: true}
}

// RenderTags writes the reports as a JSON array.
func (r *Renderer) RenderTags(w io.Writer, reports []core.TagReport) error {
	if reports == nil {
		reports = []core.TagReport{}
	}
	return r.encode(w, reports)
}

type listing struct {
	Dir   string   `json:"dir"`
	Files []string `json:"files"`
}

// RenderListing writes {"dir": ..., "files": [...]}.
func (r *Renderer) RenderListing(w io.Writer, dir string, files []string) error {
	if files == nil {
		files = []string{}
	}
	return r.encode(w, listing{Dir: dir, Files: files})
}

func (r *Renderer) encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if r.Indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
