// Package html renders tag reports and directory listings as standalone HTML
// pages styled with Tailwind CSS v4 (CDN). Frame tables are written as GFM
// markdown and converted with goldmark; the raw frames are shown as JSON
// highlighted by chroma.
package html

import (
	"fmt"
	"html/template"
	"io"

	"github.com/sonnes/kid3/core"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
)

// Renderer renders kid3 results to standalone HTML pages.
type Renderer struct {
	md   goldmark.Markdown
	tmpl *template.Template

	// Title is the page heading for RenderTags. Defaults to "Tags".
	Title string

	// FileHref, when non-nil, turns listing entries into links. Used by the
	// serve command to route each file to its tag page.
	FileHref func(name string) string
}

// New creates an HTML Renderer with goldmark configured for GFM and syntax
// highlighting.
func New() *Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("dracula"),
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(false), // inline styles for standalone pages
				),
			),
		),
	)

	tmpl := template.Must(
		template.New("page.html").
			Funcs(template.FuncMap{"countLabel": countLabel}).
			ParseFS(content, "templates/*.html"),
	)

	return &Renderer{md: md, tmpl: tmpl}
}

// pageData is the template data passed to page.html.
type pageData struct {
	Title string
	Files []fileData
}

type fileData struct {
	Path  string
	Count int
	Table template.HTML
	JSON  template.HTML
}

// listingData is the template data passed to listing.html.
type listingData struct {
	Dir   string
	Files []listingEntry
}

type listingEntry struct {
	Name string
	Href string
}

// RenderTags writes one section per report to w.
func (r *Renderer) RenderTags(w io.Writer, reports []core.TagReport) error {
	title := r.Title
	if title == "" {
		title = "Tags"
	}

	data := pageData{Title: title}
	for _, rep := range reports {
		fd := fileData{Path: rep.Path, Count: len(rep.Frames)}
		if fd.Count > 0 {
			table, err := renderFramesTable(r.md, rep.Frames)
			if err != nil {
				return fmt.Errorf("render %s: %w", rep.Path, err)
			}
			js, err := renderFramesJSON(r.md, rep.Frames)
			if err != nil {
				return fmt.Errorf("render %s: %w", rep.Path, err)
			}
			fd.Table, fd.JSON = table, js
		}
		data.Files = append(data.Files, fd)
	}
	return r.tmpl.ExecuteTemplate(w, "page.html", data)
}

// RenderListing writes the directory listing page to w.
func (r *Renderer) RenderListing(w io.Writer, dir string, files []string) error {
	data := listingData{Dir: dir}
	for _, f := range files {
		e := listingEntry{Name: f}
		if r.FileHref != nil {
			e.Href = r.FileHref(f)
		}
		data.Files = append(data.Files, e)
	}
	return r.tmpl.ExecuteTemplate(w, "listing.html", data)
}

func countLabel(n int, singular, plural string) string {
	if n == 1 {
		return "1 " + singular
	}
	return fmt.Sprintf("%d %s", n, plural)
}
