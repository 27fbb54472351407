// Package terminal renders tag reports as ANSI-colored frame tables.
package terminal

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
	"github.com/sonnes/kid3/core"
)

const defaultWidth = 100

// Renderer pretty-prints tag reports to the terminal.
type Renderer struct {
	// Width overrides terminal width detection. Zero means auto-detect.
	Width int
}

// New creates a terminal Renderer.
func New() *Renderer {
	return &Renderer{}
}

// RenderTags writes one block per report: the file path followed by its
// frames in name order.
func (r *Renderer) RenderTags(w io.Writer, reports []core.TagReport) error {
	width := r.termWidth()
	for i, rep := range reports {
		if i > 0 {
			writeSeparator(w, width)
		}
		writeReport(w, rep, width)
	}
	return nil
}

// RenderListing writes the directory name, a file count and one file per line.
func (r *Renderer) RenderListing(w io.Writer, dir string, files []string) error {
	width := r.termWidth()
	fmt.Fprintln(w, styleTitle.Render(truncate(dir, width)))
	fmt.Fprintln(w, styleMeta.Render(countLabel(len(files), "file", "files")))
	fmt.Fprintln(w)
	for _, f := range files {
		fmt.Fprintln(w, "  "+styleFile.Render(truncate(f, width-2)))
	}
	return nil
}

func (r *Renderer) termWidth() int {
	if r.Width > 0 {
		return r.Width
	}
	if w, _, err := term.GetSize(os.Stdout.Fd()); err == nil && w > 0 {
		return w
	}
	return defaultWidth
}

func writeReport(w io.Writer, rep core.TagReport, width int) {
	fmt.Fprintln(w, styleTitle.Render(truncate(rep.Path, width)))

	if len(rep.Frames) == 0 {
		fmt.Fprintln(w, "  "+styleMeta.Render("no tags"))
		return
	}

	names := make([]string, 0, len(rep.Frames))
	nameWidth := 0
	for name := range rep.Frames {
		names = append(names, name)
		nameWidth = max(nameWidth, lipgloss.Width(name))
	}
	slices.Sort(names)

	valueWidth := max(width-nameWidth-6, 20)
	for _, name := range names {
		pad := strings.Repeat(" ", nameWidth-lipgloss.Width(name))
		fmt.Fprintf(w, "  %s%s  %s\n",
			styleFrameName.Render(name), pad,
			truncate(rep.Frames[name], valueWidth))
	}
}

// writeSeparator renders a horizontal rule.
func writeSeparator(w io.Writer, width int) {
	n := min(width, 72)
	fmt.Fprintln(w)
	fmt.Fprintln(w, styleSeparator.Render(strings.Repeat("─", n)))
	fmt.Fprintln(w)
}

// truncate shortens text to maxWidth, appending "..." if needed.
// Multi-line text is reduced to the first line.
func truncate(s string, maxWidth int) string {
	if maxWidth < 4 {
		maxWidth = 4
	}
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		s = s[:idx]
	}
	s = strings.TrimSpace(s)

	if lipgloss.Width(s) <= maxWidth {
		return s
	}

	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+3 > maxWidth {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "..."
}

func countLabel(n int, singular, plural string) string {
	if n == 1 {
		return "1 " + singular
	}
	return fmt.Sprintf("%d %s", n, plural)
}
