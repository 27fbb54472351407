package html

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"slices"
	"strings"

	"github.com/sonnes/kid3/core"
	"github.com/yuin/goldmark"
)

// renderFramesTable converts the frames, in name order, to an HTML table via
// a GFM markdown table.
func renderFramesTable(md goldmark.Markdown, frames core.Frames) (template.HTML, error) {
	names := make([]string, 0, len(frames))
	for name := range frames {
		names = append(names, name)
	}
	slices.Sort(names)

	var src strings.Builder
	src.WriteString("| Frame | Value |\n| --- | --- |\n")
	for _, name := range names {
		fmt.Fprintf(&src, "| %s | %s |\n", escapeMarkdown(name), escapeMarkdown(frames[name]))
	}

	var buf bytes.Buffer
	if err := md.Convert([]byte(src.String()), &buf); err != nil {
		return "", fmt.Errorf("goldmark convert: %w", err)
	}
	return template.HTML(buf.String()), nil
}

// renderFramesJSON renders the frames as a highlighted JSON code block. If
// conversion fails the JSON is shown in a plain pre block.
func renderFramesJSON(md goldmark.Markdown, frames core.Frames) (template.HTML, error) {
	data, err := json.MarshalIndent(frames, "", "  ")
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	fenced := "```json\n" + string(data) + "\n```"
	if err := md.Convert([]byte(fenced), &buf); err != nil {
		return template.HTML(`<pre class="text-xs font-mono">` + template.HTMLEscapeString(string(data)) + `</pre>`), nil
	}
	return template.HTML(buf.String()), nil
}

// escapeMarkdown backslash-escapes ASCII punctuation so frame values render as
// literal text inside a table cell. Newlines become spaces.
func escapeMarkdown(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r == '\n' || r == '\r':
			b.WriteByte(' ')
		case r < 0x80 && strings.ContainsRune("!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~", r):
			b.WriteByte('\\')
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
