package render

import (
	"bytes"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"

	"git.home.luguber.info/inful/phonedir/internal/directory"
)

// escapeCell backslash-escapes every ASCII punctuation character so a name
// always renders as literal text, never as links, emphasis or entities.
func escapeCell(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) + len(s)/4)
	for i := 0; i < len(s); i++ {
		if util.IsPunct(s[i]) {
			sb.WriteByte('\\')
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}

// Markdown writes a GitHub flavored markdown table.
type Markdown struct{}

func (Markdown) Render(w io.Writer, d directory.Directory) error {
	if _, err := w.Write(markdownTable(d)); err != nil {
		return writeError(err, FormatMarkdown)
	}
	return nil
}

func markdownTable(d directory.Directory) []byte {
	var buf bytes.Buffer
	buf.WriteString("| Number | Name |\n")
	buf.WriteString("| --- | --- |\n")
	for _, e := range d {
		buf.WriteString("| ")
		buf.WriteString(e.Number.String())
		buf.WriteString(" | ")
		buf.WriteString(escapeCell(e.Name))
		buf.WriteString(" |\n")
	}
	return buf.Bytes()
}

// HTML converts the markdown table to an HTML fragment.
type HTML struct{}

var htmlConverter = goldmark.New(
	goldmark.WithExtensions(extension.Table),
	goldmark.WithRendererOptions(html.WithXHTML()),
)

func (HTML) Render(w io.Writer, d directory.Directory) error {
	if err := htmlConverter.Convert(markdownTable(d), w); err != nil {
		return writeError(err, FormatHTML)
	}
	return nil
}
