// Package render writes a directory in one of the supported output formats.
package render

import (
	"io"

	"git.home.luguber.info/inful/phonedir/internal/directory"
	"git.home.luguber.info/inful/phonedir/internal/foundation/normalization"
)

// Format names an output format.
type Format string

const (
	FormatText     Format = "text"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
)

var formats = normalization.NewNormalizer("output format", map[string]Format{
	"text":     FormatText,
	"txt":      FormatText,
	"json":     FormatJSON,
	"yaml":     FormatYAML,
	"yml":      FormatYAML,
	"markdown": FormatMarkdown,
	"md":       FormatMarkdown,
	"html":     FormatHTML,
})

// ParseFormat resolves a user supplied format name. Empty means text.
func ParseFormat(raw string) (Format, error) {
	if normalization.Clean(raw) == "" {
		return FormatText, nil
	}
	return formats.Normalize(raw)
}

// FormatNames lists the accepted format names.
func FormatNames() []string {
	return formats.ValidKeys()
}

// Renderer writes a directory to w.
type Renderer interface {
	Render(w io.Writer, d directory.Directory) error
}

// New returns the renderer for f.
func New(f Format) (Renderer, error) {
	switch f {
	case FormatText:
		return Text{}, nil
	case FormatJSON:
		return JSON{Indent: "  "}, nil
	case FormatYAML:
		return YAML{}, nil
	case FormatMarkdown:
		return Markdown{}, nil
	case FormatHTML:
		return HTML{}, nil
	default:
		_, err := formats.Normalize(string(f))
		return nil, err
	}
}

// Record is the structured form of an entry used by the JSON and YAML renderers.
type Record struct {
	Name   string `json:"name" yaml:"name"`
	Number string `json:"number" yaml:"number"`
	E164   string `json:"e164" yaml:"e164"`
	Region string `json:"region" yaml:"region"`
}

// Records converts d into Records in directory order.
func Records(d directory.Directory) []Record {
	out := make([]Record, 0, len(d))
	for _, e := range d {
		out = append(out, Record{
			Name:   e.Name,
			Number: e.Number.String(),
			E164:   e.Number.E164(),
			Region: e.Number.Region(),
		})
	}
	return out
}
