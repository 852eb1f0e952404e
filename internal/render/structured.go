package render

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/phonedir/internal/directory"
)

// JSON writes the directory as an array of Records.
type JSON struct {
	Indent string
}

func (j JSON) Render(w io.Writer, d directory.Directory) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", j.Indent)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(Records(d)); err != nil {
		return writeError(err, FormatJSON)
	}
	return nil
}

// YAML writes the directory as a sequence of Records.
type YAML struct{}

func (YAML) Render(w io.Writer, d directory.Directory) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(Records(d)); err != nil {
		return writeError(err, FormatYAML)
	}
	if err := enc.Close(); err != nil {
		return writeError(err, FormatYAML)
	}
	return nil
}
