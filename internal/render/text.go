package render

import (
	"bufio"
	"io"

	"git.home.luguber.info/inful/phonedir/internal/directory"
	perrors "git.home.luguber.info/inful/phonedir/internal/foundation/errors"
)

// Text writes one "(AAA) EEE-LLLL<TAB>name" line per entry.
type Text struct{}

func (Text) Render(w io.Writer, d directory.Directory) error {
	bw := bufio.NewWriter(w)
	for _, e := range d {
		_, _ = bw.WriteString(e.Number.String())
		_ = bw.WriteByte('\t')
		_, _ = bw.WriteString(e.Name)
		_ = bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return writeError(err, FormatText)
	}
	return nil
}

func writeError(err error, f Format) error {
	return perrors.RenderError("write output").WithCause(err).
		WithContext("format", string(f)).
		Build()
}
