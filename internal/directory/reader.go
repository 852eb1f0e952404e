package directory

import (
	"bufio"
	"context"
	"io"
	"strings"

	perrors "git.home.luguber.info/inful/phonedir/internal/foundation/errors"
)

const maxLineSize = 1 << 20

// ErrMalformedLine is matched (errors.Is) by errors for lines that are not
// exactly one name and one number separated by a tab.
var ErrMalformedLine = perrors.InputError("line must be name<TAB>number").Build()

// Pair is one raw directory record. Raw is usually the number text read from
// input, but programmatic callers may pass any value Normalize accepts.
type Pair struct {
	Name string
	Raw  any
	Line int
}

// Reader reads Pairs from tab separated text.
type Reader struct {
	sc   *bufio.Scanner
	line int
}

// NewReader returns a Reader over r.
func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &Reader{sc: sc}
}

// Next returns the next pair, skipping blank lines. It returns io.EOF after
// the last line.
func (r *Reader) Next() (Pair, error) {
	for r.sc.Scan() {
		r.line++
		text := strings.TrimSpace(r.sc.Text())
		if text == "" {
			continue
		}
		fields := strings.Split(text, "\t")
		if len(fields) != 2 {
			return Pair{}, perrors.InputError(ErrMalformedLine.Message()).
				WithContext("line", r.line).
				WithContext("fields", len(fields)).
				Build()
		}
		return Pair{Name: fields[0], Raw: fields[1], Line: r.line}, nil
	}
	if err := r.sc.Err(); err != nil {
		return Pair{}, perrors.FileSystemError("read directory input").WithCause(err).
			WithContext("line", r.line+1).
			Build()
	}
	return Pair{}, io.EOF
}

// ReadPairs reads every pair from r.
func ReadPairs(ctx context.Context, r io.Reader) ([]Pair, error) {
	reader := NewReader(r)
	var pairs []Pair
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		p, err := reader.Next()
		if err == io.EOF {
			return pairs, nil
		}
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, p)
	}
}
