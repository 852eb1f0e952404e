package nanp

import (
	"fmt"
	"strconv"

	"golang.org/x/text/unicode/norm"

	"git.home.luguber.info/inful/phonedir/internal/foundation"
	perrors "git.home.luguber.info/inful/phonedir/internal/foundation/errors"
)

// reservedCodes may not be used as area or exchange code.
var reservedCodes = map[string]struct{}{
	"011": {}, "111": {}, "211": {}, "311": {}, "411": {},
	"511": {}, "611": {}, "711": {}, "811": {}, "911": {},
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithWidthFolding applies NFKC before cleaning so that full-width digits
// and letters ("２１２") are treated like their ASCII forms.
func WithWidthFolding() Option {
	return func(n *Normalizer) { n.foldWidth = true }
}

// Normalizer converts raw input into Numbers. It holds no mutable state and
// is safe for concurrent use.
type Normalizer struct {
	foldWidth bool
}

// NewNormalizer creates a Normalizer with the given options.
func NewNormalizer(opts ...Option) *Normalizer {
	n := &Normalizer{}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

var defaultNormalizer = NewNormalizer()

// Normalize parses input with the default Normalizer.
func Normalize(input any) (Number, error) {
	return defaultNormalizer.Normalize(input)
}

// NormalizeResult is Normalize in Result form.
func NormalizeResult(input any) foundation.Result[Number] {
	return foundation.FromTuple(Normalize(input))
}

// MustNormalize is like Normalize but panics on error. Intended for constants and tests.
func MustNormalize(input any) Number {
	n, err := Normalize(input)
	if err != nil {
		panic(err)
	}
	return n
}

// Normalize converts a string, byte slice or integer into a Number.
func (z *Normalizer) Normalize(input any) (Number, error) {
	text, ok := asText(input)
	if !ok {
		return Number{}, perrors.ValidationError(ErrTypeMismatch.Message()).
			WithContext("type", fmt.Sprintf("%T", input)).
			Build()
	}
	if z.foldWidth {
		text = norm.NFKC.String(text)
	}

	cleaned := clean(text)
	translated := make([]byte, len(cleaned))
	for i := 0; i < len(cleaned); i++ {
		translated[i], _ = KeypadDigit(cleaned[i])
	}

	var digits []byte
	switch {
	case len(cleaned) == 10:
		digits = translated
	case len(cleaned) == 11 && cleaned[0] == '1':
		digits = translated[1:]
	default:
		return Number{}, reject(ErrInvalidLength, text).
			WithContext("cleaned_length", len(cleaned)).
			Build()
	}

	n := Number{
		area:     string(digits[:3]),
		exchange: string(digits[3:6]),
		line:     string(digits[6:]),
	}
	if !validCodes(n.area, n.exchange) {
		return Number{}, reject(ErrInvalidCode, text).
			WithContextMap(perrors.ErrorContext{"area_code": n.area, "exchange_code": n.exchange}).
			Build()
	}
	return n, nil
}

// validCodes applies the NANP structural rules to area and exchange codes.
func validCodes(area, exchange string) bool {
	if area[0] == '0' || area[0] == '1' || exchange[0] == '0' || exchange[0] == '1' {
		return false
	}
	if exchange[1:] == "11" {
		return false
	}
	_, areaReserved := reservedCodes[area]
	_, exchangeReserved := reservedCodes[exchange]
	return !areaReserved && !exchangeReserved
}

// clean keeps only ASCII letters and digits.
func clean(s string) []byte {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c >= '0' && c <= '9') || (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') {
			out = append(out, c)
		}
	}
	return out
}

func asText(input any) (string, bool) {
	switch v := input.(type) {
	case string:
		return v, true
	case []byte:
		return string(v), true
	case int:
		return strconv.FormatInt(int64(v), 10), true
	case int8:
		return strconv.FormatInt(int64(v), 10), true
	case int16:
		return strconv.FormatInt(int64(v), 10), true
	case int32:
		return strconv.FormatInt(int64(v), 10), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case uint:
		return strconv.FormatUint(uint64(v), 10), true
	case uint8:
		return strconv.FormatUint(uint64(v), 10), true
	case uint16:
		return strconv.FormatUint(uint64(v), 10), true
	case uint32:
		return strconv.FormatUint(uint64(v), 10), true
	case uint64:
		return strconv.FormatUint(v, 10), true
	default:
		return "", false
	}
}
