package nanp

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	perrors "git.home.luguber.info/inful/phonedir/internal/foundation/errors"
)

func TestNormalize_Valid(t *testing.T) {
	tests := []struct {
		name    string
		input   any
		display string
		value   uint64
	}{
		{"dashes", "212-555-0100", "(212) 555-0100", 2125550100},
		{"parens and space", "(202) 555-0199", "(202) 555-0199", 2025550199},
		{"dots", "303.555.0188", "(303) 555-0188", 3035550188},
		{"bare digits", "3035550188", "(303) 555-0188", 3035550188},
		{"country code", "+1 (212) 555-0100", "(212) 555-0100", 2125550100},
		{"country code dashes", "1-212-555-0100", "(212) 555-0100", 2125550100},
		{"letters", "1-800-FLOWERS", "(800) 356-9377", 8003569377},
		{"lowercase letters", "1-800-flowers", "(800) 356-9377", 8003569377},
		{"mixed case letters", "800-Go-FedEx", "(800) 463-3339", 8004633339},
		{"letters without country code", "212-CALL-NOW", "(212) 225-5669", 2122255669},
		{"int", 2125550100, "(212) 555-0100", 2125550100},
		{"int with country code", 12125550100, "(212) 555-0100", 2125550100},
		{"int64", int64(3035550188), "(303) 555-0188", 3035550188},
		{"uint64", uint64(9195550123), "(919) 555-0123", 9195550123},
		{"bytes", []byte("202 555 0199"), "(202) 555-0199", 2025550199},
		{"exchange ending in 1", "212-551-0100", "(212) 551-0100", 2125510100},
		{"exchange with middle 1", "212-515-0100", "(212) 515-0100", 2125150100},
		{"line all ones", "212-555-1111", "(212) 555-1111", 2125551111},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := Normalize(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.display, n.String())
			assert.Equal(t, tt.value, n.Int())
			assert.Len(t, n.AreaCode(), 3)
			assert.Len(t, n.ExchangeCode(), 3)
			assert.Len(t, n.LineNumber(), 4)
		})
	}
}

func TestNormalize_TypeMismatch(t *testing.T) {
	for _, input := range []any{nil, 2.1255501e9, float32(1), true, struct{}{}, []string{"212-555-0100"}} {
		t.Run(fmt.Sprintf("%T", input), func(t *testing.T) {
			n, err := Normalize(input)
			require.ErrorIs(t, err, ErrTypeMismatch)
			assert.True(t, n.IsZero())
			assert.Equal(t, ReasonTypeMismatch, ReasonOf(err))
		})
	}
}

func TestNormalize_InvalidLength(t *testing.T) {
	tests := []struct {
		name  string
		input any
	}{
		{"empty", ""},
		{"punctuation only", "() - ."},
		{"seven digits", "555-0100"},
		{"nine digits", "212-555-010"},
		{"eleven without leading one", "2-212-555-0100"},
		{"eleven letters without leading one", "CALLNOWPLZX"},
		{"twelve digits", "1-212-555-01000"},
		{"leading one counted after cleaning", "+11 212 555 0100"},
		{"short int", 5550100},
		{"negative int", -2125550},
		{"full width digits are dropped", "２１２-５５５-０１００"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := Normalize(tt.input)
			require.ErrorIs(t, err, ErrInvalidLength)
			assert.True(t, n.IsZero())
			assert.NotErrorIs(t, err, ErrInvalidCode)
		})
	}
}

func TestNormalize_InvalidCode(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"area starts with 1", "123-456-7890"},
		{"area starts with 0", "023-456-7890"},
		{"exchange starts with 1", "212-155-0100"},
		{"exchange starts with 0", "212-055-0100"},
		{"exchange N11", "212-411-0100"},
		{"exchange 911", "212-911-0100"},
		{"exchange ends in 11", "212-511-0100"},
		{"area 911", "911-555-0100"},
		{"area 211", "211-555-0100"},
		{"area 011", "011-555-0100"},
		{"country code then bad area", "1-123-456-7890"},
		{"letters produce bad exchange", "212-1AA-0100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := Normalize(tt.input)
			require.ErrorIs(t, err, ErrInvalidCode)
			assert.True(t, n.IsZero())
			assert.Equal(t, ReasonInvalidCode, ReasonOf(err))
		})
	}
}

func TestNormalize_ErrorContext(t *testing.T) {
	_, err := Normalize("123-456-7890")
	classified, ok := perrors.AsClassified(err)
	require.True(t, ok)
	assert.Equal(t, perrors.CategoryValidation, classified.Category())
	assert.Equal(t, perrors.SeverityWarning, classified.Severity())

	area, _ := classified.Context().GetString("area_code")
	exchange, _ := classified.Context().GetString("exchange_code")
	input, _ := classified.Context().GetString("input")
	assert.Equal(t, "123", area)
	assert.Equal(t, "456", exchange)
	assert.Equal(t, "123-456-7890", input)

	_, err = Normalize("555-0100")
	classified, ok = perrors.AsClassified(err)
	require.True(t, ok)
	length, _ := classified.Context().Get("cleaned_length")
	assert.Equal(t, 7, length)

	_, err = Normalize(3.5)
	classified, ok = perrors.AsClassified(err)
	require.True(t, ok)
	typ, _ := classified.Context().GetString("type")
	assert.Equal(t, "float64", typ)
}

// Every area code either normalizes to itself or is rejected as an invalid
// code, depending only on the NANP structural rules.
func TestNormalize_AllAreaCodes(t *testing.T) {
	for area := 0; area < 1000; area++ {
		raw := fmt.Sprintf("%03d5550142", area)
		code := raw[:3]
		n, err := Normalize(raw)
		if code[0] >= '2' && code[1:] != "11" {
			require.NoError(t, err, raw)
			assert.Equal(t, uint64(area)*10000000+5550142, n.Int())
			continue
		}
		require.ErrorIs(t, err, ErrInvalidCode, raw)
	}
}

func TestNormalize_AllExchangeCodes(t *testing.T) {
	for exchange := 0; exchange < 1000; exchange++ {
		raw := fmt.Sprintf("212%03d0142", exchange)
		code := raw[3:6]
		n, err := Normalize(raw)
		if code[0] >= '2' && code[1:] != "11" {
			require.NoError(t, err, raw)
			assert.Equal(t, code, n.ExchangeCode())
			continue
		}
		require.ErrorIs(t, err, ErrInvalidCode, raw)
	}
}

func TestNormalize_CountryCodeEquivalence(t *testing.T) {
	for _, raw := range []string{"2125550100", "8003569377", "9195550123", "4165550134", "9999999999"} {
		ten, err := Normalize(raw)
		require.NoError(t, err)
		eleven, err := Normalize("1" + raw)
		require.NoError(t, err)
		assert.True(t, ten.Equal(eleven), raw)
		assert.Equal(t, raw, ten.Digits())
	}
}

func TestNormalize_DisplayRoundTrip(t *testing.T) {
	for _, raw := range []any{"212-555-0100", "1-800-FLOWERS", 9195550123, "(303) 555-0188"} {
		n := MustNormalize(raw)
		again, err := Normalize(n.String())
		require.NoError(t, err)
		assert.Equal(t, 0, n.Compare(again))
		assert.Equal(t, n, again)
	}
}

func TestNormalizer_WidthFolding(t *testing.T) {
	z := NewNormalizer(WithWidthFolding())

	n, err := z.Normalize("２１２-５５５-０１００")
	require.NoError(t, err)
	assert.Equal(t, "(212) 555-0100", n.String())

	n, err = z.Normalize("１-８００-ＦＬＯＷＥＲＳ")
	require.NoError(t, err)
	assert.Equal(t, "(800) 356-9377", n.String())

	_, err = z.Normalize("123-456-7890")
	assert.ErrorIs(t, err, ErrInvalidCode)
}

func TestNormalizeResult(t *testing.T) {
	ok := NormalizeResult("212-555-0100")
	require.True(t, ok.IsOk())
	assert.Equal(t, uint64(2125550100), ok.Unwrap().Int())

	bad := NormalizeResult("123-456-7890")
	require.True(t, bad.IsErr())
	assert.ErrorIs(t, bad.Error(), ErrInvalidCode)
	assert.True(t, bad.UnwrapOr(Number{}).IsZero())
}

func TestMustNormalizePanics(t *testing.T) {
	assert.Panics(t, func() { MustNormalize("911") })
	assert.NotPanics(t, func() { MustNormalize("2125550100") })
}

func TestIsRejection(t *testing.T) {
	_, lengthErr := Normalize("1")
	assert.True(t, IsRejection(lengthErr))
	assert.True(t, IsRejection(fmt.Errorf("line 2: %w", lengthErr)))
	assert.False(t, IsRejection(nil))
	assert.False(t, IsRejection(errors.New("read failed")))
	assert.False(t, IsRejection(perrors.ValidationError("something else").Build()))
	assert.Equal(t, Reason(""), ReasonOf(errors.New("read failed")))
}

func TestKeypadDigit(t *testing.T) {
	want := map[byte]byte{
		'A': '2', 'B': '2', 'C': '2', 'D': '3', 'E': '3', 'F': '3',
		'G': '4', 'H': '4', 'I': '4', 'J': '5', 'K': '5', 'L': '5',
		'M': '6', 'N': '6', 'O': '6', 'P': '7', 'Q': '7', 'R': '7', 'S': '7',
		'T': '8', 'U': '8', 'V': '8', 'W': '9', 'X': '9', 'Y': '9', 'Z': '9',
	}
	for letter, digit := range want {
		got, ok := KeypadDigit(letter)
		require.True(t, ok)
		assert.Equal(t, string(digit), string(got), string(letter))

		got, ok = KeypadDigit(letter + ('a' - 'A'))
		require.True(t, ok)
		assert.Equal(t, string(digit), string(got))
	}

	d, ok := KeypadDigit('7')
	assert.True(t, ok)
	assert.Equal(t, byte('7'), d)

	for _, c := range []byte{'-', ' ', '(', '+', 0xC3} {
		_, ok := KeypadDigit(c)
		assert.False(t, ok)
	}
}
