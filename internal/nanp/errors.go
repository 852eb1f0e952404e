package nanp

import (
	"errors"

	perrors "git.home.luguber.info/inful/phonedir/internal/foundation/errors"
)

// Rejection kinds. Errors returned by Normalize match exactly one of these
// with errors.Is and carry the offending input in their context.
var (
	ErrTypeMismatch  = perrors.ValidationError("phone number must be a string or integer").Build()
	ErrInvalidLength = perrors.ValidationError("phone number must have exactly 10 digits, or 11 starting with 1").Build()
	ErrInvalidCode   = perrors.ValidationError("phone number contains an invalid area code or exchange code").Build()
)

// Reason is a stable, label-friendly name for a rejection kind.
type Reason string

const (
	ReasonTypeMismatch  Reason = "type_mismatch"
	ReasonInvalidLength Reason = "invalid_length"
	ReasonInvalidCode   Reason = "invalid_code"
)

// ReasonOf returns the rejection kind of err, or "" when err is not a rejection.
func ReasonOf(err error) Reason {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTypeMismatch):
		return ReasonTypeMismatch
	case errors.Is(err, ErrInvalidLength):
		return ReasonInvalidLength
	case errors.Is(err, ErrInvalidCode):
		return ReasonInvalidCode
	default:
		return ""
	}
}

// IsRejection reports whether err means the input is not a usable NANP number.
func IsRejection(err error) bool {
	return ReasonOf(err) != ""
}

func reject(kind *perrors.ClassifiedError, input string) *perrors.ErrorBuilder {
	return perrors.ValidationError(kind.Message()).WithContext("input", input)
}
