// Package nanp normalizes free-form phone number text into validated North
// American Numbering Plan numbers.
//
// Input may contain punctuation, spaces and keypad letters ("1-800-FLOWERS").
// Everything that is not an ASCII letter or digit is discarded, letters are
// translated to their keypad digits, and the remaining ten digits (or eleven
// with a leading country code 1) are split into area code, exchange code and
// line number. Numbers whose area or exchange code breaks NANP structure are
// rejected with one of ErrTypeMismatch, ErrInvalidLength or ErrInvalidCode.
//
// Number values are immutable and comparable; their ordering is the numeric
// value of the ten digits.
package nanp
