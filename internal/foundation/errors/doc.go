// Package errors provides the classified error type used across phonedir.
//
// A ClassifiedError carries a category, a severity and structured context.
// Categories drive CLI exit codes (see CLIErrorAdapter) and let callers tell
// rejected input apart from I/O or configuration failures.
package errors
