package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyRunID    = "run_id"
	KeyPath     = "path"
	KeyLine     = "line"
	KeyName     = "name"
	KeyRaw      = "raw_number"
	KeyReason   = "reason"
	KeyCount    = "count"
	KeyAccepted = "accepted"
	KeyRejected = "rejected"
	KeyFormat   = "format"
	KeyDuration = "duration_ms"
	KeyError    = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func RunID(id string) slog.Attr       { return slog.String(KeyRunID, id) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func Line(n int) slog.Attr            { return slog.Int(KeyLine, n) }
func Name(n string) slog.Attr         { return slog.String(KeyName, n) }
func Raw(r string) slog.Attr          { return slog.String(KeyRaw, r) }
func Reason(r string) slog.Attr       { return slog.String(KeyReason, r) }
func Count(n int) slog.Attr           { return slog.Int(KeyCount, n) }
func Accepted(n int) slog.Attr        { return slog.Int(KeyAccepted, n) }
func Rejected(n int) slog.Attr        { return slog.Int(KeyRejected, n) }
func Format(f string) slog.Attr       { return slog.String(KeyFormat, f) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDuration, ms) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
