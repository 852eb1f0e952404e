package metrics

import "time"

// Outcome labels for IncRunOutcome.
const (
	OutcomeSuccess      = "success"
	OutcomeFailed       = "failed"
	OutcomeRenderFailed = "render_failed"
)

// Recorder defines observability hooks for a directory run.
type Recorder interface {
	IncLinesRead()
	IncAccepted()
	IncRejected(reason string)
	ObserveRunDuration(d time.Duration)
	IncRunOutcome(outcome string)
}

// NoopRecorder is a Recorder that does nothing (default when metrics are not configured).
type NoopRecorder struct{}

func (NoopRecorder) IncLinesRead()                    {}
func (NoopRecorder) IncAccepted()                     {}
func (NoopRecorder) IncRejected(string)               {}
func (NoopRecorder) ObserveRunDuration(time.Duration) {}
func (NoopRecorder) IncRunOutcome(string)             {}
