package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"

	perrors "git.home.luguber.info/inful/phonedir/internal/foundation/errors"
)

const namespace = "phonedir"

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	linesRead   prom.Counter
	accepted    prom.Counter
	rejected    *prom.CounterVec
	runDuration prom.Histogram
	runOutcome  *prom.CounterVec
}

// NewPrometheusRecorder constructs the collectors and registers them on reg.
// A nil reg gets a private registry.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		linesRead: prom.NewCounter(prom.CounterOpts{
			Namespace: namespace,
			Name:      "lines_read_total",
			Help:      "Directory lines read from input",
		}),
		accepted: prom.NewCounter(prom.CounterOpts{
			Namespace: namespace,
			Name:      "entries_accepted_total",
			Help:      "Entries whose number normalized successfully",
		}),
		rejected: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "entries_rejected_total",
			Help:      "Entries skipped because the number was rejected",
		}, []string{"reason"}),
		runDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Time spent reading, normalizing and sorting a directory",
			Buckets:   prom.ExponentialBuckets(0.001, 4, 8),
		}),
		runOutcome: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "run_outcomes_total",
			Help:      "Runs by final status",
		}, []string{"outcome"}),
	}
	reg.MustRegister(pr.linesRead, pr.accepted, pr.rejected, pr.runDuration, pr.runOutcome)
	return pr
}

func (p *PrometheusRecorder) IncLinesRead() {
	if p == nil {
		return
	}
	p.linesRead.Inc()
}

func (p *PrometheusRecorder) IncAccepted() {
	if p == nil {
		return
	}
	p.accepted.Inc()
}

func (p *PrometheusRecorder) IncRejected(reason string) {
	if p == nil {
		return
	}
	p.rejected.WithLabelValues(reason).Inc()
}

func (p *PrometheusRecorder) ObserveRunDuration(d time.Duration) {
	if p == nil {
		return
	}
	p.runDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncRunOutcome(outcome string) {
	if p == nil {
		return
	}
	p.runOutcome.WithLabelValues(outcome).Inc()
}

// WriteTextfile writes everything gathered from g to path in the text
// exposition format. The file is replaced atomically.
func WriteTextfile(path string, g prom.Gatherer) error {
	if err := prom.WriteToTextfile(path, g); err != nil {
		return perrors.FileSystemError("write metrics textfile").WithCause(err).
			WithContext("path", path).
			Build()
	}
	return nil
}
