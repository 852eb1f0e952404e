package directory

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	perrors "git.home.luguber.info/inful/phonedir/internal/foundation/errors"
	"git.home.luguber.info/inful/phonedir/internal/logfields"
	"git.home.luguber.info/inful/phonedir/internal/metrics"
	"git.home.luguber.info/inful/phonedir/internal/nanp"
)

// Report summarizes a build.
type Report struct {
	Read     int
	Accepted int
	Rejected int
	ByReason map[nanp.Reason]int
}

func (r *Report) reject(reason nanp.Reason) {
	r.Rejected++
	if r.ByReason == nil {
		r.ByReason = make(map[nanp.Reason]int)
	}
	r.ByReason[reason]++
}

// Option configures a Builder.
type Option func(*Builder)

// WithNormalizer replaces the default number normalizer.
func WithNormalizer(n *nanp.Normalizer) Option {
	return func(b *Builder) { b.normalizer = n }
}

// WithLogger sets the logger used for skip diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(b *Builder) { b.logger = l }
}

// WithRecorder enables metrics collection.
func WithRecorder(r metrics.Recorder) Option {
	return func(b *Builder) { b.recorder = r }
}

// WithWarnOnSkip logs skipped entries at warn level instead of debug.
func WithWarnOnSkip(warn bool) Option {
	return func(b *Builder) { b.warnOnSkip = warn }
}

// WithRunOutcome controls whether BuildFrom and BuildFile record the run
// outcome. Callers that do more work after the build (rendering) disable it
// and record the final outcome themselves.
func WithRunOutcome(record bool) Option {
	return func(b *Builder) { b.recordOutcome = record }
}

// Builder normalizes pairs into a sorted Directory.
type Builder struct {
	normalizer    *nanp.Normalizer
	logger        *slog.Logger
	recorder      metrics.Recorder
	warnOnSkip    bool
	recordOutcome bool
}

// NewBuilder creates a Builder with the given options.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		normalizer:    nanp.NewNormalizer(),
		logger:        slog.Default(),
		recorder:      metrics.NoopRecorder{},
		recordOutcome: true,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build normalizes every pair and returns the accepted entries sorted by
// number. Pairs whose number is rejected are skipped; any other error aborts
// the build.
func (b *Builder) Build(pairs []Pair) (Directory, Report, error) {
	dir := make(Directory, 0, len(pairs))
	var report Report
	for _, p := range pairs {
		entry, ok, err := b.add(p, &report)
		if err != nil {
			return nil, report, err
		}
		if ok {
			dir = append(dir, entry)
		}
	}
	dir.Sort()
	return dir, report, nil
}

// BuildFrom reads pairs from r and builds the directory.
func (b *Builder) BuildFrom(ctx context.Context, r io.Reader) (Directory, Report, error) {
	start := time.Now()
	dir, report, err := b.buildFrom(ctx, r)
	b.recorder.ObserveRunDuration(time.Since(start))
	if err != nil {
		b.outcome(metrics.OutcomeFailed)
		return nil, report, err
	}
	b.outcome(metrics.OutcomeSuccess)
	b.logger.Debug("Directory built",
		logfields.Count(report.Read),
		logfields.Accepted(report.Accepted),
		logfields.Rejected(report.Rejected),
		logfields.DurationMS(float64(time.Since(start).Microseconds())/1000))
	return dir, report, nil
}

func (b *Builder) buildFrom(ctx context.Context, r io.Reader) (Directory, Report, error) {
	reader := NewReader(r)
	var (
		dir    Directory
		report Report
	)
	for {
		if err := ctx.Err(); err != nil {
			return nil, report, err
		}
		p, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, report, err
		}
		entry, ok, err := b.add(p, &report)
		if err != nil {
			return nil, report, err
		}
		if ok {
			dir = append(dir, entry)
		}
	}
	dir.Sort()
	return dir, report, nil
}

// BuildFile opens path and builds the directory from its contents.
func (b *Builder) BuildFile(ctx context.Context, path string) (Directory, Report, error) {
	f, err := os.Open(path)
	if err != nil {
		b.outcome(metrics.OutcomeFailed)
		return nil, Report{}, perrors.FileSystemError("open directory file").WithCause(err).
			WithContext("path", path).
			Build()
	}
	defer func() {
		_ = f.Close()
	}()
	return b.BuildFrom(ctx, f)
}

func (b *Builder) outcome(o string) {
	if b.recordOutcome {
		b.recorder.IncRunOutcome(o)
	}
}

func (b *Builder) add(p Pair, report *Report) (Entry, bool, error) {
	report.Read++
	b.recorder.IncLinesRead()

	number, err := b.normalizer.Normalize(p.Raw)
	if err != nil {
		reason := nanp.ReasonOf(err)
		if reason == "" {
			return Entry{}, false, err
		}
		report.reject(reason)
		b.recorder.IncRejected(string(reason))
		b.logSkip(p, reason)
		return Entry{}, false, nil
	}

	report.Accepted++
	b.recorder.IncAccepted()
	return Entry{Name: p.Name, Number: number, Line: p.Line}, true, nil
}

func (b *Builder) logSkip(p Pair, reason nanp.Reason) {
	level := slog.LevelDebug
	if b.warnOnSkip {
		level = slog.LevelWarn
	}
	b.logger.LogAttrs(context.Background(), level, "Skipping entry with invalid phone number",
		logfields.Line(p.Line),
		logfields.Name(p.Name),
		logfields.Raw(fmt.Sprint(p.Raw)),
		logfields.Reason(string(reason)))
}
