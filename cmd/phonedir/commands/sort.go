package commands

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/phonedir/internal/config"
	"git.home.luguber.info/inful/phonedir/internal/directory"
	"git.home.luguber.info/inful/phonedir/internal/logfields"
	"git.home.luguber.info/inful/phonedir/internal/metrics"
	"git.home.luguber.info/inful/phonedir/internal/nanp"
	"git.home.luguber.info/inful/phonedir/internal/render"
)

// SortCmd implements the default 'sort' command.
type SortCmd struct {
	File        string `arg:"" name:"file" help:"File of name<TAB>number lines" type:"path"`
	Format      string `short:"f" help:"Output format (${formats})"`
	WarnOnSkip  bool   `name:"warn-on-skip" help:"Log entries dropped for invalid numbers at warn level"`
	FoldWidth   bool   `name:"fold-width" help:"Treat full-width digits and letters as ASCII"`
	MetricsFile string `name:"metrics-file" help:"Write Prometheus metrics to this textfile after the run" type:"path"`
}

func (s *SortCmd) Run(ctx context.Context, g *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return err
	}
	s.applyOverrides(cfg)

	level := cfg.SlogLevel()
	if root.Verbose {
		level = slog.LevelDebug
	}
	runID := uuid.NewString()
	logger := cfg.Logging.NewLogger(g.stderr(), level).With(logfields.RunID(runID))

	format, err := render.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}
	renderer, err := render.New(format)
	if err != nil {
		return err
	}

	var (
		reg      *prom.Registry
		recorder metrics.Recorder = metrics.NoopRecorder{}
	)
	if cfg.Metrics.Textfile != "" {
		reg = prom.NewRegistry()
		recorder = metrics.NewPrometheusRecorder(reg)
	}

	var normOpts []nanp.Option
	if cfg.Normalize.FoldWidth {
		normOpts = append(normOpts, nanp.WithWidthFolding())
	}
	builder := directory.NewBuilder(
		directory.WithNormalizer(nanp.NewNormalizer(normOpts...)),
		directory.WithLogger(logger),
		directory.WithRecorder(recorder),
		directory.WithWarnOnSkip(cfg.Logging.WarnOnSkip),
		directory.WithRunOutcome(false),
	)

	start := time.Now()
	logger.Debug("Reading directory", logfields.Path(s.File), logfields.Format(string(format)))
	dir, report, err := builder.BuildFile(ctx, s.File)
	if err != nil {
		return s.fail(logger, cfg, reg, recorder, metrics.OutcomeFailed, err)
	}

	if err := renderer.Render(g.stdout(), dir); err != nil {
		return s.fail(logger, cfg, reg, recorder, metrics.OutcomeRenderFailed, err)
	}
	recorder.IncRunOutcome(metrics.OutcomeSuccess)

	logger.Info("Directory sorted",
		logfields.Path(s.File),
		logfields.Count(report.Read),
		logfields.Accepted(report.Accepted),
		logfields.Rejected(report.Rejected),
		logfields.DurationMS(float64(time.Since(start).Microseconds())/1000))

	return s.flushMetrics(logger, cfg, reg)
}

func (s *SortCmd) applyOverrides(cfg *config.Config) {
	if s.Format != "" {
		cfg.Output.Format = s.Format
	}
	if s.WarnOnSkip {
		cfg.Logging.WarnOnSkip = true
	}
	if s.FoldWidth {
		cfg.Normalize.FoldWidth = true
	}
	if s.MetricsFile != "" {
		cfg.Metrics.Textfile = s.MetricsFile
	}
}

// fail records the outcome, flushes metrics and returns the original error.
// A flush failure is only logged so it cannot mask err.
func (s *SortCmd) fail(logger *slog.Logger, cfg *config.Config, reg *prom.Registry, recorder metrics.Recorder, outcome string, err error) error {
	recorder.IncRunOutcome(outcome)
	if flushErr := s.flushMetrics(logger, cfg, reg); flushErr != nil {
		logger.Warn("Failed to write metrics", logfields.Path(cfg.Metrics.Textfile), logfields.Error(flushErr))
	}
	return err
}

func (s *SortCmd) flushMetrics(logger *slog.Logger, cfg *config.Config, reg *prom.Registry) error {
	if reg == nil {
		return nil
	}
	if err := metrics.WriteTextfile(cfg.Metrics.Textfile, reg); err != nil {
		return err
	}
	logger.Debug("Metrics written", logfields.Path(cfg.Metrics.Textfile))
	return nil
}
