package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"github.com/jameshskoh/girvan-newman/pkg/algorithms"
	"github.com/jameshskoh/girvan-newman/pkg/config"
	"github.com/jameshskoh/girvan-newman/pkg/graph"
	"github.com/jameshskoh/girvan-newman/pkg/logging"
	"github.com/jameshskoh/girvan-newman/pkg/metrics"
	"github.com/jameshskoh/girvan-newman/pkg/report"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "girvan-newman: %v\n", err)
		}
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, err := parseConfig(args, stderr)
	if err != nil {
		return err
	}

	runID := uuid.New().String()
	logger := logging.NewJSONLogger(stderr, logging.ParseLevel(cfg.LogLevel)).
		With(logging.RunID(runID))

	opts, err := cfg.ToOptions()
	if err != nil {
		return err
	}
	opts.Logger = logger
	opts.Metrics = metrics.NewRegistry()

	b, err := loadBuilder(cfg.Input)
	if err != nil {
		return err
	}
	if n := b.SkippedSelfLoops(); n > 0 {
		logger.Warn("self-loops ignored", logging.Count(n), logging.Path(cfg.Input))
	}
	g := b.Build()
	logger.Info("graph loaded",
		logging.Path(cfg.Input),
		logging.Int("vertices", g.NumVertices()),
		logging.Int("edges", g.NumEdges()))

	s, solveErr := algorithms.GirvanNewman(ctx, g, opts)
	if s == nil {
		return solveErr
	}

	sum := report.NewSummary(runID, s)
	if cfg.Format == config.FormatJSON {
		err = report.WriteJSON(stdout, sum)
	} else {
		err = report.WriteText(stdout, sum)
	}
	if err != nil {
		return err
	}

	if cfg.MetricsOut != "" {
		if err := opts.Metrics.WriteTextfile(cfg.MetricsOut); err != nil {
			return fmt.Errorf("failed to write metrics: %w", err)
		}
		logger.Info("metrics written", logging.Path(cfg.MetricsOut))
	}

	return solveErr
}

func loadBuilder(path string) (*graph.Builder, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open edge list %s: %w", path, err)
	}
	defer f.Close()

	b, err := graph.ReadEdgeList(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return b, nil
}

// parseConfig layers the configuration: defaults with LOG_LEVEL applied,
// then the optional config file, then only the flags given on the command
// line.
func parseConfig(args []string, stderr io.Writer) (*config.Config, error) {
	fs := flag.NewFlagSet("girvan-newman", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		configFile    = fs.String("config", "", "YAML configuration file")
		input         = fs.String("input", "", "Edge list to partition")
		format        = fs.String("format", config.FormatText, "Report format: text or json")
		patienceRatio = fs.Float64("patience-ratio", 0.001, "Plateau threshold as a fraction of the edge count")
		minPatience   = fs.Int("min-patience", 0, "Lower bound on the plateau threshold")
		maxRounds     = fs.Int("max-rounds", 0, "Stop after this many rounds (0 = no limit)")
		modularity    = fs.String("modularity", "pairwise", "Modularity form: pairwise or newman")
		metricsOut    = fs.String("metrics-out", "", "Write Prometheus metrics to this textfile")
		logLevel      = fs.String("log-level", "info", "Log level: debug, info, warn, error")
	)

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := config.Default()
	if *configFile != "" {
		loaded, err := config.Load(*configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if fs.NArg() == 1 && *input == "" {
		*input = fs.Arg(0)
		cfg.Input = *input
	} else if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "input":
			cfg.Input = *input
		case "format":
			cfg.Format = *format
		case "patience-ratio":
			cfg.Solver.PatienceRatio = *patienceRatio
		case "min-patience":
			cfg.Solver.MinPatience = *minPatience
		case "max-rounds":
			cfg.Solver.MaxRounds = *maxRounds
		case "modularity":
			cfg.Solver.Modularity = *modularity
		case "metrics-out":
			cfg.MetricsOut = *metricsOut
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
