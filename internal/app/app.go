package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand"

	"github.com/aroth/blitzdeck/internal/cli"
	"github.com/aroth/blitzdeck/internal/config"
	"github.com/aroth/blitzdeck/internal/deck"
	"github.com/aroth/blitzdeck/internal/doctor"
	"github.com/aroth/blitzdeck/internal/fit"
	"github.com/aroth/blitzdeck/internal/logging"
	"github.com/aroth/blitzdeck/internal/pptx"
	"github.com/aroth/blitzdeck/internal/version"
	"github.com/aroth/blitzdeck/internal/words"
)

type Runner struct {
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
}

func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	r := Runner{Stdout: stdout, Stderr: stderr}
	return r.Execute(ctx, args)
}

func (r Runner) Execute(ctx context.Context, args []string) int {
	parsed, err := cli.Parse(args)
	if err != nil {
		fmt.Fprintf(r.Stderr, "error: %v\n\n", err)
		fmt.Fprint(r.Stderr, cli.HelpText("blitzdeck"))
		return 2
	}

	if parsed.ShowHelp {
		fmt.Fprint(r.Stdout, cli.HelpText("blitzdeck"))
		return 0
	}

	if parsed.Command == cli.CommandVersion {
		fmt.Fprintln(r.Stdout, version.String())
		return 0
	}

	logRuntime, err := logging.New()
	if err != nil {
		fmt.Fprintf(r.Stderr, "error: setup logging: %v\n", err)
		return 1
	}
	defer func() { _ = logRuntime.Close() }()

	logger := r.Logger
	if logger == nil {
		logger = logRuntime.Logger
	}

	cfgLoaded, err := config.Load(parsed.ConfigPath)
	if err != nil {
		fmt.Fprintf(r.Stderr, "error: %v\n", err)
		logger.Error("load config failed", "error", err.Error())
		return 1
	}
	for _, w := range cfgLoaded.Warnings {
		msg := w.Message
		if w.Line > 0 {
			msg = fmt.Sprintf("line %d: %s", w.Line, w.Message)
		}
		fmt.Fprintf(r.Stderr, "warning: %s\n", msg)
		logger.Warn("config warning", "line", w.Line, "message", w.Message)
	}

	cfg, warnings, err := applyOverrides(cfgLoaded.Config, parsed)
	if err != nil {
		fmt.Fprintf(r.Stderr, "error: %v\n", err)
		logger.Error("invalid config", "error", err.Error())
		return 1
	}
	for _, w := range warnings {
		fmt.Fprintf(r.Stderr, "warning: %s\n", w.Message)
		logger.Warn("config warning", "message", w.Message)
	}

	logger.Info("command start",
		"command", parsed.Command,
		"config", cfgLoaded.Path,
		"log", logRuntime.Path,
	)

	switch parsed.Command {
	case cli.CommandDoctor:
		cfgLoaded.Config = cfg
		report := doctor.Run(cfgLoaded)
		fmt.Fprintln(r.Stdout, report.String())
		if report.OK() {
			return 0
		}
		return 1
	case cli.CommandGenerate:
		return r.commandGenerate(ctx, cfg, logger)
	default:
		fmt.Fprintf(r.Stderr, "error: unsupported command %q\n", parsed.Command)
		return 2
	}
}

// applyOverrides folds CLI flags over the loaded config and re-validates,
// since flag values bypass the parser's checks.
func applyOverrides(cfg config.Config, parsed cli.Parsed) (config.Config, []config.Warning, error) {
	if parsed.InputPath != "" {
		cfg.Input.Path = parsed.InputPath
	}
	if parsed.OutputPath != "" {
		cfg.Output.Path = parsed.OutputPath
	}
	if parsed.SeedSet {
		cfg.Deck.Seed = parsed.Seed
	}

	warnings, err := config.Validate(cfg)
	if err != nil {
		return config.Config{}, nil, err
	}
	return cfg, warnings, nil
}

func (r Runner) commandGenerate(ctx context.Context, cfg config.Config, logger *slog.Logger) int {
	items, err := words.Load(cfg.Input.Path, cfg.Input.Sheet)
	if err != nil {
		fmt.Fprintf(r.Stderr, "error: %v\n", err)
		logger.Error("load words failed", "path", cfg.Input.Path, "error", err.Error())
		return 1
	}
	logger.Info("words loaded", "path", cfg.Input.Path, "count", len(items))

	if err := ctx.Err(); err != nil {
		fmt.Fprintf(r.Stderr, "error: %v\n", err)
		return 1
	}

	engine := fit.New(cfg, r.buildMetrics(cfg, logger))
	assembler := deck.NewAssembler(cfg, engine, logger)

	var rng *rand.Rand
	if cfg.Deck.Seed > 0 {
		rng = rand.New(rand.NewSource(cfg.Deck.Seed))
		logger.Info("seeded shuffle", "seed", cfg.Deck.Seed)
	}

	d, summary, err := assembler.Assemble(items, rng)
	if err != nil {
		fmt.Fprintf(r.Stderr, "error: %v\n", err)
		logger.Error("assemble failed", "error", err.Error())
		return 1
	}

	if err := ctx.Err(); err != nil {
		fmt.Fprintf(r.Stderr, "error: %v\n", err)
		return 1
	}

	if err := pptx.WriteFile(cfg.Output.Path, d); err != nil {
		fmt.Fprintf(r.Stderr, "error: %v\n", err)
		logger.Error("write deck failed", "path", cfg.Output.Path, "error", err.Error())
		return 1
	}

	r.printSummary(cfg, summary)
	logger.Info("deck written",
		"path", cfg.Output.Path,
		"slides", summary.Total,
		"adjusted", summary.Adjusted,
		"clamped", summary.Clamped,
	)
	return 0
}

// buildMetrics prefers measured glyph metrics when a font file is configured,
// falling back to the calibrated heuristic when the file cannot be parsed.
func (r Runner) buildMetrics(cfg config.Config, logger *slog.Logger) fit.Metrics {
	if cfg.Font.File != "" {
		m, err := fit.LoadMeasuredMetrics(cfg.Font.File)
		if err == nil {
			logger.Info("using measured font metrics", "file", cfg.Font.File)
			return m
		}
		fmt.Fprintf(r.Stderr, "warning: %v; falling back to heuristic metrics\n", err)
		logger.Warn("font metrics unavailable", "file", cfg.Font.File, "error", err.Error())
	}
	return fit.NewHeuristicMetrics(cfg.Font.CharWidthFactor, cfg.Font.LineHeightFactor)
}

func (r Runner) printSummary(cfg config.Config, s deck.Summary) {
	fmt.Fprintf(r.Stdout, "wrote %s: %d slides\n", cfg.Output.Path, s.Total)
	fmt.Fprintf(r.Stdout, "  at maximum (%dpt): %d\n", cfg.Font.MaxSize, s.AtMax)
	fmt.Fprintf(r.Stdout, "  large (>=75%% of max): %d\n", s.Large)
	fmt.Fprintf(r.Stdout, "  medium (>=50%% of max): %d\n", s.Medium)
	fmt.Fprintf(r.Stdout, "  small: %d\n", s.Small)
	if s.Clamped > 0 {
		fmt.Fprintf(r.Stdout, "  clamped at minimum (%dpt): %d\n", cfg.Font.MinSize, s.Clamped)
	}
}
