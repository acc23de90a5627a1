package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/apsp/graph"
	"github.com/katalvlaran/apsp/internal/config"
	"github.com/katalvlaran/apsp/reader"
)

// app holds the persistent flags and the configuration resolved from them.
type app struct {
	configPath string
	selection  string
	workers    int
	format     string
	logLevel   string
	logFormat  string
	strict     bool
	verify     bool

	cfg config.Config
	log zerolog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: config.Default(), log: zerolog.Nop()}
	root := &cobra.Command{
		Use:          "apsp",
		Short:        "All-pairs shortest paths over labeled directed graphs",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.resolve(cmd)
		},
	}

	def := config.Default()
	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file")
	pf.StringVar(&a.selection, "selection", def.Selection, "vertex selection: scan or heap")
	pf.IntVar(&a.workers, "workers", def.Workers, "sources solved in parallel")
	pf.StringVar(&a.format, "format", def.Format, "output format: text or json")
	pf.StringVar(&a.logLevel, "log-level", def.LogLevel, "log level (trace, debug, info, warn, error)")
	pf.StringVar(&a.logFormat, "log-format", def.LogFormat, "log format: console or json")
	pf.BoolVar(&a.strict, "strict", def.StrictInput, "reject malformed input instead of stopping at it")
	pf.BoolVar(&a.verify, "verify", def.Verify, "cross-check every table with Floyd–Warshall")

	root.AddCommand(newTableCmd(a), newPathCmd(a), newEditCmd(a))

	return root
}

// resolve loads the config file, lets explicitly set flags override it,
// validates the result and builds the logger.
func (a *app) resolve(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("selection") {
		cfg.Selection = a.selection
	}
	if flags.Changed("workers") {
		cfg.Workers = a.workers
	}
	if flags.Changed("format") {
		cfg.Format = a.format
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = a.logFormat
	}
	if flags.Changed("strict") {
		cfg.StrictInput = a.strict
	}
	if flags.Changed("verify") {
		cfg.Verify = a.verify
	}
	if err = cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	a.log = cfg.Logger(cmd.ErrOrStderr()).With().Str("cmd", cmd.Name()).Logger()
	a.log.Debug().
		Str("config", a.configPath).
		Str("selection", cfg.Selection).
		Int("workers", cfg.Workers).
		Str("format", cfg.Format).
		Msg("configuration resolved")

	return nil
}

// open returns the input named by path; "" and "-" mean stdin.
func open(cmd *cobra.Command, path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}

	return f, nil
}

// eachGraph builds and solves every graph in path, then hands it to fn.
func (a *app) eachGraph(cmd *cobra.Command, path string, prepare, fn func(*graph.Graph) error) error {
	in, err := open(cmd, path)
	if err != nil {
		return err
	}
	defer in.Close()

	rd := reader.New(in, a.cfg.ReaderOptions()...)
	for n := 1; ; n++ {
		parsed, err := rd.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		g := graph.New(graph.WithLogger(a.log), graph.WithComputeOptions(a.cfg.ComputeOptions()...))
		if err = g.BuildFrom(parsed); err != nil {
			return fmt.Errorf("graph %d: %w", n, err)
		}
		if prepare != nil {
			if err = prepare(g); err != nil {
				return fmt.Errorf("graph %d: %w", n, err)
			}
		}
		if err = g.Recompute(); err != nil {
			return fmt.Errorf("graph %d: %w", n, err)
		}
		if a.cfg.Verify {
			if err = g.Verify(); err != nil {
				return fmt.Errorf("graph %d: %w", n, err)
			}
			a.log.Info().Int("graph", n).Msg("verified against Floyd–Warshall")
		}
		if err = fn(g); err != nil {
			return err
		}
	}
}
