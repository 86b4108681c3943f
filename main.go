package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime/debug"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/crillab/shortexpr/config"
	"github.com/crillab/shortexpr/expr"
	"github.com/crillab/shortexpr/search"
	"github.com/crillab/shortexpr/telemetry"
)

func main() {
	debug.SetGCPercent(300)
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "shortexpr",
		Short:        "Finds the shortest expressions computing a given vector of values",
		SilenceUsage: true,
	}
	root.AddCommand(newSearchCmd(), newOperatorsCmd())
	return root
}

type searchFlags struct {
	first       bool
	metricsOut  string
	verbose     bool
	maxLength   int
	workers     int
	minParallel int
}

func newSearchCmd() *cobra.Command {
	var f searchFlags
	cmd := &cobra.Command{
		Use:   "search CONFIG.yaml",
		Short: "Searches expressions described by a YAML configuration file",
		Long: `Searches, by increasing length, every expression whose output matches the goal.
Solutions are printed as soon as they are found, one per line, preceded by their length.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, args[0], f)
		},
	}
	flags := cmd.Flags()
	flags.BoolVar(&f.first, "first", false, "stop after the length of the first solution")
	flags.StringVar(&f.metricsOut, "metrics-out", "", "write metrics in Prometheus text format to this file")
	flags.BoolVarP(&f.verbose, "verbose", "v", false, "log debug messages")
	flags.IntVar(&f.maxLength, "max-length", 0, "override the maximum expression length")
	flags.IntVar(&f.workers, "workers", 0, "override the number of worker goroutines")
	flags.IntVar(&f.minParallel, "min-parallel-length", 0, "override the length from which levels are built in parallel")
	return cmd
}

func runSearch(cmd *cobra.Command, path string, f searchFlags) error {
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("max-length") {
		cfg.MaxLength = f.maxLength
	}
	if flags.Changed("workers") {
		cfg.Workers = f.workers
	}
	if flags.Changed("min-parallel-length") {
		cfg.MinParallelLength = f.minParallel
	}
	logger := newLogger(cmd.ErrOrStderr(), f.verbose).With("run_id", uuid.NewString())
	reg := prometheus.NewRegistry()
	s, err := search.New(cfg, search.WithLogger(logger), search.WithMetrics(telemetry.New(reg)))
	if err != nil {
		return err
	}
	logger.Info("searching", "config", path, "max_length", cfg.MaxLength)
	sols := make(chan search.Solution)
	stop := make(chan struct{})
	done := make(chan search.Stats)
	go func() { done <- s.Search(sols, stop) }()
	out := cmd.OutOrStdout()
	stopping := false
	for sol := range sols {
		fmt.Fprintf(out, "%d %s\n", sol.Length, sol.Text)
		if f.first && !stopping {
			close(stop)
			stopping = true
		}
	}
	stats := <-done
	logger.Info("search over",
		"levels", len(stats.Levels),
		"explored", stats.Explored,
		"solutions", stats.Solutions,
		"elapsed", stats.Elapsed)
	if f.metricsOut != "" {
		if err := prometheus.WriteToTextfile(f.metricsOut, reg); err != nil {
			return fmt.Errorf("could not write metrics to %q: %w", f.metricsOut, err)
		}
	}
	return nil
}

// newLogger returns a human-readable logger when w is a terminal, a JSON one else.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if verbose {
		opts.Level = slog.LevelDebug
	}
	if f, ok := w.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

func newOperatorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "operators",
		Short: "Lists the supported operators",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defaults := config.Default().Operators
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tTEXT\tWIDTH\tCLASS\tDEFAULT")
			for _, b := range expr.Binaries {
				fmt.Fprintf(w, "%s\t%q\t%d\t%d\t%t\n", b.Name, b.Op.Symbol(), b.Width(), b.Op.Prec(), defaults[b.Name])
			}
			for _, u := range expr.Unaries {
				fmt.Fprintf(w, "%s\t%q\t%d\t%d\t%t\n", u.Name, u.Op.Symbol(), u.Op.Width(), u.Op.Prec(), defaults[u.Name])
			}
			return w.Flush()
		},
	}
}
