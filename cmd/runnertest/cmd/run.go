package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"

	"github.com/psantana5/runnertest/internal/config"
	"github.com/psantana5/runnertest/internal/report"
	"github.com/psantana5/runnertest/pkg/harness"
	"github.com/psantana5/runnertest/pkg/logging"
	"github.com/psantana5/runnertest/pkg/scenarios"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// ErrCasesFailed is returned when at least one case failed; main maps it to exit status 1
var ErrCasesFailed = errors.New("one or more cases failed")

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the RunnerTest suite",
	Long: `Runs test_walk and test_run and prints a report.

By default the cases log a WARNING when the Runner constructor rejects
their input and pass either way. --strict makes them fail unless the
constructor rejects the input with the expected error kind.`,
	Example: `  runnertest run
  runnertest run --frozen
  runnertest run --strict -v 1 --log-file /tmp/runner_tests.log
  runnertest run -o json --metrics-file /var/lib/node_exporter/runnertest.prom`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	flags := runCmd.Flags()
	flags.Bool("frozen", false, "freeze the suite: every case is reported as skipped")
	flags.Bool("strict", false, "fail cases whose expected construction error did not occur")
	flags.IntP("verbosity", "v", 2, "report verbosity: 0, 1 or 2")
	flags.String("log-file", "runner_tests.log", "run log path, empty for stderr")
	flags.String("log-level", "info", "log level: debug, info, warning, error")
	flags.String("log-format", "plain", "log format: plain, text or json")
	flags.Bool("log-append", false, "append to the log file instead of rewriting it")
	flags.String("metrics-file", "", "write Prometheus metrics to this textfile")
	flags.StringSlice("case", nil, "run only the named cases (glob patterns allowed)")

	bindings := map[string]string{
		"frozen":       "frozen",
		"strict":       "strict",
		"verbosity":    "verbosity",
		"log.file":     "log-file",
		"log.level":    "log-level",
		"log.format":   "log-format",
		"log.append":   "log-append",
		"metrics_file": "metrics-file",
	}
	for key, flag := range bindings {
		viper.BindPFlag(key, flags.Lookup(flag))
	}
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	patterns, err := cmd.Flags().GetStringSlice("case")
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return execute(ctx, cfg, patterns, cmd.OutOrStdout())
}

// execute runs the suite described by cfg and writes the report to out
func execute(ctx context.Context, cfg *config.Config, patterns []string, out io.Writer) error {
	logger, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer logger.Close()

	filter, err := caseFilter(patterns)
	if err != nil {
		return err
	}

	suite := scenarios.NewRunnerSuite(logger, cfg.Frozen, cfg.Strict)
	metrics := report.NewMetrics()

	opts := []harness.RunOption{
		harness.WithObserver(metrics),
		harness.WithLogger(logger.WithField("suite", suite.Name())),
	}
	if filter != nil {
		opts = append(opts, harness.WithFilter(filter))
	}

	summary := suite.Run(ctx, opts...)
	summary.Host = report.CollectHost()
	metrics.RecordSummary(summary)

	if err := report.Render(out, summary, cfg.Output, cfg.Verbosity); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}

	if cfg.MetricsFile != "" {
		if err := metrics.WriteTextfile(cfg.MetricsFile); err != nil {
			return fmt.Errorf("failed to write metrics: %w", err)
		}
	}

	if !summary.OK() {
		return ErrCasesFailed
	}
	return nil
}

func newLogger(c config.LogConfig) (*logging.Logger, error) {
	format, err := logging.ParseFormat(c.Format)
	if err != nil {
		return nil, err
	}
	level := logging.ParseLevel(c.Level)

	if c.File == "" {
		logger := logging.NewLogger(level, format)
		logger.SetOutput(os.Stderr)
		return logger, nil
	}
	return logging.NewFileLogger(c.File, level, format, !c.Append)
}

func caseFilter(patterns []string) (func(string) bool, error) {
	if len(patterns) == 0 {
		return nil, nil
	}
	for _, p := range patterns {
		if _, err := path.Match(p, ""); err != nil {
			return nil, fmt.Errorf("invalid case pattern %q: %w", p, err)
		}
	}
	return func(name string) bool {
		for _, p := range patterns {
			if ok, _ := path.Match(p, name); ok {
				return true
			}
		}
		return false
	}, nil
}
