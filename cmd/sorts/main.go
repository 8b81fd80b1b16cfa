// Command sorts sorts numbers (or words) with the algorithms of the sorting
// package and prints the results, or cross-checks the algorithms against
// each other.
//
//	sorts -algorithm merge 5 3 1 4
//	echo 3 1 2 | SORT_OUTPUT=json sorts -algorithm crosscheck
//	sorts -order natural -find file10 file10 file9 file1
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/amp-labs/amp-algorithms/build"
	"github.com/amp-labs/amp-algorithms/cli"
	"github.com/amp-labs/amp-algorithms/logger"
	"github.com/amp-labs/amp-algorithms/telemetry"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

const appName = "sorts"

var (
	errNoInput   = errors.New("nothing to sort")
	errNotFinite = errors.New("not a finite number")
)

// env is everything run needs from the outside world.
type env struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	// interactive is set when a person sits at stdin: missing input is
	// prompted for instead of read.
	interactive bool
	selectMode  func(label string, choices []string) (string, error)
	prompt      func(label string, validate func(string) error) (string, error)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx = logger.WithSubsystem(ctx, appName)

	otelConfig, err := telemetry.LoadConfigFromEnv(ctx, "cli")
	if err != nil {
		logger.Fatal("invalid telemetry configuration", "error", err)
	}

	logger.ConfigureLogging(ctx, appName,
		logger.WithOutput(os.Stderr),
		logger.WithOpenTelemetry(otelConfig.LogsEnabled()))

	if err := telemetry.Initialize(ctx, otelConfig); err != nil {
		logger.Get(ctx).Warn("telemetry unavailable", "error", err)
	}

	runErr := run(ctx, os.Args[1:], env{
		stdin:       os.Stdin,
		stdout:      os.Stdout,
		stderr:      os.Stderr,
		interactive: cli.IsInteractive(os.Stdin),
		selectMode:  cli.Select,
		prompt:      cli.PromptString,
	})

	if err := telemetry.Shutdown(context.WithoutCancel(ctx)); err != nil {
		logger.Get(ctx).Warn("telemetry shutdown failed", "error", err)
	}

	if errors.Is(runErr, flag.ErrHelp) {
		return
	}

	if runErr != nil {
		logger.Fatal("sorts failed", "error", runErr)
	}
}

func run(ctx context.Context, args []string, e env) error {
	cfg, rest, err := loadConfig(ctx, args, e.stderr)
	if err != nil {
		return err
	}

	if cfg.Version {
		info := build.Current()
		_, err := fmt.Fprintf(e.stdout, "%s %s (commit %s, %s)\n",
			appName, info.Version, info.GitCommit, info.GoVersion)

		return err
	}

	fields, err := readFields(rest, cfg, e)
	if err != nil {
		return err
	}

	if cfg.Algorithm == "" {
		cfg.Algorithm = modeAll

		if e.interactive && e.selectMode != nil {
			if cfg.Algorithm, err = e.selectMode("Algorithm", modeChoices()); err != nil {
				return err
			}
		}
	}

	ctx = logger.With(ctx, "mode", cfg.Algorithm, "order", cfg.Order, "size", len(fields))
	logger.Get(ctx).Debug("sorting")

	if cfg.Order == orderNumeric {
		err = runNumeric(ctx, cfg, fields, e.stdout)
	} else {
		err = runStrings(ctx, cfg, fields, e.stdout)
	}

	if err != nil {
		return err
	}

	if cfg.Metrics {
		return writeMetrics(e.stderr)
	}

	return nil
}

// readFields takes the elements from the arguments, else from the prompt
// when interactive, else from stdin.
func readFields(args []string, cfg *config, e env) ([]string, error) {
	if len(args) > 0 {
		return splitFields(args)
	}

	if e.interactive && e.prompt != nil {
		line, err := e.prompt("Elements", func(s string) error {
			return validateFields(cfg, strings.Fields(s))
		})
		if err != nil {
			return nil, err
		}

		return splitFields(strings.Fields(line))
	}

	var fields []string

	scanner := bufio.NewScanner(e.stdin)
	scanner.Split(bufio.ScanWords)

	for scanner.Scan() {
		fields = append(fields, scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}

	return splitFields(fields)
}

// splitFields also splits on commas and drops empty parts.
func splitFields(raw []string) ([]string, error) {
	var fields []string

	for _, field := range raw {
		for _, part := range strings.Split(field, ",") {
			if part = strings.TrimSpace(part); part != "" {
				fields = append(fields, part)
			}
		}
	}

	if len(fields) == 0 {
		return nil, errNoInput
	}

	return fields, nil
}

func validateFields(cfg *config, raw []string) error {
	fields, err := splitFields(raw)
	if err != nil {
		return err
	}

	if cfg.Order == orderNumeric {
		_, err = parseNumbers(fields)
	}

	return err
}

// writeMetrics dumps the sort_* metric families in the Prometheus text
// format.
func writeMetrics(w io.Writer) error {
	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		return err
	}

	for _, mf := range families {
		if !strings.HasPrefix(mf.GetName(), "sort_") {
			continue
		}

		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}

	return nil
}
