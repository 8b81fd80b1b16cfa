package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/amp-labs/amp-algorithms/envutil"
	"github.com/amp-labs/amp-algorithms/sorting"
	"golang.org/x/text/language"
)

const (
	modeAll        = "all"
	modeCrossCheck = "crosscheck"

	orderNumeric = "numeric"
	orderLexical = "lexical"
	orderNatural = "natural"
	orderCollate = "collate"

	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

type config struct {
	// Algorithm is an algorithm name, modeAll or modeCrossCheck. Empty
	// means ask (or run everything when nobody can be asked).
	Algorithm   string
	Output      string
	StableMerge bool
	Concurrency int
	Metrics     bool
	Name        string
	Version     bool

	// Order selects how elements compare. Every order but orderNumeric
	// sorts the arguments as strings.
	Order  string
	Locale string
	// Find is an element to look up after sorting, if set.
	Find *string
}

// loadConfig reads the environment first, then lets command line flags
// override it. The remaining arguments are returned as well.
func loadConfig(ctx context.Context, args []string, stderr io.Writer) (*config, []string, error) {
	algorithm, err := envutil.String(ctx, "SORT_ALGORITHM", envutil.Default("")).Value()
	if err != nil {
		return nil, nil, err
	}

	output, err := envutil.OneOf(ctx, "SORT_OUTPUT", outputFormats(), envutil.Default(outputText)).Value()
	if err != nil {
		return nil, nil, err
	}

	stableMerge, err := envutil.Bool(ctx, "SORT_STABLE_MERGE", envutil.Default(false)).Value()
	if err != nil {
		return nil, nil, err
	}

	concurrency, err := envutil.Int(ctx, "SORT_CONCURRENCY",
		envutil.Default(0),
		envutil.Validate(nonNegative)).
		Value()
	if err != nil {
		return nil, nil, err
	}

	order, err := envutil.OneOf(ctx, "SORT_ORDER", orders(), envutil.Default(orderNumeric)).Value()
	if err != nil {
		return nil, nil, err
	}

	cfg := &config{}

	flags := flag.NewFlagSet("sorts", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "usage: sorts [flags] [numbers...]\n\n"+
			"Sorts the given numbers (or whitespace-separated numbers read from stdin).\n\n")
		flags.PrintDefaults()
	}

	flags.StringVar(&cfg.Algorithm, "algorithm", algorithm,
		fmt.Sprintf("one of %s, %q or %q ($SORT_ALGORITHM)",
			strings.Join(sorting.AlgorithmNames(), ", "), modeAll, modeCrossCheck))
	flags.StringVar(&cfg.Output, "output", output, "output format: text, json or yaml ($SORT_OUTPUT)")
	flags.BoolVar(&cfg.StableMerge, "stable-merge", stableMerge,
		"keep equal elements in input order in merge sort ($SORT_STABLE_MERGE)")
	flags.IntVar(&cfg.Concurrency, "concurrency", concurrency,
		"algorithms to cross-check at once, 0 for all ($SORT_CONCURRENCY)")
	flags.BoolVar(&cfg.Metrics, "metrics", false, "print sorting metrics to stderr when done")
	flags.StringVar(&cfg.Name, "name", "cli", "collection name used in metrics")
	flags.BoolVar(&cfg.Version, "version", false, "print the version and exit")
	flags.StringVar(&cfg.Order, "order", order,
		"element order: numeric, lexical, natural or collate ($SORT_ORDER)")
	flags.StringVar(&cfg.Locale, "locale", "und", "BCP 47 language tag for -order collate")
	flags.Func("find", "look up an element in the input and in the sorted output", func(s string) error {
		cfg.Find = &s

		return nil
	})

	if err := flags.Parse(args); err != nil {
		return nil, nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, nil, err
	}

	return cfg, flags.Args(), nil
}

func (c *config) validate() error {
	c.Algorithm = strings.ToLower(strings.TrimSpace(c.Algorithm))

	switch c.Algorithm {
	case "", modeAll, modeCrossCheck:
	default:
		if _, err := sorting.ParseAlgorithm(c.Algorithm); err != nil {
			return err
		}
	}

	if !slices.Contains(outputFormats(), strings.ToLower(c.Output)) {
		return fmt.Errorf("%w: output %q", envutil.ErrNotAllowed, c.Output)
	}

	c.Output = strings.ToLower(c.Output)

	if !slices.Contains(orders(), strings.ToLower(c.Order)) {
		return fmt.Errorf("%w: order %q", envutil.ErrNotAllowed, c.Order)
	}

	c.Order = strings.ToLower(c.Order)

	if _, err := language.Parse(c.Locale); err != nil {
		return fmt.Errorf("locale %q: %w", c.Locale, err)
	}

	return nonNegative(c.Concurrency)
}

func (c *config) options() []sorting.Option {
	return []sorting.Option{
		sorting.WithName(c.Name),
		sorting.WithStableMerge(c.StableMerge),
		sorting.WithConcurrency(c.Concurrency),
	}
}

func outputFormats() []string {
	return []string{outputText, outputJSON, outputYAML}
}

func nonNegative(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d is negative", envutil.ErrNotAllowed, n)
	}

	return nil
}

func orders() []string {
	return []string{orderNumeric, orderLexical, orderNatural, orderCollate}
}

func modeChoices() []string {
	return append(sorting.AlgorithmNames(), modeAll, modeCrossCheck)
}
