package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/amp-labs/amp-algorithms/cli"
	"github.com/amp-labs/amp-algorithms/compare"
	"github.com/amp-labs/amp-algorithms/hashing"
	"github.com/amp-labs/amp-algorithms/search"
	"github.com/amp-labs/amp-algorithms/sortable"
	"github.com/amp-labs/amp-algorithms/sorting"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

type report[T any] struct {
	Input        []T                 `json:"input"         yaml:"input"`
	Order        string              `json:"order"         yaml:"order"`
	Fingerprint  string              `json:"fingerprint"   yaml:"fingerprint"`
	CrossChecked bool                `json:"cross_checked" yaml:"cross_checked"`
	Results      []sorting.Result[T] `json:"results"       yaml:"results"`
	Find         *lookup[T]          `json:"find,omitempty" yaml:"find,omitempty"`
}

// lookup is where an element was found, search.NotFound if nowhere.
type lookup[T any] struct {
	Target      T   `json:"target"       yaml:"target"`
	InputIndex  int `json:"input_index"  yaml:"input_index"`
	SortedIndex int `json:"sorted_index" yaml:"sorted_index"`
}

func runNumeric(ctx context.Context, cfg *config, fields []string, w io.Writer) error {
	numbers, err := parseNumbers(fields)
	if err != nil {
		return err
	}

	var target *sortable.Float

	if cfg.Find != nil {
		parsed, err := parseNumbers([]string{*cfg.Find})
		if err != nil {
			return err
		}

		target = &parsed[0]
	}

	rep, err := sortAll(ctx, cfg, numbers, sortable.Less[sortable.Float], target)
	if err != nil {
		return err
	}

	return write(ctx, w, cfg.Output, rep, formatNumber)
}

func runStrings(ctx context.Context, cfg *config, fields []string, w io.Writer) error {
	var less compare.LessFunc[string]

	switch cfg.Order {
	case orderNatural:
		less = func(a, b string) bool {
			return sortable.Natural(a).LessThan(sortable.Natural(b))
		}
	case orderCollate:
		less = compare.Collated(language.Make(cfg.Locale))
	default:
		less = func(a, b string) bool {
			return sortable.String(a).LessThan(sortable.String(b))
		}
	}

	rep, err := sortAll(ctx, cfg, fields, less, cfg.Find)
	if err != nil {
		return err
	}

	return write(ctx, w, cfg.Output, rep, func(s string) string { return s })
}

func sortAll[T any](
	ctx context.Context,
	cfg *config,
	input []T,
	less compare.LessFunc[T],
	target *T,
) (*report[T], error) {
	digest, err := hashing.Xxhash64(hashing.FingerprintOf(input))
	if err != nil {
		return nil, err
	}

	rep := &report[T]{
		Input:       input,
		Order:       cfg.Order,
		Fingerprint: digest,
	}

	if cfg.Algorithm == modeCrossCheck {
		results, err := sorting.CrossCheck(ctx, input, less, cfg.options()...)
		if err != nil {
			return nil, err
		}

		rep.CrossChecked = true
		rep.Results = results
	} else {
		algorithms := sorting.Algorithms()

		if cfg.Algorithm != modeAll {
			alg, err := sorting.ParseAlgorithm(cfg.Algorithm)
			if err != nil {
				return nil, err
			}

			algorithms = []sorting.Algorithm{alg}
		}

		for _, alg := range algorithms {
			coll, err := sorting.NewFunc(slices.Clone(input), less, cfg.options()...)
			if err != nil {
				return nil, err
			}

			out, err := coll.Sort(alg)
			if err != nil {
				return nil, err
			}

			rep.Results = append(rep.Results, sorting.Result[T]{
				Algorithm: alg,
				Output:    out,
				Stats:     coll.Stats(),
			})
		}
	}

	if target != nil {
		rep.Find = &lookup[T]{
			Target: *target,
			InputIndex: search.Linear(input, *target, func(a, b T) bool {
				return compare.Equivalent(less, a, b)
			}),
			SortedIndex: search.Binary(rep.Results[0].Output, *target, less),
		}
	}

	return rep, nil
}

// parseNumbers rejects NaN and the infinities, which none of the output
// formats can carry faithfully.
func parseNumbers(fields []string) ([]sortable.Float, error) {
	numbers := make([]sortable.Float, 0, len(fields))

	for _, field := range fields {
		n, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, fmt.Errorf("not a number: %q", field) //nolint:err113
		}

		if math.IsNaN(n) || math.IsInf(n, 0) {
			return nil, fmt.Errorf("%w: %q", errNotFinite, field)
		}

		numbers = append(numbers, sortable.Float(n))
	}

	return numbers, nil
}

func formatNumber(n sortable.Float) string {
	return strconv.FormatFloat(float64(n), 'g', -1, 64)
}

func write[T any](ctx context.Context, w io.Writer, format string, rep *report[T], str func(T) string) error {
	switch format {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(rep)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2) //nolint:mnd

		if err := enc.Encode(rep); err != nil {
			return err
		}

		return enc.Close()
	default:
		return writeText(ctx, w, rep, str)
	}
}

func writeText[T any](ctx context.Context, w io.Writer, rep *report[T], str func(T) string) error {
	var sb strings.Builder

	join := func(elems []T) string {
		parts := make([]string, len(elems))
		for i, e := range elems {
			parts[i] = str(e)
		}

		return strings.Join(parts, " ")
	}

	for _, res := range rep.Results {
		sb.WriteString(cli.BannerFor(ctx, res.Algorithm.String(), cli.AlignCenter))
		sb.WriteString(join(res.Output))
		fmt.Fprintf(&sb, "\ncomparisons: %d, swaps: %d\n", res.Stats.Comparisons, res.Stats.Swaps)
	}

	if rep.CrossChecked {
		fmt.Fprintf(&sb, "all %d algorithms agree\n", len(rep.Results))
	}

	if rep.Find != nil {
		fmt.Fprintf(&sb, "%s: input index %d, sorted index %d\n",
			str(rep.Find.Target), rep.Find.InputIndex, rep.Find.SortedIndex)
	}

	_, err := io.WriteString(w, sb.String())

	return err
}
