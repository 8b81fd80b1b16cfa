package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"io"
	"strings"
	"testing"

	"github.com/amp-labs/amp-algorithms/envutil"
	"github.com/amp-labs/amp-algorithms/hashing"
	"github.com/amp-labs/amp-algorithms/sortable"
	"github.com/amp-labs/amp-algorithms/sorting"
	"github.com/amp-labs/amp-algorithms/tests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func testEnv(stdin string) (env, *bytes.Buffer) {
	var stdout bytes.Buffer

	return env{
		stdin:  strings.NewReader(stdin),
		stdout: &stdout,
		stderr: io.Discard,
	}, &stdout
}

func withEnv(ctx context.Context, kv ...string) context.Context {
	for i := 0; i+1 < len(kv); i += 2 {
		ctx = envutil.WithEnvOverride(ctx, kv[i], kv[i+1])
	}

	return ctx
}

// Every test pins the SORT_* variables so the real environment can't leak in.
func baseContext(t *testing.T, kv ...string) context.Context {
	t.Helper()

	ctx := withEnv(tests.GetUniqueContext(t),
		"SORT_ALGORITHM", "",
		"SORT_OUTPUT", "text",
		"SORT_STABLE_MERGE", "false",
		"SORT_CONCURRENCY", "0",
		"SORT_ORDER", "numeric",
		"SORTS_NO_BANNER", "true",
	)

	return withEnv(ctx, kv...)
}

func TestRun_JSON(t *testing.T) {
	t.Parallel()

	e, stdout := testEnv("")

	err := run(baseContext(t, "SORT_OUTPUT", "json"),
		[]string{"-algorithm", "merge", "1", "4", "3", "6", "4", "5", "2", "0", "1", "0", "2"}, e)
	require.NoError(t, err)

	var rep report[float64]
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &rep))

	require.Len(t, rep.Results, 1)
	assert.Equal(t, sorting.Merge, rep.Results[0].Algorithm)
	assert.Equal(t, []float64{0, 0, 1, 1, 2, 2, 3, 4, 4, 5, 6}, rep.Results[0].Output)
	assert.Equal(t, []float64{1, 4, 3, 6, 4, 5, 2, 0, 1, 0, 2}, rep.Input)
	assert.False(t, rep.CrossChecked)
	assert.Equal(t, orderNumeric, rep.Order)
	assert.Len(t, rep.Fingerprint, 16)
	assert.Nil(t, rep.Find)
}

func TestRun_YAMLFromStdin(t *testing.T) {
	t.Parallel()

	e, stdout := testEnv("3 1\n2,5\n")

	err := run(baseContext(t), []string{"-output", "yaml", "-algorithm", "QuickSort"}, e)
	require.NoError(t, err)

	var rep struct {
		Results []struct {
			Algorithm string    `yaml:"algorithm"`
			Output    []float64 `yaml:"output"`
		} `yaml:"results"`
	}
	require.NoError(t, yaml.Unmarshal(stdout.Bytes(), &rep))

	require.Len(t, rep.Results, 1)
	assert.Equal(t, "quick", rep.Results[0].Algorithm)
	assert.Equal(t, []float64{1, 2, 3, 5}, rep.Results[0].Output)
}

func TestRun_TextAllAlgorithms(t *testing.T) {
	t.Parallel()

	e, stdout := testEnv("")

	require.NoError(t, run(baseContext(t), []string{"2.5", "-1", "10"}, e))

	out := stdout.String()
	for _, name := range sorting.AlgorithmNames() {
		assert.Contains(t, out, name+"\n-1 2.5 10\n")
	}

	assert.Equal(t, len(sorting.Algorithms()), strings.Count(out, "comparisons:"))
}

func TestRun_CrossCheck(t *testing.T) {
	t.Parallel()

	e, stdout := testEnv("")

	err := run(baseContext(t, "SORT_ALGORITHM", "crosscheck", "SORT_CONCURRENCY", "2"),
		[]string{"5", "3", "5", "1"}, e)
	require.NoError(t, err)

	assert.Contains(t, stdout.String(), "all 5 algorithms agree\n")
}

func TestRun_Interactive(t *testing.T) {
	t.Parallel()

	e, stdout := testEnv("")
	e.interactive = true
	e.prompt = func(_ string, validate func(string) error) (string, error) {
		require.Error(t, validate("x"))
		require.NoError(t, validate("9 8 7"))

		return "9 8 7", nil
	}
	e.selectMode = func(_ string, choices []string) (string, error) {
		assert.Contains(t, choices, modeCrossCheck)

		return "insertion", nil
	}

	require.NoError(t, run(baseContext(t), nil, e))
	assert.Equal(t, "insertion\n7 8 9\ncomparisons: 3, swaps: 3\n", stdout.String())
}

func TestRun_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		env     []string
		args    []string
		stdin   string
		wantErr error
		errText string
	}{
		{name: "unknown algorithm", args: []string{"-algorithm", "heap", "1"}, wantErr: sorting.ErrUnknownAlgorithm},
		{name: "bad output flag", args: []string{"-output", "xml", "1"}, wantErr: envutil.ErrNotAllowed},
		{name: "bad output env", env: []string{"SORT_OUTPUT", "xml"}, args: []string{"1"}, wantErr: envutil.ErrBadEnvVar},
		{name: "negative concurrency", args: []string{"-concurrency", "-1", "1"}, wantErr: envutil.ErrNotAllowed},
		{name: "not a number", args: []string{"1", "two"}, errText: `not a number: "two"`},
		{name: "no input", stdin: "  \n", wantErr: errNoInput},
		{name: "help", args: []string{"-h"}, wantErr: flag.ErrHelp},
		{name: "bad order", args: []string{"-order", "random", "a"}, wantErr: envutil.ErrNotAllowed},
		{name: "bad locale", args: []string{"-order", "collate", "-locale", "not a tag", "a"}, errText: "locale"},
		{name: "bad find target", args: []string{"-find", "x", "1"}, errText: `not a number: "x"`},
		{name: "nan", args: []string{"-output", "json", "1", "NaN"}, wantErr: errNotFinite},
		{name: "infinity", args: []string{"1", "-Inf"}, wantErr: errNotFinite},
		{name: "overflow", args: []string{"1e400"}, errText: `not a number: "1e400"`},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e, stdout := testEnv(tt.stdin)

			err := run(baseContext(t, tt.env...), tt.args, e)
			require.Error(t, err)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			}

			if tt.errText != "" {
				assert.Contains(t, err.Error(), tt.errText)
			}

			assert.Zero(t, stdout.Len())
		})
	}
}

func TestRun_Metrics(t *testing.T) {
	t.Parallel()

	e, _ := testEnv("")

	var stderr bytes.Buffer
	e.stderr = &stderr

	require.NoError(t, run(baseContext(t), []string{"-metrics", "-name", "metrics-cli", "-algorithm", "bubble", "2", "1"}, e))
	assert.Contains(t, stderr.String(), `sort_calls_total{algorithm="bubble",collection="metrics-cli"} 1`)
}

func TestSplitFields(t *testing.T) {
	t.Parallel()

	fields, err := splitFields([]string{"1,2", " 3 ", "-4.5", ","})
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3", "-4.5"}, fields)

	_, err = splitFields([]string{" , "})
	require.True(t, errors.Is(err, errNoInput))

	numbers, err := parseNumbers(fields)
	require.NoError(t, err)
	assert.Equal(t, []sortable.Float{1, 2, 3, -4.5}, numbers)
}

func TestRun_Version(t *testing.T) {
	t.Parallel()

	e, stdout := testEnv("")

	require.NoError(t, run(baseContext(t), []string{"-version"}, e))
	assert.True(t, strings.HasPrefix(stdout.String(), "sorts "))
}

func TestRun_NaturalOrderWithFind(t *testing.T) {
	t.Parallel()

	e, stdout := testEnv("")

	err := run(baseContext(t),
		[]string{"-order", "natural", "-algorithm", "bubble", "-find", "file10", "file10", "file9", "file1"}, e)
	require.NoError(t, err)

	out := stdout.String()
	assert.True(t, strings.HasPrefix(out, "bubble\nfile1 file9 file10\n"), out)
	assert.Contains(t, out, "file10: input index 0, sorted index 2\n")
}

func TestRun_StringOrders(t *testing.T) {
	t.Parallel()

	input := []string{"zebra", "Äpfel", "apple", "Banane"}

	cases := []struct {
		args     []string
		expected []string
	}{
		{args: []string{"-order", "lexical"}, expected: []string{"Banane", "apple", "zebra", "Äpfel"}},
		{args: []string{"-order", "collate", "-locale", "de"}, expected: []string{"Äpfel", "apple", "Banane", "zebra"}},
	}

	for _, tt := range cases {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			t.Parallel()

			e, stdout := testEnv("")

			args := append(append([]string{"-output", "json", "-algorithm", "crosscheck"}, tt.args...), input...)
			require.NoError(t, run(baseContext(t), args, e))

			var rep report[string]
			require.NoError(t, json.Unmarshal(stdout.Bytes(), &rep))

			assert.True(t, rep.CrossChecked)
			require.Len(t, rep.Results, len(sorting.Algorithms()))

			for _, res := range rep.Results {
				assert.Equal(t, tt.expected, res.Output, res.Algorithm.String())
			}
		})
	}
}

func TestRun_NumericFind(t *testing.T) {
	t.Parallel()

	e, stdout := testEnv("")

	require.NoError(t, run(baseContext(t, "SORT_OUTPUT", "json"), []string{"-find", "7", "3", "1", "2"}, e))

	var rep report[float64]
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &rep))

	require.NotNil(t, rep.Find)
	assert.Equal(t, -1, rep.Find.InputIndex)
	assert.Equal(t, -1, rep.Find.SortedIndex)
}

func TestRun_FingerprintIgnoresOrder(t *testing.T) {
	t.Parallel()

	fingerprint := func(args ...string) string {
		e, stdout := testEnv("")

		require.NoError(t, run(baseContext(t, "SORT_OUTPUT", "json"), append([]string{"-algorithm", "merge"}, args...), e))

		var rep report[float64]
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &rep))

		return rep.Fingerprint
	}

	expected, err := hashing.Xxhash64(hashing.FingerprintOf([]sortable.Float{1, 2, 3}))
	require.NoError(t, err)

	assert.Equal(t, expected, fingerprint("3", "1", "2"))
	assert.Equal(t, expected, fingerprint("2", "3", "1"))
	assert.NotEqual(t, expected, fingerprint("2", "3", "3"))
}
