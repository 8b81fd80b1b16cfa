package sorting

import (
	"fmt"
	"strings"
)

// Algorithm names one of the supported sorting algorithms.
type Algorithm int

const (
	Bubble Algorithm = iota + 1
	Selection
	Insertion
	Quick
	Merge
)

var algorithmNames = map[Algorithm]string{ //nolint:gochecknoglobals
	Bubble:    "bubble",
	Selection: "selection",
	Insertion: "insertion",
	Quick:     "quick",
	Merge:     "merge",
}

// Algorithms returns every supported algorithm, in declaration order.
func Algorithms() []Algorithm {
	return []Algorithm{Bubble, Selection, Insertion, Quick, Merge}
}

// AlgorithmNames returns the names of every supported algorithm, in
// declaration order.
func AlgorithmNames() []string {
	names := make([]string, 0, len(algorithmNames))
	for _, alg := range Algorithms() {
		names = append(names, alg.String())
	}

	return names
}

func (a Algorithm) String() string {
	if name, ok := algorithmNames[a]; ok {
		return name
	}

	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// InPlace reports whether the algorithm rearranges the stored slice.
func (a Algorithm) InPlace() bool {
	return a == Bubble || a == Selection || a == Insertion
}

// Stable reports whether the algorithm always keeps equal elements in
// their input order. Merge sort is only stable with WithStableMerge(true),
// so it reports false here.
func (a Algorithm) Stable() bool {
	return a == Bubble || a == Insertion || a == Quick
}

// ParseAlgorithm resolves an algorithm name. Matching ignores case and an
// optional "sort" suffix, so "merge", "MergeSort" and "merge-sort" all
// resolve to Merge.
func ParseAlgorithm(name string) (Algorithm, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.TrimSuffix(key, "sort")
	key = strings.TrimRight(key, "-_ ")

	for alg, algName := range algorithmNames {
		if algName == key {
			return alg, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// MarshalText implements encoding.TextMarshaler.
func (a Algorithm) MarshalText() ([]byte, error) {
	if _, ok := algorithmNames[a]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(a))
	}

	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Algorithm) UnmarshalText(text []byte) error {
	alg, err := ParseAlgorithm(string(text))
	if err != nil {
		return err
	}

	*a = alg

	return nil
}
