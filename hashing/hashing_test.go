package hashing

import (
	"errors"
	"hash"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBrokenHashable = errors.New("broken hashable")

type brokenHashable struct{}

func (brokenHashable) UpdateHash(hash.Hash) error {
	return errBrokenHashable
}

func TestXxhash64(t *testing.T) {
	t.Parallel()

	a, err := Xxhash64(FingerprintOf([]string{"b", "a", "c"}))
	require.NoError(t, err)

	b, err := Xxhash64(FingerprintOf([]string{"c", "b", "a"}))
	require.NoError(t, err)

	c, err := Xxhash64(FingerprintOf([]string{"c", "b", "b"}))
	require.NoError(t, err)

	assert.Len(t, a, 16)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestXxhash64_PropagatesErrors(t *testing.T) {
	t.Parallel()

	result, err := Xxhash64(brokenHashable{})
	require.ErrorIs(t, err, errBrokenHashable)
	assert.Empty(t, result)
}

func TestFingerprintOf(t *testing.T) {
	t.Parallel()

	t.Run("permutations match", func(t *testing.T) {
		t.Parallel()

		a := FingerprintOf([]int{1, 4, 3, 6, 4, 5, 2, 0, 1, 0, 2})
		b := FingerprintOf([]int{0, 0, 1, 1, 2, 2, 3, 4, 4, 5, 6})

		assert.Equal(t, a, b)
		assert.Equal(t, a.String(), b.String())
	})

	t.Run("different multisets differ", func(t *testing.T) {
		t.Parallel()

		assert.NotEqual(t, FingerprintOf([]int{1, 1, 2}), FingerprintOf([]int{1, 2, 2}))
		assert.NotEqual(t, FingerprintOf([]int{1, 1}), FingerprintOf([]int{2, 2}))
		assert.NotEqual(t, FingerprintOf([]int{1}), FingerprintOf([]int{1, 1}))
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, Fingerprint{}, FingerprintOf[int](nil))
	})
}
