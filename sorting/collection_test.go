package sorting

import (
	"testing"

	amperrors "github.com/amp-labs/amp-algorithms/errors"
	"github.com/amp-labs/amp-algorithms/sortable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("nil slice is a missing value", func(t *testing.T) {
		t.Parallel()

		coll, err := New[int](nil)
		require.ErrorIs(t, err, ErrInvalidInput)
		require.ErrorIs(t, err, amperrors.ErrNilArgument)
		assert.Nil(t, coll)
	})

	t.Run("empty slice is fine", func(t *testing.T) {
		t.Parallel()

		coll, err := New([]int{})
		require.NoError(t, err)
		assert.Zero(t, coll.Len())
		assert.Equal(t, "default", coll.Name())
	})

	t.Run("stores the caller's slice", func(t *testing.T) {
		t.Parallel()

		input := []int{3, 1, 2}

		coll, err := New(input)
		require.NoError(t, err)

		input[0] = 42
		assert.Equal(t, 42, coll.Elements()[0])
	})
}

func TestNewFunc(t *testing.T) {
	t.Parallel()

	_, err := NewFunc([]int{1}, nil)
	require.ErrorIs(t, err, ErrInvalidInput)
	require.ErrorIs(t, err, amperrors.ErrNilArgument)

	coll, err := NewFunc([]string{"bb", "a", "ccc"}, func(a, b string) bool { return len(a) < len(b) },
		WithName("by-length"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "bb", "ccc"}, coll.MergeSort())
	assert.Equal(t, "by-length", coll.Name())
}

func TestNewSortable(t *testing.T) {
	t.Parallel()

	coll, err := NewSortable([]sortable.Natural{"file10", "file9", "file1"})
	require.NoError(t, err)

	assert.Equal(t, []sortable.Natural{"file1", "file9", "file10"}, coll.InsertionSort())
}

func TestFromAny(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		value   any
		wantErr error
	}{
		{name: "number", value: 42, wantErr: amperrors.ErrWrongType},
		{name: "string", value: "[1,2,3]", wantErr: amperrors.ErrWrongType},
		{name: "missing value", value: nil, wantErr: amperrors.ErrNilArgument},
		{name: "slice of another type", value: []string{"a"}, wantErr: amperrors.ErrWrongType},
		{name: "typed nil slice", value: []int(nil), wantErr: amperrors.ErrNilArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			coll, err := FromAny[int](tt.value)
			require.ErrorIs(t, err, ErrInvalidInput)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, coll)
		})
	}

	t.Run("slice of the right type", func(t *testing.T) {
		t.Parallel()

		coll, err := FromAny[int]([]int{2, 1})
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2}, coll.QuickSort())
	})
}

func TestSort_UnknownAlgorithm(t *testing.T) {
	t.Parallel()

	coll, err := New([]int{2, 1})
	require.NoError(t, err)

	out, err := coll.Sort(Algorithm(99))
	require.ErrorIs(t, err, ErrUnknownAlgorithm)
	assert.Nil(t, out)
	assert.Equal(t, []int{2, 1}, coll.Elements())
}
