package tests

import (
	"context"
	"strings"
	"testing"

	"github.com/amp-labs/amp-algorithms/envutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetUniqueContext(t *testing.T) {
	t.Parallel()

	ctx := GetUniqueContext(t)

	info, ok := GetTestInfo(ctx)
	require.True(t, ok)

	assert.Same(t, t, info.Test)
	assert.Equal(t, t.Name(), info.Name)
	assert.True(t, strings.HasPrefix(info.Id, "test-"))

	other, _ := GetTestInfo(GetUniqueContext(t))
	assert.NotEqual(t, info.Id, other.Id)
}

func TestGetTestInfo_Empty(t *testing.T) {
	t.Parallel()

	_, ok := GetTestInfo(context.Background())
	assert.False(t, ok)
}

func TestCheckSkipped(t *testing.T) {
	t.Parallel()

	ctx := envutil.WithEnvOverride(context.Background(), "SKIP_ME", "false")

	t.Run("runs when false", func(t *testing.T) {
		t.Parallel()

		CheckSkipped(ctx, t, "SKIP_ME")
	})

	t.Run("skips when inverted", func(t *testing.T) {
		t.Parallel()

		CheckSkipped(ctx, t, "SKIP_ME", false, true)
		t.Error("should have been skipped")
	})

	t.Run("default applies when unset", func(t *testing.T) {
		t.Parallel()

		CheckSkipped(context.Background(), t, "SKIP_ME_NOT_SET_ANYWHERE", true)
		t.Error("should have been skipped")
	})
}
