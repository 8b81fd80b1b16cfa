package cli

import (
	"context"
	"testing"

	"github.com/amp-labs/amp-algorithms/envutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBanner(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		text      string
		width     int
		alignment Alignment
		expected  string
	}{
		{
			name:      "left",
			text:      "merge",
			width:     9,
			alignment: AlignLeft,
			expected:  "╒═══════╕\n│merge  │\n└───────┘\n",
		},
		{
			name:      "right",
			text:      "merge",
			width:     9,
			alignment: AlignRight,
			expected:  "╒═══════╕\n│  merge│\n└───────┘\n",
		},
		{
			name:      "center",
			text:      "quick",
			width:     10,
			alignment: AlignCenter,
			expected:  "╒════════╕\n│ quick  │\n└────────┘\n",
		},
		{
			name:      "truncated",
			text:      "insertion",
			width:     7,
			alignment: AlignLeft,
			expected:  "╒═════╕\n│inse…│\n└─────┘\n",
		},
		{
			name:      "several lines",
			text:      "a\r\nbb",
			width:     4,
			alignment: AlignLeft,
			expected:  "╒══╕\n│a │\n│bb│\n└──┘\n",
		},
		{name: "too narrow", text: "x", width: 2, alignment: AlignLeft},
		{name: "empty", text: "", width: 10, alignment: AlignLeft},
		{name: "bad alignment", text: "x", width: 10, alignment: Alignment(9)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, Banner(tt.text, tt.width, tt.alignment))
		})
	}
}

func TestDivider(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "┠───┨\n", Divider(5))
	assert.Empty(t, Divider(1))
}

func TestBannerFor(t *testing.T) {
	t.Parallel()

	ctx := envutil.WithEnvOverride(context.Background(), "COLUMNS", "6")

	assert.Equal(t, "╒════╕\n│ ab │\n└────┘\n", BannerFor(ctx, "ab", AlignCenter))

	ctx = envutil.WithEnvOverride(ctx, "SORTS_NO_BANNER", "true")
	assert.Equal(t, "ab\n", BannerFor(ctx, "ab", AlignCenter))
}

func TestTerminalWidth(t *testing.T) {
	t.Parallel()

	for value, expected := range map[string]int{
		"120":  120,
		"0":    DefaultTerminalWidth,
		"wide": DefaultTerminalWidth,
	} {
		ctx := envutil.WithEnvOverride(context.Background(), "COLUMNS", value)
		assert.Equal(t, expected, TerminalWidth(ctx), value)
	}
}

func TestPrefixSearcher(t *testing.T) {
	t.Parallel()

	search := PrefixSearcher([]string{"bubble", "Quick", "merge"})

	assert.True(t, search("bu", 0))
	assert.True(t, search("qu", 1))
	assert.True(t, search("", 2))
	assert.False(t, search("qu", 2))
	assert.False(t, search("qu", 3))
}

func TestSelect_NoChoices(t *testing.T) {
	t.Parallel()

	_, err := Select("pick", nil)
	require.ErrorIs(t, err, ErrNoChoices)
}

func TestNonEmpty(t *testing.T) {
	t.Parallel()

	require.Error(t, NonEmpty(""))
	require.NoError(t, NonEmpty("1 2 3"))
	assert.Contains(t, NonEmpty("").Error(), "enter something")
}
