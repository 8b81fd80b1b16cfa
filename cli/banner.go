package cli

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/amp-labs/amp-algorithms/envutil"
)

const (
	boxTopLeft     = "╒"
	boxBottomLeft  = "└"
	boxTopRight    = "╕"
	boxBottomRight = "┘"
	boxSide        = "│"
	boxTop         = "═"
	boxBottom      = "─"
	dividerLeft    = "┠"
	dividerMiddle  = "─"
	dividerRight   = "┨"
	ellipsis       = "…"
)

// Alignment positions text inside a banner.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

const (
	DefaultTerminalWidth = 80

	// Room taken by the box characters on either side.
	borderWidth = 2
)

// TerminalWidth returns the width to draw banners at: $COLUMNS when it is
// a positive number, DefaultTerminalWidth otherwise.
func TerminalWidth(ctx context.Context) int {
	width := envutil.Int(ctx, "COLUMNS", envutil.Default(DefaultTerminalWidth)).
		ValueOrElse(DefaultTerminalWidth)
	if width <= borderWidth {
		return DefaultTerminalWidth
	}

	return width
}

// BannerEnabled reports whether banners should be drawn. Setting
// SORTS_NO_BANNER=true turns them into plain lines.
func BannerEnabled(ctx context.Context) bool {
	return !envutil.Bool(ctx, "SORTS_NO_BANNER", envutil.Default(false)).ValueOrElse(false)
}

// Divider renders a horizontal rule of the given width.
func Divider(width int) string {
	if width < borderWidth {
		return ""
	}

	return dividerLeft + strings.Repeat(dividerMiddle, width-borderWidth) + dividerRight + "\n"
}

// Banner draws s (which may span several lines) inside a box of the given
// width. Lines that don't fit are truncated with an ellipsis.
func Banner(s string, width int, alignment Alignment) string {
	inner := width - borderWidth
	if inner <= 0 || s == "" {
		return ""
	}

	parts := []string{boxTopLeft + strings.Repeat(boxTop, inner) + boxTopRight}

	for _, l := range strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n") {
		line, err := pad(l, inner, alignment)
		if err != nil {
			return ""
		}

		parts = append(parts, boxSide+line+boxSide)
	}

	parts = append(parts, boxBottomLeft+strings.Repeat(boxBottom, inner)+boxBottomRight)

	return strings.Join(parts, "\n") + "\n"
}

// BannerFor draws s at the terminal width, or returns it as a plain line
// when banners are disabled.
func BannerFor(ctx context.Context, s string, alignment Alignment) string {
	if !BannerEnabled(ctx) {
		return s + "\n"
	}

	return Banner(s, TerminalWidth(ctx), alignment)
}

func pad(text string, width int, alignment Alignment) (string, error) {
	length := countGraphic(text)

	if length > width {
		text, length = truncateGraphic(text, width-1)
		text += ellipsis
		length++
	}

	diff := width - length

	switch alignment {
	case AlignLeft:
		return text + strings.Repeat(" ", diff), nil
	case AlignRight:
		return strings.Repeat(" ", diff) + text, nil
	case AlignCenter:
		left := diff / 2 //nolint:mnd

		return strings.Repeat(" ", left) + text + strings.Repeat(" ", diff-left), nil
	default:
		return "", fmt.Errorf("unknown alignment %d", alignment) //nolint:err113
	}
}

func countGraphic(s string) int {
	count := 0

	for _, r := range s {
		if unicode.IsGraphic(r) {
			count++
		}
	}

	return count
}

// truncateGraphic keeps the first n graphic runes of s.
func truncateGraphic(s string, n int) (string, int) {
	var out strings.Builder

	count := 0

	for _, r := range s {
		if unicode.IsGraphic(r) {
			if count == n {
				break
			}

			count++
		}

		out.WriteRune(r)
	}

	return out.String(), count
}
