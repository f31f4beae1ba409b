package cli

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/amp-labs/amp-binsort/envutil"
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

// Alignment controls where text sits inside a banner.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

const (
	bannerPadding   = 2
	truncateReserve = 1

	// DefaultTerminalWidth is used when COLUMNS is unset or unusable.
	DefaultTerminalWidth = 80
)

// TerminalWidth returns the width to render banners at, from the COLUMNS
// variable, falling back to DefaultTerminalWidth.
func TerminalWidth(ctx context.Context) int {
	width := envutil.Int[int](ctx, "COLUMNS", envutil.Default(DefaultTerminalWidth)).
		ValueOrElse(DefaultTerminalWidth)

	if width <= bannerPadding {
		return DefaultTerminalWidth
	}

	return width
}

// BannersSuppressed reports whether BINSORT_NO_BANNER asks for plain output.
func BannersSuppressed(ctx context.Context) bool {
	return envutil.Bool(ctx, "BINSORT_NO_BANNER", envutil.Default(false)).ValueOrElse(false)
}

// Divider renders a horizontal rule of the given width, ending in a newline.
func Divider(width int) string {
	if width < bannerPadding {
		return "\n"
	}

	return fmt.Sprintf("%s%s%s\n", dividerLeft, strings.Repeat(dividerMiddle, width-bannerPadding), dividerRight)
}

// Banner draws a box of the given total width around s. Lines that do not fit
// are truncated with an ellipsis. An empty string or non-positive width renders nothing.
func Banner(s string, width int, alignment Alignment) string {
	lines := getLines(s)
	if s == "" || width <= bannerPadding {
		return ""
	}

	inner := width - bannerPadding
	parts := []string{boxTopLeft + strings.Repeat(boxTop, inner) + boxTopRight}

	for _, l := range lines {
		var line string

		switch alignment {
		case AlignCenter:
			line = pad(l, inner, func(diff int) (int, int) { return diff / 2, diff - diff/2 })
		case AlignRight:
			line = pad(l, inner, func(diff int) (int, int) { return diff, 0 })
		default:
			line = pad(l, inner, func(diff int) (int, int) { return 0, diff })
		}

		parts = append(parts, boxSide+line+boxSide)
	}

	parts = append(parts, boxBottomLeft+strings.Repeat(boxBottom, inner)+boxBottomRight)

	return strings.Join(parts, "\n") + "\n"
}

func getLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")

	return strings.Split(s, "\n")
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

func truncateGraphic(s string, n int) (string, int) {
	var (
		out   strings.Builder
		count int
	)

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

// pad fits text into width columns; split decides how the leftover space is
// divided between the left and right side.
func pad(text string, width int, split func(diff int) (left, right int)) string {
	str := text
	length := countGraphic(text)

	if length > width {
		str, length = truncateGraphic(str, width-truncateReserve)
		str += ellipsis
		length++
	}

	left, right := split(width - length)

	return strings.Repeat(" ", left) + str + strings.Repeat(" ", right)
}
