// Package render provides text helpers for fixed-width terminal layout.
package render

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Sanitize removes control characters (except tab) and invalid UTF-8, and
// turns non-breaking spaces into spaces, so bad metadata cannot break the
// terminal.
func Sanitize(s string) string {
	if !needsSanitize(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		switch {
		case r == utf8.RuneError && size <= 1:
		case r != '\t' && unicode.IsControl(r):
		case r == '\u00a0':
			b.WriteByte(' ')
		default:
			b.WriteString(s[i : i+size])
		}
		i += size
	}
	return b.String()
}

func needsSanitize(s string) bool {
	for i := range len(s) {
		c := s[i]
		if c < 0x20 && c != '\t' {
			return true
		}
		if c == 0x7f || (c >= 0x80 && c <= 0x9f) {
			return true
		}
		if c == 0xc2 && i+1 < len(s) && (s[i+1] == 0xa0 || s[i+1] <= 0x9f) {
			return true
		}
	}
	return !utf8.ValidString(s)
}

// Truncate shortens s to maxWidth cells with a "..." tail. Wide runes count
// as two cells.
func Truncate(s string, maxWidth int) string {
	return runewidth.Truncate(Sanitize(s), maxWidth, "...")
}

// TruncateEllipsis is Truncate with a single-cell "…" tail.
func TruncateEllipsis(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return runewidth.Truncate(Sanitize(s), maxWidth, "…")
}

// Pad fills s with spaces up to width cells.
func Pad(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// Center truncates s to width and pads it evenly on both sides.
func Center(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = TruncateEllipsis(s, width)
	gap := width - runewidth.StringWidth(s)
	left := gap / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}

// Row places left and right at the edges of a width-wide line. Styled
// input is measured without its escape codes.
func Row(left, right string, width int) string {
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}
