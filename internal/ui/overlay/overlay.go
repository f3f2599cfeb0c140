// Package overlay draws popups over the carousel.
package overlay

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

const reset = "\x1b[m"

// Compose draws top over base. top is a full-screen rendering (such as
// lipgloss.Place output): on each line, the span from the first to the last
// visible non-space cell replaces base, the rest of base shows through.
// Lines of top beyond base are dropped.
func Compose(base, top string, width int) string {
	baseLines := strings.Split(base, "\n")

	for i, line := range strings.Split(top, "\n") {
		if i >= len(baseLines) {
			break
		}
		start, end, ok := span(line)
		if !ok {
			continue
		}
		baseLines[i] = splice(baseLines[i], ansi.Cut(line, start, end), start, end, width)
	}

	return strings.Join(baseLines, "\n")
}

// span returns the visible column range [start, end) of line without its
// leading and trailing spaces.
func span(line string) (start, end int, ok bool) {
	plain := ansi.Strip(line)
	trimmed := strings.TrimLeft(plain, " ")
	if strings.TrimSpace(trimmed) == "" {
		return 0, 0, false
	}
	start = len(plain) - len(trimmed)
	end = start + ansi.StringWidth(strings.TrimRight(trimmed, " "))
	return start, end, true
}

// splice replaces columns [start, end) of base with content.
func splice(base, content string, start, end, width int) string {
	if w := ansi.StringWidth(base); w < end {
		base += strings.Repeat(" ", end-w)
	}
	right := max(width, ansi.StringWidth(base))

	var sb strings.Builder
	sb.WriteString(ansi.Cut(base, 0, start))
	sb.WriteString(reset)
	sb.WriteString(content)
	sb.WriteString(reset)
	if end < right {
		sb.WriteString(ansi.Cut(base, end, right))
	}
	return sb.String()
}
