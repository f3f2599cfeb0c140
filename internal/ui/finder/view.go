package finder

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/arcshelf/internal/ui/render"
	"github.com/llehouerou/arcshelf/internal/ui/styles"
)

const maxVisibleResults = 12

func selectedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(styles.T().Primary).Bold(true)
}

func (m Model) popupWidth() int {
	w := m.width * 60 / 100
	if w < 40 {
		w = min(40, m.width-4)
	}
	return w
}

func (m Model) popupHeight() int {
	h := m.height * 50 / 100
	if h < 10 {
		h = min(10, m.height-2)
	}
	return h
}

func (m Model) visibleHeight() int {
	// Account for border (2) + input line (1) + separator (1)
	h := max(m.popupHeight()-4, 1)
	return min(h, maxVisibleResults)
}

func (m Model) emptyMessage() string {
	if m.Query() != "" {
		return "No matches"
	}
	return "Nothing to find"
}

func (m Model) formatResultLine(e entry, innerW int, isCursor bool) string {
	prefix := "  "
	if isCursor {
		prefix = "> "
	}
	availW := innerW - 4

	if e.artist == "" {
		return prefix + render.TruncateEllipsis(e.title, availW)
	}

	right := render.TruncateEllipsis(e.artist, availW/3)
	left := render.TruncateEllipsis(e.title, max(availW-lipgloss.Width(right)-2, 1))
	gap := max(1, availW-lipgloss.Width(left)-lipgloss.Width(right))
	return prefix + left + strings.Repeat(" ", gap) + styles.T().S().Subtle.Render(right)
}

// View renders the popup centered in the terminal.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	s := styles.T().S()

	popupW := m.popupWidth()
	innerW := popupW - 4 // border and padding

	t := styles.T()
	separator := styles.ApplyGradient(strings.Repeat("─", innerW), t.Primary, t.FgSubtle)

	visible := m.visibleHeight()
	var resultLines []string
	if len(m.matches) == 0 {
		resultLines = append(resultLines, s.Subtle.Render(m.emptyMessage()))
	} else {
		end := min(m.offset+visible, len(m.matches))
		for i := m.offset; i < end; i++ {
			isCursor := i == m.cursor
			line := m.formatResultLine(m.entries[m.matches[i].entry], innerW, isCursor)
			if isCursor {
				resultLines = append(resultLines, selectedStyle().Render(line))
			} else {
				resultLines = append(resultLines, s.Base.Render(line))
			}
		}
	}
	for len(resultLines) < visible {
		resultLines = append(resultLines, "")
	}

	content := m.input.View() + "\n" + separator + "\n" + strings.Join(resultLines, "\n")
	box := styles.PopupStyle().Width(popupW - 2).Render(content)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
