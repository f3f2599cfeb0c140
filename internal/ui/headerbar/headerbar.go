// Package headerbar renders the mode tabs above the carousel.
package headerbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/arcshelf/internal/ui/render"
	"github.com/llehouerou/arcshelf/internal/ui/styles"
)

// Height is the fixed height of the header bar.
const Height = 1

// Tab is one mode tab. Key is the hint shown before the name.
type Tab struct {
	Key  string
	Name string
}

// Tabs are the browse modes in display order.
var Tabs = []Tab{
	{"tab", "Albums"},
	{"tab", "Tracks"},
}

// Render returns the header for width, highlighting tab active (an index
// into Tabs). context is shown dimmed after the tabs, e.g. the album whose
// tracks are listed.
func Render(active int, context string, width int) string {
	if width < 20 {
		return ""
	}

	t := styles.T()
	activeStyle := lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	inactiveStyle := lipgloss.NewStyle().Foreground(t.FgMuted)
	keyStyle := lipgloss.NewStyle().Foreground(t.FgSubtle)
	sepStyle := lipgloss.NewStyle().Foreground(t.FgSubtle)

	parts := make([]string, 0, len(Tabs))
	for i, tab := range Tabs {
		if i == active {
			parts = append(parts, activeStyle.Render("● "+tab.Name))
		} else {
			parts = append(parts, inactiveStyle.Render("○ "+tab.Name))
		}
	}
	content := strings.Join(parts, sepStyle.Render(" │ "))
	hint := "  " + keyStyle.Render(Tabs[0].Key+" to switch")
	if lipgloss.Width(content)+lipgloss.Width(hint) <= width {
		content += hint
	}

	if context != "" {
		room := width - lipgloss.Width(content) - 3
		if room > 3 {
			content += sepStyle.Render(" · ") + inactiveStyle.Render(render.TruncateEllipsis(context, room))
		}
	}

	if w := lipgloss.Width(content); w < width {
		content = strings.Repeat(" ", (width-w)/2) + content
	}
	return content
}
