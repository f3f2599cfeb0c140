package styles

import "github.com/charmbracelet/lipgloss"

// PopupStyle is the bordered frame used by overlays (finder, help).
func PopupStyle() lipgloss.Style {
	t := T()
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Primary).
		Padding(0, 1)
}
