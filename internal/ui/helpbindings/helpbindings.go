// Package helpbindings provides a scrollable popup listing the key bindings.
package helpbindings

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/arcshelf/internal/keymap"
	"github.com/llehouerou/arcshelf/internal/ui/styles"
)

// CloseMsg signals the help popup should close.
type CloseMsg struct{}

// categoryOrder defines the display order of binding categories.
var categoryOrder = []string{"carousel", "global"}

// categoryLabels maps context names to display labels.
var categoryLabels = map[string]string{
	"carousel": "Carousel",
	"global":   "Global",
}

// Model holds the state for the help bindings popup.
type Model struct {
	bindings     []keymap.Binding
	scrollOffset int
	width        int
	height       int
}

// New creates a help popup for bindings, grouped by context.
func New(bindings []keymap.Binding) Model {
	var ordered []keymap.Binding
	for _, ctx := range categoryOrder {
		ordered = append(ordered, keymap.ByContext(bindings, ctx)...)
	}
	return Model{bindings: ordered}
}

// SetSize sets the terminal size the popup is centered in.
func (m *Model) SetSize(width, height int) {
	m.width, m.height = width, height
	m.scrollOffset = min(m.scrollOffset, m.maxScroll())
}

// Update handles scrolling and closing.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "?", "esc", "q":
		return m, func() tea.Msg { return CloseMsg{} }
	case "j", "down":
		if m.scrollOffset < m.maxScroll() {
			m.scrollOffset++
		}
	case "k", "up":
		if m.scrollOffset > 0 {
			m.scrollOffset--
		}
	}
	return m, nil
}

// View renders the popup centered in the terminal.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	lines := strings.Split(m.buildContent(), "\n")

	// Width from all lines so scrolling never resizes the popup
	maxWidth := 0
	for _, line := range lines {
		maxWidth = max(maxWidth, lipgloss.Width(line))
	}

	start := min(m.scrollOffset, len(lines))
	end := min(start+m.visibleHeight(), len(lines))
	visibleLines := lines[start:end]
	for i, line := range visibleLines {
		if w := lipgloss.Width(line); w < maxWidth {
			visibleLines[i] = line + strings.Repeat(" ", maxWidth-w)
		}
	}

	t := styles.T()
	var result strings.Builder
	result.WriteString(styles.ApplyBoldGradient("Help", t.Primary, t.Secondary))
	result.WriteString("\n\n")
	result.WriteString(strings.Join(visibleLines, "\n"))
	result.WriteString("\n\n")
	result.WriteString(lipgloss.NewStyle().Foreground(t.FgSubtle).Render(m.buildFooter()))

	box := styles.PopupStyle().Render(result.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func (m Model) buildContent() string {
	t := styles.T()
	keyStyle := lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.FgBase)
	headerStyle := lipgloss.NewStyle().Foreground(t.Secondary).Bold(true)
	separatorStyle := lipgloss.NewStyle().Foreground(t.FgSubtle)

	maxKeyWidth := 0
	for _, b := range m.bindings {
		maxKeyWidth = max(maxKeyWidth, lipgloss.Width(keyList(b.Keys)))
	}

	var sb strings.Builder
	currentContext := ""
	for _, b := range m.bindings {
		if b.Context != currentContext {
			if currentContext != "" {
				sb.WriteString("\n")
			}
			label := categoryLabels[b.Context]
			if label == "" {
				label = b.Context
			}
			sb.WriteString(headerStyle.Render(label))
			sb.WriteString("\n")
			sb.WriteString(separatorStyle.Render(strings.Repeat("─", maxKeyWidth+15)))
			sb.WriteString("\n")
			currentContext = b.Context
		}

		keyStr := keyList(b.Keys)
		sb.WriteString(keyStyle.Render(keyStr + strings.Repeat(" ", maxKeyWidth-lipgloss.Width(keyStr))))
		sb.WriteString("  ")
		sb.WriteString(descStyle.Render(b.Description))
		sb.WriteString("\n")
	}

	return strings.TrimSuffix(sb.String(), "\n")
}

// keyList joins keys for display, spelling out the space bar.
func keyList(keys []string) string {
	shown := make([]string, len(keys))
	for i, k := range keys {
		if k == " " {
			k = "space"
		}
		shown[i] = k
	}
	return strings.Join(shown, ", ")
}

func (m Model) buildFooter() string {
	if m.totalLines() <= m.visibleHeight() {
		return "?/esc close"
	}
	return "j/k scroll · ?/esc close"
}

func (m Model) visibleHeight() int {
	// Leave room for popup chrome (title, footer, borders)
	return max(m.height-8, 3)
}

func (m Model) totalLines() int {
	return strings.Count(m.buildContent(), "\n") + 1
}

func (m Model) maxScroll() int {
	return max(m.totalLines()-m.visibleHeight(), 0)
}
