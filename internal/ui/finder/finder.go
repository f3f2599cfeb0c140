// Package finder is the fuzzy "jump to" popup over the active sequence.
package finder

import (
	"cmp"
	"slices"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/llehouerou/arcshelf/internal/catalog"
)

// ResultMsg is emitted when the finder closes. Index is a position in the
// sequence passed to Open.
type ResultMsg struct {
	Index    int
	Canceled bool
}

// entry is one searchable item.
type entry struct {
	index  int
	title  string
	artist string
}

func (e entry) filterValue() string {
	if e.artist == "" {
		return e.title
	}
	return e.title + " " + e.artist
}

type match struct {
	entry int
	rank  int
}

// Model is the finder popup.
type Model struct {
	input   textinput.Model
	entries []entry
	matches []match
	cursor  int
	offset  int
	width   int
	height  int
}

// New creates a closed finder.
func New() Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Type to find..."
	ti.CharLimit = 128
	return Model{input: ti}
}

// Open loads items, clears the query and places the cursor on current.
func (m *Model) Open(items []catalog.Item, current int) tea.Cmd {
	m.entries = make([]entry, len(items))
	for i, it := range items {
		m.entries[i] = entry{index: i, title: it.Title, artist: it.Artist}
	}
	m.input.SetValue("")
	m.updateMatches()
	m.cursor = 0
	for i, mt := range m.matches {
		if m.entries[mt.entry].index == current {
			m.cursor = i
		}
	}
	m.adjustOffset()
	return m.input.Focus()
}

// SetSize sets the terminal size the popup is centered in.
func (m *Model) SetSize(width, height int) {
	m.width, m.height = width, height
	m.input.Width = max(m.popupWidth()-6, 1)
	m.adjustOffset()
}

// Query returns the current query.
func (m Model) Query() string {
	return m.input.Value()
}

// Matches returns the indices of the matching items, best first.
func (m Model) Matches() []int {
	out := make([]int, len(m.matches))
	for i, mt := range m.matches {
		out[i] = m.entries[mt.entry].index
	}
	return out
}

// Selected returns the index under the cursor.
func (m Model) Selected() (int, bool) {
	if m.cursor < 0 || m.cursor >= len(m.matches) {
		return 0, false
	}
	return m.entries[m.matches[m.cursor].entry].index, true
}

func (m *Model) updateMatches() {
	query := m.input.Value()
	matches := make([]match, 0, len(m.entries))
	for i, e := range m.entries {
		if query == "" {
			matches = append(matches, match{entry: i})
			continue
		}
		if rank := fuzzy.RankMatchNormalizedFold(query, e.filterValue()); rank >= 0 {
			matches = append(matches, match{entry: i, rank: rank})
		}
	}
	m.matches = matches
	slices.SortStableFunc(m.matches, func(a, b match) int {
		return cmp.Compare(a.rank, b.rank)
	})

	if m.cursor >= len(m.matches) {
		m.cursor = max(0, len(m.matches)-1)
	}
	m.adjustOffset()
}

func (m *Model) adjustOffset() {
	visible := m.visibleHeight()
	if visible <= 0 {
		return
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+visible {
		m.offset = m.cursor - visible + 1
	}
}

// Update handles keys while the finder is open.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch key.String() {
	case "esc":
		m.input.Blur()
		return m, func() tea.Msg {
			return ResultMsg{Canceled: true}
		}

	case "enter":
		m.input.Blur()
		index, found := m.Selected()
		return m, func() tea.Msg {
			return ResultMsg{Index: index, Canceled: !found}
		}

	case "up", "ctrl+p":
		if m.cursor > 0 {
			m.cursor--
			m.adjustOffset()
		}
		return m, nil

	case "down", "ctrl+n":
		if m.cursor < len(m.matches)-1 {
			m.cursor++
			m.adjustOffset()
		}
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.cursor = 0
		m.offset = 0
		m.updateMatches()
	}
	return m, cmd
}
