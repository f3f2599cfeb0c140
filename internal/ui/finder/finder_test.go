package finder

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/arcshelf/internal/catalog"
	"github.com/llehouerou/arcshelf/internal/ui/testutil"
)

func openDemo(t *testing.T, current int) Model {
	t.Helper()
	m := New()
	m.SetSize(100, 30)
	m.Open(catalog.Demo().Albums, current)
	return m
}

func typeText(m Model, s string) Model {
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return m
}

func press(m Model, k tea.KeyType) (Model, tea.Cmd) {
	return m.Update(tea.KeyMsg{Type: k})
}

func result(t *testing.T, cmd tea.Cmd) ResultMsg {
	t.Helper()
	require.NotNil(t, cmd)
	msg, ok := cmd().(ResultMsg)
	require.True(t, ok, "expected ResultMsg")
	return msg
}

func TestOpen_CursorOnCurrent(t *testing.T) {
	m := openDemo(t, 4)
	assert.Len(t, m.Matches(), 7)
	idx, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, 4, idx)
}

func TestFilter_ByTitle(t *testing.T) {
	m := typeText(openDemo(t, 0), "seven")
	assert.Equal(t, "seven", m.Query())
	assert.Equal(t, []int{6}, m.Matches())

	_, cmd := press(m, tea.KeyEnter)
	assert.Equal(t, ResultMsg{Index: 6}, result(t, cmd))
}

func TestFilter_ByArtistCaseInsensitive(t *testing.T) {
	m := typeText(openDemo(t, 0), "ARTIST C")
	assert.Equal(t, []int{2}, m.Matches())
}

func TestFilter_NoMatches(t *testing.T) {
	m := typeText(openDemo(t, 0), "zzz")
	assert.Empty(t, m.Matches())
	assert.Contains(t, testutil.StripANSI(m.View()), "No matches")

	_, cmd := press(m, tea.KeyEnter)
	assert.True(t, result(t, cmd).Canceled)
}

func TestBackspaceWidensMatches(t *testing.T) {
	m := typeText(openDemo(t, 0), "sevenx")
	assert.Empty(t, m.Matches())

	m, _ = press(m, tea.KeyBackspace)
	assert.Equal(t, "seven", m.Query())
	assert.Equal(t, []int{6}, m.Matches())
}

func TestCursorMovement(t *testing.T) {
	m := openDemo(t, 0)

	m, _ = press(m, tea.KeyDown)
	m, _ = press(m, tea.KeyDown)
	idx, _ := m.Selected()
	assert.Equal(t, 2, idx)

	m, _ = press(m, tea.KeyUp)
	idx, _ = m.Selected()
	assert.Equal(t, 1, idx)

	for range 10 {
		m, _ = press(m, tea.KeyDown)
	}
	idx, _ = m.Selected()
	assert.Equal(t, 6, idx, "cursor stops at the last match")
}

func TestEscCancels(t *testing.T) {
	m := typeText(openDemo(t, 3), "album")
	_, cmd := press(m, tea.KeyEsc)
	assert.True(t, result(t, cmd).Canceled)
}

func TestReopenClearsQuery(t *testing.T) {
	m := typeText(openDemo(t, 0), "two")
	m.Open(catalog.Demo().Albums, 0)
	assert.Empty(t, m.Query())
	assert.Len(t, m.Matches(), 7)
}

func TestView(t *testing.T) {
	m := openDemo(t, 0)
	out := testutil.StripANSI(m.View())
	assert.Contains(t, out, "Album One")
	assert.Contains(t, out, "Artist A")
	assert.Contains(t, out, "> Album One")

	assert.Empty(t, New().View(), "unsized finder renders nothing")
}
