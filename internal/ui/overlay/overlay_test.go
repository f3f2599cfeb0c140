package overlay

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/arcshelf/internal/ui/testutil"
)

func TestCompose_ReplacesVisibleSpan(t *testing.T) {
	base := "aaaaaaaaaa\nbbbbbbbbbb\ncccccccccc"
	top := "          \n   X  Y   \n          "

	got := testutil.StripANSI(Compose(base, top, 10))
	want := "aaaaaaaaaa\nbbbX  Ybbb\ncccccccccc"
	if got != want {
		t.Errorf("Compose =\n%s\nwant\n%s", got, want)
	}
}

func TestCompose_StyledInput(t *testing.T) {
	red := lipgloss.NewStyle().Foreground(lipgloss.Color("#ff0000"))
	base := red.Render("0123456789")
	top := "  " + red.Render("ab") + "      "

	got := testutil.StripANSI(Compose(base, top, 10))
	if got != "01ab456789" {
		t.Errorf("Compose = %q", got)
	}
}

func TestCompose_PadsShortBase(t *testing.T) {
	got := testutil.StripANSI(Compose("ab", "    xy", 6))
	if got != "ab  xy" {
		t.Errorf("Compose = %q", got)
	}
}

func TestCompose_PlacedPopup(t *testing.T) {
	base := strings.TrimSuffix(strings.Repeat(strings.Repeat(".", 20)+"\n", 5), "\n")
	box := lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Render("hi")
	top := lipgloss.Place(20, 5, lipgloss.Center, lipgloss.Center, box)

	lines := strings.Split(testutil.StripANSI(Compose(base, top, 20)), "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d lines", len(lines))
	}
	if !strings.Contains(lines[2], "│hi│") {
		t.Errorf("middle line = %q", lines[2])
	}
	if lines[0] != strings.Repeat(".", 20) {
		t.Errorf("untouched line changed: %q", lines[0])
	}
	for i, l := range lines {
		if w := testutil.MeasureWidth(l); w != 20 {
			t.Errorf("line %d width = %d", i, w)
		}
	}
}

func TestCompose_ExtraTopLinesDropped(t *testing.T) {
	got := testutil.StripANSI(Compose("ab", "xy\nzz", 2))
	if got != "xy" {
		t.Errorf("Compose = %q", got)
	}
}
