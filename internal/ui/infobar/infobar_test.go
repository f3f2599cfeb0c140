package infobar

import (
	"strings"
	"testing"

	"github.com/llehouerou/arcshelf/internal/carousel"
	"github.com/llehouerou/arcshelf/internal/ui/testutil"
)

func TestPosition(t *testing.T) {
	tests := []struct {
		name string
		info carousel.Info
		want string
	}{
		{"middle", carousel.Info{Title: "x", Position: 3, Total: 7}, "3 / 7"},
		{"empty", carousel.Info{Title: "No tracks", Empty: true}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Position(tt.info); got != tt.want {
				t.Errorf("Position = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTotals_String(t *testing.T) {
	tests := []struct {
		totals Totals
		want   string
	}{
		{Totals{Albums: 1, Tracks: 1}, "1 album · 1 track"},
		{Totals{Albums: 7, Tracks: 0}, "7 albums · 0 tracks"},
		{Totals{Albums: 1500, Tracks: 21034}, "1,500 albums · 21,034 tracks"},
	}
	for _, tt := range tests {
		if got := tt.totals.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestRender(t *testing.T) {
	info := carousel.Info{Title: "Album Three", Artist: "Demo Artist", Position: 3, Total: 7}
	out := testutil.StripANSI(Render(info, Totals{Albums: 7, Tracks: 6}, "", 60))
	lines := strings.Split(out, "\n")
	if len(lines) != Height {
		t.Fatalf("got %d lines, want %d: %q", len(lines), Height, out)
	}
	if !strings.Contains(lines[0], "Album Three - Demo Artist") {
		t.Errorf("headline = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "3 / 7") || !strings.HasSuffix(lines[1], "7 albums · 6 tracks") {
		t.Errorf("status = %q", lines[1])
	}
	for i, l := range lines {
		if w := testutil.MeasureWidth(l); w != 60 {
			t.Errorf("line %d width = %d, want 60", i, w)
		}
	}
}

func TestRender_EmptySelection(t *testing.T) {
	info := carousel.Info{Title: "No tracks", Empty: true, Mode: carousel.ModeSecondary}
	out := testutil.StripANSI(Render(info, Totals{Albums: 7}, "", 40))
	if !strings.Contains(out, "No tracks") {
		t.Errorf("missing empty label: %q", out)
	}
	if strings.Contains(out, "/") {
		t.Errorf("empty selection should have no position: %q", out)
	}
}

func TestRender_ErrorReplacesTotals(t *testing.T) {
	info := carousel.Info{Title: "Album One", Position: 1, Total: 7}
	out := testutil.StripANSI(Render(info, Totals{Albums: 7}, "Failed to load catalog: boom", 80))
	if !strings.Contains(out, "Failed to load catalog: boom") {
		t.Errorf("error missing: %q", out)
	}
	if strings.Contains(out, "albums") {
		t.Errorf("totals should be hidden: %q", out)
	}
}
