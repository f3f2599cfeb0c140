package headerbar

import (
	"strings"
	"testing"

	"github.com/llehouerou/arcshelf/internal/ui/testutil"
)

func TestRender_TooNarrow(t *testing.T) {
	if got := Render(0, "", 10); got != "" {
		t.Errorf("Render at width 10 = %q, want empty", got)
	}
}

func TestRender_ActiveTab(t *testing.T) {
	out := testutil.StripANSI(Render(0, "", 80))
	if !strings.Contains(out, "● Albums") || !strings.Contains(out, "○ Tracks") {
		t.Errorf("albums tab not active: %q", out)
	}

	out = testutil.StripANSI(Render(1, "", 80))
	if !strings.Contains(out, "○ Albums") || !strings.Contains(out, "● Tracks") {
		t.Errorf("tracks tab not active: %q", out)
	}
}

func TestRender_Context(t *testing.T) {
	out := testutil.StripANSI(Render(1, "Kind of Blue", 80))
	if !strings.Contains(out, "Kind of Blue") {
		t.Errorf("context missing: %q", out)
	}
}

func TestRender_FitsWidth(t *testing.T) {
	long := strings.Repeat("very long album title ", 10)
	for _, width := range []int{30, 60, 100} {
		out := Render(1, long, width)
		if w := testutil.MeasureWidth(out); w > width {
			t.Errorf("width %d: rendered %d cells", width, w)
		}
	}
}
