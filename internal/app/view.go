// internal/app/view.go
package app

import (
	"strings"

	zone "github.com/lrstanley/bubblezone"

	"github.com/llehouerou/arcshelf/internal/ui/headerbar"
	"github.com/llehouerou/arcshelf/internal/ui/infobar"
	"github.com/llehouerou/arcshelf/internal/ui/jobbar"
	"github.com/llehouerou/arcshelf/internal/ui/overlay"
)

// View renders the entire application UI.
func (m Model) View() string {
	if m.Width == 0 || m.Height == 0 {
		return ""
	}

	info := m.Carousel.Info()
	header := headerbar.Render(int(info.Mode), m.headerContext(), m.Width)
	arc := zone.Mark(arcZone, enforceHeight(m.Arc.View(), m.arcHeight()))

	var bottom string
	if m.loading() {
		bottom = jobbar.Render(m.Loading, m.Width)
	} else {
		bottom = infobar.Render(info, m.Totals, m.ErrorMsg, m.Width)
	}

	view := header + "\n" + arc + "\n" + enforceHeight(bottom, infobar.Height)
	view = enforceHeight(view, m.Height)
	view = zone.Scan(view)

	if m.ShowHelp {
		view = overlay.Compose(view, m.Help.View(), m.Width)
	}
	if m.ShowFinder {
		view = overlay.Compose(view, m.Finder.View(), m.Width)
	}

	// Image commands go outside the text so line diffing is unaffected.
	if pending := m.art.take(); pending != "" {
		view = pending + view
	}
	view += m.artPlacement()

	return view
}

// artPlacement returns the placement command for the center card's cover,
// or "" when it should not be shown.
func (m Model) artPlacement() string {
	if !m.artVisible() || !m.Art.HasImage() {
		return ""
	}
	if ref := m.centerCover(); ref == "" || ref != m.Art.Current() {
		return ""
	}
	x, y, _, _, ok := m.Arc.CenterRect()
	if !ok {
		return ""
	}
	// 1-based terminal coordinates; the carousel starts below the header.
	return m.Art.Placement(headerbar.Height+y+1, x+1)
}

// enforceHeight pads or truncates view to exactly height lines.
func enforceHeight(view string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(view, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
