// Package infobar renders the selection line under the carousel: title and
// artist of the centered item, its position and the catalog totals.
package infobar

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"

	"github.com/llehouerou/arcshelf/internal/carousel"
	"github.com/llehouerou/arcshelf/internal/ui/render"
	"github.com/llehouerou/arcshelf/internal/ui/styles"
)

// Height is the number of lines Render produces.
const Height = 2

// Totals are the catalog counts shown on the right.
type Totals struct {
	Albums int
	Tracks int
}

func (t Totals) String() string {
	return count(t.Albums, "album") + " · " + count(t.Tracks, "track")
}

func count(n int, word string) string {
	return humanize.Comma(int64(n)) + " " + english.PluralWord(n, word, "")
}

// Position formats a 1-based position as "3 / 7", or "" when empty.
func Position(info carousel.Info) string {
	if info.Empty || info.Total == 0 {
		return ""
	}
	return strconv.Itoa(info.Position) + " / " + strconv.Itoa(info.Total)
}

// Render returns the two info lines. A non-empty errMsg replaces the
// totals.
func Render(info carousel.Info, totals Totals, errMsg string, width int) string {
	if width <= 0 {
		return ""
	}
	s := styles.T().S()

	title := info.Title
	if !info.Empty && info.Artist != "" {
		title += " - " + info.Artist
	}
	headline := render.Center(title, width)
	if info.Empty {
		headline = s.Muted.Render(headline)
	} else {
		headline = s.Title.Render(headline)
	}

	left := s.Counter.Render(Position(info))
	var right string
	if errMsg != "" {
		room := max(width-lipgloss.Width(left)-1, 1)
		right = s.Error.Render(render.TruncateEllipsis(errMsg, room))
	} else {
		right = s.Muted.Render(totals.String())
	}

	return lipgloss.JoinVertical(lipgloss.Left, headline, render.Row(left, right, width))
}
