package arcview

import (
	"cmp"
	"slices"

	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/llehouerou/arcshelf/internal/ui/render"
	"github.com/llehouerou/arcshelf/internal/ui/styles"
)

// Below this a card is not drawn.
const minAlpha = 0.03

// wideTail fills the canvas cell behind a double-width rune. It has no
// width of its own, so the row keeps its length.
const wideTail = '\u200b'

// paintOrder returns cards from bottom to top.
func (m *Model) paintOrder() []*card {
	order := slices.Clone(m.cards)
	slices.SortStableFunc(order, func(a, b *card) int {
		return cmp.Compare(a.stack, b.stack)
	})
	return order
}

// alpha is a card's effective opacity, 0 when it should not be drawn.
func (m *Model) alpha(c *card) float64 {
	if c.hidden {
		return 0
	}
	a := c.opacity.pos * m.dim.pos
	if a < minAlpha {
		return 0
	}
	return min(a, 1)
}

// View paints every visible card, back to front.
func (m *Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	m.canvas.Clear()
	for _, c := range m.paintOrder() {
		if a := m.alpha(c); a > 0 {
			m.paintCard(c, a)
		}
	}
	return m.canvas.View()
}

// shade picks the fill glyph for a blur radius: softer glyphs for blurrier
// cards.
func shade(blur float64) rune {
	switch {
	case blur < 0.6:
		return '█'
	case blur < 1.2:
		return '▓'
	default:
		return '▒'
	}
}

func (m *Model) paintCard(c *card, alpha float64) {
	t := styles.T()
	bg := t.Background
	r := m.rectOf(c)

	seed := c.content.ItemID
	if seed == "" {
		seed = c.content.Title
	}
	from, to := styles.CoverColors(seed)
	colors := styles.BlendColors(r.w, from, to)
	glyph := shade(c.blur)

	for dx := range r.w {
		style := lipgloss.NewStyle().
			Foreground(styles.Fade(colors[dx], bg, alpha)).
			Background(bg)
		cell := canvas.NewCellWithStyle(glyph, style)
		for dy := range r.h {
			m.set(r.x+dx, r.y+dy, cell)
		}
	}

	// Edge cards keep the frame readable against neighbours.
	if c.offset != 0 && r.h > 1 {
		edge := lipgloss.NewStyle().Foreground(styles.Fade(t.CardEdge, bg, alpha)).Background(bg)
		for dy := range r.h {
			if c.offset < 0 {
				m.set(r.x, r.y+dy, canvas.NewCellWithStyle('▏', edge))
			} else {
				m.set(r.x+r.w-1, r.y+dy, canvas.NewCellWithStyle('▕', edge))
			}
		}
	}

	m.paintTitle(c, r, alpha)
}

func (m *Model) paintTitle(c *card, r rect, alpha float64) {
	t := styles.T()
	title := render.TruncateEllipsis(c.content.Title, r.w)
	if title == "" {
		return
	}

	fg := t.FgMuted
	style := lipgloss.NewStyle()
	if c.offset == 0 {
		fg = t.FgBase
		style = style.Bold(true)
	}
	if c.blur >= 1.2 {
		style = style.Faint(true)
	}
	style = style.Foreground(styles.Fade(fg, t.Background, alpha))

	x := r.x + (r.w-runewidth.StringWidth(title))/2
	for _, ch := range title {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		if x < 0 {
			x += w
			continue
		}
		if x+w > m.width {
			break
		}
		m.set(x, r.y+r.h, canvas.NewCellWithStyle(ch, style))
		// The glyph already covers the next column.
		for i := 1; i < w; i++ {
			m.set(x+i, r.y+r.h, canvas.NewCellWithStyle(wideTail, style))
		}
		x += w
	}
}

func (m *Model) set(x, y int, cell canvas.Cell) {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return
	}
	p := canvas.Point{X: x, Y: y}
	// Overwriting half of a double-width glyph blanks the other half.
	switch old := m.canvas.Cell(p); {
	case old.Rune == wideTail && x > 0:
		m.canvas.SetCell(canvas.Point{X: x - 1, Y: y}, canvas.NewCellWithStyle(' ', old.Style))
	case runewidth.RuneWidth(old.Rune) > 1 && x+1 < m.width:
		m.canvas.SetCell(canvas.Point{X: x + 1, Y: y}, canvas.NewCellWithStyle(' ', old.Style))
	}
	m.canvas.SetCell(p, cell)
}
