package arcview

import (
	"math"

	"github.com/llehouerou/arcshelf/internal/carousel"
)

// Terminal cells are roughly twice as tall as they are wide.
const cellAspect = 2.0

const (
	minCardWidth = 8
	maxCardWidth = 30
)

// layout maps arc units to cells for one terminal size.
type layout struct {
	width, height int

	cardW, cardH int     // unscaled cover size in cells
	colUnit      float64 // columns per arc unit
	rowUnit      float64 // rows per arc unit
	originCol    float64 // column of X == 0
	originRow    float64 // row of a card center at Y == 0
}

func newLayout(p carousel.Params, width, height int) layout {
	l := layout{width: width, height: height}
	if width <= 0 || height <= 0 {
		return l
	}

	l.cardW = min(max(width/6, minCardWidth), maxCardWidth)
	l.cardH = max(int(float64(l.cardW)/cellAspect), 2)

	// The center card plus its title row must fit.
	if centerH := int(math.Round(float64(l.cardH)*p.CenterScale)) + 1; centerH > height {
		l.cardH = max(int(float64(height-1)/p.CenterScale), 1)
		l.cardW = max(int(float64(l.cardH)*cellAspect), 2)
	}

	edge := math.Min(float64(p.Visible)*p.AngleStep, math.Pi/2)
	reachX := math.Sin(edge) * p.RadiusX
	reachY := (1 - math.Cos(edge)) * p.RadiusY

	edgeHalf := float64(l.cardW) * p.ScaleMin / 2
	if reachX > 0 {
		l.colUnit = math.Max(float64(width)/2-1-edgeHalf, 0) / reachX
	}
	l.rowUnit = l.colUnit / cellAspect

	centerH := math.Round(float64(l.cardH)*p.CenterScale) + 1
	if reachY > 0 {
		if room := float64(height) - centerH; reachY*l.rowUnit > room {
			l.rowUnit = math.Max(room, 0) / reachY
		}
	}

	block := reachY*l.rowUnit + centerH
	top := (float64(height) - block) / 2
	l.originCol = float64(width) / 2
	l.originRow = top + reachY*l.rowUnit + (centerH-1)/2
	return l
}

// rect is a card's cover area in cells. The title sits on row y+h.
type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y <= r.y+r.h
}

func (l layout) rectOf(c *card) rect {
	w := max(int(math.Round(float64(l.cardW)*c.scale.pos)), 1)
	h := max(int(math.Round(float64(l.cardH)*c.scale.pos)), 1)
	col := l.originCol + c.x.pos*l.colUnit
	row := l.originRow + c.y.pos*l.rowUnit
	return rect{
		x: int(math.Round(col - float64(w)/2)),
		y: int(math.Round(row - float64(h)/2)),
		w: w,
		h: h,
	}
}

// HitTest returns the offset of the topmost visible card at cell (x, y),
// relative to the top-left of the view.
func (m *Model) HitTest(x, y int) (offset int, ok bool) {
	order := m.paintOrder()
	for i := len(order) - 1; i >= 0; i-- {
		c := order[i]
		if m.alpha(c) <= 0 {
			continue
		}
		if m.rectOf(c).contains(x, y) {
			return c.offset, true
		}
	}
	return 0, false
}

// CenterRect returns the cover area of the centered card in cells,
// relative to the view. ok is false when nothing is centered.
func (m *Model) CenterRect() (x, y, w, h int, ok bool) {
	for _, c := range m.cards {
		if c.offset != 0 || c.hidden {
			continue
		}
		r := m.rectOf(c)
		return r.x, r.y, r.w, r.h, true
	}
	return 0, 0, 0, 0, false
}
