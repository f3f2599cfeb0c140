package carousel

import "github.com/llehouerou/arcshelf/internal/catalog"

// SlotID is an opaque handle to one of the pool's slots. Handles are stable
// for the lifetime of the pool; only their position in the ring changes.
type SlotID int

// Content is what a slot currently displays.
type Content struct {
	ItemID string
	Title  string
	Artist string
	Cover  string // image source; empty renders a placeholder
	Label  string // accessible label for the cover
}

// Slot is the renderer-facing record of one card.
type Slot struct {
	ID       SlotID
	Offset   int
	Geometry Geometry
	Content  Content
	// Animated reports whether the renderer should transition to Geometry
	// (true) or jump there instantly (false).
	Animated bool
	// Hidden forces the slot invisible regardless of Geometry.Opacity.
	Hidden bool
}

// Pool is the fixed set of reusable card slots, kept in logical
// left-to-right order. The order is a ring over a fixed backing array, so
// moving a slot from one end to the other is a head rotation.
type Pool struct {
	params Params
	slots  []Slot // indexed by SlotID
	ring   []SlotID
	head   int
}

// NewPool creates CardCount slots laid out at their canonical offsets
// with empty content.
func NewPool(p Params) *Pool {
	n := p.CardCount()
	pool := &Pool{
		params: p,
		slots:  make([]Slot, n),
		ring:   make([]SlotID, n),
	}
	for i := range n {
		pool.slots[i] = Slot{ID: SlotID(i), Content: emptyContent()}
		pool.ring[i] = SlotID(i)
		pool.ApplyGeometry(i, i-p.Visible, false)
	}
	return pool
}

// Len returns the number of slots. It never changes.
func (p *Pool) Len() int {
	return len(p.ring)
}

// At returns the handle at logical position pos (0 is leftmost).
func (p *Pool) At(pos int) SlotID {
	n := len(p.ring)
	return p.ring[(p.head+pos%n+n)%n]
}

// Slot returns a copy of the record for a handle.
func (p *Pool) Slot(id SlotID) Slot {
	return p.slots[id]
}

// BindContent sets what the slot at pos displays. A nil item renders an
// empty placeholder.
func (p *Pool) BindContent(pos int, item *catalog.Item) {
	s := &p.slots[p.At(pos)]
	if item == nil {
		s.Content = emptyContent()
		return
	}
	s.Content = Content{
		ItemID: item.ID,
		Title:  item.Title,
		Artist: item.Artist,
		Cover:  item.Cover,
		Label:  item.CoverLabel(),
	}
}

// ApplyGeometry writes the visual transform for offset onto the slot at pos.
func (p *Pool) ApplyGeometry(pos, offset int, animated bool) {
	s := &p.slots[p.At(pos)]
	s.Offset = offset
	s.Geometry = Visual(p.params, offset)
	s.Animated = animated
	s.Hidden = false
}

// RecycleFromLeadingEdge moves the slot that left the visible window to the
// opposite edge. For dir > 0 (selection advanced, cards moved left) the
// leftmost slot becomes the rightmost; for dir < 0 the rightmost becomes the
// leftmost. It returns the moved slot's handle.
func (p *Pool) RecycleFromLeadingEdge(dir int) SlotID {
	n := len(p.ring)
	if dir > 0 {
		id := p.ring[p.head]
		p.head = (p.head + 1) % n
		return id
	}
	p.head = (p.head - 1 + n) % n
	return p.ring[p.head]
}

// PositionOf returns the logical position of a handle.
func (p *Pool) PositionOf(id SlotID) int {
	for pos := range len(p.ring) {
		if p.At(pos) == id {
			return pos
		}
	}
	return -1
}

// HideAll forces every slot invisible.
func (p *Pool) HideAll() {
	for i := range p.slots {
		p.slots[i].Hidden = true
		p.slots[i].Geometry.Opacity = 0
		p.slots[i].Animated = false
	}
}

// Slots returns copies of all slot records in logical left-to-right order.
func (p *Pool) Slots() []Slot {
	out := make([]Slot, len(p.ring))
	for pos := range out {
		out[pos] = p.slots[p.At(pos)]
	}
	return out
}

func emptyContent() Content {
	return Content{Label: "cover"}
}
