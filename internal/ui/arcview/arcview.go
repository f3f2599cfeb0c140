// Package arcview paints the carousel's slot records onto a cell canvas.
//
// The controller publishes target geometry; arcview owns the motion. Slots
// flagged Animated glide to their target on harmonica springs, the rest
// snap. Nothing here feeds back into the controller.
package arcview

import (
	"math"
	"time"

	"github.com/NimbleMarkets/ntcharts/canvas"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"

	"github.com/llehouerou/arcshelf/internal/carousel"
)

// FrameInterval is the animation tick.
const FrameInterval = carousel.FrameInterval

const (
	// FPS the springs are tuned for. Matches FrameInterval.
	fps = 60

	baseFrequency = 12.0
	damping       = 0.9

	// dimmed is the global opacity while the carousel is faded out.
	dimmed = 0.12

	epsilon = 0.01
)

// FrameMsg advances the springs by one frame.
type FrameMsg time.Time

// Frame schedules the next animation frame.
func Frame() tea.Cmd {
	return tea.Tick(FrameInterval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

// value is one sprung scalar.
type value struct {
	pos, vel, target float64
}

func (v *value) snap(target float64) {
	v.pos, v.vel, v.target = target, 0, target
}

func (v *value) update(s harmonica.Spring) {
	v.pos, v.vel = s.Update(v.pos, v.vel, v.target)
	if math.Abs(v.pos-v.target) < epsilon && math.Abs(v.vel) < epsilon {
		v.pos, v.vel = v.target, 0
	}
}

func (v *value) moving() bool {
	return v.pos != v.target || v.vel != 0
}

// card is the on-screen state of one slot.
type card struct {
	id      carousel.SlotID
	offset  int
	stack   int
	hidden  bool
	blur    float64
	content carousel.Content

	x, y, scale, opacity value
}

func (c *card) values() []*value {
	return []*value{&c.x, &c.y, &c.scale, &c.opacity}
}

// Model is the arc renderer.
type Model struct {
	params carousel.Params
	spring harmonica.Spring

	cards []*card // indexed by SlotID
	dim   value
	layout
	canvas canvas.Model
}

// New creates a renderer for params. Spring stiffness follows the slide
// duration so cards arrive roughly when the controller settles.
func New(p carousel.Params) *Model {
	p = p.Normalize()
	freq := baseFrequency * float64(carousel.DefaultParams().SlideDuration) / float64(p.SlideDuration)
	m := &Model{
		params: p,
		spring: harmonica.NewSpring(harmonica.FPS(fps), freq, damping),
		cards:  make([]*card, p.CardCount()),
		canvas: canvas.New(0, 0),
	}
	for i := range m.cards {
		m.cards[i] = &card{id: carousel.SlotID(i), hidden: true}
	}
	m.dim.snap(1)
	return m
}

// SetSize resizes the drawing area in cells.
func (m *Model) SetSize(width, height int) {
	if width == m.width && height == m.height {
		return
	}
	m.layout = newLayout(m.params, width, height)
	// Resize keeps the old view window, so start from a fresh canvas.
	m.canvas = canvas.New(max(width, 0), max(height, 0))
}

// Size returns the drawing area in cells.
func (m *Model) Size() (width, height int) {
	return m.width, m.height
}

// Sync takes the latest slot records. Animated records become spring
// targets; the rest snap. fading dims the whole carousel. It reports
// whether anything is now in motion.
func (m *Model) Sync(slots []carousel.Slot, fading bool) bool {
	for _, s := range slots {
		if int(s.ID) < 0 || int(s.ID) >= len(m.cards) {
			continue
		}
		c := m.cards[s.ID]
		c.offset = s.Offset
		c.stack = s.Geometry.Stack
		c.blur = s.Geometry.Blur
		c.hidden = s.Hidden
		c.content = s.Content

		opacity := s.Geometry.Opacity
		if s.Hidden {
			opacity = 0
		}
		targets := []float64{s.Geometry.X, s.Geometry.Y, s.Geometry.Scale, opacity}
		for i, v := range c.values() {
			if s.Animated {
				v.target = targets[i]
			} else {
				v.snap(targets[i])
			}
		}
	}

	if fading {
		m.dim.target = dimmed
	} else {
		m.dim.target = 1
	}
	return m.Animating()
}

// Step advances every spring by one frame and reports whether anything is
// still moving.
func (m *Model) Step() bool {
	for _, c := range m.cards {
		for _, v := range c.values() {
			if v.moving() {
				v.update(m.spring)
			}
		}
	}
	if m.dim.moving() {
		m.dim.update(m.spring)
	}
	return m.Animating()
}

// Animating reports whether any card or the global dim is in motion.
func (m *Model) Animating() bool {
	if m.dim.moving() {
		return true
	}
	for _, c := range m.cards {
		for _, v := range c.values() {
			if v.moving() {
				return true
			}
		}
	}
	return false
}

// Settle jumps every spring to its target.
func (m *Model) Settle() {
	for _, c := range m.cards {
		for _, v := range c.values() {
			v.snap(v.target)
		}
	}
	m.dim.snap(m.dim.target)
}
