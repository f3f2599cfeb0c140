// Package carousel implements the seven-card arc carousel: a pure geometry
// function, a fixed pool of recycled card slots, the selection model and the
// slide / mode-switch state machine that animates between them.
//
// The package never draws. It writes Slot records that a renderer consumes,
// and it never sleeps: every delay is returned to the caller as a Timer and
// fed back through Controller.Fire.
package carousel

import (
	"math"
	"time"

	"github.com/llehouerou/arcshelf/internal/config"
)

// Params tunes the arc and its animation.
type Params struct {
	Visible     int     // cards on each side of the center
	AngleStep   float64 // radians per slot
	RadiusX     float64 // horizontal arc radius
	RadiusY     float64 // vertical arc radius
	CenterScale float64 // extra scale applied to the center card
	ScaleMin    float64 // scale at |offset| == Visible
	OpacityMin  float64 // opacity at |offset| == Visible
	BlurMax     float64 // blur radius at |offset| == Visible
	StackBase   int     // stacking order of the center card

	SlideDuration  time.Duration
	SwitchDuration time.Duration
}

// DefaultParams returns the stock seven-card arc.
func DefaultParams() Params {
	return Params{
		Visible:        3,
		AngleStep:      0.28,
		RadiusX:        520,
		RadiusY:        150,
		CenterScale:    1.15,
		ScaleMin:       0.78,
		OpacityMin:     0.25,
		BlurMax:        1.8,
		StackBase:      100,
		SlideDuration:  280 * time.Millisecond,
		SwitchDuration: 190 * time.Millisecond,
	}
}

// ParamsFrom converts a carousel config section. Defaults must already be
// applied (see config.Config.GetCarouselConfig).
func ParamsFrom(c config.CarouselConfig) Params {
	p := DefaultParams()
	p.Visible = c.Visible
	p.AngleStep = c.AngleStep
	p.RadiusX = c.RadiusX
	p.RadiusY = c.RadiusY
	p.CenterScale = c.CenterScale
	p.ScaleMin = c.ScaleMin
	p.OpacityMin = c.OpacityMin
	p.BlurMax = c.BlurMax
	p.SlideDuration = time.Duration(c.SlideMS) * time.Millisecond
	p.SwitchDuration = time.Duration(c.SwitchMS) * time.Millisecond
	return p.Normalize()
}

// Normalize replaces out-of-range values with defaults.
func (p Params) Normalize() Params {
	d := DefaultParams()
	if p.Visible <= 0 {
		p.Visible = d.Visible
	}
	if p.AngleStep <= 0 {
		p.AngleStep = d.AngleStep
	}
	if p.RadiusX <= 0 {
		p.RadiusX = d.RadiusX
	}
	if p.RadiusY < 0 {
		p.RadiusY = d.RadiusY
	}
	if p.CenterScale <= 0 {
		p.CenterScale = d.CenterScale
	}
	if p.ScaleMin <= 0 || p.ScaleMin > 1 {
		p.ScaleMin = d.ScaleMin
	}
	if p.OpacityMin < 0 || p.OpacityMin > 1 {
		p.OpacityMin = d.OpacityMin
	}
	if p.BlurMax < 0 {
		p.BlurMax = d.BlurMax
	}
	if p.StackBase <= p.Visible+1 {
		p.StackBase = d.StackBase
	}
	if p.SlideDuration <= 0 {
		p.SlideDuration = d.SlideDuration
	}
	if p.SwitchDuration <= 0 {
		p.SwitchDuration = d.SwitchDuration
	}
	return p
}

// CardCount is the number of live slots: Visible on each side plus the center.
func (p Params) CardCount() int {
	return 2*p.Visible + 1
}

// Geometry is the visual transform of one slot.
type Geometry struct {
	X, Y    float64 // offset from the arc's center point; negative Y is up
	Scale   float64
	Opacity float64 // in [0, 1]
	Blur    float64
	Stack   int // higher paints on top
}

// Transform maps a slot offset to its position on the arc. It is pure: the
// same offset always yields the same geometry. Offsets beyond ±Visible are
// allowed and keep extrapolating (used for the off-screen recycle slot).
func Transform(p Params, offset int) Geometry {
	a := float64(offset) * p.AngleStep
	abs := absInt(offset)
	d := float64(abs) / float64(p.Visible)

	scale := lerp(1, p.ScaleMin, d)
	if offset == 0 {
		scale *= p.CenterScale
	}

	return Geometry{
		X:       math.Sin(a) * p.RadiusX,
		Y:       -(1 - math.Cos(a)) * p.RadiusY,
		Scale:   scale,
		Opacity: lerp(1, p.OpacityMin, d),
		Blur:    p.BlurMax * d,
		Stack:   p.StackBase - abs,
	}
}

// Visual is Transform plus the visibility cutoff: any slot outside
// [-Visible, Visible] is fully transparent regardless of its falloff.
func Visual(p Params, offset int) Geometry {
	g := Transform(p, offset)
	if absInt(offset) > p.Visible {
		g.Opacity = 0
	}
	g.Opacity = clamp01(g.Opacity)
	return g
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
