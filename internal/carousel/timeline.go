package carousel

import (
	"math"
	"slices"
	"time"
)

// FrameInterval is how long a frame-deferred timer waits (one 60 FPS frame).
const FrameInterval = 16 * time.Millisecond

// Wait returns how long the host should wait before firing t.
func (t Timer) Wait() time.Duration {
	if t.Frame {
		return FrameInterval
	}
	return t.Delay
}

type scheduled struct {
	at    time.Duration
	seq   int
	timer Timer
}

// Timeline hosts a controller on a virtual clock. Timers fire only when the
// clock is advanced, in due-time order, so time-based behavior can be
// stepped deterministically.
type Timeline struct {
	c       *Controller
	now     time.Duration
	seq     int
	pending []scheduled
}

// NewTimeline wraps c. The clock starts at zero.
func NewTimeline(c *Controller) *Timeline {
	return &Timeline{c: c}
}

// Controller returns the hosted controller.
func (tl *Timeline) Controller() *Controller { return tl.c }

// Now returns the virtual time elapsed.
func (tl *Timeline) Now() time.Duration { return tl.now }

// Pending returns the number of timers not yet fired.
func (tl *Timeline) Pending() int { return len(tl.pending) }

// Add schedules timers relative to the current virtual time.
func (tl *Timeline) Add(timers []Timer) {
	for _, t := range timers {
		tl.seq++
		tl.pending = append(tl.pending, scheduled{at: tl.now + t.Wait(), seq: tl.seq, timer: t})
	}
}

// Slide forwards to the controller and schedules the result. It reports
// whether the slide was accepted.
func (tl *Timeline) Slide(dir int) bool {
	ts := tl.c.Slide(dir)
	tl.Add(ts)
	return len(ts) > 0
}

// ToggleMode forwards to the controller and schedules the result.
func (tl *Timeline) ToggleMode() bool {
	ts := tl.c.ToggleMode()
	tl.Add(ts)
	return len(ts) > 0
}

// JumpTo forwards to the controller and schedules the result.
func (tl *Timeline) JumpTo(i int) bool {
	ts := tl.c.JumpTo(i)
	tl.Add(ts)
	return len(ts) > 0
}

// Advance moves the clock forward by d, firing every timer that comes due,
// including follow-ups scheduled by earlier timers within the window.
func (tl *Timeline) Advance(d time.Duration) {
	end := tl.now + d
	for {
		next, ok := tl.nextDue(end)
		if !ok {
			break
		}
		tl.now = next.at
		tl.Add(tl.c.Fire(next.timer))
	}
	tl.now = end
}

// Drain fires timers until none are pending.
func (tl *Timeline) Drain() {
	for len(tl.pending) > 0 {
		next, _ := tl.nextDue(time.Duration(math.MaxInt64))
		tl.now = next.at
		tl.Add(tl.c.Fire(next.timer))
	}
}

func (tl *Timeline) nextDue(limit time.Duration) (scheduled, bool) {
	if len(tl.pending) == 0 {
		return scheduled{}, false
	}
	i := 0
	for j, s := range tl.pending {
		if s.at < tl.pending[i].at || (s.at == tl.pending[i].at && s.seq < tl.pending[i].seq) {
			i = j
		}
	}
	if tl.pending[i].at > limit {
		return scheduled{}, false
	}
	s := tl.pending[i]
	tl.pending = slices.Delete(tl.pending, i, i+1)
	return s, true
}
