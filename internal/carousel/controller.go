package carousel

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/llehouerou/arcshelf/internal/catalog"
)

// Phase is the controller's animation state.
type Phase int

const (
	PhaseIdle      Phase = iota
	PhaseSliding         // cards moving one slot, waiting for SlideDuration
	PhaseSettling        // recycled card snapped off-screen, waiting one frame
	PhaseSwitching       // faded out, waiting for SwitchDuration to swap content
)

func (p Phase) String() string {
	switch p {
	case PhaseSliding:
		return "sliding"
	case PhaseSettling:
		return "settling"
	case PhaseSwitching:
		return "switching"
	default:
		return "idle"
	}
}

// Event identifies the deferred step a Timer resumes.
type Event int

const (
	EventSlideDone Event = iota + 1
	EventSettle
	EventSwap
)

// Timer asks the host to call Fire(t) later: after Delay, or on the next
// rendered frame when Frame is set.
type Timer struct {
	Delay time.Duration
	Frame bool
	Event Event
	Gen   uint64
}

// Info describes the selected item for the title/artist line.
type Info struct {
	Title    string
	Artist   string
	Empty    bool
	Position int // 1-based; 0 when empty
	Total    int
	Mode     Mode
}

// Controller owns the carousel state: the selection, the slot pool and the
// animation lock. All mutation goes through its methods; input handlers only
// call Slide, ToggleMode and JumpTo.
type Controller struct {
	params Params
	sel    *Selection
	pool   *Pool
	logger *log.Logger

	phase  Phase
	gen    uint64
	dir    int
	fading bool

	// pending swap
	jump      bool
	jumpIndex int

	info Info
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger routes debug output (dropped inputs, phase changes) to l.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// New builds a controller over cat in primary mode, with every slot bound
// and placed at its canonical offset.
func New(cat *catalog.Catalog, p Params, opts ...Option) *Controller {
	p = p.Normalize()
	c := &Controller{
		params: p,
		sel:    NewSelection(cat),
		pool:   NewPool(p),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.rebuild()
	return c
}

// Params returns the geometry and timing parameters.
func (c *Controller) Params() Params { return c.params }

// Phase returns the current animation phase.
func (c *Controller) Phase() Phase { return c.phase }

// Busy reports whether an animation holds the lock. New slides, mode
// switches and jumps are dropped while Busy.
func (c *Controller) Busy() bool { return c.phase != PhaseIdle }

// Fading reports whether the carousel is transitioned out for a content swap.
func (c *Controller) Fading() bool { return c.fading }

// Mode returns the active mode.
func (c *Controller) Mode() Mode { return c.sel.Mode() }

// Index returns the selected index in the active sequence.
func (c *Controller) Index() int { return c.sel.Index() }

// Active returns the active sequence.
func (c *Controller) Active() []catalog.Item { return c.sel.Active() }

// Info returns the displayed selection info. During a slide it still shows
// the previous item; it updates when the slide settles.
func (c *Controller) Info() Info { return c.info }

// Slots returns the slot records in logical left-to-right order.
func (c *Controller) Slots() []Slot { return c.pool.Slots() }

// Album returns the selected album. In secondary mode it is the album whose
// tracks are being browsed.
func (c *Controller) Album() (catalog.Item, bool) { return c.sel.Album() }

// Slide moves the selection one step. dir > 0 advances, dir < 0 retreats.
// It returns the timer that completes the slide, or nil if the request was
// dropped (busy, empty sequence or zero direction).
func (c *Controller) Slide(dir int) []Timer {
	switch {
	case dir > 0:
		dir = 1
	case dir < 0:
		dir = -1
	default:
		return nil
	}
	if c.Busy() {
		c.logger.Debug("slide dropped", "dir", dir, "phase", c.phase)
		return nil
	}
	items := c.sel.Active()
	if len(items) == 0 {
		return nil
	}

	c.sel.SetIndex(c.sel.Index() + dir)

	// Cards move opposite to the selection.
	v := c.params.Visible
	for pos := range c.pool.Len() {
		c.pool.ApplyGeometry(pos, pos-v-dir, true)
	}

	c.dir = dir
	c.setPhase(PhaseSliding)
	return c.schedule(Timer{Delay: c.params.SlideDuration, Event: EventSlideDone})
}

// Advance slides the selection forward.
func (c *Controller) Advance() []Timer { return c.Slide(1) }

// Retreat slides the selection backward.
func (c *Controller) Retreat() []Timer { return c.Slide(-1) }

// ToggleMode cross-fades between albums and the selected album's tracks.
func (c *Controller) ToggleMode() []Timer {
	return c.SetMode(c.sel.Mode().Other())
}

// SetMode cross-fades to mode m. It is a no-op if m is already active.
func (c *Controller) SetMode(m Mode) []Timer {
	if m == c.sel.Mode() {
		return nil
	}
	if c.Busy() {
		c.logger.Debug("mode switch dropped", "phase", c.phase)
		return nil
	}
	c.jump = false
	return c.fadeOut()
}

// JumpTo cross-fades to index i of the active sequence without changing
// mode. It is a no-op if i is already selected or the sequence is empty.
func (c *Controller) JumpTo(i int) []Timer {
	n := len(c.sel.Active())
	if n == 0 || Wrap(i, n) == c.sel.Index() {
		return nil
	}
	if c.Busy() {
		c.logger.Debug("jump dropped", "index", i, "phase", c.phase)
		return nil
	}
	c.jump = true
	c.jumpIndex = Wrap(i, n)
	return c.fadeOut()
}

// Fire resumes the step a Timer was scheduled for. Timers from an earlier
// generation are ignored. It returns any follow-up timers.
func (c *Controller) Fire(t Timer) []Timer {
	if t.Gen != c.gen {
		return nil
	}
	switch {
	case t.Event == EventSlideDone && c.phase == PhaseSliding:
		return c.recycle()
	case t.Event == EventSettle && c.phase == PhaseSettling:
		c.settle()
	case t.Event == EventSwap && c.phase == PhaseSwitching:
		c.swap()
	}
	return nil
}

// recycle moves the card that slid out of view to the opposite edge, binds
// the item entering view and snaps it just beyond the edge. The move into
// the edge slot happens on the next frame so it is not coalesced with the
// snap.
func (c *Controller) recycle() []Timer {
	v := c.params.Visible
	c.pool.RecycleFromLeadingEdge(c.dir)

	pos := 0
	if c.dir > 0 {
		pos = c.pool.Len() - 1
	}
	if item, ok := c.sel.At(c.dir * v); ok {
		c.pool.BindContent(pos, &item)
	} else {
		c.pool.BindContent(pos, nil)
	}
	c.pool.ApplyGeometry(pos, c.dir*(v+1), false)

	c.setPhase(PhaseSettling)
	return c.schedule(Timer{Frame: true, Event: EventSettle})
}

// settle is the single canonical placement step of a slide: every slot goes
// to offset pos-Visible, which animates the recycled card into the edge.
func (c *Controller) settle() {
	v := c.params.Visible
	for pos := range c.pool.Len() {
		c.pool.ApplyGeometry(pos, pos-v, true)
	}
	c.updateInfo()
	c.setPhase(PhaseIdle)
}

func (c *Controller) fadeOut() []Timer {
	c.fading = true
	c.setPhase(PhaseSwitching)
	return c.schedule(Timer{Delay: c.params.SwitchDuration, Event: EventSwap})
}

func (c *Controller) swap() {
	if c.jump {
		c.sel.SetIndex(c.jumpIndex)
		c.jump = false
	} else {
		c.sel.EnterMode(c.sel.Mode().Other())
	}
	c.rebuild()
	c.fading = false
	c.setPhase(PhaseIdle)
}

// rebuild binds every slot to the items around the selection and snaps them
// to canonical offsets. An empty sequence hides every slot.
func (c *Controller) rebuild() {
	if c.sel.Empty() {
		c.pool.HideAll()
		c.updateInfo()
		return
	}
	v := c.params.Visible
	for pos := range c.pool.Len() {
		item, _ := c.sel.At(pos - v)
		c.pool.BindContent(pos, &item)
		c.pool.ApplyGeometry(pos, pos-v, false)
	}
	c.updateInfo()
}

func (c *Controller) updateInfo() {
	mode := c.sel.Mode()
	item, ok := c.sel.Current()
	if !ok {
		label := "No albums"
		if mode == ModeSecondary {
			label = "No tracks"
		}
		c.info = Info{Title: label, Empty: true, Mode: mode}
		return
	}
	c.info = Info{
		Title:    item.Title,
		Artist:   item.Artist,
		Position: c.sel.Index() + 1,
		Total:    len(c.sel.Active()),
		Mode:     mode,
	}
}

func (c *Controller) schedule(t Timer) []Timer {
	c.gen++
	t.Gen = c.gen
	return []Timer{t}
}

func (c *Controller) setPhase(p Phase) {
	if c.phase != p {
		c.logger.Debug("carousel phase", "from", c.phase, "to", p, "mode", c.sel.Mode(), "index", c.sel.Index())
	}
	c.phase = p
}
