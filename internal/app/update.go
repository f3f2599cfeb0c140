// internal/app/update.go
package app

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/llehouerou/arcshelf/internal/carousel"
	"github.com/llehouerou/arcshelf/internal/catalog"
	"github.com/llehouerou/arcshelf/internal/config"
	"github.com/llehouerou/arcshelf/internal/errmsg"
	"github.com/llehouerou/arcshelf/internal/keymap"
	"github.com/llehouerou/arcshelf/internal/ui/albumart"
	"github.com/llehouerou/arcshelf/internal/ui/arcview"
	"github.com/llehouerou/arcshelf/internal/ui/finder"
	"github.com/llehouerou/arcshelf/internal/ui/headerbar"
	"github.com/llehouerou/arcshelf/internal/ui/helpbindings"
	"github.com/llehouerou/arcshelf/internal/ui/infobar"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.handleWindowSize(msg)

	case tea.KeyMsg:
		m, cmd = m.handleKey(msg)

	case tea.MouseMsg:
		cmd = m.handleMouse(msg)

	case arcview.FrameMsg:
		cmd = m.handleFrame()

	case finder.ResultMsg:
		m.ShowFinder = false
		if !msg.Canceled {
			cmd = m.run(m.Carousel.JumpTo(msg.Index))
		}

	case helpbindings.CloseMsg:
		m.ShowHelp = false

	case CarouselMessage:
		cmd = m.handleCarouselMsg(msg)

	case LoadingMessage:
		cmd = m.handleLoadingMsg(msg)

	default:
		if m.ShowFinder {
			m.Finder, cmd = m.Finder.Update(msg)
		}
	}

	artCmd := m.refreshArt()
	return m, tea.Batch(cmd, artCmd)
}

func (m *Model) handleWindowSize(msg tea.WindowSizeMsg) {
	m.Width, m.Height = msg.Width, msg.Height
	m.Arc.SetSize(msg.Width, m.arcHeight())
	m.Finder.SetSize(msg.Width, msg.Height)
	m.Help.SetSize(msg.Width, msg.Height)
}

func (m Model) arcHeight() int {
	return max(m.Height-headerbar.Height-infobar.Height, 0)
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.Close()
		return m, tea.Quit
	}

	var cmd tea.Cmd
	if m.ShowHelp {
		m.Help, cmd = m.Help.Update(msg)
		return m, cmd
	}
	if m.ShowFinder {
		m.Finder, cmd = m.Finder.Update(msg)
		return m, cmd
	}

	action, ok := m.Keys.Lookup(msg.String())
	if !ok {
		return m, nil
	}
	m.ErrorMsg = ""

	switch action {
	case keymap.ActionQuit:
		m.Close()
		return m, tea.Quit
	case keymap.ActionAdvance:
		cmd = m.run(m.Carousel.Advance())
	case keymap.ActionRetreat:
		cmd = m.run(m.Carousel.Retreat())
	case keymap.ActionToggleMode:
		cmd = m.run(m.Carousel.ToggleMode())
	case keymap.ActionFind:
		if len(m.Carousel.Active()) == 0 {
			return m, nil
		}
		m.ShowFinder = true
		m.Finder.SetSize(m.Width, m.Height)
		cmd = m.Finder.Open(m.Carousel.Active(), m.Carousel.Index())
	case keymap.ActionHelp:
		m.ShowHelp = true
		m.Help.SetSize(m.Width, m.Height)
	}
	return m, cmd
}

// handleMouse maps the wheel to advance/retreat and a click on a card to a
// step toward it. Clicking the center card toggles the mode.
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.ShowFinder || m.ShowHelp {
		return nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelLeft:
		if msg.Action == tea.MouseActionPress {
			return m.run(m.Carousel.Retreat())
		}
	case tea.MouseButtonWheelDown, tea.MouseButtonWheelRight:
		if msg.Action == tea.MouseActionPress {
			return m.run(m.Carousel.Advance())
		}
	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionRelease {
			return nil
		}
		z := zone.Get(arcZone)
		if z == nil || !z.InBounds(msg) {
			return nil
		}
		x, y := z.Pos(msg)
		return m.click(x, y)
	}
	return nil
}

// click handles a click at (x, y) relative to the carousel area.
func (m *Model) click(x, y int) tea.Cmd {
	offset, ok := m.Arc.HitTest(x, y)
	switch {
	case !ok:
		return nil
	case offset < 0:
		return m.run(m.Carousel.Retreat())
	case offset > 0:
		return m.run(m.Carousel.Advance())
	default:
		return m.run(m.Carousel.ToggleMode())
	}
}

func (m *Model) handleCarouselMsg(msg CarouselMessage) tea.Cmd {
	switch msg := msg.(type) {
	case timerMsg:
		if msg.owner != m.Carousel {
			return nil
		}
		return m.run(m.Carousel.Fire(msg.timer))
	}
	return nil
}

// run schedules timers returned by the controller and hands the new slot
// records to the renderer.
func (m *Model) run(timers []carousel.Timer) tea.Cmd {
	return tea.Batch(scheduleTimers(m.Carousel, timers), m.syncArc())
}

// syncArc pushes slot records to the renderer and starts the frame loop
// when something began moving.
func (m *Model) syncArc() tea.Cmd {
	if !m.Arc.Sync(m.Carousel.Slots(), m.Carousel.Fading()) {
		return nil
	}
	if m.Art.Enabled() {
		m.art.pending += m.Art.Hide()
	}
	if m.framing {
		return nil
	}
	m.framing = true
	return arcview.Frame()
}

func (m *Model) handleFrame() tea.Cmd {
	if m.Arc.Step() {
		return arcview.Frame()
	}
	m.framing = false
	return nil
}

func (m *Model) handleLoadingMsg(msg LoadingMessage) tea.Cmd {
	switch msg := msg.(type) {
	case catalogLoadedMsg:
		return m.handleCatalogLoaded(msg)
	case scanProgressMsg:
		m.Loading.Current = msg.Done
		m.Loading.Total = msg.Total
		return m.waitForProgress()
	case coverLoadedMsg:
		m.handleCoverLoaded(msg)
	}
	return nil
}

func (m *Model) handleCatalogLoaded(msg catalogLoadedMsg) tea.Cmd {
	m.Loading.Done = true
	m.progress = nil

	cat := msg.catalog
	if msg.err != nil {
		op := errmsg.OpCatalogLoad
		if m.catalogCfg.Source == config.SourceScan {
			op = errmsg.OpCatalogScan
		}
		m.ErrorMsg = errmsg.Format(op, msg.err)
		m.Logger.Error("catalog load failed, using demo catalog", "source", m.catalogCfg.Source, "err", msg.err)
		cat = catalog.Demo()
	}
	if cat == nil {
		cat = &catalog.Catalog{}
	}

	m.setCatalog(cat)
	m.Logger.Info("catalog loaded", "albums", m.Totals.Albums, "tracks", m.Totals.Tracks)
	return nil
}

func (m *Model) handleCoverLoaded(msg coverLoadedMsg) {
	if m.art.loading == msg.ref {
		m.art.loading = ""
	}
	if msg.ref != m.centerCover() {
		return
	}
	if msg.err != nil {
		if errors.Is(msg.err, albumart.ErrNoArt) || errors.Is(msg.err, albumart.ErrRemote) {
			m.Logger.Debug("no cover art", "ref", msg.ref)
		} else {
			m.Logger.Warn(errmsg.FormatWith(errmsg.OpCoverLoad, msg.ref, msg.err))
		}
	}
	// Nil data still records ref so the load is not retried.
	m.art.pending += m.Art.Apply(msg.ref, msg.data)
}

// artVisible reports whether the cover image may sit over the center card:
// only while the carousel is still and nothing covers it.
func (m Model) artVisible() bool {
	return m.Art.Enabled() &&
		m.Width > 0 &&
		!m.loading() &&
		!m.ShowFinder &&
		!m.ShowHelp &&
		!m.Carousel.Busy() &&
		!m.Arc.Animating()
}

// refreshArt hides the image while the carousel moves and starts loading the
// center card's cover once it is still.
func (m *Model) refreshArt() tea.Cmd {
	if !m.Art.Enabled() {
		return nil
	}
	if !m.artVisible() {
		m.art.pending += m.Art.Hide()
		return nil
	}

	_, _, w, h, ok := m.Arc.CenterRect()
	if !ok {
		return nil
	}
	if m.Art.SetSize(w, h) {
		m.art.pending += m.Art.Hide()
	}

	ref := m.centerCover()
	if ref == "" || catalog.IsRemote(ref) {
		m.art.pending += m.Art.Clear()
		return nil
	}
	if ref == m.Art.Current() || ref == m.art.loading {
		return nil
	}

	m.art.loading = ref
	pw, ph := m.Art.TargetPixelSize()
	return loadCoverCmd(ref, m.ArtCache, pw, ph)
}
