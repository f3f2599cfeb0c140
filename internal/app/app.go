// internal/app/app.go
package app

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	zone "github.com/lrstanley/bubblezone"

	"github.com/llehouerou/arcshelf/internal/carousel"
	"github.com/llehouerou/arcshelf/internal/catalog"
	"github.com/llehouerou/arcshelf/internal/config"
	"github.com/llehouerou/arcshelf/internal/keymap"
	"github.com/llehouerou/arcshelf/internal/logging"
	"github.com/llehouerou/arcshelf/internal/ui/albumart"
	"github.com/llehouerou/arcshelf/internal/ui/arcview"
	"github.com/llehouerou/arcshelf/internal/ui/finder"
	"github.com/llehouerou/arcshelf/internal/ui/helpbindings"
	"github.com/llehouerou/arcshelf/internal/ui/infobar"
	"github.com/llehouerou/arcshelf/internal/ui/jobbar"
)

// arcZone is the bubblezone ID of the carousel area.
const arcZone = "arcview"

var zoneOnce sync.Once

// Options configures New. Zero values fall back to defaults: the demo
// catalog, the default key bindings, no images and a discarding logger.
type Options struct {
	Config   *config.Config
	Bindings []keymap.Binding
	Art      *albumart.Renderer
	ArtCache *albumart.Cache
	Logger   *log.Logger
}

// Model is the root application model containing all state.
type Model struct {
	Carousel *carousel.Controller
	Arc      *arcview.Model
	Finder   finder.Model
	Help     helpbindings.Model
	Keys     *keymap.Resolver
	Art      *albumart.Renderer
	ArtCache *albumart.Cache
	Logger   *log.Logger

	Totals     infobar.Totals
	ErrorMsg   string
	Loading    jobbar.Job
	ShowFinder bool
	ShowHelp   bool
	Width      int
	Height     int

	params     carousel.Params
	catalogCfg config.CatalogConfig
	loadCtx    context.Context
	cancel     context.CancelFunc
	progress   chan catalog.Progress
	framing    bool // an arcview frame tick is in flight
	art        *artState
}

// artState is shared by every copy of the model so View can hand pending
// terminal commands over exactly once.
type artState struct {
	pending string // written before the next frame
	loading string // cover reference being loaded
}

func (a *artState) take() string {
	s := a.pending
	a.pending = ""
	return s
}

// New creates the root model. The catalog is loaded by Init; until then the
// carousel is empty and the job bar shows progress.
func New(opts Options) Model {
	zoneOnce.Do(zone.NewGlobal)

	cfg := opts.Config
	if cfg == nil {
		cfg = &config.Config{Catalog: config.CatalogConfig{Source: config.SourceDemo}}
	}
	bindings := opts.Bindings
	if bindings == nil {
		bindings = keymap.All
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	params := carousel.ParamsFrom(cfg.GetCarouselConfig())
	ctx, cancel := context.WithCancel(context.Background())

	m := Model{
		Finder:     finder.New(),
		Help:       helpbindings.New(bindings),
		Keys:       keymap.NewResolver(bindings),
		Art:        opts.Art,
		ArtCache:   opts.ArtCache,
		Logger:     logger,
		Loading:    jobbar.Job{Label: loadingLabel(cfg.Catalog.Source)},
		params:     params,
		catalogCfg: cfg.Catalog,
		loadCtx:    ctx,
		cancel:     cancel,
		progress:   make(chan catalog.Progress, 16),
		art:        &artState{},
	}
	m.Arc = arcview.New(params)
	m.setCatalog(&catalog.Catalog{})
	return m
}

// Init implements tea.Model. It starts loading the catalog.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		loadCatalogCmd(m.loadCtx, m.catalogCfg, m.progress),
		m.waitForProgress(),
	)
}

// Close cancels background work. Safe to call more than once.
func (m Model) Close() {
	if m.cancel != nil {
		m.cancel()
	}
}

// setCatalog replaces the controller. Timers still in flight for the old
// controller are ignored when they arrive.
func (m *Model) setCatalog(cat *catalog.Catalog) {
	m.Carousel = carousel.New(cat, m.params, carousel.WithLogger(m.Logger))
	m.Arc.Sync(m.Carousel.Slots(), m.Carousel.Fading())
	m.Totals = infobar.Totals{Albums: cat.Len(), Tracks: cat.TrackCount()}
}

func (m Model) loading() bool {
	return !m.Loading.Done
}

func loadingLabel(source string) string {
	if source == config.SourceScan {
		return "Scanning music folders"
	}
	return "Loading catalog"
}

// centerCover returns the cover reference of the card at offset 0.
func (m Model) centerCover() string {
	for _, s := range m.Carousel.Slots() {
		if s.Offset == 0 && !s.Hidden {
			return s.Content.Cover
		}
	}
	return ""
}

// headerContext names the album whose tracks are listed.
func (m Model) headerContext() string {
	if m.Carousel.Mode() != carousel.ModeSecondary {
		return ""
	}
	album, ok := m.Carousel.Album()
	if !ok {
		return ""
	}
	return album.Title
}
