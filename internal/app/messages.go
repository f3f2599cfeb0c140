// Package app contains the root Bubble Tea model hosting the carousel.
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/arcshelf/internal/carousel"
	"github.com/llehouerou/arcshelf/internal/catalog"
)

// Message category interfaces for type-based routing in Update().
// External messages (from other packages) cannot implement these interfaces,
// so they are handled separately in the Update() switch.

// CarouselMessage is implemented by messages that drive the carousel.
type CarouselMessage interface {
	tea.Msg
	carouselMessage()
}

// LoadingMessage is implemented by messages from background loading.
type LoadingMessage interface {
	tea.Msg
	loadingMessage()
}

// timerMsg fires a controller timer. owner is the controller that scheduled
// it; timers from a replaced controller are dropped.
type timerMsg struct {
	owner *carousel.Controller
	timer carousel.Timer
}

func (timerMsg) carouselMessage() {}

// catalogLoadedMsg carries the result of loading the catalog.
type catalogLoadedMsg struct {
	catalog *catalog.Catalog
	err     error
}

func (catalogLoadedMsg) loadingMessage() {}

// scanProgressMsg reports folder scan progress.
type scanProgressMsg catalog.Progress

func (scanProgressMsg) loadingMessage() {}

// coverLoadedMsg carries a resized cover for the center card.
type coverLoadedMsg struct {
	ref  string
	data []byte
	err  error
}

func (coverLoadedMsg) loadingMessage() {}
