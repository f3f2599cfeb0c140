// internal/app/commands.go
package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/arcshelf/internal/carousel"
	"github.com/llehouerou/arcshelf/internal/catalog"
	"github.com/llehouerou/arcshelf/internal/config"
	"github.com/llehouerou/arcshelf/internal/ui/albumart"
)

// scheduleTimers turns controller timers into ticks. Frame timers wait one
// frame interval.
func scheduleTimers(owner *carousel.Controller, timers []carousel.Timer) tea.Cmd {
	if len(timers) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(timers))
	for _, t := range timers {
		cmds = append(cmds, tea.Tick(t.Wait(), func(time.Time) tea.Msg {
			return timerMsg{owner: owner, timer: t}
		}))
	}
	return tea.Batch(cmds...)
}

// waitForChannel creates a command that waits for a value from a channel.
// Returns nil if the channel is nil.
func waitForChannel[T any](ch <-chan T, onResult func(T, bool) tea.Msg) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		result, ok := <-ch
		return onResult(result, ok)
	}
}

func (m Model) waitForProgress() tea.Cmd {
	return waitForChannel(m.progressChan(), func(p catalog.Progress, ok bool) tea.Msg {
		if !ok {
			return nil
		}
		return scanProgressMsg(p)
	})
}

func (m Model) progressChan() <-chan catalog.Progress {
	if m.progress == nil {
		return nil
	}
	return m.progress
}

func loadCatalogCmd(ctx context.Context, cfg config.CatalogConfig, progress chan<- catalog.Progress) tea.Cmd {
	return func() tea.Msg {
		cat, err := catalog.LoadWithProgress(ctx, cfg, progress)
		return catalogLoadedMsg{catalog: cat, err: err}
	}
}

func loadCoverCmd(ref string, cache *albumart.Cache, pixelWidth, pixelHeight int) tea.Cmd {
	return func() tea.Msg {
		data, err := albumart.Load(ref, cache, pixelWidth, pixelHeight)
		return coverLoadedMsg{ref: ref, data: data, err: err}
	}
}
