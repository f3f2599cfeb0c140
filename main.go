package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/arcshelf/internal/app"
	"github.com/llehouerou/arcshelf/internal/config"
	"github.com/llehouerou/arcshelf/internal/errmsg"
	"github.com/llehouerou/arcshelf/internal/keymap"
	"github.com/llehouerou/arcshelf/internal/logging"
	"github.com/llehouerou/arcshelf/internal/stderr"
	"github.com/llehouerou/arcshelf/internal/ui/albumart"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpConfigLoad, err))
		return 1
	}

	logger, logFile, err := logging.Open(cfg.Log)
	if logger == nil {
		fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpLogOpen, err))
		return 1
	}
	defer logFile.Close()
	if err != nil {
		logger.Warn(errmsg.Format(errmsg.OpLogOpen, err))
	}

	if err := stderr.Start(logger); err != nil {
		logger.Warn("stderr capture disabled", "err", err)
	}
	defer stderr.Stop()

	bindings, err := keymap.WithOverrides(keymap.All, cfg.Keys)
	if err != nil {
		logger.Warn(errmsg.Format(errmsg.OpKeysLoad, err))
		bindings = keymap.All
	}

	art := albumart.New(albumart.Detect(cfg.ImageProtocol))
	var cache *albumart.Cache
	if art.Enabled() {
		cache, err = albumart.NewCache(albumart.DefaultCacheDir())
		if err != nil {
			logger.Warn("cover cache disabled", "err", err)
		}
	}
	logger.Info("starting", "catalog", cfg.Catalog.Source, "images", art.Protocol())

	m := app.New(app.Options{
		Config:   cfg,
		Bindings: bindings,
		Art:      art,
		ArtCache: cache,
		Logger:   logger,
	})
	defer m.Close()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		logger.Error("program failed", "err", err)
		stderr.WriteOriginal(fmt.Sprintf("Error running program: %v\n", err))
		return 1
	}
	return 0
}
