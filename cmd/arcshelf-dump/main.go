// Command arcshelf-dump prints the configured catalog and can replay
// carousel moves headlessly on a virtual clock.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/log"

	"github.com/llehouerou/arcshelf/internal/carousel"
	"github.com/llehouerou/arcshelf/internal/catalog"
	"github.com/llehouerou/arcshelf/internal/config"
	"github.com/llehouerou/arcshelf/internal/errmsg"
	"github.com/llehouerou/arcshelf/internal/ui/render"
)

func main() {
	source := flag.String("source", "", "catalog source (demo, file, scan, library); default from config")
	moves := flag.String("moves", "", "comma-separated moves to replay: advance, retreat, toggle, jump:N")
	verbose := flag.Bool("v", false, "log carousel phase changes")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{Level: log.InfoLevel})
	if *verbose {
		logger.SetLevel(log.DebugLevel)
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal(errmsg.Format(errmsg.OpConfigLoad, err))
	}
	if *source != "" {
		cfg.Catalog.Source = *source
	}

	cat, err := catalog.Load(context.Background(), cfg.Catalog)
	if err != nil {
		logger.Fatal(errmsg.Format(errmsg.OpCatalogLoad, err))
	}

	fmt.Println(catalogTable(cat))

	if *moves == "" {
		return
	}
	params := carousel.ParamsFrom(cfg.GetCarouselConfig())
	tl := carousel.NewTimeline(carousel.New(cat, params, carousel.WithLogger(logger)))
	if err := replay(tl, strings.Split(*moves, ","), os.Stdout); err != nil {
		logger.Fatal("replay failed", "err", err)
	}
}

const coverWidth = 40

func catalogTable(cat *catalog.Catalog) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "Title", "Artist", "Tracks", "Cover")
	for i, a := range cat.Albums {
		tracks := "-"
		if a.HasChildren() {
			tracks = strconv.Itoa(len(a.Children))
		}
		t.Row(strconv.Itoa(i+1), a.Title, a.Artist, tracks, render.Truncate(a.Cover, coverWidth))
	}
	return t.Render()
}

// replay applies each move, waits for the carousel to settle and prints
// the selection.
func replay(tl *carousel.Timeline, moves []string, w io.Writer) error {
	for _, mv := range moves {
		mv = strings.TrimSpace(mv)
		var accepted bool
		switch {
		case mv == "advance":
			accepted = tl.Slide(1)
		case mv == "retreat":
			accepted = tl.Slide(-1)
		case mv == "toggle":
			accepted = tl.ToggleMode()
		case strings.HasPrefix(mv, "jump:"):
			n, err := strconv.Atoi(strings.TrimPrefix(mv, "jump:"))
			if err != nil {
				return fmt.Errorf("move %q: %w", mv, err)
			}
			accepted = tl.JumpTo(n - 1)
		default:
			return fmt.Errorf("unknown move %q", mv)
		}
		tl.Drain()

		info := tl.Controller().Info()
		status := "ok"
		if !accepted {
			status = "ignored"
		}
		fmt.Fprintf(w, "%-8s %-7s %6s  %-6s %s\n",
			mv, status, tl.Now(), info.Mode, describe(info))
	}
	return nil
}

func describe(info carousel.Info) string {
	if info.Empty {
		return info.Title
	}
	s := fmt.Sprintf("%d/%d %s", info.Position, info.Total, info.Title)
	if info.Artist != "" {
		s += " - " + info.Artist
	}
	return s
}
