package catalog

import (
	"context"
	"fmt"

	"github.com/llehouerou/arcshelf/internal/config"
)

// Load builds the catalog from the configured source.
func Load(ctx context.Context, cfg config.CatalogConfig) (*Catalog, error) {
	return LoadWithProgress(ctx, cfg, nil)
}

// LoadWithProgress is Load with scan progress sent on progress, which is
// closed when loading finishes. Sources other than scan close it at once.
func LoadWithProgress(ctx context.Context, cfg config.CatalogConfig, progress chan<- Progress) (*Catalog, error) {
	if progress != nil {
		defer close(progress)
	}

	switch cfg.Source {
	case config.SourceDemo, "":
		return Demo(), nil
	case config.SourceFile:
		if cfg.File == "" {
			return nil, fmt.Errorf("catalog source %q requires catalog.file", cfg.Source)
		}
		return LoadFile(cfg.File)
	case config.SourceScan:
		if len(cfg.Paths) == 0 {
			return nil, fmt.Errorf("catalog source %q requires catalog.paths", cfg.Source)
		}
		return ScanWithProgress(ctx, cfg.Paths, progress)
	case config.SourceLibrary:
		return LoadLibrary(cfg.LibraryDB)
	default:
		return nil, fmt.Errorf("unknown catalog source %q", cfg.Source)
	}
}
