package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const appName = "arcshelf"

// Catalog sources.
const (
	SourceDemo    = "demo"
	SourceFile    = "file"
	SourceScan    = "scan"
	SourceLibrary = "library"
)

type Config struct {
	ImageProtocol string `koanf:"image_protocol"` // "auto", "kitty", "sixel", or "none"

	Carousel CarouselConfig      `koanf:"carousel"`
	Catalog  CatalogConfig       `koanf:"catalog"`
	Log      LogConfig           `koanf:"log"`
	Keys     map[string][]string `koanf:"keys"` // action -> keys overrides
}

// CarouselConfig tunes the arc geometry and animation timing.
// Zero values mean "use the default".
type CarouselConfig struct {
	Visible     int     `koanf:"visible"`      // cards on each side of the center (default: 3)
	AngleStep   float64 `koanf:"angle_step"`   // radians per slot (default: 0.28)
	RadiusX     float64 `koanf:"radius_x"`     // horizontal arc radius (default: 520)
	RadiusY     float64 `koanf:"radius_y"`     // vertical arc radius (default: 150)
	CenterScale float64 `koanf:"center_scale"` // extra scale of the center card (default: 1.15)
	ScaleMin    float64 `koanf:"scale_min"`    // scale at the edges (default: 0.78)
	OpacityMin  float64 `koanf:"opacity_min"`  // opacity at the edges (default: 0.25)
	BlurMax     float64 `koanf:"blur_max"`     // blur at the edges (default: 1.8)
	SlideMS     int     `koanf:"slide_ms"`     // slide animation duration (default: 280)
	SwitchMS    int     `koanf:"switch_ms"`    // mode cross-fade delay (default: 190)
}

// CatalogConfig selects where albums come from.
type CatalogConfig struct {
	Source    string   `koanf:"source"`     // "demo", "file", "scan", or "library"
	File      string   `koanf:"file"`       // TOML catalog for source = "file"
	Paths     []string `koanf:"paths"`      // music folders for source = "scan"
	LibraryDB string   `koanf:"library_db"` // waves database for source = "library"
}

// LogConfig controls the log file. The TUI owns the terminal, so logs
// never go to stdout or stderr.
type LogConfig struct {
	File  string `koanf:"file"`
	Level string `koanf:"level"` // "debug", "info", "warn", "error"
}

func Load() (*Config, error) {
	return loadFrom(getConfigPaths())
}

func loadFrom(paths []string) (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{
		ImageProtocol: "auto",
		Catalog:       CatalogConfig{Source: SourceDemo},
		Log:           LogConfig{Level: "info"},
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.Catalog.File = expandPath(cfg.Catalog.File)
	cfg.Catalog.LibraryDB = expandPath(cfg.Catalog.LibraryDB)
	for i, p := range cfg.Catalog.Paths {
		cfg.Catalog.Paths[i] = expandPath(p)
	}

	if cfg.Log.File == "" {
		cfg.Log.File = defaultLogPath()
	} else {
		cfg.Log.File = expandPath(cfg.Log.File)
	}

	return cfg, nil
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/arcshelf/config.toml
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

func defaultLogPath() string {
	return filepath.Join(xdg.StateHome, appName, appName+".log")
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// GetCarouselConfig returns the carousel configuration with defaults applied.
func (c *Config) GetCarouselConfig() CarouselConfig {
	cfg := c.Carousel

	// Apply defaults
	if cfg.Visible <= 0 || cfg.Visible > 6 {
		cfg.Visible = 3
	}
	if cfg.AngleStep <= 0 || cfg.AngleStep > 1 {
		cfg.AngleStep = 0.28
	}
	if cfg.RadiusX <= 0 {
		cfg.RadiusX = 520
	}
	if cfg.RadiusY <= 0 {
		cfg.RadiusY = 150
	}
	if cfg.CenterScale < 1 {
		cfg.CenterScale = 1.15
	}
	if cfg.ScaleMin <= 0 || cfg.ScaleMin > 1 {
		cfg.ScaleMin = 0.78
	}
	if cfg.OpacityMin <= 0 || cfg.OpacityMin > 1 {
		cfg.OpacityMin = 0.25
	}
	if cfg.BlurMax <= 0 {
		cfg.BlurMax = 1.8
	}
	if cfg.SlideMS <= 0 {
		cfg.SlideMS = 280
	}
	if cfg.SwitchMS <= 0 {
		cfg.SwitchMS = 190
	}

	return cfg
}
