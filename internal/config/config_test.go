//nolint:goconst // test cases intentionally repeat strings for readability
package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "tilde expands to home",
			input:    "~/music",
			expected: filepath.Join(home, "music"),
		},
		{
			name:     "absolute path unchanged",
			input:    "/usr/local/music",
			expected: "/usr/local/music",
		},
		{
			name:     "relative path unchanged",
			input:    "music/albums",
			expected: "music/albums",
		},
		{
			name:     "empty string unchanged",
			input:    "",
			expected: "",
		},
		{
			name:     "tilde only",
			input:    "~",
			expected: home,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := expandPath(tt.input)
			if result != tt.expected {
				t.Errorf("expandPath(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestGetConfigPaths(t *testing.T) {
	paths := getConfigPaths()

	if len(paths) != 2 {
		t.Fatalf("getConfigPaths() returned %d paths, want 2", len(paths))
	}

	// Last path should be local config.toml
	if paths[1] != "config.toml" {
		t.Errorf("last config path = %q, want %q", paths[1], "config.toml")
	}
	if filepath.Base(filepath.Dir(paths[0])) != appName {
		t.Errorf("first config path = %q, want it under an %q directory", paths[0], appName)
	}
}

func TestLoadFrom_NoFiles(t *testing.T) {
	cfg, err := loadFrom([]string{filepath.Join(t.TempDir(), "missing.toml")})
	if err != nil {
		t.Fatalf("loadFrom() error: %v", err)
	}

	if cfg.Catalog.Source != SourceDemo {
		t.Errorf("Catalog.Source = %q, want %q", cfg.Catalog.Source, SourceDemo)
	}
	if cfg.ImageProtocol != "auto" {
		t.Errorf("ImageProtocol = %q, want %q", cfg.ImageProtocol, "auto")
	}
	if cfg.Log.File == "" {
		t.Error("Log.File should default to a state file path")
	}
}

func TestLoadFrom_LaterFileWins(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.toml")
	second := filepath.Join(dir, "second.toml")

	writeFile(t, first, `
image_protocol = "kitty"

[catalog]
source = "scan"
paths = ["/music/a", "/music/b"]

[carousel]
slide_ms = 500
`)
	writeFile(t, second, `
image_protocol = "none"

[keys]
advance = ["l", "right"]
`)

	cfg, err := loadFrom([]string{first, second})
	if err != nil {
		t.Fatalf("loadFrom() error: %v", err)
	}

	if cfg.ImageProtocol != "none" {
		t.Errorf("ImageProtocol = %q, want %q", cfg.ImageProtocol, "none")
	}
	if cfg.Catalog.Source != SourceScan {
		t.Errorf("Catalog.Source = %q, want %q", cfg.Catalog.Source, SourceScan)
	}
	if len(cfg.Catalog.Paths) != 2 || cfg.Catalog.Paths[1] != "/music/b" {
		t.Errorf("Catalog.Paths = %v, want [/music/a /music/b]", cfg.Catalog.Paths)
	}
	if cfg.Carousel.SlideMS != 500 {
		t.Errorf("Carousel.SlideMS = %d, want 500", cfg.Carousel.SlideMS)
	}
	if keys := cfg.Keys["advance"]; len(keys) != 2 || keys[0] != "l" {
		t.Errorf("Keys[advance] = %v, want [l right]", keys)
	}
}

func TestLoadFrom_InvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	writeFile(t, path, "this is = = not toml")

	if _, err := loadFrom([]string{path}); err == nil {
		t.Error("loadFrom() should fail on invalid TOML")
	}
}

func TestGetCarouselConfig_Defaults(t *testing.T) {
	cfg := Config{}
	c := cfg.GetCarouselConfig()

	if c.Visible != 3 {
		t.Errorf("Visible = %d, want 3", c.Visible)
	}
	if c.AngleStep != 0.28 {
		t.Errorf("AngleStep = %f, want 0.28", c.AngleStep)
	}
	if c.RadiusX != 520 || c.RadiusY != 150 {
		t.Errorf("radii = %f,%f, want 520,150", c.RadiusX, c.RadiusY)
	}
	if c.CenterScale != 1.15 {
		t.Errorf("CenterScale = %f, want 1.15", c.CenterScale)
	}
	if c.ScaleMin != 0.78 {
		t.Errorf("ScaleMin = %f, want 0.78", c.ScaleMin)
	}
	if c.OpacityMin != 0.25 {
		t.Errorf("OpacityMin = %f, want 0.25", c.OpacityMin)
	}
	if c.BlurMax != 1.8 {
		t.Errorf("BlurMax = %f, want 1.8", c.BlurMax)
	}
	if c.SlideMS != 280 {
		t.Errorf("SlideMS = %d, want 280", c.SlideMS)
	}
	if c.SwitchMS != 190 {
		t.Errorf("SwitchMS = %d, want 190", c.SwitchMS)
	}
}

func TestGetCarouselConfig_InvalidValues(t *testing.T) {
	cfg := Config{
		Carousel: CarouselConfig{
			Visible:     10,  // > 6, should become 3
			AngleStep:   -1,  // negative, should become 0.28
			CenterScale: 0.5, // < 1, should become 1.15
			ScaleMin:    1.5, // > 1, should become 0.78
			OpacityMin:  2,   // > 1, should become 0.25
			SlideMS:     -5,  // negative, should become 280
		},
	}

	c := cfg.GetCarouselConfig()

	if c.Visible != 3 {
		t.Errorf("Visible with invalid value = %d, want 3", c.Visible)
	}
	if c.AngleStep != 0.28 {
		t.Errorf("AngleStep with invalid value = %f, want 0.28", c.AngleStep)
	}
	if c.CenterScale != 1.15 {
		t.Errorf("CenterScale with invalid value = %f, want 1.15", c.CenterScale)
	}
	if c.ScaleMin != 0.78 {
		t.Errorf("ScaleMin with invalid value = %f, want 0.78", c.ScaleMin)
	}
	if c.OpacityMin != 0.25 {
		t.Errorf("OpacityMin with invalid value = %f, want 0.25", c.OpacityMin)
	}
	if c.SlideMS != 280 {
		t.Errorf("SlideMS with invalid value = %d, want 280", c.SlideMS)
	}
}

func TestGetCarouselConfig_CustomValues(t *testing.T) {
	cfg := Config{
		Carousel: CarouselConfig{
			Visible:  2,
			RadiusX:  300,
			SlideMS:  120,
			SwitchMS: 80,
		},
	}

	c := cfg.GetCarouselConfig()

	if c.Visible != 2 {
		t.Errorf("Visible = %d, want 2", c.Visible)
	}
	if c.RadiusX != 300 {
		t.Errorf("RadiusX = %f, want 300", c.RadiusX)
	}
	if c.SlideMS != 120 || c.SwitchMS != 80 {
		t.Errorf("durations = %d/%d, want 120/80", c.SlideMS, c.SwitchMS)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
