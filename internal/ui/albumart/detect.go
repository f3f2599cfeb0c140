package albumart

import (
	"os"
	"strings"
)

// Protocol settings accepted by Detect.
const (
	ProtocolAuto  = "auto"
	ProtocolKitty = "kitty"
	ProtocolSixel = "sixel"
	ProtocolNone  = "none"
)

// envOverride forces a protocol regardless of config.
const envOverride = "ARCSHELF_IMAGE_PROTOCOL"

// Detect returns the image protocol to use, or nil when images are
// disabled or unsupported. setting is the configured image_protocol; the
// ARCSHELF_IMAGE_PROTOCOL environment variable takes precedence over it.
func Detect(setting string) ImageProtocol {
	if env := os.Getenv(envOverride); env != "" {
		setting = env
	}

	switch strings.ToLower(strings.TrimSpace(setting)) {
	case ProtocolKitty:
		return KittyProtocol{}
	case ProtocolSixel:
		return NewSixelProtocol()
	case ProtocolNone:
		return nil
	}

	if IsKittySupported() {
		return KittyProtocol{}
	}
	if IsSixelSupported() {
		return NewSixelProtocol()
	}
	return nil
}

// IsKittySupported guesses Kitty graphics support from the environment.
func IsKittySupported() bool {
	// Contour inherits parent terminal variables but has no Kitty graphics
	if os.Getenv("CONTOUR_PROFILE") != "" {
		return false
	}

	term := os.Getenv("TERM")
	switch {
	case os.Getenv("KITTY_WINDOW_ID") != "",
		os.Getenv("GHOSTTY_RESOURCES_DIR") != "",
		os.Getenv("TERM_PROGRAM") == "WezTerm",
		strings.Contains(term, "kitty"):
		return true
	}

	// Konsole 22.04+, KONSOLE_VERSION is like "220401"
	version := os.Getenv("KONSOLE_VERSION")
	return len(version) >= 4 && version[:4] >= "2204"
}

// IsSixelSupported guesses Sixel support from the environment. Plain xterm
// is assumed to be built with sixel graphics.
func IsSixelSupported() bool {
	term := os.Getenv("TERM")
	switch os.Getenv("TERM_PROGRAM") {
	case "vscode", "mintty", "iTerm.app", "contour":
		return true
	}
	if os.Getenv("CONTOUR_PROFILE") != "" {
		return true
	}
	return term == "foot" || term == "foot-extra" || term == "xterm" || strings.HasPrefix(term, "xterm-")
}
