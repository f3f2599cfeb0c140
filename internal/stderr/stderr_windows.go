//go:build windows

// Package stderr is a no-op on Windows.
package stderr

import (
	"os"

	"github.com/charmbracelet/log"
)

// Start is a no-op on Windows.
func Start(*log.Logger) error {
	return nil
}

// WriteOriginal writes to stderr.
func WriteOriginal(msg string) {
	_, _ = os.Stderr.WriteString(msg)
}

// Stop is a no-op on Windows.
func Stop() {}
