//nolint:goconst // test cases intentionally repeat strings for readability
package errmsg

import (
	"errors"
	"fmt"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpCatalogLoad,
			err:      nil,
			expected: "",
		},
		{
			name:     "catalog operation",
			op:       OpCatalogLoad,
			err:      errors.New("file not found"),
			expected: "Failed to load catalog: file not found",
		},
		{
			name:     "config operation",
			op:       OpConfigLoad,
			err:      errors.New("bad toml"),
			expected: "Failed to load config: bad toml",
		},
		{
			name:     "wrapped error keeps chain text",
			op:       OpCoverLoad,
			err:      fmt.Errorf("decode: %w", errors.New("unexpected EOF")),
			expected: "Failed to load cover art: decode: unexpected EOF",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.op, tt.err)
			if result != tt.expected {
				t.Errorf("Format() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestFormatWith(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		context  string
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpCatalogLoad,
			context:  "albums.toml",
			err:      nil,
			expected: "",
		},
		{
			name:     "empty context falls back to Format",
			op:       OpCatalogScan,
			context:  "",
			err:      errors.New("permission denied"),
			expected: "Failed to scan music folders: permission denied",
		},
		{
			name:     "with context",
			op:       OpCatalogLoad,
			context:  "albums.toml",
			err:      errors.New("line 3: expected '='"),
			expected: "Failed to load catalog 'albums.toml': line 3: expected '='",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatWith(tt.op, tt.context, tt.err)
			if result != tt.expected {
				t.Errorf("FormatWith() = %q, want %q", result, tt.expected)
			}
		})
	}
}
