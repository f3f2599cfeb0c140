package albumart

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

const (
	cacheDirName = "albumart"
	cacheMaxAge  = 30 * 24 * time.Hour
)

// Cache stores resized cover PNGs on disk, keyed by source file, its
// modification time and the target size.
type Cache struct {
	dir string
}

// DefaultCacheDir returns $XDG_CACHE_HOME/arcshelf.
func DefaultCacheDir() string {
	return filepath.Join(xdg.CacheHome, "arcshelf")
}

// NewCache creates the cache directory under baseDir (DefaultCacheDir when
// empty) and prunes stale entries in the background.
func NewCache(baseDir string) (*Cache, error) {
	if baseDir == "" {
		baseDir = DefaultCacheDir()
	}

	dir := filepath.Join(baseDir, cacheDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}

	c := &Cache{dir: dir}
	go c.prune(time.Now().Add(-cacheMaxAge))
	return c, nil
}

// Dir returns the directory holding cached images.
func (c *Cache) Dir() string {
	if c == nil {
		return ""
	}
	return c.dir
}

// cacheKey hashes the source path, its mtime and the pixel size, so an
// edited cover file is re-rendered.
func cacheKey(source string, width, height int) string {
	var mtime int64
	if info, err := os.Stat(source); err == nil {
		mtime = info.ModTime().UnixNano()
	}
	hash := sha256.Sum256(fmt.Appendf(nil, "%s:%d:%d:%d", source, mtime, width, height))
	return hex.EncodeToString(hash[:])
}

func (c *Cache) path(source string, width, height int) string {
	return filepath.Join(c.dir, cacheKey(source, width, height)+".png")
}

// Get returns cached PNG data, or nil when absent. A nil Cache is empty.
func (c *Cache) Get(source string, width, height int) []byte {
	if c == nil {
		return nil
	}
	path := c.path(source, width, height)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	// keep frequently used entries from being pruned
	now := time.Now()
	_ = os.Chtimes(path, now, now) //nolint:errcheck // best-effort
	return data
}

// Put stores PNG data. A nil Cache discards it.
func (c *Cache) Put(source string, width, height int, data []byte) error {
	if c == nil {
		return nil
	}
	return os.WriteFile(c.path(source, width, height), data, 0o600)
}

// prune removes entries not used since cutoff.
func (c *Cache) prune(cutoff time.Time) {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			_ = os.Remove(filepath.Join(c.dir, entry.Name())) //nolint:errcheck // best-effort cleanup
		}
	}
}
