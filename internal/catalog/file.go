package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type fileTrack struct {
	ID     string `koanf:"id"`
	Title  string `koanf:"title"`
	Artist string `koanf:"artist"`
	Cover  string `koanf:"cover"`
}

type fileAlbum struct {
	ID     string      `koanf:"id"`
	Title  string      `koanf:"title"`
	Artist string      `koanf:"artist"`
	Cover  string      `koanf:"cover"`
	Tracks []fileTrack `koanf:"tracks"`
}

type fileCatalog struct {
	Albums []fileAlbum `koanf:"albums"`
}

// LoadFile reads a TOML catalog:
//
//	[[albums]]
//	title = "Album One"
//	artist = "Artist A"
//	cover = "covers/one.jpg"
//
//	  [[albums.tracks]]
//	  title = "Track 1"
//
// Relative cover paths are resolved against the catalog file's directory.
func LoadFile(path string) (*Catalog, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}

	var fc fileCatalog
	if err := k.Unmarshal("", &fc); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	albums := make([]Item, 0, len(fc.Albums))
	for _, a := range fc.Albums {
		album := Item{
			ID:     a.ID,
			Title:  a.Title,
			Artist: a.Artist,
			Cover:  resolveCover(dir, a.Cover),
		}
		for _, t := range a.Tracks {
			cover := resolveCover(dir, t.Cover)
			if cover == "" {
				cover = album.Cover
			}
			album.Children = append(album.Children, Item{
				ID:     t.ID,
				Title:  t.Title,
				Artist: t.Artist,
				Cover:  cover,
			})
		}
		albums = append(albums, album)
	}

	return &Catalog{Albums: normalize(albums)}, nil
}

// resolveCover expands ~ and makes relative file paths absolute.
// URLs are returned unchanged.
func resolveCover(dir, cover string) string {
	if cover == "" || IsRemote(cover) {
		return cover
	}
	if cover[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, cover[1:])
		}
	}
	if filepath.IsAbs(cover) {
		return cover
	}
	return filepath.Join(dir, cover)
}

// IsRemote reports whether a cover reference is a URL rather than a local file.
func IsRemote(cover string) bool {
	return strings.HasPrefix(cover, "http://") || strings.HasPrefix(cover, "https://")
}
