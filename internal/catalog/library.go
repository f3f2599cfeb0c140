package catalog

import (
	"database/sql"
	"fmt"
	"path/filepath"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite" // SQLite driver
)

// DefaultLibraryPath returns the location of the waves library database.
func DefaultLibraryPath() string {
	return filepath.Join(xdg.DataHome, "waves", "waves.db")
}

// LoadLibrary reads albums from a waves library database. The database is
// opened read-only and never written to.
func LoadLibrary(path string) (*Catalog, error) {
	if path == "" {
		path = DefaultLibraryPath()
	}

	db, err := sql.Open("sqlite", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("open library %s: %w", path, err)
	}
	defer db.Close()

	albums, err := readLibrary(db)
	if err != nil {
		return nil, fmt.Errorf("read library %s: %w", path, err)
	}
	return &Catalog{Albums: normalize(albums)}, nil
}

func readLibrary(db *sql.DB) ([]Item, error) {
	rows, err := db.Query(`
		SELECT id, path, artist, album_artist, album, title
		FROM library_tracks
		ORDER BY album_artist COLLATE NOCASE, album COLLATE NOCASE,
		         COALESCE(disc_number, 0), COALESCE(track_number, 0), path
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var albums []Item
	var current *Item
	var currentKey albumKey

	for rows.Next() {
		var (
			id                               int64
			path, artist, albumArtist, album string
			title                            string
		)
		if err := rows.Scan(&id, &path, &artist, &albumArtist, &album, &title); err != nil {
			return nil, err
		}

		key := albumKey{artist: albumArtist, album: album}
		if current == nil || key != currentKey {
			albums = append(albums, Item{
				ID:     fmt.Sprintf("%s:%s", albumArtist, album),
				Title:  album,
				Artist: albumArtist,
				Cover:  path,
			})
			current = &albums[len(albums)-1]
			currentKey = key
		}

		if title == "" {
			title = titleFromPath(path)
		}
		current.Children = append(current.Children, Item{
			ID:     fmt.Sprintf("track:%d", id),
			Title:  title,
			Artist: artist,
			Cover:  path,
		})
	}
	return albums, rows.Err()
}
