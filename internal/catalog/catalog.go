// Package catalog holds the album/track data browsed by the carousel and
// the read-only sources it can be loaded from.
package catalog

import (
	"path/filepath"
	"strconv"
)

// Item is a single browsable entry: an album in the top-level list or a
// track inside an album. Items are immutable once loaded.
type Item struct {
	ID     string
	Title  string
	Artist string
	Cover  string // file path or URL; empty means no cover
	// Children is the ordered sub-list (tracks of an album). May be empty.
	Children []Item
}

// HasChildren reports whether the item has a non-empty sub-list.
func (i Item) HasChildren() bool {
	return len(i.Children) > 0
}

// CoverLabel returns the accessible label for the item's cover image.
func (i Item) CoverLabel() string {
	if i.Title == "" {
		return "cover"
	}
	return i.Title + " cover"
}

// Catalog is the ordered top-level list of albums.
type Catalog struct {
	Albums []Item
}

// Len returns the number of albums.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Albums)
}

// TrackCount returns the total number of tracks across all albums.
func (c *Catalog) TrackCount() int {
	if c == nil {
		return 0
	}
	n := 0
	for i := range c.Albums {
		n += len(c.Albums[i].Children)
	}
	return n
}

// Album returns the album at index i, or false if out of range.
func (c *Catalog) Album(i int) (Item, bool) {
	if c == nil || i < 0 || i >= len(c.Albums) {
		return Item{}, false
	}
	return c.Albums[i], true
}

// normalize fills empty IDs from position so every item is addressable.
// Titles are left as-is: an empty title renders as an empty label.
func normalize(albums []Item) []Item {
	for i := range albums {
		if albums[i].ID == "" {
			albums[i].ID = "a" + strconv.Itoa(i+1)
		}
		for j := range albums[i].Children {
			t := &albums[i].Children[j]
			if t.ID == "" {
				t.ID = albums[i].ID + "-t" + strconv.Itoa(j+1)
			}
			if t.Artist == "" {
				t.Artist = albums[i].Artist
			}
		}
	}
	return albums
}

// titleFromPath returns the file name without extension.
func titleFromPath(path string) string {
	base := filepath.Base(path)
	return base[:len(base)-len(filepath.Ext(base))]
}
