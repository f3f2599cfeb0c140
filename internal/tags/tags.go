// Package tags reads the metadata the shelf needs from music files: names
// and ordering for grouping tracks into albums, and embedded cover art.
// Files are never written.
package tags

import (
	"path/filepath"
	"strconv"
	"strings"
)

// File extensions recognized as music.
const (
	ExtMP3  = ".mp3"
	ExtFLAC = ".flac"
	ExtOPUS = ".opus"
	ExtOGG  = ".ogg"
	ExtOGA  = ".oga"
	ExtM4A  = ".m4a"
	ExtMP4  = ".mp4"
)

// Tag is the subset of file metadata used to build the catalog.
type Tag struct {
	Path        string
	Title       string
	Artist      string
	AlbumArtist string
	Album       string
	Genre       string
	Year        int

	TrackNumber int
	TotalTracks int
	DiscNumber  int
}

// IsMusicFile reports whether path has a supported music file extension.
func IsMusicFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ExtMP3, ExtFLAC, ExtOPUS, ExtOGG, ExtOGA, ExtM4A, ExtMP4:
		return true
	}
	return false
}

// fill applies the fallbacks shared by every reader.
func (t *Tag) fill() {
	if t.Title == "" {
		base := filepath.Base(t.Path)
		t.Title = strings.TrimSuffix(base, filepath.Ext(base))
	}
	if t.AlbumArtist == "" {
		t.AlbumArtist = t.Artist
	}
	t.Title = strings.TrimSpace(t.Title)
	t.Artist = strings.TrimSpace(t.Artist)
	t.AlbumArtist = strings.TrimSpace(t.AlbumArtist)
	t.Album = strings.TrimSpace(t.Album)
}

// taglibTags wraps a taglib result map with lookup helpers.
type taglibTags map[string][]string

// get returns the first value for any of the given keys.
func (t taglibTags) get(keys ...string) string {
	for _, key := range keys {
		if values, ok := t[key]; ok && len(values) > 0 {
			return values[0]
		}
	}
	return ""
}

// parseNumberPair parses "N" or "N/M".
func parseNumberPair(s string) (num, total int) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, 0
	}
	if idx := strings.Index(s, "/"); idx >= 0 {
		num, _ = strconv.Atoi(s[:idx])
		total, _ = strconv.Atoi(s[idx+1:])
		return num, total
	}
	num, _ = strconv.Atoi(s)
	return num, 0
}

// parseYear takes the leading four digits of a date like 2023-06-15.
func parseYear(date string) int {
	if len(date) > 4 {
		date = date[:4]
	}
	y, _ := strconv.Atoi(date)
	return y
}
