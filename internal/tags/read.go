package tags

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/dhowden/tag"
)

// Read reads tag metadata from a music file. dhowden/tag is tried first;
// when it cannot parse the file a format-specific reader takes over.
func Read(path string) (*Tag, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		switch strings.ToLower(filepath.Ext(path)) {
		case ExtMP3:
			// dhowden/tag has issues with some UTF-16 encoded ID3 tags
			return readMP3(path)
		case ExtFLAC:
			return readFLAC(path)
		case ExtM4A, ExtMP4, ExtOPUS, ExtOGG, ExtOGA:
			return readWithTaglib(path)
		}
		return nil, err
	}

	track, totalTracks := m.Track()
	disc, _ := m.Disc()

	t := &Tag{
		Path:        path,
		Title:       m.Title(),
		Artist:      m.Artist(),
		AlbumArtist: m.AlbumArtist(),
		Album:       m.Album(),
		Genre:       m.Genre(),
		Year:        m.Year(),
		TrackNumber: track,
		TotalTracks: totalTracks,
		DiscNumber:  disc,
	}
	t.fill()
	return t, nil
}
