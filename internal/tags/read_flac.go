package tags

import (
	"strconv"

	"github.com/go-flac/flacvorbis"
	goflac "github.com/go-flac/go-flac"
)

// readFLAC reads the Vorbis comment block of a FLAC file.
func readFLAC(path string) (*Tag, error) {
	f, err := goflac.ParseFile(path)
	if err != nil {
		return readWithTaglib(path)
	}

	t := &Tag{Path: path}
	for _, meta := range f.Meta {
		if meta.Type != goflac.VorbisComment {
			continue
		}
		cmts, err := flacvorbis.ParseFromMetaDataBlock(*meta)
		if err != nil {
			break
		}
		get := func(key string) string {
			values, err := cmts.Get(key)
			if err != nil || len(values) == 0 {
				return ""
			}
			return values[0]
		}

		t.Title = get(flacvorbis.FIELD_TITLE)
		t.Artist = get(flacvorbis.FIELD_ARTIST)
		t.AlbumArtist = get("ALBUMARTIST")
		t.Album = get(flacvorbis.FIELD_ALBUM)
		t.Genre = get(flacvorbis.FIELD_GENRE)
		t.Year = parseYear(get(flacvorbis.FIELD_DATE))
		t.TrackNumber, t.TotalTracks = parseNumberPair(get(flacvorbis.FIELD_TRACKNUMBER))
		if t.TotalTracks == 0 {
			t.TotalTracks, _ = strconv.Atoi(get("TOTALTRACKS"))
		}
		t.DiscNumber, _ = parseNumberPair(get("DISCNUMBER"))
		break
	}

	t.fill()
	return t, nil
}
