package tags

import "github.com/bogem/id3v2/v2"

// readMP3 reads ID3v2 frames directly.
func readMP3(path string) (*Tag, error) {
	id3tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return nil, err
	}
	defer id3tag.Close()

	track, totalTracks := parseNumberPair(textFrame(id3tag, "TRCK"))
	disc, _ := parseNumberPair(textFrame(id3tag, "TPOS"))

	year := parseYear(textFrame(id3tag, "TDRC"))
	if year == 0 {
		year = parseYear(id3tag.Year())
	}

	t := &Tag{
		Path:        path,
		Title:       id3tag.Title(),
		Artist:      id3tag.Artist(),
		AlbumArtist: textFrame(id3tag, "TPE2"),
		Album:       id3tag.Album(),
		Genre:       id3tag.Genre(),
		Year:        year,
		TrackNumber: track,
		TotalTracks: totalTracks,
		DiscNumber:  disc,
	}
	t.fill()
	return t, nil
}

func textFrame(id3tag *id3v2.Tag, frameID string) string {
	frames := id3tag.GetFrames(frameID)
	if len(frames) == 0 {
		return ""
	}
	if tf, ok := frames[0].(id3v2.TextFrame); ok {
		return tf.Text
	}
	return ""
}
