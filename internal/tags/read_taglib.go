package tags

import "go.senan.xyz/taglib"

// readWithTaglib reads any format TagLib understands. It is the last
// fallback for files the pure-Go readers reject (ffmpeg-created M4A, some
// Ogg streams).
func readWithTaglib(path string) (*Tag, error) {
	raw, err := taglib.ReadTags(path)
	if err != nil {
		return nil, err
	}
	tags := taglibTags(raw)

	track, totalTracks := parseNumberPair(tags.get(taglib.TrackNumber))
	disc, _ := parseNumberPair(tags.get(taglib.DiscNumber))

	t := &Tag{
		Path:        path,
		Title:       tags.get(taglib.Title),
		Artist:      tags.get(taglib.Artist),
		AlbumArtist: tags.get(taglib.AlbumArtist),
		Album:       tags.get(taglib.Album),
		Genre:       tags.get(taglib.Genre),
		Year:        parseYear(tags.get(taglib.Date)),
		TrackNumber: track,
		TotalTracks: totalTracks,
		DiscNumber:  disc,
	}
	t.fill()
	return t, nil
}
