package tags

import "testing"

func TestIsMusicFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"song.mp3", true},
		{"song.MP3", true},
		{"song.flac", true},
		{"song.FLAC", true},
		{"song.opus", true},
		{"song.ogg", true},
		{"song.oga", true},
		{"song.m4a", true},
		{"song.mp4", true},
		{"song.wav", false},
		{"cover.jpg", false},
		{"song", false},
		{"/path/to/music.flac", true},
		{"/path.mp3/readme", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := IsMusicFile(tt.path); got != tt.want {
				t.Errorf("IsMusicFile(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestParseNumberPair(t *testing.T) {
	tests := []struct {
		in        string
		num, tot int
	}{
		{"", 0, 0},
		{"5", 5, 0},
		{"5/12", 5, 12},
		{" 3 ", 3, 0},
		{"/9", 0, 9},
		{"x", 0, 0},
	}

	for _, tt := range tests {
		num, tot := parseNumberPair(tt.in)
		if num != tt.num || tot != tt.tot {
			t.Errorf("parseNumberPair(%q) = (%d, %d), want (%d, %d)", tt.in, num, tot, tt.num, tt.tot)
		}
	}
}

func TestParseYear(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"2023", 2023},
		{"2023-06-15", 2023},
		{"invalid", 0},
	}

	for _, tt := range tests {
		if got := parseYear(tt.in); got != tt.want {
			t.Errorf("parseYear(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestTagFill(t *testing.T) {
	tag := &Tag{Path: "/music/Artist/01 - Intro.flac", Artist: " Someone "}
	tag.fill()

	if tag.Title != "01 - Intro" {
		t.Errorf("Title = %q, want %q", tag.Title, "01 - Intro")
	}
	if tag.Artist != "Someone" {
		t.Errorf("Artist = %q, want trimmed", tag.Artist)
	}
	if tag.AlbumArtist != "Someone" {
		t.Errorf("AlbumArtist = %q, want artist fallback", tag.AlbumArtist)
	}
}
