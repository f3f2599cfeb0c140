package tags

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/bogem/id3v2/v2"
	"github.com/go-flac/flacpicture"
	"github.com/go-flac/flacvorbis"
	goflac "github.com/go-flac/go-flac"
)

// mp3Fields are the frames written by createTestMP3. Empty fields are omitted.
type mp3Fields struct {
	Title       string
	Artist      string
	AlbumArtist string
	Album       string
	Track       string
	Disc        string
	Year        string
	Cover       []byte
}

// createTestMP3 writes a single silent MPEG frame tagged with f.
func createTestMP3(t *testing.T, dir, name string, f mp3Fields) string {
	t.Helper()
	path := filepath.Join(dir, name)

	// MPEG1 Layer3, 128kbps, 44100Hz, stereo
	frame := make([]byte, 417)
	frame[0] = 0xff
	frame[1] = 0xfb
	frame[2] = 0x90
	if err := os.WriteFile(path, frame, 0o600); err != nil {
		t.Fatalf("create test MP3: %v", err)
	}

	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		t.Fatalf("open test MP3: %v", err)
	}
	defer tag.Close()

	tag.SetVersion(4)
	tag.SetDefaultEncoding(id3v2.EncodingUTF8)
	add := func(id, value string) {
		if value != "" {
			tag.AddTextFrame(id, id3v2.EncodingUTF8, value)
		}
	}
	add("TIT2", f.Title)
	add("TPE1", f.Artist)
	add("TPE2", f.AlbumArtist)
	add("TALB", f.Album)
	add("TRCK", f.Track)
	add("TPOS", f.Disc)
	add("TDRC", f.Year)
	if len(f.Cover) > 0 {
		tag.AddAttachedPicture(id3v2.PictureFrame{
			Encoding:    id3v2.EncodingUTF8,
			MimeType:    mimeJPEG,
			PictureType: id3v2.PTFrontCover,
			Description: "Front Cover",
			Picture:     f.Cover,
		})
	}
	if err := tag.Save(); err != nil {
		t.Fatalf("save test MP3 tags: %v", err)
	}
	return path
}

// createTestFLAC encodes one second of tone with ffmpeg and replaces its
// metadata with the given Vorbis comments and optional picture.
func createTestFLAC(t *testing.T, dir string, comments map[string]string, picture []byte) string {
	t.Helper()
	path := filepath.Join(dir, "test.flac")

	cmd := exec.Command("ffmpeg", "-y", "-f", "lavfi", "-i", "sine=frequency=440:duration=1", "-c:a", "flac", path)
	if err := cmd.Run(); err != nil {
		t.Skipf("ffmpeg not available: %v", err)
	}

	f, err := goflac.ParseFile(path)
	if err != nil {
		t.Fatalf("parse test FLAC: %v", err)
	}

	meta := make([]*goflac.MetaDataBlock, 0, len(f.Meta)+2)
	for _, m := range f.Meta {
		if m.Type != goflac.VorbisComment && m.Type != goflac.Picture {
			meta = append(meta, m)
		}
	}

	cmts := flacvorbis.New()
	for k, v := range comments {
		if err := cmts.Add(k, v); err != nil {
			t.Fatalf("add comment %s: %v", k, err)
		}
	}
	cmtBlock := cmts.Marshal()
	meta = append(meta, &cmtBlock)

	if picture != nil {
		pic, err := flacpicture.NewFromImageData(flacpicture.PictureTypeFrontCover, "Front Cover", picture, mimePNG)
		if err != nil {
			t.Fatalf("create picture: %v", err)
		}
		picBlock := pic.Marshal()
		meta = append(meta, &picBlock)
	}

	f.Meta = meta
	if err := f.Save(path); err != nil {
		t.Fatalf("save test FLAC: %v", err)
	}
	return path
}

// testPNG returns a small valid PNG.
func testPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}
