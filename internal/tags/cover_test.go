package tags

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

var jpegHeader = []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F'}

func writeCover(t *testing.T, dir, name string, data []byte) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), data, 0o600); err != nil {
		t.Fatalf("create %s: %v", name, err)
	}
}

func TestExtractCoverArt_EmbeddedMP3(t *testing.T) {
	dir := t.TempDir()
	path := createTestMP3(t, dir, "test.mp3", mp3Fields{Title: "Test", Cover: jpegHeader})

	data, mimeType, err := ExtractCoverArt(path)
	if err != nil {
		t.Fatalf("ExtractCoverArt() error: %v", err)
	}
	if !bytes.Equal(data, jpegHeader) {
		t.Errorf("data = %v, want embedded picture", data)
	}
	if mimeType != mimeJPEG {
		t.Errorf("mimeType = %q, want %q", mimeType, mimeJPEG)
	}
}

func TestExtractCoverArt_EmbeddedWinsOverFolder(t *testing.T) {
	dir := t.TempDir()
	path := createTestMP3(t, dir, "test.mp3", mp3Fields{Title: "Test", Cover: jpegHeader})
	writeCover(t, dir, "cover.png", []byte("folder"))

	data, _, err := ExtractCoverArt(path)
	if err != nil {
		t.Fatalf("ExtractCoverArt() error: %v", err)
	}
	if !bytes.Equal(data, jpegHeader) {
		t.Error("expected embedded art, got folder art")
	}
}

func TestExtractCoverArt_FolderArt(t *testing.T) {
	dir := t.TempDir()
	path := createTestMP3(t, dir, "test.mp3", mp3Fields{Title: "Test"})
	writeCover(t, dir, "album.png", []byte{0x89, 0x50, 0x4E, 0x47})

	data, mimeType, err := ExtractCoverArt(path)
	if err != nil {
		t.Fatalf("ExtractCoverArt() error: %v", err)
	}
	if data == nil {
		t.Fatal("expected cover art data from folder, got nil")
	}
	if mimeType != mimePNG {
		t.Errorf("mimeType = %q, want %q", mimeType, mimePNG)
	}
}

func TestExtractCoverArt_FolderArtPriority(t *testing.T) {
	dir := t.TempDir()
	path := createTestMP3(t, dir, "test.mp3", mp3Fields{Title: "Test"})
	writeCover(t, dir, "folder.jpg", []byte("folder"))
	writeCover(t, dir, "cover.jpg", []byte("cover"))

	data, _, err := ExtractCoverArt(path)
	if err != nil {
		t.Fatalf("ExtractCoverArt() error: %v", err)
	}
	if string(data) != "cover" {
		t.Errorf("data = %q, want cover.jpg contents", data)
	}
}

func TestExtractCoverArt_UppercaseFolderArt(t *testing.T) {
	dir := t.TempDir()
	path := createTestMP3(t, dir, "test.mp3", mp3Fields{Title: "Test"})
	writeCover(t, dir, "COVER.JPG", jpegHeader)

	data, _, err := ExtractCoverArt(path)
	if err != nil {
		t.Fatalf("ExtractCoverArt() error: %v", err)
	}
	if data == nil {
		t.Error("expected cover art data from COVER.JPG, got nil")
	}
}

func TestExtractCoverArt_NoCoverArt(t *testing.T) {
	dir := t.TempDir()
	path := createTestMP3(t, dir, "test.mp3", mp3Fields{Title: "Test"})

	data, mimeType, err := ExtractCoverArt(path)
	if err != nil {
		t.Fatalf("ExtractCoverArt() error: %v", err)
	}
	if data != nil {
		t.Errorf("expected nil data, got %d bytes", len(data))
	}
	if mimeType != "" {
		t.Errorf("expected empty mimeType, got %q", mimeType)
	}
}

func TestExtractCoverArt_NonexistentFile(t *testing.T) {
	if _, _, err := ExtractCoverArt("/nonexistent/file.mp3"); err == nil {
		t.Error("expected error for nonexistent file")
	}
}

func TestExtractFLACPicture(t *testing.T) {
	dir := t.TempDir()
	img := testPNG(t)
	path := createTestFLAC(t, dir, map[string]string{"TITLE": "x"}, img)

	data, mimeType := extractFLACPicture(path)
	if !bytes.Equal(data, img) {
		t.Errorf("picture = %d bytes, want %d", len(data), len(img))
	}
	if mimeType != mimePNG {
		t.Errorf("mimeType = %q, want %q", mimeType, mimePNG)
	}

	data, _, err := ExtractCoverArt(path)
	if err != nil {
		t.Fatalf("ExtractCoverArt() error: %v", err)
	}
	if !bytes.Equal(data, img) {
		t.Error("ExtractCoverArt should return the embedded FLAC picture")
	}
}

func TestExtractFLACPicture_NotFLAC(t *testing.T) {
	dir := t.TempDir()
	path := createTestMP3(t, dir, "test.mp3", mp3Fields{Title: "x"})

	if data, _ := extractFLACPicture(path); data != nil {
		t.Error("expected nil for a non-FLAC file")
	}
}

func TestFindFolderArt(t *testing.T) {
	tests := []struct {
		filename string
		wantMime string
	}{
		{"cover.jpg", mimeJPEG},
		{"cover.jpeg", mimeJPEG},
		{"cover.png", mimePNG},
		{"folder.jpg", mimeJPEG},
		{"album.png", mimePNG},
		{"front.jpg", mimeJPEG},
		{"artwork.jpeg", mimeJPEG},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			dir := t.TempDir()
			writeCover(t, dir, tt.filename, []byte("test image data"))

			data, mimeType, err := findFolderArt(dir)
			if err != nil {
				t.Fatalf("findFolderArt() error: %v", err)
			}
			if data == nil {
				t.Error("expected data, got nil")
			}
			if mimeType != tt.wantMime {
				t.Errorf("mimeType = %q, want %q", mimeType, tt.wantMime)
			}
		})
	}
}

func TestFindFolderArt_EmptyDir(t *testing.T) {
	data, mimeType, err := findFolderArt(t.TempDir())
	if err != nil {
		t.Fatalf("findFolderArt() error: %v", err)
	}
	if data != nil || mimeType != "" {
		t.Error("expected no art for empty dir")
	}
}
