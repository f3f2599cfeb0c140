package albumart

import (
	"bytes"
	"errors"
	"image/png"
	"path/filepath"
	"testing"
)

func TestLoad_ImageFile(t *testing.T) {
	src := writeTestPNG(t, t.TempDir(), "cover.png", 40, 20)

	data, err := Load(src, nil, 10, 10)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("result is not PNG: %v", err)
	}
	b := img.Bounds()
	if b.Dx() > 10 || b.Dy() > 10 {
		t.Errorf("size = %dx%d, want within 10x10", b.Dx(), b.Dy())
	}
	if b.Dx() != 10 {
		t.Errorf("width = %d, want aspect-preserving 10", b.Dx())
	}
}

func TestLoad_UsesCache(t *testing.T) {
	dir := t.TempDir()
	src := writeTestPNG(t, dir, "cover.png", 16, 16)
	cache := newTestCache(t)

	first, err := Load(src, cache, 8, 8)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if !bytes.Equal(cache.Get(src, 8, 8), first) {
		t.Fatal("Load should populate the cache")
	}

	if err := cache.Put(src, 8, 8, []byte("cached")); err != nil {
		t.Fatalf("Put() error: %v", err)
	}
	second, err := Load(src, cache, 8, 8)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if string(second) != "cached" {
		t.Error("second Load should be served from cache")
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		ref  string
		w, h int
		want error
	}{
		{"empty", "", 8, 8, ErrNoArt},
		{"remote", "https://picsum.photos/700?1", 8, 8, ErrRemote},
		{"missing file", filepath.Join(dir, "missing.png"), 8, 8, nil},
		{"zero size", filepath.Join(dir, "x.png"), 0, 8, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.ref, nil, tt.w, tt.h)
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLoad_NotAnImage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cover.jpg")
	writeFile(t, path, []byte("not an image"))

	if _, err := Load(path, nil, 8, 8); err == nil {
		t.Error("expected decode error")
	}
}

func TestLoad_MusicFileWithoutArt(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "song.mp3")
	writeFile(t, path, []byte{0xff, 0xfb, 0x90, 0x00})

	_, err := Load(path, nil, 8, 8)
	if !errors.Is(err, ErrNoArt) {
		t.Errorf("error = %v, want ErrNoArt", err)
	}
}

func TestLoad_MusicFileFolderArt(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "song.mp3")
	writeFile(t, path, []byte{0xff, 0xfb, 0x90, 0x00})
	writeTestPNG(t, dir, "cover.png", 12, 12)

	data, err := Load(path, nil, 6, 6)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if _, err := png.Decode(bytes.NewReader(data)); err != nil {
		t.Errorf("result is not PNG: %v", err)
	}
}
