package albumart

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // JPEG covers
	"image/png"
	"os"

	"github.com/nfnt/resize"

	"github.com/llehouerou/arcshelf/internal/catalog"
	"github.com/llehouerou/arcshelf/internal/tags"
)

var (
	// ErrNoArt means the reference has no image to show.
	ErrNoArt = errors.New("no cover art")
	// ErrRemote means the reference is a URL. Covers are never fetched.
	ErrRemote = errors.New("remote cover not fetched")
)

// Load reads the cover for ref, shrinks it to fit pixelWidth x pixelHeight
// and returns it as PNG. ref is an image file, or a music file whose
// embedded or folder art is used. Results are served from and written to
// cache when it is non-nil.
func Load(ref string, cache *Cache, pixelWidth, pixelHeight int) ([]byte, error) {
	switch {
	case ref == "":
		return nil, ErrNoArt
	case catalog.IsRemote(ref):
		return nil, ErrRemote
	case pixelWidth <= 0 || pixelHeight <= 0:
		return nil, fmt.Errorf("invalid cover size %dx%d", pixelWidth, pixelHeight)
	}

	if data := cache.Get(ref, pixelWidth, pixelHeight); data != nil {
		return data, nil
	}

	raw, err := readSource(ref)
	if err != nil {
		return nil, err
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decode cover: %w", err)
	}

	//nolint:gosec // pixel sizes are small positive ints
	resized := resize.Thumbnail(uint(pixelWidth), uint(pixelHeight), img, resize.Lanczos3)

	var buf bytes.Buffer
	if err := png.Encode(&buf, resized); err != nil {
		return nil, fmt.Errorf("encode cover: %w", err)
	}
	data := buf.Bytes()

	_ = cache.Put(ref, pixelWidth, pixelHeight, data) //nolint:errcheck // cache is best-effort
	return data, nil
}

func readSource(ref string) ([]byte, error) {
	if tags.IsMusicFile(ref) {
		data, _, err := tags.ExtractCoverArt(ref)
		if err != nil {
			return nil, fmt.Errorf("extract cover: %w", err)
		}
		if data == nil {
			return nil, ErrNoArt
		}
		return data, nil
	}

	data, err := os.ReadFile(ref)
	if err != nil {
		return nil, fmt.Errorf("read cover: %w", err)
	}
	return data, nil
}
