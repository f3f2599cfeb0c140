package tags

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/dhowden/tag"
	"github.com/go-flac/flacpicture"
	goflac "github.com/go-flac/go-flac"
)

const (
	mimeJPEG = "image/jpeg"
	mimePNG  = "image/png"
)

// Common cover art filenames to look for in album folders.
var coverArtFilenames = []string{
	"cover.jpg", "cover.jpeg", "cover.png",
	"folder.jpg", "folder.jpeg", "folder.png",
	"album.jpg", "album.jpeg", "album.png",
	"front.jpg", "front.jpeg", "front.png",
	"artwork.jpg", "artwork.jpeg", "artwork.png",
}

// ExtractCoverArt returns the cover image for an audio file: the embedded
// picture if there is one, otherwise a conventional image file in the same
// folder. It returns nil data when neither exists.
func ExtractCoverArt(path string) (data []byte, mimeType string, err error) {
	data, mimeType, err = extractEmbeddedArt(path)
	if err != nil {
		return nil, "", err
	}
	if data == nil && strings.EqualFold(filepath.Ext(path), ExtFLAC) {
		data, mimeType = extractFLACPicture(path)
	}
	if data != nil {
		return data, mimeType, nil
	}
	return findFolderArt(filepath.Dir(path))
}

func extractEmbeddedArt(path string) (data []byte, mimeType string, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		// Unparseable tags are not fatal, folder art may still exist
		return nil, "", nil
	}

	pic := m.Picture()
	if pic == nil || len(pic.Data) == 0 {
		return nil, "", nil
	}
	return pic.Data, pic.MIMEType, nil
}

// extractFLACPicture reads the first PICTURE block, preferring the front
// cover.
func extractFLACPicture(path string) ([]byte, string) {
	f, err := goflac.ParseFile(path)
	if err != nil {
		return nil, ""
	}

	var found *flacpicture.MetadataBlockPicture
	for _, meta := range f.Meta {
		if meta.Type != goflac.Picture {
			continue
		}
		pic, err := flacpicture.ParseFromMetaDataBlock(*meta)
		if err != nil || len(pic.ImageData) == 0 {
			continue
		}
		if pic.PictureType == flacpicture.PictureTypeFrontCover {
			return pic.ImageData, pic.MIME
		}
		if found == nil {
			found = pic
		}
	}
	if found == nil {
		return nil, ""
	}
	return found.ImageData, found.MIME
}

// findFolderArt looks for common cover art files in dir.
func findFolderArt(dir string) (data []byte, mimeType string, err error) {
	for _, filename := range coverArtFilenames {
		data, err := os.ReadFile(filepath.Join(dir, filename))
		if err != nil {
			data, err = os.ReadFile(filepath.Join(dir, strings.ToUpper(filename)))
			if err != nil {
				continue
			}
		}
		return data, mimeFromExt(filename), nil
	}
	return nil, "", nil
}

func mimeFromExt(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jpg", ".jpeg":
		return mimeJPEG
	case ".png":
		return mimePNG
	default:
		return "application/octet-stream"
	}
}
