package albumart

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"strings"
)

// Kitty graphics protocol escape sequences
const (
	escStart = "\x1b_G"
	escEnd   = "\x1b\\"

	// base64 payload bytes per transmission chunk
	kittyChunkSize = 4096
)

// KittyProtocol implements ImageProtocol with the Kitty graphics protocol.
// Images are transmitted once and then placed by ID.
type KittyProtocol struct{}

func (KittyProtocol) Name() string { return "kitty" }

func (KittyProtocol) Prepare(img image.Image, id uint32) (string, error) {
	return TransmitImage(img, id)
}

func (KittyProtocol) PrepareFromPNG(pngData []byte, id uint32) (string, error) {
	return TransmitImageFromPNG(pngData, id)
}

func (KittyProtocol) Place(id uint32, row, col, width, height int) string {
	return PlaceImage(id, row, col, width, height)
}

func (KittyProtocol) Delete(id uint32) string {
	return DeleteImage(id)
}

func (KittyProtocol) Hide(id uint32) string {
	return HideImage(id)
}

func (KittyProtocol) TargetPixelSize(widthCells, heightCells int) (pixelWidth, pixelHeight int) {
	return max(widthCells*8, 64), max(heightCells*16, 64)
}

// TransmitImage encodes img as PNG and transmits it without displaying it.
func TransmitImage(img image.Image, id uint32) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("encode png: %w", err)
	}
	return TransmitImageFromPNG(buf.Bytes(), id)
}

// TransmitImageFromPNG transmits PNG data under image ID id (a=t), split
// into chunks as the protocol requires.
func TransmitImageFromPNG(pngData []byte, id uint32) (string, error) {
	encoded := base64.StdEncoding.EncodeToString(pngData)

	var sb strings.Builder
	for i := 0; i < len(encoded) || i == 0; i += kittyChunkSize {
		end := min(i+kittyChunkSize, len(encoded))
		more := 0
		if end < len(encoded) {
			more = 1
		}

		sb.WriteString(escStart)
		if i == 0 {
			fmt.Fprintf(&sb, "a=t,f=100,i=%d,q=2,m=%d;", id, more)
		} else {
			fmt.Fprintf(&sb, "m=%d;", more)
		}
		sb.WriteString(encoded[i:end])
		sb.WriteString(escEnd)
	}
	return sb.String(), nil
}

// PlaceImage shows a transmitted image at (row, col) over width x height
// cells. The fixed placement ID makes a new placement replace the old one.
func PlaceImage(id uint32, row, col, width, height int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "\x1b[s\x1b[%d;%dH", row, col)
	fmt.Fprintf(&sb, "%sa=p,i=%d,p=1,c=%d,r=%d,C=1,q=2;%s", escStart, id, width, height, escEnd)
	sb.WriteString("\x1b[u")
	return sb.String()
}

// DeleteImage removes all placements of an image and frees its data.
func DeleteImage(id uint32) string {
	return fmt.Sprintf("%sa=d,d=I,i=%d,q=2;%s", escStart, id, escEnd)
}

// HideImage removes the placements of an image but keeps its data, so it
// can be placed again without retransmitting.
func HideImage(id uint32) string {
	return fmt.Sprintf("%sa=d,d=i,i=%d,q=2;%s", escStart, id, escEnd)
}

// BlankPlaceholder returns width x height spaces, so layout code measures
// the image area without seeing escape sequences.
func BlankPlaceholder(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	line := strings.Repeat(" ", width)
	lines := make([]string, height)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}
