package albumart

import "image"

// ImageProtocol abstracts the terminal image protocol (Kitty or Sixel).
type ImageProtocol interface {
	// Name identifies the protocol in logs and config ("kitty", "sixel").
	Name() string

	// Prepare encodes the image and returns any one-time terminal command.
	// Kitty transmits to terminal memory; Sixel encodes and keeps the
	// result internally and returns "".
	Prepare(img image.Image, id uint32) (string, error)

	// PrepareFromPNG is Prepare for pre-encoded PNG data.
	PrepareFromPNG(pngData []byte, id uint32) (string, error)

	// Place returns the sequence that shows the image at (row, col), 1-based.
	Place(id uint32, row, col, width, height int) string

	// Delete returns the sequence that removes the image.
	Delete(id uint32) string

	// Hide returns the sequence that takes the image off screen while
	// keeping it ready to place again. Sixel images live in the cell grid
	// and are hidden by redrawing, so Sixel returns "".
	Hide(id uint32) string

	// TargetPixelSize returns the pixel size to resize to for an image
	// shown in the given number of cells.
	TargetPixelSize(widthCells, heightCells int) (pixelWidth, pixelHeight int)
}
