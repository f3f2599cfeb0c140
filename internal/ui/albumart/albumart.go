// Package albumart shows real cover images over the carousel's center card
// on terminals that support the Kitty or Sixel graphics protocols.
package albumart

import (
	"sync"
	"sync/atomic"
)

var nextImageID uint32

func getNextImageID() uint32 {
	return atomic.AddUint32(&nextImageID, 1)
}

// Renderer tracks the one image currently transmitted to the terminal.
type Renderer struct {
	mu       sync.RWMutex
	protocol ImageProtocol

	ref    string
	id     uint32
	placed bool
	width  int // cells
	height int // cells
}

// New creates a renderer. A nil protocol disables images.
func New(protocol ImageProtocol) *Renderer {
	return &Renderer{protocol: protocol}
}

// Enabled reports whether images can be shown.
func (r *Renderer) Enabled() bool {
	return r != nil && r.protocol != nil
}

// Protocol returns the protocol name, or "none".
func (r *Renderer) Protocol() string {
	if !r.Enabled() {
		return ProtocolNone
	}
	return r.protocol.Name()
}

// SetSize sets the image area in cells. It reports whether the size
// changed, in which case the current image must be loaded again.
func (r *Renderer) SetSize(width, height int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.width == width && r.height == height {
		return false
	}
	r.width, r.height = width, height
	r.ref = ""
	return true
}

// Size returns the image area in cells.
func (r *Renderer) Size() (width, height int) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.width, r.height
}

// TargetPixelSize returns the pixel size covers should be loaded at.
func (r *Renderer) TargetPixelSize() (width, height int) {
	if !r.Enabled() {
		return 0, 0
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.protocol.TargetPixelSize(r.width, r.height)
}

// Current returns the reference of the image on screen, or "".
func (r *Renderer) Current() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.ref
}

// HasImage reports whether an image is ready to place.
func (r *Renderer) HasImage() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.id > 0
}

// Apply replaces the current image with pngData loaded for ref. It returns
// the terminal command to write once (delete of the old image plus
// transmission of the new one). Empty pngData only clears.
func (r *Renderer) Apply(ref string, pngData []byte) string {
	if !r.Enabled() {
		return ""
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	var cmd string
	if r.id > 0 {
		cmd = r.protocol.Delete(r.id)
		r.id = 0
	}
	r.placed = false
	r.ref = ref
	if len(pngData) == 0 {
		return cmd
	}

	id := getNextImageID()
	transmit, err := r.protocol.PrepareFromPNG(pngData, id)
	if err != nil {
		return cmd
	}
	r.id = id
	return cmd + transmit
}

// Placement returns the command that shows the image at (row, col),
// 1-based, or "" when there is none.
func (r *Renderer) Placement(row, col int) string {
	if !r.Enabled() {
		return ""
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.id == 0 {
		return ""
	}
	r.placed = true
	return r.protocol.Place(r.id, row, col, r.width, r.height)
}

// Hide takes a placed image off screen and returns the command to write.
// The image stays loaded; the next Placement shows it again.
func (r *Renderer) Hide() string {
	if !r.Enabled() {
		return ""
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.id == 0 || !r.placed {
		return ""
	}
	r.placed = false
	return r.protocol.Hide(r.id)
}

// Placeholder returns blank cells covering the image area.
func (r *Renderer) Placeholder() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return BlankPlaceholder(r.width, r.height)
}

// Clear removes the current image and returns the command to write.
func (r *Renderer) Clear() string {
	if !r.Enabled() {
		return ""
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	var cmd string
	if r.id > 0 {
		cmd = r.protocol.Delete(r.id)
	}
	r.ref = ""
	r.id = 0
	r.placed = false
	return cmd
}
