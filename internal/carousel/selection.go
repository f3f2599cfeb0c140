package carousel

import "github.com/llehouerou/arcshelf/internal/catalog"

// Mode selects which collection is being browsed.
type Mode int

const (
	// ModePrimary browses the catalog's albums.
	ModePrimary Mode = iota
	// ModeSecondary browses the tracks of the selected album.
	ModeSecondary
)

func (m Mode) String() string {
	if m == ModeSecondary {
		return "tracks"
	}
	return "albums"
}

// Other returns the opposite mode.
func (m Mode) Other() Mode {
	if m == ModeSecondary {
		return ModePrimary
	}
	return ModeSecondary
}

// Wrap normalizes i into [0, n) with wraparound in both directions.
// It returns 0 when n <= 0.
func Wrap(i, n int) int {
	if n <= 0 {
		return 0
	}
	return ((i % n) + n) % n
}

// Selection tracks the mode and the selected index in each collection.
type Selection struct {
	catalog   *catalog.Catalog
	mode      Mode
	primary   int
	secondary int
}

// NewSelection starts in primary mode at index 0.
func NewSelection(c *catalog.Catalog) *Selection {
	if c == nil {
		c = &catalog.Catalog{}
	}
	return &Selection{catalog: c}
}

// Mode returns the current mode.
func (s *Selection) Mode() Mode {
	return s.mode
}

// Active returns the sequence for the current mode. In secondary mode this is
// the selected album's tracks, or an empty slice.
func (s *Selection) Active() []catalog.Item {
	if s.mode == ModePrimary {
		return s.catalog.Albums
	}
	album, ok := s.Album()
	if !ok {
		return nil
	}
	return album.Children
}

// Album returns the selected album regardless of mode.
func (s *Selection) Album() (catalog.Item, bool) {
	return s.catalog.Album(Wrap(s.primary, s.catalog.Len()))
}

// Empty reports whether the active sequence has no items.
func (s *Selection) Empty() bool {
	return len(s.Active()) == 0
}

// Index returns the selected index in the active sequence.
func (s *Selection) Index() int {
	if s.mode == ModePrimary {
		return s.primary
	}
	return s.secondary
}

// SetIndex selects i, wrapped over the active sequence's length. It is a
// no-op returning false when the active sequence is empty.
func (s *Selection) SetIndex(i int) bool {
	n := len(s.Active())
	if n == 0 {
		return false
	}
	if s.mode == ModePrimary {
		s.primary = Wrap(i, n)
	} else {
		s.secondary = Wrap(i, n)
	}
	return true
}

// Current returns the selected item of the active sequence.
func (s *Selection) Current() (catalog.Item, bool) {
	return s.At(0)
}

// At returns the item at offset from the selection, wrapping around.
func (s *Selection) At(offset int) (catalog.Item, bool) {
	items := s.Active()
	if len(items) == 0 {
		return catalog.Item{}, false
	}
	return items[Wrap(s.Index()+offset, len(items))], true
}

// EnterMode switches the active collection. Entering secondary mode always
// starts at the first track.
func (s *Selection) EnterMode(m Mode) {
	s.mode = m
	if m == ModeSecondary {
		s.secondary = 0
	}
}
