package gallery

import (
	"github.com/tkrause/wallery/pkg/errors"
)

// =============================================================================
// Photo
// =============================================================================

// Photo describes an imported image. Width and Height are the natural pixel
// dimensions of the source file; the image bytes themselves are referenced
// by Path and never held by this package.
type Photo struct {
	ID     string  `json:"id" bson:"id"`
	Name   string  `json:"name" bson:"name"`
	Path   string  `json:"path,omitempty" bson:"path,omitempty"`
	Width  float64 `json:"width" bson:"width"`
	Height float64 `json:"height" bson:"height"`
}

// AspectRatio returns width/height with degenerate dimensions floored to 1,
// so a corrupt or zero-sized source can never produce a non-positive frame.
func (p Photo) AspectRatio() float64 {
	w := max(p.Width, 1)
	h := max(p.Height, 1)
	return w / h
}

// PhotoSet is an ordered collection of photos.
type PhotoSet []Photo

// ByID builds a lookup index keyed by photo ID.
func (s PhotoSet) ByID() map[string]Photo {
	idx := make(map[string]Photo, len(s))
	for _, p := range s {
		idx[p.ID] = p
	}
	return idx
}

// Lookup returns the photo with the given ID, if present.
func (s PhotoSet) Lookup(id string) (Photo, bool) {
	for _, p := range s {
		if p.ID == id {
			return p, true
		}
	}
	return Photo{}, false
}

// =============================================================================
// Wall
// =============================================================================

// Wall is the bounded canvas frames are placed into. It is mutable
// independently of the frames; shrinking a wall does not move anything.
type Wall struct {
	Width  float64 `json:"width" bson:"width"`
	Height float64 `json:"height" bson:"height"`
}

// Validate checks that both dimensions are strictly positive.
func (w Wall) Validate() error {
	if w.Width <= 0 || w.Height <= 0 {
		return errors.New(errors.ErrCodeInvalidDimensions,
			"wall dimensions must be positive, got %gx%g", w.Width, w.Height)
	}
	return nil
}

// =============================================================================
// Mode
// =============================================================================

// Mode selects the auto-placement algorithm family.
type Mode string

// The closed set of layout modes.
const (
	ModeGrid      Mode = "grid"
	ModeSalon     Mode = "salon"
	ModeRow       Mode = "row"
	ModeSymmetric Mode = "symmetric"
)

// ValidModes is the set of recognized layout mode tokens.
var ValidModes = map[Mode]bool{
	ModeGrid:      true,
	ModeSalon:     true,
	ModeRow:       true,
	ModeSymmetric: true,
}

// ParseMode validates a mode token.
func ParseMode(s string) (Mode, error) {
	m := Mode(s)
	if !ValidModes[m] {
		return "", errors.New(errors.ErrCodeInvalidMode,
			"invalid layout mode: %q (must be one of: grid, salon, row, symmetric)", s)
	}
	return m, nil
}
