package layout

import (
	"github.com/tkrause/wallery/pkg/errors"
	"github.com/tkrause/wallery/pkg/gallery"
)

const (
	// DefaultMargin is the spacing applied around the wall edges and
	// between frames by the deterministic modes, in wall units.
	DefaultMargin = 20.0

	// DefaultSeed is the default random seed for reproducibility.
	DefaultSeed = uint64(42)

	// minFrameSize floors every generated frame extent so degenerate
	// source photos (zero-valued dimensions) never propagate a
	// non-positive frame size.
	minFrameSize = 1.0
)

// Options configures layout generation.
type Options struct {
	// Margin overrides DefaultMargin when positive.
	Margin float64
}

var defaultOpts = Options{
	Margin: DefaultMargin,
}

// Generate places one frame per photo on the wall using the given mode.
//
// The returned frames have freshly generated unique IDs, reference only
// photos from the input set, and always have strictly positive extents.
// An empty photo set yields an empty list without error. Non-positive wall
// dimensions fail with INVALID_DIMENSIONS; an unrecognized mode fails with
// INVALID_MODE.
//
// rng is only consulted by the salon mode; passing nil uses a source
// seeded with DefaultSeed. opts may be nil for defaults.
func Generate(photos gallery.PhotoSet, wall gallery.Wall, mode gallery.Mode, rng RandomSource, opts *Options) ([]gallery.Frame, error) {
	if err := wall.Validate(); err != nil {
		return nil, err
	}
	if !gallery.ValidModes[mode] {
		return nil, errors.New(errors.ErrCodeInvalidMode,
			"invalid layout mode: %q (must be one of: grid, salon, row, symmetric)", mode)
	}
	if len(photos) == 0 {
		return []gallery.Frame{}, nil
	}
	if opts == nil {
		opts = &defaultOpts
	}
	margin := opts.Margin
	if margin <= 0 {
		margin = DefaultMargin
	}
	if rng == nil {
		rng = NewSource(DefaultSeed)
	}

	switch mode {
	case gallery.ModeGrid:
		return gridLayout(photos, wall, margin), nil
	case gallery.ModeSalon:
		return salonLayout(photos, wall, margin, rng), nil
	case gallery.ModeRow:
		return rowLayout(photos, wall, margin), nil
	case gallery.ModeSymmetric:
		return symmetricLayout(photos, wall, margin), nil
	}
	// Unreachable: the mode set is closed and checked above.
	return nil, errors.New(errors.ErrCodeInternal, "unhandled layout mode %q", mode)
}

// newFrame builds a frame for the photo with extents floored to minFrameSize.
func newFrame(photo gallery.Photo, x, y, w, h, rotation float64) gallery.Frame {
	return gallery.Frame{
		ID:       gallery.NewFrameID(),
		PhotoID:  photo.ID,
		X:        x,
		Y:        y,
		Width:    max(w, minFrameSize),
		Height:   max(h, minFrameSize),
		Rotation: rotation,
	}
}
