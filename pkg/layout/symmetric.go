package layout

import "github.com/tkrause/wallery/pkg/gallery"

// symmetricLayout places a single row mirrored about the wall's vertical
// center axis, pairing frames outward from the center. Heights and margins
// follow the row mode conventions.
//
// With an odd photo count the first photo sits centered and the remaining
// photos pair up around it; with an even count the first pair straddles
// the axis with half a margin on each side. Within each pair the inner
// edges are equidistant from the axis, so same-sized photos mirror
// exactly.
func symmetricLayout(photos gallery.PhotoSet, wall gallery.Wall, margin float64) []gallery.Frame {
	h := max(wall.Height-2*margin, minFrameSize)
	center := wall.Width / 2

	frames := make([]gallery.Frame, len(photos))
	rest := photos

	var left, right float64 // cursors: next inner edge on each side
	if len(photos)%2 == 1 {
		w := max(h*photos[0].AspectRatio(), minFrameSize)
		frames[0] = newFrame(photos[0], center-w/2, margin, w, h, 0)
		left = center - w/2 - margin
		right = center + w/2 + margin
		rest = photos[1:]
	} else {
		left = center - margin/2
		right = center + margin/2
	}

	for i := 0; i < len(rest); i += 2 {
		idx := len(photos) - len(rest) + i

		lw := max(h*rest[i].AspectRatio(), minFrameSize)
		frames[idx] = newFrame(rest[i], left-lw, margin, lw, h, 0)
		left -= lw + margin

		if i+1 < len(rest) {
			rw := max(h*rest[i+1].AspectRatio(), minFrameSize)
			frames[idx+1] = newFrame(rest[i+1], right, margin, rw, h, 0)
			right += rw + margin
		}
	}
	return frames
}
