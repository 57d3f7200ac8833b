package layout

import "github.com/tkrause/wallery/pkg/gallery"

// rowLayout places frames in a single row, left to right. Every frame gets
// the uniform height that fits the wall minus margins; widths follow each
// photo's aspect ratio so nothing is cropped. The row starts at the margin
// and may extend past the right edge for large sets; it never wraps.
func rowLayout(photos gallery.PhotoSet, wall gallery.Wall, margin float64) []gallery.Frame {
	h := max(wall.Height-2*margin, minFrameSize)

	frames := make([]gallery.Frame, len(photos))
	x := margin
	for i, photo := range photos {
		w := h * photo.AspectRatio()
		frames[i] = newFrame(photo, x, margin, w, h, 0)
		x += max(w, minFrameSize) + margin
	}
	return frames
}
