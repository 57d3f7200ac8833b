package layout

import "github.com/tkrause/wallery/pkg/gallery"

// Salon draw constants. The edge inset reserves room on the far edges so
// frames placed near them stay mostly on-canvas; it is not a hard bound.
const (
	salonScaleMin  = 0.8
	salonScaleSpan = 0.4
	salonEdgeInset = 200.0
	salonMaxTilt   = 5.0
)

// salonLayout scatters frames in the loose "salon hang" style: each frame
// keeps its photo's natural size scaled by an independent uniform factor in
// [0.8, 1.2], lands at a uniform position inside the inset bounds, and is
// tilted uniformly within ±5 degrees. Overlap is allowed; the store reports
// collisions on demand but generation never avoids them.
//
// Draw order per frame is scale, x, y, rotation, so a seeded source
// reproduces placements exactly.
func salonLayout(photos gallery.PhotoSet, wall gallery.Wall, margin float64, rng RandomSource) []gallery.Frame {
	spanX := max(wall.Width-salonEdgeInset-margin, 0)
	spanY := max(wall.Height-salonEdgeInset-margin, 0)

	frames := make([]gallery.Frame, len(photos))
	for i, photo := range photos {
		scale := salonScaleMin + rng.Float64()*salonScaleSpan
		w := max(photo.Width, minFrameSize) * scale
		h := max(photo.Height, minFrameSize) * scale
		x := margin + rng.Float64()*spanX
		y := margin + rng.Float64()*spanY
		tilt := -salonMaxTilt + rng.Float64()*2*salonMaxTilt
		frames[i] = newFrame(photo, x, y, w, h, tilt)
	}
	return frames
}
