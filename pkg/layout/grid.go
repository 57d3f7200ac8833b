package layout

import (
	"math"

	"github.com/tkrause/wallery/pkg/gallery"
)

// gridLayout fills a cols x rows grid with uniform cells, margin on all
// sides and between cells. Column count is ceil(sqrt(n)) so the grid stays
// close to square; rows follow from the photo count. Frames fill their
// cells exactly and are not rotated.
func gridLayout(photos gallery.PhotoSet, wall gallery.Wall, margin float64) []gallery.Frame {
	n := len(photos)
	cols := int(math.Ceil(math.Sqrt(float64(n))))
	rows := int(math.Ceil(float64(n) / float64(cols)))

	cellW := (wall.Width - 2*margin - margin*float64(cols-1)) / float64(cols)
	cellH := (wall.Height - 2*margin - margin*float64(rows-1)) / float64(rows)

	frames := make([]gallery.Frame, n)
	for i, photo := range photos {
		row := i / cols
		col := i % cols
		x := margin + float64(col)*(cellW+margin)
		y := margin + float64(row)*(cellH+margin)
		frames[i] = newFrame(photo, x, y, cellW, cellH, 0)
	}
	return frames
}
