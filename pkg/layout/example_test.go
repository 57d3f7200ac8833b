package layout_test

import (
	"fmt"

	"github.com/tkrause/wallery/pkg/gallery"
	"github.com/tkrause/wallery/pkg/layout"
)

func ExampleGenerate_grid() {
	// Four landscape photos on a 1200×800 wall: a 2×2 grid.
	photos := gallery.PhotoSet{
		{ID: "p1", Name: "autumn.jpg", Width: 400, Height: 300},
		{ID: "p2", Name: "beach.jpg", Width: 400, Height: 300},
		{ID: "p3", Name: "city.jpg", Width: 400, Height: 300},
		{ID: "p4", Name: "dunes.jpg", Width: 400, Height: 300},
	}
	wall := gallery.Wall{Width: 1200, Height: 800}

	frames, _ := layout.Generate(photos, wall, gallery.ModeGrid, layout.NewSource(42), nil)
	for i, f := range frames {
		fmt.Printf("frame %d at (%.0f, %.0f) %.0f×%.0f\n", i, f.X, f.Y, f.Width, f.Height)
	}
	// Output:
	// frame 0 at (20, 20) 570×370
	// frame 1 at (610, 20) 570×370
	// frame 2 at (20, 410) 570×370
	// frame 3 at (610, 410) 570×370
}

func ExampleGenerate_row() {
	// A single row: uniform height, widths follow each photo's aspect ratio.
	photos := gallery.PhotoSet{
		{ID: "p1", Name: "square.jpg", Width: 500, Height: 500},
		{ID: "p2", Name: "wide.jpg", Width: 800, Height: 400},
	}
	wall := gallery.Wall{Width: 4000, Height: 800}

	frames, _ := layout.Generate(photos, wall, gallery.ModeRow, layout.NewSource(42), nil)
	for i, f := range frames {
		fmt.Printf("frame %d at (%.0f, %.0f) %.0f×%.0f\n", i, f.X, f.Y, f.Width, f.Height)
	}
	// Output:
	// frame 0 at (20, 20) 760×760
	// frame 1 at (800, 20) 1520×760
}
