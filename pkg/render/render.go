// Package render rasterizes a wall plan into a composite image.
//
// The renderer draws every frame onto a canvas sized to the wall, applying
// each frame's rotation about its center and an optional matte border.
// Frames whose photo reference no longer resolves are skipped silently per
// the export contract; they are reported by gallery.Plan.DanglingFrames,
// not treated as fatal here.
package render

import (
	"image"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/tkrause/wallery/pkg/errors"
	"github.com/tkrause/wallery/pkg/gallery"
)

// Defaults for composite rendering.
const (
	DefaultScale      = 1.0
	DefaultBackground = "#ece7de"
	DefaultMatte      = 6.0

	matteColor       = "#fafafa"
	placeholderColor = "#c9c4ba"
	shadowColor      = "#00000033"
	shadowOffset     = 3.0
)

// Options configures composite rendering.
type Options struct {
	// Scale multiplies all wall coordinates; 2.0 doubles the output
	// resolution. DefaultScale when zero.
	Scale float64

	// Background is the wall color as a hex string.
	Background string

	// Matte is the border width drawn around each photo, in wall units.
	// Negative disables the matte; zero means DefaultMatte.
	Matte float64

	// Shadow draws a soft drop shadow behind each frame.
	Shadow bool
}

func (o *Options) withDefaults() Options {
	out := Options{Scale: DefaultScale, Background: DefaultBackground, Matte: DefaultMatte}
	if o == nil {
		return out
	}
	if o.Scale > 0 {
		out.Scale = o.Scale
	}
	if o.Background != "" {
		out.Background = o.Background
	}
	if o.Matte != 0 {
		out.Matte = max(o.Matte, 0)
	}
	out.Shadow = o.Shadow
	return out
}

// Composite renders the plan's frames onto a wall-sized canvas and returns
// the resulting image. Photos are loaded from their recorded paths and
// cropped to fill their frames; a photo with no path is drawn as a flat
// placeholder so synthetic plans still preview.
func Composite(plan gallery.Plan, opts *Options) (image.Image, error) {
	if err := plan.Wall.Validate(); err != nil {
		return nil, err
	}
	o := opts.withDefaults()

	dc := gg.NewContext(int(plan.Wall.Width*o.Scale), int(plan.Wall.Height*o.Scale))
	dc.SetHexColor(o.Background)
	dc.Clear()

	idx := plan.Photos.ByID()
	for _, frame := range plan.Frames {
		photo, ok := idx[frame.PhotoID]
		if !ok {
			continue // dangling reference, skipped per export contract
		}
		if err := drawFrame(dc, frame, photo, o); err != nil {
			return nil, err
		}
	}
	return dc.Image(), nil
}

// drawFrame draws one frame, rotated about its center.
func drawFrame(dc *gg.Context, frame gallery.Frame, photo gallery.Photo, o Options) error {
	s := o.Scale
	x, y := frame.X*s, frame.Y*s
	w, h := frame.Width*s, frame.Height*s
	matte := o.Matte * s

	rect := frame.Rect()
	dc.Push()
	dc.RotateAbout(gg.Radians(frame.Rotation), rect.CenterX()*s, rect.CenterY()*s)

	if o.Shadow {
		off := shadowOffset * s
		dc.SetHexColor(shadowColor)
		dc.DrawRectangle(x-matte+off, y-matte+off, w+2*matte, h+2*matte)
		dc.Fill()
	}

	if matte > 0 {
		dc.SetHexColor(matteColor)
		dc.DrawRectangle(x-matte, y-matte, w+2*matte, h+2*matte)
		dc.Fill()
	}

	if photo.Path == "" {
		dc.SetHexColor(placeholderColor)
		dc.DrawRectangle(x, y, w, h)
		dc.Fill()
		dc.Pop()
		return nil
	}

	img, err := imaging.Open(photo.Path)
	if err != nil {
		dc.Pop()
		return errors.Wrap(errors.ErrCodeInvalidPhoto, err, "open %s", photo.Path)
	}
	fitted := imaging.Fill(img, int(w), int(h), imaging.Center, imaging.Lanczos)
	dc.DrawImage(fitted, int(x), int(y))
	dc.Pop()
	return nil
}
