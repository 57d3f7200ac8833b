package render

import (
	"bytes"
	"image"
	"image/jpeg"
	"image/png"

	"github.com/tkrause/wallery/pkg/errors"
)

// DefaultJPEGQuality is the encoder quality used for jpeg output.
const DefaultJPEGQuality = 90

// EncodePNG encodes the composite as PNG bytes.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode png")
	}
	return buf.Bytes(), nil
}

// EncodeJPEG encodes the composite as JPEG bytes.
// quality is clamped to [1, 100]; zero means DefaultJPEGQuality.
func EncodeJPEG(img image.Image, quality int) ([]byte, error) {
	if quality == 0 {
		quality = DefaultJPEGQuality
	}
	quality = min(max(quality, 1), 100)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode jpeg")
	}
	return buf.Bytes(), nil
}

// Encode renders img in the given format ("png" or "jpeg").
func Encode(img image.Image, format string) ([]byte, error) {
	switch format {
	case "png":
		return EncodePNG(img)
	case "jpeg", "jpg":
		return EncodeJPEG(img, 0)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "invalid output format: %q", format)
	}
}
