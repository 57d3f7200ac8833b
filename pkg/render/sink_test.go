package render

import (
	"bytes"
	"image"
	"testing"

	"github.com/tkrause/wallery/pkg/errors"
)

func testImage() image.Image {
	return image.NewRGBA(image.Rect(0, 0, 20, 10))
}

func TestEncodePNG(t *testing.T) {
	data, err := EncodePNG(testImage())
	if err != nil {
		t.Fatalf("EncodePNG() error: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Error("EncodePNG() output missing PNG signature")
	}
}

func TestEncodeJPEG(t *testing.T) {
	data, err := EncodeJPEG(testImage(), DefaultJPEGQuality)
	if err != nil {
		t.Fatalf("EncodeJPEG() error: %v", err)
	}
	if !bytes.HasPrefix(data, []byte{0xFF, 0xD8}) {
		t.Error("EncodeJPEG() output missing JPEG signature")
	}
}

func TestEncodeJPEGClampsQuality(t *testing.T) {
	// Out-of-range qualities are clamped, not rejected.
	for _, q := range []int{-10, 0, 101, 500} {
		if _, err := EncodeJPEG(testImage(), q); err != nil {
			t.Errorf("EncodeJPEG(quality=%d) error: %v", q, err)
		}
	}
}

func TestEncode(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"png", false},
		{"jpeg", false},
		{"svg", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run("format "+tt.format, func(t *testing.T) {
			_, err := Encode(testImage(), tt.format)
			if (err != nil) != tt.wantErr {
				t.Errorf("Encode(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, errors.ErrCodeInvalidFormat) {
				t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidFormat)
			}
		})
	}
}
