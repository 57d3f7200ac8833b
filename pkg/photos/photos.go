// Package photos implements the photo ingestion boundary: scanning a
// directory of image files and resolving each file's natural pixel
// dimensions. Only headers are decoded here; full pixel data is read later
// by the renderer.
package photos

import (
	"context"
	"image"
	"os"
	"path/filepath"
	"sort"
	"strings"

	// Registered decoders for image.DecodeConfig. The webp decoder comes
	// from x/image; the stdlib covers jpeg/png/gif.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/tkrause/wallery/pkg/errors"
	"github.com/tkrause/wallery/pkg/gallery"
)

// DefaultConcurrency bounds parallel header decoding during a scan.
const DefaultConcurrency = 8

// supportedExt lists the file extensions the scanner picks up.
var supportedExt = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// ScanOptions configures a directory scan.
type ScanOptions struct {
	// Concurrency bounds parallel decoding; DefaultConcurrency when zero.
	Concurrency int
}

// Scan walks dir (non-recursively), decodes the dimensions of every
// supported image file, and returns the photos ordered by filename so
// repeated scans of the same directory produce identical photo ordering.
// Each photo gets a freshly generated unique ID.
//
// A file that fails to decode fails the whole scan with INVALID_PHOTO;
// partial photo sets are never returned.
func Scan(ctx context.Context, dir string, opts *ScanOptions) (gallery.PhotoSet, error) {
	concurrency := DefaultConcurrency
	if opts != nil && opts.Concurrency > 0 {
		concurrency = opts.Concurrency
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "photo directory %s", dir)
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "read photo directory %s", dir)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if supportedExt[strings.ToLower(filepath.Ext(e.Name()))] {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(paths)

	photos := make(gallery.PhotoSet, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			w, h, err := decodeDimensions(path)
			if err != nil {
				return err
			}
			name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
			photos[i] = gallery.Photo{
				ID:     uuid.NewString(),
				Name:   name,
				Path:   path,
				Width:  w,
				Height: h,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return photos, nil
}

// decodeDimensions reads just enough of the file to learn its pixel size.
func decodeDimensions(path string) (w, h float64, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, errors.Wrap(errors.ErrCodeInvalidPhoto, err, "decode %s", path)
	}
	return float64(cfg.Width), float64(cfg.Height), nil
}
