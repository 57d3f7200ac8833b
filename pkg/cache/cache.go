// Package cache provides content-addressed caching for the wallery
// pipeline: scanned photo sets, computed layouts, and rendered composites.
//
// Keys are built by a Keyer from content hashes plus the options that
// influence the result, so changing the wall size or the random seed
// naturally misses the cache while a repeated run hits it.
package cache

import (
	"context"
	"time"
)

// TTLs for the different cached artifacts. Photo sets and layouts are
// cheap to recompute, composites are not; everything uses the same
// generous window since cache directories are user-clearable.
const (
	TTLPhotos   = 24 * time.Hour
	TTLLayout   = 7 * 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)

// Cache is the storage interface for cached pipeline results.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key
	// was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with a TTL. A zero TTL means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// =============================================================================
// Keyer
// =============================================================================

// LayoutKeyOpts are the options that affect layout computation.
type LayoutKeyOpts struct {
	Mode   string
	Width  float64
	Height float64
	Margin float64
	Seed   uint64
}

// ArtifactKeyOpts are the options that affect composite rendering.
type ArtifactKeyOpts struct {
	Format     string
	Scale      float64
	Background string
	Matte      float64
	Shadow     bool
}

// Keyer generates cache keys for the pipeline stages.
type Keyer interface {
	// PhotosKey generates a key for a scanned photo set.
	PhotosKey(dir string) string

	// LayoutKey generates a key for a computed layout, from the content
	// hash of the photo set and the layout options.
	LayoutKey(photosHash string, opts LayoutKeyOpts) string

	// ArtifactKey generates a key for a rendered composite, from the
	// content hash of the plan and the render options.
	ArtifactKey(planHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer is the standard key scheme.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// PhotosKey generates a key for a scanned photo set.
func (k *DefaultKeyer) PhotosKey(dir string) string {
	return hashKey("photos", dir)
}

// LayoutKey generates a key for a computed layout.
func (k *DefaultKeyer) LayoutKey(photosHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", photosHash, opts)
}

// ArtifactKey generates a key for a rendered composite.
func (k *DefaultKeyer) ArtifactKey(planHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", planHash, opts)
}
