// Package pipeline provides the core arrangement pipeline for Wallery.
//
// This package implements the complete scan → layout → render pipeline
// used by both the CLI and the preview server. Centralizing it keeps
// behavior consistent across entry points and avoids duplicating the
// caching logic.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Scan: Import photos from a directory, resolving natural dimensions
//  2. Layout: Place one frame per photo on the wall with the chosen mode
//  3. Render: Rasterize the arrangement to composite images
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Dir:     "./photos",
//	    Mode:    "grid",
//	    Formats: []string{"png"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	png := result.Artifacts["png"]
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tkrause/wallery/pkg/cache"
	"github.com/tkrause/wallery/pkg/errors"
	"github.com/tkrause/wallery/pkg/gallery"
	"github.com/tkrause/wallery/pkg/layout"
	"github.com/tkrause/wallery/pkg/render"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Server
// =============================================================================

const (
	// DefaultWallWidth is the default wall width in wall units.
	DefaultWallWidth = 1200.0

	// DefaultWallHeight is the default wall height in wall units.
	DefaultWallHeight = 800.0

	// DefaultSeed is the default random seed for reproducibility.
	DefaultSeed = layout.DefaultSeed

	// DefaultMargin is the default frame spacing.
	DefaultMargin = layout.DefaultMargin
)

// DefaultMode is the default layout mode.
const DefaultMode = gallery.ModeGrid

// Format constants for output formats.
const (
	FormatPNG  = "png"
	FormatJPEG = "jpeg"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatPNG:  true,
	FormatJPEG: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the arrangement pipeline.
// This struct supports JSON serialization for server requests.
type Options struct {
	// Scan options
	Dir     string `json:"dir,omitempty"`
	Refresh bool   `json:"refresh,omitempty"`

	// Layout options
	WallWidth  float64      `json:"wall_width,omitempty"`
	WallHeight float64      `json:"wall_height,omitempty"`
	Mode       gallery.Mode `json:"mode,omitempty"`
	Margin     float64      `json:"margin,omitempty"`
	Seed       uint64       `json:"seed,omitempty"`

	// Render options
	Formats    []string `json:"formats,omitempty"`
	Scale      float64  `json:"scale,omitempty"`
	Background string   `json:"background,omitempty"`
	Matte      float64  `json:"matte,omitempty"`
	Shadow     bool     `json:"shadow,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Plan is the complete arrangement document.
	Plan gallery.Plan

	// PlanHash is the content hash of the plan.
	PlanHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	PhotoCount int
	FrameCount int
	ScanTime   time.Duration
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	ScanHit   bool // Whether the photo set came from cache
	LayoutHit bool // Whether the layout came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: png, jpeg)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for
// the full pipeline. Idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForScan(); err != nil {
		return err
	}
	o.SetLayoutDefaults()
	if err := o.ValidateForLayout(); err != nil {
		return err
	}
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForScan checks required fields for scanning.
func (o *Options) ValidateForScan() error {
	if o.Dir == "" {
		return errors.New(errors.ErrCodeInvalidInput, "photo directory is required")
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// SetLayoutDefaults sets default values for layout computation.
func (o *Options) SetLayoutDefaults() {
	if o.WallWidth == 0 {
		o.WallWidth = DefaultWallWidth
	}
	if o.WallHeight == 0 {
		o.WallHeight = DefaultWallHeight
	}
	if o.Mode == "" {
		o.Mode = DefaultMode
	}
	if o.Margin == 0 {
		o.Margin = DefaultMargin
	}
	if o.Seed == 0 {
		o.Seed = DefaultSeed
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForLayout validates and sets defaults for layout computation.
func (o *Options) ValidateForLayout() error {
	o.SetLayoutDefaults()
	if _, err := gallery.ParseMode(string(o.Mode)); err != nil {
		return err
	}
	return o.Wall().Validate()
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatPNG}
	}
	if o.Scale == 0 {
		o.Scale = render.DefaultScale
	}
	if o.Background == "" {
		o.Background = render.DefaultBackground
	}
	if o.Matte == 0 {
		o.Matte = render.DefaultMatte
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	return ValidateFormats(o.Formats)
}

// Wall returns the wall described by the options.
func (o *Options) Wall() gallery.Wall {
	return gallery.Wall{Width: o.WallWidth, Height: o.WallHeight}
}

// LayoutOptions returns the layout engine options.
func (o *Options) LayoutOptions() *layout.Options {
	return &layout.Options{Margin: o.Margin}
}

// RenderOptions returns the renderer options.
func (o *Options) RenderOptions() *render.Options {
	return &render.Options{
		Scale:      o.Scale,
		Background: o.Background,
		Matte:      o.Matte,
		Shadow:     o.Shadow,
	}
}

// LayoutKeyOpts returns cache key options for layout computation.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{
		Mode:   string(o.Mode),
		Width:  o.WallWidth,
		Height: o.WallHeight,
		Margin: o.Margin,
		Seed:   o.Seed,
	}
}

// ArtifactKeyOpts returns cache key options for composite rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:     format,
		Scale:      o.Scale,
		Background: o.Background,
		Matte:      o.Matte,
		Shadow:     o.Shadow,
	}
}
