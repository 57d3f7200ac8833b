package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tkrause/wallery/pkg/cache"
	"github.com/tkrause/wallery/pkg/gallery"
	"github.com/tkrause/wallery/pkg/layout"
	"github.com/tkrause/wallery/pkg/observability"
	"github.com/tkrause/wallery/pkg/photos"
	"github.com/tkrause/wallery/pkg/render"
)

// Runner encapsulates pipeline execution with caching.
// Both the CLI and the preview server use this to avoid duplicating
// caching logic.
//
// The Runner is stateless except for the cache and logger: it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete scan → layout → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Scan
	scanStart := time.Now()
	set, scanHit, err := r.ScanWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}
	result.Stats.ScanTime = time.Since(scanStart)
	result.Stats.PhotoCount = len(set)
	result.CacheInfo.ScanHit = scanHit

	r.Logger.Info("scanned photos",
		"photos", len(set),
		"duration", result.Stats.ScanTime)

	// Stage 2: Layout
	layoutStart := time.Now()
	plan, layoutHit, err := r.GenerateLayoutWithCacheInfo(ctx, set, opts)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Plan = plan
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.Stats.FrameCount = len(plan.Frames)
	result.CacheInfo.LayoutHit = layoutHit

	if data, err := gallery.MarshalPlan(plan); err == nil {
		result.PlanHash = cache.Hash(data)
	}

	r.Logger.Info("computed layout",
		"mode", plan.Mode,
		"frames", len(plan.Frames),
		"duration", result.Stats.LayoutTime)

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, plan, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered composites",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// ScanWithCacheInfo imports the photo directory with caching and returns
// cache hit info.
func (r *Runner) ScanWithCacheInfo(ctx context.Context, opts Options) (gallery.PhotoSet, bool, error) {
	if err := opts.ValidateForScan(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	cacheKey := r.Keyer.PhotosKey(opts.Dir)

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			var set gallery.PhotoSet
			if err := json.Unmarshal(data, &set); err == nil {
				observability.Cache().OnCacheHit(ctx, "photos")
				return set, true, nil // Cache hit
			}
		}
	}
	observability.Cache().OnCacheMiss(ctx, "photos")

	observability.Pipeline().OnScanStart(ctx, opts.Dir)
	start := time.Now()
	set, err := photos.Scan(ctx, opts.Dir, nil)
	observability.Pipeline().OnScanComplete(ctx, opts.Dir, len(set), time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	if data, err := json.Marshal(set); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLPhotos)
		observability.Cache().OnCacheSet(ctx, "photos", len(data))
	}

	return set, false, nil // Cache miss
}

// Scan is a convenience wrapper that discards the cache hit info.
func (r *Runner) Scan(ctx context.Context, opts Options) (gallery.PhotoSet, error) {
	set, _, err := r.ScanWithCacheInfo(ctx, opts)
	return set, err
}

// GenerateLayoutWithCacheInfo computes a plan with caching and returns
// cache hit info.
func (r *Runner) GenerateLayoutWithCacheInfo(ctx context.Context, set gallery.PhotoSet, opts Options) (gallery.Plan, bool, error) {
	if err := opts.ValidateForLayout(); err != nil {
		return gallery.Plan{}, false, err
	}
	r.applyLogger(&opts)

	// Compute cache key from the photo set content
	setData, _ := json.Marshal(set)
	setHash := cache.Hash(setData)
	cacheKey := r.Keyer.LayoutKey(setHash, opts.LayoutKeyOpts())

	// Try cache first
	if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
		cached, err := gallery.UnmarshalPlan(data)
		if err == nil {
			observability.Cache().OnCacheHit(ctx, "layout")
			return cached, true, nil // Cache hit
		}
		// If deserialization fails, fall through to recompute
	}
	observability.Cache().OnCacheMiss(ctx, "layout")

	// Generate layout
	observability.Pipeline().OnLayoutStart(ctx, string(opts.Mode), len(set))
	start := time.Now()
	rng := layout.NewSource(opts.Seed)
	frames, err := layout.Generate(set, opts.Wall(), opts.Mode, rng, opts.LayoutOptions())
	observability.Pipeline().OnLayoutComplete(ctx, string(opts.Mode), time.Since(start), err)
	if err != nil {
		return gallery.Plan{}, false, err
	}
	plan := gallery.Plan{
		Wall:   opts.Wall(),
		Mode:   opts.Mode,
		Margin: opts.Margin,
		Seed:   opts.Seed,
		Photos: set,
		Frames: frames,
	}

	// Cache the result
	if data, err := gallery.MarshalPlan(plan); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLLayout)
		observability.Cache().OnCacheSet(ctx, "layout", len(data))
	}

	return plan, false, nil // Cache miss
}

// GenerateLayout is a convenience wrapper that discards the cache hit info.
func (r *Runner) GenerateLayout(ctx context.Context, set gallery.PhotoSet, opts Options) (gallery.Plan, error) {
	plan, _, err := r.GenerateLayoutWithCacheInfo(ctx, set, opts)
	return plan, err
}

// RenderWithCacheInfo renders composites with caching and returns cache
// hit info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, plan gallery.Plan, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	// Compute cache key from plan content
	planData, err := gallery.MarshalPlan(plan)
	if err != nil {
		return nil, false, fmt.Errorf("serialize plan for cache key: %w", err)
	}
	planHash := cache.Hash(planData)

	// Try to get all formats from cache
	allCached := true
	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		cacheKey := r.Keyer.ArtifactKey(planHash, opts.ArtifactKeyOpts(format))
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			artifacts[format] = data
		} else {
			allCached = false
			break
		}
	}

	if allCached && len(artifacts) == len(opts.Formats) {
		observability.Cache().OnCacheHit(ctx, "artifact")
		return artifacts, true, nil // All artifacts from cache
	}
	observability.Cache().OnCacheMiss(ctx, "artifact")

	// Render once, encode per format
	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	start := time.Now()
	img, err := render.Composite(plan, opts.RenderOptions())
	if err != nil {
		observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
		return nil, false, err
	}

	rendered := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		data, err := render.Encode(img, format)
		if err != nil {
			observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
			return nil, false, err
		}
		rendered[format] = data

		cacheKey := r.Keyer.ArtifactKey(planHash, opts.ArtifactKeyOpts(format))
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact)
		observability.Cache().OnCacheSet(ctx, "artifact", len(data))
	}
	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(start), nil)

	return rendered, false, nil // Cache miss
}

// Render is a convenience wrapper that discards the cache hit info.
func (r *Runner) Render(ctx context.Context, plan gallery.Plan, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, plan, opts)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
