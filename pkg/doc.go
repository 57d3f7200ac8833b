// Package pkg provides the core libraries for Wallery photo wall arrangement.
//
// # Overview
//
// Wallery turns a directory of photos into a framed arrangement on a bounded
// wall and renders the result as a composite image. The pkg directory is
// organized into three main areas:
//
//  1. Domain logic - photo import, layout modes, collision queries, rendering
//  2. Infrastructure - caching, structured errors, observability hooks
//  3. Orchestration - the scan → layout → render pipeline
//
// # Architecture
//
// The typical data flow through Wallery:
//
//	Photo Directory
//	         ↓
//	    [photos] package (scan + decode dimensions)
//	         ↓
//	    [layout] package (place one frame per photo)
//	         ↓
//	    [gallery] package (plan document + frame store)
//	         ↓
//	    [render] package (composite rasterization)
//	         ↓
//	    PNG/JPEG output
//
// # Quick Start
//
// Run the complete pipeline:
//
//	import (
//	    "context"
//	    "github.com/tkrause/wallery/pkg/pipeline"
//	)
//
//	runner := pipeline.NewRunner(nil, nil, nil)
//	result, _ := runner.Execute(context.Background(), pipeline.Options{
//	    Dir:  "./photos",
//	    Mode: "salon",
//	})
//	png := result.Artifacts["png"]
//
// # Main Packages
//
// ## Domain Logic
//
// [photos] - Concurrent photo directory scanning. Decodes PNG, JPEG, GIF,
// and WebP headers to resolve natural dimensions.
//
// [layout] - Layout mode implementations (grid, salon, row, symmetric).
// All modes are deterministic for a given photo set and seed.
//
// [gallery] - Core domain types: photos, walls, frames, plans, and the
// concurrency-safe FrameStore with collision queries.
//
// [render] - Composite rasterization with gg. Draws matte, shadow, and
// rotation per frame; encodes to PNG or JPEG.
//
// ## Infrastructure
//
// [cache] - Content-addressed caching for scan results, layouts, and
// rendered artifacts. FileCache for the CLI, NullCache to disable.
//
// [errors] - Structured errors with machine-readable codes, shared across
// the CLI and the preview server.
//
// [observability] - Optional hooks for metrics and tracing without hard
// backend dependencies.
//
// ## Orchestration
//
// [pipeline] - Complete arrangement pipeline (scan → layout → render) used
// by the CLI and the preview server. Ensures consistent behavior across
// entry points.
//
// # Common Workflows
//
// Compute a layout without rendering:
//
//	set, _ := runner.Scan(ctx, opts)
//	plan, _ := runner.GenerateLayout(ctx, set, opts)
//
// Edit frames and query collisions:
//
//	store := gallery.NewFrameStore(plan.Frames)
//	frame, _ := store.Get(id)
//	frame.X += 40
//	_ = store.Update(frame)
//	pairs := store.CollidingPairs()
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...           # All tests
//	go test ./pkg/layout/...    # Specific package
//
// [photos]: https://pkg.go.dev/github.com/tkrause/wallery/pkg/photos
// [layout]: https://pkg.go.dev/github.com/tkrause/wallery/pkg/layout
// [gallery]: https://pkg.go.dev/github.com/tkrause/wallery/pkg/gallery
// [render]: https://pkg.go.dev/github.com/tkrause/wallery/pkg/render
// [cache]: https://pkg.go.dev/github.com/tkrause/wallery/pkg/cache
// [errors]: https://pkg.go.dev/github.com/tkrause/wallery/pkg/errors
// [observability]: https://pkg.go.dev/github.com/tkrause/wallery/pkg/observability
// [pipeline]: https://pkg.go.dev/github.com/tkrause/wallery/pkg/pipeline
package pkg
