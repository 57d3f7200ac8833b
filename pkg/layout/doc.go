// Package layout implements the auto-placement algorithms that arrange a
// photo set into frames on a wall.
//
// Generate is a pure function of its inputs: the deterministic modes
// (grid, row, symmetric) always produce identical placements for identical
// input, and the randomized salon mode draws every value from an injected
// RandomSource so output is reproducible under a seeded source.
//
// Generation always produces a complete fresh frame list, one frame per
// photo, with freshly generated IDs. It never inspects or preserves an
// existing arrangement; replacing the previous frames is the caller's job
// (typically via gallery.FrameStore.ReplaceAll).
package layout
