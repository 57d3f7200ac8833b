// Package gallery defines the core data model for photo wall arrangements.
//
// The model has four pieces:
//
//   - Photo: an imported image with its natural pixel dimensions
//   - Wall: the bounded 2D coordinate space frames are placed into
//   - Frame: a placed rectangle referencing one photo, with position,
//     size, and rotation
//   - Plan: the serialized project document (wall + photos + frames)
//
// FrameStore holds the authoritative frame list during interactive editing
// and serves the mutation and collision-query operations. Collision checks
// use axis-aligned bounding boxes and deliberately ignore rotation.
//
// All coordinates are in wall units (pixels at 1x render scale), with the
// origin at the top-left corner and y growing downward.
package gallery
