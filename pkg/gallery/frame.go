package gallery

import "github.com/google/uuid"

// Frame is a placed rectangle on the wall referencing one photo.
// Rotation is in degrees, clockwise positive, applied about the frame
// center by renderers; it is ignored by collision checks.
type Frame struct {
	ID       string  `json:"id" bson:"id"`
	PhotoID  string  `json:"photo_id" bson:"photo_id"`
	X        float64 `json:"x" bson:"x"`
	Y        float64 `json:"y" bson:"y"`
	Width    float64 `json:"width" bson:"width"`
	Height   float64 `json:"height" bson:"height"`
	Rotation float64 `json:"rotation,omitempty" bson:"rotation,omitempty"`
}

// NewFrameID generates a fresh unique frame identifier.
func NewFrameID() string {
	return uuid.NewString()
}

// Rect returns the frame's unrotated bounding box.
func (f Frame) Rect() Rect {
	return Rect{X: f.X, Y: f.Y, Width: f.Width, Height: f.Height}
}

// Collides reports whether two frames' bounding boxes overlap.
// This is the single overlap check used by the store, the editor, and the
// preview server. Rotation is deliberately ignored: a rotated frame is
// tested by its unrotated bounds, a known approximation.
func Collides(a, b Frame) bool {
	return a.Rect().Overlaps(b.Rect())
}
