package gallery

import "testing"

func TestRectAccessors(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 100, Height: 50}

	if got := r.Right(); got != 110 {
		t.Errorf("Right() = %v, want 110", got)
	}
	if got := r.Bottom(); got != 70 {
		t.Errorf("Bottom() = %v, want 70", got)
	}
	if got := r.CenterX(); got != 60 {
		t.Errorf("CenterX() = %v, want 60", got)
	}
	if got := r.CenterY(); got != 45 {
		t.Errorf("CenterY() = %v, want 45", got)
	}
}

func TestRectOverlaps(t *testing.T) {
	base := Rect{X: 0, Y: 0, Width: 100, Height: 100}

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"identical", Rect{X: 0, Y: 0, Width: 100, Height: 100}, true},
		{"partial overlap", Rect{X: 50, Y: 50, Width: 100, Height: 100}, true},
		{"contained", Rect{X: 25, Y: 25, Width: 50, Height: 50}, true},
		{"disjoint right", Rect{X: 200, Y: 0, Width: 100, Height: 100}, false},
		{"disjoint below", Rect{X: 0, Y: 200, Width: 100, Height: 100}, false},
		{"touching right edge", Rect{X: 100, Y: 0, Width: 100, Height: 100}, false},
		{"touching bottom edge", Rect{X: 0, Y: 100, Width: 100, Height: 100}, false},
		{"touching corner", Rect{X: 100, Y: 100, Width: 100, Height: 100}, false},
		{"one unit overlap", Rect{X: 99, Y: 0, Width: 100, Height: 100}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Overlaps(tt.other); got != tt.want {
				t.Errorf("Overlaps(%+v) = %v, want %v", tt.other, got, tt.want)
			}
			// Overlap is symmetric
			if got := tt.other.Overlaps(base); got != tt.want {
				t.Errorf("Overlaps() not symmetric for %+v", tt.other)
			}
		})
	}
}

func TestCollides(t *testing.T) {
	a := Frame{ID: "a", X: 0, Y: 0, Width: 100, Height: 100}
	b := Frame{ID: "b", X: 50, Y: 50, Width: 100, Height: 100}
	c := Frame{ID: "c", X: 500, Y: 500, Width: 100, Height: 100}

	if !Collides(a, b) {
		t.Error("Collides(a, b) = false, want true")
	}
	if Collides(a, c) {
		t.Error("Collides(a, c) = true, want false")
	}
}

func TestCollidesIgnoresRotation(t *testing.T) {
	// Collision uses the axis-aligned bounding box; rotation never changes it.
	a := Frame{ID: "a", X: 0, Y: 0, Width: 100, Height: 100, Rotation: 45}
	b := Frame{ID: "b", X: 99, Y: 99, Width: 100, Height: 100, Rotation: -45}

	if !Collides(a, b) {
		t.Error("Collides() should overlap regardless of rotation")
	}
}
