package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tkrause/wallery/pkg/gallery"
)

func testPlan() gallery.Plan {
	return gallery.Plan{
		Wall: gallery.Wall{Width: 1000, Height: 800},
		Mode: gallery.ModeGrid,
		Photos: gallery.PhotoSet{
			{ID: "p1", Name: "beach.jpg", Width: 400, Height: 300},
			{ID: "p2", Name: "city.jpg", Width: 300, Height: 300},
		},
		Frames: []gallery.Frame{
			{ID: "f1", PhotoID: "p1", X: 100, Y: 100, Width: 200, Height: 150},
			{ID: "f2", PhotoID: "p2", X: 500, Y: 100, Width: 150, Height: 150},
		},
	}
}

func TestArrangeModelNudge(t *testing.T) {
	m := NewArrangeModel(testPlan(), 10)

	m = m.nudge(10, -10)

	frame, ok := m.Store.Get("f1")
	if !ok {
		t.Fatal("frame f1 missing")
	}
	if frame.X != 110 || frame.Y != 90 {
		t.Errorf("frame at (%v, %v), want (110, 90)", frame.X, frame.Y)
	}
	if !m.Dirty {
		t.Error("nudge should mark the model dirty")
	}
}

func TestArrangeModelNudgeClampsToWall(t *testing.T) {
	m := NewArrangeModel(testPlan(), 10)

	// Push far past the left edge
	for i := 0; i < 50; i++ {
		m = m.nudge(-100, 0)
	}

	frame, _ := m.Store.Get("f1")
	if frame.X != 0 {
		t.Errorf("frame X = %v, want clamped to 0", frame.X)
	}

	// And far past the right edge
	for i := 0; i < 50; i++ {
		m = m.nudge(100, 0)
	}

	frame, _ = m.Store.Get("f1")
	if got, want := frame.X, 1000-frame.Width; got != want {
		t.Errorf("frame X = %v, want clamped to %v", got, want)
	}
}

func TestArrangeModelScaleFloor(t *testing.T) {
	m := NewArrangeModel(testPlan(), 10)

	for i := 0; i < 100; i++ {
		m = m.scale(0.5)
	}

	frame, _ := m.Store.Get("f1")
	if frame.Width < 1 || frame.Height < 1 {
		t.Errorf("frame shrunk to %v×%v, sizes must stay at least 1", frame.Width, frame.Height)
	}
}

func TestArrangeModelRemove(t *testing.T) {
	m := NewArrangeModel(testPlan(), 10)

	m = m.remove()

	if m.Store.Len() != 1 {
		t.Errorf("Store.Len() = %d, want 1", m.Store.Len())
	}
	if _, ok := m.Store.Get("f1"); ok {
		t.Error("frame f1 should have been removed")
	}
}

func TestArrangeModelRemoveLastAdjustsCursor(t *testing.T) {
	m := NewArrangeModel(testPlan(), 10)
	m.Cursor = 1

	m = m.remove()

	if m.Cursor != 0 {
		t.Errorf("Cursor = %d, want 0 after removing last frame", m.Cursor)
	}
}

func TestArrangeModelSaveQuits(t *testing.T) {
	m := NewArrangeModel(testPlan(), 10)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})

	got, ok := updated.(ArrangeModel)
	if !ok {
		t.Fatal("Update() did not return an ArrangeModel")
	}
	if !got.Saved {
		t.Error("pressing s should mark the model saved")
	}
	if cmd == nil {
		t.Error("pressing s should quit")
	}
}

func TestArrangeModelViewListsFrames(t *testing.T) {
	m := NewArrangeModel(testPlan(), 10)

	view := m.View()
	if view == "" {
		t.Fatal("View() returned empty string")
	}
	for _, want := range []string{"beach.jpg", "city.jpg", "Arrange"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name      string
		v, lo, hi float64
		want      float64
	}{
		{"within range", 5, 0, 10, 5},
		{"below range", -5, 0, 10, 0},
		{"above range", 15, 0, 10, 10},
		{"inverted range returns lo", 5, 10, 0, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := clamp(tt.v, tt.lo, tt.hi); got != tt.want {
				t.Errorf("clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
			}
		})
	}
}
