package gallery

import (
	"encoding/json"
	"fmt"
	"os"
)

// =============================================================================
// Plan - Serialized Project Document
// =============================================================================

// Plan is the serialized wall arrangement: the wall, the imported photo
// set, and the placed frames, together with the options that produced the
// placement (mode, margin, seed) so a layout can be reproduced.
//
// The scan command writes a Plan holding photos only; the layout command
// fills in the wall, mode, and frames. Render and serve consume the full
// document.
type Plan struct {
	Wall   Wall    `json:"wall" bson:"wall"`
	Mode   Mode    `json:"mode,omitempty" bson:"mode,omitempty"`
	Margin float64 `json:"margin,omitempty" bson:"margin,omitempty"`
	Seed   uint64  `json:"seed,omitempty" bson:"seed,omitempty"`

	Photos PhotoSet `json:"photos,omitempty" bson:"photos,omitempty"`
	Frames []Frame  `json:"frames,omitempty" bson:"frames,omitempty"`
}

// DanglingFrames returns the frames whose PhotoID does not resolve against
// the plan's photo set. The layout generator never produces these, but
// photos can be removed out of band; renderers skip them silently and this
// helper lets commands warn about them instead.
func (p *Plan) DanglingFrames() []Frame {
	idx := p.Photos.ByID()
	var dangling []Frame
	for _, f := range p.Frames {
		if _, ok := idx[f.PhotoID]; !ok {
			dangling = append(dangling, f)
		}
	}
	return dangling
}

// =============================================================================
// Plan Serialization API
// =============================================================================

// MarshalPlan serializes a Plan to pretty-printed JSON bytes.
func MarshalPlan(p Plan) ([]byte, error) {
	return json.MarshalIndent(p, "", "  ")
}

// UnmarshalPlan deserializes JSON bytes into a Plan.
// Validates that the document is internally consistent: a recognized mode
// token if one is set, positive wall dimensions if frames are present, and
// strictly positive frame extents.
func UnmarshalPlan(data []byte) (Plan, error) {
	var p Plan
	if err := json.Unmarshal(data, &p); err != nil {
		return Plan{}, fmt.Errorf("unmarshal plan: %w", err)
	}

	if p.Mode != "" && !ValidModes[p.Mode] {
		return Plan{}, fmt.Errorf("plan has unknown layout mode %q", p.Mode)
	}
	if len(p.Frames) > 0 {
		if err := p.Wall.Validate(); err != nil {
			return Plan{}, fmt.Errorf("plan with frames: %w", err)
		}
	}
	for _, f := range p.Frames {
		if f.Width <= 0 || f.Height <= 0 {
			return Plan{}, fmt.Errorf("frame %s has non-positive size %gx%g", f.ID, f.Width, f.Height)
		}
	}

	return p, nil
}

// WritePlanFile writes a Plan to a JSON file.
func WritePlanFile(p Plan, path string) error {
	data, err := MarshalPlan(p)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadPlanFile reads a Plan from a JSON file.
func ReadPlanFile(path string) (Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Plan{}, fmt.Errorf("read %s: %w", path, err)
	}
	return UnmarshalPlan(data)
}
