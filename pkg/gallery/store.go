package gallery

import (
	"sync"

	"github.com/tkrause/wallery/pkg/errors"
)

// FrameStore holds the authoritative current frame list during interactive
// editing. The list is order-preserving; generation passes replace it
// wholesale via ReplaceAll, user edits go through Update/Remove.
//
// All methods are safe for concurrent use. Reads return consistent
// snapshots; a reader never observes a half-replaced list. The store never
// repositions frames to resolve overlap, it only reports overlap on demand.
type FrameStore struct {
	mu     sync.RWMutex
	frames []Frame
}

// NewFrameStore creates a store seeded with the given frames.
// The slice is copied; the caller keeps ownership of its argument.
func NewFrameStore(frames []Frame) *FrameStore {
	s := &FrameStore{}
	s.ReplaceAll(frames)
	return s
}

// ReplaceAll atomically swaps the entire stored list, discarding the
// previous frames. Used after a fresh layout generation pass.
func (s *FrameStore) ReplaceAll(frames []Frame) {
	next := make([]Frame, len(frames))
	copy(next, frames)

	s.mu.Lock()
	s.frames = next
	s.mu.Unlock()
}

// Frames returns a snapshot copy of the stored frames in order.
func (s *FrameStore) Frames() []Frame {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Frame, len(s.frames))
	copy(out, s.frames)
	return out
}

// Len returns the number of stored frames.
func (s *FrameStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.frames)
}

// Get returns the frame with the given ID, if present.
func (s *FrameStore) Get(id string) (Frame, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, f := range s.frames {
		if f.ID == id {
			return f, true
		}
	}
	return Frame{}, false
}

// Update replaces the stored frame whose ID matches frame.ID, leaving all
// others unchanged and preserving list order. Updating an absent ID is an
// error (FRAME_NOT_FOUND), not a silent no-op: edits address a frame the
// user can see, so a miss means the caller's view is stale.
func (s *FrameStore) Update(frame Frame) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, f := range s.frames {
		if f.ID == frame.ID {
			s.frames[i] = frame
			return nil
		}
	}
	return errors.New(errors.ErrCodeFrameNotFound, "no frame with id %q", frame.ID)
}

// Add appends a frame to the store. The ID must not already be present.
func (s *FrameStore) Add(frame Frame) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, f := range s.frames {
		if f.ID == frame.ID {
			return errors.New(errors.ErrCodeInvalidInput, "duplicate frame id %q", frame.ID)
		}
	}
	s.frames = append(s.frames, frame)
	return nil
}

// Remove deletes the frame with the given ID, leaving the rest in their
// original relative order. Removing an absent ID is a no-op.
func (s *FrameStore) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, f := range s.frames {
		if f.ID == id {
			s.frames = append(s.frames[:i], s.frames[i+1:]...)
			return
		}
	}
}

// FindCollisions returns all other stored frames whose bounding boxes
// overlap the given frame. The frame itself (matched by ID) is excluded.
func (s *FrameStore) FindCollisions(frame Frame) []Frame {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var hits []Frame
	for _, f := range s.frames {
		if f.ID == frame.ID {
			continue
		}
		if Collides(frame, f) {
			hits = append(hits, f)
		}
	}
	return hits
}

// CollidingPairs returns every unordered pair of stored frames that
// overlap, in list order. Used by the collision report.
func (s *FrameStore) CollidingPairs() [][2]Frame {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var pairs [][2]Frame
	for i := 0; i < len(s.frames); i++ {
		for j := i + 1; j < len(s.frames); j++ {
			if Collides(s.frames[i], s.frames[j]) {
				pairs = append(pairs, [2]Frame{s.frames[i], s.frames[j]})
			}
		}
	}
	return pairs
}
