// Package server implements the wall preview HTTP server.
//
// The server exposes the current arrangement over plain HTTP so another
// device on the network (typically a phone held up against the real wall)
// can preview it live. It serves the plan document, individual frame
// read/write operations backed by the shared FrameStore, collision
// queries, layout regeneration, and the rendered composite.
//
// All frame mutations go through gallery.FrameStore, so concurrent
// requests see consistent snapshots.
package server

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/tkrause/wallery/pkg/errors"
	"github.com/tkrause/wallery/pkg/gallery"
	"github.com/tkrause/wallery/pkg/layout"
	"github.com/tkrause/wallery/pkg/render"
)

// Server serves a wall plan for live preview and editing.
//
// Frames are guarded by the store's own lock; the rest of the plan
// document (wall, photos, mode, seed) is guarded by mu since regeneration
// rewrites mode and seed while other handlers snapshot the plan.
type Server struct {
	mu     sync.RWMutex
	plan   gallery.Plan // wall, photos, and layout options; frames live in store
	store  *gallery.FrameStore
	logger *log.Logger
}

// New creates a server for the given plan. The plan's frames seed the
// store; afterwards the store is authoritative and the plan's Frames
// field is only refreshed on snapshot/save.
func New(plan gallery.Plan, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		plan:   plan,
		store:  gallery.NewFrameStore(plan.Frames),
		logger: logger,
	}
}

// Store exposes the frame store (used by the serve command for saving).
func (s *Server) Store() *gallery.FrameStore {
	return s.store
}

// Snapshot returns the plan with the store's current frames.
func (s *Server) Snapshot() gallery.Plan {
	s.mu.RLock()
	p := s.plan
	s.mu.RUnlock()
	p.Frames = s.store.Frames()
	return p
}

// Router builds the HTTP routing table.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/plan", s.handleGetPlan)
	r.Post("/layout", s.handleRegenerate)
	r.Get("/preview.png", s.handlePreview)
	r.Get("/collisions", s.handleCollisions)

	r.Route("/frames", func(r chi.Router) {
		r.Get("/", s.handleListFrames)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.handleGetFrame)
			r.Put("/", s.handleUpdateFrame)
			r.Delete("/", s.handleDeleteFrame)
		})
	})

	return r
}

// =============================================================================
// Handlers
// =============================================================================

func (s *Server) handleGetPlan(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.Snapshot())
}

func (s *Server) handleListFrames(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Frames())
}

func (s *Server) handleGetFrame(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	frame, ok := s.store.Get(id)
	if !ok {
		writeError(w, errors.New(errors.ErrCodeFrameNotFound, "no frame with id %q", id))
		return
	}
	writeJSON(w, http.StatusOK, frame)
}

func (s *Server) handleUpdateFrame(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var frame gallery.Frame
	if err := json.NewDecoder(r.Body).Decode(&frame); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode frame body"))
		return
	}
	frame.ID = id // the URL is authoritative

	if frame.Width <= 0 || frame.Height <= 0 {
		writeError(w, errors.New(errors.ErrCodeInvalidDimensions,
			"frame size must be positive, got %gx%g", frame.Width, frame.Height))
		return
	}

	if err := s.store.Update(frame); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, frame)
}

func (s *Server) handleDeleteFrame(w http.ResponseWriter, r *http.Request) {
	s.store.Remove(chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

// regenerateRequest is the body of POST /layout.
type regenerateRequest struct {
	Mode string `json:"mode"`
	Seed uint64 `json:"seed,omitempty"`
}

func (s *Server) handleRegenerate(w http.ResponseWriter, r *http.Request) {
	var req regenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode layout request"))
		return
	}

	mode, err := gallery.ParseMode(req.Mode)
	if err != nil {
		writeError(w, err)
		return
	}
	seed := req.Seed
	if seed == 0 {
		seed = layout.DefaultSeed
	}

	s.mu.RLock()
	photos, wall, margin := s.plan.Photos, s.plan.Wall, s.plan.Margin
	s.mu.RUnlock()

	frames, err := layout.Generate(photos, wall, mode, layout.NewSource(seed),
		&layout.Options{Margin: margin})
	if err != nil {
		writeError(w, err)
		return
	}

	s.store.ReplaceAll(frames)
	s.mu.Lock()
	s.plan.Mode = mode
	s.plan.Seed = seed
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, s.Snapshot())
}

func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	img, err := render.Composite(s.Snapshot(), nil)
	if err != nil {
		writeError(w, err)
		return
	}
	data, err := render.EncodePNG(img)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// collisionPair names one overlapping frame pair.
type collisionPair struct {
	A string `json:"a"`
	B string `json:"b"`
}

func (s *Server) handleCollisions(w http.ResponseWriter, r *http.Request) {
	pairs := s.store.CollidingPairs()
	out := make([]collisionPair, len(pairs))
	for i, p := range pairs {
		out[i] = collisionPair{A: p[0].ID, B: p[1].ID}
	}
	writeJSON(w, http.StatusOK, out)
}

// =============================================================================
// Helpers
// =============================================================================

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r)
		s.logger.Debug("request", "method", r.Method, "path", r.URL.Path)
	})
}

// errorResponse is the JSON error body.
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.ErrCodeFrameNotFound, errors.ErrCodePhotoNotFound, errors.ErrCodeNotFound:
		status = http.StatusNotFound
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidDimensions,
		errors.ErrCodeInvalidMode, errors.ErrCodeInvalidFormat:
		status = http.StatusBadRequest
	}
	writeJSON(w, status, errorResponse{
		Error: errors.UserMessage(err),
		Code:  string(errors.GetCode(err)),
	})
}
