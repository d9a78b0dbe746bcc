package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/aretw0/reps"
	"github.com/aretw0/reps/internal/logging"
	"github.com/aretw0/reps/pkg/rep"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RenderRequest is the body of POST /render and POST /resolve.
type RenderRequest struct {
	Value   any    `json:"value"`
	Mode    string `json:"mode,omitempty"`
	NoGrip  *bool  `json:"no_grip,omitempty"`
	Default string `json:"default,omitempty"`
}

// RenderResponse is returned by POST /render.
type RenderResponse struct {
	Rep    string `json:"rep"`
	Output string `json:"output"`
}

// ResolveResponse is returned by POST /resolve.
type ResolveResponse struct {
	Rep      string   `json:"rep"`
	Type     string   `json:"type"`
	Fallback bool     `json:"fallback"`
	Faults   []string `json:"faults,omitempty"`
}

// DefaultMaxBodyBytes caps request bodies when Server.MaxBodyBytes is unset.
const DefaultMaxBodyBytes = 1 << 20

// Server exposes an Engine over HTTP.
type Server struct {
	Engine *reps.Engine
	// Props are the defaults applied to every request.
	Props    rep.Props
	Logger   *slog.Logger
	Gatherer prometheus.Gatherer
	// MaxBodyBytes bounds POST bodies. Zero means DefaultMaxBodyBytes.
	MaxBodyBytes int64
}

// NewHandler creates the HTTP handler for s.
func NewHandler(s *Server) http.Handler {
	if s.Logger == nil {
		s.Logger = logging.NewNop()
	}
	if s.Gatherer == nil {
		s.Gatherer = prometheus.DefaultGatherer
	}
	if s.MaxBodyBytes <= 0 {
		s.MaxBodyBytes = DefaultMaxBodyBytes
	}

	r := chi.NewRouter()
	r.Get("/health", s.health)
	r.Get("/reps", s.listReps)
	r.Post("/render", s.render)
	r.Post("/resolve", s.resolve)
	r.Handle("/metrics", promhttp.HandlerFor(s.Gatherer, promhttp.HandlerOpts{}))
	return r
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.Logger, map[string]string{"status": "ok", "version": reps.Version})
}

func (s *Server) listReps(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.Logger, map[string]any{"reps": s.Engine.Registry().Names()})
}

func (s *Server) render(w http.ResponseWriter, r *http.Request) {
	req, props, ok := s.decode(w, r)
	if !ok {
		return
	}
	res := s.Engine.Inspect(req.Value, props.Default, props.NoGrip)
	props.Object = req.Value
	if props.Nested == nil {
		props.Nested = s.Engine.Render
	}
	writeJSON(w, s.Logger, RenderResponse{
		Rep:    res.Descriptor.Name(),
		Output: res.Descriptor.Render(props),
	})
}

func (s *Server) resolve(w http.ResponseWriter, r *http.Request) {
	req, props, ok := s.decode(w, r)
	if !ok {
		return
	}
	res := s.Engine.Inspect(req.Value, props.Default, props.NoGrip)
	resp := ResolveResponse{
		Rep:      res.Descriptor.Name(),
		Type:     res.Type,
		Fallback: res.Fallback,
	}
	for _, f := range res.Faults {
		resp.Faults = append(resp.Faults, f.Error())
	}
	writeJSON(w, s.Logger, resp)
}

// decode reads the request body and merges it over the server props.
func (s *Server) decode(w http.ResponseWriter, r *http.Request) (RenderRequest, rep.Props, bool) {
	var req RenderRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, s.MaxBodyBytes))
	dec.UseNumber()
	if err := dec.Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, "Request body too large", http.StatusRequestEntityTooLarge)
			s.Logger.Warn("Request body too large", "path", r.URL.Path, "limit", tooLarge.Limit)
			return req, rep.Props{}, false
		}
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.Logger.Warn("Invalid request body", "path", r.URL.Path, "error", err)
		return req, rep.Props{}, false
	}

	props := s.Props
	if req.Mode != "" {
		props.Mode = rep.ParseMode(req.Mode)
	}
	if req.NoGrip != nil {
		props.NoGrip = *req.NoGrip
	}
	if req.Default != "" {
		d, ok := reps.Reps.Lookup(req.Default)
		if !ok {
			http.Error(w, "Unknown default rep: "+req.Default, http.StatusBadRequest)
			return req, rep.Props{}, false
		}
		props.Default = d
	}
	return req, props, true
}

func writeJSON(w http.ResponseWriter, logger *slog.Logger, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Response encode failed", "error", err)
	}
}
