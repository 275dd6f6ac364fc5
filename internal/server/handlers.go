package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvroute/bfs"
	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/planner"
	"github.com/katalvlaran/lvroute/roadfile"
)

// maxBodyBytes bounds a trip request body.
const maxBodyBytes = 1 << 16

// tripRequest is the POST /api/trips body.
type tripRequest struct {
	Start *int   `json:"start" validate:"required,gte=0"`
	End   *int   `json:"end" validate:"required,gte=0"`
	Mode  string `json:"mode" validate:"required,oneof=D T"`
}

// legResponse mirrors planner.Leg; Hours is null for a zero-speed road.
type legResponse struct {
	From     string   `json:"from"`
	To       string   `json:"to"`
	Distance float64  `json:"distance"`
	Speed    float64  `json:"speed"`
	Hours    *float64 `json:"hours"`
	Duration string   `json:"duration"`
}

type itineraryResponse struct {
	Start         roadfile.Location `json:"start"`
	End           roadfile.Location `json:"end"`
	Mode          roadfile.Mode     `json:"mode"`
	Path          []core.Vertex     `json:"path"`
	Legs          []legResponse     `json:"legs"`
	TotalDistance float64           `json:"total_distance"`
	TotalHours    *float64          `json:"total_hours"`
	TotalDuration string            `json:"total_duration"`
}

type locationsResponse struct {
	Locations []roadfile.Location `json:"locations"`
	Connected bool                `json:"connected"`
}

type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id"`
}

// finite returns nil for ±Inf and NaN so the value encodes as JSON null.
func finite(f float64) *float64 {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return nil
	}

	return &f
}

func toResponse(it *planner.Itinerary) itineraryResponse {
	out := itineraryResponse{
		Start:         it.Start,
		End:           it.End,
		Mode:          it.Mode,
		Path:          it.Path,
		Legs:          make([]legResponse, 0, len(it.Legs)),
		TotalDistance: it.TotalDistance,
		TotalHours:    finite(it.TotalHours),
		TotalDuration: planner.FormatDuration(it.TotalHours),
	}
	for _, l := range it.Legs {
		out.Legs = append(out.Legs, legResponse{
			From:     l.From.Name,
			To:       l.To.Name,
			Distance: l.Distance,
			Speed:    l.Speed,
			Hours:    finite(l.Hours),
			Duration: planner.FormatDuration(l.Hours),
		})
	}

	return out
}

func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Warn("encode response", zap.String("request_id", RequestID(r.Context())), zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	s.writeJSON(w, r, status, errorResponse{Error: err.Error(), RequestID: RequestID(r.Context())})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleLocations(w http.ResponseWriter, r *http.Request) {
	connected, err := s.network.Connected()
	if err != nil && !errors.Is(err, bfs.ErrEmptyGraph) {
		s.writeError(w, r, http.StatusInternalServerError, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, locationsResponse{
		Locations: s.network.Locations(),
		Connected: connected,
	})
}

func (s *Server) handlePlan(w http.ResponseWriter, r *http.Request) {
	var req tripRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		s.writeError(w, r, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.writeError(w, r, http.StatusBadRequest, fmt.Errorf("invalid trip: %w", err))
		return
	}

	trip := roadfile.Trip{Start: *req.Start, End: *req.End, Mode: roadfile.Mode(req.Mode)}
	it, err := s.network.Plan(r.Context(), trip)
	switch {
	case err == nil:
		s.writeJSON(w, r, http.StatusOK, toResponse(it))
	case errors.Is(err, core.ErrNoPath):
		s.writeError(w, r, http.StatusNotFound, err)
	case errors.Is(err, core.ErrVertexOutOfRange), errors.Is(err, planner.ErrUnknownMode):
		s.writeError(w, r, http.StatusBadRequest, err)
	default:
		s.log.Error("plan failed",
			zap.String("request_id", RequestID(r.Context())),
			zap.Error(err))
		s.writeError(w, r, http.StatusInternalServerError, err)
	}
}
