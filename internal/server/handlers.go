package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/AdnanKapadia/ComplexPlot/internal/expr"
	"github.com/AdnanKapadia/ComplexPlot/internal/plot"
)

// parseRequest is the body of POST /api/v1/parse.
type parseRequest struct {
	Expression string `json:"expression"`
	Variable   string `json:"variable"`
}

// parseResponse echoes the normalized tree back for valid input.
type parseResponse struct {
	Valid      bool     `json:"valid"`
	Normalized string   `json:"normalized,omitempty"`
	Variables  []string `json:"variables,omitempty"`
	Error      string   `json:"error,omitempty"`
	Empty      bool     `json:"empty,omitempty"`
}

// parseExpression parses without evaluating, for live input validation.
func (s *Server) parseExpression(w http.ResponseWriter, r *http.Request) {
	var req parseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.badRequest(w, "parse", fmt.Sprintf("invalid JSON: %v", err))
		return
	}

	node, err := expr.Parse(req.Expression)
	if err != nil {
		resp := parseResponse{Error: err.Error(), Empty: errors.Is(err, expr.ErrEmptyExpression)}
		s.metrics.requestsTotal.WithLabelValues("parse", "invalid").Inc()
		writeJSON(w, http.StatusOK, resp)
		return
	}

	vars := []string{}
	for name := range expr.FreeVariables(node) {
		vars = append(vars, name)
	}

	s.metrics.requestsTotal.WithLabelValues("parse", "ok").Inc()
	writeJSON(w, http.StatusOK, parseResponse{
		Valid:      true,
		Normalized: node.String(),
		Variables:  vars,
	})
}

// evaluateContours samples every enabled contour in the request.
func (s *Server) evaluateContours(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	var config plot.ContourConfig
	if err := json.NewDecoder(r.Body).Decode(&config); err != nil {
		s.badRequest(w, "contours", fmt.Sprintf("invalid JSON: %v", err))
		return
	}

	for i := range config.Contours {
		if config.Contours[i].Steps > s.config.MaxSteps {
			s.badRequest(w, "contours", fmt.Sprintf("steps exceeds limit of %d", s.config.MaxSteps))
			return
		}
	}

	stepsByID := make(map[string]int, len(config.Contours))
	for _, entry := range config.Contours {
		stepsByID[entry.ID] = entry.Steps
	}

	// disabled entries are filtered out, so results can be shorter than
	// the request and positions no longer line up
	results := plot.EvaluateContours(config)
	for _, data := range results {
		if dropped := stepsByID[data.ID] - len(data.Points); dropped > 0 {
			s.metrics.samplesDropped.Add(float64(dropped))
		}
	}

	s.observe("contours", started)
	writeJSON(w, http.StatusOK, map[string]any{"contours": results})
}

// evaluateIntegral runs the contour-integral engine for one entry. A null
// body field means nothing was computable, which is not an HTTP error.
func (s *Server) evaluateIntegral(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	var entry plot.ContourEntry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		s.badRequest(w, "integral", fmt.Sprintf("invalid JSON: %v", err))
		return
	}
	if entry.Steps > s.config.MaxSteps {
		s.badRequest(w, "integral", fmt.Sprintf("steps exceeds limit of %d", s.config.MaxSteps))
		return
	}

	result := plot.Integrate(entry)

	s.observe("integral", started)
	writeJSON(w, http.StatusOK, map[string]any{"result": result})
}

// evaluateDomainColoring samples a 2D scalar field.
func (s *Server) evaluateDomainColoring(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	var config plot.DomainColoringConfig
	if err := json.NewDecoder(r.Body).Decode(&config); err != nil {
		s.badRequest(w, "domain", fmt.Sprintf("invalid JSON: %v", err))
		return
	}
	if config.Resolution > s.config.MaxResolution {
		s.badRequest(w, "domain", fmt.Sprintf("resolution exceeds limit of %d", s.config.MaxResolution))
		return
	}

	result := plot.EvaluateDomainColoring(config)
	s.metrics.invalidCells.Add(float64(plot.InvalidCells(result.ScalarGrid)))

	s.observe("domain", started)
	writeJSON(w, http.StatusOK, result)
}

// evaluateSurface3D samples height and color grids plus axes.
func (s *Server) evaluateSurface3D(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	var config plot.Surface3DConfig
	if err := json.NewDecoder(r.Body).Decode(&config); err != nil {
		s.badRequest(w, "surface", fmt.Sprintf("invalid JSON: %v", err))
		return
	}
	if config.Resolution > s.config.MaxResolution {
		s.badRequest(w, "surface", fmt.Sprintf("resolution exceeds limit of %d", s.config.MaxResolution))
		return
	}

	result := plot.EvaluateSurface3D(config)
	s.metrics.invalidCells.Add(float64(plot.InvalidCells(result.HeightGrid)))

	s.observe("surface", started)
	writeJSON(w, http.StatusOK, result)
}

// healthCheck returns server health status
func (s *Server) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"timestamp": time.Now(),
	})
}

func (s *Server) observe(operation string, started time.Time) {
	s.metrics.requestsTotal.WithLabelValues(operation, "ok").Inc()
	s.metrics.requestDuration.WithLabelValues(operation).Observe(time.Since(started).Seconds())
}

func (s *Server) badRequest(w http.ResponseWriter, operation, message string) {
	s.metrics.requestsTotal.WithLabelValues(operation, "bad_request").Inc()
	writeJSON(w, http.StatusBadRequest, map[string]any{"error": message})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
