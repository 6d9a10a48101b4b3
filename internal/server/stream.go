package server

import (
	"net/http"
	"strconv"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/AdnanKapadia/ComplexPlot/internal/plot"
)

// streamFrame is one WebSocket message: either a quadrature sample or the
// terminal frame carrying the final value.
type streamFrame struct {
	Type   string               `json:"type"` // "sample" or "done"
	Sample *plot.IntegralSample `json:"sample,omitempty"`
	Final  *plot.Point          `json:"final,omitempty"`
	Count  int                  `json:"count,omitempty"`
}

// streamIntegral streams contour-integral partial sums over a WebSocket as
// the quadrature walks the curve, so the caller can animate the running
// sum. Entry parameters come from query params; the stream ends with a
// "done" frame (final null-equivalent when no sample survived).
func (s *Server) streamIntegral(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	entry := plot.ContourEntry{
		ID:        q.Get("id"),
		Expr:      q.Get("expression"),
		Transform: q.Get("integrand"),
		Enabled:   true,
	}
	entry.TMin, _ = strconv.ParseFloat(q.Get("tMin"), 64)
	entry.TMax, _ = strconv.ParseFloat(q.Get("tMax"), 64)
	entry.Steps, _ = strconv.Atoi(q.Get("steps"))

	if entry.Expr == "" {
		http.Error(w, "expression query parameter required", http.StatusBadRequest)
		return
	}
	if entry.Steps > s.config.MaxSteps {
		http.Error(w, "steps exceeds limit", http.StatusBadRequest)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error().Err(err).Msg("WebSocket upgrade failed")
		return
	}
	defer conn.Close()

	var final *plot.Point
	survived := plot.IntegrateFunc(entry, func(sample plot.IntegralSample) {
		frame := streamFrame{Type: "sample", Sample: &sample}
		if err := conn.WriteJSON(frame); err != nil {
			log.Debug().Err(err).Msg("integral stream client gone")
			return
		}
		sum := sample.PartialSum
		final = &sum
	})

	done := streamFrame{Type: "done", Count: survived}
	if survived > 0 {
		done.Final = final
	}
	if err := conn.WriteJSON(done); err != nil {
		log.Debug().Err(err).Msg("integral stream close frame failed")
	}

	_ = conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}
