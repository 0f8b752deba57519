package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nkngn/payment-router/internal/route"
	"github.com/nkngn/payment-router/internal/router"
)

// BestRouteResponse wraps the search outcome. Result is null when no route
// exists.
type BestRouteResponse struct {
	Result *route.RouteResult `json:"result"`
}

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// maxRequestBytes bounds the decoded request body.
const maxRequestBytes = 1 << 20

func (s *Server) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	body, err := json.Marshal(data)
	if err != nil {
		// non-finite amounts from degenerate corridors end up here
		s.log.Error().Err(err).Msg("Failed to encode JSON response")
		status = http.StatusInternalServerError
		body, _ = json.Marshal(ErrorResponse{Error: "Failed to encode response", Details: err.Error()})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(append(body, '\n')); err != nil {
		s.log.Error().Err(err).Msg("Failed to write JSON response")
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	msg := "Internal server error"
	if errors.Is(err, router.ErrInvalidRequest) {
		status = http.StatusBadRequest
		msg = "Validation failed"
	}
	s.writeJSON(w, status, ErrorResponse{Error: msg, Details: err.Error()})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleBestRoute(w http.ResponseWriter, r *http.Request) {
	var req router.PaymentRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		status := http.StatusBadRequest
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		s.writeJSON(w, status, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}

	result, err := s.router.FindBestRoute(req)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, BestRouteResponse{Result: result})
}

func (s *Server) handleCurrencies(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string][]string{"currencies": s.router.Graph().Currencies()})
}

func (s *Server) handleCorridors(w http.ResponseWriter, r *http.Request) {
	currency := chi.URLParam(r, "currency")
	corridors := s.router.Graph().Outgoing(currency)
	if corridors == nil {
		corridors = []route.Corridor{}
	}
	s.writeJSON(w, http.StatusOK, map[string][]route.Corridor{"corridors": corridors})
}
