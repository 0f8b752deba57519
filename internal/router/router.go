package router

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/nkngn/payment-router/internal/metrics"
	"github.com/nkngn/payment-router/internal/route"
)

// ErrInvalidRequest wraps every request validation failure.
var ErrInvalidRequest = errors.New("invalid payment request")

// PaymentRequest is one routing query.
type PaymentRequest struct {
	Amount              float64 `json:"amount" validate:"gt=0"`
	SourceCurrency      string  `json:"source_currency" validate:"required"`
	DestinationCurrency string  `json:"destination_currency" validate:"required"`
}

// PaymentRouter answers best-route queries against one corridor graph.
// It is safe for concurrent use.
type PaymentRouter struct {
	graph    *route.Graph
	validate *validator.Validate
	metrics  *metrics.Metrics
	log      zerolog.Logger
}

// Option configures a PaymentRouter.
type Option func(*PaymentRouter)

// WithMetrics records query outcomes and graph size on m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(r *PaymentRouter) { r.metrics = m }
}

// New builds the corridor graph and returns a router that owns it.
func New(corridors []route.Corridor, log zerolog.Logger, opts ...Option) *PaymentRouter {
	r := &PaymentRouter{
		graph:    route.NewGraph(corridors),
		validate: validator.New(),
		log:      log.With().Str("component", "router").Logger(),
	}
	for _, opt := range opts {
		opt(r)
	}

	r.metrics.SetGraphSize(len(r.graph.Currencies()), r.graph.Len())
	r.log.Info().
		Int("corridors", r.graph.Len()).
		Int("currencies", len(r.graph.Currencies())).
		Msg("Corridor graph built")
	return r
}

// Graph returns the router's immutable graph.
func (r *PaymentRouter) Graph() *route.Graph {
	return r.graph
}

// FindBestRoute returns the best route for req, or nil when no route exists.
// An error is returned only for requests that fail validation.
func (r *PaymentRouter) FindBestRoute(req PaymentRequest) (*route.RouteResult, error) {
	log := r.log.With().
		Str("query_id", uuid.NewString()).
		Str("source", req.SourceCurrency).
		Str("destination", req.DestinationCurrency).
		Float64("amount", req.Amount).
		Logger()

	if err := r.validate.Struct(req); err != nil {
		r.metrics.ObserveQuery(metrics.OutcomeInvalid, 0)
		log.Warn().Err(err).Msg("Rejected payment request")
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	start := time.Now()
	result, found := r.graph.FindBestRoute(req.SourceCurrency, req.DestinationCurrency, req.Amount)
	elapsed := time.Since(start)

	if !found {
		r.metrics.ObserveQuery(metrics.OutcomeNoRoute, elapsed)
		log.Info().Dur("elapsed", elapsed).Msg("No route found")
		return nil, nil
	}

	r.metrics.ObserveQuery(metrics.OutcomeFound, elapsed)
	log.Debug().
		Float64("total_fee", result.TotalFee).
		Float64("total_received", result.TotalReceived).
		Dur("elapsed", elapsed).
		Msg("Route found")
	return &result, nil
}
