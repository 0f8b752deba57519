package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// Query outcomes.
const (
	OutcomeFound   = "found"
	OutcomeNoRoute = "no_route"
	OutcomeInvalid = "invalid"
)

// Metrics holds the router collectors and the registry they live in.
type Metrics struct {
	Registry *prometheus.Registry

	RouteQueriesTotal   *prometheus.CounterVec
	RouteSearchDuration prometheus.Histogram
	GraphCurrencies     prometheus.Gauge
	GraphCorridors      prometheus.Gauge
}

// New registers the route collectors plus the Go and process collectors on a
// fresh registry.
func New(logger zerolog.Logger) *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		RouteQueriesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "route_queries_total", Help: "Route queries by outcome"},
			[]string{"outcome"},
		),
		RouteSearchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "route_search_duration_seconds",
			Help:    "Time spent in best route search",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 10),
		}),
		GraphCurrencies: prometheus.NewGauge(prometheus.GaugeOpts{Name: "corridor_graph_currencies", Help: "Currencies in the corridor graph"}),
		GraphCorridors:  prometheus.NewGauge(prometheus.GaugeOpts{Name: "corridor_graph_corridors", Help: "Corridors in the corridor graph"}),
	}

	toRegister := []prometheus.Collector{
		m.RouteQueriesTotal, m.RouteSearchDuration, m.GraphCurrencies, m.GraphCorridors,
		collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	}
	for _, c := range toRegister {
		if err := m.Registry.Register(c); err != nil {
			logger.Warn().Err(err).Msg("metrics register failed")
		}
	}
	return m
}

// ObserveQuery records one query. Nil receivers are a no-op.
func (m *Metrics) ObserveQuery(outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.RouteQueriesTotal.WithLabelValues(outcome).Inc()
	if outcome != OutcomeInvalid {
		m.RouteSearchDuration.Observe(elapsed.Seconds())
	}
}

// SetGraphSize records the size of the loaded graph.
func (m *Metrics) SetGraphSize(currencies, corridors int) {
	if m == nil {
		return
	}
	m.GraphCurrencies.Set(float64(currencies))
	m.GraphCorridors.Set(float64(corridors))
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}
