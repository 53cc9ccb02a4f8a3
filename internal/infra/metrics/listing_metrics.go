// Package metrics exposes Prometheus collectors for the listing service.
package metrics

import (
	"fmt"
	"net/http"
	"time"

	"parkospace/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ListingCollector bundles the listing query and write metrics.
type ListingCollector struct {
	gatherer prometheus.Gatherer

	Queries       *prometheus.CounterVec
	QueryDuration *prometheus.HistogramVec
	QueryResults  *prometheus.HistogramVec
	Writes        *prometheus.CounterVec
}

// NewRegistry returns a registry carrying the Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return reg
}

// NewListingCollector registers the listing metrics against reg, defaulting to the
// global registry when nil. Re-registering reuses the existing collectors.
func NewListingCollector(reg prometheus.Registerer) (*ListingCollector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	queries, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "listing_queries_total",
		Help: "Listing queries handled, labeled by mode (area, owner) and outcome.",
	}, []string{"mode", "outcome"}), "listing_queries_total")
	if err != nil {
		return nil, err
	}

	duration, err := registerHistogramVec(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "listing_query_duration_seconds",
		Help:    "Listing query latency in seconds.",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2},
	}, []string{"mode"}), "listing_query_duration_seconds")
	if err != nil {
		return nil, err
	}

	results, err := registerHistogramVec(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "listing_query_results",
		Help:    "Number of listings returned per query.",
		Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250},
	}, []string{"mode"}), "listing_query_results")
	if err != nil {
		return nil, err
	}

	writes, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "listing_writes_total",
		Help: "Listing writes, labeled by operation (create, update, delete) and outcome.",
	}, []string{"op", "outcome"}), "listing_writes_total")
	if err != nil {
		return nil, err
	}

	return &ListingCollector{
		gatherer:      gatherer,
		Queries:       queries,
		QueryDuration: duration,
		QueryResults:  results,
		Writes:        writes,
	}, nil
}

var _ service.ListingRecorder = (*ListingCollector)(nil)

// ObserveQuery records one listing query.
func (c *ListingCollector) ObserveQuery(mode, outcome string, elapsed time.Duration, results int) {
	if c == nil {
		return
	}

	c.Queries.WithLabelValues(mode, outcome).Inc()
	c.QueryDuration.WithLabelValues(mode).Observe(elapsed.Seconds())
	if outcome == service.OutcomeSuccess || outcome == service.OutcomeEmpty {
		c.QueryResults.WithLabelValues(mode).Observe(float64(results))
	}
}

// ObserveWrite records one create, update or delete.
func (c *ListingCollector) ObserveWrite(op, outcome string) {
	if c == nil {
		return
	}

	c.Writes.WithLabelValues(op, outcome).Inc()
}

// Handler exposes the registry in the Prometheus text format.
func (c *ListingCollector) Handler() http.Handler {
	gatherer := prometheus.DefaultGatherer
	if c != nil && c.gatherer != nil {
		gatherer = c.gatherer
	}

	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}

			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}

		return nil, err
	}

	return vec, nil
}

func registerHistogramVec(reg prometheus.Registerer, vec *prometheus.HistogramVec, name string) (*prometheus.HistogramVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.HistogramVec); ok {
				return existing, nil
			}

			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}

		return nil, err
	}

	return vec, nil
}
