// Package metrics collects and exposes Prometheus metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector gathers counters for the service layer.
type Collector struct {
	joinOutcomes     *prometheus.CounterVec
	codespacesMade   prometheus.Counter
	sessionsRecorded prometheus.Counter
	postsCreated     prometheus.Counter
}

// NewCollector creates a Collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		joinOutcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ecolearn_join_total",
			Help: "Codespace join attempts by outcome.",
		}, []string{"outcome"}),
		codespacesMade: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ecolearn_codespaces_created_total",
			Help: "Codespaces created by admins.",
		}),
		sessionsRecorded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ecolearn_game_sessions_total",
			Help: "Completed game sessions recorded.",
		}),
		postsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ecolearn_posts_total",
			Help: "Community posts created.",
		}),
	}

	reg.MustRegister(
		c.joinOutcomes,
		c.codespacesMade,
		c.sessionsRecorded,
		c.postsCreated,
	)

	return c
}

// RecordJoin counts one join attempt with its outcome
// ("ok", "invalid_format", "not_found", "inactive", "expired", "error").
func (c *Collector) RecordJoin(outcome string) {
	c.joinOutcomes.WithLabelValues(outcome).Inc()
}

// RecordCodespaceCreated counts one codespace creation.
func (c *Collector) RecordCodespaceCreated() {
	c.codespacesMade.Inc()
}

// RecordGameSession counts one recorded game session.
func (c *Collector) RecordGameSession() {
	c.sessionsRecorded.Inc()
}

// RecordPost counts one community post.
func (c *Collector) RecordPost() {
	c.postsCreated.Inc()
}

// Handler returns the HTTP handler exposing the registry.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
