// Package metrics holds the Prometheus collectors of the service.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Namespace prefixes every metric name.
const Namespace = "cmdhint"

// Search outcomes.
const (
	OutcomeHit   = "hit"
	OutcomeMiss  = "miss"
	OutcomeError = "error"
)

// Search and load metrics.
var (
	SearchTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "search_total",
			Help:      "Top-hit searches by index and outcome",
		},
		[]string{"index", "outcome"},
	)

	SearchRelaxationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "search_relaxations_total",
			Help:      "Searches retried with the last word dropped",
		},
		[]string{"index"},
	)

	DocumentsLoadedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "documents_loaded_total",
			Help:      "Documents written to the engine by bulk loads",
		},
		[]string{"index"},
	)

	SynonymGroupsApplied = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "synonym_groups",
			Help:      "Synonym groups applied by the last refresh",
		},
		[]string{"index"},
	)
)

var registerOnce sync.Once

// Register registers all collectors with the default registry. Safe to call more than once.
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			httpRequestDuration,
			httpRequestsTotal,
			SearchTotal,
			SearchRelaxationsTotal,
			DocumentsLoadedTotal,
			SynonymGroupsApplied,
		)
	})
}
