// SPDX-License-Identifier: MIT
// Package: woc/crowd
//
// telemetry.go - optional Prometheus counters for an Engine.
//
// A nil *Metrics is valid and records nothing, so the engine calls the
// observe* methods unconditionally.

package crowd

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// DefaultMetricsNamespace prefixes every metric name unless overridden.
const DefaultMetricsNamespace = "woc"

// Metrics holds the engine counters. One Metrics may be shared by many
// Engines; the underlying collectors are goroutine-safe.
type Metrics struct {
	pathLookups     *prometheus.CounterVec
	classifications *prometheus.CounterVec
	staleDetections prometheus.Counter
	refreshes       prometheus.Counter
}

// NewMetrics creates the engine counters under namespace and registers them
// on reg. A nil reg skips registration. An empty namespace uses
// DefaultMetricsNamespace.
func NewMetrics(reg prometheus.Registerer, namespace string) (*Metrics, error) {
	if namespace == "" {
		namespace = DefaultMetricsNamespace
	}
	m := &Metrics{
		pathLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "crowd",
			Name:      "path_cache_lookups_total",
			Help:      "Shortest-path cache lookups by cache and result.",
		}, []string{"cache", "result"}),
		classifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "crowd",
			Name:      "classifications_total",
			Help:      "Completed (m,k)-observer classifications by outcome.",
		}, []string{"result"}),
		staleDetections: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "crowd",
			Name:      "stale_cache_detections_total",
			Help:      "Classifications refused because the graph changed without a cache clear.",
		}),
		refreshes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "crowd",
			Name:      "snapshot_refreshes_total",
			Help:      "Acknowledged snapshot refreshes after ClearPathCache.",
		}),
	}
	if reg == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{m.pathLookups, m.classifications, m.staleDetections, m.refreshes} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("crowd: register metrics: %w", err)
		}
	}

	return m, nil
}

func (m *Metrics) observeLookup(cache string, hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.pathLookups.WithLabelValues(cache, result).Inc()
}

func (m *Metrics) observeClassification(observer bool) {
	if m == nil {
		return
	}
	result := "negative"
	if observer {
		result = "positive"
	}
	m.classifications.WithLabelValues(result).Inc()
}

func (m *Metrics) observeStale() {
	if m != nil {
		m.staleDetections.Inc()
	}
}

func (m *Metrics) observeRefresh() {
	if m != nil {
		m.refreshes.Inc()
	}
}
