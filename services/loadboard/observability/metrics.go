// Copyright (C) 2026 Acme Logistics (engineering@acmelogistics.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package observability provides metrics and instrumentation for the
// loadboard service.
//
// Metrics are exposed on the /metrics endpoint for Prometheus scraping.
// All metric operations are thread-safe via Prometheus's internal locking.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "loadboard"

// Metrics holds all Prometheus metrics for the service. Initialize once
// at startup via InitMetrics().
type Metrics struct {
	// RequestsTotal counts API requests by endpoint and status.
	// Labels: endpoint (search, negotiate, log_call, validate, summary), status (ok, error)
	RequestsTotal *prometheus.CounterVec

	// NegotiationDecisions counts evaluate outcomes.
	// Labels: decision (accept, counter, reject)
	NegotiationDecisions *prometheus.CounterVec

	// SearchResultCount observes how many loads each search returned.
	SearchResultCount prometheus.Histogram

	// CallsLogged counts appended call log entries by outcome.
	CallsLogged *prometheus.CounterVec

	// CarrierLookupDuration measures FMCSA lookups by result status.
	CarrierLookupDuration *prometheus.HistogramVec
}

// DefaultMetrics is the singleton instance, initialized by InitMetrics().
var DefaultMetrics *Metrics

// InitMetrics creates and registers all Prometheus metrics. Call once at
// application startup.
func InitMetrics() *Metrics {
	DefaultMetrics = &Metrics{
		RequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "requests_total",
				Help:      "API requests by endpoint and status.",
			},
			[]string{"endpoint", "status"},
		),
		NegotiationDecisions: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "negotiation_decisions_total",
				Help:      "Negotiation evaluations by decision.",
			},
			[]string{"decision"},
		),
		SearchResultCount: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "search_result_count",
				Help:      "Number of loads returned per search.",
				Buckets:   []float64{0, 1, 2, 5, 10, 25, 50, 100},
			},
		),
		CallsLogged: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "calls_logged_total",
				Help:      "Call log entries appended, by outcome.",
			},
			[]string{"outcome"},
		),
		CarrierLookupDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "carrier_lookup_duration_seconds",
				Help:      "FMCSA carrier lookup latency by result status.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"status"},
		),
	}
	return DefaultMetrics
}

// RecordRequest increments the request counter, tolerating a nil receiver
// so tests can run handlers without initializing metrics.
func (m *Metrics) RecordRequest(endpoint, status string) {
	if m == nil {
		return
	}
	m.RequestsTotal.WithLabelValues(endpoint, status).Inc()
}

// RecordDecision counts one negotiation decision.
func (m *Metrics) RecordDecision(decision string) {
	if m == nil {
		return
	}
	m.NegotiationDecisions.WithLabelValues(decision).Inc()
}

// RecordSearchResults observes a search result size.
func (m *Metrics) RecordSearchResults(n int) {
	if m == nil {
		return
	}
	m.SearchResultCount.Observe(float64(n))
}

// RecordCallLogged counts one appended call entry.
func (m *Metrics) RecordCallLogged(outcome string) {
	if m == nil {
		return
	}
	m.CallsLogged.WithLabelValues(outcome).Inc()
}

// RecordCarrierLookup observes one FMCSA lookup.
func (m *Metrics) RecordCarrierLookup(status string, seconds float64) {
	if m == nil {
		return
	}
	m.CarrierLookupDuration.WithLabelValues(status).Observe(seconds)
}
