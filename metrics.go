// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Call outcomes recorded in the outcome label.
const (
	OutcomeOK             = "ok"
	OutcomeRPCError       = "rpc_error"
	OutcomeTransportError = "transport_error"
)

// LatencyBuckets are the histogram buckets for call latency, in seconds.
var LatencyBuckets = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}

// Metrics counts node calls by method and outcome and records their latency.
type Metrics struct {
	RequestsTotal *prometheus.CounterVec
	Latency       *prometheus.HistogramVec
}

// NewMetrics creates the metrics without registering them.
func NewMetrics() *Metrics {
	return &Metrics{
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "monero_rpc_requests_total",
				Help: "Total number of JSON-RPC calls made to the node",
			},
			[]string{"method", "outcome"},
		),
		Latency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "monero_rpc_latency_seconds",
				Help:    "JSON-RPC call latency in seconds",
				Buckets: LatencyBuckets,
			},
			[]string{"method"},
		),
	}
}

// Register registers all metrics with the given registry.
func (m *Metrics) Register(reg prometheus.Registerer) {
	reg.MustRegister(m.RequestsTotal, m.Latency)
}

func (m *Metrics) observe(method string, err error, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.RequestsTotal.WithLabelValues(method, outcome(err)).Inc()
	m.Latency.WithLabelValues(method).Observe(elapsed.Seconds())
}

func outcome(err error) string {
	if err == nil {
		return OutcomeOK
	}
	if _, ok := IsRPCError(err); ok {
		return OutcomeRPCError
	}
	return OutcomeTransportError
}
