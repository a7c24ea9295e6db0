package nonce

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var driftAheadCounter = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "hyperliquid_nonce_drift_ahead_total",
		Help: "The number of times the nonce state was observed more than the drift limit ahead of the wall clock",
	},
)

var rebaseCounter = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "hyperliquid_nonce_rebase_total",
		Help: "The number of times a stale nonce state was rebased forward to the current wall clock",
	},
)
