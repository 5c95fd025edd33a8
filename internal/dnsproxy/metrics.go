package dnsproxy

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeOverride   = "override"
	outcomeSuppressed = "suppressed"
	outcomeForwarded  = "forwarded"
	outcomeFailed     = "failed"
	outcomeRefused    = "refused"
)

var (
	queriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "resolver_shim",
		Subsystem: "proxy",
		Name:      "queries_total",
		Help:      "DNS queries handled, by outcome.",
	}, []string{"outcome"})

	upstreamErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "resolver_shim",
		Subsystem: "proxy",
		Name:      "upstream_errors_total",
		Help:      "Failed exchanges per upstream resolver.",
	}, []string{"upstream"})
)
