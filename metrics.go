package client

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Operation labels for the counters below.
const (
	opRegister  = "register"
	opListPolls = "list_polls"
	opVote      = "vote"
	opResults   = "results"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pollwise_client",
			Name:      "requests_total",
			Help:      "API operations issued.",
		},
		[]string{"operation"},
	)

	requestFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pollwise_client",
			Name:      "request_failures_total",
			Help:      "API operations that returned an error.",
		},
		[]string{"operation"},
	)
)

// observe records one completed operation on the counters.
func observe(op string, err error) {
	requestsTotal.WithLabelValues(op).Inc()
	if err != nil {
		requestFailuresTotal.WithLabelValues(op).Inc()
	}
}
