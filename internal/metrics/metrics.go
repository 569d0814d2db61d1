package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "frontdesk_http_requests_total",
		Help: "HTTP requests by route, method and status code.",
	}, []string{"route", "method", "status"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "frontdesk_http_request_duration_seconds",
		Help:    "HTTP request latency by route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route", "method"})

	Quotes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "frontdesk_quotes_total",
		Help: "Stay quotes computed, by outcome (ok, invalid).",
	}, []string{"outcome"})

	Settlements = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "frontdesk_settlements_total",
		Help: "Reservation settlements by status and whether a new snapshot was written.",
	}, []string{"status", "created"})

	TaxRuleCacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "frontdesk_tax_rule_cache_lookups_total",
		Help: "Tax rule cache lookups by result (hit, miss, error).",
	}, []string{"result"})
)
