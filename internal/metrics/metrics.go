package metrics

import "github.com/prometheus/client_golang/prometheus"

// Search outcomes
const (
	OutcomeSuccess       = "success"
	OutcomeInvalidInput  = "invalid_input"
	OutcomeUpstreamError = "upstream_error"
	OutcomeInternalError = "internal_error"
)

// AI search Prometheus metrics.
var (
	SearchRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "sathorn",
			Name:      "search_requests_total",
			Help:      "Total number of AI search requests by outcome",
		},
		[]string{"outcome"},
	)

	UpstreamRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "sathorn",
			Name:      "upstream_request_duration_seconds",
			Help:      "Language-model request duration in seconds",
			Buckets:   []float64{0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"model", "status"},
	)

	SearchHighlightedProperties = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "sathorn",
			Name:      "search_highlighted_properties",
			Help:      "Number of properties highlighted per successful search",
			Buckets:   []float64{0, 1, 2, 3, 5, 8, 13, 21},
		},
	)

	QueryLogErrorsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "sathorn",
			Name:      "query_log_errors_total",
			Help:      "Total failed query log appends",
		},
	)
)

func init() {
	prometheus.MustRegister(SearchRequestsTotal)
	prometheus.MustRegister(UpstreamRequestDuration)
	prometheus.MustRegister(SearchHighlightedProperties)
	prometheus.MustRegister(QueryLogErrorsTotal)
}
