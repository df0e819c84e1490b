package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Event results.
const (
	ResultIneligible  = "ineligible"
	ResultNoTarget    = "no_target"
	ResultLookupError = "lookup_error"
	ResultSuccess     = "success"  // 2xx
	ResultRejected    = "rejected" // completed exchange, non-2xx
	ResultError       = "error"    // transport failure
)

var (
	EventsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lnw_events_total",
			Help: "Paid invoice events by pipeline result",
		},
		[]string{"result"},
	)

	WebhookDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "lnw_webhook_duration_seconds",
			Help:    "Outbound webhook request latency",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 20, 40},
		},
	)

	RecordErrorsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "lnw_record_errors_total",
			Help: "Failed writes of a delivery outcome to the payment store",
		},
	)

	ZapReceiptsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lnw_zap_receipts_total",
			Help: "Zap receipts by publish result",
		},
		[]string{"result"}, // sent|failed
	)
)

func MustRegister(r prometheus.Registerer) {
	r.MustRegister(
		EventsTotal,
		WebhookDuration,
		RecordErrorsTotal,
		ZapReceiptsTotal,
	)
}
