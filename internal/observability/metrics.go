package observability

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "gym_saas"

var (
	membershipsCreated = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "memberships",
		Name:      "created_total",
		Help:      "Memberships created, by initial status.",
	}, []string{"status"})

	membershipsRenewed = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "memberships",
		Name:      "renewed_total",
		Help:      "Successful membership renewals.",
	})

	renewalsRejected = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "memberships",
		Name:      "renewals_rejected_total",
		Help:      "Renewal attempts refused, by reason.",
	}, []string{"reason"})

	statusTransitions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "memberships",
		Name:      "status_transitions_total",
		Help:      "Lifecycle transitions applied, by source and target status and trigger.",
	}, []string{"from", "to", "trigger"})

	paymentsRecorded = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "payments",
		Name:      "recorded_total",
		Help:      "Payments appended to the ledger, by method.",
	}, []string{"method"})

	paymentAmount = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "payments",
		Name:      "amount_total",
		Help:      "Sum of payment amounts, by method.",
	}, []string{"method"})

	sweepDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "sweep",
		Name:      "duration_seconds",
		Help:      "Wall time of the membership status sweep.",
		Buckets:   prometheus.DefBuckets,
	})

	httpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests served, by method, route and status code.",
	}, []string{"method", "route", "status"})

	httpDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency, by method and route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	sweepLastRun = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "sweep",
		Name:      "last_run_timestamp_seconds",
		Help:      "Unix timestamp of the last completed sweep.",
	})
)

func init() {
	prometheus.MustRegister(
		membershipsCreated,
		membershipsRenewed,
		renewalsRejected,
		statusTransitions,
		paymentsRecorded,
		paymentAmount,
		sweepDuration,
		sweepLastRun,
		httpRequests,
		httpDuration,
	)
}

func RecordMembershipCreated(status string) {
	membershipsCreated.WithLabelValues(status).Inc()
}

func RecordRenewal() {
	membershipsRenewed.Inc()
}

func RecordRenewalRejected(reason string) {
	renewalsRejected.WithLabelValues(reason).Inc()
}

// RecordTransition counts one status change. trigger is one of "lazy",
// "sweep", "renewal", "cancel" or "member_deactivated".
func RecordTransition(from, to, trigger string) {
	statusTransitions.WithLabelValues(from, to, trigger).Inc()
}

func RecordPayment(method string, amount float64) {
	paymentsRecorded.WithLabelValues(method).Inc()
	paymentAmount.WithLabelValues(method).Add(amount)
}

func RecordSweep(started, finished time.Time) {
	if started.IsZero() || finished.IsZero() {
		return
	}
	sweepDuration.Observe(finished.Sub(started).Seconds())
	sweepLastRun.Set(float64(finished.Unix()))
}

// RecordHTTPRequest uses the route template, not the raw path, to keep label
// cardinality bounded.
func RecordHTTPRequest(method, route string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}
