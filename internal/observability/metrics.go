package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels for signup and unregister counters.
const (
	OutcomeOK       = "ok"
	OutcomeNotFound = "not_found"
	OutcomeConflict = "already_signed_up"
	OutcomeFull     = "capacity_exceeded"
	OutcomeError    = "error"
)

var (
	signupCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activity_signup",
		Subsystem: "directory",
		Name:      "signups_total",
		Help:      "Signup attempts grouped by outcome.",
	}, []string{"result"})

	unregisterCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activity_signup",
		Subsystem: "directory",
		Name:      "unregistrations_total",
		Help:      "Unregister attempts grouped by outcome.",
	}, []string{"result"})

	participantsGauge = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "activity_signup",
		Subsystem: "directory",
		Name:      "participants",
		Help:      "Current number of participants per activity.",
	}, []string{"activity"})

	capacityGauge = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "activity_signup",
		Subsystem: "directory",
		Name:      "capacity",
		Help:      "Maximum participants per activity.",
	}, []string{"activity"})
)

func init() {
	prometheus.MustRegister(signupCounter, unregisterCounter, participantsGauge, capacityGauge)
}

// RecordSignup counts a signup attempt.
func RecordSignup(result string) {
	signupCounter.WithLabelValues(result).Inc()
}

// RecordUnregister counts an unregister attempt.
func RecordUnregister(result string) {
	unregisterCounter.WithLabelValues(result).Inc()
}

// RecordRoster publishes the roster size and capacity of an activity.
func RecordRoster(activity string, participants, capacity int) {
	participantsGauge.WithLabelValues(activity).Set(float64(participants))
	capacityGauge.WithLabelValues(activity).Set(float64(capacity))
}
