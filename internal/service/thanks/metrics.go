package thanks

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcomes recorded in thanks_requests_total.
const (
	outcomeSent      = "sent"
	outcomeDuplicate = "duplicate"
	outcomeRejected  = "rejected"
	outcomeError     = "error"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "thanks_requests_total",
			Help: "Thank requests by outcome.",
		},
		[]string{"outcome"},
	)
	rejectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "thanks_rejections_total",
			Help: "Rejected thank requests by error code.",
		},
		[]string{"code"},
	)
	transmissionFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "thanks_transmission_failures_total",
			Help: "Notifications the transmission channel did not accept.",
		},
		[]string{"channel"},
	)
)
