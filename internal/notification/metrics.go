package notification

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	emailsSent = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "fashion_backend",
		Subsystem: "notification",
		Name:      "emails_sent_total",
		Help:      "Total number of confirmation emails delivered.",
	})

	emailsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "fashion_backend",
		Subsystem: "notification",
		Name:      "emails_failed_total",
		Help:      "Total number of confirmation emails that exhausted retries.",
	})
)
