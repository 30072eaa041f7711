package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ordersCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "fashion_backend",
			Subsystem: "orders",
			Name:      "created_total",
			Help:      "Total number of orders created",
		},
	)

	callbacksTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fashion_backend",
			Subsystem: "payhere",
			Name:      "callbacks_total",
			Help:      "Total number of gateway callbacks by outcome",
		},
		[]string{"result"},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		ordersCreated,
		callbacksTotal,
	)
}
