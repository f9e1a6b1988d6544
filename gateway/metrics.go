package gateway

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "console_backend_requests_total",
		Help: "Backend API requests by method and status code.",
	}, []string{"method", "status"})

	unauthorizedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "console_backend_unauthorized_total",
		Help: "Backend responses that forced a session teardown.",
	})
)
