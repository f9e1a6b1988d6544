package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var loginRedirectsTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "console_session_login_redirects_total",
	Help: "Navigation signals emitted by session teardowns.",
})
