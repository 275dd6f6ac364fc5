package server

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// httpRequests counts handled requests by route template, method and status code.
var httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "lvroute_http_requests_total",
	Help: "HTTP requests by route, method and status code",
}, []string{"route", "method", "code"})

func observeRequest(route, method string, status int) {
	httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
}
