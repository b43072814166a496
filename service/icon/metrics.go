package icon

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	iconRequestsCounter = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "jazzicon",
		Name:      "icon_requests_total",
	})
	iconGenerationsCounter = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "jazzicon",
		Name:      "icon_generations_total",
	})
	iconErrorsCounter = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "jazzicon",
		Name:      "icon_errors_total",
	})
)
