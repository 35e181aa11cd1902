package router

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/finance-tracker/backend/pkg/models"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// URLMiddleware makes the public base URL of the API available to
// handlers, which use it to build resource links.
func URLMiddleware(base *url.URL) gin.HandlerFunc {
	external := base.String()

	return func(c *gin.Context) {
		c.Set(string(models.DBContextURL), external)
		c.Next()
	}
}

// Labels of the request metrics. The route is gin's route template,
// e.g. /v1/transactions/:id, so that resource IDs do not end up in labels.
var requestLabels = []string{"code", "method", "route"}

var (
	requestCount = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "finance_tracker",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Number of handled HTTP requests by status code, method and route.",
	}, requestLabels)

	requestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "finance_tracker",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Latency of handled HTTP requests by status code, method and route.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5},
	}, requestLabels)
)

func collectors() []prometheus.Collector {
	return []prometheus.Collector{requestCount, requestDuration}
}

// registerPrometheusMetrics registers the request metrics with the
// default registry.
func registerPrometheusMetrics() error {
	var errs []error
	for _, c := range collectors() {
		if err := prometheus.Register(c); err != nil {
			errs = append(errs, fmt.Errorf("registering %T: %w", c, err))
		}
	}

	return errors.Join(errs...)
}

// unregisterPrometheusMetrics removes the request metrics from the default
// registry so that the router can be configured again.
func unregisterPrometheusMetrics() bool {
	ok := true
	for _, c := range collectors() {
		ok = prometheus.Unregister(c) && ok
	}

	return ok
}

// MetricsMiddleware records count and latency of every request.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		labels := prometheus.Labels{
			"code":   strconv.Itoa(c.Writer.Status()),
			"method": c.Request.Method,
			"route":  route,
		}

		requestDuration.With(labels).Observe(time.Since(start).Seconds())
		requestCount.With(labels).Inc()
	}
}
