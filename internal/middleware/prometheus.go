package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/HenrikBaltazar/linked-list-graph/internal/metrics"
)

// scrapePath is excluded so polling /metrics does not inflate the counters.
const scrapePath = "/metrics"

// PrometheusMiddleware records request duration and count per route pattern.
// Unmatched routes share the "unknown" label.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == scrapePath {
			c.Next()

			return
		}

		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unknown"
		}

		labels := []string{c.Request.Method, route, strconv.Itoa(c.Writer.Status())}
		metrics.RequestDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())
		metrics.RequestsTotal.WithLabelValues(labels...).Inc()
	}
}
