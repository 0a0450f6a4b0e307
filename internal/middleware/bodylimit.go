package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/HenrikBaltazar/linked-list-graph/internal/httputil"
	"github.com/HenrikBaltazar/linked-list-graph/internal/metrics"
)

// MaxBodySize caps request bodies at maxBytes. Requests that declare a
// larger Content-Length are refused with 413 before any handler runs; the
// rest are read through http.MaxBytesReader. A non-positive limit disables
// the cap.
func MaxBodySize(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if maxBytes <= 0 || c.Request.Body == nil {
			c.Next()

			return
		}

		if c.Request.ContentLength > maxBytes {
			metrics.ErrorsTotal.WithLabelValues(httputil.CodePayloadTooLarge).Inc()
			httputil.RespondError(c, http.StatusRequestEntityTooLarge, httputil.CodePayloadTooLarge, "request body too large")

			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
