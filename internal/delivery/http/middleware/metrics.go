package middleware

import (
	"net/http"
	"strconv"
	"time"

	"compliance-ai-backend/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics records request latency per matched route. Unmatched paths
// (static assets, SPA routes) share one label to keep cardinality bounded.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		method := c.Request.Method
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
			method = knownMethod(method)
		}
		m.ObserveRequest(method, route, strconv.Itoa(c.Writer.Status()), time.Since(start).Seconds())
	}
}

// knownMethod folds arbitrary request methods into a fixed label set.
// Matched routes only ever see their registered method.
func knownMethod(method string) string {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodPost, http.MethodOptions:
		return method
	}
	return "OTHER"
}
