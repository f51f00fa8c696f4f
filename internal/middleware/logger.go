package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/marketpulse/internal/logger"
	"github.com/guttosm/marketpulse/internal/metrics"
)

// RequestLogger logs one structured line per request and feeds the HTTP
// request counter.
//
// Behavior:
//   - Captures start time before request handling.
//   - After the handler chain runs, logs method, route, status, latency in ms,
//     client IP, and the request_id injected by RequestID().
//   - Increments metrics.HTTPRequests labeled by method, route, and status.
//
// Example log output:
//
//	request_id=123e4567-e89b-12d3-a456-426614174000 method=GET path=/api/v1/breadth/snapshot status=200 latency_ms=12
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		method := c.Request.Method
		path := c.Request.URL.Path

		c.Next()

		status := c.Writer.Status()

		// Prefer the route template over the raw path so metric cardinality
		// stays bounded when paths carry parameters.
		route := c.FullPath()
		if route == "" {
			route = path
		}
		metrics.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()

		logger.L().Info().
			Str("request_id", requestIDFrom(c)).
			Str("method", method).
			Str("path", path).
			Int("status", status).
			Int64("latency_ms", time.Since(start).Milliseconds()).
			Str("client_ip", c.ClientIP()).
			Msg("http_request")
	}
}
