package middleware

import (
	"strconv"
	"time"

	"github.com/clowiiza1/pukkeconnect-backend/internal/logging"
	"github.com/clowiiza1/pukkeconnect-backend/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const RequestIDHeader = "X-Request-ID"

// RequestLogger tags every request with an id, puts a request-scoped logger
// in the request context and records the request duration metric.
func RequestLogger(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = logging.GenerateRequestID()
		}
		c.Header(RequestIDHeader, id)

		ctx := logging.ContextWithRequestID(c.Request.Context(), id)
		ctx = logging.ContextWithLogger(ctx, logger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		status := c.Writer.Status()
		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}
		took := time.Since(start)
		metrics.APIRequestDuration.
			WithLabelValues(c.Request.Method, endpoint, strconv.Itoa(status)).
			Observe(took.Seconds())

		log := logging.Ctx(ctx)
		event := log.Info()
		switch {
		case status >= 500:
			event = log.Error()
		case status >= 400:
			event = log.Warn()
		}
		if len(c.Errors) > 0 {
			event = event.Str("errors", c.Errors.String())
		}
		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", took).
			Msg("request")
	}
}
