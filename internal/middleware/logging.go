package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RequestLogger attaches a request-scoped logger to the request context and
// writes one structured line per request once the handlers return, panics included.
// Must run after RequestID.
func RequestLogger(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		reqLogger := logger.With().Str("request_id", GetRequestID(c)).Logger()
		c.Request = c.Request.WithContext(reqLogger.WithContext(c.Request.Context()))

		defer func() {
			status := c.Writer.Status()
			rec := recover()
			if rec != nil {
				status = http.StatusInternalServerError
			}

			evt := reqLogger.Info()
			if status >= 500 {
				evt = reqLogger.Error()
			} else if status >= 400 {
				evt = reqLogger.Warn()
			}

			if len(c.Errors) > 0 {
				evt = evt.Str("errors", c.Errors.String())
			}
			if rec != nil {
				evt = evt.Interface("panic", rec)
			}

			evt.
				Str("method", c.Request.Method).
				Str("route", routeOf(c)).
				Int("status", status).
				Dur("duration_ms", time.Since(start)).
				Int("bytes_sent", c.Writer.Size()).
				Msg("request")

			if rec != nil {
				panic(rec)
			}
		}()

		c.Next()
	}
}

// routeOf returns the matched route pattern so ids never reach logs or labels
func routeOf(c *gin.Context) string {
	if route := c.FullPath(); route != "" {
		return route
	}
	return "unmatched"
}
