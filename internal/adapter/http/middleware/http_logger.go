package middleware

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bellj/connect-api-examples/internal/logging"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Form fields that must never reach the logs. The nonce is a live payment
// token.
var sensitiveFields = map[string]bool{
	"nonce":         true,
	"pickup_email":  true,
	"pickup_number": true,
}

func redactValues(v url.Values) url.Values {
	out := url.Values{}
	for k, vals := range v {
		if sensitiveFields[strings.ToLower(k)] {
			out.Set(k, "***redacted***")
			continue
		}
		out[k] = vals
	}
	return out
}

// Logging returns a Gin middleware that logs each request and injects a
// request-scoped slog.Logger into the context.
func Logging(base *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		reqID := c.GetHeader("X-Request-Id")
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Header("X-Request-Id", reqID)

		l := base.With(
			"req_id", reqID,
			"method", c.Request.Method,
			"path", c.FullPath(), // may be empty if no route matched
			"remote", c.ClientIP(),
		)
		logging.With(c, l)
		c.Request = c.Request.WithContext(logging.WithCtx(c.Request.Context(), l))

		c.Next()

		status := c.Writer.Status()
		attrs := []any{
			"status", status,
			"dur_ms", time.Since(start).Milliseconds(),
			"resp_bytes", c.Writer.Size(),
		}
		if q := c.Request.URL.Query(); len(q) > 0 {
			attrs = append(attrs, "query", redactValues(q).Encode())
		}
		if loc := c.Writer.Header().Get("Location"); loc != "" {
			attrs = append(attrs, "redirect", loc)
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, "error", c.Errors.String())
		}

		if status >= http.StatusBadRequest {
			l.Error("http_request", attrs...)
			return
		}
		l.Info("http_request", attrs...)
	}
}
