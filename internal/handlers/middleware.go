package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
)

// accessLog writes one structured line per request once the handler chain is done.
func (h *Handler) accessLog(c *gin.Context) {
	start := time.Now()
	c.Next()

	if h.log == nil {
		return
	}
	fields := []interface{}{
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"status", c.Writer.Status(),
		"latency", time.Since(start),
	}
	if len(c.Errors) > 0 {
		fields = append(fields, "errors", c.Errors.String())
	}
	switch {
	case c.Writer.Status() >= 500:
		h.log.Errorw("http_request", fields...)
	case c.Writer.Status() >= 400:
		h.log.Warnw("http_request", fields...)
	default:
		h.log.Debugw("http_request", fields...)
	}
}
