// internal/api/middleware.go
package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// requestLogger logs one entry per API request. Failed requests are raised
// to warn or error so polling clients stay quiet at the default level.
func requestLogger(log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		started := time.Now()
		// captured before c.Next, handlers may rewrite the URL
		target := c.Request.URL.RequestURI()

		c.Next()

		code := c.Writer.Status()
		entry := log.WithFields(logrus.Fields{
			"method":      c.Request.Method,
			"target":      target,
			"route":       c.FullPath(),
			"code":        code,
			"duration_ms": time.Since(started).Milliseconds(),
			"bytes":       max(c.Writer.Size(), 0),
			"client":      c.ClientIP(),
		})

		if errs := c.Errors.ByType(gin.ErrorTypePrivate); len(errs) > 0 {
			entry.WithField("errors", errs.Errors()).Error("api request failed")
			return
		}

		switch {
		case code >= http.StatusInternalServerError:
			entry.Error("api request failed")
		case code >= http.StatusBadRequest:
			entry.Warn("api request rejected")
		default:
			entry.Debug("api request served")
		}
	}
}
