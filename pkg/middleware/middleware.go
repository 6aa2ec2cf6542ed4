package middleware

import (
	"strconv"
	"strings"
	"time"

	"github.com/Meesho/BharatMLStack/tabflow/pkg/logger"
	"github.com/Meesho/BharatMLStack/tabflow/pkg/metrics"
	"github.com/gin-gonic/gin"
)

// Telemetry logs one line per request and publishes request count and latency
// to statsd, tagged by path, method, and status class.
func Telemetry() gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()

		c.Next()

		responseTime := time.Since(startTime)
		statusCode := c.Writer.Status()
		tags := []string{
			"path", c.FullPath(),
			"method", c.Request.Method,
			"status", strconv.Itoa(statusCode),
		}
		metrics.Count("http.request.total", 1, tags)
		metrics.Timing("http.request.latency", responseTime, tags)

		logVariables := []string{
			c.Request.Method,
			c.Request.URL.Path,
			strconv.Itoa(statusCode),
			responseTime.String(),
		}
		logger.Info(strings.Join(logVariables, " | "))
	}
}
