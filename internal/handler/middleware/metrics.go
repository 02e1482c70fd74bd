package middleware

import (
	"time"

	"shareit/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics labels requests by route template so path ids do not explode
// label cardinality.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		metrics.ObserveHTTP(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}
