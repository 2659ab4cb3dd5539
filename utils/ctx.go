package utils

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
)

// QueryContext bounds a store call to the configured timeout so a
// degraded database never blocks a request indefinitely.
func QueryContext(c *gin.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return context.WithTimeout(c.Request.Context(), timeout)
}
