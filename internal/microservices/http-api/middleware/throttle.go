package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"animehub/internal/ratelimit"
)

// CommentThrottle limits comment posting per visitor. It must run after VisitorIdentity.
func CommentThrottle(throttle *ratelimit.Throttle) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := VisitorID(c)
		if key == "" {
			key = c.ClientIP()
		}
		if !throttle.Allow(key) {
			c.Header("Retry-After", "10")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "you are commenting too fast, try again shortly"})
			return
		}
		c.Next()
	}
}
