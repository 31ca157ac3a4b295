package middleware

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "testtrack-backend/internal/errors"
	"testtrack-backend/internal/ratelimit"

	"github.com/gin-gonic/gin"
)

// RateLimit enforces a fixed-window limit per client IP on the wrapped
// routes. The namespace keeps different route groups from sharing windows.
func RateLimit(store ratelimit.Store, namespace string, max, windowSeconds int) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := store.Check(namespace, c.ClientIP(), max, windowSeconds)
		if err == nil {
			c.Next()
			return
		}

		var rateErr *apperrors.RateLimitError
		retryAfter := windowSeconds
		if errors.As(err, &rateErr) {
			retryAfter = rateErr.RetryAfterSeconds
		}

		c.Header("Retry-After", strconv.Itoa(retryAfter))
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
			"error": "too many requests",
		})
	}
}
