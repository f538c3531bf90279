package ratelimit

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/ZanzyTHEbar/inclusive-o-meter/internal/errors"
	"github.com/gin-gonic/gin"
)

// IPRateLimitMiddleware limits requests per client IP. Requests whose path
// starts with one of skipPrefixes are never counted.
func (rl *RateLimiter) IPRateLimitMiddleware(skipPrefixes ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, prefix := range skipPrefixes {
			if strings.HasPrefix(path, prefix) {
				c.Next()
				return
			}
		}

		ip := c.ClientIP()
		result := rl.AllowIP(c.Request.Context(), ip)

		c.Header("X-RateLimit-Limit", strconv.Itoa(result.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))

		if !result.Allowed {
			if rl.metrics != nil {
				rl.metrics.IncrementRateLimitIPBlock()
			}

			retryAfter := int(result.RetryAfter.Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.Itoa(retryAfter))

			appErr := errors.NewRateLimitError(strconv.Itoa(retryAfter) + "s")
			if id, ok := c.Get("request_id"); ok {
				if s, ok := id.(string); ok {
					appErr.RequestID = s
				}
			}
			slog.Warn("Rate limit exceeded", "ip", ip, "path", path, "retry_after", retryAfter)

			c.AbortWithStatusJSON(appErr.HTTPStatus, gin.H{"error": appErr.Response()})
			return
		}

		c.Next()
	}
}
