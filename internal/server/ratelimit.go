package server

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"auction-marketplace/internal/auth"
	"auction-marketplace/utils"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// rateLimitKey identifies the caller: the user when authenticated, the client IP otherwise.
func rateLimitKey(c *gin.Context) string {
	if p := auth.PrincipalFromContext(c.Request.Context()); p != nil {
		return "ratelimit:user:" + strconv.FormatUint(uint64(p.UserID), 10)
	}
	return "ratelimit:ip:" + c.ClientIP()
}

// RateLimit caps write requests per caller with a counter in Redis that expires
// after window of inactivity. Reads are never limited.
func RateLimit(redisClient *redis.Client, maxRequests int, window time.Duration) gin.HandlerFunc {
	if redisClient == nil {
		panic("Redis client cannot be nil for RateLimit middleware")
	}
	if maxRequests <= 0 {
		panic("maxRequests must be positive for RateLimit middleware")
	}
	if window <= 0 {
		panic("window duration must be positive for RateLimit middleware")
	}

	return func(c *gin.Context) {
		if isSafeMethod(c.Request.Method) {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		key := rateLimitKey(c)

		pipe := redisClient.Pipeline()
		incrCmd := pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, window)
		if _, err := pipe.Exec(ctx); err != nil {
			utils.Error("RateLimit: redis pipeline failed", map[string]any{"key": key, "error": err.Error()})
			utils.AbortWithError(c, http.StatusInternalServerError, err, "rate limiting error")
			return
		}

		count, err := incrCmd.Result()
		if err != nil {
			utils.Error("RateLimit: failed to read counter", map[string]any{"key": key, "error": err.Error()})
			utils.AbortWithError(c, http.StatusInternalServerError, err, "rate limiting error")
			return
		}

		if count > int64(maxRequests) {
			utils.Warn("RateLimit: limit exceeded", map[string]any{"key": key, "count": count})
			utils.AbortWithError(c, http.StatusTooManyRequests, errors.New("rate limit exceeded"), "too many requests")
			return
		}

		c.Next()
	}
}
