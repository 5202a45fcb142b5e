package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

// RateLimit 返回一个 Gin 中间件，基于客户端 IP 做速率限制。
// redisClient: 存储计数器的 Redis 客户端，必须提供。
// maxRequests: 时间窗口内允许的最大请求数。
// window: 速率限制的时间窗口。
func RateLimit(redisClient *redis.Client, maxRequests int, window time.Duration) gin.HandlerFunc {
	// 启动时检查依赖
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
		// 以客户端 IP 作为限流键；部署在反向代理后时
		// 依赖 gin 的 ClientIP 处理 X-Forwarded-For
		key := "ratelimit:" + c.ClientIP()

		// INCR + EXPIRE 放进一个 Pipeline，减少计数和设置过期之间的窗口
		pipe := redisClient.Pipeline()
		incrCmd := pipe.Incr(c.Request.Context(), key)
		pipe.Expire(c.Request.Context(), key, window)
		if _, err := pipe.Exec(c.Request.Context()); err != nil {
			logrus.WithError(err).Error("RateLimit: Redis pipeline failed")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"kind":    "internal_error",
				"message": "Rate limiting error",
			})
			return
		}

		count, err := incrCmd.Result()
		if err != nil {
			logrus.WithError(err).Error("RateLimit: failed to read INCR result")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"kind":    "internal_error",
				"message": "Rate limiting error",
			})
			return
		}

		if count > int64(maxRequests) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"kind":    "rate_limited",
				"message": "Too many requests",
			})
			return
		}

		c.Next()
	}
}
