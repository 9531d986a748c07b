package app

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// ThrottleRequests caps requests per caller per minute with a Redis
// INCR+EXPIRE window. Keyed by the identity header when present, client IP
// otherwise. Redis being down degrades to letting requests through.
func ThrottleRequests(rdb *redis.Client, perMinute int) gin.HandlerFunc {
	return func(c *gin.Context) {
		who := c.GetHeader(UserIDHeader)
		if who == "" {
			who = c.ClientIP()
		}
		key := "throttle:" + who + ":" + time.Now().Format("200601021504")

		pipe := rdb.TxPipeline()
		count := pipe.Incr(c, key)
		pipe.Expire(c, key, time.Minute)
		if _, err := pipe.Exec(c); err != nil {
			c.Next()
			return
		}
		if count.Val() > int64(perMinute) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, H{"error": "too many requests"})
			return
		}
		c.Next()
	}
}
