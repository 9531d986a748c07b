package app

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// UserIDHeader carries the caller's identity. The value is trusted verbatim;
// authenticating it is out of scope here.
const UserIDHeader = "X-Sharer-User-Id"

const ContextUserIDKey = "userID"

// RequireUserID extracts the caller id from the identity header and puts it
// into the request context. A missing or malformed header fails the request.
func RequireUserID() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(UserIDHeader)
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, H{"error": "missing " + UserIDHeader + " header"})
			return
		}
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, H{"error": "malformed " + UserIDHeader + " header"})
			return
		}
		c.Set(ContextUserIDKey, id)
		c.Next()
	}
}

// CallerID reads the id RequireUserID stored; ok is false on routes that do
// not run the middleware.
func CallerID(c *gin.Context) (int64, bool) {
	v, ok := c.Get(ContextUserIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}
