package utils

import (
	"encoding/json"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const sessionCookie = "guitarzero_session"
const sessionTTL = 24 * time.Hour

// SessionTracker hands every visitor a session ID cookie and records it
// in Redis with a TTL. Nothing on the request path reads the session
// back; it exists only for bookkeeping, so Redis errors are logged and
// the request carries on.
func SessionTracker(rdb *redis.Client, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(sessionCookie)
		if err != nil || sessionID == "" {
			sessionID = uuid.New().String()
			c.SetCookie(sessionCookie, sessionID, int(sessionTTL.Seconds()), "/", "", false, true)

			sessionInfo, err := json.Marshal(map[string]interface{}{
				"createdAt": time.Now().Unix(),
			})
			if err == nil {
				err = rdb.Set(c.Request.Context(), "session:"+sessionID, sessionInfo, sessionTTL).Err()
			}
			if err != nil {
				logger.Warn("Failed to store session info in Redis", zap.Error(err))
			}
		}
		c.Next()
	}
}
