package middleware

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionCookie is the cookie carrying the anonymous cart-owner id.
const SessionCookie = "sessionId"

const sessionMaxAge = 30 * 24 * 60 * 60 // 30 days, in seconds

// Session ensures every request carries a unique cart-session id. When the
// cookie is missing a fresh server-generated id is issued — never a shared
// fallback value, so carts cannot leak between anonymous visitors.
func Session(c *gin.Context) {
	sid, err := c.Cookie(SessionCookie)
	if err != nil || sid == "" {
		sid = "sess_" + generateRandomString(16)
		c.SetCookie(SessionCookie, sid, sessionMaxAge, "/", "", false, true)
	}
	c.Set("session_id", sid)
	c.Next()
}

func generateRandomString(n int) string {
	bytes := make([]byte, n)
	if _, err := rand.Read(bytes); err != nil {
		return uuid.NewString()
	}
	return hex.EncodeToString(bytes)
}
