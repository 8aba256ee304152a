package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/smallie-ng/smallie-web/pkg/session"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// SessionIDKey is the gin context key holding the visitor session ID
const SessionIDKey = "sessionID"

// SessionMiddleware attaches a signed visitor session cookie. Missing or
// invalid cookies are replaced with a freshly issued session.
func SessionMiddleware(sessions *session.Manager, logger *zap.Logger) gin.HandlerFunc {
	maxAge := int(sessions.MaxAge().Seconds())

	return func(c *gin.Context) {
		if cookie, err := c.Cookie(session.CookieName); err == nil && cookie != "" {
			claims, err := sessions.Verify(cookie)
			if err == nil {
				c.Set(SessionIDKey, claims.ID)
				c.Next()
				return
			}
			logger.Debug("Discarding invalid session cookie", zap.Error(err))
		}

		token, id, err := sessions.Issue()
		if err != nil {
			logger.Error("Failed to issue session", zap.Error(err))
			c.Next()
			return
		}
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(session.CookieName, token, maxAge, "/", "", c.Request.TLS != nil, true)
		c.Set(SessionIDKey, id)
		c.Next()
	}
}

// AdminAuthMiddleware gates the admin dashboard behind HTTP basic auth when a
// bcrypt password hash is configured. Without a hash the page stays open.
func AdminAuthMiddleware(username, passwordHash string, logger *zap.Logger) gin.HandlerFunc {
	if passwordHash == "" {
		return func(c *gin.Context) { c.Next() }
	}
	hash := []byte(passwordHash)

	return func(c *gin.Context) {
		user, password, ok := c.Request.BasicAuth()
		if !ok {
			challenge(c)
			return
		}

		userOK := subtle.ConstantTimeCompare([]byte(user), []byte(username)) == 1
		passErr := bcrypt.CompareHashAndPassword(hash, []byte(password))
		if !userOK || passErr != nil {
			logger.Warn("Admin authentication failed", zap.String("user", user), zap.String("client_ip", c.ClientIP()))
			challenge(c)
			return
		}

		c.Next()
	}
}

func challenge(c *gin.Context) {
	c.Header("WWW-Authenticate", `Basic realm="smallie-admin", charset="UTF-8"`)
	c.AbortWithStatus(http.StatusUnauthorized)
}
