package middleware

import (
	"net/http"
	"strings"

	"dharmachain/models"
	"dharmachain/services/auth"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	// AdminSessionKey is the gin context key holding the *models.AdminSession.
	AdminSessionKey = "adminSession"

	loginPath        = "/admin"
	accessDeniedPath = "/admin?error=access_denied"
)

// SessionVerifier turns a session token into a session.
type SessionVerifier interface {
	Verify(token string) (*models.AdminSession, error)
}

// AdminGuard admits requests carrying a valid admin session. Requests without a usable
// token go to the login page; valid tokens without admin rights go there with an error.
func AdminGuard(verifier SessionVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := sessionToken(c)
		if token == "" {
			c.Redirect(http.StatusFound, loginPath)
			c.Abort()
			return
		}

		session, err := verifier.Verify(token)
		if err != nil {
			zap.L().Debug("Rejected admin session", zap.String("ip", getClientIP(c)), zap.Error(err))
			c.Redirect(http.StatusFound, loginPath)
			c.Abort()
			return
		}
		if !session.IsAdmin {
			zap.L().Warn("Non-admin session on admin route", zap.String("email", session.Email), zap.String("path", c.Request.URL.Path))
			c.Redirect(http.StatusFound, accessDeniedPath)
			c.Abort()
			return
		}

		c.Set(AdminSessionKey, session)
		c.Next()
	}
}

// CurrentAdmin returns the session stored by AdminGuard.
func CurrentAdmin(c *gin.Context) (*models.AdminSession, bool) {
	v, ok := c.Get(AdminSessionKey)
	if !ok {
		return nil, false
	}
	s, ok := v.(*models.AdminSession)
	return s, ok
}

func sessionToken(c *gin.Context) string {
	if cookie, err := c.Cookie(auth.SessionCookieName); err == nil && cookie != "" {
		return cookie
	}
	if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	return ""
}
