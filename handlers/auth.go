package handlers

import (
	"errors"
	"net/http"
	"time"

	"dharmachain/services/auth"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	dashboardPath    = "/admin/dashboard"
	accessDeniedPath = "/admin?error=access_denied"
)

// AuthHandler runs the admin sign-in flow.
type AuthHandler struct {
	Gate          *auth.Gate
	Provider      auth.IdentityProvider
	State         *auth.StateCodec
	SessionTTL    time.Duration
	SecureCookies bool
}

func NewAuthHandler(gate *auth.Gate, provider auth.IdentityProvider, state *auth.StateCodec, ttl time.Duration, secure bool) *AuthHandler {
	return &AuthHandler{Gate: gate, Provider: provider, State: state, SessionTTL: ttl, SecureCookies: secure}
}

// LoginPageHandler describes the login screen. The error query is echoed back.
func (h *AuthHandler) LoginPageHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"title":    "Admin Login",
		"provider": h.Provider.Name(),
		"loginUrl": "/admin/login",
		"error":    c.Query("error"),
	})
}

// LoginHandler redirects to the identity provider with a signed state cookie.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	state, cookie, err := h.State.Issue()
	if err != nil {
		getLogger(c).Error("Failed to issue oauth state", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start sign-in"})
		return
	}
	http.SetCookie(c.Writer, cookie)
	c.Redirect(http.StatusFound, h.Provider.AuthCodeURL(state))
}

// CallbackHandler finishes the code exchange and signs the admin in.
func (h *AuthHandler) CallbackHandler(c *gin.Context) {
	logger := getLogger(c)
	http.SetCookie(c.Writer, h.State.ClearCookie())

	if e := c.Query("error"); e != "" {
		logger.Info("Sign-in cancelled at provider", zap.String("error", e))
		c.Redirect(http.StatusFound, accessDeniedPath)
		return
	}

	stateCookie, _ := c.Cookie(auth.StateCookieName)
	if err := h.State.Verify(stateCookie, c.Query("state")); err != nil {
		logger.Warn("OAuth state rejected", zap.Error(err))
		c.Redirect(http.StatusFound, "/admin?error=state_mismatch")
		return
	}

	identity, err := h.Provider.Exchange(c.Request.Context(), c.Query("code"))
	if err != nil {
		logger.Error("OAuth code exchange failed", zap.Error(err))
		c.Redirect(http.StatusFound, "/admin?error=sign_in_failed")
		return
	}

	token, session, err := h.Gate.SignIn(c.Request.Context(), identity)
	var denied *auth.AuthorizationDenied
	if errors.As(err, &denied) {
		c.Redirect(http.StatusFound, accessDeniedPath)
		return
	}
	if err != nil {
		logger.Error("Failed to issue session", zap.Error(err))
		c.Redirect(http.StatusFound, "/admin?error=sign_in_failed")
		return
	}

	h.setSessionCookie(c, token, int(h.SessionTTL.Seconds()))
	logger.Info("Admin signed in", zap.String("email", session.Email))
	c.Redirect(http.StatusFound, dashboardPath)
}

// LogoutHandler clears the session cookie.
func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	h.setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"message": "Signed out", "redirect": "/admin"})
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, value string, maxAge int) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     auth.SessionCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}
