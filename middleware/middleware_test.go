package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"dharmachain/models"
	"dharmachain/services/auth"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type tokenTable map[string]*models.AdminSession

func (t tokenTable) Verify(token string) (*models.AdminSession, error) {
	if s, ok := t[token]; ok {
		return s, nil
	}
	return nil, errors.New("invalid")
}

func guardedRouter(v SessionVerifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin/dashboard", AdminGuard(v), func(c *gin.Context) {
		s, ok := CurrentAdmin(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, s.Email)
	})
	return r
}

func TestAdminGuard(t *testing.T) {
	tokens := tokenTable{
		"admin":   {Email: "a@x.com", IsAdmin: true},
		"visitor": {Email: "v@x.com", IsAdmin: false},
	}
	r := guardedRouter(tokens)

	tests := []struct {
		name     string
		cookie   string
		bearer   string
		status   int
		location string
	}{
		{"no token", "", "", http.StatusFound, "/admin"},
		{"invalid token", "forged", "", http.StatusFound, "/admin"},
		{"not an admin", "visitor", "", http.StatusFound, "/admin?error=access_denied"},
		{"admin cookie", "admin", "", http.StatusOK, ""},
		{"admin bearer", "", "admin", http.StatusOK, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: tt.cookie})
			}
			if tt.bearer != "" {
				req.Header.Set("Authorization", "Bearer "+tt.bearer)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			require.Equal(t, tt.status, w.Code)
			if tt.location != "" {
				assert.Equal(t, tt.location, w.Header().Get("Location"))
			} else {
				assert.Equal(t, "a@x.com", w.Body.String())
			}
		})
	}
}

func TestRateLimitPerIP(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimitMiddleware(NewRateLimiterStore(2)))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	hit := func(ip string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Forwarded-For", ip+", 10.0.0.1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}
	assert.Equal(t, http.StatusOK, hit("1.1.1.1"))
	assert.Equal(t, http.StatusOK, hit("1.1.1.1"))
	assert.Equal(t, http.StatusTooManyRequests, hit("1.1.1.1"))
	assert.Equal(t, http.StatusOK, hit("2.2.2.2"))
}

func TestGetClientIP(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.RemoteAddr = "192.0.2.1:1234"
	assert.Equal(t, "192.0.2.1", getClientIP(c))

	c.Request.Header.Set("X-Real-IP", " 203.0.113.9 ")
	assert.Equal(t, "203.0.113.9", getClientIP(c))

	c.Request.Header.Set("X-Forwarded-For", "unknown, 198.51.100.7, 10.0.0.1")
	assert.Equal(t, "198.51.100.7", getClientIP(c))
}

func TestRequestLoggerExposesLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestLogger(zap.NewNop()))
	r.GET("/", func(c *gin.Context) {
		l, ok := c.Get(LoggerKey)
		assert.True(t, ok)
		assert.IsType(t, &zap.Logger{}, l)
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "req-42", w.Header().Get(RequestIDHeader))
}
