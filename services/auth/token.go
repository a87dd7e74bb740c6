package auth

import (
	"errors"
	"fmt"
	"time"

	"dharmachain/models"

	"github.com/golang-jwt/jwt/v4"
)

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "dharmachain_session"

// SessionClaims are the JWT claims of an admin session.
type SessionClaims struct {
	Email   string `json:"email"`
	Name    string `json:"name,omitempty"`
	IsAdmin bool   `json:"isAdmin"`
	jwt.RegisteredClaims
}

// TokenManager signs and verifies session tokens with HS256.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenManager creates a TokenManager. The secret must not be empty.
func NewTokenManager(secret string, ttl time.Duration) (*TokenManager, error) {
	if secret == "" {
		return nil, errors.New("auth: token signing secret is required")
	}
	if ttl <= 0 {
		ttl = 30 * 24 * time.Hour
	}
	return &TokenManager{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// WithClock replaces the time source, for tests.
func (m *TokenManager) WithClock(now func() time.Time) *TokenManager {
	m.now = now
	return m
}

func (m *TokenManager) TTL() time.Duration {
	return m.ttl
}

// Issue creates a signed token for the session.
func (m *TokenManager) Issue(email, name string, isAdmin bool) (string, *models.AdminSession, error) {
	now := m.now()
	exp := now.Add(m.ttl)
	claims := SessionClaims{
		Email:   email,
		Name:    name,
		IsAdmin: isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", nil, fmt.Errorf("auth: sign token: %w", err)
	}
	return signed, &models.AdminSession{
		Email:     email,
		Name:      name,
		IsAdmin:   isAdmin,
		IssuedAt:  now.UTC().Truncate(time.Second),
		ExpiresAt: exp.UTC().Truncate(time.Second),
	}, nil
}

// Parse verifies the token and returns its session.
func (m *TokenManager) Parse(tokenString string) (*models.AdminSession, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	var claims SessionClaims
	token, err := parser.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.ExpiresAt == nil || !claims.ExpiresAt.Time.After(m.now()) {
		return nil, fmt.Errorf("%w: expired", ErrInvalidToken)
	}
	session := &models.AdminSession{
		Email:     claims.Email,
		Name:      claims.Name,
		IsAdmin:   claims.IsAdmin,
		ExpiresAt: claims.ExpiresAt.Time.UTC(),
	}
	if claims.IssuedAt != nil {
		session.IssuedAt = claims.IssuedAt.Time.UTC()
	}
	return session, nil
}
