package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/securecookie"
)

// StateCookieName holds the OAuth state between /admin/login and /admin/callback.
const StateCookieName = "dharmachain_oauth_state"

const stateMaxAge = 10 * time.Minute

// ErrStateMismatch is returned when the callback state does not match the cookie.
var ErrStateMismatch = errors.New("oauth state mismatch")

// StateCodec issues and checks signed OAuth state cookies.
type StateCodec struct {
	codec  *securecookie.SecureCookie
	secure bool
}

// NewStateCodec derives its hash key from the session secret.
func NewStateCodec(secret string, secureCookies bool) *StateCodec {
	hashKey := sha256.Sum256([]byte("oauth-state:" + secret))
	codec := securecookie.New(hashKey[:], nil)
	codec.MaxAge(int(stateMaxAge.Seconds()))
	return &StateCodec{codec: codec, secure: secureCookies}
}

// Issue creates a random state value and the cookie that remembers it.
func (s *StateCodec) Issue() (string, *http.Cookie, error) {
	buf := make([]byte, 24)
	if _, err := rand.Read(buf); err != nil {
		return "", nil, err
	}
	state := base64.RawURLEncoding.EncodeToString(buf)
	encoded, err := s.codec.Encode(StateCookieName, state)
	if err != nil {
		return "", nil, err
	}
	return state, &http.Cookie{
		Name:     StateCookieName,
		Value:    encoded,
		Path:     "/admin",
		MaxAge:   int(stateMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	}, nil
}

// Verify checks the state query value against the signed cookie value.
func (s *StateCodec) Verify(cookieValue, state string) error {
	if cookieValue == "" || state == "" {
		return ErrStateMismatch
	}
	var stored string
	if err := s.codec.Decode(StateCookieName, cookieValue, &stored); err != nil {
		return ErrStateMismatch
	}
	if stored != state {
		return ErrStateMismatch
	}
	return nil
}

// ClearCookie expires the state cookie.
func (s *StateCodec) ClearCookie() *http.Cookie {
	return &http.Cookie{
		Name:     StateCookieName,
		Value:    "",
		Path:     "/admin",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	}
}
