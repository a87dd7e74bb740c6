package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"dharmachain/models"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGate(t *testing.T, allow string) (*Gate, *TokenManager) {
	t.Helper()
	tokens, err := NewTokenManager("test-secret", time.Hour)
	require.NoError(t, err)
	gate, err := NewGate(ParseAllowList(allow), GoogleProviderName, tokens, nil)
	require.NoError(t, err)
	return gate, tokens
}

func googleIdentity(email string) *models.Identity {
	return &models.Identity{Provider: GoogleProviderName, Email: email, EmailVerified: true}
}

func TestParseAllowList(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		email string
		want  bool
	}{
		{name: "trimmed entry", raw: " a@x.com , b@x.com", email: "a@x.com", want: true},
		{name: "second entry", raw: "a@x.com,b@x.com", email: "b@x.com", want: true},
		{name: "case sensitive", raw: "a@x.com", email: "A@x.com", want: false},
		{name: "not listed", raw: "a@x.com", email: "b@x.com", want: false},
		{name: "empty list", raw: "", email: "a@x.com", want: false},
		{name: "empty email never matches", raw: "a@x.com,,", email: "", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseAllowList(tt.raw).Contains(tt.email))
		})
	}
	assert.Equal(t, 2, ParseAllowList("a@x.com, ,b@x.com,").Len())
}

func TestSignInRejectsEmailOutsideAllowList(t *testing.T) {
	gate, _ := newTestGate(t, "a@x.com")

	token, session, err := gate.SignIn(context.Background(), googleIdentity("b@x.com"))
	require.Error(t, err)
	assert.Empty(t, token)
	assert.Nil(t, session)

	var denied *AuthorizationDenied
	require.True(t, errors.As(err, &denied))
	assert.Equal(t, ReasonNotAllowListed, denied.Reason)
	assert.True(t, IsAuthorizationDenied(err))
}

func TestSignInRejectsOtherProviders(t *testing.T) {
	gate, _ := newTestGate(t, "a@x.com")

	_, _, err := gate.SignIn(context.Background(), &models.Identity{Provider: "github", Email: "a@x.com", EmailVerified: true})
	var denied *AuthorizationDenied
	require.ErrorAs(t, err, &denied)
	assert.Equal(t, ReasonProviderNotAllowed, denied.Reason)

	_, _, err = gate.SignIn(context.Background(), nil)
	assert.True(t, IsAuthorizationDenied(err))
}

func TestSignInRejectsUnverifiedEmail(t *testing.T) {
	gate, _ := newTestGate(t, "a@x.com")
	id := googleIdentity("a@x.com")
	id.EmailVerified = false

	_, _, err := gate.SignIn(context.Background(), id)
	var denied *AuthorizationDenied
	require.ErrorAs(t, err, &denied)
	assert.Equal(t, ReasonUnverifiedEmail, denied.Reason)
}

func TestSignInIssuesAdminToken(t *testing.T) {
	gate, _ := newTestGate(t, "a@x.com")

	token, session, err := gate.SignIn(context.Background(), googleIdentity("a@x.com"))
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.True(t, session.IsAdmin)
	assert.Equal(t, "a@x.com", session.Email)

	parsed, err := gate.Verify(token)
	require.NoError(t, err)
	assert.True(t, parsed.IsAdmin)
	assert.Equal(t, "a@x.com", parsed.Email)
}

func TestIssuedClaimSurvivesAllowListChange(t *testing.T) {
	gate, tokens := newTestGate(t, "a@x.com")
	token, _, err := gate.SignIn(context.Background(), googleIdentity("a@x.com"))
	require.NoError(t, err)

	revoked, err := NewGate(ParseAllowList(""), GoogleProviderName, tokens, nil)
	require.NoError(t, err)

	session, err := revoked.Verify(token)
	require.NoError(t, err)
	assert.True(t, session.IsAdmin)
	assert.False(t, revoked.IsAdmin("a@x.com"))
}

func TestTokenRejectsTamperingAndExpiry(t *testing.T) {
	tokens, err := NewTokenManager("secret-one", time.Hour)
	require.NoError(t, err)
	other, err := NewTokenManager("secret-two", time.Hour)
	require.NoError(t, err)

	token, _, err := tokens.Issue("a@x.com", "", true)
	require.NoError(t, err)

	_, err = other.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	_, err = tokens.Parse(parts[0] + "." + parts[1] + ".invalid")
	assert.ErrorIs(t, err, ErrInvalidToken)

	past := time.Now().Add(-2 * time.Hour)
	expired, _, err := tokens.WithClock(func() time.Time { return past }).Issue("a@x.com", "", true)
	require.NoError(t, err)
	_, err = tokens.WithClock(time.Now).Parse(expired)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenRejectsNoneAlgorithm(t *testing.T) {
	tokens, err := NewTokenManager("secret", time.Hour)
	require.NoError(t, err)

	claims := SessionClaims{
		Email:   "a@x.com",
		IsAdmin: true,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = tokens.Parse(unsigned)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewTokenManagerRequiresSecret(t *testing.T) {
	_, err := NewTokenManager("", time.Hour)
	assert.Error(t, err)
}

func TestStateCodecRoundTrip(t *testing.T) {
	codec := NewStateCodec("secret", false)

	state, cookie, err := codec.Issue()
	require.NoError(t, err)
	assert.Equal(t, StateCookieName, cookie.Name)
	assert.True(t, cookie.HttpOnly)

	assert.NoError(t, codec.Verify(cookie.Value, state))
	assert.ErrorIs(t, codec.Verify(cookie.Value, "forged"), ErrStateMismatch)
	assert.ErrorIs(t, codec.Verify("", state), ErrStateMismatch)
	assert.ErrorIs(t, NewStateCodec("other", false).Verify(cookie.Value, state), ErrStateMismatch)
	assert.Equal(t, -1, codec.ClearCookie().MaxAge)
}

func TestGoogleProviderExchangeReadsUserInfo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/token":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"access_token":"at","token_type":"Bearer","expires_in":3600}`))
		case "/userinfo":
			assert.Equal(t, "Bearer at", r.Header.Get("Authorization"))
			_, _ = w.Write([]byte(`{"sub":"123","email":"a@x.com","email_verified":true,"name":"Admin"}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	p, err := NewGoogleProvider("id", "secret", "http://localhost/admin/callback")
	require.NoError(t, err)
	p.conf.Endpoint.TokenURL = srv.URL + "/token"
	p.userInfoURL = srv.URL + "/userinfo"

	id, err := p.Exchange(context.Background(), "code")
	require.NoError(t, err)
	assert.Equal(t, GoogleProviderName, id.Provider)
	assert.Equal(t, "a@x.com", id.Email)
	assert.True(t, id.EmailVerified)
	assert.Contains(t, p.AuthCodeURL("st"), "state=st")
}

func TestNewGoogleProviderRequiresCredentials(t *testing.T) {
	_, err := NewGoogleProvider("", "secret", "")
	assert.Error(t, err)
}
