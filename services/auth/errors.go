package auth

import "errors"

const (
	ReasonProviderNotAllowed = "provider_not_allowed"
	ReasonNotAllowListed     = "not_allow_listed"
	ReasonUnverifiedEmail    = "unverified_email"
)

// ErrInvalidToken is returned for malformed, tampered or expired session tokens.
var ErrInvalidToken = errors.New("invalid session token")

// AuthorizationDenied is returned when sign-in is refused.
type AuthorizationDenied struct {
	Reason string
	Email  string
}

func (e *AuthorizationDenied) Error() string {
	if e.Email == "" {
		return "authorization denied: " + e.Reason
	}
	return "authorization denied for " + e.Email + ": " + e.Reason
}

// IsAuthorizationDenied reports whether err is an AuthorizationDenied.
func IsAuthorizationDenied(err error) bool {
	var denied *AuthorizationDenied
	return errors.As(err, &denied)
}
