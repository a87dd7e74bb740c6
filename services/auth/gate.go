// Package auth restricts the admin panel to a fixed allow-list of Google accounts.
package auth

import (
	"context"
	"errors"

	"dharmachain/models"

	"go.uber.org/zap"
)

// Gate decides sign-in and issues session tokens.
// isAdmin is computed once per token; edits to the allow-list apply when a token is reissued.
type Gate struct {
	allow    AllowList
	provider string
	tokens   *TokenManager
	logger   *zap.Logger
}

// NewGate builds the gate for the named provider.
func NewGate(allow AllowList, provider string, tokens *TokenManager, logger *zap.Logger) (*Gate, error) {
	if tokens == nil {
		return nil, errors.New("auth: token manager is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Gate{allow: allow, provider: provider, tokens: tokens, logger: logger}, nil
}

// IsAdmin reports allow-list membership.
func (g *Gate) IsAdmin(email string) bool {
	return g.allow.Contains(email)
}

// SignIn refuses other providers and any email outside the allow-list; otherwise it
// returns a signed token with isAdmin set.
func (g *Gate) SignIn(ctx context.Context, identity *models.Identity) (string, *models.AdminSession, error) {
	if identity == nil || identity.Provider != g.provider {
		provider := ""
		if identity != nil {
			provider = identity.Provider
		}
		g.logger.Warn("sign-in refused", zap.String("reason", ReasonProviderNotAllowed), zap.String("provider", provider))
		return "", nil, &AuthorizationDenied{Reason: ReasonProviderNotAllowed}
	}
	if !identity.EmailVerified {
		g.logger.Warn("sign-in refused", zap.String("reason", ReasonUnverifiedEmail), zap.String("email", identity.Email))
		return "", nil, &AuthorizationDenied{Reason: ReasonUnverifiedEmail, Email: identity.Email}
	}
	if !g.IsAdmin(identity.Email) {
		g.logger.Warn("sign-in refused", zap.String("reason", ReasonNotAllowListed), zap.String("email", identity.Email))
		return "", nil, &AuthorizationDenied{Reason: ReasonNotAllowListed, Email: identity.Email}
	}

	token, session, err := g.tokens.Issue(identity.Email, identity.Name, g.IsAdmin(identity.Email))
	if err != nil {
		return "", nil, err
	}
	g.logger.Info("admin signed in", zap.String("email", identity.Email))
	return token, session, nil
}

// Verify parses a presented session token.
func (g *Gate) Verify(token string) (*models.AdminSession, error) {
	return g.tokens.Parse(token)
}
