package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateReportsEveryMissingSetting(t *testing.T) {
	cfg := Config{GoogleClientID: "client"}

	err := cfg.Validate()
	require.Error(t, err)

	var cfgErr *ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, []string{"GOOGLE_CLIENT_SECRET", "SESSION_SECRET"}, cfgErr.Missing)
	assert.Contains(t, err.Error(), "SESSION_SECRET")
}

func TestValidateAcceptsCompleteConfig(t *testing.T) {
	cfg := Config{GoogleClientID: "id", GoogleClientSecret: "secret", SessionSecret: "s3cret"}
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfigFailsWithoutCredentials(t *testing.T) {
	t.Setenv("GOOGLE_CLIENT_ID", "")
	t.Setenv("GOOGLE_CLIENT_SECRET", "")
	t.Setenv("SESSION_SECRET", "")

	_, err := LoadConfig()
	var cfgErr *ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Len(t, cfgErr.Missing, 3)
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("GOOGLE_CLIENT_ID", "id")
	t.Setenv("GOOGLE_CLIENT_SECRET", "secret")
	t.Setenv("SESSION_SECRET", "signing")
	t.Setenv("ADMIN_EMAILS", "a@x.com, b@x.com")
	t.Setenv("PUBLIC_BASE_URL", "https://dharmachain.org/")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "a@x.com, b@x.com", cfg.AdminEmails)
	assert.Equal(t, "firestore", cfg.ContentBackend)
	assert.Equal(t, "https://dharmachain.org/admin/callback", cfg.RedirectURL())
	assert.Equal(t, *cfg, AppConfig)
}

func TestRedirectURLPrefersExplicitSetting(t *testing.T) {
	cfg := Config{PublicBaseURL: "http://localhost:8080", OAuthRedirectURL: "https://x/cb"}
	assert.Equal(t, "https://x/cb", cfg.RedirectURL())
}

func TestAllowedOrigins(t *testing.T) {
	cfg := Config{CORSOrigins: "https://dharmachain.org, ,http://localhost:3000"}
	assert.Equal(t, []string{"https://dharmachain.org", "http://localhost:3000"}, cfg.AllowedOrigins())
}
