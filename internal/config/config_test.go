package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("GROWWITUP_AUTH_SIGNING_SECRET", "test-secret")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "0.0.0.0", cfg.Server.Host)
	require.Equal(t, 8080, cfg.Server.Port)
	require.Equal(t, PolicyToken, cfg.Auth.Policy)
	require.Equal(t, time.Hour, cfg.Auth.TokenTTL)
	require.Equal(t, 4, cfg.Mail.BroadcastConcurrency)
	require.Equal(t, 5*time.Minute, cfg.Mail.BroadcastTimeout)
	require.True(t, cfg.RateLimit.Enabled)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("GROWWITUP_AUTH_SIGNING_SECRET", "test-secret")
	t.Setenv("GROWWITUP_SERVER_PORT", "9090")
	t.Setenv("GROWWITUP_MAIL_OWNER_EMAIL", "owner@growwitup.com")
	t.Setenv("GROWWITUP_SITE_PUBLIC_BASE_URL", "https://growwitup.com")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, 9090, cfg.Server.Port)
	require.Equal(t, "owner@growwitup.com", cfg.Mail.OwnerEmail)
	require.Equal(t, "https://growwitup.com", cfg.Site.PublicBaseURL)
}

func TestLoadValidation(t *testing.T) {
	t.Run("token policy requires a signing secret", func(t *testing.T) {
		t.Setenv("GROWWITUP_AUTH_SIGNING_SECRET", "")

		_, err := Load()
		require.ErrorContains(t, err, "auth.signing_secret")
	})

	t.Run("shared-secret policy requires a shared token", func(t *testing.T) {
		t.Setenv("GROWWITUP_AUTH_POLICY", PolicySharedSecret)
		t.Setenv("GROWWITUP_AUTH_SHARED_TOKEN", "")

		_, err := Load()
		require.ErrorContains(t, err, "auth.shared_token")
	})

	t.Run("unknown policy is rejected", func(t *testing.T) {
		t.Setenv("GROWWITUP_AUTH_POLICY", "basic")

		_, err := Load()
		require.ErrorContains(t, err, "unknown auth.policy")
	})
}

func TestDSNAndAddr(t *testing.T) {
	t.Parallel()

	db := DatabaseConfig{Host: "db", Port: 5432, Name: "growwitup", User: "app", Password: "pw", SSLMode: "disable"}
	require.Equal(t, "host=db port=5432 user=app password=pw dbname=growwitup sslmode=disable", db.DSN())

	rdb := RedisConfig{Host: "cache", Port: 6379}
	require.Equal(t, "cache:6379", rdb.Addr())
}
