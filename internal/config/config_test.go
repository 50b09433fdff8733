package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/backend-fleet/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.LoadForTests(map[string]string{
		"DATABASE_URL":        "postgres://localhost/fleet",
		"DAMAGE_SERVICE_URL":  "http://damage.local/",
		"BILLING_SERVICE_URL": "http://billing.local",
		"PORT":                "",
		"UPSTREAM_TIMEOUT":    "",
		"RATE_LIMIT_ENABLED":  "",
		"REDIS_URL":           "",
	})
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.HTTPAddr())
	require.Equal(t, "http://damage.local", cfg.DamageServiceURL)
	require.Equal(t, 5*time.Second, cfg.UpstreamTimeout)
	require.False(t, cfg.AllowUnknownConditions)
	require.False(t, cfg.RateLimitEnabled)
	require.Equal(t, 60, cfg.RateLimitMax)
}

func TestLoadMissingUpstream(t *testing.T) {
	_, err := config.LoadForTests(map[string]string{
		"DATABASE_URL":        "postgres://localhost/fleet",
		"DAMAGE_SERVICE_URL":  "",
		"BILLING_SERVICE_URL": "http://billing.local",
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "DAMAGE_SERVICE_URL")
}

func TestLoadRateLimitRequiresRedis(t *testing.T) {
	_, err := config.LoadForTests(map[string]string{
		"DATABASE_URL":        "postgres://localhost/fleet",
		"DAMAGE_SERVICE_URL":  "http://damage.local",
		"BILLING_SERVICE_URL": "http://billing.local",
		"RATE_LIMIT_ENABLED":  "true",
		"REDIS_URL":           "",
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "REDIS_URL")
}
