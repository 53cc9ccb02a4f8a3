package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"geocoding": map[string]any{
			"userAgent": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
		"database": map[string]any{
			"fallbackToSQLite": true,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "GEOCODING_USERAGENT", want: "geocoding.userAgent"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "DATABASE_FALLBACKTOSQLITE", want: "database.fallbackToSQLite"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	content := []byte(`
listing:
  defaultRadiusKm: 5
client:
  radiusDebounce: 500ms
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), content, 0o600))

	t.Chdir(dir)
	t.Setenv("LISTING_DEFAULTRADIUSKM", "8")

	cfg, err := LoadWithEnv[Config]("test")
	require.NoError(t, err)
	require.NotNil(t, cfg.Listing)
	require.NotNil(t, cfg.Client)

	assert.InDelta(t, 8.0, cfg.Listing.DefaultRadiusKm, 1e-9)
	assert.Equal(t, 500*time.Millisecond, cfg.Client.RadiusDebounce)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("absent")
	assert.Error(t, err)
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	assert.Equal(t, DatabaseDriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "parkospace.db", cfg.Database.SQLitePath)
	assert.Equal(t, 7*24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, DefaultListingConfig(), cfg.Listing)
	assert.InDelta(t, 100.0, cfg.Pricing.MonthlyRatePerSqm, 1e-9)
	assert.Equal(t, 500*time.Millisecond, cfg.Client.RadiusDebounce)
	assert.Equal(t, 14, cfg.Client.LocateZoom)
}
