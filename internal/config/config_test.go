package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Server.Port)
	assert.Equal(t, DriverFirestore, cfg.Store.Driver)
	assert.Equal(t, "smallie-dev-secret-key", cfg.Session.Secret)
	assert.Equal(t, "2025-04-15", cfg.Competition.StartDate)
	assert.Equal(t, "2025-04-21", cfg.Competition.EndDate)
	assert.False(t, cfg.Vercel)
	assert.False(t, cfg.IsDebug())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("SESSION_SECRET", "s3cret")
	t.Setenv("FIREBASE_PROJECT_ID", "smallie-prod")
	t.Setenv("FIREBASE_CREDENTIALS", "e30=")
	t.Setenv("VERCEL_DEPLOYMENT", "1")
	t.Setenv("STORE_DRIVER", "memory")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "s3cret", cfg.Session.Secret)
	assert.Equal(t, "smallie-prod", cfg.Firebase.ProjectID)
	assert.Equal(t, "e30=", cfg.Firebase.Credentials)
	assert.True(t, cfg.Vercel)
	assert.Equal(t, DriverMemory, cfg.Store.Driver)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	yaml := []byte("competition:\n  startdate: \"2026-01-01\"\n  enddate: \"2026-01-07\"\nstore:\n  driver: memory\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), yaml, 0o600))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "2026-01-01", cfg.Competition.StartDate)
	assert.Equal(t, DriverMemory, cfg.Store.Driver)
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Run("unknown driver", func(t *testing.T) {
		t.Setenv("STORE_DRIVER", "postgres")
		_, err := Load(t.TempDir())
		assert.ErrorContains(t, err, "unknown store driver")
	})

	t.Run("mongodb without uri", func(t *testing.T) {
		t.Setenv("STORE_DRIVER", "mongodb")
		t.Setenv("MONGODB_URI", "")
		_, err := Load(t.TempDir())
		assert.ErrorContains(t, err, "MONGODB_URI")
	})
}

func TestCompetitionWindow(t *testing.T) {
	c := CompetitionConfig{StartDate: "2025-04-15", EndDate: "2025-04-21", UTCOffsetHours: 1}
	start, end, err := c.Window()
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 4, 14, 23, 0, 0, 0, time.UTC), start.UTC())
	assert.Equal(t, 6*24*time.Hour, end.Sub(start))

	_, _, err = CompetitionConfig{StartDate: "2025-04-21", EndDate: "2025-04-15"}.Window()
	assert.Error(t, err)

	_, _, err = CompetitionConfig{StartDate: "April 15", EndDate: "2025-04-21"}.Window()
	assert.Error(t, err)
}

func TestLoadCredentials(t *testing.T) {
	t.Setenv("FIREBASE_API_KEY", "api-key")
	t.Setenv("FIREBASE_PROJECT_ID", "project")
	t.Setenv("FIREBASE_APP_ID", "")
	t.Setenv("FLUTTERWAVE_PUBLIC_KEY", "flw-pub")
	t.Setenv("SOLANA_PROJECT_ID", "")

	creds := LoadCredentials()
	assert.Equal(t, "api-key", creds.FirebaseAPIKey)
	assert.Equal(t, "project", creds.FirebaseProjectID)
	assert.Empty(t, creds.FirebaseAppID)
	assert.Equal(t, "flw-pub", creds.FlutterwavePublicKey)
	assert.Empty(t, creds.SolanaProjectID)

	// Values are read fresh on every call
	t.Setenv("FIREBASE_APP_ID", "app-id")
	assert.Equal(t, "app-id", LoadCredentials().FirebaseAppID)
}

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("SMALLIE_TEST_BOOL", "true")
	t.Setenv("SMALLIE_TEST_BAD_BOOL", "maybe")

	assert.Equal(t, "fallback", GetEnv("SMALLIE_TEST_MISSING", "fallback"))
	assert.True(t, GetEnvAsBool("SMALLIE_TEST_BOOL", false))
	assert.True(t, GetEnvAsBool("SMALLIE_TEST_BAD_BOOL", true))
	assert.False(t, IsSet("SMALLIE_TEST_MISSING"))
}
