package cmd_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"orderprocessing/cmd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"HTTP_PORT", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
	"CLASSIFIER_BASE_URL", "CLASSIFIER_TIMEOUT", "EXPORT_DIR",
	"PROCESSING_SCHEDULE", "PROCESSING_USER_IDS", "LOG_LEVEL", "LOG_FORMAT",
}

// clearEnv blanks every config variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		t.Setenv(key, "")
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		clearEnv(t)

		cfg, err := cmd.LoadConfig(filepath.Join(t.TempDir(), "missing.env"))

		require.NoError(t, err)
		assert.Equal(t, "8080", cfg.HTTPPort)
		assert.Equal(t, "localhost", cfg.DBHost)
		assert.Equal(t, "5432", cfg.DBPort)
		assert.Equal(t, "disable", cfg.DBSslMode)
		assert.Equal(t, 30*time.Second, cfg.ClassifierTimeout)
		assert.Equal(t, ".", cfg.ExportDir)
		assert.Empty(t, cfg.ProcessingSchedule)
		assert.Empty(t, cfg.ProcessingUserIDs)
		assert.Equal(t, "INFO", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
	})

	t.Run("environment", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("HTTP_PORT", "9090")
		t.Setenv("DB_USER", "orders")
		t.Setenv("CLASSIFIER_BASE_URL", "http://classifier:8000")
		t.Setenv("CLASSIFIER_TIMEOUT", "2s")
		t.Setenv("PROCESSING_SCHEDULE", "0 */5 * * * *")
		t.Setenv("PROCESSING_USER_IDS", "1, 2,,42")

		cfg, err := cmd.LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, "9090", cfg.HTTPPort)
		assert.Equal(t, "orders", cfg.DBUser)
		assert.Equal(t, "http://classifier:8000", cfg.ClassifierBaseURL)
		assert.Equal(t, 2*time.Second, cfg.ClassifierTimeout)
		assert.Equal(t, "0 */5 * * * *", cfg.ProcessingSchedule)
		assert.Equal(t, []int64{1, 2, 42}, cfg.ProcessingUserIDs)
	})

	t.Run("env file", func(t *testing.T) {
		clearEnv(t)
		// godotenv does not override variables that are already set.
		require.NoError(t, os.Unsetenv("DB_NAME"))
		t.Setenv("EXPORT_DIR", "/from/env")

		file := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(file, []byte("DB_NAME=orders_db\nEXPORT_DIR=/from/file\n"), 0o600))
		t.Cleanup(func() { _ = os.Unsetenv("DB_NAME") })

		cfg, err := cmd.LoadConfig(file)

		require.NoError(t, err)
		assert.Equal(t, "orders_db", cfg.DBName)
		assert.Equal(t, "/from/env", cfg.ExportDir)
	})

	t.Run("invalid timeout", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("CLASSIFIER_TIMEOUT", "soon")

		_, err := cmd.LoadConfig()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "CLASSIFIER_TIMEOUT")
	})

	t.Run("invalid user ids", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("PROCESSING_USER_IDS", "1,two")

		_, err := cmd.LoadConfig()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "PROCESSING_USER_IDS")
	})
}

func TestConfig_DSN(t *testing.T) {
	cfg := cmd.Config{
		DBHost: "db", DBPort: "5432", DBUser: "u", DBPassword: "p", DBName: "orders", DBSslMode: "disable",
	}

	assert.Equal(t, "host=db port=5432 user=u password=p dbname=orders sslmode=disable", cfg.DSN())
}
