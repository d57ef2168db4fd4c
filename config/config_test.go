package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_USER", "demeter")
	t.Setenv("DB_PASSWORD", "hunter2")
	t.Setenv("DB_NAME", "demeter")
	t.Setenv("S3_BUCKET_NAME", "demeter-test")
	t.Setenv("REDIS_URL", "redis://localhost:6379")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.DBHost)
	assert.Equal(t, "5433", cfg.DBPort)
	assert.Equal(t, "demeter", cfg.DBUser)
	assert.Equal(t, "hunter2", cfg.DBPassword)
	assert.Equal(t, "demeter-test", cfg.S3Bucket)
	assert.Equal(t, "redis://localhost:6379", cfg.RedisURL)
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "demeter", cfg.DBName)
	assert.Equal(t, "demeter-health-scans", cfg.S3Bucket)
}

func TestLoadConfigSecretFile(t *testing.T) {
	secret := filepath.Join(t.TempDir(), "db_password")
	require.NoError(t, os.WriteFile(secret, []byte("from-file\n"), 0o600))

	t.Setenv("DB_PASSWORD", "")
	t.Setenv("DB_PASSWORD_FILE", secret)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.DBPassword)
}

func TestValidateConfig(t *testing.T) {
	t.Run("rejects bad port", func(t *testing.T) {
		t.Setenv("SERVER_PORT", "not-a-port")
		_, err := LoadConfig()
		assert.Error(t, err)
	})

	t.Run("rejects unknown ssl mode", func(t *testing.T) {
		t.Setenv("DB_SSL_MODE", "maybe")
		_, err := LoadConfig()
		assert.Error(t, err)
	})
}
