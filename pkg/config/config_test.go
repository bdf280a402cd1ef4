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
	t.Chdir(t.TempDir())
	for _, k := range []string{"PORT", "STORAGE", "DATABASE_URL", "ORACLE_PROVIDER", "EXTRACTOR", "CACHE_TTL_SECONDS", "LOG_JSON", "MAX_UPLOAD_MB", "JWT_SECRET"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "postgres", cfg.Storage)
	assert.Equal(t, "gemini", cfg.OracleProvider)
	assert.Equal(t, "affinda", cfg.Extractor)
	assert.Equal(t, time.Minute, cfg.CacheTTL)
	assert.Equal(t, 10, cfg.MaxUploadMB)
	assert.False(t, cfg.LogJSON)

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestLoad_FromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("STORAGE", "Memory")
	t.Setenv("ORACLE_PROVIDER", "openrouter")
	t.Setenv("OPENROUTER_MODEL", "qwen/qwen3")
	t.Setenv("EXTRACTOR", "local")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("LOG_JSON", "true")
	t.Setenv("DB_MAX_CONNS", "not-a-number")

	cfg := Load()
	assert.Equal(t, "memory", cfg.Storage)
	assert.Equal(t, 2, cfg.RedisDB)
	assert.True(t, cfg.LogJSON)
	assert.Equal(t, 10, cfg.DBMaxConns)
	assert.Equal(t, "qwen/qwen3", cfg.OracleModel())
	assert.NoError(t, cfg.Validate())
}

func TestLoad_DotEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "")
	require.NoError(t, os.WriteFile(filepath.Join(".", ".env"), []byte("PORT=9191\n"), 0o600))
	// godotenv keeps variables that are already set, even when empty.
	require.NoError(t, os.Unsetenv("PORT"))

	cfg := Load()
	assert.Equal(t, "9191", cfg.Port)
}

func TestValidate_Unknown(t *testing.T) {
	cfg := Config{Storage: "sqlite", OracleProvider: "claude", Extractor: "ocr", MaxUploadMB: 1, JWTSecret: "s"}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "STORAGE")
	assert.Contains(t, err.Error(), "ORACLE_PROVIDER")
	assert.Contains(t, err.Error(), "EXTRACTOR")
}
