package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("DB_PASSWORD", "pw")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("ALLOWED_ORIGINS", "http://localhost:3000, https://ladlehub.example.com")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "db.internal", cfg.DBHost)
	assert.Equal(t, "ladlehub", cfg.DBName)
	assert.Equal(t, []string{"http://localhost:3000", "https://ladlehub.example.com"}, cfg.AllowedOrigins)
	assert.Equal(t, "host=db.internal port=5432 user=postgres password=pw dbname=ladlehub sslmode=disable", cfg.DSN())
}

func TestLoadConfigRequiredVars(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("DB_PASSWORD", "pw")
	_, err := LoadConfig()
	assert.Error(t, err)

	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("DB_PASSWORD", "")
	_, err = LoadConfig()
	assert.Error(t, err)
}

func TestSplitAndTrim(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitAndTrim("a, b"))
	assert.Equal(t, []string{"a"}, splitAndTrim("a,,  "))
	assert.Nil(t, splitAndTrim(",,"))
}
