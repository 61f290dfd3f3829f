package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URL", "postgres://localhost/kapda")
	t.Setenv("REDIS_ADDR", "127.0.0.1:6379")
	t.Setenv("REDIS_DB", "0")
	t.Setenv("REDIS_PASSWORD", "pw")
	t.Setenv("SESSION_BACKEND", "")
	t.Setenv("SESSION_SECRET", "")
	t.Setenv("CORS_ORIGIN", "")
	t.Setenv("LISTEN_ADDR", "")
	t.Setenv("SECURE_COOKIES", "")
	t.Setenv("WORKER_COUNT", "")
}

func TestLoadConfigDefaults(t *testing.T) {
	setBaseEnv(t)
	cfg, err := loadConfig()
	require.NoError(t, err)
	require.Equal(t, "postgres://localhost/kapda", cfg.databaseURL)
	require.Equal(t, "127.0.0.1:6379", cfg.redisAddr)
	require.Equal(t, 0, cfg.redisDB)
	require.Equal(t, "pw", cfg.redisPassword)
	require.Equal(t, "redis", cfg.sessionBackend)
	require.Equal(t, "http://localhost:3000", cfg.corsOrigin)
	require.Equal(t, ":8080", cfg.listenAddr)
	require.False(t, cfg.secureCookies)
	require.Equal(t, 1, cfg.workerCount)
}

func TestLoadConfigOverrides(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("SESSION_BACKEND", "cookie")
	t.Setenv("SESSION_SECRET", "s3cret")
	t.Setenv("CORS_ORIGIN", "https://shop.example.com")
	t.Setenv("LISTEN_ADDR", ":9090")
	t.Setenv("SECURE_COOKIES", "true")
	t.Setenv("WORKER_COUNT", "4")

	cfg, err := loadConfig()
	require.NoError(t, err)
	require.Equal(t, "cookie", cfg.sessionBackend)
	require.Equal(t, "s3cret", cfg.sessionSecret)
	require.Equal(t, "https://shop.example.com", cfg.corsOrigin)
	require.Equal(t, ":9090", cfg.listenAddr)
	require.True(t, cfg.secureCookies)
	require.Equal(t, 4, cfg.workerCount)
}

func TestLoadConfigErrors(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("DATABASE_URL", "")
	_, err := loadConfig()
	require.Error(t, err)

	setBaseEnv(t)
	t.Setenv("REDIS_ADDR", "")
	_, err = loadConfig()
	require.Error(t, err)

	setBaseEnv(t)
	t.Setenv("REDIS_DB", "")
	_, err = loadConfig()
	require.Error(t, err)

	setBaseEnv(t)
	t.Setenv("REDIS_DB", "bad")
	_, err = loadConfig()
	require.Error(t, err)

	setBaseEnv(t)
	t.Setenv("REDIS_PASSWORD", "")
	_, err = loadConfig()
	require.Error(t, err)

	// cookie 模式必須帶密鑰
	setBaseEnv(t)
	t.Setenv("SESSION_BACKEND", "cookie")
	_, err = loadConfig()
	require.Error(t, err)

	setBaseEnv(t)
	t.Setenv("SESSION_BACKEND", "unknown")
	_, err = loadConfig()
	require.Error(t, err)

	setBaseEnv(t)
	t.Setenv("SECURE_COOKIES", "notabool")
	_, err = loadConfig()
	require.Error(t, err)

	setBaseEnv(t)
	t.Setenv("WORKER_COUNT", "0")
	_, err = loadConfig()
	require.Error(t, err)

	setBaseEnv(t)
	t.Setenv("WORKER_COUNT", "bad")
	_, err = loadConfig()
	require.Error(t, err)
}
