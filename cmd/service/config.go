// File: cmd/service/config.go
package main

import (
	"fmt"
	"os"
	"strconv"
)

// 正式環境設定一次載入，之後以顯式注入傳遞，不再讀環境變數
type config struct {
	databaseURL    string
	redisAddr      string
	redisDB        int
	redisPassword  string
	sessionBackend string
	sessionSecret  string
	corsOrigin     string
	listenAddr     string
	secureCookies  bool
	workerCount    int
}

func loadConfig() (*config, error) {
	cfg := &config{
		sessionBackend: "redis",
		corsOrigin:     "http://localhost:3000",
		listenAddr:     ":8080",
		workerCount:    1,
	}

	cfg.databaseURL = os.Getenv("DATABASE_URL")
	if cfg.databaseURL == "" {
		return nil, fmt.Errorf("環境變數 DATABASE_URL 未設定")
	}

	cfg.redisAddr = os.Getenv("REDIS_ADDR")
	if cfg.redisAddr == "" {
		return nil, fmt.Errorf("環境變數 REDIS_ADDR 未設定")
	}

	redisDBStr := os.Getenv("REDIS_DB")
	if redisDBStr == "" {
		return nil, fmt.Errorf("環境變數 REDIS_DB 未設定")
	}
	redisIndex, err := strconv.Atoi(redisDBStr)
	if err != nil {
		return nil, fmt.Errorf("無效的 REDIS_DB: %v", err)
	}
	cfg.redisDB = redisIndex

	cfg.redisPassword = os.Getenv("REDIS_PASSWORD")
	if cfg.redisPassword == "" {
		return nil, fmt.Errorf("環境變數 REDIS_PASSWORD 未設定")
	}

	if v := os.Getenv("SESSION_BACKEND"); v != "" {
		cfg.sessionBackend = v
	}
	switch cfg.sessionBackend {
	case "redis":
	case "cookie":
		cfg.sessionSecret = os.Getenv("SESSION_SECRET")
		if cfg.sessionSecret == "" {
			return nil, fmt.Errorf("環境變數 SESSION_SECRET 未設定")
		}
	default:
		return nil, fmt.Errorf("無效的 SESSION_BACKEND: %s", cfg.sessionBackend)
	}

	if v := os.Getenv("CORS_ORIGIN"); v != "" {
		cfg.corsOrigin = v
	}
	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		cfg.listenAddr = v
	}
	if v := os.Getenv("SECURE_COOKIES"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("無效的 SECURE_COOKIES: %v", err)
		}
		cfg.secureCookies = b
	}
	if v := os.Getenv("WORKER_COUNT"); v != "" {
		c, err := strconv.Atoi(v)
		if err != nil || c <= 0 {
			return nil, fmt.Errorf("無效的 WORKER_COUNT: %v", err)
		}
		cfg.workerCount = c
	}

	return cfg, nil
}
