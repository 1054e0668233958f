package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	APIBaseURL     string
	APIKey         string
	CacheTTL       time.Duration
	RequestTimeout time.Duration
	UploadTimeout  time.Duration
	ListenAddr     string
	FrontendURL    string
}

func LoadConfig() *Config {
	return &Config{
		APIBaseURL:     getEnv("LATE_API_BASE_URL", "https://getlate.dev/api/v1"),
		APIKey:         getEnv("LATE_API_KEY", ""),
		CacheTTL:       getEnvSeconds("CACHE_TTL_SECONDS", 300),
		RequestTimeout: getEnvSeconds("REQUEST_TIMEOUT_SECONDS", 30),
		UploadTimeout:  getEnvSeconds("UPLOAD_TIMEOUT_SECONDS", 60),
		ListenAddr:     getEnv("LISTEN_ADDR", ":3000"),
		FrontendURL:    getEnv("FRONTEND_URL", "http://localhost:5173"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvSeconds(key string, defaultValue int) time.Duration {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return time.Duration(n) * time.Second
		}
	}
	return time.Duration(defaultValue) * time.Second
}
