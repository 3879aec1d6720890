package logger

import (
	"io"
	"os"
	"strconv"
)

// EnvConfig is the logger configuration read from the environment.
type EnvConfig struct {
	Level       string    // LOG_LEVEL: debug, info, warn, error
	Format      string    // LOG_FORMAT: json, text
	Output      io.Writer // overrides every other output setting when set
	ServiceName string    // SERVICE_NAME
	Environment string    // APP_ENV: local, dev, prod

	LogFile     string // LOG_FILE, used outside the local environment
	LogFileOnly bool   // LOG_FILE_ONLY skips stdout

	MaxSize    int  // LOG_MAX_SIZE in MB
	MaxBackups int  // LOG_MAX_BACKUPS
	MaxAge     int  // LOG_MAX_AGE in days
	Compress   bool // LOG_COMPRESS
}

// LoadFromEnv reads EnvConfig, applying defaults for unset or malformed values.
func LoadFromEnv() *EnvConfig {
	return &EnvConfig{
		Level:       envString("LOG_LEVEL", "info"),
		Format:      envString("LOG_FORMAT", "json"),
		ServiceName: envString("SERVICE_NAME", "retailstar"),
		Environment: envString("APP_ENV", "local"),
		LogFile:     envString("LOG_FILE", "/var/log/retailstar/app.log"),
		LogFileOnly: envBool("LOG_FILE_ONLY", false),
		MaxSize:     envInt("LOG_MAX_SIZE", 100),
		MaxBackups:  envInt("LOG_MAX_BACKUPS", 7),
		MaxAge:      envInt("LOG_MAX_AGE", 30),
		Compress:    envBool("LOG_COMPRESS", true),
	}
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	b, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	i, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return i
}
