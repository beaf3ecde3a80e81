package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type LogConfig struct {
	Level string
	File  string
}

type SplitConfig struct {
	Seed  int64
	Ratio float64
}

type Config struct {
	// ReportPath is a directory (JSON reports) or a SQLite file.
	ReportPath string

	Log   LogConfig
	Split SplitConfig
}

// Load reads the configuration from the environment, after loading a .env
// file from the working directory if there is one.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ReportPath: getEnv("UDCLEAN_REPORT_PATH", ""),
		Log: LogConfig{
			Level: getEnv("UDCLEAN_LOG_LEVEL", "info"),
			File:  getEnv("UDCLEAN_LOG_FILE", ""),
		},
		Split: SplitConfig{
			Seed:  getEnvInt64("UDCLEAN_SPLIT_SEED", 1337),
			Ratio: getEnvFloat("UDCLEAN_SPLIT_RATIO", 0.9),
		},
	}
}

// ParseLevel maps a level name to a slog level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}
