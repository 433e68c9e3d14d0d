package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort           string
	DBHost             string
	DBPort             string
	DBUser             string
	DBPassword         string
	DBName             string
	DBSslMode          string
	ClassifierBaseURL  string
	ClassifierTimeout  time.Duration
	ExportDir          string
	ProcessingSchedule string
	ProcessingUserIDs  []int64
	LogLevel           string
	LogFormat          string
}

// LoadConfig reads the configuration from the environment. Variables from
// the given .env files are loaded first without overriding the environment;
// a missing file is not an error.
func LoadConfig(envFiles ...string) (Config, error) {
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", file, err)
		}
	}

	timeout, err := time.ParseDuration(envOrDefault("CLASSIFIER_TIMEOUT", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("CLASSIFIER_TIMEOUT: %w", err)
	}

	userIDs, err := parseUserIDs(os.Getenv("PROCESSING_USER_IDS"))
	if err != nil {
		return Config{}, fmt.Errorf("PROCESSING_USER_IDS: %w", err)
	}

	return Config{
		HTTPPort:           envOrDefault("HTTP_PORT", "8080"),
		DBHost:             envOrDefault("DB_HOST", "localhost"),
		DBPort:             envOrDefault("DB_PORT", "5432"),
		DBUser:             os.Getenv("DB_USER"),
		DBPassword:         os.Getenv("DB_PASSWORD"),
		DBName:             os.Getenv("DB_NAME"),
		DBSslMode:          envOrDefault("DB_SSLMODE", "disable"),
		ClassifierBaseURL:  os.Getenv("CLASSIFIER_BASE_URL"),
		ClassifierTimeout:  timeout,
		ExportDir:          envOrDefault("EXPORT_DIR", "."),
		ProcessingSchedule: os.Getenv("PROCESSING_SCHEDULE"),
		ProcessingUserIDs:  userIDs,
		LogLevel:           envOrDefault("LOG_LEVEL", "INFO"),
		LogFormat:          envOrDefault("LOG_FORMAT", "json"),
	}, nil
}

// DSN returns the PostgreSQL connection string.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}

func envOrDefault(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func parseUserIDs(raw string) ([]int64, error) {
	var ids []int64
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
