package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	APIBaseURL     string
	StreamURL      string
	Environment    string
	RequestTimeout int64 // seconds
	PageSize       int64
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		APIBaseURL:     getEnv("NLP_API_BASE_URL", "https://api.nlistplanet.com/v1"),
		StreamURL:      getEnv("NLP_STREAM_URL", "wss://api.nlistplanet.com/v1/stream"),
		Environment:    getEnv("ENVIRONMENT", "development"),
		RequestTimeout: getEnvAsInt64("NLP_REQUEST_TIMEOUT", 30),
		PageSize:       getEnvAsInt64("NLP_PAGE_SIZE", 20),
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.ParseInt(value, 10, 64)
		if err == nil {
			return intValue
		}
	}
	return defaultValue
}
