package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	ServerPort    string
	MongoURI      string
	MongoDBName   string
	JWTSecret     string
	TokenValidity time.Duration
	LogFile       string
}

// Load reads configuration from the environment. godotenv is loaded by
// main before this runs, matching the other services.
func Load() Config {
	cfg := Config{
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		MongoURI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDBName:   getEnv("MONGO_DB_NAME", "taskapp"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		TokenValidity: 30 * time.Minute,
		LogFile:       getEnv("LOG_FILE", "logs/taskapp.log"),
	}

	if minutes, err := strconv.Atoi(os.Getenv("TOKEN_VALIDITY_MINUTES")); err == nil && minutes > 0 {
		cfg.TokenValidity = time.Duration(minutes) * time.Minute
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
