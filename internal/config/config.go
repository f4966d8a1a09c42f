package config

import (
	"os"
)

type Config struct {
	Port        string
	Environment string
	CORSOrigins string

	// Storage selects the blob backend: memory, file, redis, or postgres
	Storage       string
	DataDir       string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	DatabaseURL   string
	TablePrefix   string

	LogDir      string
	LogMaxFiles int

	// Debug flags
	Debug bool
}

func Load() *Config {
	env := getEnv("ENVIRONMENT", "dev")
	tablePrefix := getTablePrefix(env)

	return &Config{
		Port:          getEnv("PORT", "8080"),
		Environment:   env,
		CORSOrigins:   getEnv("CORS_ORIGINS", "http://localhost:3000"),
		Storage:       getEnv("STORAGE_BACKEND", "file"),
		DataDir:       getEnv("DATA_DIR", "./data"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       0,
		DatabaseURL:   getEnv("DATABASE_URL", ""),
		TablePrefix:   tablePrefix,
		LogDir:        getEnv("LOG_DIR", "./logs"),
		LogMaxFiles:   10,
		// Debug defaults to true in dev/test, false in production
		Debug: getEnv("DEBUG", getDefaultDebug(env)) == "true",
	}
}

// getDefaultDebug returns the default debug setting based on environment
func getDefaultDebug(env string) string {
	if env == "prod" {
		return "false"
	}
	return "true"
}

// getTablePrefix returns the table/key prefix based on environment
func getTablePrefix(env string) string {
	// Allow manual override via TABLE_PREFIX env var
	if prefix := os.Getenv("TABLE_PREFIX"); prefix != "" {
		return prefix
	}

	switch env {
	case "prod":
		return "prod_"
	case "test":
		return "test_"
	default:
		return "dev_"
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
