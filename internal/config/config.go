package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port string
	Env  string

	DatabaseDSN     string
	MongoURI        string
	MongoDatabase   string
	MongoCollection string

	JWTSecret string
	JWTExpiry time.Duration

	AzureOpenAIEndpoint string
	AzureOpenAIKey      string
	AzureAPIVersion     string
	AzureDeployment     string
	ModelTimeout        time.Duration
}

func Load() Config {
	cfg := Config{
		Port:            getEnv("PORT", "8080"),
		Env:             getEnv("ENV", "development"),
		DatabaseDSN:     getEnv("DATABASE_DSN", "root:password@tcp(127.0.0.1:3306)/study_planner?parseTime=true"),
		MongoURI:        getEnv("MONGO_URI", "mongodb://127.0.0.1:27017"),
		MongoDatabase:   getEnv("MONGO_DB", "study_schedule_db"),
		MongoCollection: getEnv("MONGO_COLLECTION", "user_schedules"),
		JWTSecret:       getEnv("JWT_SECRET", "dev-secret-change-in-production"),
		JWTExpiry:       30 * time.Minute,

		AzureOpenAIEndpoint: getEnv("ENDPOINT_URL", ""),
		AzureOpenAIKey:      getEnv("AZURE_OPENAI_API_KEY", ""),
		AzureAPIVersion:     getEnv("AZURE_OPENAI_API_VERSION", "2025-01-01-preview"),
		AzureDeployment:     getEnv("DEPLOYMENT_NAME", "gpt-4.1"),
		ModelTimeout:        time.Duration(getEnvInt("MODEL_TIMEOUT_SECONDS", 120)) * time.Second,
	}

	if cfg.Env == "production" && cfg.JWTSecret == "dev-secret-change-in-production" {
		slog.Error("JWT_SECRET must be set in production environment")
		os.Exit(1)
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
