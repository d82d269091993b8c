package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// loads configuration from environment variables
func LoadEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - production environments may not have .env file
	}

	databaseURL := os.Getenv("DATABASE_URL")
	redisURL := os.Getenv("REDIS_URL")
	jwtSecret := os.Getenv("JWT_SECRET")
	sessionSecret := os.Getenv("SESSION_SECRET")
	githubClientID := os.Getenv("GITHUB_CLIENT_ID")
	githubClientSecret := os.Getenv("GITHUB_CLIENT_SECRET")
	adminAPIKey := os.Getenv("ADMIN_API_KEY")
	baseURL := os.Getenv("BASE_URL")
	environment := os.Getenv("ENVIRONMENT")

	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}

	if sessionSecret == "" {
		return nil, fmt.Errorf("SESSION_SECRET environment variable is required")
	}

	if githubClientID == "" || githubClientSecret == "" {
		return nil, fmt.Errorf("GITHUB_CLIENT_ID and GITHUB_CLIENT_SECRET environment variables are required")
	}

	if adminAPIKey == "" {
		return nil, fmt.Errorf("ADMIN_API_KEY environment variable is required")
	}

	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	if environment == "" {
		environment = "development"
	}

	return &Config{
		DatabaseURL:        databaseURL,
		RedisURL:           redisURL,
		JWTSecret:          jwtSecret,
		SessionSecret:      sessionSecret,
		GithubClientID:     githubClientID,
		GithubClientSecret: githubClientSecret,
		AdminAPIKey:        adminAPIKey,
		BaseURL:            baseURL,
		Environment:        environment,
	}, nil
}
