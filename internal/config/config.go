package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Load reads the .env file specified by CREWDECK_ENV (or .env by
// default). All config is flat env vars read via os.Getenv after
// loading.
func Load() error {
	envFile := os.Getenv("CREWDECK_ENV")
	if envFile == "" {
		envFile = ".env"
	}

	// Ignore error if file doesn't exist; env vars may be set directly.
	_ = godotenv.Load(envFile)

	return nil
}

func ServerPort() string {
	port := os.Getenv("PORT")
	if port == "" {
		return "3000"
	}
	return port
}

func DatabaseURL() string {
	return os.Getenv("DATABASE_URL")
}

func JWTSecret() (string, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", fmt.Errorf("JWT_SECRET environment variable is not set")
	}
	return secret, nil
}

// JWTExpireHours returns the session token lifetime in hours.
// Defaults to 72 if not set.
func JWTExpireHours() int {
	hours, err := strconv.Atoi(os.Getenv("JWT_EXPIRE_HOURS"))
	if err != nil || hours <= 0 {
		return 72
	}
	return hours
}

// AuthRateLimit returns the per-IP requests-per-second and burst
// allowance for the auth endpoints.
func AuthRateLimit() (float64, int) {
	rps, err := strconv.ParseFloat(os.Getenv("AUTH_RATE_LIMIT_RPS"), 64)
	if err != nil || rps <= 0 {
		rps = 5
	}

	burst, err := strconv.Atoi(os.Getenv("AUTH_RATE_LIMIT_BURST"))
	if err != nil || burst <= 0 {
		burst = 10
	}

	return rps, burst
}
