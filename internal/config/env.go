package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config values from environment variables. A .env file in
// the working directory is loaded first if present; real environment
// variables win over .env entries (godotenv does not overwrite).
//
// Recognized variables:
//
//	FINBOOK_ADDR          HTTP bind address
//	FINBOOK_DATABASE_DSN  PostgreSQL DSN
//	FINBOOK_SECRET_KEY    JWT HMAC secret
//	FINBOOK_TOKEN_TTL     access token lifetime, e.g. "30m"
//	FINBOOK_BCRYPT_COST   bcrypt work factor
func parseEnv(config *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("FINBOOK_ADDR"); v != "" {
		config.EndpointAddr = v
	}
	if v := os.Getenv("FINBOOK_DATABASE_DSN"); v != "" {
		config.DatabaseDSN = v
	}
	if v := os.Getenv("FINBOOK_SECRET_KEY"); v != "" {
		config.SecretKey = v
	}
	if v := os.Getenv("FINBOOK_TOKEN_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			config.AccessTokenValidityDuration = d
		}
	}
	if v := os.Getenv("FINBOOK_BCRYPT_COST"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			config.BcryptCost = n
		}
	}
}
