package config

import (
	"os"
	"time"
)

// Environment variable names consumed by the server.
const (
	EnvAddress            = "ADDRESS"
	EnvDatabaseDSN        = "DATABASE_DSN"
	EnvAccessTokenSecret  = "ACCESS_TOKEN_SECRET"
	EnvRefreshTokenSecret = "REFRESH_TOKEN_SECRET"
	EnvAccessTokenTTL     = "ACCESS_TOKEN_TTL"
)

// parseEnv overlays configuration values from environment variables.
// Unset variables leave the current values untouched. ACCESS_TOKEN_TTL is
// parsed with time.ParseDuration ("15m", "1h"); a malformed value panics so
// a broken deployment is caught at startup.
func parseEnv(config *Config) {
	if v, ok := os.LookupEnv(EnvAddress); ok {
		config.Address = v
	}
	if v, ok := os.LookupEnv(EnvDatabaseDSN); ok {
		config.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv(EnvAccessTokenSecret); ok {
		config.AccessTokenSecret = v
	}
	if v, ok := os.LookupEnv(EnvRefreshTokenSecret); ok {
		config.RefreshTokenSecret = v
	}
	if v, ok := os.LookupEnv(EnvAccessTokenTTL); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		config.AccessTokenValidityDuration = d
	}
}
