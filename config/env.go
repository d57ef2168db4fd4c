package config

import "os"

// Environment represents the current runtime environment
type Environment string

const (
	Development Environment = "development"
	Production  Environment = "production"
)

// GetEnvironment reads ENV. Anything other than "production" is treated as
// development.
func GetEnvironment() Environment {
	if os.Getenv("ENV") == "production" {
		return Production
	}
	return Development
}

// IsDevelopment reports whether the app runs in development mode, where a
// .env file is consulted during configuration loading.
func IsDevelopment() bool {
	return GetEnvironment() == Development
}
