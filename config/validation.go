package config

import (
	"fmt"
	"strconv"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks that the loaded configuration is usable.
func ValidateConfig(cfg *Config) error {
	required := map[string]string{
		"ServerPort": cfg.ServerPort,
		"DBHost":     cfg.DBHost,
		"DBPort":     cfg.DBPort,
		"DBUser":     cfg.DBUser,
		"DBName":     cfg.DBName,
		"S3Bucket":   cfg.S3Bucket,
	}
	for field, value := range required {
		if value == "" {
			return ValidationError{Field: field, Message: "must not be empty"}
		}
	}

	if _, err := strconv.Atoi(cfg.ServerPort); err != nil {
		return ValidationError{Field: "ServerPort", Message: fmt.Sprintf("%q is not a valid port", cfg.ServerPort)}
	}
	if _, err := strconv.Atoi(cfg.DBPort); err != nil {
		return ValidationError{Field: "DBPort", Message: fmt.Sprintf("%q is not a valid port", cfg.DBPort)}
	}

	switch cfg.DBSSLMode {
	case "disable", "require", "verify-ca", "verify-full":
	default:
		return ValidationError{Field: "DBSSLMode", Message: fmt.Sprintf("unknown mode %q", cfg.DBSSLMode)}
	}

	return nil
}
