package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Auth.PasswordHashCost < bcrypt.MinCost || c.Auth.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.password_hash_cost must be in [%d, %d] (got %d)",
			bcrypt.MinCost, bcrypt.MaxCost, c.Auth.PasswordHashCost)
	}

	if c.Auth.GoogleClientID != "" && c.Auth.GoogleRedirectURI == "" {
		return fmt.Errorf("auth.google_redirect_uri is required when google_client_id is set")
	}

	if c.RateLimit.AuthPerMinute <= 0 {
		return fmt.Errorf("rate_limit.auth_per_minute must be > 0 (got %d)", c.RateLimit.AuthPerMinute)
	}

	if c.Notify.KeepAlive <= 0 {
		return fmt.Errorf("notify.keep_alive must be > 0 (got %s)", c.Notify.KeepAlive)
	}

	if err := c.Storage.validate(); err != nil {
		return fmt.Errorf("storage: %w", err)
	}

	return nil
}

func (s *StorageConfig) validate() error {
	if !s.Enabled() {
		return nil
	}
	if s.AccessKey == "" || s.SecretKey == "" {
		return fmt.Errorf("access_key and secret_key are required when bucket is set")
	}
	if s.PublicBaseURL == "" {
		return fmt.Errorf("public_base_url is required when bucket is set")
	}
	if s.PresignTTL <= 0 {
		return fmt.Errorf("presign_ttl must be > 0 (got %s)", s.PresignTTL)
	}
	return nil
}
