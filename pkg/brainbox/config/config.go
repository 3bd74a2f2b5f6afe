package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all runtime configuration, built once at startup and passed
// by reference to the components that need it.
type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	Server   ServerConfig
}

type DatabaseConfig struct {
	// URL is the database connection string (a SQLite DSN).
	URL string
}

type JWTConfig struct {
	// Secret signs and verifies bearer tokens.
	Secret string
}

type ServerConfig struct {
	Port string
}

// Load reads configuration from the environment. DATABASE_URL and
// JWT_SECRET are required; PORT defaults to 3000.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("PORT", "3000")

	v.AutomaticEnv()
	// AutomaticEnv alone does not register keys for IsSet, so bind them
	for _, key := range []string{"DATABASE_URL", "JWT_SECRET", "PORT"} {
		if err := v.BindEnv(key); err != nil {
			return nil, err
		}
	}

	cfg := &Config{
		Database: DatabaseConfig{URL: v.GetString("DATABASE_URL")},
		JWT:      JWTConfig{Secret: v.GetString("JWT_SECRET")},
		Server:   ServerConfig{Port: v.GetString("PORT")},
	}

	if cfg.Database.URL == "" {
		return nil, fmt.Errorf("environment variable DATABASE_URL is not defined")
	}
	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("environment variable JWT_SECRET is not defined")
	}

	return cfg, nil
}
