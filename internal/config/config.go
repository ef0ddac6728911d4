package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// DBConfig holds the Postgres connection settings.
type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// DSN returns the connection string in key/value form.
func (c DBConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// Config holds all runtime configuration, loaded from environment variables.
type Config struct {
	Port     string
	Env      string
	LogLevel string

	DB DBConfig

	JWTSecret    string
	AuthRequired bool

	RedisAddr        string
	RateLimitEnabled bool
}

// Load reads configuration from the environment, applying defaults for
// anything unset.
func Load() *Config {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "9001")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "me")
	v.SetDefault("DB_PASSWORD", "password")
	v.SetDefault("DB_NAME", "inventory_app")
	v.SetDefault("DB_SSLMODE", "disable")

	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("AUTH_REQUIRED", false)

	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("RATE_LIMIT_ENABLED", false)

	return &Config{
		Port:     v.GetString("PORT"),
		Env:      v.GetString("APP_ENV"),
		LogLevel: v.GetString("LOG_LEVEL"),
		DB: DBConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			Name:     v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSLMODE"),
		},
		JWTSecret:        v.GetString("JWT_SECRET"),
		AuthRequired:     v.GetBool("AUTH_REQUIRED"),
		RedisAddr:        v.GetString("REDIS_ADDR"),
		RateLimitEnabled: v.GetBool("RATE_LIMIT_ENABLED"),
	}
}
