package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultDatabaseURL is used when DATABASE_URL is not set.
const DefaultDatabaseURL = "sqlite:////tmp/test.db"

// Config holds the runtime settings of the API.
type Config struct {
	Port         string
	DatabaseURL  string
	LogLevel     string
	LogFormat    string
	RabbitMQURL  string
	CORSOrigins  string
	SeedPassword string
}

// Load reads the configuration from a local .env file (if any) and the environment.
func Load() Config {
	// A missing .env is fine, the environment alone is enough.
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", "3000")
	v.SetDefault("DATABASE_URL", DefaultDatabaseURL)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("CORS_ORIGINS", "*")
	v.SetDefault("SEED_PASSWORD", "changeme")
	v.AutomaticEnv()

	return Config{
		Port:         v.GetString("PORT"),
		DatabaseURL:  v.GetString("DATABASE_URL"),
		LogLevel:     v.GetString("LOG_LEVEL"),
		LogFormat:    v.GetString("LOG_FORMAT"),
		RabbitMQURL:  v.GetString("RABBITMQ_URL"),
		CORSOrigins:  v.GetString("CORS_ORIGINS"),
		SeedPassword: v.GetString("SEED_PASSWORD"),
	}
}

// Addr returns the listen address for the configured port.
func (c Config) Addr() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}
