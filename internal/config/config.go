package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the process-wide configuration, loaded once at startup and
// read-only afterwards.
type Config struct {
	Port     string
	LogLevel string

	MongoURI      string
	MongoDatabase string

	TokenSigningKey string
	TokenTTL        time.Duration
}

// Load reads configs/config.yml and overlays environment variables.
// A local .env file is honored when present.
func Load() (*Config, error) {
	// Missing .env is fine; env vars may come from the process.
	_ = godotenv.Load()

	v := viper.New()
	v.AddConfigPath("configs") // configs/config.yml
	v.SetConfigName("config")

	v.SetDefault("port", "8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("mongo.database", "fintracker")
	v.SetDefault("token.ttl", "24h")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		// Run on defaults + env when no file is shipped.
	}

	// Secrets stay out of the config file.
	bindings := map[string]string{
		"mongo.uri":         "MONGO_URI",
		"token.signing_key": "TOKEN_SIGNING_KEY",
		"port":              "PORT",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", env, err)
		}
	}

	cfg := &Config{
		Port:            v.GetString("port"),
		LogLevel:        v.GetString("log.level"),
		MongoURI:        v.GetString("mongo.uri"),
		MongoDatabase:   v.GetString("mongo.database"),
		TokenSigningKey: v.GetString("token.signing_key"),
		TokenTTL:        v.GetDuration("token.ttl"),
	}

	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("mongo.uri is required (set MONGO_URI)")
	}
	if cfg.TokenSigningKey == "" {
		return nil, fmt.Errorf("token.signing_key is required (set TOKEN_SIGNING_KEY)")
	}
	return cfg, nil
}
