package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config groups the application configuration, read from environment
// variables via Viper. A .env file, when present, is loaded by main before
// this runs.
type Config struct {
	App  AppConfig
	HTTP HTTPConfig
	JWT  JWTConfig
	Log  LogConfig
}

// AppConfig general application settings
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	SeedData bool // load the demo dataset on startup
}

// HTTPConfig server settings
type HTTPConfig struct {
	Port           string
	AllowedOrigins []string
}

// JWTConfig token signing settings
type JWTConfig struct {
	Secret     string
	Expiration int // minutes
}

// LogConfig logging settings
type LogConfig struct {
	Level string
}

// Load reads configuration from the environment with sane development
// defaults.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_NAME", "inventorypro")
	v.SetDefault("SEED_DATA", true)
	v.SetDefault("PORT", "8080")
	v.SetDefault("ALLOWED_ORIGINS", "http://localhost:5173,http://127.0.0.1:5173")
	v.SetDefault("JWT_SECRET", "default_super_secret_key") // development fallback only
	v.SetDefault("JWT_EXPIRATION_MINUTES", 60*24)
	v.SetDefault("LOG_LEVEL", "info")

	cfg := &Config{
		App: AppConfig{
			Env:      v.GetString("APP_ENV"),
			Name:     v.GetString("APP_NAME"),
			SeedData: v.GetBool("SEED_DATA"),
		},
		HTTP: HTTPConfig{
			Port:           v.GetString("PORT"),
			AllowedOrigins: strings.Split(v.GetString("ALLOWED_ORIGINS"), ","),
		},
		JWT: JWTConfig{
			Secret:     v.GetString("JWT_SECRET"),
			Expiration: v.GetInt("JWT_EXPIRATION_MINUTES"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
	}
	return cfg, nil
}
