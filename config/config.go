package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// ServiceM8 upstream configuration. The API key is optional: without it
	// the portal still serves user and message endpoints, but every booking
	// lookup reports the upstream as unavailable.
	ServiceM8APIKey  string `mapstructure:"SERVICEM8_API_KEY"`
	ServiceM8BaseURL string `mapstructure:"SERVICEM8_BASE_URL"`

	// Directory for the flat-file user and message stores.
	DataDir string `mapstructure:"DATA_DIR"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("SERVICEM8_API_KEY", "")
	viper.SetDefault("SERVICEM8_BASE_URL", "https://api.servicem8.com/api_1.0")
	viper.SetDefault("DATA_DIR", "./data")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Keys pasted into .env files often arrive wrapped in quotes.
	AppConfig.ServiceM8APIKey = strings.Trim(AppConfig.ServiceM8APIKey, `"'`)
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
