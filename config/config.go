package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Public base URL used to build the Klarna merchant callback URLs
	// (terms, checkout, confirmation, push). Typically an ngrok tunnel in
	// development.
	PublicURL string `mapstructure:"PUBLIC_URL"`

	// Gemini configuration.
	GeminiAPIKey      string `mapstructure:"GEMINI_API_KEY"`
	LLMTimeoutSeconds int    `mapstructure:"LLM_TIMEOUT_SECONDS"`

	// Klarna configuration.
	KlarnaAPIURL         string `mapstructure:"KLARNA_API_URL"`
	KlarnaUsername       string `mapstructure:"KLARNA_USERNAME"`
	KlarnaPassword       string `mapstructure:"KLARNA_PASSWORD"`
	KlarnaTimeoutSeconds int    `mapstructure:"KLARNA_TIMEOUT_SECONDS"`

	// Conversation retention: maximum turns kept per chat session.
	ChatHistoryLimit int `mapstructure:"CHAT_HISTORY_LIMIT"`
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
	viper.SetDefault("PUBLIC_URL", "https://example.com")
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("LLM_TIMEOUT_SECONDS", 15)
	viper.SetDefault("KLARNA_API_URL", "https://api.playground.klarna.com")
	viper.SetDefault("KLARNA_USERNAME", "")
	viper.SetDefault("KLARNA_PASSWORD", "")
	viper.SetDefault("KLARNA_TIMEOUT_SECONDS", 10)
	viper.SetDefault("CHAT_HISTORY_LIMIT", 40)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

// LLMTimeout returns the outbound LLM call timeout.
func LLMTimeout() time.Duration {
	return time.Duration(AppConfig.LLMTimeoutSeconds) * time.Second
}

// KlarnaTimeout returns the outbound Klarna call timeout.
func KlarnaTimeout() time.Duration {
	return time.Duration(AppConfig.KlarnaTimeoutSeconds) * time.Second
}
