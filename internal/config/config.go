package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Port string

	// Assistant response timing
	AnalysisDelay   time.Duration
	ChatDelayBase   time.Duration
	ChatDelayJitter time.Duration

	// Feedback notification channels
	SendGridAPIKey     string
	FeedbackEmail      string
	FeedbackWebhookURL string
	NtfyTopic          string
}

// Load loads configuration from a .env file (if present) and the
// environment. Every field has a usable default, so Load never fails on a
// bare environment.
func Load() *Config {
	godotenv.Load()

	return &Config{
		Port:               getEnv("PORT", "5000"),
		AnalysisDelay:      getEnvAsDuration("ANALYSIS_DELAY", 2*time.Second),
		ChatDelayBase:      getEnvAsDuration("CHAT_DELAY_BASE", time.Second),
		ChatDelayJitter:    getEnvAsDuration("CHAT_DELAY_JITTER", 2*time.Second),
		SendGridAPIKey:     getEnv("SENDGRID_API_KEY", ""),
		FeedbackEmail:      getEnv("FEEDBACK_EMAIL", "workfree613@gmail.com"),
		FeedbackWebhookURL: getEnv("FEEDBACK_WEBHOOK_URL", ""),
		NtfyTopic:          getEnv("NTFY_TOPIC", "pocket-lawyer-feedback"),
	}
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration gets an environment variable as a duration or returns a default value
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
