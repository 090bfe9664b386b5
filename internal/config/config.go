package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const defaultCompletionsURL = "https://api.openai.com/v1/chat/completions"

type Config struct {
	// Server
	Port string
	Env  string

	// Upstream completion API
	OpenAIAPIKey      string
	OpenAIAPIURL      string
	OpenAIModel       string
	OpenAITemperature float64

	// Lead collector webhook (optional; leads are logged when unset)
	LeadWebhookURL string

	// CORS
	AllowedOrigins []string
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	return &Config{
		Port:              getEnvOrDefault("PORT", "8080"),
		Env:               getEnvOrDefault("ENV", "development"),
		OpenAIAPIKey:      strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		OpenAIAPIURL:      getEnvOrDefault("OPENAI_API_URL", defaultCompletionsURL),
		OpenAIModel:       getEnvOrDefault("OPENAI_MODEL", "gpt-4.1-mini"),
		OpenAITemperature: getEnvAsFloatOrDefault("OPENAI_TEMPERATURE", 0.6),
		LeadWebhookURL:    getEnvOrDefault("LEAD_WEBHOOK_URL", ""),
		AllowedOrigins:    splitCSV(getEnvOrDefault("ALLOWED_ORIGINS", "*")),
	}
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsFloatOrDefault(key string, defaultVal float64) float64 {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return defaultVal
	}
	return f
}

func splitCSV(val string) []string {
	parts := strings.Split(val, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
