package config

import (
	"os"
	"testing"
)

func TestGetEnvOrDefault(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		envValue   string
		defaultVal string
		expected   string
	}{
		{"uses env value", "TEST_VAR_1", "hello", "default", "hello"},
		{"uses default when empty", "TEST_VAR_2", "", "default", "default"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.envValue != "" {
				os.Setenv(tc.key, tc.envValue)
				defer os.Unsetenv(tc.key)
			}

			result := getEnvOrDefault(tc.key, tc.defaultVal)
			if result != tc.expected {
				t.Errorf("Expected %q, got %q", tc.expected, result)
			}
		})
	}
}

func TestGetEnvAsFloatOrDefault(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		envValue   string
		defaultVal float64
		expected   float64
	}{
		{"parses float", "TEST_FLOAT_1", "0.2", 0.6, 0.2},
		{"uses default for empty", "TEST_FLOAT_2", "", 0.6, 0.6},
		{"uses default for non-numeric", "TEST_FLOAT_3", "warm", 0.6, 0.6},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.envValue != "" {
				os.Setenv(tc.key, tc.envValue)
				defer os.Unsetenv(tc.key)
			}

			result := getEnvAsFloatOrDefault(tc.key, tc.defaultVal)
			if result != tc.expected {
				t.Errorf("Expected %v, got %v", tc.expected, result)
			}
		})
	}
}

func TestLoad_TrimsAPIKey(t *testing.T) {
	os.Setenv("OPENAI_API_KEY", "  sk-test-key \n")
	defer os.Unsetenv("OPENAI_API_KEY")

	cfg := Load()
	if cfg.OpenAIAPIKey != "sk-test-key" {
		t.Errorf("Expected trimmed key, got %q", cfg.OpenAIAPIKey)
	}
}

func TestLoad_Defaults(t *testing.T) {
	os.Unsetenv("OPENAI_API_URL")
	os.Unsetenv("OPENAI_MODEL")
	os.Unsetenv("OPENAI_TEMPERATURE")

	cfg := Load()
	if cfg.OpenAIAPIURL != defaultCompletionsURL {
		t.Errorf("Expected default API URL, got %q", cfg.OpenAIAPIURL)
	}
	if cfg.OpenAIModel != "gpt-4.1-mini" {
		t.Errorf("Expected default model, got %q", cfg.OpenAIModel)
	}
	if cfg.OpenAITemperature != 0.6 {
		t.Errorf("Expected default temperature 0.6, got %v", cfg.OpenAITemperature)
	}
}

func TestSplitCSV(t *testing.T) {
	got := splitCSV(" https://aimax.rs , *,")
	if len(got) != 2 || got[0] != "https://aimax.rs" || got[1] != "*" {
		t.Errorf("Unexpected split result: %v", got)
	}
}
