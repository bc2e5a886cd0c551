// Package config loads configuration from the environment with an
// optional YAML file overlay, and sets up logging.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Provider selects the generative-model backend.
type Provider string

const (
	ProviderGoogleAI  Provider = "googleai"
	ProviderOpenAI    Provider = "openai"
	ProviderAnthropic Provider = "anthropic"
	ProviderOllama    Provider = "ollama"
	ProviderBedrock   Provider = "bedrock"
)

// Config holds all configuration values.
type Config struct {
	// LLM backend
	LLMProvider Provider
	LLMModel    string

	GoogleAPIKey    string
	OpenAIAPIKey    string
	AnthropicAPIKey string
	OllamaHost      string
	BedrockRegion   string

	// Reference listings (optional)
	DataDir string

	// Logging
	LogFile  string
	LogLevel slog.Level
}

// fileConfig mirrors the YAML overlay. Only non-secret knobs live here;
// API keys always come from the environment.
type fileConfig struct {
	Provider string `yaml:"provider"`
	Model    string `yaml:"model"`
	Ollama   string `yaml:"ollama_host"`
	Region   string `yaml:"bedrock_region"`
	DataDir  string `yaml:"data_dir"`
	LogFile  string `yaml:"log_file"`
	LogLevel string `yaml:"log_level"`
}

// Load reads configuration from environment variables.
func Load() Config {
	return Config{
		LLMProvider: Provider(getEnv("AUTOVISORY_LLM_PROVIDER", string(ProviderGoogleAI))),
		LLMModel:    getEnv("AUTOVISORY_LLM_MODEL", "gemini-1.5-flash"),

		GoogleAPIKey:    os.Getenv("GOOGLE_API_KEY"),
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),
		OllamaHost:      getEnv("OLLAMA_HOST", "http://localhost:11434"),
		BedrockRegion:   os.Getenv("AUTOVISORY_BEDROCK_REGION"),

		DataDir: os.Getenv("AUTOVISORY_DATA_DIR"),

		LogFile:  getEnv("AUTOVISORY_LOG_FILE", "/tmp/autovisory.log"),
		LogLevel: parseLogLevel(getEnv("AUTOVISORY_LOG_LEVEL", "INFO")),
	}
}

// LoadWithFile loads from the environment, then fills gaps from the
// YAML file at path. Environment values always win; the file only
// supplies what the environment left unset.
func LoadWithFile(path string) (Config, error) {
	cfg := Load()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return cfg, fmt.Errorf("parse config file: %w", err)
	}

	if fc.Provider != "" && os.Getenv("AUTOVISORY_LLM_PROVIDER") == "" {
		cfg.LLMProvider = Provider(fc.Provider)
	}
	if fc.Model != "" && os.Getenv("AUTOVISORY_LLM_MODEL") == "" {
		cfg.LLMModel = fc.Model
	}
	if fc.Ollama != "" && os.Getenv("OLLAMA_HOST") == "" {
		cfg.OllamaHost = fc.Ollama
	}
	if fc.Region != "" && os.Getenv("AUTOVISORY_BEDROCK_REGION") == "" {
		cfg.BedrockRegion = fc.Region
	}
	if fc.DataDir != "" && os.Getenv("AUTOVISORY_DATA_DIR") == "" {
		cfg.DataDir = fc.DataDir
	}
	if fc.LogFile != "" && os.Getenv("AUTOVISORY_LOG_FILE") == "" {
		cfg.LogFile = fc.LogFile
	}
	if fc.LogLevel != "" && os.Getenv("AUTOVISORY_LOG_LEVEL") == "" {
		cfg.LogLevel = parseLogLevel(fc.LogLevel)
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
