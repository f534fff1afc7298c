// Package config loads service configuration from a JSON file with
// environment variable overrides.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fmuoria/resume-analyzer/internal/similarity"
)

// Config holds application configuration
type Config struct {
	Port               int    `json:"port"`
	UploadsDir         string `json:"uploads_dir"`
	SkillsPath         string `json:"skills_path"`
	SimilarityStrategy string `json:"similarity_strategy"` // auto, gemini or tfidf
	GeminiAPIKey       string `json:"gemini_api_key"`
	EmbeddingModel     string `json:"embedding_model"`
	Debug              bool   `json:"debug"`
	JSONLogs           bool   `json:"json_logs"`
}

// DefaultConfig returns a new config with default values
func DefaultConfig() *Config {
	return &Config{
		Port:               8080,
		UploadsDir:         "uploads",
		SimilarityStrategy: similarity.StrategyAuto,
		EmbeddingModel:     similarity.DefaultEmbeddingModel,
	}
}

// GetConfigPath returns the path to the configuration file
// On Windows: %APPDATA%/ResumeAnalyzer/config.json
// On Unix: ~/.config/ResumeAnalyzer/config.json
func GetConfigPath() (string, error) {
	var configDir string

	if os.Getenv("APPDATA") != "" {
		// Windows
		configDir = filepath.Join(os.Getenv("APPDATA"), "ResumeAnalyzer")
	} else {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get user home directory: %w", err)
		}
		configDir = filepath.Join(homeDir, ".config", "ResumeAnalyzer")
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return filepath.Join(configDir, "config.json"), nil
}

// Load loads configuration from the default config path with environment
// overrides applied.
func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	return LoadFrom(configPath)
}

// LoadFrom loads configuration from a specific path. A missing file
// yields the defaults. Environment variables override file values.
func LoadFrom(path string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	config.applyEnv()

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// applyEnv overrides file values from the environment
func (c *Config) applyEnv() {
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		c.GeminiAPIKey = v
	}
	if v := os.Getenv("SIMILARITY_STRATEGY"); v != "" {
		c.SimilarityStrategy = v
	}
	if v := os.Getenv("EMBEDDING_MODEL"); v != "" {
		c.EmbeddingModel = v
	}
	if v := os.Getenv("UPLOADS_DIR"); v != "" {
		c.UploadsDir = v
	}
	if v := os.Getenv("SKILLS_PATH"); v != "" {
		c.SkillsPath = v
	}
	if v := os.Getenv("PORT"); v != "" {
		var port int
		if _, err := fmt.Sscanf(v, "%d", &port); err == nil && port > 0 {
			c.Port = port
		}
	}
}

// SaveTo saves the configuration to a specific path
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port %d is out of range", c.Port)
	}

	switch c.SimilarityStrategy {
	case similarity.StrategyAuto, similarity.StrategyGemini, similarity.StrategyTFIDF:
	default:
		return fmt.Errorf("similarity_strategy must be auto, gemini or tfidf, got %q", c.SimilarityStrategy)
	}

	if c.SimilarityStrategy == similarity.StrategyGemini && c.GeminiAPIKey == "" {
		return fmt.Errorf("gemini_api_key is required when similarity_strategy is gemini")
	}

	if c.UploadsDir == "" {
		return fmt.Errorf("uploads_dir is required")
	}

	return nil
}
