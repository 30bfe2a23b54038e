// Package config provides configuration loading for the CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultDataPath is used when no dataset path is configured.
const DefaultDataPath = "ai_job_market.csv"

// Config represents the application configuration. Values may come from
// a JSON file, environment variables or CLI flags; flags win over the
// file, the file wins over the environment defaults.
type Config struct {
	// DataPath is the dataset CSV to load at startup
	DataPath string `json:"data_path,omitempty"`
	// Model overrides the default answer model
	Model string `json:"model,omitempty"`
	// Port is the HTTP listen port for serve mode
	Port int `json:"port,omitempty"`

	// APIKey is the Gemini API key
	APIKey string `json:"api_key,omitempty"`
	// GitHubToken authenticates issue creation
	GitHubToken string `json:"github_token,omitempty"`
	// GitHubRepo is the "owner/name" repository for tickets
	GitHubRepo string `json:"github_repo,omitempty"`

	// Verbose prints boxed diagnostics in CLI mode
	Verbose bool `json:"verbose,omitempty"`
}

// FromEnv returns a Config populated from environment variables.
func FromEnv() Config {
	return Config{
		DataPath:    os.Getenv("DATA_PATH"),
		Model:       os.Getenv("INSIGHTS_MODEL"),
		APIKey:      os.Getenv("GEMINI_API_KEY"),
		GitHubToken: os.Getenv("GITHUB_TOKEN"),
		GitHubRepo:  os.Getenv("GITHUB_REPO"),
	}
}

// LoadConfig loads configuration from a JSON file.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	return &cfg, nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. Bool fields are not merged; flags always win for those.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.DataPath == "" {
		result.DataPath = defaults.DataPath
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.GitHubToken == "" {
		result.GitHubToken = defaults.GitHubToken
	}
	if result.GitHubRepo == "" {
		result.GitHubRepo = defaults.GitHubRepo
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}

	if result.DataPath == "" {
		result.DataPath = DefaultDataPath
	}

	return result
}

// Validate checks that the configuration has usable values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.DataPath != "" {
		if _, err := os.Stat(c.DataPath); os.IsNotExist(err) {
			return fmt.Errorf("config error: dataset file not found: %s", c.DataPath)
		}
	}
	return nil
}
