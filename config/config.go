package config

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the lingorag service.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Store     StoreConfig     `yaml:"store"`
	Embedding EmbeddingConfig `yaml:"embedding"`
	Retrieve  RetrieveConfig  `yaml:"retrieve"`
	Stammer   StammerConfig   `yaml:"stammer"`
	Import    ImportConfig    `yaml:"import"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// StoreConfig holds pair store configuration.
type StoreConfig struct {
	Path string `yaml:"path"`
}

// EmbeddingConfig holds embedding configuration.
type EmbeddingConfig struct {
	Provider     string `yaml:"provider"`    // "openai", "ollama", "compatible", "mock"
	Model        string `yaml:"model"`       // e.g., "text-embedding-3-small"
	APIKeyEnv    string `yaml:"api_key_env"` // Environment variable for API key
	BaseURL      string `yaml:"base_url"`    // For "ollama" and "compatible"
	Dimension    int    `yaml:"dimension"`
	BatchSize    int    `yaml:"batch_size"`
	CacheSize    int    `yaml:"cache_size"` // Query vector cache entries (0 = disabled)
	CacheTTLSecs int    `yaml:"cache_ttl_seconds"`
}

// CacheTTL returns the cache TTL as a duration.
func (c EmbeddingConfig) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLSecs) * time.Second
}

// RetrieveConfig holds retrieval configuration.
type RetrieveConfig struct {
	MaxExamples int `yaml:"max_examples"`
}

// StammerConfig holds the stammering rule thresholds.
type StammerConfig struct {
	MinElongationRun int `yaml:"min_elongation_run"`
	MinDupWordLen    int `yaml:"min_dup_word_len"`
	RepetitionMargin int `yaml:"repetition_margin"`
}

// ImportConfig holds bulk corpus import configuration.
type ImportConfig struct {
	Includes []string `yaml:"includes"`
	Excludes []string `yaml:"excludes"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr: ":8080",
		},
		Store: StoreConfig{
			Path: "", // Resolved to <dir>/.lingorag/pairs.db
		},
		Embedding: EmbeddingConfig{
			Provider:     "ollama",
			Model:        "all-minilm",
			APIKeyEnv:    "OPENAI_API_KEY",
			BaseURL:      "",
			Dimension:    384,
			BatchSize:    100,
			CacheSize:    1000,
			CacheTTLSecs: 600,
		},
		Retrieve: RetrieveConfig{
			MaxExamples: 4,
		},
		Stammer: StammerConfig{
			MinElongationRun: 6,
			MinDupWordLen:    3,
			RepetitionMargin: 2,
		},
		Import: ImportConfig{
			Includes: []string{"**/*.tsv"},
			Excludes: []string{"**/.git/**", "**/node_modules/**"},
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromDir loads configuration from a directory (looks for lingorag.yaml).
func LoadFromDir(dir string) (*Config, error) {
	// Try lingorag.yaml in the directory
	path := filepath.Join(dir, "lingorag.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	// Try .lingorag/config.yaml
	path = filepath.Join(dir, ".lingorag", "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	// Return defaults
	return DefaultConfig(), nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// PairDBPath returns the path to the pair database, honoring an explicit
// store.path override.
func (c *Config) PairDBPath(dir string) string {
	if c.Store.Path != "" {
		return c.Store.Path
	}
	return filepath.Join(dir, ".lingorag", "pairs.db")
}

// EnsureDataDir ensures the .lingorag directory exists.
func EnsureDataDir(dir string) error {
	return os.MkdirAll(filepath.Join(dir, ".lingorag"), 0755)
}
