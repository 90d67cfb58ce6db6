package core

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds depflags configuration
type Config struct {
	Backend           string   `yaml:"backend,omitempty"`
	Lenient           bool     `yaml:"lenient"`
	Strict            bool     `yaml:"strict"`
	Clang             bool     `yaml:"clang"`
	Debug             bool     `yaml:"debug"`
	CachePath         string   `yaml:"cache_path"`
	RegistryURL       string   `yaml:"registry_url"` // git repository holding deps/<name>/index.toml
	SystemIncludeDirs []string `yaml:"system_include_dirs"`
	LocalIncludePaths []string `yaml:"local_include_paths,omitempty"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Backend:           "", // Auto-detect
		CachePath:         getDefaultCachePath(),
		SystemIncludeDirs: []string{"/usr/include", "/usr/local/include"},
	}
}

// DefaultConfigPath returns $HOME/.config/depflags/config.yaml
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "depflags", "config.yaml")
}

// LoadConfig loads configuration from file
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigPath()
		if path == "" {
			return DefaultConfig(), nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.CachePath == "" {
		cfg.CachePath = getDefaultCachePath()
	}

	return cfg, nil
}

// SaveConfig saves configuration to file
func SaveConfig(cfg *Config, path string) error {
	if path == "" {
		path = DefaultConfigPath()
		if path == "" {
			return fmt.Errorf("no home directory for config")
		}
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

func getDefaultCachePath() string {
	if path := os.Getenv("DEPFLAGS_CACHE_PATH"); path != "" {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "depflags")
	}

	return filepath.Join(home, ".cache", "depflags")
}
