package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/petuwrite/logo-cropper/pkg/cropper"
	"github.com/petuwrite/logo-cropper/pkg/processing"
)

// Default asset locations, relative to the project root
const (
	DefaultInputPath  = "assets/PetUwrite transparent.png"
	DefaultOutputPath = "assets/PetUwrite icon only.png"
)

// Config holds the application configuration
type Config struct {
	Cropper CropperConfig `json:"cropper"`
	Paths   PathsConfig   `json:"paths"`
	Output  OutputConfig  `json:"output"`
}

// CropperConfig holds the crop geometry
type CropperConfig struct {
	TopFraction float64 `json:"top_fraction"`
}

// PathsConfig holds the input and output file locations
type PathsConfig struct {
	Input  string `json:"input"`
	Output string `json:"output"`
}

// OutputConfig holds configuration for PNG output
type OutputConfig struct {
	CompressionLevel string `json:"compression_level"`
}

// Default returns a configuration with default values
func Default() *Config {
	return &Config{
		Cropper: CropperConfig{
			TopFraction: cropper.DefaultTopFraction,
		},
		Paths: PathsConfig{
			Input:  DefaultInputPath,
			Output: DefaultOutputPath,
		},
		Output: OutputConfig{
			CompressionLevel: "default",
		},
	}
}

// LoadFromFile loads configuration from a JSON file. Fields missing from the
// file keep their default values.
func LoadFromFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// Resolve loads the explicitly requested file, or the per-user file at
// GetConfigPath when it exists, or falls back to the defaults.
func Resolve(explicit string) (*Config, string, error) {
	if explicit != "" {
		cfg, err := LoadFromFile(explicit)
		return cfg, explicit, err
	}

	userPath := GetConfigPath()
	if info, err := os.Stat(userPath); err == nil && !info.IsDir() {
		cfg, err := LoadFromFile(userPath)
		return cfg, userPath, err
	}

	return Default(), "", nil
}

// SaveToFile saves configuration to a JSON file
func (c *Config) SaveToFile(filename string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Cropper.TopFraction <= 0 || c.Cropper.TopFraction > 1 {
		return fmt.Errorf("cropper.top_fraction must be greater than 0 and at most 1")
	}

	if c.Paths.Input == "" {
		return fmt.Errorf("paths.input cannot be empty")
	}

	if c.Paths.Output == "" {
		return fmt.Errorf("paths.output cannot be empty")
	}

	if _, err := processing.CompressionLevel(c.Output.CompressionLevel); err != nil {
		return fmt.Errorf("output.compression_level: %w", err)
	}

	return nil
}

// GetConfigPath returns the default configuration file path
func GetConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "./logo-cropper.json"
	}
	return filepath.Join(home, ".config", "logo-cropper", "config.json")
}
