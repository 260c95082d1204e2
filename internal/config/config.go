package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config represents the ccpulse configuration
type Config struct {
	Source string `mapstructure:"source"`
	Input  string `mapstructure:"input"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
	Window int    `mapstructure:"window"`
	Color  bool   `mapstructure:"color"`
	Quiet  bool   `mapstructure:"quiet"`
}

// LoadConfig loads configuration from defaults, config file, environment
// variables, and any flags already bound into viper, in that precedence order.
func LoadConfig() (*Config, error) {
	// Set default values
	viper.SetDefault("source", "cchours")
	viper.SetDefault("input", "")
	viper.SetDefault("format", "console")
	viper.SetDefault("output", "")
	viper.SetDefault("window", 30)
	viper.SetDefault("color", true)
	viper.SetDefault("quiet", false)

	// Config file locations
	configPaths := []string{".ccpulserc.json", ".ccpulserc.yaml", ".ccpulserc.yml"}
	for _, path := range configPaths {
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err == nil {
			break
		}
	}

	// Environment variables
	viper.SetEnvPrefix("CCPULSE")
	viper.AutomaticEnv()

	// Create config instance
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// validateConfig validates the configuration
func validateConfig(config *Config) error {
	// Validate format
	switch config.Format {
	case "console", "json", "share":
	default:
		return fmt.Errorf("invalid format: %s. Must be 'console', 'json', or 'share'", config.Format)
	}

	// Validate window
	if config.Window < 1 {
		return fmt.Errorf("window must be at least 1 day")
	}

	// Validate output file: only the json format writes a file
	if config.Output != "" && config.Format != "json" {
		return fmt.Errorf("--output is only supported with the json format")
	}

	return nil
}

// SaveConfig saves the current configuration to a file
func SaveConfig(config *Config, path string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	// Marshal config to JSON
	jsonData, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}

	// Write to file
	if err := os.WriteFile(path, jsonData, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}
