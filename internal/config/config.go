package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

// input modes
const (
	InputSelect = "select"
	InputLine   = "line"
)

// Config represents the application configuration
type Config struct {
	SettleDelayMS int    `toml:"settle_delay_ms" envconfig:"settle_delay_ms"`
	ShuffleCount  int    `toml:"shuffle_count" envconfig:"shuffle_count"`
	LogLevel      string `toml:"log_level" envconfig:"log_level"`
	LogFormat     string `toml:"log_format" envconfig:"log_format"`
	Input         string `toml:"input" envconfig:"input"`
}

// Default returns the configuration written on first run
func Default() Config {
	return Config{
		SettleDelayMS: 500,
		ShuffleCount:  1,
		LogLevel:      "warn",
		LogFormat:     "text",
		Input:         InputSelect,
	}
}

// SettleDelay returns the pause between revealing a card and the next deal
func (c Config) SettleDelay() time.Duration {
	return time.Duration(c.SettleDelayMS) * time.Millisecond
}

// Validate checks the values are usable
func (c Config) Validate() error {
	if c.SettleDelayMS < 0 {
		return fmt.Errorf("settle_delay_ms must not be negative: %d", c.SettleDelayMS)
	}

	if c.ShuffleCount < 0 {
		return fmt.Errorf("shuffle_count must not be negative: %d", c.ShuffleCount)
	}

	if c.Input != InputSelect && c.Input != InputLine {
		return fmt.Errorf("input must be %q or %q: %q", InputSelect, InputLine, c.Input)
	}

	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}

	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("log_format must be \"text\" or \"json\": %q", c.LogFormat)
	}

	return nil
}

// Dir is $XDG_CONFIG_HOME/highlow, falling back to ~/.config/highlow
func Dir() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "highlow"
		}
		base = filepath.Join(home, ".config")
	}

	return filepath.Join(base, "highlow")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(Dir(), "config.toml")
}

// LoadConfig loads the config file, creating it with defaults if needed,
// then applies HIGHLOW_* environment variables on top.
func LoadConfig() (*Config, error) {
	config, err := loadFile()
	if err != nil {
		return nil, err
	}

	if err := envconfig.Process("highlow", config); err != nil {
		return nil, fmt.Errorf("error reading environment: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func loadFile() (*Config, error) {
	configPath := GetConfigFilePath()

	// Create default config if it doesn't exist
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig()
	}

	config := Default()
	if _, err := toml.DecodeFile(configPath, &config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}

	return &config, nil
}

// createDefaultConfig creates a default config file
func createDefaultConfig() (*Config, error) {
	config := Default()
	if err := save(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func save(config *Config) error {
	configPath := GetConfigFilePath()

	// Ensure the config directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}

	return nil
}

// Set updates one key in the config file. Environment overrides are not written.
func Set(key, value string) error {
	config, err := loadFile()
	if err != nil {
		return err
	}

	switch key {
	case "settle_delay_ms", "shuffle_count":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s must be an integer: %w", key, err)
		}

		if key == "settle_delay_ms" {
			config.SettleDelayMS = n
		} else {
			config.ShuffleCount = n
		}
	case "log_level":
		config.LogLevel = value
	case "log_format":
		config.LogFormat = value
	case "input":
		config.Input = value
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}

	if err := config.Validate(); err != nil {
		return err
	}

	return save(config)
}
