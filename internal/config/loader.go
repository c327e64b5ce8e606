package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/romellogoodman/monolith/pkg/logging"
)

const (
	userConfigDir = ".config/monolith"
	// EnvPrefix prefixes every environment override, e.g. MONOLITH_SERVER_PORT.
	EnvPrefix = "MONOLITH"
)

// configFileNames are tried in order when LoadConfig is given a directory.
var configFileNames = []string{"config.yaml", "config.yml", "config.toml"}

// GetDefaultConfigPath returns ~/.config/monolith.
func GetDefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine user config directory: %w", err)
	}
	return filepath.Join(homeDir, userConfigDir), nil
}

// LoadConfig layers defaults, the configuration file at configPath and
// MONOLITH_* environment variables, then validates the result.
//
// configPath may name a file (.yaml, .yml or .toml) or a directory holding
// one of config.yaml, config.yml or config.toml. An empty or missing path
// yields the defaults.
func LoadConfig(configPath string) (Config, error) {
	cfg := GetDefaultConfig()

	filePath, err := resolveConfigFile(configPath)
	if err != nil {
		return Config{}, err
	}

	if filePath == "" {
		logging.Debug("ConfigLoader", "No configuration file found at %q, using defaults", configPath)
	} else {
		if err := decodeFile(filePath, &cfg); err != nil {
			return Config{}, err
		}
		logging.Info("ConfigLoader", "Loaded configuration from %s", filePath)
	}

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("error applying environment overrides: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func resolveConfigFile(configPath string) (string, error) {
	if configPath == "" {
		return "", nil
	}

	info, err := os.Stat(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("error reading config path %s: %w", configPath, err)
	}
	if !info.IsDir() {
		return configPath, nil
	}

	for _, name := range configFileNames {
		candidate := filepath.Join(configPath, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", nil
}

func decodeFile(filePath string, cfg *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return NewConfigurationError(filePath, "io", err.Error())
	}

	switch ext := strings.ToLower(filepath.Ext(filePath)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	case ".toml":
		err = toml.Unmarshal(data, cfg)
	default:
		return NewConfigurationError(filePath, "format", fmt.Sprintf("unsupported config file extension %q", ext))
	}
	if err != nil {
		return NewConfigurationError(filePath, "parse", err.Error())
	}
	return nil
}
