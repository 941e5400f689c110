/*
Package config manages TOML config for phoneword.

A missing file is created with defaults on first run:

	[dict]
	path = ""

	[cli]
	exit_command = "exit"
	prompt = "> "

	[server]
	max_digits = 32
	max_batch = 256
	max_renderings = 100000
	metrics_addr = ""

An empty dict path selects the word list embedded in the binary.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/bastiangx/phoneword/internal/utils"
	"github.com/charmbracelet/log"
)

// AppName names the config directory.
const AppName = "phoneword"

// Config holds the entire config structure
type Config struct {
	Dict   DictConfig   `toml:"dict"`
	CLI    CliConfig    `toml:"cli"`
	Server ServerConfig `toml:"server"`
}

// DictConfig holds dictionary options.
type DictConfig struct {
	Path string `toml:"path"`
}

// CliConfig holds interactive mode options.
type CliConfig struct {
	ExitCommand string `toml:"exit_command"`
	Prompt      string `toml:"prompt"`
}

// ServerConfig has IPC server related options.
// Zero limits disable the check.
type ServerConfig struct {
	MaxDigits     int    `toml:"max_digits"`
	MaxBatch      int    `toml:"max_batch"`
	MaxRenderings int    `toml:"max_renderings"`
	MetricsAddr   string `toml:"metrics_addr"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Dict: DictConfig{
			Path: "",
		},
		CLI: CliConfig{
			ExitCommand: "exit",
			Prompt:      "> ",
		},
		Server: ServerConfig{
			MaxDigits:     32,
			MaxBatch:      256,
			MaxRenderings: 100000,
			MetricsAddr:   "",
		},
	}
}

// GetDefaultConfigPath returns the default path for config.toml
func GetDefaultConfigPath() string {
	return filepath.Join(utils.ConfigDir(AppName), "config.toml")
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from --config flag
// 2. Default path: [UserConfigDir]/phoneword/config.toml
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath string) (*Config, string) {
	if customConfigPath != "" {
		if _, statErr := os.Stat(customConfigPath); statErr == nil {
			config, err := LoadConfig(customConfigPath)
			if err == nil {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath
			}
			log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
		} else {
			log.Warnf("Custom config file not found at %s: %v. Trying default path...", customConfigPath, statErr)
		}
	}

	defaultPath := GetDefaultConfigPath()
	config, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), ""
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	if utils.FileExists(configPath) {
		return LoadConfig(configPath)
	}

	configDir := filepath.Dir(configPath)
	if status := utils.CheckDirStatus(configDir); !status.Writable {
		log.Warnf("Config directory %s is not writable: %v. Using built-in defaults...", configDir, status.Error)
		return DefaultConfig(), nil
	}

	config := DefaultConfig()
	if err := SaveConfig(config, configPath); err != nil {
		log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
		return DefaultConfig(), nil
	}
	log.Debugf("Created default config file at: %s", configPath)
	return config, nil
}

// LoadConfig loads from a TOML file
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	return config, nil
}

// tryPartialParse keeps every well-typed key it can find and defaults the rest
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if dictSection, ok := utils.ExtractSection(tempConfig, "dict"); ok {
		extractDictConfig(dictSection, &config.Dict)
	}
	if cliSection, ok := utils.ExtractSection(tempConfig, "cli"); ok {
		extractCliConfig(cliSection, &config.CLI)
	}
	if serverSection, ok := utils.ExtractSection(tempConfig, "server"); ok {
		extractServerConfig(serverSection, &config.Server)
	}
	return config, nil
}

func extractDictConfig(data map[string]any, dict *DictConfig) {
	if val, ok := utils.ExtractString(data, "path"); ok {
		dict.Path = val
	}
}

func extractCliConfig(data map[string]any, cli *CliConfig) {
	if val, ok := utils.ExtractString(data, "exit_command"); ok && val != "" {
		cli.ExitCommand = val
	}
	if val, ok := utils.ExtractString(data, "prompt"); ok {
		cli.Prompt = val
	}
}

func extractServerConfig(data map[string]any, server *ServerConfig) {
	if val, ok := utils.ExtractInt64(data, "max_digits"); ok {
		server.MaxDigits = val
	}
	if val, ok := utils.ExtractInt64(data, "max_batch"); ok {
		server.MaxBatch = val
	}
	if val, ok := utils.ExtractInt64(data, "max_renderings"); ok {
		server.MaxRenderings = val
	}
	if val, ok := utils.ExtractString(data, "metrics_addr"); ok {
		server.MetricsAddr = val
	}
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}
