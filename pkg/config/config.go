/*
Package config manages TOML config for clueserve services.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/bastiangx/clueserve/internal/utils"
)

// Config holds the entire config structure
type Config struct {
	Server ServerConfig `toml:"server"`
	Dict   DictConfig   `toml:"dict"`
	Solver SolverConfig `toml:"solver"`
}

// ServerConfig has server related options.
type ServerConfig struct {
	HTTPAddr string `toml:"http_addr"`
}

// DictConfig holds dictionary options.
type DictConfig struct {
	Path string `toml:"path"`
	// WordLength is informational only; the engine is compiled for 5.
	WordLength int `toml:"word_length"`
}

// SolverConfig holds solver tuning knobs.
type SolverConfig struct {
	// NarrowPool filters the guess pool with every clue instead of
	// leaving it at its reset-time contents.
	NarrowPool bool `toml:"narrow_pool"`
	// MatchWeight is the scoring bonus for exact positional hits.
	MatchWeight int `toml:"match_weight"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPAddr: ":8088",
		},
		Dict: DictConfig{
			Path:       "words_alpha.txt",
			WordLength: 5,
		},
		Solver: SolverConfig{
			NarrowPool:  false,
			MatchWeight: 4,
		},
	}
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from --config flag
// 2. Default path in the user config dir
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath, defaultPath string) (*Config, string, error) {
	if customConfigPath != "" {
		if _, statErr := os.Stat(customConfigPath); statErr == nil {
			config, err := LoadConfig(customConfigPath)
			if err != nil {
				log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
			} else {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath, nil
			}
		} else {
			log.Warnf("Custom config file not found at %s: %v. Trying default path...", customConfigPath, statErr)
		}
	}

	config, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath, nil
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	config, err := LoadConfig(configPath)
	if err != nil {
		log.Warnf("Failed to load config from %s: %v. Using built-in defaults...", configPath, err)
		return DefaultConfig(), nil
	}
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

// tryPartialParse salvages whatever valid sections a broken file still has
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if serverSection, ok := utils.ExtractSection(tempConfig, "server"); ok {
		extractServerConfig(serverSection, &config.Server)
	}
	if dictSection, ok := utils.ExtractSection(tempConfig, "dict"); ok {
		extractDictConfig(dictSection, &config.Dict)
	}
	if solverSection, ok := utils.ExtractSection(tempConfig, "solver"); ok {
		extractSolverConfig(solverSection, &config.Solver)
	}
	return config, nil
}

// extractServerConfig extracts server configuration from a map
func extractServerConfig(data map[string]any, server *ServerConfig) {
	if val, ok := utils.ExtractString(data, "http_addr"); ok {
		server.HTTPAddr = val
	}
}

// extractDictConfig extracts dictionary configuration from a map
func extractDictConfig(data map[string]any, dict *DictConfig) {
	if val, ok := utils.ExtractString(data, "path"); ok {
		dict.Path = val
	}
	if val, ok := utils.ExtractInt64(data, "word_length"); ok {
		dict.WordLength = val
	}
}

// extractSolverConfig extracts solver configuration from a map
func extractSolverConfig(data map[string]any, solver *SolverConfig) {
	if val, ok := utils.ExtractBool(data, "narrow_pool"); ok {
		solver.NarrowPool = val
	}
	if val, ok := utils.ExtractInt64(data, "match_weight"); ok {
		solver.MatchWeight = val
	}
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}
