package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
)

var configOverride string

// SetConfigPath makes LoadConfig and Save use path instead of the user
// config directory.
func SetConfigPath(path string) {
	configOverride = path
}

// Config holds scorer preferences remembered between runs.
type Config struct {
	// Who scores are recorded for
	PlayerName string `json:"player_name"`

	// Score ledger
	DBPath       string `json:"db_path,omitempty"`
	RecordScores bool   `json:"record_scores"`
	HistoryLimit int    `json:"history_limit"`

	// Output preferences
	ShowBoard bool `json:"show_board"`
	JSON      bool `json:"json"`

	// Random kingdoms
	GeneratorSize int `json:"generator_size"`
	CrownChance   int `json:"crown_chance"`
}

// DefaultConfig returns a config with default values.
func DefaultConfig() *Config {
	return &Config{
		PlayerName:    "player",
		HistoryLimit:  20,
		GeneratorSize: 5,
		CrownChance:   30,
	}
}

// LoadConfig loads config from the user's config directory.
// A missing file yields the defaults without error.
func LoadConfig() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return DefaultConfig(), err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return DefaultConfig(), err
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return DefaultConfig(), err
	}

	return cfg, nil
}

// Save saves the config to disk.
func (c *Config) Save() error {
	path, err := configPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// configPath returns the path to the config file.
func configPath() (string, error) {
	if configOverride != "" {
		return configOverride, nil
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(configDir, "kingdomino", "config.json"), nil
}

// DefaultDBPath returns where the score ledger lives when none is configured.
func DefaultDBPath() string {
	dataDir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join("data", "scores.db")
	}
	return filepath.Join(dataDir, "kingdomino", "scores.db")
}
