package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/ironlog/ironlog/internal/session"
)

type Config struct {
	DB      DBConfig      `toml:"database"`
	Session SessionConfig `toml:"session"`
}

type DBConfig struct {
	ConnectionString string `toml:"connection_string"` // The entire DB connection string.
}

type SessionConfig struct {
	WeightStep float64 `toml:"weight_step"` // Increment applied per adjust-weight step.
}

// Returns the path to the config file.
func GetConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	dir := filepath.Join(home, ".config", "ironlog")
	return filepath.Join(dir, "config.toml"), nil
}

// Reads the configuration from the config file. A missing file is not an
// error: the defaults are enough for everything but a remote database.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Session: SessionConfig{WeightStep: session.DefaultWeightStep},
	}

	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	if cfg.Session.WeightStep <= 0 {
		cfg.Session.WeightStep = session.DefaultWeightStep
	}

	// Check for a DEV_MODE environment variable.
	if os.Getenv("DEV_MODE") == "true" {
		cfg.DB.ConnectionString = "file:./local.db?cache=shared&mode=rwc"
	}

	return cfg, nil
}
