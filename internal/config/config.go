// Package config loads FlavorScape settings from config.yaml, the
// environment and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/flavorscape/internal/paths"
	"github.com/mesh-intelligence/flavorscape/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"

	// EnvPrefix is prepended to every environment override, with dots in
	// keys replaced by underscores (FLAVORSCAPE_LOG_LEVEL for log.level).
	EnvPrefix = "FLAVORSCAPE"

	// Config keys.
	KeyBackend  = "backend"
	KeyCurrency = "currency"
	KeyLogLevel = "log.level"
	KeyLogFile  = "log.file"
)

// LoadDotEnv loads KEY=value pairs from the given files (".env" when none
// are named) into the process environment. Missing files are ignored and
// variables already set are left alone.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// Load reads config.yaml from configDir, applies FLAVORSCAPE_* environment
// overrides and validates the result. A missing config.yaml is not an error.
func Load(configDir string) (types.Config, error) {
	v := viper.New()
	def := types.DefaultConfig()
	v.SetDefault(KeyBackend, def.Backend)
	v.SetDefault(KeyCurrency, def.Currency)
	v.SetDefault(KeyLogLevel, def.Log.Level)
	v.SetDefault(KeyLogFile, "")

	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return types.Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := types.Config{
		Backend:  strings.ToLower(strings.TrimSpace(v.GetString(KeyBackend))),
		Currency: v.GetString(KeyCurrency),
		Log: types.LogConfig{
			Level: v.GetString(KeyLogLevel),
			File:  v.GetString(KeyLogFile),
		},
	}
	if err := cfg.Validate(); err != nil {
		return types.Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// WriteDefault creates configDir and writes cfg to config.yaml unless the
// file already exists. It returns the file path and whether it was written.
func WriteDefault(configDir string, cfg types.Config) (string, bool, error) {
	path := paths.ConfigFile(configDir)

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return path, false, fmt.Errorf("create config dir: %w", err)
	}

	_, err := os.Stat(path)
	if err == nil {
		return path, false, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return path, false, fmt.Errorf("stat config file: %w", err)
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return path, false, fmt.Errorf("marshal config: %w", err)
	}
	header := "# FlavorScape configuration\n# backend: memory | sqlite (both keep the menu for the current session only)\n"
	if err := os.WriteFile(filepath.Clean(path), append([]byte(header), data...), 0o644); err != nil {
		return path, false, fmt.Errorf("write config: %w", err)
	}
	return path, true, nil
}
