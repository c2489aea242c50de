// Package paths resolves the configuration directory and log file locations.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// AppDirName is the directory created under the platform config root.
const AppDirName = "flavorscape"

// ConfigFileName is the config file looked up inside the config directory.
const ConfigFileName = "config.yaml"

// Environment variable names for location overrides.
const (
	EnvConfigDir = "FLAVORSCAPE_CONFIG_DIR"
	EnvLogFile   = "FLAVORSCAPE_LOG_FILE"
)

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the platform-specific default configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/flavorscape (fallback ~/.config/flavorscape)
// macOS:   ~/Library/Application Support/flavorscape
// Windows: %APPDATA%/flavorscape
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, AppDirName), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", AppDirName), nil
	default:
		// macOS and Windows use os.UserConfigDir which returns
		// ~/Library/Application Support on macOS and %APPDATA% on Windows.
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, AppDirName), nil
	}
}

// ResolveConfigDir returns the configuration directory following the precedence
// chain: flag > FLAVORSCAPE_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ConfigFile returns the config file path inside configDir.
func ConfigFile(configDir string) string {
	return filepath.Join(configDir, ConfigFileName)
}

// ResolveLogFile returns the log file following the precedence chain:
// flag > config value > FLAVORSCAPE_LOG_FILE env. An empty result means no
// log file was requested. The special names "stdout" and "stderr" pass
// through unchanged.
func ResolveLogFile(flag, configValue string) (string, error) {
	for _, v := range []string{flag, configValue, os.Getenv(EnvLogFile)} {
		if v == "" {
			continue
		}
		if v == "stdout" || v == "stderr" {
			return v, nil
		}
		return filepath.Abs(v)
	}
	return "", nil
}
