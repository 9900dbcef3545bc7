package kernel

import (
	"errors"
	"os"
	"path/filepath"
)

// EnvPluginDir is the environment variable naming the plugin directory when
// no explicit flag is given.
const EnvPluginDir = "SKANUJKOD_PLUGIN_DIR"

// Config holds everything a Kernel needs to construct itself.
type Config struct {
	PluginDir string

	LogFormat       string
	LogLevel        string
	HealthcheckPort int
}

// NewConfig validates cfg and returns it. An empty PluginDir is the one
// hard error; the logging fields fall back to defaults downstream.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.PluginDir == "" {
		return nil, errors.New("PluginDir is a required configuration field and cannot be empty")
	}
	return &cfg, nil
}

// ResolvePluginDir picks the plugin directory: an explicit flag value wins,
// then the environment variable, then an OS-specific default under the
// user's home.
func ResolvePluginDir(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv(EnvPluginDir); env != "" {
		return env
	}
	return DefaultPluginDir()
}

// DefaultPluginDir returns the fallback plugin directory under the user's
// home. If the home directory cannot be determined, the current directory's
// "plugins" subdirectory is used so loading still has a concrete path to
// report.
func DefaultPluginDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "plugins"
	}
	return filepath.Join(home, ".skanujkod", "plugins")
}
