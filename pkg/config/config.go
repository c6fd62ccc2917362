// Package config loads pathed's configuration: the short-name alias table
// for variable names, the export shell dialect, and the component
// separator. Sources merge in order: embedded defaults, the user file
// under the XDG config dir, then PATHED_* environment variables.
package config

import (
	_ "embed"
	"errors"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	pathederrors "github.com/arthur-debert/pathed/pkg/errors"
	"github.com/arthur-debert/pathed/pkg/logging"
	"github.com/arthur-debert/pathed/pkg/paths"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// Config holds all user-tunable settings
type Config struct {
	// Shell selects the export statement dialect (bash, zsh, fish).
	// Empty means detect from $SHELL.
	Shell string `koanf:"shell" toml:"shell"`

	// Separator is the delimiter between components
	Separator string `koanf:"separator" toml:"separator"`

	// Aliases maps short names to canonical environment variable names
	Aliases map[string]string `koanf:"aliases" toml:"aliases"`
}

// Load builds the effective configuration from defaults, the user config
// file (if present), and PATHED_* environment variables.
func Load() (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, pathederrors.Wrap(err, pathederrors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. User config file, if it exists
	userConfigPath := paths.ConfigFilePath()
	if _, err := os.Stat(userConfigPath); err == nil {
		if err := k.Load(file.Provider(userConfigPath), toml.Parser()); err != nil {
			return nil, pathederrors.Wrapf(err, pathederrors.ErrConfigParse,
				"failed to load user config from %s", userConfigPath)
		}
		logger.Debug().Str("path", userConfigPath).Msg("User config loaded")
	}

	// 3. Environment overrides: PATHED_SHELL=fish -> shell, etc.
	err := k.Load(env.Provider("PATHED_", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "PATHED_")), "_", ".")
	}), nil)
	if err != nil {
		return nil, pathederrors.Wrap(err, pathederrors.ErrConfigLoad, "failed to load env vars")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, pathederrors.Wrap(err, pathederrors.ErrConfigParse, "failed to unmarshal configuration")
	}

	logger.Debug().
		Int("aliases", len(cfg.Aliases)).
		Str("shell", cfg.Shell).
		Str("separator", cfg.Separator).
		Msg("Configuration loaded")

	return &cfg, nil
}

// ResolveVariable maps a short name to its canonical environment variable
// name, falling back to the name itself when no alias matches.
func (c *Config) ResolveVariable(name string) string {
	if canonical, ok := c.Aliases[name]; ok {
		return canonical
	}
	return name
}
