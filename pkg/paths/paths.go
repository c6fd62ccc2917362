// Package paths provides the canonical-form and real-identity comparisons
// used when list operations match components by value rather than index.
//
// The canonical form of a component is its absolute, cleaned path with the
// directory part resolved through symbolic links; the trailing segment is
// left unresolved. This mirrors cd-then-append semantics: "what directory
// would the shell end up in, plus the entry's own name".
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/pathed/pkg/logging"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for pathed
	EnvConfigDir = "PATHED_CONFIG_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// ConfigFileName is the name of the user configuration file
const ConfigFileName = "config.toml"

// Canonicalize returns the canonical form of a component. Resolution
// failures (a nonexistent or unreadable directory in the prefix) degrade
// to the lexically normalized absolute path; no error escapes.
func Canonicalize(item string) string {
	logger := logging.GetLogger("paths")

	expanded := ExpandHome(item)

	abs, err := filepath.Abs(expanded)
	if err != nil {
		// Abs only fails when the cwd is gone; fall back to a lexical clean
		logger.Debug().Err(err).Str("item", item).Msg("Cannot make path absolute")
		return filepath.Clean(expanded)
	}
	lexical := filepath.Clean(abs)

	dir := filepath.Dir(lexical)
	base := filepath.Base(lexical)
	if dir == lexical {
		// Root has no directory part to resolve
		return lexical
	}

	resolvedDir, err := filepath.EvalSymlinks(dir)
	if err != nil {
		logger.Debug().Err(err).Str("dir", dir).Msg("Cannot resolve directory, using lexical form")
		return lexical
	}

	return filepath.Join(resolvedDir, base)
}

// CanonicalEqual reports whether two components name the same entry in
// canonical form.
func CanonicalEqual(a, b string) bool {
	return Canonicalize(a) == Canonicalize(b)
}

// SameFile reports whether two components name the same underlying
// filesystem object (same device and inode), resolving through symlinks.
// Components that cannot be stat'ed never compare equal.
func SameFile(a, b string) bool {
	fa, err := os.Stat(a)
	if err != nil {
		return false
	}
	fb, err := os.Stat(b)
	if err != nil {
		return false
	}
	return os.SameFile(fa, fb)
}

// ExpandHome expands a leading ~ to the user's home directory
func ExpandHome(path string) string {
	if path == "" {
		return path
	}

	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			homeDir = os.Getenv(EnvHome)
			if homeDir == "" {
				return path
			}
		}

		if len(path) == 1 {
			return homeDir
		}

		if path[1] == '/' || path[1] == filepath.Separator {
			return filepath.Join(homeDir, path[2:])
		}

		// ~something (not the current user's home)
		return path
	}

	return path
}

// ConfigDir returns the directory holding the user configuration file,
// honoring PATHED_CONFIG_DIR over the XDG default.
func ConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return ExpandHome(dir)
	}
	return filepath.Join(xdg.ConfigHome, "pathed")
}

// ConfigFilePath returns the full path to the user configuration file
func ConfigFilePath() string {
	return filepath.Join(ConfigDir(), ConfigFileName)
}
