// Package shell renders the boundary between pathed and the calling
// shell: export statements for the backing variable, and the integration
// snippet that wraps pathed in a shell function so those statements get
// eval'd in the caller's environment. A child process cannot modify its
// parent's environment; the wrapper is what makes edits stick.
package shell

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Dialect identifies the export statement syntax for a shell family.
type Dialect string

// Supported dialects. Zsh shares bash's export syntax but is kept
// distinct so snippet output can name the right rc file.
const (
	Bash Dialect = "bash"
	Zsh  Dialect = "zsh"
	Fish Dialect = "fish"
)

// ParseDialect maps a user-supplied shell name to a Dialect.
func ParseDialect(name string) (Dialect, error) {
	switch strings.ToLower(name) {
	case "bash", "sh":
		return Bash, nil
	case "zsh":
		return Zsh, nil
	case "fish":
		return Fish, nil
	default:
		return Bash, fmt.Errorf("unsupported shell: %s", name)
	}
}

// DetectDialect picks the dialect from an explicit configuration value,
// falling back to $SHELL, then to bash.
func DetectDialect(configured string) Dialect {
	if configured != "" {
		if d, err := ParseDialect(configured); err == nil {
			return d
		}
	}
	if envShell := os.Getenv("SHELL"); envShell != "" {
		if d, err := ParseDialect(filepath.Base(envShell)); err == nil {
			return d
		}
	}
	return Bash
}

// ExportStatement renders the statement that re-exports name=value in
// the given dialect. The result is meant to be eval'd, so value is
// quoted and escaped.
func ExportStatement(d Dialect, name, value string) string {
	if d == Fish {
		return fmt.Sprintf(`set -gx %s "%s"`, name, escapeDoubleQuoted(value))
	}
	return fmt.Sprintf(`export %s="%s"`, name, escapeDoubleQuoted(value))
}

// escapeDoubleQuoted escapes the characters that are special inside
// double quotes in both POSIX shells and fish.
func escapeDoubleQuoted(s string) string {
	r := strings.NewReplacer(
		`\`, `\\`,
		`"`, `\"`,
		`$`, `\$`,
		"`", "\\`",
	)
	return r.Replace(s)
}
