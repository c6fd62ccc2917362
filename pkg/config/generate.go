package config

import (
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	pathederrors "github.com/arthur-debert/pathed/pkg/errors"
)

const generatedHeader = `# pathed configuration. Place this file at $XDG_CONFIG_HOME/pathed/config.toml
# (or $PATHED_CONFIG_DIR/config.toml). Uncomment values to override.

`

// GenerateConfigContent renders the effective configuration as a
// commented-out TOML template suitable for seeding a user config file.
func GenerateConfigContent(cfg *Config) (string, error) {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return "", pathederrors.Wrap(err, pathederrors.ErrInternal, "failed to marshal configuration")
	}
	return generatedHeader + commentOutConfigValues(string(data)), nil
}

// commentOutConfigValues comments out every assignment line, keeping blank
// lines, existing comments, and section headers as-is
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	var result []string

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if trimmed == "" {
			result = append(result, line)
			continue
		}

		if strings.HasPrefix(trimmed, "#") {
			result = append(result, line)
			continue
		}

		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			result = append(result, line)
			continue
		}

		result = append(result, "# "+line)
	}

	return strings.Join(result, "\n")
}
