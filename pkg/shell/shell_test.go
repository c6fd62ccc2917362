// pkg/shell/shell_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Environment variables
// PURPOSE: Test dialect detection, export rendering, and snippets

package shell

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDialect(t *testing.T) {
	tests := []struct {
		in      string
		want    Dialect
		wantErr bool
	}{
		{"bash", Bash, false},
		{"sh", Bash, false},
		{"zsh", Zsh, false},
		{"fish", Fish, false},
		{"FISH", Fish, false},
		{"tcsh", Bash, true},
		{"", Bash, true},
	}

	for _, tt := range tests {
		got, err := ParseDialect(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestDetectDialect(t *testing.T) {
	t.Setenv("SHELL", "/usr/bin/zsh")

	// Explicit configuration wins
	assert.Equal(t, Fish, DetectDialect("fish"))
	// Fall back to $SHELL
	assert.Equal(t, Zsh, DetectDialect(""))
	// Unknown configured value also falls through to $SHELL
	assert.Equal(t, Zsh, DetectDialect("powershell"))

	t.Setenv("SHELL", "")
	assert.Equal(t, Bash, DetectDialect(""))
}

func TestExportStatement(t *testing.T) {
	tests := []struct {
		name    string
		dialect Dialect
		varName string
		value   string
		want    string
	}{
		{
			name:    "bash export",
			dialect: Bash,
			varName: "PATH",
			value:   "/usr/bin:/bin",
			want:    `export PATH="/usr/bin:/bin"`,
		},
		{
			name:    "zsh uses export too",
			dialect: Zsh,
			varName: "MANPATH",
			value:   "/usr/share/man",
			want:    `export MANPATH="/usr/share/man"`,
		},
		{
			name:    "fish set -gx",
			dialect: Fish,
			varName: "PATH",
			value:   "/usr/bin:/bin",
			want:    `set -gx PATH "/usr/bin:/bin"`,
		},
		{
			name:    "empty value",
			dialect: Bash,
			varName: "PATH",
			value:   "",
			want:    `export PATH=""`,
		},
		{
			name:    "dollar and quote escaped",
			dialect: Bash,
			varName: "PATH",
			value:   `/odd"dir:/has$dollar`,
			want:    `export PATH="/odd\"dir:/has\$dollar"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExportStatement(tt.dialect, tt.varName, tt.value))
		})
	}
}

func TestIntegrationSnippet(t *testing.T) {
	bash := IntegrationSnippet(Bash)
	assert.Contains(t, bash, "pathed() {")
	assert.Contains(t, bash, `eval "$out"`)
	assert.Equal(t, bash, IntegrationSnippet(Zsh))

	fish := IntegrationSnippet(Fish)
	assert.Contains(t, fish, "function pathed")
	assert.Contains(t, fish, "set -gx")
	assert.False(t, strings.Contains(fish, "export "))
}
