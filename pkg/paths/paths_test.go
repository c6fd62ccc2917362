// pkg/paths/paths_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Temp filesystem, symlinks
// PURPOSE: Test canonicalization, symlink resolution, and real identity

package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resolved maps a temp dir through any symlinks the OS itself put in the
// way (macOS /var -> /private/var), so expectations stay stable.
func resolved(t *testing.T, dir string) string {
	t.Helper()
	r, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	return r
}

func TestCanonicalizeAbsolute(t *testing.T) {
	dir := resolved(t, t.TempDir())
	sub := filepath.Join(dir, "bin")
	require.NoError(t, os.Mkdir(sub, 0755))

	assert.Equal(t, sub, Canonicalize(sub))
	assert.Equal(t, sub, Canonicalize(sub+"/"))
	assert.Equal(t, sub, Canonicalize(filepath.Join(dir, ".", "bin")))
	assert.Equal(t, sub, Canonicalize(filepath.Join(dir, "other", "..", "bin")))
}

func TestCanonicalizeRelative(t *testing.T) {
	dir := resolved(t, t.TempDir())
	require.NoError(t, os.Mkdir(filepath.Join(dir, "bin"), 0755))

	orig, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(orig) })

	assert.Equal(t, filepath.Join(dir, "bin"), Canonicalize("bin"))
	assert.Equal(t, filepath.Join(dir, "bin"), Canonicalize("./bin"))
}

func TestCanonicalizeResolvesDirectoryPart(t *testing.T) {
	dir := resolved(t, t.TempDir())
	real := filepath.Join(dir, "real")
	require.NoError(t, os.Mkdir(real, 0755))
	require.NoError(t, os.Mkdir(filepath.Join(real, "bin"), 0755))
	link := filepath.Join(dir, "link")
	require.NoError(t, os.Symlink(real, link))

	// Symlink in the directory part resolves
	assert.Equal(t, filepath.Join(real, "bin"), Canonicalize(filepath.Join(link, "bin")))
}

func TestCanonicalizeKeepsTrailingSegment(t *testing.T) {
	dir := resolved(t, t.TempDir())
	real := filepath.Join(dir, "real")
	require.NoError(t, os.Mkdir(real, 0755))
	link := filepath.Join(dir, "link")
	require.NoError(t, os.Symlink(real, link))

	// The trailing segment itself is a symlink: it stays unresolved
	assert.Equal(t, link, Canonicalize(link))
}

func TestCanonicalizeFallback(t *testing.T) {
	// Nonexistent prefix: degrade to the lexical absolute form
	missing := "/no/such/prefix/anywhere/bin"
	assert.Equal(t, missing, Canonicalize(missing))
}

func TestCanonicalizeRoot(t *testing.T) {
	assert.Equal(t, "/", Canonicalize("/"))
}

func TestCanonicalEqual(t *testing.T) {
	dir := resolved(t, t.TempDir())
	real := filepath.Join(dir, "real")
	require.NoError(t, os.Mkdir(real, 0755))
	require.NoError(t, os.Mkdir(filepath.Join(real, "bin"), 0755))
	link := filepath.Join(dir, "link")
	require.NoError(t, os.Symlink(real, link))

	assert.True(t, CanonicalEqual(filepath.Join(real, "bin"), filepath.Join(link, "bin")))
	assert.True(t, CanonicalEqual(real+"/bin", real+"/./bin/"))
	assert.False(t, CanonicalEqual(real, filepath.Join(real, "bin")))
}

func TestSameFile(t *testing.T) {
	dir := resolved(t, t.TempDir())
	real := filepath.Join(dir, "real")
	require.NoError(t, os.Mkdir(real, 0755))
	link := filepath.Join(dir, "link")
	require.NoError(t, os.Symlink(real, link))
	other := filepath.Join(dir, "other")
	require.NoError(t, os.Mkdir(other, 0755))

	assert.True(t, SameFile(real, link))
	assert.True(t, SameFile(real, real))
	assert.False(t, SameFile(real, other))
	assert.False(t, SameFile(real, filepath.Join(dir, "missing")))
	assert.False(t, SameFile(filepath.Join(dir, "missing"), filepath.Join(dir, "missing")))
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		in   string
		want string
	}{
		{"~", home},
		{"~/bin", filepath.Join(home, "bin")},
		{"~other/bin", "~other/bin"},
		{"/usr/bin", "/usr/bin"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ExpandHome(tt.in), "input %q", tt.in)
	}
}

func TestConfigDir(t *testing.T) {
	t.Setenv(EnvConfigDir, "/custom/pathed")
	assert.Equal(t, "/custom/pathed", ConfigDir())
	assert.Equal(t, "/custom/pathed/config.toml", ConfigFilePath())

	t.Setenv(EnvConfigDir, "")
	assert.Contains(t, ConfigDir(), "pathed")
}
