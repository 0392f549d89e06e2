package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultPath)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_When_FileMissing_ReturnsDefaults(t *testing.T) {
	t.Parallel()

	f, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Nil(t, f.Enabled)
	assert.Empty(t, f.Theme)
	assert.False(t, f.NoColor)
}

func TestLoad_When_FileValid(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "enabled: false\ntheme: mono\nno_color: true\n")
	f, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, f.Enabled)
	assert.False(t, *f.Enabled)
	assert.Equal(t, "mono", f.Theme)
	assert.True(t, f.NoColor)
}

func TestLoad_When_FileMalformed_ReturnsError(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "enabled: [broken\n")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestResolve_Defaults(t *testing.T) {
	s := Resolve(&File{}, Flags{})
	assert.True(t, s.Enabled)
	assert.Equal(t, "default", s.Theme)
}

func TestResolve_When_FlagOverridesFile(t *testing.T) {
	enabled := true
	f := &File{Enabled: &enabled, Theme: "default"}

	s := Resolve(f, Flags{Raw: true, RawSet: true, Theme: "mono", ThemeSet: true})
	assert.False(t, s.Enabled)
	assert.Equal(t, "mono", s.Theme)
}

func TestResolve_When_FileDisables(t *testing.T) {
	disabled := false
	s := Resolve(&File{Enabled: &disabled}, Flags{})
	assert.False(t, s.Enabled)
}

func TestResolve_When_NoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	s := Resolve(&File{}, Flags{})
	assert.True(t, s.NoColor)
}

func TestResolve_When_ThemeEnv(t *testing.T) {
	t.Setenv("MAKEFMT_THEME", "mono")

	s := Resolve(&File{Theme: "default"}, Flags{})
	assert.Equal(t, "mono", s.Theme)

	// CLI still wins over the environment.
	s = Resolve(&File{}, Flags{Theme: "default", ThemeSet: true})
	assert.Equal(t, "default", s.Theme)
}
