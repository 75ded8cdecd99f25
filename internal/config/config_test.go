package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OpenTraceLab/OpenTraceSchematic/pkg/render"
)

func TestLoadMissingReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, 8, cfg.Grid)
	assert.Equal(t, 2.0, cfg.Scale)
	assert.Equal(t, render.ThemeLight, cfg.ColorTheme())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.json")
	want := &Config{Grid: 4, Scale: 3, Width: 1024, Height: 768, Theme: "dark"}
	require.NoError(t, Save(path, want))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, render.ThemeDark, got.ColorTheme())
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"theme":"dark"}`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "dark", cfg.Theme)
	assert.Equal(t, 800, cfg.Width)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"grid":`), 0644))
	_, err := Load(bad)
	assert.ErrorContains(t, err, "config: ")

	theme := filepath.Join(dir, "theme.json")
	require.NoError(t, os.WriteFile(theme, []byte(`{"theme":"neon"}`), 0644))
	_, err = Load(theme)
	assert.ErrorContains(t, err, `unknown theme "neon"`)
}

func TestValidateClamps(t *testing.T) {
	cfg := &Config{Grid: 0, Scale: 1000, Width: 1, Height: -5, Theme: "LIGHT"}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 8, cfg.Grid)
	assert.Equal(t, 32.0, cfg.Scale)
	assert.Equal(t, 16, cfg.Width)
	assert.Equal(t, 16, cfg.Height)

	cfg = &Config{Scale: -1, Theme: "dark"}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 2.0, cfg.Scale)
}

func TestPathFromEnv(t *testing.T) {
	t.Setenv(EnvPath, "/tmp/ots.json")
	p, err := Path()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/ots.json", p)

	t.Setenv(EnvPath, "")
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	t.Setenv("HOME", "/tmp/home")
	p, err = Path()
	require.NoError(t, err)
	assert.Equal(t, "config.json", filepath.Base(p))
	assert.Equal(t, "opentraceschematic", filepath.Base(filepath.Dir(p)))
}
