package handlers

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/azorch/internal/config"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestInit(t *testing.T) {
	chdir(t, t.TempDir())
	var out bytes.Buffer

	err := Init(&out, "", false)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Wrote config.yaml")
	assert.Contains(t, out.String(), "Wrote .env.example")
	assert.Contains(t, out.String(), "Next steps:")

	// The scaffolded config must resolve to the built-in defaults.
	cfg := config.Resolve(config.Overrides{}, "unused.env", "config.yaml", config.StandardDefaults())
	assert.Equal(t, "eastus", cfg.Location)
	assert.Equal(t, "dev", cfg.EnvName)
	assert.Equal(t, "default", cfg.Profile)
	assert.Len(t, cfg.Resources, 4)
}

func TestInitRefusesOverwrite(t *testing.T) {
	chdir(t, t.TempDir())
	require.NoError(t, os.WriteFile("config.yaml", []byte("azure:\n  location: westus\n"), 0o644))
	var out bytes.Buffer

	err := Init(&out, "", false)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Skipping config.yaml")

	data, err := os.ReadFile("config.yaml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "westus", "existing file untouched")
}

func TestInitForce(t *testing.T) {
	chdir(t, t.TempDir())
	require.NoError(t, os.WriteFile("config.yaml", []byte("azure:\n  location: westus\n"), 0o644))
	var out bytes.Buffer

	err := Init(&out, "", true)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Wrote config.yaml")

	data, err := os.ReadFile("config.yaml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "eastus")
}

func TestInitCustomPath(t *testing.T) {
	chdir(t, t.TempDir())
	var out bytes.Buffer

	err := Init(&out, "custom.yaml", false)

	require.NoError(t, err)
	_, statErr := os.Stat("custom.yaml")
	assert.NoError(t, statErr)
}
