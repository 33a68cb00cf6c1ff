package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadYAMLFile(t *testing.T) {
	t.Parallel()

	path := writeTempFile(t, "config.yaml", `
azure:
  location: northeurope
resources:
  storage_account:
    enabled: false
    sku: Standard_LRS
`)

	raw := LoadYAMLFile(path)

	azure, ok := raw["azure"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "northeurope", azure["location"])

	resources, ok := raw["resources"].(map[string]any)
	require.True(t, ok)
	storage, ok := resources["storage_account"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, false, storage["enabled"])
	assert.Equal(t, "Standard_LRS", storage["sku"])
}

func TestLoadYAMLFileMissing(t *testing.T) {
	t.Parallel()

	raw := LoadYAMLFile(filepath.Join(t.TempDir(), "missing.yaml"))

	require.NotNil(t, raw)
	assert.Empty(t, raw)
}

func TestLoadYAMLFileUnparseable(t *testing.T) {
	t.Parallel()

	path := writeTempFile(t, "config.yaml", "azure: [unclosed\n")

	raw := LoadYAMLFile(path)

	require.NotNil(t, raw)
	assert.Empty(t, raw, "unparseable files degrade to an empty contribution")
}

func TestLoadYAMLFileEmpty(t *testing.T) {
	t.Parallel()

	path := writeTempFile(t, "config.yaml", "")

	raw := LoadYAMLFile(path)

	require.NotNil(t, raw)
	assert.Empty(t, raw)
}
