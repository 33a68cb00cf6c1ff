package params

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/azorch/internal/config"
)

func TestBuildBaseParameters(t *testing.T) {
	t.Parallel()

	cfg := config.Config{Location: "eastus", EnvName: "dev"}

	out := Build(cfg)

	assert.Equal(t, "eastus", out["location"])
	assert.Equal(t, "dev", out["environmentName"])
	_, ok := out["subscriptionId"]
	assert.False(t, ok, "subscriptionId is omitted when unset")
}

func TestBuildSubscription(t *testing.T) {
	t.Parallel()

	cfg := config.Config{
		SubscriptionID: "11111111-2222-3333-4444-555555555555",
		Location:       "eastus",
		EnvName:        "dev",
	}

	out := Build(cfg)

	assert.Equal(t, "11111111-2222-3333-4444-555555555555", out["subscriptionId"])
}

func TestBuildResourceSkus(t *testing.T) {
	t.Parallel()

	cfg := config.Config{
		Location: "eastus",
		EnvName:  "dev",
		Resources: map[string]any{
			"sales_catalog":      map[string]any{"enabled": true, "sku": "Standard_S1"},
			"container_registry": map[string]any{"enabled": false, "sku": "Premium"},
			"storage_account":    map[string]any{"enabled": true},
			"broken_entry":       "not-a-mapping",
		},
	}

	out := Build(cfg)

	assert.Equal(t, "Standard_S1", out["salesCatalogSku"])

	_, ok := out["containerRegistrySku"]
	assert.False(t, ok, "disabled resources contribute nothing")

	_, ok = out["storageAccountSku"]
	assert.False(t, ok, "resources without a sku contribute nothing")

	require.Len(t, out, 3, "malformed entries are skipped, never fatal")
}

func TestBuildExtraParamsWin(t *testing.T) {
	t.Parallel()

	cfg := config.Config{Location: "eastus", EnvName: "dev"}
	cfg.ExtraParams.Set("location", "override-region")
	cfg.ExtraParams.Set("capacity", "10")

	out := Build(cfg)

	assert.Equal(t, "override-region", out["location"], "extras always win")
	assert.Equal(t, "10", out["capacity"])
}

func TestCamelCase(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"container_registry", "containerRegistry"},
		{"storage_account", "storageAccount"},
		{"ai_services", "aiServices"},
		{"search_service", "searchService"},
		{"sales_catalog", "salesCatalog"},
		{"single", "single"},
		{"UPPER_CASE", "upperCase"},
		{"double__underscore", "doubleUnderscore"},
		{"_leading", "leading"},
		{"", ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, CamelCase(tt.in))
		})
	}
}
