// Package params derives the flat provisioning parameter set from a
// resolved configuration. The output is what a provisioning backend (azd,
// ARM/Bicep parameter files) consumes.
package params

import (
	"strings"

	"github.com/imamik/azorch/internal/config"
)

// Build derives provisioning parameters from cfg.
//
// location and environmentName are always emitted; subscriptionId only when
// set. Every enabled resource whose spec carries a sku key contributes a
// <camelCaseName>Sku parameter with the sku value verbatim. Malformed or
// disabled resource entries contribute nothing. Extra parameters are merged
// last and overwrite anything already present.
func Build(cfg config.Config) map[string]any {
	out := map[string]any{
		"location":        cfg.Location,
		"environmentName": cfg.EnvName,
	}
	if cfg.SubscriptionID != "" {
		out["subscriptionId"] = cfg.SubscriptionID
	}

	for name, raw := range cfg.Resources {
		spec, ok := config.ParseResourceSpec(raw)
		if !ok || !spec.Enabled || spec.SKU == nil {
			continue
		}
		out[CamelCase(name)+"Sku"] = spec.SKU
	}

	for _, key := range cfg.ExtraParams.Keys() {
		value, _ := cfg.ExtraParams.Get(key)
		out[key] = value
	}

	return out
}

// CamelCase converts a snake_case resource name to a camelCase parameter
// stem: container_registry becomes containerRegistry. Each word keeps only
// its first letter upper, then the first letter of the joined result is
// lowered.
func CamelCase(name string) string {
	var b strings.Builder
	for _, word := range strings.Split(name, "_") {
		if word == "" {
			continue
		}
		b.WriteString(strings.ToUpper(word[:1]))
		b.WriteString(strings.ToLower(word[1:]))
	}
	joined := b.String()
	if joined == "" {
		return ""
	}
	return strings.ToLower(joined[:1]) + joined[1:]
}
