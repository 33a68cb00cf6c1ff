// Package config implements configuration resolution for azorch.
//
// A single Config is resolved once per invocation by merging four layered
// sources under a fixed precedence: command-line flags, environment
// variables (live process environment plus a dotenv file), the structured
// YAML configuration file, and built-in defaults. Precedence is evaluated
// per field, so a flag for one setting never shadows the fallback chain of
// a sibling setting.
//
// Resolution is total: missing or unparseable sources degrade to empty
// contributions and never fail the run.
package config

// Config is the resolved, authoritative session state for one invocation.
// It is constructed exactly once by Resolve and not mutated afterwards.
type Config struct {
	// SubscriptionID is the target subscription. Empty means unset; there
	// is no default.
	SubscriptionID string

	// Location is the target Azure region.
	Location string

	// EnvName is the logical deployment environment (dev, staging, prod).
	EnvName string

	// Profile is the named configuration profile.
	Profile string

	// Resources holds the provisionable resource kinds keyed by name. The
	// values are kept verbatim as parsed from the structured config file so
	// passthrough keys survive; use ParseResourceSpec to interpret one.
	Resources map[string]any

	// Requested actions. Any subset may be true; the dispatcher applies a
	// fixed priority order when several are set.
	DryRun  bool
	WhatIf  bool
	Apply   bool
	Destroy bool

	// ExtraParams holds free-form --set overrides, insertion order
	// preserved.
	ExtraParams ExtraParams
}

// ExtraParams is an insertion-ordered string map. A duplicate key keeps its
// original position and takes the last written value.
type ExtraParams struct {
	keys   []string
	values map[string]string
}

// Set stores a key, overwriting any previous value.
func (p *ExtraParams) Set(key, value string) {
	if p.values == nil {
		p.values = make(map[string]string)
	}
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
}

// Get returns the value for key and whether it is present.
func (p *ExtraParams) Get(key string) (string, bool) {
	v, ok := p.values[key]
	return v, ok
}

// Keys returns the keys in insertion order.
func (p *ExtraParams) Keys() []string {
	out := make([]string, len(p.keys))
	copy(out, p.keys)
	return out
}

// Len returns the number of stored keys.
func (p *ExtraParams) Len() int {
	return len(p.keys)
}

// ResourceSpec is the interpreted view of one resources entry. Only Enabled
// and SKU are interpreted by the orchestrator; everything else is carried in
// Extra untouched.
type ResourceSpec struct {
	Enabled bool
	// SKU is passed through verbatim. nil means the resource entry carries no sku key.
	SKU   any
	Extra map[string]any
}

// ParseResourceSpec interprets a raw resources entry. Entries that are not
// mappings report ok=false and must be skipped by consumers, never treated
// as an error. A missing enabled key means enabled.
func ParseResourceSpec(v any) (ResourceSpec, bool) {
	m, ok := v.(map[string]any)
	if !ok {
		return ResourceSpec{}, false
	}
	spec := ResourceSpec{Enabled: true}
	for key, val := range m {
		switch key {
		case "enabled":
			if b, ok := val.(bool); ok {
				spec.Enabled = b
			}
		case "sku":
			spec.SKU = val
		default:
			if spec.Extra == nil {
				spec.Extra = make(map[string]any)
			}
			spec.Extra[key] = val
		}
	}
	return spec, true
}

// Defaults is the bottom layer of the resolution chain. It is passed into
// Resolve explicitly so resolution stays pure and testable.
type Defaults struct {
	Location  string
	EnvName   string
	Profile   string
	Resources map[string]any
}

// StandardDefaults returns the built-in defaults. The value is freshly
// allocated on every call so callers cannot alias the resource table.
func StandardDefaults() Defaults {
	return Defaults{
		Location: "eastus",
		EnvName:  "dev",
		Profile:  "default",
		Resources: map[string]any{
			"container_registry": map[string]any{"enabled": true},
			"storage_account":    map[string]any{"enabled": true},
			"ai_services":        map[string]any{"enabled": true},
			"search_service":     map[string]any{"enabled": true},
		},
	}
}
