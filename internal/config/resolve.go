package config

import (
	"log"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// Overrides carries the values supplied on the command line. An empty
// string means "not provided" and falls through to the next source; an
// explicit empty string cannot be forced through this path.
type Overrides struct {
	Subscription string
	Location     string
	EnvName      string
	Profile      string

	DryRun  bool
	WhatIf  bool
	Apply   bool
	Destroy bool

	// Set holds raw KEY=VALUE entries from repeated --set flags.
	Set []string
}

// Per-field environment variable names, matching the dotenv file contract.
const (
	envSubscriptionID = "AZURE_SUBSCRIPTION_ID"
	envLocation       = "AZURE_LOCATION"
	envEnvName        = "AZURE_ENV_NAME"
	envProfile        = "PROFILE"
)

// yamlSections is the typed view of the structured config file. Known
// sections are decoded through mapstructure; the resources block stays a
// raw map so passthrough keys round-trip untouched.
type yamlSections struct {
	Azure struct {
		SubscriptionID string `mapstructure:"subscription_id"`
		Location       string `mapstructure:"location"`
	} `mapstructure:"azure"`
	Environment struct {
		Name    string `mapstructure:"name"`
		Profile string `mapstructure:"profile"`
	} `mapstructure:"environment"`
	Resources  map[string]any `mapstructure:"resources"`
	Deployment struct {
		DryRun bool `mapstructure:"dry_run"`
		WhatIf bool `mapstructure:"what_if"`
	} `mapstructure:"deployment"`
}

// Resolve merges the four configuration layers into one Config.
//
// For every scalar field the first non-empty source wins, in order: CLI
// flag, environment variable, structured-file value, default. Action flags
// from the deployment section are OR-ed with the CLI flags; apply and
// destroy are CLI-only. The resources block is taken verbatim from the
// structured file, or from defs when the file has none.
//
// Resolve is a total function: it never fails, and identical inputs yield
// structurally equal configurations.
func Resolve(o Overrides, envPath, configPath string, defs Defaults) Config {
	envVars := LoadEnvFile(envPath)
	sections := decodeSections(LoadYAMLFile(configPath))

	cfg := Config{
		SubscriptionID: firstNonEmpty(o.Subscription, envVars[envSubscriptionID], sections.Azure.SubscriptionID),
		Location:       firstNonEmpty(o.Location, envVars[envLocation], sections.Azure.Location, defs.Location),
		EnvName:        firstNonEmpty(o.EnvName, envVars[envEnvName], sections.Environment.Name, defs.EnvName),
		Profile:        firstNonEmpty(o.Profile, envVars[envProfile], sections.Environment.Profile, defs.Profile),
		DryRun:         o.DryRun || sections.Deployment.DryRun,
		WhatIf:         o.WhatIf || sections.Deployment.WhatIf,
		Apply:          o.Apply,
		Destroy:        o.Destroy,
	}

	cfg.Resources = sections.Resources
	if len(cfg.Resources) == 0 {
		cfg.Resources = defs.Resources
	}

	for _, entry := range o.Set {
		key, value, found := strings.Cut(entry, "=")
		if !found {
			continue
		}
		cfg.ExtraParams.Set(key, value)
	}

	return cfg
}

// decodeSections decodes the known sections of the raw top-level mapping.
// A section that does not decode degrades to its zero value with a logged
// warning; resolution continues.
func decodeSections(raw map[string]any) yamlSections {
	var sections yamlSections
	if len(raw) == 0 {
		return sections
	}
	if err := mapstructure.Decode(raw, &sections); err != nil {
		log.Printf("Warning: malformed config section: %v", err)
		return yamlSections{}
	}
	return sections
}

// firstNonEmpty returns the first non-empty candidate.
func firstNonEmpty(candidates ...string) string {
	for _, c := range candidates {
		if c != "" {
			return c
		}
	}
	return ""
}
