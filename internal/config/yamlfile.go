package config

import (
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the structured configuration file read when no path
// is given on the command line.
const DefaultConfigFile = "config.yaml"

// LoadYAMLFile reads the structured configuration file and returns its
// top-level mapping. A missing file yields an empty mapping; a file that
// fails to parse yields an empty mapping plus a logged warning. Neither
// case is an error.
func LoadYAMLFile(path string) map[string]any {
	// #nosec G304
	data, err := os.ReadFile(path)
	if err != nil {
		return map[string]any{}
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		log.Printf("Warning: skipping unparseable config %s: %v", path, err)
		return map[string]any{}
	}
	if raw == nil {
		raw = map[string]any{}
	}
	return raw
}
