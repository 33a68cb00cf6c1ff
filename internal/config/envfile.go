package config

import (
	"os"
	"strings"
)

// LoadEnvFile reads KEY=VALUE pairs from a dotenv-style file. Blank lines
// and full-line # comments are skipped, keys and values are trimmed, and
// the first = is the delimiter so values may themselves contain =.
//
// Live process environment variables take precedence over the literal file
// value for the same key. A missing file yields an empty map, never an
// error.
func LoadEnvFile(path string) map[string]string {
	vars := make(map[string]string)

	data, err := os.ReadFile(path)
	if err != nil {
		return vars
	}

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if live, ok := os.LookupEnv(key); ok {
			value = live
		}
		vars[key] = value
	}

	return vars
}

// DefaultEnvFile returns the dotenv path to read: .env when present,
// otherwise the checked-in .env.example.
func DefaultEnvFile() string {
	if _, err := os.Stat(".env"); err == nil {
		return ".env"
	}
	return ".env.example"
}
