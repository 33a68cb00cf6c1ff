package handlers

import (
	"fmt"
	"io"
	"os"
)

// starterConfig is the scaffolded structured configuration. It mirrors the
// built-in defaults so a freshly initialized project resolves identically
// with or without the file.
const starterConfig = `azure:
  # subscription_id: 00000000-0000-0000-0000-000000000000
  location: eastus

environment:
  name: dev
  profile: default

resources:
  container_registry:
    enabled: true
  storage_account:
    enabled: true
  ai_services:
    enabled: true
  search_service:
    enabled: true

deployment:
  dry_run: false
  what_if: false
`

// starterEnvFile is the scaffolded dotenv example. Live process environment
// variables override any value declared here.
const starterEnvFile = `# Azure session settings. Live environment variables win over this file.
AZURE_SUBSCRIPTION_ID=
AZURE_LOCATION=eastus
AZURE_ENV_NAME=dev
PROFILE=default
`

// Factory function variables for init - can be replaced in tests.
var (
	// fileExists checks if a file exists.
	fileExists = func(path string) bool {
		_, err := os.Stat(path)
		return err == nil
	}

	// writeFile writes a scaffolded file to disk.
	writeFile = os.WriteFile
)

// Init scaffolds a starter config.yaml and .env.example in the working
// directory. Existing files are left alone unless force is set.
func Init(w io.Writer, configPath string, force bool) error {
	if configPath == "" {
		configPath = "config.yaml"
	}

	wrote := 0
	for _, target := range []struct {
		path, content string
	}{
		{configPath, starterConfig},
		{".env.example", starterEnvFile},
	} {
		if fileExists(target.path) && !force {
			fmt.Fprintf(w, "Skipping %s: already exists (use --force to overwrite)\n", target.path)
			continue
		}
		if err := writeFile(target.path, []byte(target.content), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", target.path, err)
		}
		fmt.Fprintf(w, "Wrote %s\n", target.path)
		wrote++
	}

	if wrote > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Next steps:")
		fmt.Fprintln(w, "  azorch --dry-run     # validate tooling and infrastructure files")
		fmt.Fprintln(w, "  azorch --what-if     # preview changes")
	}
	return nil
}
