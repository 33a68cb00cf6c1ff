// Package toolcheck probes the external CLI tooling a provisioning session
// depends on. Availability and version are observed through each tool's
// fixed version-check command; nothing here influences configuration
// resolution.
package toolcheck

import (
	"errors"
	"os/exec"
	"strings"
)

// Tool describes one external binary and the fixed command used to probe
// it. The probe is a lookup-table entry rather than a conditional so new
// tools slot in without touching control flow.
type Tool struct {
	// Name is the tool as reported to the user.
	Name string

	// Required indicates if this tool is mandatory for provisioning.
	Required bool

	// Description explains what the tool is used for.
	Description string

	// Probe is the version-check invocation. It does not have to start
	// with Name: bicep ships as an az subcommand, not a standalone binary.
	Probe []string
}

// RequiredTools returns the tools a provisioning run cannot do without.
func RequiredTools() []Tool {
	return []Tool{
		{
			Name:        "az",
			Required:    true,
			Description: "Azure CLI, used for resource management and Bicep builds",
			Probe:       []string{"az", "--version"},
		},
		{
			Name:        "azd",
			Required:    true,
			Description: "Azure Developer CLI, drives environment and deployment flows",
			Probe:       []string{"azd", "--version"},
		},
		{
			Name:        "bicep",
			Required:    true,
			Description: "Bicep compiler, bundled with the Azure CLI",
			Probe:       []string{"az", "bicep", "version"},
		},
	}
}

// OptionalTools returns tools that are useful but not required.
func OptionalTools() []Tool {
	return []Tool{
		{
			Name:        "docker",
			Required:    false,
			Description: "Used for building and pushing container images",
			Probe:       []string{"docker", "--version"},
		},
		{
			Name:        "git",
			Required:    false,
			Description: "Used for source versioning metadata",
			Probe:       []string{"git", "--version"},
		},
	}
}

// AllTools returns required and optional tools, required first.
func AllTools() []Tool {
	required := RequiredTools()
	optional := OptionalTools()
	all := make([]Tool, 0, len(required)+len(optional))
	all = append(all, required...)
	all = append(all, optional...)
	return all
}

// Result contains the probe outcome for a single tool.
type Result struct {
	Tool      Tool
	Available bool
	// Version is the first line of the probe's standard output, empty when
	// the tool is unavailable or printed nothing.
	Version string
}

// Results contains the probe outcomes for a set of tools.
type Results struct {
	Results []Result
}

// Available maps tool name to availability.
func (r *Results) Available() map[string]bool {
	out := make(map[string]bool, len(r.Results))
	for _, res := range r.Results {
		out[res.Tool.Name] = res.Available
	}
	return out
}

// MissingRequired returns the required tools that were not found.
func (r *Results) MissingRequired() []Tool {
	var missing []Tool
	for _, res := range r.Results {
		if res.Tool.Required && !res.Available {
			missing = append(missing, res.Tool)
		}
	}
	return missing
}

// AllRequiredPresent reports whether every required tool responded.
func (r *Results) AllRequiredPresent() bool {
	return len(r.MissingRequired()) == 0
}

// runProbe executes a probe command and returns its standard output and
// exit status. A binary missing from PATH is reported as exit 127, never as
// an error. Package-level variable so tests can inject a fake runner.
var runProbe = func(name string, args ...string) (string, int) {
	// #nosec G204 - probes come from the fixed tool table, not user input
	out, err := exec.Command(name, args...).Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return string(out), exitErr.ExitCode()
		}
		return "", 127
	}
	return string(out), 0
}

// Check probes the given tools. It never returns an error: a failed or
// impossible probe simply marks the tool unavailable.
func Check(tools []Tool) *Results {
	results := &Results{}
	for _, tool := range tools {
		out, code := runProbe(tool.Probe[0], tool.Probe[1:]...)
		result := Result{Tool: tool, Available: code == 0}
		if result.Available {
			result.Version = firstLine(out)
		}
		results.Results = append(results.Results, result)
	}
	return results
}

// CheckNames probes tools by name and maps each to its availability. Names
// not in the tool table are probed with a plain --version call.
func CheckNames(names []string) map[string]bool {
	available := make(map[string]bool, len(names))
	for _, name := range names {
		probe := probeFor(name)
		_, code := runProbe(probe[0], probe[1:]...)
		available[name] = code == 0
	}
	return available
}

// Version returns the first output line of the tool's version probe, or ""
// when the tool is unavailable or silent.
func Version(name string) string {
	probe := probeFor(name)
	out, code := runProbe(probe[0], probe[1:]...)
	if code != 0 {
		return ""
	}
	return firstLine(out)
}

// probeFor resolves the fixed probe for a tool name, falling back to
// `<name> --version` for names outside the table.
func probeFor(name string) []string {
	for _, tool := range AllTools() {
		if tool.Name == name {
			return tool.Probe
		}
	}
	return []string{name, "--version"}
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	line, _, _ := strings.Cut(s, "\n")
	return strings.TrimSpace(line)
}
