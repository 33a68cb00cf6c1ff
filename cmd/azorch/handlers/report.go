package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/imamik/azorch/internal/bicep"
	"github.com/imamik/azorch/internal/config"
	"github.com/imamik/azorch/internal/params"
	"github.com/imamik/azorch/internal/toolcheck"
)

var (
	reportColorGreen = lipgloss.Color("#22c55e")
	reportColorRed   = lipgloss.Color("#ef4444")
	reportColorBlue  = lipgloss.Color("#3b82f6")
	reportColorDim   = lipgloss.Color("#6b7280")
	reportColorWhite = lipgloss.Color("#f9fafb")
)

var (
	reportTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(reportColorWhite)

	reportSectionStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(reportColorBlue)

	reportDimStyle = lipgloss.NewStyle().
			Foreground(reportColorDim)

	reportGreenStyle = lipgloss.NewStyle().
				Foreground(reportColorGreen)

	reportRedStyle = lipgloss.NewStyle().
			Foreground(reportColorRed)
)

// renderer applies lipgloss styles when writing to a terminal and passes
// text through untouched otherwise, so piped output stays plain.
type renderer struct {
	color bool
}

func newRenderer(w io.Writer) renderer {
	f, ok := w.(*os.File)
	return renderer{color: ok && isatty.IsTerminal(f.Fd())}
}

func (r renderer) title(s string) string {
	if r.color {
		return reportTitleStyle.Render(s)
	}
	return s
}

func (r renderer) section(s string) string {
	if r.color {
		return reportSectionStyle.Render(s)
	}
	return s
}

func (r renderer) dim(s string) string {
	if r.color {
		return reportDimStyle.Render(s)
	}
	return s
}

func (r renderer) good(s string) string {
	if r.color {
		return reportGreenStyle.Render(s)
	}
	return s
}

func (r renderer) bad(s string) string {
	if r.color {
		return reportRedStyle.Render(s)
	}
	return s
}

// printConfig writes the resolved-configuration report: the scalar
// settings, the resource toggles, any extra parameters, and the derived
// provisioning parameter set as JSON.
func printConfig(w io.Writer, cfg config.Config) {
	r := newRenderer(w)

	fmt.Fprintln(w)
	fmt.Fprintln(w, r.dim(strings.Repeat("=", 60)))
	fmt.Fprintln(w, r.title("RESOLVED CONFIGURATION"))
	fmt.Fprintln(w, r.dim(strings.Repeat("=", 60)))

	subscription := cfg.SubscriptionID
	if subscription == "" {
		subscription = "(not set)"
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, r.section("Azure Settings:"))
	fmt.Fprintf(w, "  Subscription ID: %s\n", subscription)
	fmt.Fprintf(w, "  Location:        %s\n", cfg.Location)

	fmt.Fprintln(w)
	fmt.Fprintln(w, r.section("Environment Settings:"))
	fmt.Fprintf(w, "  Environment:     %s\n", cfg.EnvName)
	fmt.Fprintf(w, "  Profile:         %s\n", cfg.Profile)

	fmt.Fprintln(w)
	fmt.Fprintln(w, r.section("Deployment Settings:"))
	fmt.Fprintf(w, "  Dry Run:         %v\n", cfg.DryRun)
	fmt.Fprintf(w, "  What-If:         %v\n", cfg.WhatIf)
	fmt.Fprintf(w, "  Apply:           %v\n", cfg.Apply)
	fmt.Fprintf(w, "  Destroy:         %v\n", cfg.Destroy)

	fmt.Fprintln(w)
	fmt.Fprintln(w, r.section("Resources:"))
	for _, name := range sortedKeys(cfg.Resources) {
		spec, ok := config.ParseResourceSpec(cfg.Resources[name])
		if !ok {
			continue
		}
		state := r.good("enabled")
		if !spec.Enabled {
			state = r.bad("disabled")
		}
		fmt.Fprintf(w, "  %-20s %s\n", name, state)
	}

	if cfg.ExtraParams.Len() > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, r.section("Extra Parameters:"))
		for _, key := range cfg.ExtraParams.Keys() {
			value, _ := cfg.ExtraParams.Get(key)
			fmt.Fprintf(w, "  %s: %s\n", key, value)
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, r.section("Infrastructure Parameters:"))
	encoded, err := json.MarshalIndent(params.Build(cfg), "", "  ")
	if err == nil {
		fmt.Fprintln(w, string(encoded))
	}

	fmt.Fprintln(w, r.dim(strings.Repeat("=", 60)))
	fmt.Fprintln(w)
}

// printToolReport writes the availability table for the probed tools.
func printToolReport(w io.Writer, results *toolcheck.Results) {
	r := newRenderer(w)

	fmt.Fprintln(w, r.dim(strings.Repeat("=", 60)))
	fmt.Fprintln(w, r.title("TOOL VALIDATION"))
	fmt.Fprintln(w, r.dim(strings.Repeat("=", 60)))
	fmt.Fprintln(w)

	for _, res := range results.Results {
		status := r.good("✓")
		if !res.Available {
			status = r.bad("✗")
		}
		marker := "[OPTIONAL]"
		if res.Tool.Required {
			marker = "[REQUIRED]"
		}
		version := ""
		if res.Version != "" {
			version = " - " + res.Version
		}
		fmt.Fprintf(w, "%s %-15s %-12s%s\n", status, res.Tool.Name, marker, version)
	}

	fmt.Fprintln(w)
	if !results.AllRequiredPresent() {
		fmt.Fprintln(w, r.bad("Warning: some required tools are not available!"))
		fmt.Fprintln(w)
	}
}

// printBicepReport writes the per-file validation outcomes.
func printBicepReport(w io.Writer, report *bicep.Report) {
	r := newRenderer(w)

	fmt.Fprintln(w, r.dim(strings.Repeat("=", 60)))
	fmt.Fprintln(w, r.title("BICEP VALIDATION"))
	fmt.Fprintln(w, r.dim(strings.Repeat("=", 60)))
	fmt.Fprintln(w)

	switch {
	case !report.DirExists:
		fmt.Fprintf(w, "Warning: %s directory not found\n", report.Dir)
	case len(report.Files) == 0:
		fmt.Fprintf(w, "Warning: no Bicep files found in %s directory\n", report.Dir)
	default:
		for _, file := range report.Files {
			if file.Valid {
				fmt.Fprintf(w, "%s Bicep file is valid: %s\n", r.good("✓"), file.Path)
				continue
			}
			fmt.Fprintf(w, "%s Bicep validation failed: %s\n", r.bad("✗"), file.Path)
			if file.Detail != "" {
				fmt.Fprintf(w, "  %s\n", r.dim(file.Detail))
			}
		}
	}
	fmt.Fprintln(w)
}

// printAzdEnv writes the values currently stored in the azd environment,
// when azd is available and the environment holds any.
func printAzdEnv(w io.Writer, envName string, values map[string]string) {
	if len(values) == 0 {
		return
	}
	r := newRenderer(w)

	fmt.Fprintln(w, r.section(fmt.Sprintf("Azd Environment (%s):", envName)))
	for _, key := range sortedKeys(values) {
		fmt.Fprintf(w, "  %s=%s\n", key, values[key])
	}
	fmt.Fprintln(w)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
