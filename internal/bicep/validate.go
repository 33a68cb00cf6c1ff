// Package bicep validates infrastructure definition files by delegating to
// the bicep compiler bundled with the Azure CLI. Validation is advisory:
// every failure is captured in the report, nothing aborts the run.
package bicep

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
)

// DefaultDir is the directory scanned for infrastructure definitions.
const DefaultDir = "infra"

// FileResult is the validation outcome for a single file.
type FileResult struct {
	Path  string
	Valid bool
	// Detail carries the compiler's complaint for invalid files.
	Detail string
}

// Report aggregates validation outcomes for one directory.
type Report struct {
	Dir       string
	DirExists bool
	Files     []FileResult
}

// InvalidCount returns the number of files that failed validation.
func (r *Report) InvalidCount() int {
	n := 0
	for _, f := range r.Files {
		if !f.Valid {
			n++
		}
	}
	return n
}

// AllValid reports whether the directory exists, holds at least one
// definition file, and every file compiled cleanly.
func (r *Report) AllValid() bool {
	return r.DirExists && len(r.Files) > 0 && r.InvalidCount() == 0
}

// runAz executes an az invocation and returns stdout, stderr and exit
// status. A missing az binary degrades to a non-zero exit. Package-level
// variable so tests can inject a fake runner.
var runAz = func(args ...string) (string, string, int) {
	// #nosec G204 - arguments are fixed templates plus validated file paths
	cmd := exec.Command("az", args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return stdout.String(), stderr.String(), exitErr.ExitCode()
		}
		return "", "command not found: az", 127
	}
	return stdout.String(), stderr.String(), 0
}

// ValidateFile compiles a single definition file. A missing file is an
// invalid result, not an error.
func ValidateFile(path string) FileResult {
	if _, err := os.Stat(path); err != nil {
		return FileResult{Path: path, Detail: "file not found"}
	}
	_, stderr, code := runAz("bicep", "build", "--file", path, "--stdout")
	result := FileResult{Path: path, Valid: code == 0}
	if code != 0 {
		result.Detail = strings.TrimSpace(stderr)
	}
	return result
}

// ValidateDir compiles every .bicep file directly under dir, in name order.
// A missing directory or an empty one yields a report that simply says so.
func ValidateDir(dir string) *Report {
	report := &Report{Dir: dir}

	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return report
	}
	report.DirExists = true

	matches, err := filepath.Glob(filepath.Join(dir, "*.bicep"))
	if err != nil {
		return report
	}
	sort.Strings(matches)

	for _, path := range matches {
		report.Files = append(report.Files, ValidateFile(path))
	}
	return report
}
