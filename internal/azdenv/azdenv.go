// Package azdenv bridges values into and out of azd environments. All
// operations degrade gracefully when the azd CLI is unavailable.
package azdenv

import (
	"errors"
	"os/exec"
	"strings"
)

// runAzd executes an azd invocation and returns its standard output and
// exit status. Package-level variable so tests can inject a fake runner.
var runAzd = func(args ...string) (string, int) {
	// #nosec G204 - arguments are fixed subcommands plus caller values
	out, err := exec.Command("azd", args...).Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return string(out), exitErr.ExitCode()
		}
		return "", 127
	}
	return string(out), 0
}

// Set stores one key in the azd environment. envName selects a named
// environment; empty means the default. Returns false when the azd CLI is
// unavailable or rejects the write.
func Set(key, value, envName string) bool {
	args := []string{"env", "set", key, value}
	if envName != "" {
		args = append(args, "-e", envName)
	}
	_, code := runAzd(args...)
	return code == 0
}

// GetValues returns the variables stored in the azd environment. azd
// prints KEY="VALUE" lines; surrounding quotes are stripped. An
// unavailable CLI or missing environment yields an empty map.
func GetValues(envName string) map[string]string {
	args := []string{"env", "get-values"}
	if envName != "" {
		args = append(args, "-e", envName)
	}

	vars := make(map[string]string)
	out, code := runAzd(args...)
	if code != 0 {
		return vars
	}

	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		value = strings.Trim(value, `"'`)
		vars[key] = value
	}
	return vars
}
