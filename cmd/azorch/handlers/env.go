package handlers

import (
	"fmt"
	"io"
)

// EnvList prints the variables stored in the azd environment. An
// unavailable azd CLI degrades to an empty listing, never an error.
func EnvList(w io.Writer, envName string) {
	values := azdGetValues(envName)
	if len(values) == 0 {
		fmt.Fprintln(w, "No azd environment values found (is azd installed and an environment initialized?)")
		return
	}
	for _, key := range sortedKeys(values) {
		fmt.Fprintf(w, "%s=%s\n", key, values[key])
	}
}

// EnvSet stores one key in the azd environment and reports the outcome.
func EnvSet(w io.Writer, key, value, envName string) error {
	if !azdSetValue(key, value, envName) {
		return fmt.Errorf("failed to set %s in azd environment", key)
	}
	fmt.Fprintf(w, "Set %s\n", key)
	return nil
}
