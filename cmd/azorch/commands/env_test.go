package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnv(t *testing.T) {
	cmd := Env()

	require.NotNil(t, cmd)
	assert.Equal(t, "env", cmd.Use)

	subcommands := make(map[string]bool)
	for _, sub := range cmd.Commands() {
		subcommands[sub.Name()] = true
	}
	assert.True(t, subcommands["list"])
	assert.True(t, subcommands["set"])
}

func TestEnv_EnvironmentFlag(t *testing.T) {
	for _, sub := range Env().Commands() {
		flag := sub.Flags().Lookup("environment")
		require.NotNil(t, flag, "%s should take -e", sub.Name())
		assert.Equal(t, "e", flag.Shorthand)
	}
}
