package handlers

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvList(t *testing.T) {
	orig := azdGetValues
	t.Cleanup(func() { azdGetValues = orig })

	var requested string
	azdGetValues = func(envName string) map[string]string {
		requested = envName
		return map[string]string{"AZURE_LOCATION": "eastus", "AZURE_ENV_NAME": "dev"}
	}

	var out bytes.Buffer
	EnvList(&out, "staging")

	assert.Equal(t, "staging", requested)
	assert.Equal(t, "AZURE_ENV_NAME=dev\nAZURE_LOCATION=eastus\n", out.String())
}

func TestEnvListEmpty(t *testing.T) {
	orig := azdGetValues
	t.Cleanup(func() { azdGetValues = orig })
	azdGetValues = func(_ string) map[string]string { return nil }

	var out bytes.Buffer
	EnvList(&out, "")

	assert.Contains(t, out.String(), "No azd environment values found")
}

func TestEnvSet(t *testing.T) {
	orig := azdSetValue
	t.Cleanup(func() { azdSetValue = orig })

	var gotKey, gotValue, gotEnv string
	azdSetValue = func(key, value, envName string) bool {
		gotKey, gotValue, gotEnv = key, value, envName
		return true
	}

	var out bytes.Buffer
	err := EnvSet(&out, "AZURE_LOCATION", "westus2", "prod")

	require.NoError(t, err)
	assert.Equal(t, "AZURE_LOCATION", gotKey)
	assert.Equal(t, "westus2", gotValue)
	assert.Equal(t, "prod", gotEnv)
	assert.Contains(t, out.String(), "Set AZURE_LOCATION")
}

func TestEnvSetFailure(t *testing.T) {
	orig := azdSetValue
	t.Cleanup(func() { azdSetValue = orig })
	azdSetValue = func(_, _, _ string) bool { return false }

	var out bytes.Buffer
	err := EnvSet(&out, "KEY", "value", "")

	assert.Error(t, err)
}
