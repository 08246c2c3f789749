package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runValidate(t *testing.T, presetContent string) (stdout, stderr string, err error) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stack.json")
	require.NoError(t, os.WriteFile(path, []byte(presetContent), 0644))

	var out, errOut bytes.Buffer
	validateCmd.SetOut(&out)
	validateCmd.SetErr(&errOut)
	defer validateCmd.SetOut(nil)
	defer validateCmd.SetErr(nil)

	err = validateCmd.RunE(validateCmd, []string{path})
	return out.String(), errOut.String(), err
}

func TestValidateCmdAcceptsValidPreset(t *testing.T) {
	stdout, _, err := runValidate(t, `{
		"project_name": "shop",
		"frontend": "nextjs",
		"trpc": true,
		"auth": true,
		"tailwind": true,
		"package_manager": "pnpm"
	}`)

	require.NoError(t, err)
	assert.Contains(t, stdout, "Configuration is valid.")
}

func TestValidateCmdPrintsEveryError(t *testing.T) {
	_, stderr, err := runValidate(t, `{
		"project_name": "shop",
		"frontend": "react",
		"trpc": "yes",
		"auth": true,
		"tailwind": false,
		"package_manager": "bun"
	}`)

	require.Error(t, err)
	assert.Contains(t, stderr, "Invalid packageManager choice.")
	assert.Contains(t, stderr, "trpc must be a boolean value.")
	assert.Contains(t, stderr, "NextAuth.js requires Next.js as the frontend framework.")
}

func TestValidateCmdRejectsReservedProjectName(t *testing.T) {
	_, stderr, err := runValidate(t, `{
		"project_name": "node_modules",
		"frontend": "nextjs",
		"trpc": false,
		"auth": false,
		"tailwind": false,
		"package_manager": "npm"
	}`)

	require.Error(t, err)
	assert.Contains(t, stderr, "reserved name")
}
