package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runDoctor(t *testing.T, version string) (stdout, stderr string, err error) {
	t.Helper()
	original := nodeVersion
	nodeVersion = func() (string, error) { return version, nil }
	t.Cleanup(func() { nodeVersion = original })

	var out, errOut bytes.Buffer
	doctorCmd.SetOut(&out)
	doctorCmd.SetErr(&errOut)
	defer doctorCmd.SetOut(nil)
	defer doctorCmd.SetErr(nil)

	err = doctorCmd.RunE(doctorCmd, nil)
	return out.String(), errOut.String(), err
}

func TestDoctorAcceptsModernNode(t *testing.T) {
	stdout, _, err := runDoctor(t, "v20.11.1")

	require.NoError(t, err)
	assert.Contains(t, stdout, "v20.11.1")
}

func TestDoctorRejectsOldNode(t *testing.T) {
	_, stderr, err := runDoctor(t, "v14.21.3")

	require.Error(t, err)
	assert.Contains(t, stderr, "Node.js 16 or newer")
}
