package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckEnvironmentAcceptsModernNode(t *testing.T) {
	for _, version := range []string{"v18.17.0", "v16.0.0", "20.11.1", "v22.3.0\n"} {
		t.Run(version, func(t *testing.T) {
			result := CheckEnvironment(version)
			assert.True(t, result.Valid)
			assert.Empty(t, result.Requirements)
		})
	}
}

func TestCheckEnvironmentRejectsOldNode(t *testing.T) {
	result := CheckEnvironment("v14.21.3")

	require.False(t, result.Valid)
	require.Len(t, result.Requirements, 1)
	assert.Contains(t, result.Requirements[0], "Node.js 16 or newer")
	assert.Contains(t, result.Requirements[0], "v14.21.3")
	assert.Equal(t, result.Requirements[0], result.Error)
}

func TestCheckEnvironmentUnparsableVersion(t *testing.T) {
	for _, version := range []string{"", "garbage", "node", "v-1.0.0"} {
		t.Run(version, func(t *testing.T) {
			result := CheckEnvironment(version)
			require.False(t, result.Valid)
			assert.Contains(t, result.Error, "Could not determine")
		})
	}
}
