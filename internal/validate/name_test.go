package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectNameValid(t *testing.T) {
	for _, name := range []string{"my-app_2", "app", "My.App", "a", "x2", "web_client"} {
		t.Run(name, func(t *testing.T) {
			result := ProjectName(name)
			assert.True(t, result.Valid)
			assert.Empty(t, result.Error)
		})
	}
}

func TestProjectNameEmpty(t *testing.T) {
	result := ProjectName("")

	require.False(t, result.Valid)
	assert.Equal(t, "Project name is required and must be a string.", result.Error)
}

func TestProjectNameLengthBoundary(t *testing.T) {
	assert.True(t, ProjectName(strings.Repeat("a", 214)).Valid)

	result := ProjectName(strings.Repeat("a", 215))
	require.False(t, result.Valid)
	assert.Contains(t, result.Error, "214")
}

func TestProjectNameCharset(t *testing.T) {
	for _, name := range []string{"my app", "my/app", "my\\app", "café", "app!", "my—app"} {
		t.Run(name, func(t *testing.T) {
			result := ProjectName(name)
			require.False(t, result.Valid)
			assert.Contains(t, result.Error, "letters, numbers, hyphens, underscores, and dots")
		})
	}
}

func TestProjectNameLeadingDotOrHyphen(t *testing.T) {
	for _, name := range []string{"-my-app", ".hidden"} {
		t.Run(name, func(t *testing.T) {
			result := ProjectName(name)
			require.False(t, result.Valid)
			assert.Contains(t, result.Error, "cannot start with")
		})
	}
}

func TestProjectNameReserved(t *testing.T) {
	result := ProjectName("node_modules")

	require.False(t, result.Valid)
	assert.Contains(t, result.Error, "reserved name")
}

func TestProjectNameReservedIsCaseInsensitive(t *testing.T) {
	for _, name := range []string{"src", "SRC", "Dist", "BUILD", "Package.json"} {
		t.Run(name, func(t *testing.T) {
			result := ProjectName(name)
			require.False(t, result.Valid)
			assert.Contains(t, result.Error, "reserved name")
		})
	}
}

func TestProjectNameIdempotent(t *testing.T) {
	for _, name := range []string{"my-app", "", "node_modules", "-bad"} {
		first := ProjectName(name)
		second := ProjectName(name)
		assert.Equal(t, first, second)
	}
}
