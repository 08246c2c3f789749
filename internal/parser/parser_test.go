package parser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eduardo/stackgen/internal/domain"
	"github.com/eduardo/stackgen/internal/infrastructure"
)

func writePreset(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestParseBareJSON(t *testing.T) {
	path := writePreset(t, "stack.json", `{
		"project_name": "shop",
		"frontend": "nextjs",
		"database": "postgres",
		"orm": "prisma",
		"trpc": true,
		"auth": true,
		"tailwind": false,
		"package_manager": "pnpm"
	}`)

	p := NewPresetParser(infrastructure.NewOSFileSystem())
	config, err := p.Parse(path)

	require.NoError(t, err)
	assert.Equal(t, "shop", config.ProjectName)
	assert.Equal(t, domain.FrontendNext, config.Frontend)
	assert.Equal(t, domain.SchemaClassic, config.Schema)
	assert.True(t, config.TRPCEnabled())
	assert.False(t, config.TailwindEnabled())
}

func TestParseMarkdownFencedBlock(t *testing.T) {
	path := writePreset(t, "stack.md", "# Shop preset\n\n```json\n"+
		`{"project_name": "shop", "frontend": "react", "trpc": false, "auth": false, "tailwind": true, "package_manager": "npm"}`+
		"\n```\n")

	p := NewPresetParser(infrastructure.NewOSFileSystem())
	config, err := p.Parse(path)

	require.NoError(t, err)
	assert.Equal(t, domain.FrontendReact, config.Frontend)
	assert.Equal(t, domain.SchemaSlim, config.Schema)
}

func TestParseMarkdownWithoutBlock(t *testing.T) {
	path := writePreset(t, "stack.md", "# nothing here\n")

	p := NewPresetParser(infrastructure.NewOSFileSystem())
	_, err := p.Parse(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no JSON block")
}

func TestParsePreservesRawToggleTypes(t *testing.T) {
	// A hand-edited preset with a string where a boolean belongs must survive
	// parsing untouched so the validator can report it.
	path := writePreset(t, "stack.json",
		`{"project_name": "shop", "frontend": "nextjs", "trpc": "yes", "auth": false, "tailwind": true, "package_manager": "npm"}`)

	p := NewPresetParser(infrastructure.NewOSFileSystem())
	config, err := p.Parse(path)

	require.NoError(t, err)
	assert.Equal(t, "yes", config.TRPC)
	assert.False(t, config.TRPCEnabled())
}

func TestParseRejectsUnknownSchema(t *testing.T) {
	path := writePreset(t, "stack.json",
		`{"project_name": "shop", "frontend": "nextjs", "schema": "v3", "trpc": false, "auth": false, "tailwind": false, "package_manager": "npm"}`)

	p := NewPresetParser(infrastructure.NewOSFileSystem())
	_, err := p.Parse(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown schema")
}

func TestInferSchema(t *testing.T) {
	assert.Equal(t, domain.SchemaClassic, InferSchema(&domain.Config{Database: "postgres"}))
	assert.Equal(t, domain.SchemaClassic, InferSchema(&domain.Config{ORM: "drizzle"}))
	assert.Equal(t, domain.SchemaSlim, InferSchema(&domain.Config{}))
}
