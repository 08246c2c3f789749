package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eduardo/stackgen/internal/domain"
)

type stubParser struct {
	config *domain.Config
	err    error
}

func (p *stubParser) Parse(string) (*domain.Config, error) {
	return p.config, p.err
}

func newService(t *testing.T, parser domain.ParserPort) (*ScaffoldService, *[]*domain.Config) {
	t.Helper()
	var generated []*domain.Config
	generate := func(config *domain.Config, outputDir string, fs domain.FileSystemPort, template domain.TemplatePort) error {
		generated = append(generated, config)
		return nil
	}
	return NewScaffoldService(nil, nil, parser, generate), &generated
}

func TestGenerateRejectsBadName(t *testing.T) {
	svc, generated := newService(t, nil)

	err := svc.Generate(context.Background(), &domain.Config{
		ProjectName:    "-bad-name",
		Frontend:       domain.FrontendNext,
		TRPC:           false,
		Auth:           false,
		Tailwind:       false,
		PackageManager: domain.PackageManagerNPM,
	}, t.TempDir())

	var nameErr *NameError
	require.ErrorAs(t, err, &nameErr)
	assert.Contains(t, nameErr.Result.Error, "cannot start with")
	assert.Empty(t, *generated)
}

func TestGenerateRejectsIncompatibleOptions(t *testing.T) {
	svc, generated := newService(t, nil)

	err := svc.Generate(context.Background(), &domain.Config{
		ProjectName:    "shop",
		Frontend:       domain.FrontendReact,
		TRPC:           false,
		Auth:           true,
		Tailwind:       false,
		PackageManager: domain.PackageManagerNPM,
	}, t.TempDir())

	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Contains(t, valErr.Result.Errors, "NextAuth.js requires Next.js as the frontend framework.")
	assert.Equal(t, valErr.Result.Errors[0], valErr.Result.FirstError)
	assert.Empty(t, *generated)
}

func TestGenerateInfersSchemaBeforeValidating(t *testing.T) {
	svc, generated := newService(t, nil)

	// Carries a database, so the classic rules apply and drizzle+mssql must
	// be rejected even though no schema was set explicitly.
	err := svc.Generate(context.Background(), &domain.Config{
		ProjectName:    "shop",
		Frontend:       domain.FrontendNext,
		Database:       domain.DatabaseMSSQL,
		ORM:            domain.ORMDrizzle,
		TRPC:           false,
		Auth:           false,
		Tailwind:       false,
		PackageManager: domain.PackageManagerYarn,
	}, t.TempDir())

	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Contains(t, valErr.Result.FirstError, "Drizzle")
	assert.Empty(t, *generated)
}

func TestGenerateFromPresetRunsGenerator(t *testing.T) {
	config := &domain.Config{
		ProjectName:    "shop",
		Frontend:       domain.FrontendNext,
		TRPC:           true,
		Auth:           true,
		Tailwind:       true,
		PackageManager: domain.PackageManagerNPM,
	}
	svc, generated := newService(t, &stubParser{config: config})

	err := svc.GenerateFromPreset(context.Background(), "stack.json", t.TempDir())

	require.NoError(t, err)
	require.Len(t, *generated, 1)
	assert.Equal(t, domain.SchemaSlim, (*generated)[0].Schema)
}
