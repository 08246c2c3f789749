// Package collector gathers the scaffold configuration from interactive
// prompts. It is a thin layer over huh: all real checking lives in the
// validate package, which runs again on whatever this produces.
package collector

import (
	"errors"

	"github.com/charmbracelet/huh"

	"github.com/eduardo/stackgen/internal/domain"
	"github.com/eduardo/stackgen/internal/validate"
)

// Collector drives the interactive prompt flow for one schema generation.
type Collector struct {
	schema domain.Schema
}

func New(schema domain.Schema) *Collector {
	return &Collector{schema: schema}
}

// Run walks the user through the prompt groups and returns the assembled raw
// configuration. The inline Validate callbacks catch the obvious mistakes
// early; the full rule set still runs downstream.
func (c *Collector) Run() (*domain.Config, error) {
	var (
		projectName    string
		frontend       string
		database       string
		orm            string
		trpc           bool
		auth           bool
		tailwind       bool
		packageManager string
	)

	groups := []*huh.Group{
		huh.NewGroup(
			huh.NewInput().
				Title("Project Name").
				Value(&projectName).
				Validate(func(s string) error {
					if result := validate.ProjectName(s); !result.Valid {
						return errors.New(result.Error)
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Frontend Framework").
				Options(
					huh.NewOption("Next.js", domain.FrontendNext),
					huh.NewOption("React (Vite)", domain.FrontendReact),
				).
				Value(&frontend),
		),
	}

	if c.schema == domain.SchemaClassic {
		groups = append(groups, huh.NewGroup(
			huh.NewSelect[string]().
				Title("Database").
				Options(
					huh.NewOption("PostgreSQL", domain.DatabasePostgres),
					huh.NewOption("MySQL", domain.DatabaseMySQL),
					huh.NewOption("SQLite", domain.DatabaseSQLite),
					huh.NewOption("SQL Server", domain.DatabaseMSSQL),
				).
				Value(&database),
			huh.NewSelect[string]().
				Title("ORM").
				Options(
					huh.NewOption("Prisma", domain.ORMPrisma),
					huh.NewOption("Drizzle", domain.ORMDrizzle),
				).
				Value(&orm).
				Validate(func(s string) error {
					if s == domain.ORMDrizzle && database == domain.DatabaseMSSQL {
						return errors.New("Drizzle does not fully support SQL Server yet; use Prisma instead.")
					}
					return nil
				}),
		))
	}

	groups = append(groups, huh.NewGroup(
		huh.NewConfirm().
			Title("Enable tRPC?").
			Value(&trpc),
		huh.NewConfirm().
			Title("Enable Authentication (NextAuth.js)?").
			Value(&auth).
			Validate(func(b bool) error {
				if b && frontend != domain.FrontendNext {
					return errors.New("NextAuth.js requires Next.js as the frontend framework.")
				}
				return nil
			}),
		huh.NewConfirm().
			Title("Enable Tailwind CSS?").
			Value(&tailwind),
		huh.NewSelect[string]().
			Title("Package Manager").
			Options(
				huh.NewOption("npm", domain.PackageManagerNPM),
				huh.NewOption("yarn", domain.PackageManagerYarn),
				huh.NewOption("pnpm", domain.PackageManagerPNPM),
			).
			Value(&packageManager),
	))

	if err := huh.NewForm(groups...).Run(); err != nil {
		return nil, err
	}

	return &domain.Config{
		ProjectName:    projectName,
		Frontend:       frontend,
		Database:       database,
		ORM:            orm,
		TRPC:           trpc,
		Auth:           auth,
		Tailwind:       tailwind,
		PackageManager: packageManager,
		Schema:         c.schema,
	}, nil
}
