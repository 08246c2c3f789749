// Package validate holds the configuration resolution and validation engine.
// Everything in it is a pure function: no I/O, no logging, no mutation of its
// input. Expected-invalid input is reported through result values, never
// through error returns or panics.
package validate

import (
	"fmt"
	"strings"

	"github.com/eduardo/stackgen/internal/domain"
)

var (
	frontends       = []string{domain.FrontendNext, domain.FrontendReact}
	databases       = []string{domain.DatabasePostgres, domain.DatabaseMySQL, domain.DatabaseSQLite, domain.DatabaseMSSQL}
	orms            = []string{domain.ORMPrisma, domain.ORMDrizzle}
	packageManagers = []string{domain.PackageManagerNPM, domain.PackageManagerYarn, domain.PackageManagerPNPM}
)

// Options checks every field of the configuration against its allowed value
// set and then the cross-field rules, collecting all problems instead of
// stopping at the first so the user sees everything at once.
//
// Error order is fixed: frontend, database, orm, packageManager, the three
// feature toggles, then the auth/frontend and orm/database compatibility
// rules. Under SchemaSlim the database and orm checks are skipped entirely.
func Options(cfg *domain.Config) domain.ValidationResult {
	var errs []string

	if !contains(frontends, cfg.Frontend) {
		errs = append(errs, invalidChoice("frontend", frontends))
	}
	if cfg.Schema == domain.SchemaClassic {
		if !contains(databases, cfg.Database) {
			errs = append(errs, invalidChoice("database", databases))
		}
		if !contains(orms, cfg.ORM) {
			errs = append(errs, invalidChoice("orm", orms))
		}
	}
	if !contains(packageManagers, cfg.PackageManager) {
		errs = append(errs, invalidChoice("packageManager", packageManagers))
	}

	for _, toggle := range []struct {
		name  string
		value any
	}{
		{"trpc", cfg.TRPC},
		{"auth", cfg.Auth},
		{"tailwind", cfg.Tailwind},
	} {
		if _, ok := toggle.value.(bool); !ok {
			errs = append(errs, fmt.Sprintf("%s must be a boolean value.", toggle.name))
		}
	}

	// NextAuth.js is generated against the Next.js routing convention, so the
	// auth subsystem cannot be combined with any other frontend.
	if cfg.AuthEnabled() && cfg.Frontend != domain.FrontendNext {
		errs = append(errs, "NextAuth.js requires Next.js as the frontend framework.")
	}

	if cfg.Schema == domain.SchemaClassic &&
		cfg.ORM == domain.ORMDrizzle && cfg.Database == domain.DatabaseMSSQL {
		errs = append(errs, "Drizzle does not fully support SQL Server yet; use Prisma instead.")
	}

	result := domain.ValidationResult{
		Valid:  len(errs) == 0,
		Errors: errs,
	}
	if len(errs) > 0 {
		result.FirstError = errs[0]
	}
	return result
}

func invalidChoice(field string, allowed []string) string {
	return fmt.Sprintf("Invalid %s choice. Must be one of: %s.", field, strings.Join(allowed, ", "))
}

func contains(allowed []string, value string) bool {
	for _, v := range allowed {
		if v == value {
			return true
		}
	}
	return false
}
