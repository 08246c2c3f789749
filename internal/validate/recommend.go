package validate

import "github.com/eduardo/stackgen/internal/domain"

// Recommendations returns advisory messages for a configuration that has
// already passed Options. They never affect correctness and their order is
// stable for identical input. Calling this with an invalid configuration is
// a caller error; the output is meaningless in that case.
func Recommendations(cfg *domain.Config) []string {
	var recs []string

	if !cfg.TRPCEnabled() {
		recs = append(recs, "Consider enabling tRPC for end-to-end type safety between frontend and backend.")
	}
	if !cfg.TailwindEnabled() {
		recs = append(recs, "Tailwind CSS pairs well with the generated components and can be enabled with minimal churn.")
	}
	if cfg.PackageManager == domain.PackageManagerNPM {
		recs = append(recs, "pnpm installs dependencies faster than npm and uses less disk space.")
	}
	if cfg.Schema == domain.SchemaClassic && cfg.Database == domain.DatabaseSQLite && cfg.AuthEnabled() {
		recs = append(recs, "SQLite works for development, but consider Postgres before deploying the auth tables to production.")
	}

	return recs
}
