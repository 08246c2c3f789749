package domain

// Schema selects which generation of the configuration record the tool runs
// with. SchemaClassic still exposes a database and ORM choice; SchemaSlim
// dropped both fields after the product stopped offering them.
type Schema string

const (
	SchemaClassic Schema = "classic"
	SchemaSlim    Schema = "slim"
)

// Frontend choices
const (
	FrontendNext  = "nextjs"
	FrontendReact = "react"
)

// Database choices (classic schema only)
const (
	DatabasePostgres = "postgres"
	DatabaseMySQL    = "mysql"
	DatabaseSQLite   = "sqlite"
	DatabaseMSSQL    = "mssql"
)

// ORM choices (classic schema only)
const (
	ORMPrisma  = "prisma"
	ORMDrizzle = "drizzle"
)

// Package manager choices
const (
	PackageManagerNPM  = "npm"
	PackageManagerYarn = "yarn"
	PackageManagerPNPM = "pnpm"
)

// Config is the record of user choices that drives scaffold generation.
// It is built once per invocation, validated, and never mutated afterwards.
//
// The feature toggles are typed any on purpose: they arrive from untyped
// input (preset files, prompt answers) and the validator has to be able to
// tell a real boolean from a "yes" someone typed into a JSON file. Use the
// *Enabled accessors after validation.
type Config struct {
	ProjectName    string `json:"project_name"`
	Frontend       string `json:"frontend"`           // "nextjs" or "react"
	Database       string `json:"database,omitempty"` // classic schema only
	ORM            string `json:"orm,omitempty"`      // classic schema only
	TRPC           any    `json:"trpc"`
	Auth           any    `json:"auth"`
	Tailwind       any    `json:"tailwind"`
	PackageManager string `json:"package_manager"`
	Schema         Schema `json:"schema,omitempty"`
}

// TRPCEnabled reports whether the tRPC layer was requested. False for any
// value that is not a real boolean.
func (c *Config) TRPCEnabled() bool {
	b, _ := c.TRPC.(bool)
	return b
}

// AuthEnabled reports whether the authentication subsystem was requested.
func (c *Config) AuthEnabled() bool {
	b, _ := c.Auth.(bool)
	return b
}

// TailwindEnabled reports whether Tailwind CSS generation was requested.
func (c *Config) TailwindEnabled() bool {
	b, _ := c.Tailwind.(bool)
	return b
}

// ValidationResult is the outcome of checking a full Config.
// FirstError mirrors Errors[0] when the result is invalid; callers that only
// print a single message rely on it.
type ValidationResult struct {
	Valid      bool
	Errors     []string
	FirstError string
}

// NameValidationResult is the outcome of checking a project name. It is a
// single-error shape, distinct from ValidationResult, and callers must not
// conflate the two.
type NameValidationResult struct {
	Valid bool
	Error string
}

// EnvironmentResult is the outcome of checking the host tooling (Node.js
// version). Error mirrors Requirements[0] when the result is invalid.
type EnvironmentResult struct {
	Valid        bool
	Requirements []string
	Error        string
}
