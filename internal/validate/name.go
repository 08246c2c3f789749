package validate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/eduardo/stackgen/internal/domain"
)

// maxNameLength follows the npm package name limit.
const maxNameLength = 214

var nameCharset = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)

// reservedNames are project names that collide with filesystem or package
// manager conventions. Checked case-insensitively.
var reservedNames = map[string]struct{}{
	"node_modules":      {},
	"package.json":      {},
	"package-lock.json": {},
	"yarn.lock":         {},
	"pnpm-lock.yaml":    {},
	".git":              {},
	".env":              {},
	"src":               {},
	"dist":              {},
	"build":             {},
}

// ProjectName checks whether the candidate string is usable as a project
// identifier. Unlike Options it fails fast on the first violated rule, since
// each rule assumes the earlier ones hold. The input is never modified.
func ProjectName(name string) domain.NameValidationResult {
	if name == "" {
		return nameError("Project name is required and must be a string.")
	}
	if len(name) > maxNameLength {
		return nameError(fmt.Sprintf("Project name must be at most %d characters long.", maxNameLength))
	}
	if !nameCharset.MatchString(name) {
		return nameError("Project name can only contain letters, numbers, hyphens, underscores, and dots.")
	}
	if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "-") {
		return nameError("Project name cannot start with a dot or a hyphen.")
	}
	if _, reserved := reservedNames[strings.ToLower(name)]; reserved {
		return nameError(fmt.Sprintf("%q is a reserved name and cannot be used as a project name.", name))
	}
	return domain.NameValidationResult{Valid: true}
}

func nameError(msg string) domain.NameValidationResult {
	return domain.NameValidationResult{Valid: false, Error: msg}
}
