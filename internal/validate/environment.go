package validate

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/eduardo/stackgen/internal/domain"
)

// minNodeMajor is the oldest Node.js major the generated projects support.
const minNodeMajor = 16

// CheckEnvironment parses a Node.js version string such as "v18.17.0" and
// verifies the major version meets the minimum. The caller is responsible for
// obtaining the string (normally from `node --version`); this function itself
// does no I/O.
func CheckEnvironment(version string) domain.EnvironmentResult {
	major, ok := parseMajor(version)
	if !ok {
		return environmentFailure(fmt.Sprintf("Could not determine the Node.js version from %q.", strings.TrimSpace(version)))
	}
	if major < minNodeMajor {
		return environmentFailure(fmt.Sprintf("Node.js %d or newer is required (found %s).", minNodeMajor, strings.TrimSpace(version)))
	}
	return domain.EnvironmentResult{Valid: true}
}

func environmentFailure(requirement string) domain.EnvironmentResult {
	return domain.EnvironmentResult{
		Valid:        false,
		Requirements: []string{requirement},
		Error:        requirement,
	}
}

func parseMajor(version string) (int, bool) {
	v := strings.TrimSpace(version)
	v = strings.TrimPrefix(v, "v")
	head, _, _ := strings.Cut(v, ".")
	major, err := strconv.Atoi(head)
	if err != nil || major < 0 {
		return 0, false
	}
	return major, true
}
