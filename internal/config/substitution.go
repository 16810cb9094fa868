package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

// envVarPattern matches ${env://VAR} and ${env://VAR:-default} placeholders
// in config file content.
var envVarPattern = regexp.MustCompile(`\$\{env://([A-Za-z_][A-Za-z0-9_]*)(:-([^}]*))?\}`)

// SubstituteEnvVars expands ${env://VAR} placeholders from the process
// environment. An unset variable falls back to its :-default when one is
// given; a placeholder with no default for an unset variable is an error.
func SubstituteEnvVars(content string) (string, error) {
	var missing []string

	result := envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		groups := envVarPattern.FindStringSubmatch(match)
		name := groups[1]

		if value := os.Getenv(name); value != "" {
			return value
		}
		if groups[2] != "" {
			// ":-" was present; groups[3] may legitimately be empty.
			return groups[3]
		}

		missing = append(missing, name)
		return match
	})

	if len(missing) > 0 {
		return "", fmt.Errorf("unset environment variables: %s", strings.Join(missing, ", "))
	}
	return result, nil
}

// HasEnvVars reports whether content contains any substitution placeholders,
// so callers can skip the rewrite entirely for plain files.
func HasEnvVars(content string) bool {
	return envVarPattern.MatchString(content)
}
