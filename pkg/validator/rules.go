package validator

import (
	"fmt"
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9.!#$%&'*+/=?^_` + "`" + `{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$`)

// RequiredString validates that a string is not empty after trimming
// whitespace.
func RequiredString(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:   field,
			Message: "field is required",
		},
	}
}

// RequiredIf applies RequiredString only when cond holds; otherwise the rule
// always passes. Used for fields that become mandatory based on another
// field's value.
func RequiredIf(cond bool, field, value string) Rule {
	if !cond {
		return Rule{
			Check: func() bool { return true },
			Error: ValidationError{Field: field},
		}
	}
	return RequiredString(field, value)
}

// ValidEmail validates basic email address shape. Empty values pass; combine
// with RequiredString when the field is mandatory.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if value == "" {
				return true
			}
			return emailRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid email address",
		},
	}
}

// Matches validates value against pattern. Empty values pass.
func Matches(field, value string, pattern *regexp.Regexp) Rule {
	return Rule{
		Check: func() bool {
			if value == "" {
				return true
			}
			return pattern.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must match %s", pattern.String()),
		},
	}
}

// OneOf validates that value is one of the allowed choices. Empty values pass.
func OneOf(field, value string, allowed ...string) Rule {
	return Rule{
		Check: func() bool {
			if value == "" {
				return true
			}
			for _, a := range allowed {
				if value == a {
					return true
				}
			}
			return false
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(allowed, ", ")),
		},
	}
}
