package validation

import (
	"regexp"
	"strings"
)

type Violations map[string]string

func (v Violations) Empty() bool { return len(v) == 0 }

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Basic validators
func Required(field, value string, v Violations) {
	if strings.TrimSpace(value) == "" {
		v[field] = "required"
	}
}

// Email flags malformed addresses; empty values are left to Required.
func Email(field, value string, v Violations) {
	s := strings.TrimSpace(value)
	if s == "" {
		return
	}
	if !emailRe.MatchString(s) {
		v[field] = "invalid_email"
	}
}

func MinInt(field string, val, minVal int, v Violations) {
	if val < minVal {
		v[field] = "too_small"
	}
}

func OneOf(field, value string, allowed []string, v Violations) {
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	v[field] = "invalid_value"
}

// ContactChannel requires at least one reachable channel among email and
// phone. The violation is recorded under a synthetic "contact" field so forms
// can surface it once.
func ContactChannel(email, phone string, v Violations) {
	if strings.TrimSpace(email) == "" && strings.TrimSpace(phone) == "" {
		v["contact"] = "contact_channel_required"
	}
}
