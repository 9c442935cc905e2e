package validate

import (
	"net/mail"
	"strings"
)

// Email validates that the value is an email address in the RFC 5322
// addr-spec form (no display name, no angle brackets).
func Email(name string, value string) ValidationRule {
	return emailRule{name: name, value: value}
}

type emailRule struct {
	name  string
	value string
}

func (e emailRule) Validate() *Failure {
	if e.value == "" {
		return nil
	}

	fail := &Failure{Name: e.name, Problems: []string{"invalid email address"}}

	addr, err := mail.ParseAddress(e.value)
	if err != nil {
		return fail
	}
	// reject display names and the bracketed form, the stored address must be
	// the bare addr-spec
	if addr.Name != "" || strings.ContainsAny(e.value, "<>") {
		return fail
	}
	return nil
}
