// Package validate performs rule-based validation of API request structs.
// Request validation is done here instead of with gin binding tags so that
// the rules are plain values that can be inspected and tested.
package validate

import (
	"fmt"
	"strings"

	"github.com/placemate/placemate/internal"
)

// Request is implemented by all request structs.
type Request interface {
	ValidationRules() []ValidationRule
}

// ValidationRule performs validation on one or more struct fields.
//
// Rules default to optional. If the field has a zero value the rule does
// nothing. Use Required to make a field required.
type ValidationRule interface {
	// Validate returns nil if the validation passes. If the validation fails
	// the Failure contains the name of the field and the list of problems.
	Validate() *Failure
}

// Failure describes a validation failure.
type Failure struct {
	// Name of the field as it appears in the API request (the json field
	// name or query parameter), not the name of the struct field.
	Name string
	// Problems is a list of messages that describe the validation failure.
	// They are included in the API response.
	Problems []string
}

// Validate checks the values in the request against its validation rules.
// If validation fails the returned error is of type Error.
func Validate(req Request) error {
	err := make(Error)
	for _, rule := range req.ValidationRules() {
		if failure := rule.Validate(); failure != nil {
			err[failure.Name] = append(err[failure.Name], failure.Problems...)
		}
	}
	if len(err) > 0 {
		return err
	}
	return nil
}

// Error is a map of field names to problems associated with those fields.
type Error map[string][]string

func (e Error) Error() string {
	var buf strings.Builder
	buf.WriteString("validation failed: ")
	i := 0
	for k, v := range e {
		if i != 0 {
			buf.WriteString(", ")
		}
		i++
		if k == "" {
			buf.WriteString(strings.Join(v, ", "))
			continue
		}
		fmt.Fprintf(&buf, "%v: %v", k, strings.Join(v, ", "))
	}
	return buf.String()
}

func (e Error) Is(other error) bool {
	// nolint:errorlint // comparing with == is correct here, the caller uses Unwrap.
	return other == internal.ErrBadRequest
}

// Required checks that the value is not the zero value of its type.
func Required(name string, value interface{}) ValidationRule {
	return requiredRule{name: name, value: value}
}

type requiredRule struct {
	name  string
	value interface{}
}

func (r requiredRule) Validate() *Failure {
	switch v := r.value.(type) {
	case string:
		if v != "" {
			return nil
		}
	case int:
		if v != 0 {
			return nil
		}
	default:
		if v != nil {
			return nil
		}
	}
	return &Failure{Name: r.name, Problems: []string{"is required"}}
}
