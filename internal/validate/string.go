package validate

import "fmt"

// StringRule validates the length of a string field. A zero value passes
// unless the field is also Required.
type StringRule struct {
	// Name of the field in the API request.
	Name string
	// Value of the field.
	Value string

	MinLength int
	MaxLength int
}

func (s StringRule) Validate() *Failure {
	if s.Value == "" {
		return nil
	}

	var problems []string
	if len(s.Value) < s.MinLength {
		problems = append(problems,
			fmt.Sprintf("must be at least %d characters", s.MinLength))
	}
	if s.MaxLength > 0 && len(s.Value) > s.MaxLength {
		problems = append(problems,
			fmt.Sprintf("can be at most %d characters", s.MaxLength))
	}

	if len(problems) > 0 {
		return &Failure{Name: s.Name, Problems: problems}
	}
	return nil
}
