package validate

import (
	"errors"
	"testing"

	"gotest.tools/v3/assert"

	"github.com/placemate/placemate/internal"
)

type testRequest struct {
	Email    string
	Password string
}

func (r testRequest) ValidationRules() []ValidationRule {
	return []ValidationRule{
		Required("email", r.Email),
		Email("email", r.Email),
		Required("password", r.Password),
		StringRule{Name: "password", Value: r.Password, MinLength: 8, MaxLength: 253},
	}
}

func TestValidate(t *testing.T) {
	t.Run("all rules pass", func(t *testing.T) {
		r := testRequest{Email: "joe@example.com", Password: "correct-horse"}
		assert.NilError(t, Validate(r))
	})
	t.Run("missing fields", func(t *testing.T) {
		err := Validate(testRequest{})
		assert.ErrorContains(t, err, "validation failed")

		var verr Error
		assert.Assert(t, errors.As(err, &verr))
		assert.DeepEqual(t, verr["email"], []string{"is required"})
		assert.DeepEqual(t, verr["password"], []string{"is required"})
	})
	t.Run("is a bad request", func(t *testing.T) {
		err := Validate(testRequest{Email: "nope"})
		assert.Assert(t, errors.Is(err, internal.ErrBadRequest))
	})
}

func TestEmailRule(t *testing.T) {
	valid := []string{"a@b.co", "student.name@uni.example.edu", "x+tag@example.com"}
	for _, addr := range valid {
		assert.Assert(t, Email("email", addr).Validate() == nil, "expected %q to be valid", addr)
	}

	invalid := []string{"nope", "@example.com", "Joe <joe@example.com>", "joe@"}
	for _, addr := range invalid {
		assert.Assert(t, Email("email", addr).Validate() != nil, "expected %q to be invalid", addr)
	}
}

func TestStringRule(t *testing.T) {
	rule := StringRule{Name: "password", Value: "short", MinLength: 8}
	failure := rule.Validate()
	assert.Assert(t, failure != nil)
	assert.DeepEqual(t, failure.Problems, []string{"must be at least 8 characters"})

	rule = StringRule{Name: "password", Value: "long enough", MinLength: 8}
	assert.Assert(t, rule.Validate() == nil)

	// zero values are left to Required
	rule = StringRule{Name: "password", Value: "", MinLength: 8}
	assert.Assert(t, rule.Validate() == nil)
}
