package exceptions

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

type createShape struct {
	FullName string `validate:"required,min=3"`
	Email    string `validate:"required,email"`
	Gender   string `validate:"omitempty,oneof=male female other"`
}

func TestBuildFieldViolations(t *testing.T) {
	validate := validator.New()

	t.Run("Every Violation Enumerated", func(t *testing.T) {
		err := validate.Struct(&createShape{FullName: "Jo", Email: "nope", Gender: "robot"})
		assert.Error(t, err)

		violations := BuildFieldViolations(err)
		assert.Len(t, violations, 3)

		byField := make(map[string]string)
		for _, violation := range violations {
			byField[violation.Field] = violation.Rule
		}
		assert.Equal(t, "must be at least 3 characters long", byField["fullname"])
		assert.Equal(t, "must be a valid email", byField["email"])
		assert.Equal(t, "must be one of [male, female, other]", byField["gender"])
	})

	t.Run("Non Validation Error Yields Nothing", func(t *testing.T) {
		assert.Nil(t, BuildFieldViolations(assert.AnError))
	})
}

func TestFormatAllValidationErrors(t *testing.T) {
	validate := validator.New()

	err := validate.Struct(&createShape{FullName: "Jo", Email: "jane@example.com"})
	assert.Error(t, err)

	message := FormatAllValidationErrors(err)
	assert.Equal(t, "fullname must be at least 3 characters long", message)
}

func TestErrInputValidationCarriesViolations(t *testing.T) {
	validate := validator.New()

	err := validate.Struct(&createShape{})
	customError := ErrInputValidation(err)

	assert.Equal(t, 400, customError.StatusCode)
	assert.Len(t, customError.Violations, 2)
}
