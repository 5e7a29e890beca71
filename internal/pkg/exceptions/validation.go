package exceptions

import (
	"hospital-portal-service/internal/pkg/constvars"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldViolation is a single violated constraint, reported to the client
// alongside its siblings so one round trip surfaces every problem.
type FieldViolation struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

func BuildFieldViolations(err error) []FieldViolation {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil
	}

	violations := make([]FieldViolation, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		violations = append(violations, FieldViolation{
			Field: strings.ToLower(fieldError.Field()),
			Rule:  formatRuleMessage(fieldError),
		})
	}
	return violations
}

func FormatAllValidationErrors(err error) string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return constvars.ErrClientCannotProcessRequest
	}

	var errors []string
	for _, fieldError := range validationErrors {
		fieldName := strings.ToLower(fieldError.Field())
		errors = append(errors, fieldName+" "+formatRuleMessage(fieldError))
	}
	return strings.Join(errors, ", ")
}

func formatRuleMessage(fieldError validator.FieldError) string {
	tag := fieldError.Tag()
	customMessage, ok := constvars.CustomValidationErrorMessages[tag]
	if !ok {
		customMessage = "is invalid"
	}
	if constvars.TagsWithParams[tag] {
		if tag == "oneof" {
			customMessage = strings.Replace(customMessage, "%s", strings.Join(strings.Fields(fieldError.Param()), ", "), 1)
		} else {
			customMessage = strings.Replace(customMessage, "%s", fieldError.Param(), 1)
		}
	}
	return customMessage
}
