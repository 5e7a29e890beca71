package utils

import (
	"hospital-portal-service/internal/pkg/constvars"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("date_format", validateDateFormat)

	// Violations cite the json field names clients actually send.
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateDateFormat(fl validator.FieldLevel) bool {
	date := fl.Field().String()
	re := regexp.MustCompile(constvars.RegexDateYYYYMMDD)
	return re.MatchString(date)
}
