package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()
	// Report fields by their JSON names so messages match the request body.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &CustomValidator{validator: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// FormatValidationErrors maps each failing field's namespace (without the
// root struct name) to a readable message.
func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Field()
			key := e.Namespace()
			if i := strings.Index(key, "."); i >= 0 {
				key = key[i+1:]
			}
			switch e.Tag() {
			case "required":
				errors[key] = field + " is required"
			case "email":
				errors[key] = field + " must be a valid email address"
			case "oneof":
				errors[key] = field + " must be one of: " + e.Param()
			case "min":
				errors[key] = field + " must be at least " + e.Param() + " characters"
			case "max":
				if e.Kind() == reflect.Slice {
					errors[key] = field + " must contain at most " + e.Param() + " items"
				} else {
					errors[key] = field + " must be at most " + e.Param() + " characters"
				}
			default:
				errors[key] = field + " is invalid"
			}
		}
	}

	return errors
}
