// Package validator adapts go-playground/validator to echo.
package validator

import (
	"reflect"
	"strings"

	"reviewhub/internal/domain/entity"
	"reviewhub/internal/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates a validator that reports json field names and knows the
// "platform" tag.
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})
	_ = v.RegisterValidation("platform", func(fl validator.FieldLevel) bool {
		_, ok := entity.ParsePlatform(fl.Field().String())

		return ok
	})

	return &CustomValidator{validate: v}
}

// Validate validates a request struct
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validate.Struct(i); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
