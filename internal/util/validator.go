package util

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/ferdian3456/jobboard/internal/constant"
	"github.com/ferdian3456/jobboard/internal/model"

	"github.com/go-playground/validator/v10"
)

type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{
		validate: validate,
	}
}

// ValidateStruct returns nil or a *model.ValidationError carrying one message
// per failing field, keyed by the field's json name.
func (v *Validator) ValidateStruct(payload interface{}) error {
	err := v.validate.Struct(payload)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	fields := make(map[string]string, len(fieldErrs))
	var first string
	for _, fieldErr := range fieldErrs {
		name := fieldErr.Field()
		if _, ok := fields[name]; ok {
			continue
		}

		message := fieldMessage(fieldErr)
		fields[name] = message
		if first == "" {
			first = message
		}
	}

	return &model.ValidationError{
		Code:    constant.ERR_VALIDATION_CODE,
		Message: first,
		Fields:  fields,
	}
}

func displayName(field string) string {
	return strings.ReplaceAll(field, "_", " ")
}

func fieldMessage(fieldErr validator.FieldError) string {
	name := displayName(fieldErr.Field())
	isString := fieldErr.Kind() == reflect.String

	switch fieldErr.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", name)
	case "email":
		return fmt.Sprintf("The %s field must be a valid email address.", name)
	case "url":
		return fmt.Sprintf("The %s field must be a valid URL.", name)
	case "numeric":
		return fmt.Sprintf("The %s field must be a number.", name)
	case "eqfield":
		return fmt.Sprintf("The %s field must match %s.", name, displayName(toSnake(fieldErr.Param())))
	case "len":
		if isString {
			return fmt.Sprintf("The %s field must be %s characters.", name, fieldErr.Param())
		}
		return fmt.Sprintf("The %s field must be %s.", name, fieldErr.Param())
	case "min":
		if isString {
			return fmt.Sprintf("The %s field must be at least %s characters.", name, fieldErr.Param())
		}
		return fmt.Sprintf("The %s field must be at least %s.", name, fieldErr.Param())
	case "max":
		if isString {
			return fmt.Sprintf("The %s field must not be greater than %s characters.", name, fieldErr.Param())
		}
		return fmt.Sprintf("The %s field must not be greater than %s.", name, fieldErr.Param())
	case "gt":
		return fmt.Sprintf("The selected %s is invalid.", name)
	default:
		return fmt.Sprintf("The %s field is invalid.", name)
	}
}

// toSnake turns a Go field name such as ConfirmPassword into confirm_password.
func toSnake(name string) string {
	var b strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}
