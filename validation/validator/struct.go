// Package validator validates request bodies with go-playground/validator
// and reports failures keyed by JSON field name.
package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/ncobase/taskboard/ecode"
	"github.com/ncobase/taskboard/structs"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonName)
	_ = validate.RegisterValidation("notblank", notBlank)
	_ = validate.RegisterValidation("status", validStatus)
}

// errorMessages maps validation tags to messages. %s is the JSON field
// name, a second %s the tag parameter.
var errorMessages = map[string]string{
	"status": structs.StatusMessage,
	"max":      "%s must be at most %s characters",
	"min":      "%s must be at least %s characters",
}

func jsonName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

// notBlank rejects strings that are empty after trimming.
func notBlank(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return !field.IsZero()
	}
	return strings.TrimSpace(field.String()) != ""
}

func validStatus(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}
	_, err := structs.ParseStatus(fl.Field().String())
	return err == nil
}

// parseMessage constructs a friendly error message based on the validation tag.
func parseMessage(field string, e validator.FieldError) string {
	switch e.Tag() {
	case "required", "notblank":
		return ecode.FieldIsRequired(field)
	}
	if msg, ok := errorMessages[e.Tag()]; ok {
		switch strings.Count(msg, "%s") {
		case 0:
			return msg
		case 1:
			return fmt.Sprintf(msg, field)
		default:
			return fmt.Sprintf(msg, field, e.Param())
		}
	}
	return ecode.FieldIsInvalid(field)
}

// ValidateStruct validates a struct and returns a map of JSON field names to
// friendly error messages. The map is empty when s is valid.
func ValidateStruct(s any) map[string]string {
	validationErrors := make(map[string]string)

	err := validate.Struct(s)
	if err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			for _, e := range validationErrs {
				validationErrors[e.Field()] = parseMessage(e.Field(), e)
			}
		}
	}

	return validationErrors
}

// Var validates a single value against tag, returning the message for the
// first failing rule or "".
func Var(field string, value any, tag string) string {
	err := validate.Var(value, tag)
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		return parseMessage(field, validationErrs[0])
	}
	return ""
}
