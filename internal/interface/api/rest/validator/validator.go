package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"users-api/internal/interface/api/rest/dto/user"
)

const (
	fieldEmail    = "email"
	fieldName     = "name"
	fieldPassword = "password"
	fieldID       = "id"
)

var validate = newValidate()

// ValidationError holds every field message found, in field order.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}

// Messages returns the messages carried by err when it is a *ValidationError.
func Messages(err error) []string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Messages
	}
	return nil
}

// Join merges the messages of the given validation errors, preserving order.
// Nil errors are skipped; the result is nil when nothing failed.
func Join(errs ...error) error {
	var msgs []string
	for _, err := range errs {
		if err == nil {
			continue
		}
		if m := Messages(err); m != nil {
			msgs = append(msgs, m...)
			continue
		}
		msgs = append(msgs, err.Error())
	}
	if len(msgs) == 0 {
		return nil
	}

	return &ValidationError{Messages: msgs}
}

func newValidate() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

func ValidateEmail(s string) error {
	return checkVar(fieldEmail, s, "email")
}

// ValidateName accepts ASCII letters only.
func ValidateName(s string) error {
	return checkVar(fieldName, s, "alpha")
}

func ValidatePassword(s string) error {
	return checkVar(fieldPassword, s, "min=6")
}

// ValidateID checks that s is a version 4 UUID and returns it parsed.
func ValidateID(s string) (uuid.UUID, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if err := checkVar(fieldID, s, "uuid4"); err != nil {
		return uuid.Nil, err
	}

	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, &ValidationError{Messages: []string{message(fieldID, "uuid4", "")}}
	}

	return id, nil
}

func ValidateCreate(r user.CreateRequest) error {
	return checkStruct(r)
}

func ValidateUpdate(r user.UpdateRequest) error {
	return checkStruct(r)
}

func checkVar(field string, value any, tag string) error {
	err := validate.Var(value, tag)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return &ValidationError{Messages: []string{fmt.Sprintf("%s is invalid", field)}}
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, message(field, fe.Tag(), fe.Param()))
	}

	return &ValidationError{Messages: msgs}
}

func checkStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return &ValidationError{Messages: []string{err.Error()}}
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, message(fe.Field(), fe.Tag(), fe.Param()))
	}

	return &ValidationError{Messages: msgs}
}

func message(field, tag, param string) string {
	switch tag {
	case "required":
		return field + " should not be empty"
	case "email":
		return field + " must be an email"
	case "alpha":
		return field + " must contain only letters (a-zA-Z)"
	case "min":
		return fmt.Sprintf("%s must be longer than or equal to %s characters", field, param)
	case "uuid4":
		return field + " must be a UUID"
	default:
		return field + " is invalid"
	}
}
