package models

import "fmt"

// FieldError is one entry in the "errors" array of a 400 response.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func requireString(errs []FieldError, field string, v *string) []FieldError {
	if v == nil {
		return append(errs, FieldError{Field: field, Message: "Required"})
	}
	return errs
}

func requireEnum(errs []FieldError, field string, v *string, allowed ...string) []FieldError {
	if v == nil {
		return append(errs, FieldError{Field: field, Message: "Required"})
	}
	for _, a := range allowed {
		if *v == a {
			return errs
		}
	}
	return append(errs, FieldError{
		Field:   field,
		Message: fmt.Sprintf("Invalid enum value %q", *v),
	})
}
