package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/shared/apperr"
)

type FieldErrors map[string]string

// FromBindError maps a bind/validation error to field->message, keyed by
// the json tag of dst (a struct pointer).
func FromBindError(err error, dst any) FieldErrors {
	out := FieldErrors{}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			key := fieldKey(dst, fe.StructField())
			out[key] = messageForTag(fe.Tag(), fe.Param())
		}
		return out
	}

	// malformed JSON, type mismatch
	out["_"] = "The request body is invalid."
	return out
}

// BindError wraps FromBindError into an Invalid AppError.
func BindError(err error, dst any) *apperr.AppError {
	return &apperr.AppError{
		Kind:      apperr.Invalid,
		PublicMsg: "Please check the submitted data.",
		Fields:    FromBindError(err, dst),
		Err:       err,
	}
}

func fieldKey(dst any, structField string) string {
	t := reflect.TypeOf(dst)
	if t == nil {
		return strings.ToLower(structField)
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return strings.ToLower(structField)
	}

	f, ok := t.FieldByName(structField)
	if !ok {
		return strings.ToLower(structField)
	}
	tag := f.Tag.Get("json")
	if i := strings.Index(tag, ","); i >= 0 {
		tag = tag[:i]
	}
	if tag == "" || tag == "-" {
		return strings.ToLower(structField)
	}
	return tag
}

func messageForTag(tag, param string) string {
	switch tag {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid e-mail address."
	case "min":
		return "Must be at least " + param + "."
	case "max":
		return "Must be at most " + param + "."
	case "gt":
		return "Must be greater than " + param + "."
	case "gte":
		return "Must be " + param + " or more."
	case "lte":
		return "Must be " + param + " or less."
	case "oneof":
		return "Must be one of: " + param + "."
	case "url":
		return "Enter a valid URL."
	default:
		return "Invalid value."
	}
}
