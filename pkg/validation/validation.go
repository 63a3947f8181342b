package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError is a single validation issue on a named field, in the shape the
// response envelope carries under "errors".
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// Translate converts a gin binding error into a client-facing message plus
// per-field details. It understands the two error families gin produces:
// tag validation failures from validator/v10 and JSON decoding errors.
func Translate(err error) (string, []FieldError) {
	var vErrs validator.ValidationErrors
	if errors.As(err, &vErrs) {
		fields := make([]FieldError, 0, len(vErrs))
		for _, fe := range vErrs {
			fields = append(fields, FieldError{
				Field: strings.ToLower(fe.Field()),
				Error: tagMessage(fe),
			})
		}
		return "validation failed", fields
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		return "invalid request body", []FieldError{{
			Field: field,
			Error: typeMessage(typeErr.Type),
		}}
	}

	// URI params bound to numeric fields fail with a bare strconv error.
	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		return "invalid path parameter", nil
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return "invalid JSON", nil
	}

	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return "request body is required", nil
	}

	return err.Error(), nil
}

// tagMessage renders a validator tag failure as a short client message.
func tagMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "number", "numeric":
		return "must be a number"
	case "min":
		if fe.Type().Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Type().Kind() == reflect.String {
			return fmt.Sprintf("must not exceed %s characters", fe.Param())
		}
		return fmt.Sprintf("must not exceed %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	default:
		return "is invalid"
	}
}

// typeMessage renders a JSON type mismatch as the expected shape.
func typeMessage(t reflect.Type) string {
	switch t.Kind() {
	case reflect.Slice, reflect.Array:
		return "must be an array"
	case reflect.String:
		return "must be a string"
	case reflect.Bool:
		return "must be a boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "must be a number"
	case reflect.Map, reflect.Struct:
		return "must be an object"
	default:
		return "is of the wrong type"
	}
}
