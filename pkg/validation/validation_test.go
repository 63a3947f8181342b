package validation_test

import (
	"encoding/json"
	"errors"
	"io"
	"strconv"
	"testing"

	"github.com/go-playground/validator/v10"

	"items-fixture-api/pkg/validation"
)

func TestTranslate(t *testing.T) {
	t.Run("Validator Errors", func(t *testing.T) {
		type req struct {
			ID string `validate:"required,number"`
		}

		err := validator.New().Struct(req{ID: "abc"})
		if err == nil {
			t.Fatal("expected a validation error")
		}

		msg, fields := validation.Translate(err)
		if msg != "validation failed" {
			t.Errorf("expected 'validation failed', got %q", msg)
		}
		if len(fields) != 1 {
			t.Fatalf("expected 1 field error, got %d", len(fields))
		}
		if fields[0].Field != "id" {
			t.Errorf("expected field 'id', got %q", fields[0].Field)
		}
		if fields[0].Error != "must be a number" {
			t.Errorf("unexpected message: %q", fields[0].Error)
		}
	})

	t.Run("Required Tag", func(t *testing.T) {
		type req struct {
			Name string `validate:"required"`
		}

		msg, fields := validation.Translate(validator.New().Struct(req{}))
		if msg != "validation failed" {
			t.Errorf("expected 'validation failed', got %q", msg)
		}
		if len(fields) != 1 || fields[0].Error != "is required" {
			t.Errorf("unexpected fields: %v", fields)
		}
	})

	t.Run("JSON Type Mismatch", func(t *testing.T) {
		var payload struct {
			ItemIDs []string `json:"item_ids"`
		}

		err := json.Unmarshal([]byte(`{"item_ids": 5}`), &payload)
		if err == nil {
			t.Fatal("expected an unmarshal error")
		}

		msg, fields := validation.Translate(err)
		if msg != "invalid request body" {
			t.Errorf("expected 'invalid request body', got %q", msg)
		}
		if len(fields) != 1 {
			t.Fatalf("expected 1 field error, got %d", len(fields))
		}
		if fields[0].Field != "item_ids" {
			t.Errorf("expected field 'item_ids', got %q", fields[0].Field)
		}
		if fields[0].Error != "must be an array" {
			t.Errorf("unexpected message: %q", fields[0].Error)
		}
	})

	t.Run("Malformed JSON", func(t *testing.T) {
		var payload map[string]any
		err := json.Unmarshal([]byte(`{bad json`), &payload)

		msg, fields := validation.Translate(err)
		if msg != "invalid JSON" {
			t.Errorf("expected 'invalid JSON', got %q", msg)
		}
		if fields != nil {
			t.Errorf("expected no field errors, got %v", fields)
		}
	})

	t.Run("Non Numeric Path Param", func(t *testing.T) {
		_, err := strconv.Atoi("abc")
		if err == nil {
			t.Fatal("expected a strconv error")
		}

		msg, fields := validation.Translate(err)
		if msg != "invalid path parameter" {
			t.Errorf("expected 'invalid path parameter', got %q", msg)
		}
		if fields != nil {
			t.Errorf("expected no field errors, got %v", fields)
		}
	})

	t.Run("Empty Body", func(t *testing.T) {
		msg, _ := validation.Translate(io.EOF)
		if msg != "request body is required" {
			t.Errorf("expected 'request body is required', got %q", msg)
		}
	})

	t.Run("Unknown Error Passes Through", func(t *testing.T) {
		msg, fields := validation.Translate(errors.New("boom"))
		if msg != "boom" || fields != nil {
			t.Errorf("unexpected translation: %q %v", msg, fields)
		}
	})
}
