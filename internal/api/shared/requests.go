package shared

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validate is the shared validator instance. Field names in its errors are
// the JSON names, not the Go names.
var Validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ErrEmptyBody is returned by DecodeJSON when the request has no body.
var ErrEmptyBody = errors.New("request body is empty")

// ErrTrailingData is returned by DecodeJSON when the body holds more than
// one JSON value.
var ErrTrailingData = errors.New("unexpected data after JSON value")

// DecodeJSON decodes the request body into the given struct.
//
// Object keys must match the struct's json names exactly; keys that differ
// (including by case only) are ignored rather than folded onto a field.
// The body must contain exactly one JSON value.
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return ErrEmptyBody
	}

	dec := json.NewDecoder(r.Body)

	var raw json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyBody
		}
		return err
	}

	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		if err != nil {
			return err
		}
		return ErrTrailingData
	}

	raw, err := keepExactKeys(raw, v)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, v)
}

// keepExactKeys drops object keys that are not an exact json name of v's
// struct fields. Bodies that are not objects, and targets that are not
// structs, pass through unchanged.
func keepExactKeys(raw json.RawMessage, v interface{}) (json.RawMessage, error) {
	names := jsonFieldNames(reflect.TypeOf(v))
	if names == nil {
		return raw, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		// Not an object; let the real decode report the type error.
		return raw, nil
	}

	dropped := false
	for key := range fields {
		if _, ok := names[key]; !ok {
			delete(fields, key)
			dropped = true
		}
	}
	if !dropped {
		return raw, nil
	}
	return json.Marshal(fields)
}

// jsonFieldNames returns the json names of the top-level fields of t, which
// must be a struct or a pointer to one. It returns nil for any other type.
func jsonFieldNames(t reflect.Type) map[string]struct{} {
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil
	}

	names := make(map[string]struct{}, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		fld := t.Field(i)
		if !fld.IsExported() {
			continue
		}
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		switch name {
		case "-":
			continue
		case "":
			name = fld.Name
		}
		names[name] = struct{}{}
	}
	return names
}

// ValidateRequest validates the given struct using the validator package.
func ValidateRequest(v interface{}) error {
	if validator, ok := v.(interface{ Validate() error }); ok {
		return validator.Validate()
	}
	return Validate.Struct(v)
}

// BodyFieldErrors converts an error from DecodeJSON or ValidateRequest into
// field-level details located under "body". It returns nil for errors it
// does not recognize.
func BodyFieldErrors(err error) []FieldError {
	var (
		syntaxErr      *json.SyntaxError
		typeErr        *json.UnmarshalTypeError
		validationErrs validator.ValidationErrors
	)

	switch {
	case errors.Is(err, ErrEmptyBody):
		return []FieldError{{Loc: []string{"body"}, Msg: "Field required", Type: "missing"}}

	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF), errors.Is(err, ErrTrailingData):
		return []FieldError{{Loc: []string{"body"}, Msg: "JSON decode error", Type: "json_invalid"}}

	case errors.As(err, &typeErr):
		if typeErr.Field == "" {
			return []FieldError{{Loc: []string{"body"}, Msg: "Input should be a valid object", Type: "object_type"}}
		}
		loc := append([]string{"body"}, strings.Split(typeErr.Field, ".")...)
		kind := typeKind(typeErr.Type)
		return []FieldError{{
			Loc:  loc,
			Msg:  fmt.Sprintf("Input should be a valid %s", kind),
			Type: kind + "_type",
		}}

	case errors.As(err, &validationErrs):
		details := make([]FieldError, 0, len(validationErrs))
		for _, fe := range validationErrs {
			details = append(details, FieldError{
				Loc:  []string{"body", fe.Field()},
				Msg:  tagMessage(fe.Tag()),
				Type: tagType(fe.Tag()),
			})
		}
		return details
	}

	return nil
}

// typeKind names the JSON kind expected by a Go type.
func typeKind(t reflect.Type) string {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Slice, reflect.Array:
		return "list"
	default:
		return "object"
	}
}

func tagMessage(tag string) string {
	switch tag {
	case "required":
		return "Field required"
	case "min":
		return "Value is too short"
	case "max":
		return "Value is too long"
	case "oneof":
		return "Input is not an allowed value"
	default:
		return "Value failed validation"
	}
}

func tagType(tag string) string {
	if tag == "required" {
		return "missing"
	}
	return "value_error"
}
