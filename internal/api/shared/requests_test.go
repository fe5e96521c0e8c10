package shared

import (
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Title  string  `json:"title"  validate:"required"`
	Note   *string `json:"note"`
	Done   *bool   `json:"done"`
	Hidden string  `json:"-"`
}

func decode(t *testing.T, body string) (sampleRequest, error) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/tasks", strings.NewReader(body))
	var v sampleRequest
	err := DecodeJSON(req, &v)
	return v, err
}

func TestDecodeJSON(t *testing.T) {
	v, err := decode(t, `{"title":"Buy milk","done":true}`)
	require.NoError(t, err)
	assert.Equal(t, "Buy milk", v.Title)
	require.NotNil(t, v.Done)
	assert.True(t, *v.Done)
	assert.Nil(t, v.Note)

	_, err = decode(t, "")
	assert.ErrorIs(t, err, ErrEmptyBody)

	req := httptest.NewRequest(http.MethodPost, "/tasks", nil)
	req.Body = nil
	assert.ErrorIs(t, DecodeJSON(req, &v), ErrEmptyBody)
}

func TestDecodeJSON_ExactKeys(t *testing.T) {
	v, err := decode(t, `{"Title":"wrong","title":"right","DONE":true,"extra":1}`)
	require.NoError(t, err)
	assert.Equal(t, "right", v.Title)
	assert.Nil(t, v.Done, "case-folded key must not set the field")

	v, err = decode(t, `{"Hidden":"x","title":"t"}`)
	require.NoError(t, err)
	assert.Empty(t, v.Hidden)
}

func TestDecodeJSON_SingleValue(t *testing.T) {
	_, err := decode(t, "{\"title\":\"a\"}\n  \n")
	assert.NoError(t, err, "trailing whitespace is allowed")

	_, err = decode(t, `{"title":"a"}{}`)
	assert.ErrorIs(t, err, ErrTrailingData)
}

func TestJSONFieldNames(t *testing.T) {
	names := jsonFieldNames(reflect.TypeOf(&sampleRequest{}))
	assert.Equal(t, map[string]struct{}{"title": {}, "note": {}, "done": {}}, names)
	assert.Nil(t, jsonFieldNames(reflect.TypeOf(map[string]int{})))
}

func TestValidateRequest(t *testing.T) {
	assert.NoError(t, ValidateRequest(&sampleRequest{Title: "x"}))
	assert.Error(t, ValidateRequest(&sampleRequest{}))
}

type selfValidating struct{ ok bool }

func (s selfValidating) Validate() error {
	if s.ok {
		return nil
	}
	return assert.AnError
}

func TestValidateRequest_UsesValidateMethod(t *testing.T) {
	assert.NoError(t, ValidateRequest(selfValidating{ok: true}))
	assert.Equal(t, assert.AnError, ValidateRequest(selfValidating{}))
}

func TestBodyFieldErrors(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected []FieldError
	}{
		{
			name:     "empty body",
			body:     "",
			expected: []FieldError{{Loc: []string{"body"}, Msg: "Field required", Type: "missing"}},
		},
		{
			name:     "malformed json",
			body:     `{"title": "x",}`,
			expected: []FieldError{{Loc: []string{"body"}, Msg: "JSON decode error", Type: "json_invalid"}},
		},
		{
			name:     "truncated json",
			body:     `{"title": `,
			expected: []FieldError{{Loc: []string{"body"}, Msg: "JSON decode error", Type: "json_invalid"}},
		},
		{
			name:     "not an object",
			body:     `["title"]`,
			expected: []FieldError{{Loc: []string{"body"}, Msg: "Input should be a valid object", Type: "object_type"}},
		},
		{
			name:     "wrong string type",
			body:     `{"title": 12}`,
			expected: []FieldError{{Loc: []string{"body", "title"}, Msg: "Input should be a valid string", Type: "string_type"}},
		},
		{
			name:     "wrong bool type",
			body:     `{"title": "x", "done": "yes"}`,
			expected: []FieldError{{Loc: []string{"body", "done"}, Msg: "Input should be a valid boolean", Type: "boolean_type"}},
		},
		{
			name:     "missing title",
			body:     `{}`,
			expected: []FieldError{{Loc: []string{"body", "title"}, Msg: "Field required", Type: "missing"}},
		},
		{
			name:     "trailing garbage",
			body:     `{"title": "a"} garbage`,
			expected: []FieldError{{Loc: []string{"body"}, Msg: "JSON decode error", Type: "json_invalid"}},
		},
		{
			name:     "second json value",
			body:     `{"title": "a"} {"title": "b"}`,
			expected: []FieldError{{Loc: []string{"body"}, Msg: "JSON decode error", Type: "json_invalid"}},
		},
		{
			name:     "title key with wrong case",
			body:     `{"TITLE": "case"}`,
			expected: []FieldError{{Loc: []string{"body", "title"}, Msg: "Field required", Type: "missing"}},
		},
		{
			name:     "null title",
			body:     `{"title": null}`,
			expected: []FieldError{{Loc: []string{"body", "title"}, Msg: "Field required", Type: "missing"}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v, err := decode(t, tc.body)
			if err == nil {
				err = ValidateRequest(&v)
			}
			require.Error(t, err)
			assert.Equal(t, tc.expected, BodyFieldErrors(err))
		})
	}
}

func TestBodyFieldErrors_Unknown(t *testing.T) {
	assert.Nil(t, BodyFieldErrors(assert.AnError))
}

func TestTypeKind(t *testing.T) {
	tests := []struct {
		value    interface{}
		expected string
	}{
		{int64(0), "integer"},
		{float64(0), "number"},
		{new(string), "string"},
		{false, "boolean"},
		{[]string{}, "list"},
		{map[string]int{}, "object"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, typeKind(reflect.TypeOf(tc.value)))
	}
}
