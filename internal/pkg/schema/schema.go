// Package schema validates decoded JSON payloads against kin-openapi schemas and
// reports every failed constraint as an ordered list of field violations.
package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"laborders/internal/pkg/errs"

	"github.com/getkin/kin-openapi/openapi3"
)

// BodyField names violations that do not belong to a specific field.
const BodyField = "body"

var propertyReason = regexp.MustCompile(`^property "([^"]+)" is (missing|unsupported)$`)

// Validator checks a raw payload and decodes it into T.
// On failure the returned violations are non-empty and T is the zero value.
type Validator[T any] interface {
	Validate(raw any) (T, []errs.FieldViolation)
}

// Option customizes a Shape.
type Option func(*options)

type options struct {
	messages map[string]string
}

// WithMessage replaces the default message of every violation on field.
// Array indexes in field are written as "*", e.g. "services.*.value".
func WithMessage(field, message string) Option {
	return func(o *options) {
		o.messages[field] = message
	}
}

// Shape is a Validator backed by an openapi3.Schema.
//
// Example:
//
//	credentials := schema.NewShape[LoginInput](
//	    openapi3.NewObjectSchema().
//	        WithProperty("email", openapi3.NewStringSchema()).
//	        WithRequired([]string{"email"}),
//	)
//	input, violations := credentials.Validate(body)
type Shape[T any] struct {
	schema   *openapi3.Schema
	messages map[string]string
}

// NewShape creates a Shape that validates against s.
func NewShape[T any](s *openapi3.Schema, opts ...Option) *Shape[T] {
	o := options{messages: map[string]string{}}
	for _, opt := range opts {
		opt(&o)
	}
	return &Shape[T]{schema: s, messages: o.messages}
}

// Closed forbids properties that s does not declare and returns s.
func Closed(s *openapi3.Schema) *openapi3.Schema {
	s.AdditionalProperties = openapi3.AdditionalProperties{Has: openapi3.BoolPtr(false)}
	return s
}

// Validate normalizes raw into plain JSON values, drops null object members,
// visits the schema collecting every error and decodes the value into T on success.
// raw may be a decoded JSON value, a struct, json.RawMessage or []byte.
func (s *Shape[T]) Validate(raw any) (T, []errs.FieldViolation) {
	var zero T

	value, err := normalize(raw)
	if err != nil {
		return zero, []errs.FieldViolation{{Field: BodyField, Message: "body must be valid JSON"}}
	}

	if err = s.schema.VisitJSON(value, openapi3.MultiErrors()); err != nil {
		return zero, s.violations(err)
	}

	payload, err := json.Marshal(value)
	if err != nil {
		return zero, []errs.FieldViolation{{Field: BodyField, Message: err.Error()}}
	}

	var out T
	decoder := json.NewDecoder(bytes.NewReader(payload))
	if err = decoder.Decode(&out); err != nil {
		return zero, []errs.FieldViolation{{Field: BodyField, Message: err.Error()}}
	}
	return out, nil
}

func (s *Shape[T]) violations(err error) []errs.FieldViolation {
	var out []errs.FieldViolation
	flatten(err, func(field, message string) {
		if custom, ok := s.messages[pattern(field)]; ok {
			message = custom
		}
		out = append(out, errs.FieldViolation{Field: field, Message: message})
	})

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Field != out[j].Field {
			return out[i].Field < out[j].Field
		}
		return out[i].Message < out[j].Message
	})

	deduped := out[:0]
	for i, v := range out {
		if i > 0 && v == out[i-1] {
			continue
		}
		deduped = append(deduped, v)
	}
	return deduped
}

func flatten(err error, emit func(field, message string)) {
	switch e := err.(type) {
	case openapi3.MultiError:
		for _, inner := range e {
			flatten(inner, emit)
		}
	case *openapi3.SchemaError:
		path := e.JSONPointer()
		if m := propertyReason.FindStringSubmatch(e.Reason); m != nil {
			if len(path) == 0 || path[len(path)-1] != m[1] {
				path = append(path, m[1])
			}
		}
		field := strings.Join(path, ".")
		if field == "" {
			field = BodyField
		}
		message := e.Reason
		if message == "" {
			message = e.Error()
		}
		emit(field, message)
	default:
		var schemaErr *openapi3.SchemaError
		if errors.As(err, &schemaErr) {
			flatten(schemaErr, emit)
			return
		}
		emit(BodyField, err.Error())
	}
}

// pattern replaces array indexes with "*".
func pattern(field string) string {
	parts := strings.Split(field, ".")
	for i, part := range parts {
		if _, err := strconv.Atoi(part); err == nil {
			parts[i] = "*"
		}
	}
	return strings.Join(parts, ".")
}

func normalize(raw any) (any, error) {
	var payload []byte
	switch v := raw.(type) {
	case []byte:
		payload = v
	case json.RawMessage:
		payload = v
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		payload = encoded
	}

	var value any
	if err := json.Unmarshal(payload, &value); err != nil {
		return nil, err
	}
	return StripNulls(value), nil
}

// StripNulls removes object members whose value is null, recursively.
// Array elements are kept as they are positional.
func StripNulls(value any) any {
	switch v := value.(type) {
	case map[string]any:
		for key, member := range v {
			if member == nil {
				delete(v, key)
				continue
			}
			v[key] = StripNulls(member)
		}
		return v
	case []any:
		for i, item := range v {
			v[i] = StripNulls(item)
		}
		return v
	default:
		return value
	}
}
