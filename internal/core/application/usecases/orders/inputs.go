// Package orders contains the lab order use cases: create, get, list and state changes.
// Each use case is a handler whose Handle method is run by a usecase.Runner.
package orders

import (
	"fmt"
	"strings"

	"laborders/internal/core/domain/model/order"
	"laborders/internal/pkg/schema"

	"github.com/getkin/kin-openapi/openapi3"
)

const (
	DefaultPage    = 1
	DefaultPerPage = 50

	// MaxPage and MaxPerPage bound the list offset so it always fits an int32.
	MaxPage    = 1_000_000
	MaxPerPage = 100
)

// ServiceInput is one requested service of a new order.
type ServiceInput struct {
	Name   string  `json:"name"`
	Value  float64 `json:"value"`
	Status string  `json:"status,omitempty"`
}

// CreateInput is the payload of a new order.
type CreateInput struct {
	Lab      string         `json:"lab"`
	Patient  string         `json:"patient"`
	Customer string         `json:"customer"`
	Services []ServiceInput `json:"services"`
}

// PatchStateInput is the payload of a state change.
type PatchStateInput struct {
	State string `json:"state"`
}

// ListInput holds the list query. State is optional and unknown values are ignored.
type ListInput struct {
	Page    int
	PerPage int
	State   string
}

// Normalize replaces a page or perPage below 1 with its default and clamps
// values above MaxPage and MaxPerPage.
func (in ListInput) Normalize() ListInput {
	switch {
	case in.Page < 1:
		in.Page = DefaultPage
	case in.Page > MaxPage:
		in.Page = MaxPage
	}
	switch {
	case in.PerPage < 1:
		in.PerPage = DefaultPerPage
	case in.PerPage > MaxPerPage:
		in.PerPage = MaxPerPage
	}
	return in
}

// CreateSchema validates CreateInput payloads.
func CreateSchema() *schema.Shape[CreateInput] {
	service := schema.Closed(openapi3.NewObjectSchema().
		WithProperty("name", openapi3.NewStringSchema().WithMinLength(3)).
		WithProperty("value", openapi3.NewFloat64Schema().WithMin(1)).
		WithProperty("status", openapi3.NewStringSchema().WithEnum("PENDING", "DONE")).
		WithRequired([]string{"name", "value"}))

	return schema.NewShape[CreateInput](
		schema.Closed(openapi3.NewObjectSchema().
			WithProperty("lab", openapi3.NewStringSchema().WithMinLength(3)).
			WithProperty("patient", openapi3.NewStringSchema().WithMinLength(3)).
			WithProperty("customer", openapi3.NewStringSchema().WithMinLength(3)).
			WithProperty("services", openapi3.NewArraySchema().WithItems(service).WithMinItems(1)).
			WithRequired([]string{"lab", "patient", "customer", "services"})),
		schema.WithMessage("lab", "lab is required and must have at least 3 characters"),
		schema.WithMessage("patient", "patient is required and must have at least 3 characters"),
		schema.WithMessage("customer", "customer is required and must have at least 3 characters"),
		schema.WithMessage("services", "at least one service is required"),
		schema.WithMessage("services.*.name", "service name is required and must have at least 3 characters"),
		schema.WithMessage("services.*.value", "service value is required and must be greater than or equal to 1"),
		schema.WithMessage("services.*.status", "service status must be one of: PENDING, DONE"),
	)
}

// PatchStateSchema validates PatchStateInput payloads.
func PatchStateSchema() *schema.Shape[PatchStateInput] {
	names := order.StateNames()
	enum := make([]any, 0, len(names))
	for _, name := range names {
		enum = append(enum, name)
	}

	return schema.NewShape[PatchStateInput](
		schema.Closed(openapi3.NewObjectSchema().
			WithProperty("state", openapi3.NewStringSchema().WithEnum(enum...)).
			WithRequired([]string{"state"})),
		schema.WithMessage("state", fmt.Sprintf("state must be one of: %s", strings.Join(names, ", "))),
	)
}
