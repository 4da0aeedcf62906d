// Package usecase runs domain actions through a uniform pipeline:
// input validation, a single action call and conversion of every failure into an *errs.Error.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"strings"

	"laborders/internal/core/domain/model/kernel"
	"laborders/internal/pkg/errs"
	"laborders/internal/pkg/schema"
)

var (
	ErrActionIsRequired        = errors.New("action is required")
	ErrNameIsRequired          = errors.New("name is required")
	ErrFallbackKindNotInternal = errors.New("fallback kind must be an internal kind")
	ErrFallbackLabelIsRequired = errors.New("fallback label is required")
)

// Identity carries who is calling and what they address.
// UserID is the zero UUID for unauthenticated calls.
// ResourceID is the raw path identifier; actions validate its shape.
type Identity struct {
	UserID     kernel.UUID
	ResourceID string
}

// Action is the domain logic of a use case.
// Returning an *errs.Error (or wrapping one) reports an expected failure;
// any other error is treated as an unexpected fault.
type Action[I, O any] func(ctx context.Context, identity Identity, input I) (O, error)

// Config describes a use case.
type Config[I, O any] struct {
	Name string
	// Schema is optional; without it the raw input must already be an I.
	Schema        schema.Validator[I]
	FallbackKind  errs.Kind
	FallbackLabel string
	Action        Action[I, O]
	Logger        *slog.Logger
}

// Executor is what inbound adapters depend on.
type Executor[O any] interface {
	Execute(ctx context.Context, identity Identity, raw any) Result[O]
}

// Runner executes one use case. It is safe for concurrent use and holds no state
// between executions.
type Runner[I, O any] struct {
	schema        schema.Validator[I]
	fallbackKind  errs.Kind
	fallbackLabel string
	action        Action[I, O]
	logger        *slog.Logger
}

// NewRunner validates the configuration and builds a Runner.
func NewRunner[I, O any](cfg Config[I, O]) (*Runner[I, O], error) {
	var problems []error
	if cfg.Name == "" {
		problems = append(problems, ErrNameIsRequired)
	}
	if cfg.Action == nil {
		problems = append(problems, ErrActionIsRequired)
	}
	if !cfg.FallbackKind.IsInternal() {
		problems = append(problems, fmt.Errorf("%w: %s", ErrFallbackKindNotInternal, cfg.FallbackKind))
	}
	if cfg.FallbackLabel == "" {
		problems = append(problems, ErrFallbackLabelIsRequired)
	}
	if err := errors.Join(problems...); err != nil {
		return nil, fmt.Errorf("use case %q: %w", cfg.Name, err)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Runner[I, O]{
		schema:        cfg.Schema,
		fallbackKind:  cfg.FallbackKind,
		fallbackLabel: cfg.FallbackLabel,
		action:        cfg.Action,
		logger:        logger.With("component", "usecase", "usecase", cfg.Name),
	}, nil
}

// Execute validates raw, invokes the action once and classifies the outcome.
// It never panics: action panics are recovered and reported as the fallback fault.
func (r *Runner[I, O]) Execute(ctx context.Context, identity Identity, raw any) Result[O] {
	input, failure := r.parse(raw)
	if failure != nil {
		r.logger.DebugContext(ctx, "input rejected", "violations", len(failure.Violations()))
		return Failure[O](failure)
	}

	out, err := r.invoke(ctx, identity, input)
	if err == nil {
		return Success(out)
	}

	if domainErr, ok := errs.As(err); ok {
		r.logger.DebugContext(ctx, "use case failed", "kind", domainErr.Kind().String(), "error", domainErr.Message())
		return Failure[O](domainErr)
	}

	fault := errs.NewFaultError(r.fallbackKind, r.fallbackLabel, err)
	r.logger.ErrorContext(ctx, "unexpected use case failure",
		"kind", fault.Kind().String(),
		"error", err,
	)
	return Failure[O](fault)
}

func (r *Runner[I, O]) parse(raw any) (I, *errs.Error) {
	if r.schema != nil {
		input, violations := r.schema.Validate(raw)
		if len(violations) > 0 {
			return input, errs.NewInvalidInputError(describe(violations), violations...)
		}
		return input, nil
	}

	input, ok := raw.(I)
	if !ok {
		violation := errs.FieldViolation{
			Field:   schema.BodyField,
			Message: fmt.Sprintf("unexpected input of type %T", raw),
		}
		return input, errs.NewInvalidInputError(describe([]errs.FieldViolation{violation}), violation)
	}
	return input, nil
}

// describe joins violations as "field: message; field: message".
func describe(violations []errs.FieldViolation) string {
	parts := make([]string, 0, len(violations))
	for _, v := range violations {
		parts = append(parts, v.Field+": "+v.Message)
	}
	return strings.Join(parts, "; ")
}

func (r *Runner[I, O]) invoke(ctx context.Context, identity Identity, input I) (out O, err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			r.logger.ErrorContext(ctx, "use case panicked", "panic", recovered, "stack", string(debug.Stack()))
			err = fmt.Errorf("panic: %v", recovered)
		}
	}()
	return r.action(ctx, identity, input)
}
