package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"laborders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKinds(t *testing.T) {
	t.Run("every listed kind is valid and distinct", func(t *testing.T) {
		seen := map[errs.Kind]bool{}
		for _, kind := range errs.Kinds() {
			assert.True(t, kind.IsValid(), kind.String())
			assert.NotEqual(t, "Unknown", kind.String())
			require.Error(t, kind.Sentinel())
			assert.False(t, seen[kind], "duplicate kind %s", kind)
			seen[kind] = true
		}
		assert.Len(t, seen, 10)
	})

	t.Run("unknown kind is invalid", func(t *testing.T) {
		assert.False(t, errs.Unknown.IsValid())
		assert.False(t, errs.Kind(99).IsValid())
		assert.Equal(t, "Unknown", errs.Kind(99).String())
		require.NoError(t, errs.Unknown.Sentinel())
	})

	t.Run("only fallback kinds are internal", func(t *testing.T) {
		internal := []errs.Kind{errs.CreateFailed, errs.GetFailed, errs.ListFailed, errs.UpdateFailed, errs.LoginFailed}
		client := []errs.Kind{errs.InvalidInput, errs.NotFound, errs.Conflict, errs.Unauthorized, errs.Unprocessable}

		for _, kind := range internal {
			assert.True(t, kind.IsInternal(), kind.String())
		}
		for _, kind := range client {
			assert.False(t, kind.IsInternal(), kind.String())
		}
	})
}

func TestConstructors(t *testing.T) {
	testCases := []struct {
		name     string
		err      *errs.Error
		kind     errs.Kind
		sentinel error
	}{
		{"invalid input", errs.NewInvalidInputError("bad payload"), errs.InvalidInput, errs.ErrInvalidInput},
		{"not found", errs.NewNotFoundError("order not found"), errs.NotFound, errs.ErrNotFound},
		{"conflict", errs.NewConflictError("email already registered"), errs.Conflict, errs.ErrConflict},
		{"unauthorized", errs.NewUnauthorizedError("invalid credentials"), errs.Unauthorized, errs.ErrUnauthorized},
		{"unprocessable", errs.NewUnprocessableError("invalid order id"), errs.Unprocessable, errs.ErrUnprocessable},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.kind, tc.err.Kind())
			require.ErrorIs(t, tc.err, tc.sentinel)
			assert.Equal(t, tc.err.Message(), tc.err.PublicMessage())
			assert.Nil(t, tc.err.Violations())
			require.NoError(t, tc.err.Cause())
		})
	}
}

func TestInvalidInputError_Violations(t *testing.T) {
	violations := []errs.FieldViolation{
		{Field: "lab", Message: "minimum string length is 3"},
		{Field: "services", Message: "minimum number of items is 1"},
	}

	err := errs.NewInvalidInputError("invalid input", violations...)
	violations[0].Message = "mutated"

	got := err.Violations()
	require.Len(t, got, 2)
	assert.Equal(t, "minimum string length is 3", got[0].Message)

	got[1].Field = "mutated"
	assert.Equal(t, "services", err.Violations()[1].Field)
	assert.Equal(t, "invalid input: invalid input", err.Error())
}

func TestFaultError(t *testing.T) {
	t.Run("keeps detail in message and hides it publicly", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := errs.NewFaultError(errs.GetFailed, "failed to get order", cause)

		assert.Equal(t, errs.GetFailed, err.Kind())
		assert.Equal(t, "failed to get order: connection refused", err.Message())
		assert.Equal(t, "failed to get order", err.PublicMessage())
		assert.Equal(t, cause, err.Cause())
		assert.Equal(t, "get failed: failed to get order (cause: connection refused)", err.Error())
		require.ErrorIs(t, err, errs.ErrGetFailed)
	})

	t.Run("coerces client kinds to an internal kind", func(t *testing.T) {
		err := errs.NewFaultError(errs.NotFound, "boom", errors.New("x"))
		assert.True(t, err.Kind().IsInternal())
	})

	t.Run("nil cause keeps the bare label", func(t *testing.T) {
		err := errs.NewFaultError(errs.ListFailed, "failed to list orders", nil)
		assert.Equal(t, "failed to list orders", err.Message())
	})
}

func TestAs(t *testing.T) {
	t.Run("finds wrapped taxonomy errors", func(t *testing.T) {
		original := errs.NewConflictError("order changed concurrently")
		wrapped := fmt.Errorf("patch state: %w", original)

		found, ok := errs.As(wrapped)
		require.True(t, ok)
		assert.Same(t, original, found)
	})

	t.Run("ignores plain errors", func(t *testing.T) {
		_, ok := errs.As(errors.New("plain"))
		assert.False(t, ok)
	})
}

func TestMessagesAreSanitized(t *testing.T) {
	err := errs.NewNotFoundError("order\nnot   found")
	assert.Equal(t, "order not found", err.Message())
	assert.NotContains(t, err.Error(), "\n")
}
