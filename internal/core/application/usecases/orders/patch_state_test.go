package orders_test

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"laborders/internal/core/application/usecase"
	"laborders/internal/core/application/usecases/orders"
	"laborders/internal/core/domain/model/order"
	"laborders/internal/core/ports"
	"laborders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRunners(t *testing.T, factory ports.UnitOfWorkFactory, users ports.UserRepository, repo ports.OrderRepository) orders.Runners {
	t.Helper()
	runners, err := orders.NewRunners(factory, users, repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	return runners
}

func TestPatchState_AdvancesOnce(t *testing.T) {
	ctx := t.Context()
	current := newOrder(newUser(), order.Created, order.Active)
	updated := withState(current, order.Analysis)

	repo := new(MockOrderRepository)
	repo.On("Get", ctx, current.ID()).Return(current, nil).Once()
	repo.On("UpdateState", ctx, current.ID(), order.Created, order.Analysis).Return(updated, nil).Once()

	runners := newRunners(t, new(MockUoWFactory), new(MockUserRepository), repo)
	result := runners.PatchState.Execute(ctx, usecase.Identity{ResourceID: current.ID().String()}, map[string]any{"state": "ANALYSIS"})

	require.True(t, result.IsSuccess())
	assert.Same(t, updated, result.Value())
	repo.AssertExpectations(t)
	repo.AssertNumberOfCalls(t, "UpdateState", 1)
}

func TestPatchState_SameStateNeverWrites(t *testing.T) {
	for _, state := range order.States() {
		t.Run(state.String(), func(t *testing.T) {
			ctx := t.Context()
			current := newOrder(newUser(), state, order.Active)

			repo := new(MockOrderRepository)
			repo.On("Get", ctx, current.ID()).Return(current, nil).Once()

			runners := newRunners(t, new(MockUoWFactory), new(MockUserRepository), repo)
			result := runners.PatchState.Execute(ctx, usecase.Identity{ResourceID: current.ID().String()}, map[string]any{"state": state.String()})

			require.True(t, result.IsSuccess())
			assert.Same(t, current, result.Value())
			repo.AssertNotCalled(t, "UpdateState", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestPatchState_MalformedIDNeverQueriesStorage(t *testing.T) {
	repo := new(MockOrderRepository)
	runners := newRunners(t, new(MockUoWFactory), new(MockUserRepository), repo)

	result := runners.PatchState.Execute(t.Context(), usecase.Identity{ResourceID: "not-an-id"}, map[string]any{"state": "ANALYSIS"})

	require.False(t, result.IsSuccess())
	assert.Equal(t, errs.Unprocessable, result.Err().Kind())
	repo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "UpdateState", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPatchState_MissingOrder(t *testing.T) {
	ctx := t.Context()
	missing := newOrder(newUser(), order.Created, order.Active).ID()

	repo := new(MockOrderRepository)
	repo.On("Get", ctx, missing).Return(nil, nil).Once()

	runners := newRunners(t, new(MockUoWFactory), new(MockUserRepository), repo)
	result := runners.PatchState.Execute(ctx, usecase.Identity{ResourceID: missing.String()}, map[string]any{"state": "ANALYSIS"})

	require.False(t, result.IsSuccess())
	assert.Equal(t, errs.NotFound, result.Err().Kind())
	assert.Equal(t, "order not found", result.Err().Message())
}

func TestPatchState_Rejections(t *testing.T) {
	testCases := []struct {
		name      string
		current   order.State
		requested string
		contains  string
	}{
		{"completed back to analysis", order.Completed, "ANALYSIS", "moving backwards"},
		{"analysis back to created", order.Analysis, "CREATED", "moving backwards"},
		{"created straight to completed", order.Created, "COMPLETED", "skipping steps"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := t.Context()
			current := newOrder(newUser(), tc.current, order.Active)

			repo := new(MockOrderRepository)
			repo.On("Get", ctx, current.ID()).Return(current, nil).Once()

			runners := newRunners(t, new(MockUoWFactory), new(MockUserRepository), repo)
			result := runners.PatchState.Execute(ctx, usecase.Identity{ResourceID: current.ID().String()}, map[string]any{"state": tc.requested})

			require.False(t, result.IsSuccess())
			assert.Equal(t, errs.InvalidInput, result.Err().Kind())
			assert.Contains(t, result.Err().Message(), tc.contains)
			repo.AssertNotCalled(t, "UpdateState", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestPatchState_SchemaFailures(t *testing.T) {
	testCases := []struct {
		name  string
		input any
	}{
		{"unknown state", map[string]any{"state": "DELETED"}},
		{"missing state", map[string]any{}},
		{"extra property", map[string]any{"state": "ANALYSIS", "status": "DELETED"}},
		{"not an object", []any{"ANALYSIS"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := new(MockOrderRepository)
			runners := newRunners(t, new(MockUoWFactory), new(MockUserRepository), repo)

			result := runners.PatchState.Execute(t.Context(), usecase.Identity{ResourceID: "not-an-id"}, tc.input)

			require.False(t, result.IsSuccess())
			assert.Equal(t, errs.InvalidInput, result.Err().Kind())
			assert.NotEmpty(t, result.Err().Violations())
			repo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
		})
	}
}

func TestPatchState_DeletedOrderIsUnprocessable(t *testing.T) {
	ctx := t.Context()
	current := newOrder(newUser(), order.Created, order.Deleted)

	repo := new(MockOrderRepository)
	repo.On("Get", ctx, current.ID()).Return(current, nil).Once()

	runners := newRunners(t, new(MockUoWFactory), new(MockUserRepository), repo)
	result := runners.PatchState.Execute(ctx, usecase.Identity{ResourceID: current.ID().String()}, map[string]any{"state": "ANALYSIS"})

	require.False(t, result.IsSuccess())
	assert.Equal(t, errs.Unprocessable, result.Err().Kind())
	repo.AssertNotCalled(t, "UpdateState", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPatchState_LostRaceIsConflict(t *testing.T) {
	ctx := t.Context()
	current := newOrder(newUser(), order.Analysis, order.Active)

	repo := new(MockOrderRepository)
	repo.On("Get", ctx, current.ID()).Return(current, nil).Once()
	repo.On("UpdateState", ctx, current.ID(), order.Analysis, order.Completed).Return(nil, ports.ErrStaleState).Once()

	runners := newRunners(t, new(MockUoWFactory), new(MockUserRepository), repo)
	result := runners.PatchState.Execute(ctx, usecase.Identity{ResourceID: current.ID().String()}, map[string]any{"state": "COMPLETED"})

	require.False(t, result.IsSuccess())
	assert.Equal(t, errs.Conflict, result.Err().Kind())
}

func TestPatchState_StorageFaults(t *testing.T) {
	t.Run("lookup failure", func(t *testing.T) {
		ctx := t.Context()
		current := newOrder(newUser(), order.Created, order.Active)

		repo := new(MockOrderRepository)
		repo.On("Get", ctx, current.ID()).Return(nil, errors.New("connection refused")).Once()

		runners := newRunners(t, new(MockUoWFactory), new(MockUserRepository), repo)
		result := runners.PatchState.Execute(ctx, usecase.Identity{ResourceID: current.ID().String()}, map[string]any{"state": "ANALYSIS"})

		require.False(t, result.IsSuccess())
		assert.Equal(t, errs.UpdateFailed, result.Err().Kind())
		assert.Equal(t, "failed to update order state", result.Err().PublicMessage())
	})

	t.Run("update failure", func(t *testing.T) {
		ctx := t.Context()
		current := newOrder(newUser(), order.Created, order.Active)

		repo := new(MockOrderRepository)
		repo.On("Get", ctx, current.ID()).Return(current, nil).Once()
		repo.On("UpdateState", ctx, current.ID(), order.Created, order.Analysis).Return(nil, errors.New("deadlock")).Once()

		runners := newRunners(t, new(MockUoWFactory), new(MockUserRepository), repo)
		result := runners.PatchState.Execute(ctx, usecase.Identity{ResourceID: current.ID().String()}, map[string]any{"state": "ANALYSIS"})

		require.False(t, result.IsSuccess())
		assert.Equal(t, errs.UpdateFailed, result.Err().Kind())
		assert.Contains(t, result.Err().Message(), "deadlock")
	})
}
