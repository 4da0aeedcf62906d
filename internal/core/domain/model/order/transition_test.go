package order_test

import (
	"testing"

	"laborders/internal/core/domain/model/order"
	"laborders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckTransition(t *testing.T) {
	testCases := []struct {
		name      string
		current   order.State
		requested order.State
		outcome   order.TransitionOutcome
		errText   string
	}{
		{"created to created is a no-op", order.Created, order.Created, order.TransitionNoOp, ""},
		{"analysis to analysis is a no-op", order.Analysis, order.Analysis, order.TransitionNoOp, ""},
		{"completed to completed is a no-op", order.Completed, order.Completed, order.TransitionNoOp, ""},
		{"created to analysis advances", order.Created, order.Analysis, order.TransitionAdvance, ""},
		{"analysis to completed advances", order.Analysis, order.Completed, order.TransitionAdvance, ""},
		{"created to completed skips", order.Created, order.Completed, order.TransitionSkip, "skipping steps"},
		{"analysis to created regresses", order.Analysis, order.Created, order.TransitionRegression, "moving backwards"},
		{"completed to analysis regresses", order.Completed, order.Analysis, order.TransitionRegression, "moving backwards"},
		{"completed to created regresses", order.Completed, order.Created, order.TransitionRegression, "moving backwards"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			outcome, err := order.CheckTransition(tc.current, tc.requested)

			assert.Equal(t, tc.outcome, outcome)
			if tc.errText == "" {
				require.NoError(t, err)
				assert.False(t, outcome.IsRejected())
				return
			}

			require.Error(t, err)
			assert.True(t, outcome.IsRejected())
			require.ErrorIs(t, err, errs.ErrInvalidInput)
			assert.Contains(t, err.Error(), tc.errText)
			assert.Contains(t, err.Error(), "CREATED -> ANALYSIS -> COMPLETED")
		})
	}
}

func TestCheckTransition_AllPairs(t *testing.T) {
	states := order.States()
	for i, current := range states {
		for j, requested := range states {
			outcome, err := order.CheckTransition(current, requested)
			switch {
			case j == i:
				assert.Equal(t, order.TransitionNoOp, outcome)
				require.NoError(t, err)
			case j == i+1:
				assert.Equal(t, order.TransitionAdvance, outcome)
				require.NoError(t, err)
			case j < i:
				assert.Equal(t, order.TransitionRegression, outcome)
				require.Error(t, err)
			default:
				assert.Equal(t, order.TransitionSkip, outcome)
				require.Error(t, err)
			}
		}
	}
}

func TestCheckTransition_InvalidStates(t *testing.T) {
	t.Run("unknown current state is rejected", func(t *testing.T) {
		outcome, err := order.CheckTransition(order.UnknownState, order.Created)

		assert.Equal(t, order.TransitionInvalid, outcome)
		require.ErrorIs(t, err, errs.ErrInvalidInput)
	})

	t.Run("out of range requested state never advances", func(t *testing.T) {
		outcome, err := order.CheckTransition(order.Completed, order.State(4))

		assert.Equal(t, order.TransitionInvalid, outcome)
		require.ErrorIs(t, err, errs.ErrInvalidInput)
	})
}

func TestCompletedIsTerminal(t *testing.T) {
	assert.True(t, order.Completed.IsTerminal())
	assert.False(t, order.Created.IsTerminal())
	assert.False(t, order.Analysis.IsTerminal())

	for _, requested := range order.States() {
		outcome, _ := order.CheckTransition(order.Completed, requested)
		assert.NotEqual(t, order.TransitionAdvance, outcome)
	}
}
