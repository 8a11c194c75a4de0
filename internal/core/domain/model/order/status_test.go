package order_test

import (
	"testing"

	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFromString(t *testing.T) {
	t.Run("should parse valid status names", func(t *testing.T) {
		testCases := map[string]order.Status{
			"COOKING":    order.Cooking,
			"MEAL":       order.Meal,
			"COMPLETION": order.Completion,
		}

		for name, expected := range testCases {
			status, err := order.StatusFromString(name)

			require.NoError(t, err, name)
			assert.Equal(t, expected, status)
		}
	})

	t.Run("should fail for unrecognized names", func(t *testing.T) {
		for _, name := range []string{"", "cooking", "DONE", "SERVED"} {
			status, err := order.StatusFromString(name)

			require.Error(t, err, name)
			assert.Equal(t, order.Unknown, status)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "COOKING", order.Cooking.String())
	assert.Equal(t, "MEAL", order.Meal.String())
	assert.Equal(t, "COMPLETION", order.Completion.String())
	assert.Equal(t, "UNKNOWN", order.Unknown.String())
	assert.Equal(t, "UNKNOWN", order.Status(42).String())
}

func TestStatus_Validate(t *testing.T) {
	t.Run("valid statuses", func(t *testing.T) {
		for _, s := range []order.Status{order.Cooking, order.Meal, order.Completion} {
			assert.NoError(t, s.Validate(), s.String())
		}
	})

	t.Run("invalid statuses", func(t *testing.T) {
		for _, s := range []order.Status{order.Unknown, order.Status(42)} {
			assert.Error(t, s.Validate())
		}
	})
}

func TestStatus_IsActive(t *testing.T) {
	assert.True(t, order.Cooking.IsActive())
	assert.True(t, order.Meal.IsActive())
	assert.False(t, order.Completion.IsActive())
	assert.False(t, order.Unknown.IsActive())
}

func TestStatus_ChangeTo(t *testing.T) {
	t.Run("should accept forward transitions", func(t *testing.T) {
		testCases := []struct {
			from, to order.Status
		}{
			{order.Cooking, order.Meal},
			{order.Meal, order.Completion},
			{order.Cooking, order.Completion}, // skipping ahead is allowed
		}

		for _, tc := range testCases {
			got, err := tc.from.ChangeTo(tc.to)

			require.NoError(t, err, "%s -> %s", tc.from, tc.to)
			assert.Equal(t, tc.to, got)
		}
	})

	t.Run("should accept staying in place", func(t *testing.T) {
		for _, s := range []order.Status{order.Cooking, order.Meal} {
			got, err := s.ChangeTo(s)

			require.NoError(t, err)
			assert.Equal(t, s, got)
		}
	})

	t.Run("should reject any transition from Completion", func(t *testing.T) {
		for _, target := range []order.Status{order.Cooking, order.Meal, order.Completion} {
			_, err := order.Completion.ChangeTo(target)

			require.Error(t, err)
			assert.ErrorIs(t, err, order.ErrOrderAlreadyCompleted)
		}
	})

	t.Run("should reject regression", func(t *testing.T) {
		testCases := []struct {
			from, to order.Status
		}{
			{order.Meal, order.Cooking},
		}

		for _, tc := range testCases {
			_, err := tc.from.ChangeTo(tc.to)

			require.Error(t, err)
			assert.ErrorIs(t, err, order.ErrStatusMovesBackwards)
		}
	})

	t.Run("should reject invalid target", func(t *testing.T) {
		_, err := order.Cooking.ChangeTo(order.Unknown)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
