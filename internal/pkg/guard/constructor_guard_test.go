package guard_test

import (
	"errors"
	"testing"

	"bakeshop/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("constructed_guard_passes_validation", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard // zero value
		expectedError := errors.New("entity not constructed")

		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard // zero value

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardUsageExample demonstrates how a guarded domain object
// rejects zero-value instances that bypassed its constructor.
func TestConstructorGuardUsageExample(t *testing.T) {
	type basket struct {
		capacity int
		guard    guard.ConstructorGuard
	}

	errBasketNotConstructed := errors.New("basket must be created via newBasket")

	newBasket := func(capacity int) (basket, error) {
		if capacity <= 0 {
			return basket{}, errors.New("capacity must be positive")
		}
		return basket{capacity: capacity, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		b, err := newBasket(12)

		require.NoError(t, err)
		require.NoError(t, b.guard.Validate(errBasketNotConstructed))
		assert.Equal(t, 12, b.capacity)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var b basket

		err := b.guard.Validate(errBasketNotConstructed)

		require.Error(t, err)
		assert.Equal(t, errBasketNotConstructed, err)
	})

	t.Run("constructor_validates_business_rules", func(t *testing.T) {
		_, err := newBasket(0)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "capacity must be positive")
	})
}
