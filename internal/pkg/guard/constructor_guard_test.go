package guard_test

import (
	"errors"
	"testing"

	"orderprocessing/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()

		// When
		err := g.Validate(errors.New("not constructed"))

		// Then
		require.NoError(t, err)
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard
		expectedError := errors.New("command not constructed")

		// When
		err := g.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard

		// When
		err := g.Validate(nil)

		// Then
		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})
}

// TestConstructorGuardEmbedded shows the guard protecting a command-like value.
func TestConstructorGuardEmbedded(t *testing.T) {
	errBatchNotConstructed := errors.New("batch must be created via newBatch")

	type batch struct {
		userID int64
		guard  guard.ConstructorGuard
	}

	newBatch := func(userID int64) (batch, error) {
		if userID <= 0 {
			return batch{}, errors.New("user id must be positive")
		}
		return batch{userID: userID, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructed_value_validates", func(t *testing.T) {
		b, err := newBatch(7)

		require.NoError(t, err)
		require.NoError(t, b.guard.Validate(errBatchNotConstructed))
		assert.Equal(t, int64(7), b.userID)
	})

	t.Run("zero_value_fails", func(t *testing.T) {
		var b batch

		assert.Equal(t, errBatchNotConstructed, b.guard.Validate(errBatchNotConstructed))
	})

	t.Run("guard_survives_copy", func(t *testing.T) {
		b, _ := newBatch(7)
		copied := b

		require.NoError(t, copied.guard.Validate(errBatchNotConstructed))
	})
}

func BenchmarkConstructorGuard(b *testing.B) {
	b.Run("Validate_Success", func(b *testing.B) {
		g := guard.NewConstructorGuard()
		err := errors.New("not constructed")
		b.ResetTimer()
		for range b.N {
			_ = g.Validate(err)
		}
	})

	b.Run("Validate_ZeroValue", func(b *testing.B) {
		var g guard.ConstructorGuard
		err := errors.New("not constructed")
		b.ResetTimer()
		for range b.N {
			_ = g.Validate(err)
		}
	})
}
