package guard_test

import (
	"errors"
	"testing"

	"pos/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		// When
		guard := guard.NewConstructorGuard()

		// Then
		assert.NotNil(t, guard)

		// Validate with a custom error
		customError := errors.New("order not constructed")
		require.NoError(t, guard.Validate(customError))

		// Validate with nil error (should use default)
		require.NoError(t, guard.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		guard := guard.NewConstructorGuard()
		customError := errors.New("not constructed")

		// When
		err := guard.Validate(customError)

		// Then
		require.NoError(t, err)
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var guard guard.ConstructorGuard // zero value
		expectedError := errors.New("aggregate not constructed")

		// When
		err := guard.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard // zero value

		// When
		err := g.Validate(nil)

		// Then
		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardUsageExample demonstrates how ConstructorGuard should be
// used in a value object to enforce constructor usage.
func TestConstructorGuardUsageExample(t *testing.T) {
	// Define a sample value object that uses ConstructorGuard
	type Discount struct {
		amountCents int64
		reason      string
		guard       guard.ConstructorGuard
	}

	var errDiscountNotConstructed = errors.New("Discount must be created via NewDiscount")

	newDiscount := func(amountCents int64, reason string) (Discount, error) {
		if amountCents <= 0 {
			return Discount{}, errors.New("amount must be positive")
		}
		if reason == "" {
			return Discount{}, errors.New("reason is required")
		}
		return Discount{
			amountCents: amountCents,
			reason:      reason,
			guard:       guard.NewConstructorGuard(),
		}, nil
	}

	validateDiscount := func(d Discount) error {
		return d.guard.Validate(errDiscountNotConstructed)
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		// When
		discount, err := newDiscount(250, "loyalty")

		// Then
		require.NoError(t, err)
		require.NoError(t, validateDiscount(discount))
		assert.Equal(t, int64(250), discount.amountCents)
		assert.Equal(t, "loyalty", discount.reason)
	})

	t.Run("zero_value_construction_validation", func(t *testing.T) {
		// Given
		var discount Discount // zero value

		// When
		err := validateDiscount(discount)

		// Then
		// Zero value Discount has a zero value guard, which returns the error we pass
		require.Error(t, err)
		assert.Equal(t, errDiscountNotConstructed, err)
	})

	t.Run("constructor_validates_business_rules", func(t *testing.T) {
		// Non-positive amount
		_, err := newDiscount(0, "loyalty")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "amount must be positive")

		// Empty reason
		_, err = newDiscount(250, "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "reason is required")
	})
}

// TestConstructorGuardRealWorldExample shows a better pattern using embedded types.
func TestConstructorGuardRealWorldExample(t *testing.T) {
	// Define error once
	var errLineNotConstructed = errors.New("OrderLine must be created via NewOrderLine")

	// Define a guard-aware base type
	type guardedLine struct {
		guard guard.ConstructorGuard
	}

	newGuardedLine := func() guardedLine {
		return guardedLine{
			guard: guard.NewConstructorGuard(),
		}
	}

	validateGuardedLine := func(g guardedLine) error {
		return g.guard.Validate(errLineNotConstructed)
	}

	// Define the actual domain object
	type OrderLine struct {
		guardedLine
		productID      string
		quantity       int
		unitPriceCents int64
	}

	newOrderLine := func(productID string, quantity int, unitPriceCents int64) (OrderLine, error) {
		if productID == "" {
			return OrderLine{}, errors.New("product id is required")
		}
		if quantity <= 0 {
			return OrderLine{}, errors.New("quantity must be positive")
		}
		if unitPriceCents < 0 {
			return OrderLine{}, errors.New("unit price cannot be negative")
		}
		return OrderLine{
			guardedLine:    newGuardedLine(),
			productID:      productID,
			quantity:       quantity,
			unitPriceCents: unitPriceCents,
		}, nil
	}

	t.Run("valid_line_construction", func(t *testing.T) {
		// When
		line, err := newOrderLine("espresso", 2, 350)

		// Then
		require.NoError(t, err)
		require.NoError(t, validateGuardedLine(line.guardedLine))
		assert.Equal(t, "espresso", line.productID)
		assert.Equal(t, 2, line.quantity)
		assert.Equal(t, int64(350), line.unitPriceCents)
	})

	t.Run("zero_value_line_fails_validation", func(t *testing.T) {
		// Given
		var line OrderLine // zero value

		// When
		err := validateGuardedLine(line.guardedLine)

		// Then
		// Zero value has a zero value guard, which returns the error we pass
		require.Error(t, err)
		assert.Equal(t, errLineNotConstructed, err)
	})
}

// TestConstructorGuardWithMultipleErrors demonstrates using ConstructorGuard
// with different error types and messages.
func TestConstructorGuardWithMultipleErrors(t *testing.T) {
	testCases := []struct {
		name          string
		expectedError error
	}{
		{
			name:          "order_not_constructed_error",
			expectedError: errors.New("Order must be created via NewOrder"),
		},
		{
			name:          "product_not_constructed_error",
			expectedError: errors.New("Product must be created via NewProduct factory method"),
		},
		{
			name:          "command_not_constructed_error",
			expectedError: errors.New("UpdateOrderCommand requires proper initialization through constructor"),
		},
		{
			name:          "nil_error_uses_default",
			expectedError: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Given
			guard := guard.NewConstructorGuard()

			// When
			err := guard.Validate(tc.expectedError)

			// Then
			require.NoError(t, err, "Properly constructed guard should not return error")
		})
	}
}

// TestConstructorGuardDefaultError verifies the default error behavior.
func TestConstructorGuardDefaultError(t *testing.T) {
	t.Run("nil_error_uses_default_for_zero_value", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard // zero value

		// When
		err := g.Validate(nil)

		// Then
		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})

	t.Run("default_error_constant_has_meaningful_message", func(t *testing.T) {
		// Then
		require.Error(t, guard.ErrDefaultConstructorGuard)
		assert.Contains(t, guard.ErrDefaultConstructorGuard.Error(), "constructor")
		assert.Equal(t, "object must be created via its constructor", guard.ErrDefaultConstructorGuard.Error())
	})
}

// BenchmarkConstructorGuard measures the performance overhead of using ConstructorGuard.
func BenchmarkConstructorGuard(b *testing.B) {
	b.Run("NewConstructorGuard", func(b *testing.B) {
		b.ResetTimer()
		for range b.N {
			_ = guard.NewConstructorGuard()
		}
	})

	b.Run("Validate_Success", func(b *testing.B) {
		guard := guard.NewConstructorGuard()
		err := errors.New("not constructed")
		b.ResetTimer()
		for range b.N {
			_ = guard.Validate(err)
		}
	})

	b.Run("Validate_ZeroValue", func(b *testing.B) {
		var guard guard.ConstructorGuard
		err := errors.New("not constructed")
		b.ResetTimer()
		for range b.N {
			_ = guard.Validate(err)
		}
	})
}

// TestConstructorGuardConcurrency verifies that ConstructorGuard is safe for concurrent use.
func TestConstructorGuardConcurrency(t *testing.T) {
	guard := guard.NewConstructorGuard()
	validationError := errors.New("not constructed")

	// Run multiple goroutines that validate the guard concurrently
	done := make(chan bool)
	for range 100 {
		go func() {
			for range 1000 {
				err := guard.Validate(validationError)
				assert.NoError(t, err)
			}
			done <- true
		}()
	}

	// Wait for all goroutines to complete
	for range 100 {
		<-done
	}
}

// TestConstructorGuardImmutability verifies that ConstructorGuard is immutable.
func TestConstructorGuardImmutability(t *testing.T) {
	t.Run("guard_fields_are_not_modifiable", func(t *testing.T) {
		// Given
		originalError := errors.New("original error")
		g := guard.NewConstructorGuard()

		// When
		// Try to create another guard
		anotherError := errors.New("another error")
		_ = guard.NewConstructorGuard()

		// Then
		// Original guard should still validate successfully
		require.NoError(t, g.Validate(originalError))
		require.NoError(t, g.Validate(anotherError))
	})

	t.Run("guard_can_be_safely_passed_by_value", func(t *testing.T) {
		// Given
		guard := guard.NewConstructorGuard()
		testError := errors.New("test error")

		// When
		guardCopy := guard // Pass by value

		// Then
		require.NoError(t, guard.Validate(testError))
		require.NoError(t, guardCopy.Validate(testError))
	})
}
