package kernel

import (
	"fmt"
	"math"

	"pos/internal/pkg/errs"
)

// Domain errors for monetary values.
var (
	// ErrAmountIsNegative is returned when constructing Money from a negative
	// amount, or when Subtract would produce a negative result.
	ErrAmountIsNegative = errs.NewValueIsInvalidError("amount must not be negative")
)

// Money is an immutable, precision-safe monetary amount. It stores the value
// as integer cents, so arithmetic is exact; the only rounding happens once at
// construction, when a float amount is converted to cents using
// round-half-away-from-zero. The rounding sees the float64 the caller actually
// passed, not its decimal rendering: a literal like 1.005 is stored as
// 1.00499..., so it rounds down to 1.00, while 10.555 (stored above the
// midpoint) rounds up to 10.56.
//
// The amount is never negative. Subtract does not clamp: producing a negative
// result is an error, and callers that want a floor must clamp explicitly
// (see Order.CalculateTotal).
//
// The zero value is a valid zero amount, so Money composes freely into other
// value objects without a constructor guard.
type Money struct {
	cents int64
}

// NewMoney creates Money from a decimal amount, rounding to 2 fractional
// digits half away from zero. Negative amounts are rejected with
// ErrAmountIsNegative.
func NewMoney(amount float64) (Money, error) {
	if amount < 0 {
		return Money{}, ErrAmountIsNegative
	}
	return Money{cents: int64(math.Round(amount * 100))}, nil
}

// MoneyFromCents creates Money from an exact cent count, as stored in the
// database. The count must be non-negative; persistence only ever writes
// cent counts taken from valid Money values, so this boundary does not
// return an error. A negative count is floored to zero.
func MoneyFromCents(cents int64) Money {
	if cents < 0 {
		return Money{}
	}
	return Money{cents: cents}
}

// Add returns the sum of two amounts. The sum of non-negative amounts is
// non-negative, so Add cannot fail.
func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// Subtract returns m minus other, or ErrAmountIsNegative when other exceeds m.
// There is deliberately no clamping here; totals are floored by their owners.
func (m Money) Subtract(other Money) (Money, error) {
	if m.cents < other.cents {
		return Money{}, ErrAmountIsNegative
	}
	return Money{cents: m.cents - other.cents}, nil
}

// MultiplyBy returns the amount multiplied by a non-negative integer factor,
// e.g. a unit price by a quantity. Negative factors are rejected.
func (m Money) MultiplyBy(factor int) (Money, error) {
	if factor < 0 {
		return Money{}, ErrAmountIsNegative
	}
	return Money{cents: m.cents * int64(factor)}, nil
}

// LessThan reports whether m is strictly smaller than other. This is the
// comparison behind the product price-floor rule (price must not be below
// cost) and the discount ceiling checks.
func (m Money) LessThan(other Money) bool {
	return m.cents < other.cents
}

// IsEqual compares two amounts by value on the rounded cents.
func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.cents == 0
}

// Value returns the decimal amount with 2 fractional digits of precision.
func (m Money) Value() float64 {
	return float64(m.cents) / 100
}

// Cents returns the exact cent count for persistence mapping.
func (m Money) Cents() int64 {
	return m.cents
}

// String implements fmt.Stringer, e.g. "12.50".
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}
