package order

import (
	"strings"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/pkg/errs"
)

// Domain errors for discounts.
var (
	// ErrDiscountAmountIsInvalid is returned when a discount amount is zero.
	ErrDiscountAmountIsInvalid = errs.NewValueIsInvalidError("discount amount must be greater than 0")
	// ErrDiscountReasonIsRequired is returned when the textual justification
	// for a discount is missing.
	ErrDiscountReasonIsRequired = errs.NewValueIsRequiredError("discount reason")
)

// Discount is an order-level monetary reduction with a mandatory textual
// justification. At most one discount is active per order; applying a new one
// replaces the previous.
type Discount struct {
	amount kernel.Money
	reason string
}

// NewDiscount creates a validated discount. The amount must be positive and
// the reason non-blank. The amount's relation to the order total is not
// checked here, that is an aggregate-level rule.
func NewDiscount(amount kernel.Money, reason string) (Discount, error) {
	if amount.IsZero() {
		return Discount{}, ErrDiscountAmountIsInvalid
	}
	if strings.TrimSpace(reason) == "" {
		return Discount{}, ErrDiscountReasonIsRequired
	}
	return Discount{
		amount: amount,
		reason: reason,
	}, nil
}

// Amount returns the monetary reduction.
func (d Discount) Amount() kernel.Money {
	return d.amount
}

// Reason returns the justification text.
func (d Discount) Reason() string {
	return d.reason
}

// IsEqual compares two discounts by value.
func (d Discount) IsEqual(other Discount) bool {
	return d.amount.IsEqual(other.amount) && d.reason == other.reason
}
