package order

import (
	"strings"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/pkg/errs"
)

// Domain errors for extras.
var (
	// ErrExtraAmountIsInvalid is returned when an extra charge amount is zero.
	ErrExtraAmountIsInvalid = errs.NewValueIsInvalidError("extra amount must be greater than 0")
	// ErrExtraDescriptionIsRequired is returned when the description of an
	// extra charge is missing.
	ErrExtraDescriptionIsRequired = errs.NewValueIsRequiredError("extra description")
)

// Extra is an order-level surcharge (service fee, corkage, and so on) with a
// mandatory description. An order carries zero or more extras in insertion
// order; removal is by index.
type Extra struct {
	amount      kernel.Money
	description string
}

// NewExtra creates a validated extra. The amount must be positive and the
// description non-blank.
func NewExtra(amount kernel.Money, description string) (Extra, error) {
	if amount.IsZero() {
		return Extra{}, ErrExtraAmountIsInvalid
	}
	if strings.TrimSpace(description) == "" {
		return Extra{}, ErrExtraDescriptionIsRequired
	}
	return Extra{
		amount:      amount,
		description: description,
	}, nil
}

// Amount returns the surcharge amount.
func (e Extra) Amount() kernel.Money {
	return e.amount
}

// Description returns the surcharge description.
func (e Extra) Description() string {
	return e.description
}

// IsEqual compares two extras by value.
func (e Extra) IsEqual(other Extra) bool {
	return e.amount.IsEqual(other.amount) && e.description == other.description
}
