package services

import (
	"errors"
	"fmt"

	"pos/internal/core/domain/model/order"
)

// Validation errors reported against a whole order state.
var (
	// ErrPaidOrderIsEmpty is returned when a paid order carries no items.
	ErrPaidOrderIsEmpty = errors.New("a paid order must contain at least one item")
	// ErrItemHasNoPrice is returned when a line item has a zero unit price.
	// Open orders tolerate complimentary items; a state offered for
	// persistence through full validation does not.
	ErrItemHasNoPrice = errors.New("order contains an item with a zero unit price")
)

// OrderValidator is a domain service that checks every aggregate invariant of
// an order holistically, independent of how the state was reached.
//
// The aggregate's own constructors and mutators keep incremental changes
// legal, but the update path assembles whole candidate states via
// order.RestoreOrder, which deliberately skips cross-field rules so that a
// violation surfaces here with a rule-specific message instead of a generic
// restore failure.
//
// Validate is read-only and reports the first violation found. In particular
// it never triggers the aggregate's discount auto-clamp: a candidate with an
// oversized discount is an error to reject, not a state to repair.
type OrderValidator struct{}

// NewOrderValidator creates a new OrderValidator instance.
func NewOrderValidator() OrderValidator {
	return OrderValidator{}
}

// Validate checks o against all aggregate invariants and returns a
// descriptive error for the first violated rule, or nil when the state is
// fully consistent.
func (v OrderValidator) Validate(o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}

	if o.TableIdentifier() == "" {
		return order.ErrTableIdentifierIsRequired
	}
	if err := o.Status().Validate(); err != nil {
		return err
	}

	items := o.Items()
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		if item.ProductID() == "" {
			return order.ErrProductIDIsRequired
		}
		if _, dup := seen[item.ProductID()]; dup {
			return fmt.Errorf("%w: %s", order.ErrDuplicateProduct, item.ProductID())
		}
		seen[item.ProductID()] = struct{}{}

		if item.Quantity() <= 0 {
			return fmt.Errorf("%w: product %s", order.ErrQuantityIsInvalid, item.ProductID())
		}
		if item.UnitPrice().IsZero() {
			return fmt.Errorf("%w: product %s", ErrItemHasNoPrice, item.ProductID())
		}
	}

	for i, extra := range o.Extras() {
		if extra.Amount().IsZero() {
			return fmt.Errorf("%w: extra %d", order.ErrExtraAmountIsInvalid, i)
		}
		if extra.Description() == "" {
			return order.ErrExtraDescriptionIsRequired
		}
	}

	if discount := o.Discount(); discount != nil {
		if discount.Amount().IsZero() {
			return order.ErrDiscountAmountIsInvalid
		}
		if discount.Reason() == "" {
			return order.ErrDiscountReasonIsRequired
		}

		totalBefore := o.CalculateTotalBeforeDiscounts()
		if totalBefore.LessThan(discount.Amount()) {
			return fmt.Errorf("%w: discount is %s, total before discounts is %s",
				order.ErrDiscountExceedsTotal, discount.Amount(), totalBefore)
		}
	}

	if o.Status().IsPaid() && len(items) == 0 {
		return ErrPaidOrderIsEmpty
	}

	return nil
}
