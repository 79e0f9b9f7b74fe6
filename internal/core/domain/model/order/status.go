package order

import (
	"fmt"

	"pos/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. The state machine has
// exactly one transition:
//
//	Open ──> Paid
//
// Open is the initial state and Paid is terminal; there is no cancellation or
// reopening in this core. The transition itself (MarkAsPaid) lives on Order,
// not here, because it must be gated by the aggregate's mutability check.
//
// Status values are persisted and compared as their string tags.
type Status string

const (
	// StatusOpen marks an order that is still being edited at the table.
	StatusOpen Status = "open"

	// StatusPaid marks a settled order. Paid orders are read-only and are
	// eventually purged by the persistence layer.
	StatusPaid Status = "paid"
)

// NewStatus parses a status tag. Only "open" and "paid" are recognized.
func NewStatus(value string) (Status, error) {
	s := Status(value)
	if err := s.Validate(); err != nil {
		return "", err
	}
	return s, nil
}

// Validate checks that the Status value is one of the two recognized tags.
// Used to vet values arriving from the database or API before use.
func (s Status) Validate() error {
	if s != StatusOpen && s != StatusPaid {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a valid order status", string(s)))
	}
	return nil
}

// IsOpen reports whether the order may still be mutated.
func (s Status) IsOpen() bool {
	return s == StatusOpen
}

// IsPaid reports whether the order has been settled.
func (s Status) IsPaid() bool {
	return s == StatusPaid
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}
