package order

import (
	"errors"
	"fmt"
	"time"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/pkg/errs"
	"pos/internal/pkg/guard"
)

// Domain errors for order mutation.
var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
	// ErrTableIdentifierIsRequired is returned when the table identifier is empty.
	ErrTableIdentifierIsRequired = errs.NewValueIsRequiredError("table identifier")
	// ErrOrderIsClosed is returned when any mutator other than MarkAsPaid is
	// invoked against a paid order.
	ErrOrderIsClosed = errors.New("order is closed for modification")
	// ErrOrderIsNotOpen is returned by MarkAsPaid when the order is not open.
	ErrOrderIsNotOpen = errors.New("order is not open")
	// ErrItemNotFound is returned when referencing a product that is not on
	// the order.
	ErrItemNotFound = errors.New("item not found in order")
	// ErrDuplicateProduct is returned when an item collection references the
	// same product twice.
	ErrDuplicateProduct = errs.NewValueIsInvalidError("items must be unique by product id")
	// ErrDiscountExceedsTotal is returned when a discount is larger than the
	// order's total before discounts.
	ErrDiscountExceedsTotal = errs.NewValueIsInvalidError("discount cannot exceed order total before discounts")
	// ErrUpdatedBeforeCreated is returned when restoring an order whose
	// updatedAt precedes its createdAt.
	ErrUpdatedBeforeCreated = errs.NewValueIsInvalidError("updatedAt must not precede createdAt")
)

// Order is the aggregate root of the POS order domain. It composes the table
// identifier, lifecycle status, line items, an optional discount, and extras,
// and owns every mutation: all invariants are enforced across the whole
// cluster on each call.
//
// Invariants maintained by the aggregate:
//   - the table identifier is never empty
//   - items are unique by product id, with positive quantities
//   - the discount, when present, never exceeds the total before discounts
//     (shrinking mutations clamp it down automatically, see clampDiscount)
//   - the computed total is never negative
//   - once paid, the order is read-only
//
// Accessors return defensive copies; no caller ever holds a mutable reference
// into the aggregate's collections. Order is not safe for concurrent mutation
// of the same instance; the persistence layer provides at-most-one-writer
// semantics per order id.
type Order struct {
	id              kernel.UUID
	tableIdentifier string
	status          Status
	items           []OrderItem
	discount        *Discount
	extras          []Extra
	createdAt       time.Time
	updatedAt       time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates an open order for a table, optionally seeded with items.
// Both timestamps are set to the current time.
func NewOrder(id kernel.UUID, tableIdentifier string, items []OrderItem) (*Order, error) {
	now := time.Now().UTC()

	o := &Order{
		status:    StatusOpen,
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setTableIdentifier(tableIdentifier),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from a previously captured state: a
// database row, or a candidate snapshot assembled during reconciliation. It
// validates structural rules (identifier, table, status tag, item uniqueness,
// timestamp ordering) but deliberately not the cross-field aggregate rules.
// Those belong to the holistic validator, so that a candidate violating them
// is rejected with a rule-specific message.
func RestoreOrder(
	id kernel.UUID,
	tableIdentifier string,
	status Status,
	items []OrderItem,
	discount *Discount,
	extras []Extra,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	o := &Order{
		createdAt: createdAt,
		updatedAt: updatedAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setTableIdentifier(tableIdentifier),
		o.setStatus(status),
		o.setItems(items),
		o.setExtras(extras),
	); err != nil {
		return nil, err
	}

	if updatedAt.Before(createdAt) {
		return nil, ErrUpdatedBeforeCreated
	}

	if discount != nil {
		d := *discount
		o.discount = &d
	}

	return o, nil
}

// Validate ensures the Order instance was created through a constructor.
// Repositories call this before persisting an aggregate.
func (o *Order) Validate() error {
	if o == nil || o.guard.Validate(ErrOrderIsNotConstructed) != nil {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// TableIdentifier returns the table this order belongs to.
func (o *Order) TableIdentifier() string {
	return o.tableIdentifier
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Items returns a copy of the line items in insertion order.
func (o *Order) Items() []OrderItem {
	items := make([]OrderItem, len(o.items))
	copy(items, o.items)
	return items
}

// Discount returns a copy of the active discount, or nil when none is set.
func (o *Order) Discount() *Discount {
	if o.discount == nil {
		return nil
	}
	d := *o.discount
	return &d
}

// Extras returns a copy of the extras in insertion order.
func (o *Order) Extras() []Extra {
	extras := make([]Extra, len(o.extras))
	copy(extras, o.extras)
	return extras
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the last mutation timestamp.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// AddItem adds quantity units of a product at the given unit price. If the
// product is already on the order its quantity is incremented and the
// existing unit price retained; otherwise a new line is appended.
//
// A unit price of zero is permitted here, unlike NewOrderItem's own floor:
// an open order may carry complimentary items, but the holistic validator
// still rejects them at settlement time.
func (o *Order) AddItem(productID string, quantity int, unitPrice kernel.Money) error {
	if err := o.ensureOpen(); err != nil {
		return err
	}
	if quantity <= 0 {
		return fmt.Errorf("%w: got %d", ErrQuantityIsInvalid, quantity)
	}

	if idx := o.findItem(productID); idx >= 0 {
		updated, err := o.items[idx].UpdateQuantity(o.items[idx].Quantity() + quantity)
		if err != nil {
			return err
		}
		o.items[idx] = updated
	} else {
		item, err := RestoreOrderItem(productID, quantity, unitPrice)
		if err != nil {
			return err
		}
		o.items = append(o.items, item)
	}

	o.touch()
	return nil
}

// UpdateItemQuantity adjusts an item's quantity by delta (a relative
// adjustment, not an absolute set). When the resulting quantity drops to zero
// or below the item is removed entirely. Fails with ErrItemNotFound when the
// product is not on the order.
func (o *Order) UpdateItemQuantity(productID string, delta int) error {
	if err := o.ensureOpen(); err != nil {
		return err
	}

	idx := o.findItem(productID)
	if idx < 0 {
		return ErrItemNotFound
	}

	newQuantity := o.items[idx].Quantity() + delta
	if newQuantity <= 0 {
		o.items = append(o.items[:idx], o.items[idx+1:]...)
	} else {
		updated, err := o.items[idx].UpdateQuantity(newQuantity)
		if err != nil {
			return err
		}
		o.items[idx] = updated
	}

	o.touch()
	return nil
}

// RemoveItem removes the line for a product, then re-validates the discount:
// if the shrunken order no longer covers it, the discount is clamped down
// (or dropped) rather than left invalid.
func (o *Order) RemoveItem(productID string) error {
	if err := o.ensureOpen(); err != nil {
		return err
	}

	idx := o.findItem(productID)
	if idx < 0 {
		return ErrItemNotFound
	}

	o.items = append(o.items[:idx], o.items[idx+1:]...)
	o.touch()
	o.clampDiscount()
	return nil
}

// ApplyDiscount sets the order's discount, replacing any existing one. The
// amount must be positive, must not exceed the total before discounts, and
// requires a non-blank reason.
func (o *Order) ApplyDiscount(amount kernel.Money, reason string) error {
	if err := o.ensureOpen(); err != nil {
		return err
	}
	if amount.IsZero() {
		return ErrDiscountAmountIsInvalid
	}

	totalBefore := o.CalculateTotalBeforeDiscounts()
	if totalBefore.LessThan(amount) {
		return fmt.Errorf("%w: discount is %s, total before discounts is %s",
			ErrDiscountExceedsTotal, amount, totalBefore)
	}

	discount, err := NewDiscount(amount, reason)
	if err != nil {
		return err
	}

	o.discount = &discount
	o.touch()
	return nil
}

// RemoveDiscount clears the discount. Apart from the order being open there
// is no precondition; removing an absent discount is a no-op write.
func (o *Order) RemoveDiscount() error {
	if err := o.ensureOpen(); err != nil {
		return err
	}

	o.discount = nil
	o.touch()
	return nil
}

// AddExtra appends a surcharge with a positive amount and a description.
func (o *Order) AddExtra(amount kernel.Money, description string) error {
	if err := o.ensureOpen(); err != nil {
		return err
	}

	extra, err := NewExtra(amount, description)
	if err != nil {
		return err
	}

	o.extras = append(o.extras, extra)
	o.touch()
	return nil
}

// RemoveExtra removes the extra at the given insertion index, then
// re-validates the discount the same way RemoveItem does.
func (o *Order) RemoveExtra(index int) error {
	if err := o.ensureOpen(); err != nil {
		return err
	}

	if index < 0 || index >= len(o.extras) {
		return errs.NewValueIsOutOfRangeError("extra index", index, 0, len(o.extras)-1)
	}

	o.extras = append(o.extras[:index], o.extras[index+1:]...)
	o.touch()
	o.clampDiscount()
	return nil
}

// ChangeTableIdentifier moves the order to another table.
func (o *Order) ChangeTableIdentifier(tableIdentifier string) error {
	if err := o.ensureOpen(); err != nil {
		return err
	}
	if tableIdentifier == "" {
		return ErrTableIdentifierIsRequired
	}

	o.tableIdentifier = tableIdentifier
	o.touch()
	return nil
}

// MarkAsPaid performs the single open → paid transition. It checks only the
// status: paying an order with no items succeeds here but is rejected by the
// holistic validator on the reconciliation path.
func (o *Order) MarkAsPaid() error {
	if !o.status.IsOpen() {
		return ErrOrderIsNotOpen
	}

	o.status = StatusPaid
	o.touch()
	return nil
}

// CalculateSubtotal returns the sum of all line totals.
func (o *Order) CalculateSubtotal() kernel.Money {
	var subtotal kernel.Money
	for _, item := range o.items {
		subtotal = subtotal.Add(item.TotalPrice())
	}
	return subtotal
}

// CalculateTotalBeforeDiscounts returns the subtotal plus all extras.
func (o *Order) CalculateTotalBeforeDiscounts() kernel.Money {
	total := o.CalculateSubtotal()
	for _, extra := range o.extras {
		total = total.Add(extra.Amount())
	}
	return total
}

// CalculateTotal returns the amount due: total before discounts minus the
// discount, floored at zero. As a side effect it first re-validates the
// discount against the current order value, clamping it if items or extras
// shrank since it was applied. Totals and discount validation are
// deliberately not separated.
func (o *Order) CalculateTotal() kernel.Money {
	o.clampDiscount()

	total := o.CalculateTotalBeforeDiscounts()
	if o.discount == nil {
		return total
	}
	if total.LessThan(o.discount.Amount()) {
		return kernel.Money{}
	}

	total, _ = total.Subtract(o.discount.Amount())
	return total
}

// IsEquivalent compares two orders by value, ignoring timestamps. Used by the
// reconciliation algorithm to short-circuit no-op updates.
func (o *Order) IsEquivalent(other *Order) bool {
	if other == nil {
		return false
	}
	if !o.id.IsEqual(other.id) ||
		o.tableIdentifier != other.tableIdentifier ||
		o.status != other.status {
		return false
	}

	if (o.discount == nil) != (other.discount == nil) {
		return false
	}
	if o.discount != nil && !o.discount.IsEqual(*other.discount) {
		return false
	}

	if len(o.items) != len(other.items) {
		return false
	}
	for i := range o.items {
		if !o.items[i].IsEqual(other.items[i]) {
			return false
		}
	}

	if len(o.extras) != len(other.extras) {
		return false
	}
	for i := range o.extras {
		if !o.extras[i].IsEqual(other.extras[i]) {
			return false
		}
	}

	return true
}

// clampDiscount is the auto-repair policy for shrinking orders: when the
// current discount exceeds the new total before discounts it is clamped down
// to that maximum, or removed entirely when the maximum is zero (a discount
// amount must stay positive). Removing a line item therefore never leaves the
// order in an invalid state requiring a separate fix-up call.
func (o *Order) clampDiscount() {
	if o.discount == nil {
		return
	}

	maxAllowed := o.CalculateTotalBeforeDiscounts()
	if !maxAllowed.LessThan(o.discount.Amount()) {
		return
	}

	if maxAllowed.IsZero() {
		o.discount = nil
	} else {
		clamped, _ := NewDiscount(maxAllowed, o.discount.Reason())
		o.discount = &clamped
	}
	o.touch()
}

func (o *Order) ensureOpen() error {
	if !o.status.IsOpen() {
		return ErrOrderIsClosed
	}
	return nil
}

func (o *Order) findItem(productID string) int {
	for i, item := range o.items {
		if item.ProductID() == productID {
			return i
		}
	}
	return -1
}

func (o *Order) touch() {
	o.updatedAt = time.Now().UTC()
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setTableIdentifier(tableIdentifier string) error {
	if tableIdentifier == "" {
		return ErrTableIdentifierIsRequired
	}
	o.tableIdentifier = tableIdentifier
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setItems(items []OrderItem) error {
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		if _, dup := seen[item.ProductID()]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateProduct, item.ProductID())
		}
		seen[item.ProductID()] = struct{}{}
	}

	o.items = make([]OrderItem, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setExtras(extras []Extra) error {
	o.extras = make([]Extra, len(extras))
	copy(o.extras, extras)
	return nil
}
