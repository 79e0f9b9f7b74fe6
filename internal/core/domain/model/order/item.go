package order

import (
	"fmt"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/pkg/errs"
)

// Domain errors for order line items.
var (
	// ErrProductIDIsRequired is returned when an item references no product.
	ErrProductIDIsRequired = errs.NewValueIsRequiredError("product id")
	// ErrQuantityIsInvalid is returned when an item quantity is not positive.
	ErrQuantityIsInvalid = errs.NewValueIsInvalidError("quantity must be greater than 0")
	// ErrUnitPriceIsInvalid is returned by NewOrderItem when the unit price is
	// zero. Order.AddItem deliberately bypasses this floor (free items can be
	// added to an open order) via RestoreOrderItem.
	ErrUnitPriceIsInvalid = errs.NewValueIsInvalidError("unit price must be greater than 0")
)

// OrderItem is an immutable line item: a product reference, a quantity, and
// the unit price captured when the product was added. Quantity changes
// produce a new OrderItem rather than mutating in place.
type OrderItem struct {
	productID string
	quantity  int
	unitPrice kernel.Money
}

// NewOrderItem creates a validated line item. The quantity must be positive
// and the unit price strictly greater than zero.
func NewOrderItem(productID string, quantity int, unitPrice kernel.Money) (OrderItem, error) {
	item, err := RestoreOrderItem(productID, quantity, unitPrice)
	if err != nil {
		return OrderItem{}, err
	}
	if unitPrice.IsZero() {
		return OrderItem{}, ErrUnitPriceIsInvalid
	}
	return item, nil
}

// RestoreOrderItem builds a line item without the strict price floor of
// NewOrderItem. It backs persistence reconstruction, candidate assembly during
// order updates, and Order.AddItem, all of which permit a unit price of zero.
func RestoreOrderItem(productID string, quantity int, unitPrice kernel.Money) (OrderItem, error) {
	if productID == "" {
		return OrderItem{}, ErrProductIDIsRequired
	}
	if quantity <= 0 {
		return OrderItem{}, fmt.Errorf("%w: got %d", ErrQuantityIsInvalid, quantity)
	}
	return OrderItem{
		productID: productID,
		quantity:  quantity,
		unitPrice: unitPrice,
	}, nil
}

// ProductID returns the referenced product identifier.
func (i OrderItem) ProductID() string {
	return i.productID
}

// Quantity returns the number of units ordered.
func (i OrderItem) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price per unit captured at add time.
func (i OrderItem) UnitPrice() kernel.Money {
	return i.unitPrice
}

// TotalPrice returns unit price times quantity.
func (i OrderItem) TotalPrice() kernel.Money {
	// quantity is validated positive at construction
	total, _ := i.unitPrice.MultiplyBy(i.quantity)
	return total
}

// UpdateQuantity returns a new item with the given quantity, which must be
// positive. The receiver is left untouched.
func (i OrderItem) UpdateQuantity(newQuantity int) (OrderItem, error) {
	if newQuantity <= 0 {
		return OrderItem{}, fmt.Errorf("%w: got %d", ErrQuantityIsInvalid, newQuantity)
	}
	return OrderItem{
		productID: i.productID,
		quantity:  newQuantity,
		unitPrice: i.unitPrice,
	}, nil
}

// IsEqual compares two items by value.
func (i OrderItem) IsEqual(other OrderItem) bool {
	return i.productID == other.productID &&
		i.quantity == other.quantity &&
		i.unitPrice.IsEqual(other.unitPrice)
}
