// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between the domain model and the three relational
// tables that store an order cluster.
package orderrepo

import (
	"time"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the orders table row. Timestamps are owned by the aggregate,
// so GORM's automatic time tracking is disabled. The optional discount is
// flattened into two nullable columns rather than a separate table, since an
// order carries at most one.
type OrderDTO struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	TableIdentifier     string    `gorm:"index"`
	Status              string    `gorm:"index"`
	DiscountAmountCents *int64
	DiscountReason      *string
	CreatedAt           time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt           time.Time `gorm:"autoUpdateTime:false;index"`
}

// TableName specifies the database table name for order rows.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is one line item row. The composite key mirrors the
// aggregate's items-unique-by-product rule; Position preserves insertion
// order across the delete-and-reinsert save cycle.
type OrderItemDTO struct {
	OrderID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID      string    `gorm:"primaryKey"`
	Position       int
	Quantity       int
	UnitPriceCents int64
}

// TableName specifies the database table name for order item rows.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// OrderExtraDTO is one surcharge row. Extras have no natural identity, so a
// surrogate key is used and Position keeps them addressable by index.
type OrderExtraDTO struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"`
	OrderID     uuid.UUID `gorm:"type:uuid;index"`
	Position    int
	AmountCents int64
	Description string
}

// TableName specifies the database table name for order extra rows.
func (OrderExtraDTO) TableName() string {
	return "order_extras"
}

// fromDomain flattens an order aggregate into its three table
// representations.
func fromDomain(aggregate *order.Order) (OrderDTO, []OrderItemDTO, []OrderExtraDTO) {
	dto := OrderDTO{
		ID:              aggregate.ID().Bytes(),
		TableIdentifier: aggregate.TableIdentifier(),
		Status:          aggregate.Status().String(),
		CreatedAt:       aggregate.CreatedAt(),
		UpdatedAt:       aggregate.UpdatedAt(),
	}

	if discount := aggregate.Discount(); discount != nil {
		amountCents := discount.Amount().Cents()
		reason := discount.Reason()
		dto.DiscountAmountCents = &amountCents
		dto.DiscountReason = &reason
	}

	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for i, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			OrderID:        dto.ID,
			ProductID:      item.ProductID(),
			Position:       i,
			Quantity:       item.Quantity(),
			UnitPriceCents: item.UnitPrice().Cents(),
		})
	}

	extras := make([]OrderExtraDTO, 0, len(aggregate.Extras()))
	for i, extra := range aggregate.Extras() {
		extras = append(extras, OrderExtraDTO{
			OrderID:     dto.ID,
			Position:    i,
			AmountCents: extra.Amount().Cents(),
			Description: extra.Description(),
		})
	}

	return dto, items, extras
}

// toDomain reconstructs the aggregate from its table rows. Item and extra
// slices must already be sorted by position.
func toDomain(dto OrderDTO, itemDTOs []OrderItemDTO, extraDTOs []OrderExtraDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.NewStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]order.OrderItem, 0, len(itemDTOs))
	for _, itemDTO := range itemDTOs {
		item, itemErr := order.RestoreOrderItem(itemDTO.ProductID, itemDTO.Quantity,
			kernel.MoneyFromCents(itemDTO.UnitPriceCents))
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	var discount *order.Discount
	if dto.DiscountAmountCents != nil {
		reason := ""
		if dto.DiscountReason != nil {
			reason = *dto.DiscountReason
		}
		d, discountErr := order.NewDiscount(kernel.MoneyFromCents(*dto.DiscountAmountCents), reason)
		if discountErr != nil {
			return nil, discountErr
		}
		discount = &d
	}

	extras := make([]order.Extra, 0, len(extraDTOs))
	for _, extraDTO := range extraDTOs {
		extra, extraErr := order.NewExtra(kernel.MoneyFromCents(extraDTO.AmountCents), extraDTO.Description)
		if extraErr != nil {
			return nil, extraErr
		}
		extras = append(extras, extra)
	}

	return order.RestoreOrder(id, dto.TableIdentifier, status, items, discount, extras,
		dto.CreatedAt, dto.UpdatedAt)
}
