package queries

import (
	"context"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler reads order summaries straight from the database,
// aggregating item and extra totals in SQL instead of hydrating aggregates.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order board queries.
// Requires a GORM database connection for query execution.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the query. Results are sorted newest first. The final
// total is computed here rather than in SQL so the zero floor matches the
// aggregate's arithmetic exactly.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			o.id,
			o.table_identifier,
			o.status,
			COALESCE(i.item_count, 0),
			COALESCE(i.subtotal_cents, 0),
			COALESCE(e.extras_cents, 0),
			COALESCE(o.discount_amount_cents, 0),
			o.created_at,
			o.updated_at
		FROM orders o
		LEFT JOIN (
			SELECT order_id, COUNT(*) AS item_count, SUM(quantity * unit_price_cents) AS subtotal_cents
			FROM order_items
			GROUP BY order_id
		) i ON i.order_id = o.id
		LEFT JOIN (
			SELECT order_id, SUM(amount_cents) AS extras_cents
			FROM order_extras
			GROUP BY order_id
		) e ON e.order_id = o.id
	`

	args := make([]any, 0, 2)
	if query.Status() != "" {
		sql += ` WHERE o.status = ?`
		args = append(args, query.Status().String())
	}
	sql += ` ORDER BY o.created_at DESC`
	if query.Limit() > 0 {
		sql += ` LIMIT ?`
		args = append(args, query.Limit())
	}

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetOrdersQueryResponse, 0)
	for rows.Next() {
		var resp GetOrdersQueryResponse
		var id uuid.UUID
		var status string
		var subtotalCents, extrasCents, discountCents int64

		if err = rows.Scan(
			&id,
			&resp.TableIdentifier,
			&status,
			&resp.ItemCount,
			&subtotalCents,
			&extrasCents,
			&discountCents,
			&resp.CreatedAt,
			&resp.UpdatedAt,
		); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID

		orderStatus, statusErr := order.NewStatus(status)
		if statusErr != nil {
			return nil, statusErr
		}
		resp.Status = orderStatus

		resp.Subtotal = kernel.MoneyFromCents(subtotalCents)
		resp.ExtrasTotal = kernel.MoneyFromCents(extrasCents)
		resp.Discount = kernel.MoneyFromCents(discountCents)

		totalCents := subtotalCents + extrasCents - discountCents
		if totalCents < 0 {
			totalCents = 0
		}
		resp.Total = kernel.MoneyFromCents(totalCents)

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
