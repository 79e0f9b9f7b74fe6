package orderrepo

import (
	"context"
	"errors"
	"time"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
	"pos/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order cluster to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, items, extras := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}
	if err := r.insertChildren(ctx, items, extras); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order. Items and extras carry no stable identity
// beyond their content, so they are replaced wholesale: delete all child rows
// and reinsert in the aggregate's current insertion order.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, items, extras := fromDomain(aggregate)

	// Save with Select forces writing nil discount columns and unchanged
	// zero values, which Updates would skip.
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("TableIdentifier", "Status", "DiscountAmountCents", "DiscountReason", "UpdatedAt").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	if err := r.deleteChildren(ctx, dto.ID); err != nil {
		return err
	}
	if err := r.insertChildren(ctx, items, extras); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID, including its items and extras.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return r.load(ctx, dto)
}

// GetAll retrieves orders of any status, newest first.
func (r *GormOrderRepository) GetAll(ctx context.Context, limit int) ([]*order.Order, error) {
	return r.find(ctx, limit, nil)
}

// GetAllOpen retrieves open orders, newest first.
func (r *GormOrderRepository) GetAllOpen(ctx context.Context, limit int) ([]*order.Order, error) {
	return r.find(ctx, limit, func(db *gorm.DB) *gorm.DB {
		return db.Where("status = ?", order.StatusOpen.String())
	})
}

// GetAllPaidBefore retrieves paid orders last updated before the cutoff.
func (r *GormOrderRepository) GetAllPaidBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	return r.find(ctx, 0, func(db *gorm.DB) *gorm.DB {
		return db.Where("status = ? AND updated_at < ?", order.StatusPaid.String(), cutoff)
	})
}

// Delete removes an order together with its items and extras.
func (r *GormOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	if err := r.deleteChildren(ctx, id.Bytes()); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&OrderDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", id.String())
	}

	return nil
}

func (r *GormOrderRepository) find(ctx context.Context, limit int, scope func(*gorm.DB) *gorm.DB) ([]*order.Order, error) {
	query := r.db.WithContext(ctx).Order("created_at DESC")
	if scope != nil {
		query = scope(query)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var dtos []OrderDTO
	if err := query.Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := r.load(ctx, dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

func (r *GormOrderRepository) load(ctx context.Context, dto OrderDTO) (*order.Order, error) {
	var items []OrderItemDTO
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", dto.ID).
		Order("position").
		Find(&items).Error; err != nil {
		return nil, err
	}

	var extras []OrderExtraDTO
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", dto.ID).
		Order("position").
		Find(&extras).Error; err != nil {
		return nil, err
	}

	return toDomain(dto, items, extras)
}

func (r *GormOrderRepository) insertChildren(ctx context.Context, items []OrderItemDTO, extras []OrderExtraDTO) error {
	if len(items) > 0 {
		if err := r.db.WithContext(ctx).Create(&items).Error; err != nil {
			return err
		}
	}
	if len(extras) > 0 {
		if err := r.db.WithContext(ctx).Create(&extras).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *GormOrderRepository) deleteChildren(ctx context.Context, orderID any) error {
	if err := r.db.WithContext(ctx).Delete(&OrderItemDTO{}, "order_id = ?", orderID).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Delete(&OrderExtraDTO{}, "order_id = ?", orderID).Error
}
