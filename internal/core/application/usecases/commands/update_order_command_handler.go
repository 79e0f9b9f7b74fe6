package commands

import (
	"context"
	"errors"

	"pos/internal/core/domain/model/order"
	"pos/internal/core/domain/services"
	"pos/internal/pkg/errs"
)

// UpdateOrderCommandHandler reconciles an order with a partial desired state
// in two phases.
//
// Phase one assembles a pure candidate aggregate by overlaying the command's
// fields onto the current snapshot and validates it holistically. Phase two
// converges the live aggregate to the candidate through its own mutators and
// persists it. The split exists because each mutator enforces local rules per
// call: replacing items and discount together can pass through an
// intermediate state a single mutator would reject, even though the final
// state is valid. Validating the assembled candidate first removes those
// ordering effects.
//
// An update identical to the current state short-circuits before any
// mutation, so a no-op leaves updatedAt untouched.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	validator  services.OrderValidator
}

// NewUpdateOrderCommandHandler creates a handler for order reconciliation.
func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory, validator services.OrderValidator) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
		validator:  validator,
	}
}

// Handle reconciles the order and returns it in its resulting state.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	current, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	candidate, err := buildCandidate(current, cmd)
	if err != nil {
		return nil, err
	}

	if current.IsEquivalent(candidate) {
		if err = uow.Commit(ctx); err != nil {
			return nil, err
		}
		return current, nil
	}

	if err = h.validator.Validate(candidate); err != nil {
		return nil, err
	}

	if err = converge(current, candidate); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, current); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return current, nil
}

// buildCandidate overlays the command's desired fields onto the current
// snapshot and constructs a standalone aggregate from the result. No live
// state is touched.
func buildCandidate(current *order.Order, cmd UpdateOrderCommand) (*order.Order, error) {
	tableIdentifier := current.TableIdentifier()
	if cmd.TableIdentifier() != nil {
		tableIdentifier = *cmd.TableIdentifier()
	}

	status := current.Status()
	if cmd.Status() != nil {
		status = *cmd.Status()
	}

	items := current.Items()
	if patch := cmd.Items(); patch != nil {
		items = make([]order.OrderItem, 0, len(*patch))
		for _, p := range *patch {
			item, err := order.RestoreOrderItem(p.ProductID, p.Quantity, p.UnitPrice)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
	}

	discount := current.Discount()
	if cmd.DiscountProvided() {
		discount = nil
		if patch := cmd.Discount(); patch != nil {
			d, err := order.NewDiscount(patch.Amount, patch.Reason)
			if err != nil {
				return nil, err
			}
			discount = &d
		}
	}

	extras := current.Extras()
	if patch := cmd.Extras(); patch != nil {
		extras = make([]order.Extra, 0, len(*patch))
		for _, p := range *patch {
			extra, err := order.NewExtra(p.Amount, p.Description)
			if err != nil {
				return nil, err
			}
			extras = append(extras, extra)
		}
	}

	return order.RestoreOrder(current.ID(), tableIdentifier, status,
		items, discount, extras, current.CreatedAt(), current.UpdatedAt())
}

// converge applies the minimal mutator sequence that takes live to the
// candidate state. The ordering matters: items and extras first, then the
// discount (whose ceiling depends on them), and the status transition last,
// because a paid order rejects every other mutator. Item removal may clamp
// or drop the live discount in passing; the discount step afterwards restores
// whatever the candidate prescribes.
func converge(live, candidate *order.Order) error {
	// Reopening is not a transition the aggregate offers; without this check
	// a paid-to-open patch would fall through as a silent no-op.
	if live.Status().IsPaid() && candidate.Status().IsOpen() {
		return order.ErrOrderIsClosed
	}

	if live.TableIdentifier() != candidate.TableIdentifier() {
		if err := live.ChangeTableIdentifier(candidate.TableIdentifier()); err != nil {
			return err
		}
	}

	if !itemsEqual(live.Items(), candidate.Items()) {
		for _, item := range live.Items() {
			if err := live.RemoveItem(item.ProductID()); err != nil {
				return err
			}
		}
		for _, item := range candidate.Items() {
			if err := live.AddItem(item.ProductID(), item.Quantity(), item.UnitPrice()); err != nil {
				return err
			}
		}
	}

	if !extrasEqual(live.Extras(), candidate.Extras()) {
		for range live.Extras() {
			if err := live.RemoveExtra(0); err != nil {
				return err
			}
		}
		for _, extra := range candidate.Extras() {
			if err := live.AddExtra(extra.Amount(), extra.Description()); err != nil {
				return err
			}
		}
	}

	if err := convergeDiscount(live, candidate.Discount()); err != nil {
		return err
	}

	if candidate.Status().IsPaid() && live.Status().IsOpen() {
		if err := live.MarkAsPaid(); err != nil {
			return err
		}
	}

	return nil
}

func convergeDiscount(live *order.Order, desired *order.Discount) error {
	liveDiscount := live.Discount()

	switch {
	case desired == nil && liveDiscount == nil:
		return nil
	case desired == nil:
		return live.RemoveDiscount()
	case liveDiscount != nil && liveDiscount.IsEqual(*desired):
		return nil
	default:
		return live.ApplyDiscount(desired.Amount(), desired.Reason())
	}
}

func itemsEqual(a, b []order.OrderItem) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].IsEqual(b[i]) {
			return false
		}
	}
	return true
}

func extrasEqual(a, b []order.Extra) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].IsEqual(b[i]) {
			return false
		}
	}
	return true
}
