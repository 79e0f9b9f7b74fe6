package commands_test

import (
	"testing"
	"time"

	"pos/internal/core/application/usecases/commands"
	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
	"pos/internal/core/domain/services"
	"pos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func restoreOrder(t *testing.T, id kernel.UUID, status order.Status,
	items []order.OrderItem, discount *order.Discount, extras []order.Extra) *order.Order {
	t.Helper()
	createdAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	o, err := order.RestoreOrder(id, "table-1", status, items, discount, extras, createdAt, createdAt)
	require.NoError(t, err)
	return o
}

func cents(v int64) kernel.Money { return kernel.MoneyFromCents(v) }

func TestUpdateOrderCommandHandler_Handle_NoOp(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	item, _ := order.NewOrderItem("p1", 2, cents(1000))
	current := restoreOrder(t, orderID, order.StatusOpen, []order.OrderItem{item}, nil, nil)
	updatedAtBefore := current.UpdatedAt()

	// Same table, items untouched: the candidate is equivalent.
	cmd, err := commands.NewUpdateOrderCommand(orderID, strPtr("table-1"), nil, nil, false, nil, nil)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", mock.Anything, orderID).Return(current, nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderCommandHandler(factory, services.NewOrderValidator())
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Same(t, current, result)
	assert.Equal(t, updatedAtBefore, result.UpdatedAt())
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateOrderCommandHandler_Handle_ReplacesItemsDiscountAndStatusTogether(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	item, _ := order.NewOrderItem("p1", 2, cents(1000))
	current := restoreOrder(t, orderID, order.StatusOpen, []order.OrderItem{item}, nil, nil)

	// Swap the only item for a pricier one, add a discount larger than the
	// old total, and pay, all in one patch. Any single-mutator ordering that
	// applied the discount first would reject this.
	items := []commands.ItemPatch{{ProductID: "p2", Quantity: 1, UnitPrice: cents(3000)}}
	discount := &commands.DiscountPatch{Amount: cents(2500), Reason: "manager comp"}
	cmd, err := commands.NewUpdateOrderCommand(orderID, nil, strPtr("paid"), &items, true, discount, nil)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", mock.Anything, orderID).Return(current, nil).Once()
	orderRepo.On("Update", mock.Anything, current).Return(nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderCommandHandler(factory, services.NewOrderValidator())
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, result.Status().IsPaid())
	require.Len(t, result.Items(), 1)
	assert.Equal(t, "p2", result.Items()[0].ProductID())
	require.NotNil(t, result.Discount())
	assert.Equal(t, int64(2500), result.Discount().Amount().Cents())
	assert.Equal(t, int64(500), result.CalculateTotal().Cents())
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateOrderCommandHandler_Handle_ValidationLeavesOrderUntouched(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	item, _ := order.NewOrderItem("p1", 1, cents(400))
	current := restoreOrder(t, orderID, order.StatusOpen, []order.OrderItem{item}, nil, nil)

	discount := &commands.DiscountPatch{Amount: cents(99900), Reason: "too much"}
	cmd, err := commands.NewUpdateOrderCommand(orderID, nil, nil, nil, true, discount, nil)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", mock.Anything, orderID).Return(current, nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderCommandHandler(factory, services.NewOrderValidator())
	result, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, order.ErrDiscountExceedsTotal)
	assert.Nil(t, result)
	assert.Nil(t, current.Discount())
	assert.Len(t, current.Items(), 1)
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestUpdateOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewUpdateOrderCommand(orderID, strPtr("table-2"), nil, nil, false, nil, nil)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", mock.Anything, orderID).
		Return(nil, errs.NewObjectNotFoundError("orderId", orderID)).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderCommandHandler(factory, services.NewOrderValidator())
	_, err = h.Handle(ctx, cmd)

	assert.ErrorIs(t, err, commands.ErrOrderNotFound)
}

func TestUpdateOrderCommandHandler_Handle_RejectsReopening(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	item, _ := order.NewOrderItem("p1", 1, cents(400))
	current := restoreOrder(t, orderID, order.StatusPaid, []order.OrderItem{item}, nil, nil)

	cmd, err := commands.NewUpdateOrderCommand(orderID, nil, strPtr("open"), nil, false, nil, nil)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", mock.Anything, orderID).Return(current, nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderCommandHandler(factory, services.NewOrderValidator())
	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, order.ErrOrderIsClosed)
	assert.True(t, current.Status().IsPaid())
}

func TestUpdateOrderCommandHandler_Handle_RejectsPayingEmptyOrder(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	current := restoreOrder(t, orderID, order.StatusOpen, nil, nil, nil)

	// MarkAsPaid itself would accept this; the holistic validator is what
	// stops an empty order from settling through reconciliation.
	cmd, err := commands.NewUpdateOrderCommand(orderID, nil, strPtr("paid"), nil, false, nil, nil)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", mock.Anything, orderID).Return(current, nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderCommandHandler(factory, services.NewOrderValidator())
	result, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrPaidOrderIsEmpty)
	assert.Nil(t, result)
	assert.True(t, current.Status().IsOpen())
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestUpdateOrderCommandHandler_Handle_ClearsItemsWithEmptySlice(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	item, _ := order.NewOrderItem("p1", 1, cents(400))
	current := restoreOrder(t, orderID, order.StatusOpen, []order.OrderItem{item}, nil, nil)

	empty := []commands.ItemPatch{}
	cmd, err := commands.NewUpdateOrderCommand(orderID, nil, nil, &empty, false, nil, nil)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", mock.Anything, orderID).Return(current, nil).Once()
	orderRepo.On("Update", mock.Anything, current).Return(nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderCommandHandler(factory, services.NewOrderValidator())
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Empty(t, result.Items())
}
