package commands_test

import (
	"testing"

	"pos/internal/core/application/usecases/commands"
	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/product"
	"pos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCatalogProduct(t *testing.T, id kernel.UUID, priceCents int64) *product.Product {
	t.Helper()
	p, err := product.NewProduct(id, "Espresso", "",
		kernel.MoneyFromCents(priceCents), kernel.MoneyFromCents(priceCents/4))
	require.NoError(t, err)
	return p
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	productID := kernel.NewUUID()
	cmd, _ := commands.NewCreateOrderCommand(orderID, "table-7", []commands.ItemSpec{
		{ProductID: productID.String(), Quantity: 2},
	})

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", mock.Anything, productID).
			Return(newCatalogProduct(t, productID, 350), nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	orderRepo.AssertExpectations(t)
	productRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ProductNotFound(t *testing.T) {
	ctx := t.Context()
	productID := kernel.NewUUID()
	cmd, _ := commands.NewCreateOrderCommand(kernel.NewUUID(), "table-7", []commands.ItemSpec{
		{ProductID: productID.String(), Quantity: 1},
	})

	productRepo := new(MockProductRepository)
	productRepo.On("Get", mock.Anything, productID).
		Return(nil, errs.NewObjectNotFoundError("productId", productID)).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ProductRepository").Return(productRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrProductNotFound)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_InactiveProduct(t *testing.T) {
	ctx := t.Context()
	productID := kernel.NewUUID()
	cmd, _ := commands.NewCreateOrderCommand(kernel.NewUUID(), "table-7", []commands.ItemSpec{
		{ProductID: productID.String(), Quantity: 1},
	})

	inactive := newCatalogProduct(t, productID, 350)
	inactive.Deactivate()

	productRepo := new(MockProductRepository)
	productRepo.On("Get", mock.Anything, productID).Return(inactive, nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ProductRepository").Return(productRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	assert.ErrorIs(t, err, commands.ErrProductIsNotActive)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	var cmd commands.CreateOrderCommand // not constructed properly

	factory := new(MockUoWFactory)

	h := commands.NewCreateOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
	factory.AssertNotCalled(t, "Create")
}
