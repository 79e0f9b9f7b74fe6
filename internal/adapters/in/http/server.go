// Package http exposes the order and catalog use cases over a JSON API.
// It coordinates between echo handlers and the application layer, owning the
// translation of domain errors into HTTP status codes.
package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"pos/internal/core/application/usecases/commands"
	"pos/internal/core/application/usecases/queries"
	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
	"pos/internal/core/domain/services"
	"pos/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server wires HTTP routes to command and query handlers.
type Server struct {
	// Command handlers
	createOrderHandler        commands.CreateOrderCommandHandler
	updateOrderHandler        commands.UpdateOrderCommandHandler
	deleteOrderHandler        commands.DeleteOrderCommandHandler
	addItemHandler            commands.AddOrderItemCommandHandler
	changeItemQuantityHandler commands.ChangeOrderItemQuantityCommandHandler
	removeItemHandler         commands.RemoveOrderItemCommandHandler
	applyDiscountHandler      commands.ApplyOrderDiscountCommandHandler
	removeDiscountHandler     commands.RemoveOrderDiscountCommandHandler
	addExtraHandler           commands.AddOrderExtraCommandHandler
	removeExtraHandler        commands.RemoveOrderExtraCommandHandler
	markPaidHandler           commands.MarkOrderPaidCommandHandler
	createProductHandler      commands.CreateProductCommandHandler
	changeProductPriceHandler commands.ChangeProductPriceCommandHandler
	deactivateProductHandler  commands.DeactivateProductCommandHandler

	// Query handlers
	getOrdersHandler         queries.GetOrdersQueryHandler
	getActiveProductsHandler queries.GetActiveProductsQueryHandler
}

// NewServer creates an HTTP server with the required handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	addItemHandler commands.AddOrderItemCommandHandler,
	changeItemQuantityHandler commands.ChangeOrderItemQuantityCommandHandler,
	removeItemHandler commands.RemoveOrderItemCommandHandler,
	applyDiscountHandler commands.ApplyOrderDiscountCommandHandler,
	removeDiscountHandler commands.RemoveOrderDiscountCommandHandler,
	addExtraHandler commands.AddOrderExtraCommandHandler,
	removeExtraHandler commands.RemoveOrderExtraCommandHandler,
	markPaidHandler commands.MarkOrderPaidCommandHandler,
	createProductHandler commands.CreateProductCommandHandler,
	changeProductPriceHandler commands.ChangeProductPriceCommandHandler,
	deactivateProductHandler commands.DeactivateProductCommandHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getActiveProductsHandler queries.GetActiveProductsQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:        createOrderHandler,
		updateOrderHandler:        updateOrderHandler,
		deleteOrderHandler:        deleteOrderHandler,
		addItemHandler:            addItemHandler,
		changeItemQuantityHandler: changeItemQuantityHandler,
		removeItemHandler:         removeItemHandler,
		applyDiscountHandler:      applyDiscountHandler,
		removeDiscountHandler:     removeDiscountHandler,
		addExtraHandler:           addExtraHandler,
		removeExtraHandler:        removeExtraHandler,
		markPaidHandler:           markPaidHandler,
		createProductHandler:      createProductHandler,
		changeProductPriceHandler: changeProductPriceHandler,
		deactivateProductHandler:  deactivateProductHandler,
		getOrdersHandler:          getOrdersHandler,
		getActiveProductsHandler:  getActiveProductsHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.GET("/orders", s.GetOrders)
	api.POST("/orders", s.CreateOrder)
	api.PATCH("/orders/:id", s.UpdateOrder)
	api.DELETE("/orders/:id", s.DeleteOrder)

	api.POST("/orders/:id/items", s.AddOrderItem)
	api.PATCH("/orders/:id/items/:productId", s.ChangeOrderItemQuantity)
	api.DELETE("/orders/:id/items/:productId", s.RemoveOrderItem)

	api.POST("/orders/:id/discount", s.ApplyOrderDiscount)
	api.DELETE("/orders/:id/discount", s.RemoveOrderDiscount)

	api.POST("/orders/:id/extras", s.AddOrderExtra)
	api.DELETE("/orders/:id/extras/:index", s.RemoveOrderExtra)

	api.POST("/orders/:id/pay", s.MarkOrderPaid)

	api.GET("/products", s.GetProducts)
	api.POST("/products", s.CreateProduct)
	api.PATCH("/products/:id/price", s.ChangeProductPrice)
	api.DELETE("/products/:id", s.DeactivateProduct)
}

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type createOrderRequest struct {
	TableIdentifier string `json:"table_identifier"`
	Items           []struct {
		ProductID string `json:"product_id"`
		Quantity  int    `json:"quantity"`
	} `json:"items"`
}

// updateOrderRequest is the PATCH body. Pointer fields distinguish "absent"
// from "present"; the discount is kept raw so that an explicit null (remove)
// can be told apart from a missing key (leave unchanged).
type updateOrderRequest struct {
	TableIdentifier *string            `json:"table_identifier"`
	Status          *string            `json:"status"`
	Items           *[]itemPayload     `json:"items"`
	Discount        json.RawMessage    `json:"discount"`
	Extras          *[]extraPayload    `json:"extras"`
}

type itemPayload struct {
	ProductID string  `json:"product_id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

type discountPayload struct {
	Amount float64 `json:"amount"`
	Reason string  `json:"reason"`
}

type extraPayload struct {
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
}

type orderResponse struct {
	ID              string           `json:"id"`
	TableIdentifier string           `json:"table_identifier"`
	Status          string           `json:"status"`
	Items           []itemPayload    `json:"items"`
	Discount        *discountPayload `json:"discount,omitempty"`
	Extras          []extraPayload   `json:"extras"`
	Subtotal        float64          `json:"subtotal"`
	Total           float64          `json:"total"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

func orderToResponse(o *order.Order) orderResponse {
	resp := orderResponse{
		ID:              o.ID().String(),
		TableIdentifier: o.TableIdentifier(),
		Status:          o.Status().String(),
		Items:           make([]itemPayload, 0, len(o.Items())),
		Extras:          make([]extraPayload, 0, len(o.Extras())),
		Subtotal:        o.CalculateSubtotal().Value(),
		Total:           o.CalculateTotal().Value(),
		CreatedAt:       o.CreatedAt(),
		UpdatedAt:       o.UpdatedAt(),
	}

	for _, item := range o.Items() {
		resp.Items = append(resp.Items, itemPayload{
			ProductID: item.ProductID(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice().Value(),
		})
	}
	for _, extra := range o.Extras() {
		resp.Extras = append(resp.Extras, extraPayload{
			Amount:      extra.Amount().Value(),
			Description: extra.Description(),
		})
	}
	if discount := o.Discount(); discount != nil {
		resp.Discount = &discountPayload{
			Amount: discount.Amount().Value(),
			Reason: discount.Reason(),
		}
	}

	return resp
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req createOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	items := make([]commands.ItemSpec, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, commands.ItemSpec{ProductID: item.ProductID, Quantity: item.Quantity})
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, req.TableIdentifier, items)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": orderID.String()})
}

// GetOrders handles GET /api/v1/orders with optional status and limit params.
func (s *Server) GetOrders(ctx echo.Context) error {
	limit := 0
	if raw := ctx.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return badRequest(ctx, "Invalid limit")
		}
		limit = parsed
	}

	query, err := queries.NewGetOrdersQuery(ctx.QueryParam("status"), limit)
	if err != nil {
		return badRequest(ctx, "Invalid status filter: "+err.Error())
	}

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	type orderSummary struct {
		ID              string    `json:"id"`
		TableIdentifier string    `json:"table_identifier"`
		Status          string    `json:"status"`
		ItemCount       int       `json:"item_count"`
		Subtotal        float64   `json:"subtotal"`
		ExtrasTotal     float64   `json:"extras_total"`
		Discount        float64   `json:"discount"`
		Total           float64   `json:"total"`
		CreatedAt       time.Time `json:"created_at"`
		UpdatedAt       time.Time `json:"updated_at"`
	}

	response := make([]orderSummary, 0, len(orders))
	for _, o := range orders {
		response = append(response, orderSummary{
			ID:              o.ID.String(),
			TableIdentifier: o.TableIdentifier,
			Status:          o.Status.String(),
			ItemCount:       o.ItemCount,
			Subtotal:        o.Subtotal.Value(),
			ExtrasTotal:     o.ExtrasTotal.Value(),
			Discount:        o.Discount.Value(),
			Total:           o.Total.Value(),
			CreatedAt:       o.CreatedAt,
			UpdatedAt:       o.UpdatedAt,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateOrder handles PATCH /api/v1/orders/:id, the reconciliation endpoint.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req updateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var items *[]commands.ItemPatch
	if req.Items != nil {
		patches := make([]commands.ItemPatch, 0, len(*req.Items))
		for _, item := range *req.Items {
			unitPrice, priceErr := kernel.NewMoney(item.UnitPrice)
			if priceErr != nil {
				return badRequest(ctx, "Invalid unit price: "+priceErr.Error())
			}
			patches = append(patches, commands.ItemPatch{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				UnitPrice: unitPrice,
			})
		}
		items = &patches
	}

	discountProvided, discount, err := parseDiscountPatch(req.Discount)
	if err != nil {
		return badRequest(ctx, "Invalid discount: "+err.Error())
	}

	var extras *[]commands.ExtraPatch
	if req.Extras != nil {
		patches := make([]commands.ExtraPatch, 0, len(*req.Extras))
		for _, extra := range *req.Extras {
			amount, amountErr := kernel.NewMoney(extra.Amount)
			if amountErr != nil {
				return badRequest(ctx, "Invalid extra amount: "+amountErr.Error())
			}
			patches = append(patches, commands.ExtraPatch{
				Amount:      amount,
				Description: extra.Description,
			})
		}
		extras = &patches
	}

	cmd, err := commands.NewUpdateOrderCommand(orderID, req.TableIdentifier, req.Status,
		items, discountProvided, discount, extras)
	if err != nil {
		return badRequest(ctx, "Invalid update: "+err.Error())
	}

	updated, err := s.updateOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(updated))
}

// parseDiscountPatch decodes the tri-state discount field: an absent key
// leaves the discount unchanged, an explicit null removes it, and an object
// replaces it.
func parseDiscountPatch(raw json.RawMessage) (bool, *commands.DiscountPatch, error) {
	if len(raw) == 0 {
		return false, nil, nil
	}
	if string(raw) == "null" {
		return true, nil, nil
	}

	var payload discountPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return false, nil, err
	}

	amount, err := kernel.NewMoney(payload.Amount)
	if err != nil {
		return false, nil, err
	}

	return true, &commands.DiscountPatch{Amount: amount, Reason: payload.Reason}, nil
}

// DeleteOrder handles DELETE /api/v1/orders/:id.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AddOrderItem handles POST /api/v1/orders/:id/items.
func (s *Server) AddOrderItem(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req struct {
		ProductID string `json:"product_id"`
		Quantity  int    `json:"quantity"`
	}
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAddOrderItemCommand(orderID, req.ProductID, req.Quantity)
	if err != nil {
		return badRequest(ctx, "Invalid item: "+err.Error())
	}

	if err = s.addItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ChangeOrderItemQuantity handles PATCH /api/v1/orders/:id/items/:productId.
func (s *Server) ChangeOrderItemQuantity(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req struct {
		Delta int `json:"delta"`
	}
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewChangeOrderItemQuantityCommand(orderID, ctx.Param("productId"), req.Delta)
	if err != nil {
		return badRequest(ctx, "Invalid adjustment: "+err.Error())
	}

	if err = s.changeItemQuantityHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveOrderItem handles DELETE /api/v1/orders/:id/items/:productId.
func (s *Server) RemoveOrderItem(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewRemoveOrderItemCommand(orderID, ctx.Param("productId"))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.removeItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ApplyOrderDiscount handles POST /api/v1/orders/:id/discount.
func (s *Server) ApplyOrderDiscount(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req discountPayload
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	amount, err := kernel.NewMoney(req.Amount)
	if err != nil {
		return badRequest(ctx, "Invalid amount: "+err.Error())
	}

	cmd, err := commands.NewApplyOrderDiscountCommand(orderID, amount, req.Reason)
	if err != nil {
		return badRequest(ctx, "Invalid discount: "+err.Error())
	}

	if err = s.applyDiscountHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveOrderDiscount handles DELETE /api/v1/orders/:id/discount.
func (s *Server) RemoveOrderDiscount(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewRemoveOrderDiscountCommand(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.removeDiscountHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AddOrderExtra handles POST /api/v1/orders/:id/extras.
func (s *Server) AddOrderExtra(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req extraPayload
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	amount, err := kernel.NewMoney(req.Amount)
	if err != nil {
		return badRequest(ctx, "Invalid amount: "+err.Error())
	}

	cmd, err := commands.NewAddOrderExtraCommand(orderID, amount, req.Description)
	if err != nil {
		return badRequest(ctx, "Invalid extra: "+err.Error())
	}

	if err = s.addExtraHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveOrderExtra handles DELETE /api/v1/orders/:id/extras/:index.
func (s *Server) RemoveOrderExtra(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	index, err := strconv.Atoi(ctx.Param("index"))
	if err != nil {
		return badRequest(ctx, "Invalid extra index")
	}

	cmd, err := commands.NewRemoveOrderExtraCommand(orderID, index)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.removeExtraHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkOrderPaid handles POST /api/v1/orders/:id/pay.
func (s *Server) MarkOrderPaid(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewMarkOrderPaidCommand(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.markPaidHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetProducts handles GET /api/v1/products.
func (s *Server) GetProducts(ctx echo.Context) error {
	query := queries.NewGetActiveProductsQuery()

	products, err := s.getActiveProductsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	type productSummary struct {
		ID          string  `json:"id"`
		Name        string  `json:"name"`
		Description string  `json:"description"`
		Price       float64 `json:"price"`
	}

	response := make([]productSummary, 0, len(products))
	for _, p := range products {
		response = append(response, productSummary{
			ID:          p.ID.String(),
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price.Value(),
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateProduct handles POST /api/v1/products.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var req struct {
		Name        string  `json:"name"`
		Description string  `json:"description"`
		Price       float64 `json:"price"`
		Cost        float64 `json:"cost"`
	}
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	price, err := kernel.NewMoney(req.Price)
	if err != nil {
		return badRequest(ctx, "Invalid price: "+err.Error())
	}
	cost, err := kernel.NewMoney(req.Cost)
	if err != nil {
		return badRequest(ctx, "Invalid cost: "+err.Error())
	}

	productID := kernel.NewUUID()
	cmd, err := commands.NewCreateProductCommand(productID, req.Name, req.Description, price, cost)
	if err != nil {
		return badRequest(ctx, "Invalid product data: "+err.Error())
	}

	if err = s.createProductHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": productID.String()})
}

// ChangeProductPrice handles PATCH /api/v1/products/:id/price.
func (s *Server) ChangeProductPrice(ctx echo.Context) error {
	productID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid product id")
	}

	var req struct {
		Price float64 `json:"price"`
	}
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	price, err := kernel.NewMoney(req.Price)
	if err != nil {
		return badRequest(ctx, "Invalid price: "+err.Error())
	}

	cmd, err := commands.NewChangeProductPriceCommand(productID, price)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.changeProductPriceHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeactivateProduct handles DELETE /api/v1/products/:id.
func (s *Server) DeactivateProduct(ctx echo.Context) error {
	productID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid product id")
	}

	cmd, err := commands.NewDeactivateProductCommand(productID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.deactivateProductHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, errorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// domainError maps application and domain errors onto HTTP status codes:
// lookups to 404, state conflicts to 409, invariant violations to 422, and
// everything else to 500.
func domainError(ctx echo.Context, err error) error {
	var status int

	switch {
	case errors.Is(err, commands.ErrOrderNotFound),
		errors.Is(err, commands.ErrProductNotFound),
		errors.Is(err, order.ErrItemNotFound),
		errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, order.ErrOrderIsClosed),
		errors.Is(err, order.ErrOrderIsNotOpen),
		errors.Is(err, commands.ErrProductIsNotActive):
		status = http.StatusConflict
	case errors.Is(err, services.ErrPaidOrderIsEmpty),
		errors.Is(err, services.ErrItemHasNoPrice),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusUnprocessableEntity
	default:
		status = http.StatusInternalServerError
	}

	return ctx.JSON(status, errorResponse{
		Code:    status,
		Message: err.Error(),
	})
}
