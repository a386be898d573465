// Package http exposes the application's use cases over a JSON REST API.
package http

import (
	"errors"
	"net/http"

	"parcel/internal/core/application/usecases/commands"
	"parcel/internal/core/application/usecases/queries"
	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/order"
	"parcel/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	createDriverHandler      commands.CreateDriverCommandHandler
	assignDriverHandler      commands.AssignDriverCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler
	cancelOrderHandler       commands.CancelOrderCommandHandler
	recordPaymentHandler     commands.RecordPaymentCommandHandler
	recordFeedbackHandler    commands.RecordFeedbackCommandHandler

	// Query handlers
	getOrderHandler        queries.GetOrderQueryHandler
	getTrackedOrderHandler queries.GetTrackedOrderQueryHandler
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	createDriverHandler commands.CreateDriverCommandHandler,
	assignDriverHandler commands.AssignDriverCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	recordPaymentHandler commands.RecordPaymentCommandHandler,
	recordFeedbackHandler commands.RecordFeedbackCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getTrackedOrderHandler queries.GetTrackedOrderQueryHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		createDriverHandler:      createDriverHandler,
		assignDriverHandler:      assignDriverHandler,
		updateOrderStatusHandler: updateOrderStatusHandler,
		cancelOrderHandler:       cancelOrderHandler,
		recordPaymentHandler:     recordPaymentHandler,
		recordFeedbackHandler:    recordFeedbackHandler,
		getOrderHandler:          getOrderHandler,
		getTrackedOrderHandler:   getTrackedOrderHandler,
		getActiveOrdersHandler:   getActiveOrdersHandler,
	}
}

// RegisterRoutes mounts all order endpoints under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	v1 := e.Group("/api/v1")
	v1.POST("/orders", s.CreateOrder)
	v1.GET("/orders/active", s.GetActiveOrders)
	v1.GET("/orders/:orderId", s.GetOrder)
	v1.POST("/orders/:orderId/assign", s.AssignDriver)
	v1.POST("/orders/:orderId/status", s.UpdateOrderStatus)
	v1.POST("/orders/:orderId/cancel", s.CancelOrder)
	v1.POST("/orders/:orderId/payment", s.RecordPayment)
	v1.POST("/orders/:orderId/feedback", s.RecordFeedback)
	v1.GET("/tracking/:code", s.TrackOrder)
	v1.POST("/drivers", s.CreateDriver)
}

// CreateOrder handles POST /api/v1/orders - places a new order and returns
// the priced cost breakdown.
//
//	@Summary		Place an order
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			order	body		NewOrder	true	"Order to place"
//	@Success		201		{object}	OrderCreated
//	@Failure		400		{object}	Error
//	@Failure		500		{object}	Error
//	@Router			/api/v1/orders [post]
func (s *Server) CreateOrder(ctx echo.Context) error {
	var newOrder NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := s.buildCreateOrderCommand(newOrder)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	result, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderCreatedFromResult(result))
}

// CreateDriver handles POST /api/v1/drivers - registers a new driver.
//
//	@Summary		Register a driver
//	@Tags			drivers
//	@Accept			json
//	@Produce		json
//	@Param			driver	body		NewDriver	true	"Driver to register"
//	@Success		201		{object}	DriverCreated
//	@Failure		400		{object}	Error
//	@Failure		500		{object}	Error
//	@Router			/api/v1/drivers [post]
func (s *Server) CreateDriver(ctx echo.Context) error {
	var newDriver NewDriver
	if err := ctx.Bind(&newDriver); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	phone, err := kernel.NewPhone(newDriver.Phone)
	if err != nil {
		return badRequest(ctx, "Invalid phone: "+newDriver.Phone)
	}

	cmd, err := commands.NewCreateDriverCommand(newDriver.Name, phone)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.createDriverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, DriverCreated{
		DriverID: cmd.DriverID().String(),
	})
}

// GetOrder handles GET /api/v1/orders/:orderId - returns the order with its
// projected delivery timeline.
//
//	@Summary		Get an order by id
//	@Tags			orders
//	@Produce		json
//	@Param			orderId	path		string	true	"Order id"
//	@Success		200		{object}	Order
//	@Failure		400		{object}	Error
//	@Failure		404		{object}	Error
//	@Router			/api/v1/orders/{orderId} [get]
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	response, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromResponse(response))
}

// TrackOrder handles GET /api/v1/tracking/:code - public tracking lookup.
//
//	@Summary		Track an order by tracking code
//	@Tags			tracking
//	@Produce		json
//	@Param			code	path		string	true	"Tracking code"
//	@Success		200		{object}	Order
//	@Failure		400		{object}	Error
//	@Failure		404		{object}	Error
//	@Router			/api/v1/tracking/{code} [get]
func (s *Server) TrackOrder(ctx echo.Context) error {
	code, err := kernel.TrackingCodeFromString(ctx.Param("code"))
	if err != nil {
		return badRequest(ctx, "Invalid tracking code")
	}

	query, err := queries.NewGetTrackedOrderQuery(code)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	response, err := s.getTrackedOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromResponse(response))
}

// GetActiveOrders handles GET /api/v1/orders/active - dispatch dashboard listing.
//
//	@Summary		List active orders
//	@Tags			orders
//	@Produce		json
//	@Success		200	{array}		ActiveOrder
//	@Failure		500	{object}	Error
//	@Router			/api/v1/orders/active [get]
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	query := queries.NewGetActiveOrdersQuery()

	orders, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, activeOrdersFromResponses(orders))
}

// AssignDriver handles POST /api/v1/orders/:orderId/assign - manually assigns
// a driver to a pending order.
//
//	@Summary		Assign a driver to an order
//	@Tags			orders
//	@Accept			json
//	@Param			orderId	path	string			true	"Order id"
//	@Param			body	body	AssignDriver	true	"Driver to assign"
//	@Success		204
//	@Failure		400	{object}	Error
//	@Failure		404	{object}	Error
//	@Failure		409	{object}	Error
//	@Router			/api/v1/orders/{orderId}/assign [post]
func (s *Server) AssignDriver(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var body AssignDriver
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	driverID, err := kernel.UUIDFromString(body.DriverID)
	if err != nil {
		return badRequest(ctx, "Invalid driver id")
	}

	cmd, err := commands.NewAssignDriverCommand(orderID, driverID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.assignDriverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateOrderStatus handles POST /api/v1/orders/:orderId/status - advances the
// order one step along the delivery chain.
//
//	@Summary		Advance an order's delivery status
//	@Tags			orders
//	@Accept			json
//	@Param			orderId	path	string			true	"Order id"
//	@Param			body	body	UpdateStatus	true	"Target status"
//	@Success		204
//	@Failure		400	{object}	Error
//	@Failure		404	{object}	Error
//	@Failure		409	{object}	Error
//	@Router			/api/v1/orders/{orderId}/status [post]
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var body UpdateStatus
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	target, err := order.StatusFromString(body.Status)
	if err != nil {
		return badRequest(ctx, "Invalid status: "+body.Status)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, target)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:orderId/cancel.
//
//	@Summary		Cancel an order
//	@Tags			orders
//	@Accept			json
//	@Param			orderId	path	string		true	"Order id"
//	@Param			body	body	CancelOrder	true	"Cancellation reason"
//	@Success		204
//	@Failure		400	{object}	Error
//	@Failure		404	{object}	Error
//	@Failure		409	{object}	Error
//	@Router			/api/v1/orders/{orderId}/cancel [post]
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var body CancelOrder
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, body.Reason)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RecordPayment handles POST /api/v1/orders/:orderId/payment - moves the
// payment axis of the order.
//
//	@Summary		Record a payment status change
//	@Tags			orders
//	@Accept			json
//	@Param			orderId	path	string			true	"Order id"
//	@Param			body	body	RecordPayment	true	"Target payment status"
//	@Success		204
//	@Failure		400	{object}	Error
//	@Failure		404	{object}	Error
//	@Failure		409	{object}	Error
//	@Router			/api/v1/orders/{orderId}/payment [post]
func (s *Server) RecordPayment(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var body RecordPayment
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	target, err := order.PaymentStatusFromString(body.Status)
	if err != nil {
		return badRequest(ctx, "Invalid payment status: "+body.Status)
	}

	cmd, err := commands.NewRecordPaymentCommand(orderID, target)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.recordPaymentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RecordFeedback handles POST /api/v1/orders/:orderId/feedback.
//
//	@Summary		Record post-delivery feedback
//	@Tags			orders
//	@Accept			json
//	@Param			orderId	path	string			true	"Order id"
//	@Param			body	body	RecordFeedback	true	"Feedback"
//	@Success		204
//	@Failure		400	{object}	Error
//	@Failure		404	{object}	Error
//	@Failure		409	{object}	Error
//	@Router			/api/v1/orders/{orderId}/feedback [post]
func (s *Server) RecordFeedback(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var body RecordFeedback
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	role, err := order.RoleFromString(body.Role)
	if err != nil {
		return badRequest(ctx, "Invalid role: "+body.Role)
	}

	cmd, err := commands.NewRecordFeedbackCommand(orderID, role, body.Rating, body.Comment)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.recordFeedbackHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) buildCreateOrderCommand(newOrder NewOrder) (commands.CreateOrderCommand, error) {
	customerID, err := kernel.UUIDFromString(newOrder.CustomerID)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	pickup, err := addressFromContract(newOrder.Pickup)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}
	delivery, err := addressFromContract(newOrder.Delivery)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}
	route, err := order.NewRoute(pickup, delivery)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	category, err := order.CategoryFromString(newOrder.Package.Category)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}
	pkg, err := order.NewPackage(category, newOrder.Package.Description,
		newOrder.Package.IsFragile, newOrder.Package.HasInsurance)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	phone, err := kernel.NewPhone(newOrder.Recipient.Phone)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}
	recipient, err := order.NewRecipient(newOrder.Recipient.Name, phone)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	paymentMethod, err := order.PaymentMethodFromString(newOrder.PaymentMethod)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}
	paymentTerm, err := order.PaymentTermFromString(newOrder.PaymentTerm)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	return commands.NewCreateOrderCommand(
		customerID,
		route,
		pkg,
		recipient,
		newOrder.DistanceKm,
		newOrder.SpecialInstructions,
		paymentMethod,
		paymentTerm,
	)
}

func addressFromContract(contract Address) (kernel.Address, error) {
	var point *kernel.GeoPoint
	if contract.Lat != nil && contract.Lon != nil {
		p, err := kernel.NewGeoPoint(*contract.Lat, *contract.Lon)
		if err != nil {
			return kernel.Address{}, err
		}
		point = &p
	}
	return kernel.NewAddress(contract.Text, point)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// writeError maps application errors onto HTTP status codes: validation
// failures to 400, missing objects to 404, rejected transitions and write
// conflicts to 409, everything else to 500.
func writeError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrConcurrencyConflict):
		status = http.StatusConflict
	}

	return ctx.JSON(status, Error{
		Code:    status,
		Message: err.Error(),
	})
}
