// Package http exposes the order workflow over a REST API. Handlers
// translate requests into commands and queries; all business rules live in
// the application and domain layers.
package http

import (
	"io"

	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/application/usecases/queries"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler           commands.CreateOrderCommandHandler
	confirmToDesignHandler       commands.ConfirmToDesignCommandHandler
	attachDesignHandler          commands.AttachDesignCommandHandler
	updateDesignHandler          commands.UpdateDesignCommandHandler
	approvePaymentHandler        commands.ApprovePaymentCommandHandler
	verifyPaymentHandler         commands.VerifyPaymentCommandHandler
	selectManufacturerHandler    commands.SelectManufacturerCommandHandler
	startProductionHandler       commands.StartProductionCommandHandler
	markProductReadyHandler      commands.MarkProductReadyCommandHandler
	markInTransitHandler         commands.MarkInTransitCommandHandler
	markDeliveredHandler         commands.MarkDeliveredCommandHandler
	attachInvoiceHandler         commands.AttachInvoiceCommandHandler
	updateOrderNoteHandler       commands.UpdateOrderNoteCommandHandler
	requestCancellationHandler   commands.RequestCancellationCommandHandler
	resolveCancellationHandler   commands.ResolveCancellationCommandHandler
	approveCancellationHandler   commands.ApproveCancellationCommandHandler
	rejectOrderHandler           commands.RejectOrderCommandHandler
	cancelOrderHandler           commands.CancelOrderCommandHandler
	reactivateOrderHandler       commands.ReactivateOrderCommandHandler
	addOrderItemHandler          commands.AddOrderItemCommandHandler
	updateOrderItemHandler       commands.UpdateOrderItemCommandHandler
	removeOrderItemHandler       commands.RemoveOrderItemCommandHandler
	updateCustomerInfoHandler    commands.UpdateCustomerInfoCommandHandler
	updateShippingAddressHandler commands.UpdateShippingAddressCommandHandler
	updateInvoiceInfoHandler     commands.UpdateInvoiceInfoCommandHandler
	updatePaymentAmountHandler   commands.UpdatePaymentAmountCommandHandler
	markNotificationReadHandler  commands.MarkNotificationReadCommandHandler

	getOrderHandler          queries.GetOrderQueryHandler
	listNotificationsHandler queries.ListNotificationsQueryHandler
}

// Handlers bundles every use case the server exposes.
type Handlers struct {
	CreateOrder           commands.CreateOrderCommandHandler
	ConfirmToDesign       commands.ConfirmToDesignCommandHandler
	AttachDesign          commands.AttachDesignCommandHandler
	UpdateDesign          commands.UpdateDesignCommandHandler
	ApprovePayment        commands.ApprovePaymentCommandHandler
	VerifyPayment         commands.VerifyPaymentCommandHandler
	SelectManufacturer    commands.SelectManufacturerCommandHandler
	StartProduction       commands.StartProductionCommandHandler
	MarkProductReady      commands.MarkProductReadyCommandHandler
	MarkInTransit         commands.MarkInTransitCommandHandler
	MarkDelivered         commands.MarkDeliveredCommandHandler
	AttachInvoice         commands.AttachInvoiceCommandHandler
	UpdateOrderNote       commands.UpdateOrderNoteCommandHandler
	RequestCancellation   commands.RequestCancellationCommandHandler
	ResolveCancellation   commands.ResolveCancellationCommandHandler
	ApproveCancellation   commands.ApproveCancellationCommandHandler
	RejectOrder           commands.RejectOrderCommandHandler
	CancelOrder           commands.CancelOrderCommandHandler
	ReactivateOrder       commands.ReactivateOrderCommandHandler
	AddOrderItem          commands.AddOrderItemCommandHandler
	UpdateOrderItem       commands.UpdateOrderItemCommandHandler
	RemoveOrderItem       commands.RemoveOrderItemCommandHandler
	UpdateCustomerInfo    commands.UpdateCustomerInfoCommandHandler
	UpdateShippingAddress commands.UpdateShippingAddressCommandHandler
	UpdateInvoiceInfo     commands.UpdateInvoiceInfoCommandHandler
	UpdatePaymentAmount   commands.UpdatePaymentAmountCommandHandler
	MarkNotificationRead  commands.MarkNotificationReadCommandHandler
	GetOrder              queries.GetOrderQueryHandler
	ListNotifications     queries.ListNotificationsQueryHandler
}

// NewServer creates the HTTP server with the required command and query
// handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{
		createOrderHandler:           handlers.CreateOrder,
		confirmToDesignHandler:       handlers.ConfirmToDesign,
		attachDesignHandler:          handlers.AttachDesign,
		updateDesignHandler:          handlers.UpdateDesign,
		approvePaymentHandler:        handlers.ApprovePayment,
		verifyPaymentHandler:         handlers.VerifyPayment,
		selectManufacturerHandler:    handlers.SelectManufacturer,
		startProductionHandler:       handlers.StartProduction,
		markProductReadyHandler:      handlers.MarkProductReady,
		markInTransitHandler:         handlers.MarkInTransit,
		markDeliveredHandler:         handlers.MarkDelivered,
		attachInvoiceHandler:         handlers.AttachInvoice,
		updateOrderNoteHandler:       handlers.UpdateOrderNote,
		requestCancellationHandler:   handlers.RequestCancellation,
		resolveCancellationHandler:   handlers.ResolveCancellation,
		approveCancellationHandler:   handlers.ApproveCancellation,
		rejectOrderHandler:           handlers.RejectOrder,
		cancelOrderHandler:           handlers.CancelOrder,
		reactivateOrderHandler:       handlers.ReactivateOrder,
		addOrderItemHandler:          handlers.AddOrderItem,
		updateOrderItemHandler:       handlers.UpdateOrderItem,
		removeOrderItemHandler:       handlers.RemoveOrderItem,
		updateCustomerInfoHandler:    handlers.UpdateCustomerInfo,
		updateShippingAddressHandler: handlers.UpdateShippingAddress,
		updateInvoiceInfoHandler:     handlers.UpdateInvoiceInfo,
		updatePaymentAmountHandler:   handlers.UpdatePaymentAmount,
		markNotificationReadHandler:  handlers.MarkNotificationRead,
		getOrderHandler:              handlers.GetOrder,
		listNotificationsHandler:     handlers.ListNotifications,
	}
}

// RegisterRoutes attaches every endpoint under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	v1 := e.Group("/api/v1")

	v1.POST("/orders", s.CreateOrder)
	v1.GET("/orders/:id", s.GetOrder)

	v1.POST("/orders/:id/design-phase", s.BeginDesign)
	v1.POST("/orders/:id/design", s.AttachDesign)
	v1.PUT("/orders/:id/design", s.UpdateDesign)
	v1.POST("/orders/:id/payment", s.ApprovePayment)
	v1.POST("/orders/:id/payment/verify", s.VerifyPayment)
	v1.POST("/orders/:id/manufacturer", s.SelectManufacturer)
	v1.POST("/orders/:id/production/start", s.StartProduction)
	v1.POST("/orders/:id/product-ready", s.MarkProductReady)
	v1.POST("/orders/:id/in-transit", s.MarkInTransit)
	v1.POST("/orders/:id/delivered", s.MarkDelivered)
	v1.POST("/orders/:id/invoice", s.AttachInvoice)
	v1.PUT("/orders/:id/note", s.UpdateNote)

	v1.PUT("/orders/:id/customer", s.UpdateCustomerInfo)
	v1.PUT("/orders/:id/address", s.UpdateShippingAddress)
	v1.PUT("/orders/:id/invoice-info", s.UpdateInvoiceInfo)
	v1.PUT("/orders/:id/payment", s.UpdatePaymentAmount)

	v1.POST("/orders/:id/cancellation-request", s.RequestCancellation)
	v1.POST("/orders/:id/cancellation-request/approve", s.ApproveCancellation)
	v1.POST("/orders/:id/cancellation-request/deny", s.DenyCancellation)
	v1.POST("/orders/:id/reject", s.RejectOrder)
	v1.POST("/orders/:id/cancel", s.CancelOrder)
	v1.POST("/orders/:id/reactivate", s.ReactivateOrder)

	v1.POST("/orders/:id/baskets/:basketId/items", s.AddOrderItem)
	v1.PUT("/orders/:id/items/:itemId", s.UpdateOrderItem)
	v1.DELETE("/orders/:id/items/:itemId", s.RemoveOrderItem)

	v1.GET("/notifications", s.ListNotifications)
	v1.POST("/notifications/:id/read", s.MarkNotificationRead)
}

// orderIDParam parses the :id path parameter.
func orderIDParam(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("id"))
}

// actorFromHeaders builds the acting identity from the X-User-Id and
// X-User-Role headers set by the authenticating gateway.
func actorFromHeaders(ctx echo.Context) (kernel.Actor, error) {
	id, err := kernel.UUIDFromString(ctx.Request().Header.Get("X-User-Id"))
	if err != nil {
		return kernel.Actor{}, err
	}
	role, err := kernel.RoleFromString(ctx.Request().Header.Get("X-User-Role"))
	if err != nil {
		return kernel.Actor{}, err
	}
	return kernel.NewActor(id, role)
}

// readUpload reads a multipart file field into an Upload.
func readUpload(ctx echo.Context, field string) (commands.Upload, error) {
	fileHeader, err := ctx.FormFile(field)
	if err != nil {
		return commands.Upload{}, errs.NewValueIsRequiredError(field)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return commands.Upload{}, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return commands.Upload{}, err
	}

	return commands.Upload{
		FileName: fileHeader.Filename,
		MimeType: fileHeader.Header.Get("Content-Type"),
		Data:     data,
	}, nil
}
