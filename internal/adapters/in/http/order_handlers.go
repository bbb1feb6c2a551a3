package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/application/usecases/queries"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// itemRequest is one product line in a create or add-item request.
type itemRequest struct {
	Product        string `json:"product"`
	Category       string `json:"category"`
	TypeTag        string `json:"type_tag"`
	Color          string `json:"color"`
	Quantity       int    `json:"quantity"`
	UnitPriceKurus int64  `json:"unit_price_kurus"`
}

func (r itemRequest) toInput() (commands.ItemInput, error) {
	unitPrice, err := kernel.NewMoney(r.UnitPriceKurus)
	if err != nil {
		return commands.ItemInput{}, err
	}
	return commands.ItemInput{
		Product:   r.Product,
		Category:  r.Category,
		TypeTag:   r.TypeTag,
		Color:     r.Color,
		Quantity:  r.Quantity,
		UnitPrice: unitPrice,
	}, nil
}

// CreateOrder handles POST /api/v1/orders. The request is multipart form
// data: order fields plus an items JSON array and an optional logo file.
func (s *Server) CreateOrder(ctx echo.Context) error {
	actor, err := actorFromHeaders(ctx)
	if err != nil {
		return respondBadRequest(ctx, "Invalid identity headers: "+err.Error())
	}

	shippingType, err := order.ShippingTypeFromCode(ctx.FormValue("shipping_type"))
	if err != nil {
		return respondError(ctx, err)
	}

	var itemRequests []itemRequest
	if err = json.Unmarshal([]byte(ctx.FormValue("items")), &itemRequests); err != nil {
		return respondBadRequest(ctx, "Invalid items payload: "+err.Error())
	}
	items := make([]commands.ItemInput, 0, len(itemRequests))
	for _, r := range itemRequests {
		input, inputErr := r.toInput()
		if inputErr != nil {
			return respondError(ctx, inputErr)
		}
		items = append(items, input)
	}

	params := commands.CreateOrderParams{
		CustomerID:    actor.ID(),
		Name:          ctx.FormValue("name"),
		CustomerName:  ctx.FormValue("customer_name"),
		CustomerPhone: ctx.FormValue("customer_phone"),
		CustomerEmail: ctx.FormValue("customer_email"),
		ShippingType:  shippingType,
		AddressLine:   ctx.FormValue("address_line"),
		District:      ctx.FormValue("district"),
		City:          ctx.FormValue("city"),
		Items:         items,
	}

	if logo, logoErr := readUpload(ctx, "logo"); logoErr == nil {
		params.Logo = &logo
	}

	cmd, err := commands.NewCreateOrderCommand(params)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": orderID.String()})
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return respondBadRequest(ctx, "Invalid order ID")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, resp)
}

// BeginDesign handles POST /api/v1/orders/:id/design-phase.
func (s *Server) BeginDesign(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return respondBadRequest(ctx, "Invalid order ID")
	}

	cmd, err := commands.NewConfirmToDesignCommand(orderID)
	if err != nil {
		return respondError(ctx, err)
	}
	if err = s.confirmToDesignHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// AttachDesign handles POST /api/v1/orders/:id/design.
func (s *Server) AttachDesign(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return respondBadRequest(ctx, "Invalid order ID")
	}
	upload, err := readUpload(ctx, "file")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAttachDesignCommand(orderID, upload)
	if err != nil {
		return respondError(ctx, err)
	}
	if err = s.attachDesignHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// UpdateDesign handles PUT /api/v1/orders/:id/design.
func (s *Server) UpdateDesign(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return respondBadRequest(ctx, "Invalid order ID")
	}
	upload, err := readUpload(ctx, "file")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateDesignCommand(orderID, upload)
	if err != nil {
		return respondError(ctx, err)
	}
	if err = s.updateDesignHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ApprovePayment handles POST /api/v1/orders/:id/payment. Multipart form
// data: the payment proof file plus billing and shipping fields.
func (s *Server) ApprovePayment(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return respondBadRequest(ctx, "Invalid order ID")
	}
	proof, err := readUpload(ctx, "file")
	if err != nil {
		return respondError(ctx, err)
	}

	paidKurus, err := strconv.ParseInt(ctx.FormValue("paid_amount_kurus"), 10, 64)
	if err != nil {
		return respondBadRequest(ctx, "Invalid paid amount")
	}
	paidAmount, err := kernel.NewMoney(paidKurus)
	if err != nil {
		return respondError(ctx, err)
	}
	invoiceType, err := order.InvoiceTypeFromCode(ctx.FormValue("invoice_type"))
	if err != nil {
		return respondError(ctx, err)
	}
	shippingType, err := order.ShippingTypeFromCode(ctx.FormValue("shipping_type"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewApprovePaymentCommand(commands.ApprovePaymentParams{
		OrderID:      orderID,
		PaymentProof: proof,
		PaidAmount:   paidAmount,
		InvoiceType:  invoiceType,
		Company:      ctx.FormValue("company"),
		TaxOffice:    ctx.FormValue("tax_office"),
		TaxNumber:    ctx.FormValue("tax_number"),
		ShippingType: shippingType,
		AddressLine:  ctx.FormValue("address_line"),
		District:     ctx.FormValue("district"),
		City:         ctx.FormValue("city"),
	})
	if err != nil {
		return respondError(ctx, err)
	}
	if err = s.approvePaymentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// VerifyPayment handles POST /api/v1/orders/:id/payment/verify.
func (s *Server) VerifyPayment(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return respondBadRequest(ctx, "Invalid order ID")
	}

	cmd, err := commands.NewVerifyPaymentCommand(orderID)
	if err != nil {
		return respondError(ctx, err)
	}
	if err = s.verifyPaymentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// SelectManufacturer handles POST /api/v1/orders/:id/manufacturer.
func (s *Server) SelectManufacturer(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return respondBadRequest(ctx, "Invalid order ID")
	}

	var body struct {
		ManufacturerID string `json:"manufacturer_id"`
	}
	if err = ctx.Bind(&body); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}
	manufacturerID, err := kernel.UUIDFromString(body.ManufacturerID)
	if err != nil {
		return respondBadRequest(ctx, "Invalid manufacturer ID")
	}

	cmd, err := commands.NewSelectManufacturerCommand(orderID, manufacturerID)
	if err != nil {
		return respondError(ctx, err)
	}
	if err = s.selectManufacturerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// StartProduction handles POST /api/v1/orders/:id/production/start.
func (s *Server) StartProduction(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return respondBadRequest(ctx, "Invalid order ID")
	}
	actor, err := actorFromHeaders(ctx)
	if err != nil {
		return respondBadRequest(ctx, "Invalid identity headers: "+err.Error())
	}

	cmd, err := commands.NewStartProductionCommand(orderID, actor)
	if err != nil {
		return respondError(ctx, err)
	}
	if err = s.startProductionHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// MarkProductReady handles POST /api/v1/orders/:id/product-ready.
func (s *Server) MarkProductReady(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return respondBadRequest(ctx, "Invalid order ID")
	}
	upload, err := readUpload(ctx, "file")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewMarkProductReadyCommand(orderID, upload)
	if err != nil {
		return respondError(ctx, err)
	}
	if err = s.markProductReadyHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// MarkInTransit handles POST /api/v1/orders/:id/in-transit.
func (s *Server) MarkInTransit(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return respondBadRequest(ctx, "Invalid order ID")
	}
	upload, err := readUpload(ctx, "file")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewMarkInTransitCommand(orderID, upload)
	if err != nil {
		return respondError(ctx, err)
	}
	if err = s.markInTransitHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// MarkDelivered handles POST /api/v1/orders/:id/delivered.
func (s *Server) MarkDelivered(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return respondBadRequest(ctx, "Invalid order ID")
	}

	cmd, err := commands.NewMarkDeliveredCommand(orderID)
	if err != nil {
		return respondError(ctx, err)
	}
	if err = s.markDeliveredHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// AttachInvoice handles POST /api/v1/orders/:id/invoice.
func (s *Server) AttachInvoice(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return respondBadRequest(ctx, "Invalid order ID")
	}
	upload, err := readUpload(ctx, "file")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAttachInvoiceCommand(orderID, upload)
	if err != nil {
		return respondError(ctx, err)
	}
	if err = s.attachInvoiceHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// UpdateNote handles PUT /api/v1/orders/:id/note.
func (s *Server) UpdateNote(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return respondBadRequest(ctx, "Invalid order ID")
	}

	var body struct {
		Note string `json:"note"`
	}
	if err = ctx.Bind(&body); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateOrderNoteCommand(orderID, body.Note)
	if err != nil {
		return respondError(ctx, err)
	}
	if err = s.updateOrderNoteHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// reasonRequest carries a title and free-form reason.
type reasonRequest struct {
	Title  string `json:"title"`
	Reason string `json:"reason"`
}

// RequestCancellation handles POST /api/v1/orders/:id/cancellation-request.
func (s *Server) RequestCancellation(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return respondBadRequest(ctx, "Invalid order ID")
	}
	var body reasonRequest
	if err = ctx.Bind(&body); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRequestCancellationCommand(orderID, body.Title, body.Reason)
	if err != nil {
		return respondError(ctx, err)
	}
	if err = s.requestCancellationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// DenyCancellation handles POST /api/v1/orders/:id/cancellation-request/deny.
func (s *Server) DenyCancellation(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return respondBadRequest(ctx, "Invalid order ID")
	}

	cmd, err := commands.NewResolveCancellationCommand(orderID)
	if err != nil {
		return respondError(ctx, err)
	}
	if err = s.resolveCancellationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// RejectOrder handles POST /api/v1/orders/:id/reject.
func (s *Server) RejectOrder(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return respondBadRequest(ctx, "Invalid order ID")
	}
	var body reasonRequest
	if err = ctx.Bind(&body); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRejectOrderCommand(orderID, body.Title, body.Reason)
	if err != nil {
		return respondError(ctx, err)
	}
	if err = s.rejectOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:id/cancel. An optional item_id
// removes a single line before the order freezes.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return respondBadRequest(ctx, "Invalid order ID")
	}
	var body struct {
		Title  string `json:"title"`
		Reason string `json:"reason"`
		ItemID string `json:"item_id,omitempty"`
	}
	if err = ctx.Bind(&body); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	var itemID *kernel.UUID
	if body.ItemID != "" {
		parsed, parseErr := kernel.UUIDFromString(body.ItemID)
		if parseErr != nil {
			return respondBadRequest(ctx, "Invalid item ID")
		}
		itemID = &parsed
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, body.Title, body.Reason, itemID)
	if err != nil {
		return respondError(ctx, err)
	}
	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ReactivateOrder handles POST /api/v1/orders/:id/reactivate.
func (s *Server) ReactivateOrder(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return respondBadRequest(ctx, "Invalid order ID")
	}

	cmd, err := commands.NewReactivateOrderCommand(orderID)
	if err != nil {
		return respondError(ctx, err)
	}
	if err = s.reactivateOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// AddOrderItem handles POST /api/v1/orders/:id/baskets/:basketId/items.
func (s *Server) AddOrderItem(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return respondBadRequest(ctx, "Invalid order ID")
	}
	basketID, err := kernel.UUIDFromString(ctx.Param("basketId"))
	if err != nil {
		return respondBadRequest(ctx, "Invalid basket ID")
	}

	var body itemRequest
	if err = ctx.Bind(&body); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}
	input, err := body.toInput()
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAddOrderItemCommand(orderID, basketID, input)
	if err != nil {
		return respondError(ctx, err)
	}
	if err = s.addOrderItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// RemoveOrderItem handles DELETE /api/v1/orders/:id/items/:itemId.
func (s *Server) RemoveOrderItem(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return respondBadRequest(ctx, "Invalid order ID")
	}
	itemID, err := kernel.UUIDFromString(ctx.Param("itemId"))
	if err != nil {
		return respondBadRequest(ctx, "Invalid item ID")
	}

	cmd, err := commands.NewRemoveOrderItemCommand(orderID, itemID)
	if err != nil {
		return respondError(ctx, err)
	}
	if err = s.removeOrderItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// UpdateOrderItem handles PUT /api/v1/orders/:id/items/:itemId.
func (s *Server) UpdateOrderItem(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return respondBadRequest(ctx, "Invalid order ID")
	}
	itemID, err := kernel.UUIDFromString(ctx.Param("itemId"))
	if err != nil {
		return respondBadRequest(ctx, "Invalid item ID")
	}

	var body struct {
		Quantity       int   `json:"quantity"`
		UnitPriceKurus int64 `json:"unit_price_kurus"`
	}
	if err = ctx.Bind(&body); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}
	unitPrice, err := kernel.NewMoney(body.UnitPriceKurus)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderItemCommand(orderID, itemID, body.Quantity, unitPrice)
	if err != nil {
		return respondError(ctx, err)
	}
	if err = s.updateOrderItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ApproveCancellation handles POST /api/v1/orders/:id/cancellation-request/approve.
func (s *Server) ApproveCancellation(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return respondBadRequest(ctx, "Invalid order ID")
	}

	cmd, err := commands.NewApproveCancellationCommand(orderID)
	if err != nil {
		return respondError(ctx, err)
	}
	if err = s.approveCancellationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// UpdateCustomerInfo handles PUT /api/v1/orders/:id/customer.
func (s *Server) UpdateCustomerInfo(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return respondBadRequest(ctx, "Invalid order ID")
	}

	var body struct {
		CustomerName  string `json:"customer_name"`
		CustomerPhone string `json:"customer_phone"`
		CustomerEmail string `json:"customer_email"`
	}
	if err = ctx.Bind(&body); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateCustomerInfoCommand(orderID,
		body.CustomerName, body.CustomerPhone, body.CustomerEmail)
	if err != nil {
		return respondError(ctx, err)
	}
	if err = s.updateCustomerInfoHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// UpdateShippingAddress handles PUT /api/v1/orders/:id/address.
func (s *Server) UpdateShippingAddress(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return respondBadRequest(ctx, "Invalid order ID")
	}

	var body struct {
		ShippingType string `json:"shipping_type"`
		AddressLine  string `json:"address_line"`
		District     string `json:"district"`
		City         string `json:"city"`
	}
	if err = ctx.Bind(&body); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}
	shippingType, err := order.ShippingTypeFromCode(body.ShippingType)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateShippingAddressCommand(commands.UpdateShippingAddressParams{
		OrderID:      orderID,
		ShippingType: shippingType,
		AddressLine:  body.AddressLine,
		District:     body.District,
		City:         body.City,
	})
	if err != nil {
		return respondError(ctx, err)
	}
	if err = s.updateShippingAddressHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// UpdateInvoiceInfo handles PUT /api/v1/orders/:id/invoice-info.
func (s *Server) UpdateInvoiceInfo(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return respondBadRequest(ctx, "Invalid order ID")
	}

	var body struct {
		InvoiceType string `json:"invoice_type"`
		Company     string `json:"company"`
		TaxOffice   string `json:"tax_office"`
		TaxNumber   string `json:"tax_number"`
	}
	if err = ctx.Bind(&body); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}
	invoiceType, err := order.InvoiceTypeFromCode(body.InvoiceType)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateInvoiceInfoCommand(orderID, invoiceType,
		body.Company, body.TaxOffice, body.TaxNumber)
	if err != nil {
		return respondError(ctx, err)
	}
	if err = s.updateInvoiceInfoHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// UpdatePaymentAmount handles PUT /api/v1/orders/:id/payment.
func (s *Server) UpdatePaymentAmount(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return respondBadRequest(ctx, "Invalid order ID")
	}

	var body struct {
		PaidAmountKurus int64 `json:"paid_amount_kurus"`
	}
	if err = ctx.Bind(&body); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}
	amount, err := kernel.NewMoney(body.PaidAmountKurus)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdatePaymentAmountCommand(orderID, amount)
	if err != nil {
		return respondError(ctx, err)
	}
	if err = s.updatePaymentAmountHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}
