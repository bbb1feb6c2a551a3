package commands

import (
	"context"
	"errors"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/ports"
	"atelier/internal/pkg/guard"
)

var ErrApprovePaymentCommandIsNotConstructed = errors.New(
	"ApprovePaymentCommand must be created via NewApprovePaymentCommand constructor",
)

// ApprovePaymentParams is the raw input for the customer's payment step:
// the payment evidence plus the billing and shipping details that become
// final at this point.
type ApprovePaymentParams struct {
	OrderID      kernel.UUID
	PaymentProof Upload
	PaidAmount   kernel.Money
	InvoiceType  order.InvoiceType
	Company      string
	TaxOffice    string
	TaxNumber    string
	ShippingType order.ShippingType
	AddressLine  string
	District     string
	City         string
}

// ApprovePaymentCommand carries the validated payment step input. Corporate
// billing fields and the address requirement are enforced here so the
// handler never sees half-formed input.
type ApprovePaymentCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	paymentProof Upload
	paidAmount   kernel.Money
	invoice      order.InvoiceInfo
	shippingType order.ShippingType
	address      order.Address

	guard guard.ConstructorGuard
}

// NewApprovePaymentCommand validates the raw input and builds the command.
func NewApprovePaymentCommand(params ApprovePaymentParams) (ApprovePaymentCommand, error) {
	var e []error

	if err := params.OrderID.Validate(); err != nil {
		e = append(e, err)
	}
	if err := params.PaymentProof.validate(maxPhotoUploadBytes); err != nil {
		e = append(e, err)
	}

	invoice, err := order.NewInvoiceInfo(params.InvoiceType, params.Company, params.TaxOffice, params.TaxNumber)
	if err != nil {
		e = append(e, err)
	}

	var address order.Address
	if params.ShippingType.RequiresAddress() {
		address, err = order.NewAddress(params.AddressLine, params.District, params.City)
		if err != nil {
			e = append(e, err)
		}
	}
	if len(e) > 0 {
		return ApprovePaymentCommand{}, errors.Join(e...)
	}

	return ApprovePaymentCommand{
		orderID:      params.OrderID,
		paymentProof: params.PaymentProof,
		paidAmount:   params.PaidAmount,
		invoice:      invoice,
		shippingType: params.ShippingType,
		address:      address,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ApprovePaymentCommand) Validate() error {
	return c.guard.Validate(ErrApprovePaymentCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c ApprovePaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ApprovePaymentCommandHandler records the payment evidence with the final
// billing and shipping details, moving the order into the payment phase.
type ApprovePaymentCommandHandler struct {
	mutation orderMutation
	blobs    ports.BlobStore
}

// NewApprovePaymentCommandHandler creates the handler.
func NewApprovePaymentCommandHandler(uowFactory OrderUoWFactory, blobs ports.BlobStore,
	broadcaster *Broadcaster) ApprovePaymentCommandHandler {
	return ApprovePaymentCommandHandler{
		mutation: orderMutation{uowFactory: uowFactory, broadcaster: broadcaster},
		blobs:    blobs,
	}
}

// Handle stores the payment proof first, then applies the transition.
func (h *ApprovePaymentCommandHandler) Handle(ctx context.Context, cmd ApprovePaymentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	proof, err := storeUpload(ctx, h.blobs, cmd.OrderID(), order.ImagePayment, cmd.paymentProof)
	if err != nil {
		return err
	}

	if err = h.mutation.apply(ctx, cmd.OrderID(), func(aggregate *order.Order) error {
		return aggregate.ApprovePayment(order.ApprovePaymentParams{
			PaymentProof: proof,
			PaidAmount:   cmd.paidAmount,
			Invoice:      cmd.invoice,
			ShippingType: cmd.shippingType,
			Address:      cmd.address,
		}, time.Now())
	}); err != nil {
		discardBlob(ctx, h.blobs, proof)
		return err
	}
	return nil
}
