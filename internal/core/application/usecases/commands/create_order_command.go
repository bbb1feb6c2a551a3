package commands

import (
	"context"
	"errors"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/ports"
	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// ItemInput is one product line supplied at creation or when adding a line
// to an existing order.
type ItemInput struct {
	Product   string
	Category  string
	TypeTag   string
	Color     string
	Quantity  int
	UnitPrice kernel.Money
}

func (i ItemInput) toDomain(pricing order.PricingPolicy) (*order.Item, error) {
	return order.NewItem(i.Product, i.Category, i.TypeTag, i.Color, i.Quantity, i.UnitPrice, pricing)
}

// CreateOrderParams is the raw input for order creation.
type CreateOrderParams struct {
	CustomerID    kernel.UUID
	Name          string
	CustomerName  string
	CustomerPhone string
	CustomerEmail string
	ShippingType  order.ShippingType
	AddressLine   string
	District      string
	City          string
	Items         []ItemInput
	Logo          *Upload
}

// CreateOrderCommand represents a customer's request to place a new order.
// All value-level validation happens in the constructor; the handler only
// orchestrates persistence.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID   kernel.UUID
	name         string
	customer     order.CustomerInfo
	shippingType order.ShippingType
	address      order.Address
	items        []ItemInput
	logo         *Upload

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the raw input and builds the command.
func NewCreateOrderCommand(params CreateOrderParams) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	var e []error
	if err := params.CustomerID.Validate(); err != nil {
		e = append(e, err)
	}

	customer, err := order.NewCustomerInfo(params.CustomerName, params.CustomerPhone, params.CustomerEmail)
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

	if len(params.Items) == 0 {
		e = append(e, errs.NewValueIsRequiredError("items"))
	}
	if params.Logo != nil {
		if err = params.Logo.validate(maxDesignUploadBytes); err != nil {
			e = append(e, err)
		}
	}
	if len(e) > 0 {
		return CreateOrderCommand{}, errors.Join(e...)
	}

	cmd.customerID = params.CustomerID
	cmd.name = params.Name
	cmd.customer = customer
	cmd.shippingType = params.ShippingType
	cmd.address = address
	cmd.items = params.Items
	cmd.logo = params.Logo
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CreateOrderCommandHandler persists new orders and announces them to the
// admin group.
type CreateOrderCommandHandler struct {
	uowFactory  OrderUoWFactory
	blobs       ports.BlobStore
	broadcaster *Broadcaster
	pricing     order.PricingPolicy
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, blobs ports.BlobStore,
	broadcaster *Broadcaster, pricing order.PricingPolicy) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory:  uowFactory,
		blobs:       blobs,
		broadcaster: broadcaster,
		pricing:     pricing,
	}
}

// Handle builds the order aggregate with its basket and persists it. The
// created order's ID is returned for the caller's response.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	basket := order.NewBasket()
	for _, input := range cmd.items {
		item, err := input.toDomain(h.pricing)
		if err != nil {
			return kernel.UUID{}, err
		}
		basket.AddItem(item)
	}

	aggregate, err := order.NewOrder(cmd.customerID, cmd.name, cmd.customer,
		cmd.shippingType, cmd.address, basket, time.Now())
	if err != nil {
		return kernel.UUID{}, err
	}

	if cmd.logo != nil {
		logo, err := storeUpload(ctx, h.blobs, aggregate.ID(), order.ImageLogo, *cmd.logo)
		if err != nil {
			return kernel.UUID{}, err
		}
		basket.AddLogo(logo)
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return kernel.UUID{}, err
	}
	queued := aggregate.PendingNotifications()
	if err = uow.NotificationRepository().Add(ctx, queued); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	if h.broadcaster != nil {
		h.broadcaster.Broadcast(ctx, queued)
	}
	return aggregate.ID(), nil
}
