package order

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/notification"
	"atelier/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder factory or RestoreOrder. This ensures all orders are
	// properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

var designMimeTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"image/webp":      true,
	"application/pdf": true,
}

var photoMimeTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// Order is the aggregate root of the workflow. It owns the status field and
// governs every legal transition, the side data each transition requires, and
// the notification records each transition emits.
//
// Order maintains these invariants:
//   - status only advances along its defined successor chain
//   - rejection state freezes the order at any stage; no forward transition is
//     allowed while the order is frozen
//   - offerPrice always equals the sum of quantity times unit price over all
//     current items
//   - can only be created through NewOrder or rehydrated through RestoreOrder
//
// Transitions never publish anything themselves. They append notification
// records to a pending list that the application layer persists in the same
// unit of work and broadcasts after commit.
type Order struct {
	id   kernel.UUID
	code string
	name string
	note string

	customerID     kernel.UUID
	manufacturerID *kernel.UUID

	status           Status
	rejection        RejectionState
	productionStatus ProductionStatus

	customer     CustomerInfo
	invoice      InvoiceInfo
	shippingType ShippingType
	address      Address

	offerPrice kernel.Money
	paidAmount kernel.Money

	adminRead    bool
	customerRead bool

	productionStartDate     *time.Time
	estimatedProductionDate *time.Time
	productionDate          *time.Time

	baskets      []*Basket
	images       map[ImageKind]Image
	cancellation CancellationRecord

	createdAt time.Time

	pending []*notification.Notification

	isConstructed bool
}

// NewOrder creates a new Order owned by the given customer. The order starts
// at Confirmed with an Active rejection state and production not started, and
// its offer price is computed from the basket's items. A notification for the
// admin group is queued so staff learn about the new order.
func NewOrder(customerID kernel.UUID, name string, customer CustomerInfo,
	shippingType ShippingType, address Address, basket *Basket, now time.Time) (*Order, error) {
	var e []error

	if err := customerID.Validate(); err != nil {
		e = append(e, err)
	}
	if strings.TrimSpace(name) == "" {
		e = append(e, errs.NewValueIsRequiredError("name"))
	}
	if err := shippingType.Validate(); err != nil {
		e = append(e, err)
	}
	if shippingType.RequiresAddress() && address.IsEmpty() {
		e = append(e, errs.NewValueIsRequiredError("address"))
	}
	if basket == nil || len(basket.Items()) == 0 {
		e = append(e, errs.NewValueIsRequiredError("basket"))
	}
	if len(e) > 0 {
		return nil, errors.Join(e...)
	}

	order := &Order{
		id:               kernel.NewUUID(),
		code:             generateOrderCode(now),
		name:             name,
		customerID:       customerID,
		status:           Confirmed,
		rejection:        RejectionActive,
		productionStatus: ProductionNotStarted,
		customer:         customer,
		shippingType:     shippingType,
		address:          address,
		customerRead:     true,
		baskets:          []*Basket{basket},
		images:           make(map[ImageKind]Image),
		createdAt:        now,
		isConstructed:    true,
	}
	order.recomputeOfferPrice()

	if err := order.notifyAdmins("New Order",
		fmt.Sprintf("Order %s has been placed and awaits confirmation.", order.code), now); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrderParams carries the persisted state of an order for rehydration.
type RestoreOrderParams struct {
	ID                      kernel.UUID
	Code                    string
	Name                    string
	Note                    string
	CustomerID              kernel.UUID
	ManufacturerID          *kernel.UUID
	Status                  Status
	Rejection               RejectionState
	ProductionStatus        ProductionStatus
	Customer                CustomerInfo
	Invoice                 InvoiceInfo
	ShippingType            ShippingType
	Address                 Address
	OfferPrice              kernel.Money
	PaidAmount              kernel.Money
	AdminRead               bool
	CustomerRead            bool
	ProductionStartDate     *time.Time
	EstimatedProductionDate *time.Time
	ProductionDate          *time.Time
	Baskets                 []*Basket
	Images                  map[ImageKind]Image
	Cancellation            CancellationRecord
	CreatedAt               time.Time
}

// RestoreOrder rehydrates an order from persistence. It bypasses creation
// validation; the stored state is trusted.
func RestoreOrder(params RestoreOrderParams) *Order {
	images := params.Images
	if images == nil {
		images = make(map[ImageKind]Image)
	}
	return &Order{
		id:                      params.ID,
		code:                    params.Code,
		name:                    params.Name,
		note:                    params.Note,
		customerID:              params.CustomerID,
		manufacturerID:          params.ManufacturerID,
		status:                  params.Status,
		rejection:               params.Rejection,
		productionStatus:        params.ProductionStatus,
		customer:                params.Customer,
		invoice:                 params.Invoice,
		shippingType:            params.ShippingType,
		address:                 params.Address,
		offerPrice:              params.OfferPrice,
		paidAmount:              params.PaidAmount,
		adminRead:               params.AdminRead,
		customerRead:            params.CustomerRead,
		productionStartDate:     params.ProductionStartDate,
		estimatedProductionDate: params.EstimatedProductionDate,
		productionDate:          params.ProductionDate,
		baskets:                 params.Baskets,
		images:                  images,
		cancellation:            params.Cancellation,
		createdAt:               params.CreatedAt,
		isConstructed:           true,
	}
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Code returns the human-readable order code.
func (o *Order) Code() string {
	return o.code
}

// Name returns the display name of the order.
func (o *Order) Name() string {
	return o.name
}

// Note returns the free-form note on the order.
func (o *Order) Note() string {
	return o.note
}

// CustomerID returns the owning customer's ID.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// ManufacturerID returns the assigned manufacturer's ID, or nil when no
// manufacturer has been selected yet.
func (o *Order) ManufacturerID() *kernel.UUID {
	return o.manufacturerID
}

// Status returns the current stage of the order.
func (o *Order) Status() Status {
	return o.status
}

// Rejection returns the orthogonal rejection state.
func (o *Order) Rejection() RejectionState {
	return o.rejection
}

// ProductionStatus returns the manufacturing progress flag.
func (o *Order) ProductionStatus() ProductionStatus {
	return o.productionStatus
}

// Customer returns the contact snapshot captured at creation.
func (o *Order) Customer() CustomerInfo {
	return o.customer
}

// Invoice returns the billing details captured at the payment step.
func (o *Order) Invoice() InvoiceInfo {
	return o.invoice
}

// ShippingType returns how the finished product reaches the customer.
func (o *Order) ShippingType() ShippingType {
	return o.shippingType
}

// Address returns the delivery address. It is the zero value for office
// pickup orders.
func (o *Order) Address() Address {
	return o.address
}

// OfferPrice returns the total price computed from the order's items.
func (o *Order) OfferPrice() kernel.Money {
	return o.offerPrice
}

// PaidAmount returns the amount the customer declared at payment.
func (o *Order) PaidAmount() kernel.Money {
	return o.paidAmount
}

// AdminRead reports whether staff have seen the latest change.
func (o *Order) AdminRead() bool {
	return o.adminRead
}

// CustomerRead reports whether the customer has seen the latest change.
func (o *Order) CustomerRead() bool {
	return o.customerRead
}

// ProductionStartDate returns the scheduled production start, set when
// payment is verified.
func (o *Order) ProductionStartDate() *time.Time {
	return o.productionStartDate
}

// EstimatedProductionDate returns the estimated completion date.
func (o *Order) EstimatedProductionDate() *time.Time {
	return o.estimatedProductionDate
}

// ProductionDate returns the actual production completion timestamp.
func (o *Order) ProductionDate() *time.Time {
	return o.productionDate
}

// Baskets returns the order's baskets.
func (o *Order) Baskets() []*Basket {
	return o.baskets
}

// Images returns the current evidence image for each kind.
func (o *Order) Images() map[ImageKind]Image {
	return o.images
}

// Image returns the current image of the given kind and whether one exists.
func (o *Order) Image(kind ImageKind) (Image, bool) {
	img, ok := o.images[kind]
	return img, ok
}

// Cancellation returns the freeze record, or the zero value when the order
// has never been rejected or cancelled.
func (o *Order) Cancellation() CancellationRecord {
	return o.cancellation
}

// CreatedAt returns when the order was placed.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// PendingNotifications returns the notification records queued by transitions
// since the aggregate was loaded. The application layer persists them in the
// same unit of work as the order and broadcasts them after commit.
func (o *Order) PendingNotifications() []*notification.Notification {
	return o.pending
}

// BeginDesign moves a freshly confirmed order into the design phase. The
// customer and the designer group are notified.
func (o *Order) BeginDesign(now time.Time) error {
	if err := o.advance(Confirmed); err != nil {
		return err
	}

	return errors.Join(
		o.notifyCustomer("Order Confirmed",
			fmt.Sprintf("Order %s has moved to the design phase.", o.code), now),
		o.notifyGroup(kernel.RoleDesigner, "New Design Task",
			fmt.Sprintf("Order %s is waiting for a design.", o.code), now),
	)
}

// AttachDesign records the design image and moves the order to DesignAdded.
// The previous design image, if any, is returned so its blob can be removed.
func (o *Order) AttachDesign(design Image, now time.Time) (Image, error) {
	if err := o.validateImage(design, ImageDesign, designMimeTypes); err != nil {
		return Image{}, err
	}
	if err := o.advance(DesignPhase); err != nil {
		return Image{}, err
	}

	previous := o.replaceImage(design)
	o.customerRead = false

	return previous, errors.Join(
		o.notifyCustomer("Design Ready",
			fmt.Sprintf("A design has been prepared for order %s. Please review it.", o.code), now),
		o.notifyAdmins("Design Added",
			fmt.Sprintf("A design was attached to order %s.", o.code), now),
	)
}

// ReplaceDesign swaps the design image without advancing the status. It is
// only allowed while the order sits at DesignAdded, before the customer has
// proceeded to payment. The previous image is returned for blob cleanup.
func (o *Order) ReplaceDesign(design Image, now time.Time) (Image, error) {
	if err := o.validateImage(design, ImageDesign, designMimeTypes); err != nil {
		return Image{}, err
	}
	if err := o.ensureActive(); err != nil {
		return Image{}, err
	}
	if o.status != DesignAdded {
		return Image{}, errs.NewStatusConflictError(o.status.String(), DesignAdded.String())
	}

	previous := o.replaceImage(design)
	o.customerRead = false

	return previous, o.notifyCustomer("Design Updated",
		fmt.Sprintf("The design for order %s has been revised.", o.code), now)
}

// ApprovePaymentParams carries the customer's input for the payment step.
type ApprovePaymentParams struct {
	PaymentProof Image
	PaidAmount   kernel.Money
	Invoice      InvoiceInfo
	ShippingType ShippingType
	Address      Address
}

// ApprovePayment records the customer's payment evidence together with the
// invoice and shipping details, moving the order to PaymentPhase. The admin
// group is notified so someone verifies the payment. An office pickup order
// clears any previously stored address.
func (o *Order) ApprovePayment(params ApprovePaymentParams, now time.Time) error {
	var e []error

	if err := o.validateImage(params.PaymentProof, ImagePayment, photoMimeTypes); err != nil {
		e = append(e, err)
	}
	if err := params.ShippingType.Validate(); err != nil {
		e = append(e, err)
	}
	if params.ShippingType.RequiresAddress() && params.Address.IsEmpty() {
		e = append(e, errs.NewValueIsRequiredError("address"))
	}
	if err := params.Invoice.Type().Validate(); err != nil {
		e = append(e, err)
	}
	if params.PaidAmount.IsNegative() {
		e = append(e, errs.NewValueIsInvalidError("paidAmount"))
	}
	if len(e) > 0 {
		return errors.Join(e...)
	}

	if err := o.advance(DesignAdded); err != nil {
		return err
	}

	o.replaceImage(params.PaymentProof)
	o.paidAmount = params.PaidAmount
	o.invoice = params.Invoice
	o.shippingType = params.ShippingType
	if params.ShippingType.RequiresAddress() {
		o.address = params.Address
	} else {
		o.address = Address{}
	}
	o.adminRead = false

	return o.notifyAdmins("Payment Submitted",
		fmt.Sprintf("Payment evidence for order %s is waiting for verification.", o.code), now)
}

// VerifyPayment confirms the submitted payment and flips production to in
// progress. The customer is notified.
func (o *Order) VerifyPayment(now time.Time) error {
	if err := o.advance(PaymentPhase); err != nil {
		return err
	}

	o.productionStatus = ProductionInProgress
	o.customerRead = false

	return o.notifyCustomer("Payment Received",
		fmt.Sprintf("Your payment for order %s has been verified.", o.code), now)
}

// SelectManufacturer assigns the manufacturer who will produce the order,
// schedules the production window in business days and notifies them. The
// caller must have verified that the ID references an existing manufacturer
// user.
func (o *Order) SelectManufacturer(manufacturerID kernel.UUID, schedule ProductionSchedule, now time.Time) error {
	if err := manufacturerID.Validate(); err != nil {
		return err
	}
	if err := schedule.Validate(); err != nil {
		return err
	}
	if err := o.advance(PaymentReceived); err != nil {
		return err
	}

	o.manufacturerID = &manufacturerID
	start := schedule.StartDate(now)
	estimated := schedule.EstimatedEndDate(start)
	o.productionStartDate = &start
	o.estimatedProductionDate = &estimated

	return o.notifyManufacturer(manufacturerID, "New Production Assignment",
		fmt.Sprintf("Order %s has been assigned to you for production.", o.code), now)
}

// StartProduction is invoked by the assigned manufacturer to signal that work
// has begun. Any other actor is rejected with a forbidden error.
func (o *Order) StartProduction(actor kernel.Actor, now time.Time) error {
	if o.manufacturerID == nil || !actor.ID().IsEqual(*o.manufacturerID) || actor.Role() != kernel.RoleManufacturer {
		return errs.NewForbiddenError("start production", "only the assigned manufacturer may start production")
	}
	if err := o.advance(ManufacturerSelected); err != nil {
		return err
	}

	o.adminRead = false

	return o.notifyAdmins("Production Started",
		fmt.Sprintf("The manufacturer has started producing order %s.", o.code), now)
}

// MarkProductReady records the finished-product photo, stamps the production
// date and completes the production flag. Courier group, admins and the
// customer are all notified since shipping can now be arranged.
func (o *Order) MarkProductReady(photo Image, now time.Time) error {
	if err := o.validateImage(photo, ImageProductReady, photoMimeTypes); err != nil {
		return err
	}
	if err := o.advance(InProduction); err != nil {
		return err
	}

	o.replaceImage(photo)
	o.productionStatus = ProductionCompleted
	o.productionDate = &now
	o.adminRead = false
	o.customerRead = false

	return errors.Join(
		o.notifyGroup(kernel.RoleCourier, "Pickup Ready",
			fmt.Sprintf("Order %s is produced and ready for pickup.", o.code), now),
		o.notifyAdmins("Product Ready",
			fmt.Sprintf("Order %s has finished production.", o.code), now),
		o.notifyCustomer("Product Ready",
			fmt.Sprintf("Your order %s has been produced and will ship soon.", o.code), now),
	)
}

// MarkInTransit records the shipping photo and moves the order into transit.
// The production date is re-stamped with the handover time.
func (o *Order) MarkInTransit(photo Image, now time.Time) error {
	if err := o.validateImage(photo, ImageShipping, photoMimeTypes); err != nil {
		return err
	}
	if err := o.advance(ProductReady); err != nil {
		return err
	}

	o.replaceImage(photo)
	o.productionDate = &now
	o.adminRead = false
	o.customerRead = false

	return errors.Join(
		o.notifyAdmins("Order Shipped",
			fmt.Sprintf("Order %s has been handed to the courier.", o.code), now),
		o.notifyCustomer("Order Shipped",
			fmt.Sprintf("Your order %s is on its way.", o.code), now),
	)
}

// MarkDelivered completes the lifecycle once the courier confirms delivery.
func (o *Order) MarkDelivered(now time.Time) error {
	if err := o.advance(InTransit); err != nil {
		return err
	}

	o.adminRead = false
	o.customerRead = false

	return errors.Join(
		o.notifyCustomer("Order Delivered",
			fmt.Sprintf("Your order %s has been delivered. Thank you.", o.code), now),
		o.notifyAdmins("Order Delivered",
			fmt.Sprintf("Order %s was delivered to the customer.", o.code), now),
	)
}

// AttachInvoice stores the invoice document. Any active stage accepts it;
// it does not advance the status. The previous invoice image, if any, is
// returned for blob cleanup.
func (o *Order) AttachInvoice(invoice Image, now time.Time) (Image, error) {
	if err := o.validateImage(invoice, ImageInvoice, designMimeTypes); err != nil {
		return Image{}, err
	}
	if err := o.ensureActive(); err != nil {
		return Image{}, err
	}

	previous := o.replaceImage(invoice)
	o.customerRead = false

	return previous, o.notifyCustomer("Invoice Ready",
		fmt.Sprintf("The invoice for order %s is available.", o.code), now)
}

// UpdateNote replaces the free-form note on the order.
func (o *Order) UpdateNote(note string) error {
	if err := o.ensureActive(); err != nil {
		return err
	}
	o.note = note
	return nil
}

// UpdateCustomerInfo replaces the order's contact details.
func (o *Order) UpdateCustomerInfo(customer CustomerInfo) error {
	if err := o.ensureActive(); err != nil {
		return err
	}
	o.customer = customer
	return nil
}

// UpdateShippingAddress replaces the shipping type and delivery address.
// Switching to office pickup discards the stored address.
func (o *Order) UpdateShippingAddress(shippingType ShippingType, address Address) error {
	if err := shippingType.Validate(); err != nil {
		return err
	}
	if shippingType.RequiresAddress() && address.IsEmpty() {
		return errs.NewValueIsRequiredError("address")
	}
	if err := o.ensureActive(); err != nil {
		return err
	}

	o.shippingType = shippingType
	if shippingType.RequiresAddress() {
		o.address = address
	} else {
		o.address = Address{}
	}
	return nil
}

// UpdateInvoiceInfo replaces the billing details.
func (o *Order) UpdateInvoiceInfo(invoice InvoiceInfo) error {
	if err := invoice.Type().Validate(); err != nil {
		return err
	}
	if err := o.ensureActive(); err != nil {
		return err
	}
	o.invoice = invoice
	return nil
}

// UpdatePaidAmount corrects the recorded payment amount. It requires the
// order to have reached the payment stage.
func (o *Order) UpdatePaidAmount(amount kernel.Money) error {
	if amount.IsNegative() {
		return errs.NewValueIsInvalidError("paidAmount")
	}
	if err := o.ensureActive(); err != nil {
		return err
	}
	if o.status < PaymentPhase {
		return errs.NewStatusConflictError(o.status.String(), PaymentPhase.String())
	}

	o.paidAmount = amount
	return nil
}

// RequestCancellation files a cancellation request from the customer. The
// order stays at its current stage but is frozen until staff resolve the
// request.
func (o *Order) RequestCancellation(title string, reason string, now time.Time) error {
	record, err := NewCancellationRecord(CancellationCancelled, title, reason, now)
	if err != nil {
		return err
	}
	if err := o.ensureActive(); err != nil {
		return err
	}

	o.rejection = RejectionPending
	o.cancellation = record
	o.adminRead = false

	return o.notifyAdmins("Cancellation Requested",
		fmt.Sprintf("The customer asked to cancel order %s: %s", o.code, title), now)
}

// ResolveCancellation denies a pending cancellation request and reactivates
// the order. The request record is discarded.
func (o *Order) ResolveCancellation(now time.Time) error {
	if o.rejection != RejectionPending {
		return errs.NewStatusConflictError(o.rejection.String(), RejectionPending.String())
	}

	o.rejection = RejectionActive
	o.cancellation = CancellationRecord{}
	o.customerRead = false

	return o.notifyCustomer("Cancellation Denied",
		fmt.Sprintf("Your cancellation request for order %s was declined. The order continues.", o.code), now)
}

// ApproveCancellation grants a pending cancellation request and freezes the
// order as cancelled. The record filed with the request is kept as the
// cancellation reason.
func (o *Order) ApproveCancellation(now time.Time) error {
	if o.rejection != RejectionPending {
		return errs.NewStatusConflictError(o.rejection.String(), RejectionPending.String())
	}

	o.rejection = RejectionCancelled
	o.customerRead = false

	return o.freezeFanOut("Order Cancelled",
		fmt.Sprintf("Order %s has been cancelled: %s", o.code, o.cancellation.Title()), now)
}

// Reject freezes the order as rejected by staff, recording the reason and
// fanning the news out to every party involved at the current stage.
func (o *Order) Reject(title string, reason string, now time.Time) error {
	record, err := NewCancellationRecord(CancellationRejected, title, reason, now)
	if err != nil {
		return err
	}
	if err := o.ensureActive(); err != nil {
		return err
	}

	o.rejection = RejectionRejected
	o.cancellation = record
	o.customerRead = false

	return o.freezeFanOut("Order Rejected",
		fmt.Sprintf("Order %s has been rejected: %s", o.code, title), now)
}

// Cancel freezes the order as cancelled. When itemID is non-nil, the given
// line is removed first and the offer price shrinks by its subtotal.
func (o *Order) Cancel(title string, reason string, itemID *kernel.UUID, now time.Time) error {
	record, err := NewCancellationRecord(CancellationCancelled, title, reason, now)
	if err != nil {
		return err
	}
	if err := o.ensureActive(); err != nil {
		return err
	}

	if itemID != nil {
		if _, err := o.removeItem(*itemID); err != nil {
			return err
		}
	}

	o.rejection = RejectionCancelled
	o.cancellation = record
	o.customerRead = false

	return o.freezeFanOut("Order Cancelled",
		fmt.Sprintf("Order %s has been cancelled: %s", o.code, title), now)
}

// Reactivate lifts a rejection or cancellation and returns the order to its
// previous stage. The freeze record is discarded and the same audiences that
// learned of the freeze are told the order is live again.
func (o *Order) Reactivate(now time.Time) error {
	if !o.rejection.IsFrozen() {
		return errs.NewStatusConflictError(o.rejection.String(), "a frozen state")
	}

	o.rejection = RejectionActive
	o.cancellation = CancellationRecord{}
	o.customerRead = false

	return o.freezeFanOut("Order Reactivated",
		fmt.Sprintf("Order %s is active again at the %s stage.", o.code, o.status), now)
}

// AddItem appends a product line to the given basket and recomputes the
// offer price.
func (o *Order) AddItem(basketID kernel.UUID, item *Item) error {
	if err := o.ensureActive(); err != nil {
		return err
	}

	for _, basket := range o.baskets {
		if basket.ID().IsEqual(basketID) {
			basket.AddItem(item)
			o.recomputeOfferPrice()
			return nil
		}
	}
	return errs.NewObjectNotFoundError("basketID", basketID)
}

// RemoveItem removes the product line with the given ID from whichever
// basket holds it and recomputes the offer price.
func (o *Order) RemoveItem(itemID kernel.UUID) error {
	if err := o.ensureActive(); err != nil {
		return err
	}
	_, err := o.removeItem(itemID)
	return err
}

// UpdateItem replaces the quantity and unit price of the line with the
// given ID and recomputes the offer price.
func (o *Order) UpdateItem(itemID kernel.UUID, quantity int, unitPrice kernel.Money,
	pricing PricingPolicy) error {
	if err := o.ensureActive(); err != nil {
		return err
	}

	for _, basket := range o.baskets {
		item, err := basket.FindItem(itemID)
		if err != nil {
			continue
		}
		if err := item.Update(quantity, unitPrice, pricing); err != nil {
			return err
		}
		o.recomputeOfferPrice()
		return nil
	}
	return errs.NewObjectNotFoundError("itemID", itemID)
}

// MarkSeenBy flips the appropriate read flag for the acting role.
func (o *Order) MarkSeenBy(actor kernel.Actor) {
	switch actor.Role() {
	case kernel.RoleCustomer:
		o.customerRead = true
	case kernel.RoleAdmin:
		o.adminRead = true
	}
}

// advance checks the rejection state and the expected current status, then
// moves the status to its successor. The order is unmodified on error.
func (o *Order) advance(expected Status) error {
	if err := o.ensureActive(); err != nil {
		return err
	}
	next, err := o.status.Advance(expected)
	if err != nil {
		return err
	}
	o.status = next
	return nil
}

// ensureActive rejects any mutation while the order is frozen or has a
// pending cancellation request.
func (o *Order) ensureActive() error {
	if o.rejection != RejectionActive {
		return errs.NewStatusConflictError(o.rejection.String(), RejectionActive.String())
	}
	return nil
}

func (o *Order) validateImage(img Image, kind ImageKind, allowed map[string]bool) error {
	if img.IsEmpty() {
		return errs.NewValueIsRequiredError(kind.String() + " image")
	}
	if img.Kind() != kind {
		return errs.NewValueIsInvalidError("imageKind")
	}
	if !allowed[img.MimeType()] {
		return errs.NewValueIsInvalidErrorWithCause("mimeType",
			fmt.Errorf("%s is not an accepted media type for a %s image", img.MimeType(), kind))
	}
	return nil
}

// replaceImage stores the image as the current one of its kind and returns
// the reference it displaced, or the zero value when the slot was empty.
func (o *Order) replaceImage(img Image) Image {
	previous := o.images[img.Kind()]
	o.images[img.Kind()] = img
	return previous
}

func (o *Order) removeItem(itemID kernel.UUID) (*Item, error) {
	for _, basket := range o.baskets {
		if item, err := basket.RemoveItem(itemID); err == nil {
			o.recomputeOfferPrice()
			return item, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("itemID", itemID)
}

// recomputeOfferPrice derives the offer price from the current items. The
// price is never edited directly.
func (o *Order) recomputeOfferPrice() {
	var total kernel.Money
	for _, basket := range o.baskets {
		total = total.Add(basket.Total())
	}
	o.offerPrice = total
}

// freezeFanOut notifies everyone involved at the current stage about a
// rejection, cancellation or reactivation: the customer always, the
// manufacturer once assigned, designers once the design work has begun, and
// couriers only while the product is with them.
func (o *Order) freezeFanOut(title string, body string, now time.Time) error {
	var e []error

	e = append(e, o.notifyCustomer(title, body, now))
	if o.manufacturerID != nil {
		e = append(e, o.notifyManufacturer(*o.manufacturerID, title, body, now))
	}
	if o.status != Confirmed {
		e = append(e, o.notifyGroup(kernel.RoleDesigner, title, body, now))
	}
	if o.status == ProductReady || o.status == InTransit {
		e = append(e, o.notifyGroup(kernel.RoleCourier, title, body, now))
	}

	return errors.Join(e...)
}

func (o *Order) notifyCustomer(title string, body string, now time.Time) error {
	audience, err := notification.NewRecipientAudience(kernel.RoleCustomer, o.customerID)
	if err != nil {
		return err
	}
	return o.queueNotification(audience, title, body, now)
}

func (o *Order) notifyManufacturer(manufacturerID kernel.UUID, title string, body string, now time.Time) error {
	audience, err := notification.NewRecipientAudience(kernel.RoleManufacturer, manufacturerID)
	if err != nil {
		return err
	}
	return o.queueNotification(audience, title, body, now)
}

func (o *Order) notifyAdmins(title string, body string, now time.Time) error {
	return o.notifyGroup(kernel.RoleAdmin, title, body, now)
}

func (o *Order) notifyGroup(role kernel.Role, title string, body string, now time.Time) error {
	audience, err := notification.NewGroupAudience(role)
	if err != nil {
		return err
	}
	return o.queueNotification(audience, title, body, now)
}

func (o *Order) queueNotification(audience notification.Audience, title string, body string, now time.Time) error {
	n, err := notification.NewNotification(audience, title, body, o.id, o.code, now)
	if err != nil {
		return err
	}
	o.pending = append(o.pending, n)
	return nil
}

const orderCodeLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// generateOrderCode builds the human-readable code, e.g. ORD-1735689600-QHTK.
func generateOrderCode(now time.Time) string {
	suffix := make([]byte, 4)
	for i := range suffix {
		suffix[i] = orderCodeLetters[rand.IntN(len(orderCodeLetters))]
	}
	return fmt.Sprintf("ORD-%d-%s", now.Unix(), suffix)
}
