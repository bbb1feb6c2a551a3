package order

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/notification"
	"atelier/internal/pkg/errs"
)

var testNow = time.Date(2026, time.January, 2, 12, 0, 0, 0, time.UTC) // a Friday

func testItem(t *testing.T, quantity int, unitLira int64) *Item {
	t.Helper()
	item, err := NewItem("t-shirt", "apparel", "crewneck", "black", quantity, kernel.MoneyFromLira(unitLira), DefaultPricingPolicy())
	require.NoError(t, err)
	return item
}

func testBasket(t *testing.T) *Basket {
	t.Helper()
	basket := NewBasket()
	basket.AddItem(testItem(t, 10, 25))
	return basket
}

func testImage(t *testing.T, kind ImageKind, ref string) Image {
	t.Helper()
	mime := "image/jpeg"
	if kind == ImageDesign || kind == ImageInvoice {
		mime = "application/pdf"
	}
	img, err := NewImage(kind, ref, mime)
	require.NoError(t, err)
	return img
}

func testOrder(t *testing.T) *Order {
	t.Helper()
	customer, err := NewCustomerInfo("Jane Doe", "+90 555 000 0000", "jane@example.com")
	require.NoError(t, err)
	address, err := NewAddress("12 Harbor St", "Kadikoy", "Istanbul")
	require.NoError(t, err)

	o, err := NewOrder(kernel.NewUUID(), "team jerseys", customer, ShippingSenderPays, address, testBasket(t), testNow)
	require.NoError(t, err)
	return o
}

func paymentParams(t *testing.T) ApprovePaymentParams {
	t.Helper()
	invoice, err := NewInvoiceInfo(InvoiceIndividual, "", "", "")
	require.NoError(t, err)
	return ApprovePaymentParams{
		PaymentProof: testImage(t, ImagePayment, "payments/p1.jpg"),
		PaidAmount:   kernel.MoneyFromLira(250),
		Invoice:      invoice,
		ShippingType: ShippingOfficePickup,
	}
}

// advanceOrderTo walks the order forward with valid inputs until it reaches
// the target stage. It returns the manufacturer actor once one is assigned.
func advanceOrderTo(t *testing.T, o *Order, target Status) kernel.Actor {
	t.Helper()

	manufacturerID := kernel.NewUUID()
	manufacturer, err := kernel.NewActor(manufacturerID, kernel.RoleManufacturer)
	require.NoError(t, err)

	steps := []struct {
		at  Status
		run func() error
	}{
		{Confirmed, func() error { return o.BeginDesign(testNow) }},
		{DesignPhase, func() error {
			_, err := o.AttachDesign(testImage(t, ImageDesign, "designs/d1.pdf"), testNow)
			return err
		}},
		{DesignAdded, func() error { return o.ApprovePayment(paymentParams(t), testNow) }},
		{PaymentPhase, func() error { return o.VerifyPayment(testNow) }},
		{PaymentReceived, func() error {
			return o.SelectManufacturer(manufacturerID, DefaultProductionSchedule(), testNow)
		}},
		{ManufacturerSelected, func() error { return o.StartProduction(manufacturer, testNow) }},
		{InProduction, func() error { return o.MarkProductReady(testImage(t, ImageProductReady, "ready/r1.jpg"), testNow) }},
		{ProductReady, func() error { return o.MarkInTransit(testImage(t, ImageShipping, "ship/s1.jpg"), testNow) }},
		{InTransit, func() error { return o.MarkDelivered(testNow) }},
	}

	for _, step := range steps {
		if o.Status() != step.at {
			continue
		}
		if step.at == target {
			break
		}
		require.NoError(t, step.run())
	}
	require.Equal(t, target, o.Status())
	return manufacturer
}

func audienceRoles(notifications []*notification.Notification) []kernel.Role {
	roles := make([]kernel.Role, 0, len(notifications))
	for _, n := range notifications {
		roles = append(roles, n.Audience().Role())
	}
	return roles
}

func TestNewOrder(t *testing.T) {
	t.Run("should create order at Confirmed with computed offer price", func(t *testing.T) {
		o := testOrder(t)

		assert.Equal(t, Confirmed, o.Status())
		assert.Equal(t, RejectionActive, o.Rejection())
		assert.Equal(t, ProductionNotStarted, o.ProductionStatus())
		assert.Equal(t, kernel.MoneyFromLira(250), o.OfferPrice())
		assert.NotEmpty(t, o.Code())
		assert.Nil(t, o.ManufacturerID())
	})

	t.Run("should queue a notification for the admin group", func(t *testing.T) {
		o := testOrder(t)

		require.Len(t, o.PendingNotifications(), 1)
		n := o.PendingNotifications()[0]
		assert.Equal(t, kernel.RoleAdmin, n.Audience().Role())
		assert.True(t, n.Audience().IsGroup())
		assert.Equal(t, o.ID(), n.OrderID())
	})

	t.Run("should require an address unless shipping is office pickup", func(t *testing.T) {
		customer, err := NewCustomerInfo("Jane Doe", "+90 555 000 0000", "")
		require.NoError(t, err)

		_, err = NewOrder(kernel.NewUUID(), "hoodies", customer, ShippingRecipientPays, Address{}, testBasket(t), testNow)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = NewOrder(kernel.NewUUID(), "hoodies", customer, ShippingOfficePickup, Address{}, testBasket(t), testNow)
		assert.NoError(t, err)
	})

	t.Run("should require at least one item", func(t *testing.T) {
		customer, err := NewCustomerInfo("Jane Doe", "+90 555 000 0000", "")
		require.NoError(t, err)

		_, err = NewOrder(kernel.NewUUID(), "hoodies", customer, ShippingOfficePickup, Address{}, NewBasket(), testNow)

		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestOrderFullLifecycle(t *testing.T) {
	t.Run("should walk the entire chain with the expected audiences", func(t *testing.T) {
		o := testOrder(t)
		mark := len(o.PendingNotifications())

		require.NoError(t, o.BeginDesign(testNow))
		assert.Equal(t, DesignPhase, o.Status())
		assert.Equal(t, []kernel.Role{kernel.RoleCustomer, kernel.RoleDesigner},
			audienceRoles(o.PendingNotifications()[mark:]))
		mark = len(o.PendingNotifications())

		_, err := o.AttachDesign(testImage(t, ImageDesign, "designs/d1.pdf"), testNow)
		require.NoError(t, err)
		assert.Equal(t, DesignAdded, o.Status())
		assert.Equal(t, []kernel.Role{kernel.RoleCustomer, kernel.RoleAdmin},
			audienceRoles(o.PendingNotifications()[mark:]))
		mark = len(o.PendingNotifications())

		require.NoError(t, o.ApprovePayment(paymentParams(t), testNow))
		assert.Equal(t, PaymentPhase, o.Status())
		assert.True(t, o.Address().IsEmpty(), "office pickup clears the address")
		assert.Equal(t, []kernel.Role{kernel.RoleAdmin},
			audienceRoles(o.PendingNotifications()[mark:]))
		mark = len(o.PendingNotifications())

		require.NoError(t, o.VerifyPayment(testNow))
		assert.Equal(t, PaymentReceived, o.Status())
		assert.Equal(t, ProductionInProgress, o.ProductionStatus())
		assert.Equal(t, []kernel.Role{kernel.RoleCustomer},
			audienceRoles(o.PendingNotifications()[mark:]))
		mark = len(o.PendingNotifications())

		manufacturerID := kernel.NewUUID()
		require.NoError(t, o.SelectManufacturer(manufacturerID, DefaultProductionSchedule(), testNow))
		assert.Equal(t, ManufacturerSelected, o.Status())
		require.NotNil(t, o.ManufacturerID())
		assert.True(t, o.ManufacturerID().IsEqual(manufacturerID))
		newOnes := o.PendingNotifications()[mark:]
		require.Len(t, newOnes, 1)
		assert.Equal(t, kernel.RoleManufacturer, newOnes[0].Audience().Role())
		require.NotNil(t, newOnes[0].Audience().RecipientID())
		assert.True(t, newOnes[0].Audience().RecipientID().IsEqual(manufacturerID))
		mark = len(o.PendingNotifications())

		manufacturer, err := kernel.NewActor(manufacturerID, kernel.RoleManufacturer)
		require.NoError(t, err)
		require.NoError(t, o.StartProduction(manufacturer, testNow))
		assert.Equal(t, InProduction, o.Status())
		assert.Equal(t, []kernel.Role{kernel.RoleAdmin},
			audienceRoles(o.PendingNotifications()[mark:]))
		mark = len(o.PendingNotifications())

		require.NoError(t, o.MarkProductReady(testImage(t, ImageProductReady, "ready/r1.jpg"), testNow))
		assert.Equal(t, ProductReady, o.Status())
		assert.Equal(t, ProductionCompleted, o.ProductionStatus())
		require.NotNil(t, o.ProductionDate())
		assert.Equal(t, []kernel.Role{kernel.RoleCourier, kernel.RoleAdmin, kernel.RoleCustomer},
			audienceRoles(o.PendingNotifications()[mark:]))
		mark = len(o.PendingNotifications())

		require.NoError(t, o.MarkInTransit(testImage(t, ImageShipping, "ship/s1.jpg"), testNow))
		assert.Equal(t, InTransit, o.Status())
		assert.Equal(t, []kernel.Role{kernel.RoleAdmin, kernel.RoleCustomer},
			audienceRoles(o.PendingNotifications()[mark:]))
		mark = len(o.PendingNotifications())

		require.NoError(t, o.MarkDelivered(testNow))
		assert.Equal(t, Delivered, o.Status())
		assert.Equal(t, []kernel.Role{kernel.RoleCustomer, kernel.RoleAdmin},
			audienceRoles(o.PendingNotifications()[mark:]))
	})
}

func TestOrderTransitionConflicts(t *testing.T) {
	t.Run("should leave order unmodified when precondition status does not match", func(t *testing.T) {
		o := testOrder(t)
		priceBefore := o.OfferPrice()
		pendingBefore := len(o.PendingNotifications())

		err := o.VerifyPayment(testNow)

		require.ErrorIs(t, err, errs.ErrStatusConflict)
		assert.Equal(t, Confirmed, o.Status())
		assert.Equal(t, ProductionNotStarted, o.ProductionStatus())
		assert.Equal(t, priceBefore, o.OfferPrice())
		assert.Len(t, o.PendingNotifications(), pendingBefore)
	})

	t.Run("should refuse every forward transition while frozen", func(t *testing.T) {
		o := testOrder(t)
		advanceOrderTo(t, o, DesignPhase)
		require.NoError(t, o.Reject("quality", "artwork unusable", testNow))

		_, err := o.AttachDesign(testImage(t, ImageDesign, "designs/d2.pdf"), testNow)

		require.ErrorIs(t, err, errs.ErrStatusConflict)
		assert.Equal(t, DesignPhase, o.Status())
	})
}

func TestOrderAttachDesign(t *testing.T) {
	t.Run("should replace the previous design and hand back its reference", func(t *testing.T) {
		o := testOrder(t)
		advanceOrderTo(t, o, DesignAdded)

		previous, err := o.ReplaceDesign(testImage(t, ImageDesign, "designs/d2.pdf"), testNow)

		require.NoError(t, err)
		assert.Equal(t, "designs/d1.pdf", previous.Ref())
		current, ok := o.Image(ImageDesign)
		require.True(t, ok)
		assert.Equal(t, "designs/d2.pdf", current.Ref())
	})

	t.Run("should reject an unsupported media type", func(t *testing.T) {
		o := testOrder(t)
		advanceOrderTo(t, o, DesignPhase)

		img, err := NewImage(ImageDesign, "designs/d1.gif", "image/gif")
		require.NoError(t, err)
		_, err = o.AttachDesign(img, testNow)

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, DesignPhase, o.Status())
	})
}

func TestOrderStartProduction(t *testing.T) {
	t.Run("should forbid anyone but the assigned manufacturer", func(t *testing.T) {
		o := testOrder(t)
		advanceOrderTo(t, o, ManufacturerSelected)

		other, err := kernel.NewActor(kernel.NewUUID(), kernel.RoleManufacturer)
		require.NoError(t, err)
		err = o.StartProduction(other, testNow)

		require.ErrorIs(t, err, errs.ErrForbidden)
		assert.Equal(t, ManufacturerSelected, o.Status())
	})
}

func TestOrderProductionSchedule(t *testing.T) {
	t.Run("should schedule start and estimate on weekdays after a Friday", func(t *testing.T) {
		o := testOrder(t)
		advanceOrderTo(t, o, PaymentReceived)

		require.NoError(t, o.SelectManufacturer(kernel.NewUUID(), DefaultProductionSchedule(), testNow))

		start := o.ProductionStartDate()
		estimated := o.EstimatedProductionDate()
		require.NotNil(t, start)
		require.NotNil(t, estimated)
		assert.True(t, start.After(testNow))
		assert.True(t, estimated.After(*start))
		assert.Equal(t, time.Monday, start.Weekday())
		assert.NotEqual(t, time.Saturday, estimated.Weekday())
		assert.NotEqual(t, time.Sunday, estimated.Weekday())
	})
}

func TestOrderItems(t *testing.T) {
	t.Run("should keep offer price equal to the sum of item subtotals", func(t *testing.T) {
		o := testOrder(t)
		basketID := o.Baskets()[0].ID()

		extra := testItem(t, 4, 100)
		require.NoError(t, o.AddItem(basketID, extra))
		assert.Equal(t, kernel.MoneyFromLira(650), o.OfferPrice())

		require.NoError(t, o.RemoveItem(extra.ID()))
		assert.Equal(t, kernel.MoneyFromLira(250), o.OfferPrice())
	})

	t.Run("should report missing items and baskets", func(t *testing.T) {
		o := testOrder(t)

		assert.ErrorIs(t, o.AddItem(kernel.NewUUID(), testItem(t, 1, 25)), errs.ErrObjectNotFound)
		assert.ErrorIs(t, o.RemoveItem(kernel.NewUUID()), errs.ErrObjectNotFound)
		assert.ErrorIs(t, o.UpdateItem(kernel.NewUUID(), 1, kernel.MoneyFromLira(25), DefaultPricingPolicy()),
			errs.ErrObjectNotFound)
	})

	t.Run("should recompute the offer price when a line is edited", func(t *testing.T) {
		o := testOrder(t)
		itemID := o.Baskets()[0].Items()[0].ID()

		require.NoError(t, o.UpdateItem(itemID, 20, kernel.MoneyFromLira(30), DefaultPricingPolicy()))

		assert.Equal(t, kernel.MoneyFromLira(600), o.OfferPrice())
	})

	t.Run("should reject an edit below the minimum unit price", func(t *testing.T) {
		o := testOrder(t)
		itemID := o.Baskets()[0].Items()[0].ID()

		err := o.UpdateItem(itemID, 10, kernel.MoneyFromLira(10), DefaultPricingPolicy())

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, kernel.MoneyFromLira(250), o.OfferPrice())
	})

	t.Run("should refuse edits while the order is frozen", func(t *testing.T) {
		o := testOrder(t)
		itemID := o.Baskets()[0].Items()[0].ID()
		require.NoError(t, o.Reject("hold", "pricing dispute", testNow))

		err := o.UpdateItem(itemID, 5, kernel.MoneyFromLira(40), DefaultPricingPolicy())

		assert.ErrorIs(t, err, errs.ErrStatusConflict)
	})
}

func TestPricingPolicy(t *testing.T) {
	t.Run("should reject a new item below the minimum unit price", func(t *testing.T) {
		_, err := NewItem("t-shirt", "apparel", "crewneck", "black", 10, kernel.MoneyFromLira(10), DefaultPricingPolicy())

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should honour a configured minimum", func(t *testing.T) {
		pricing := PricingPolicy{MinUnitPrice: kernel.MoneyFromLira(100)}

		_, err := NewItem("t-shirt", "apparel", "crewneck", "black", 10, kernel.MoneyFromLira(50), pricing)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = NewItem("t-shirt", "apparel", "crewneck", "black", 10, kernel.MoneyFromLira(100), pricing)
		assert.NoError(t, err)
	})
}

func TestOrderRejectionFlow(t *testing.T) {
	t.Run("should fan out to customer, manufacturer and designers when cancelled in production", func(t *testing.T) {
		o := testOrder(t)
		advanceOrderTo(t, o, InProduction)
		mark := len(o.PendingNotifications())

		require.NoError(t, o.Cancel("out of stock", "fabric supplier failed", nil, testNow))

		assert.Equal(t, RejectionCancelled, o.Rejection())
		assert.Equal(t, InProduction, o.Status())
		assert.Equal(t, CancellationCancelled, o.Cancellation().Kind())
		assert.Equal(t, "fabric supplier failed", o.Cancellation().Reason())
		assert.Equal(t, []kernel.Role{kernel.RoleCustomer, kernel.RoleManufacturer, kernel.RoleDesigner},
			audienceRoles(o.PendingNotifications()[mark:]))
	})

	t.Run("should include the courier group once the product is ready", func(t *testing.T) {
		o := testOrder(t)
		advanceOrderTo(t, o, ProductReady)
		mark := len(o.PendingNotifications())

		require.NoError(t, o.Reject("damaged", "print came out wrong", testNow))

		assert.Equal(t, []kernel.Role{kernel.RoleCustomer, kernel.RoleManufacturer, kernel.RoleDesigner, kernel.RoleCourier},
			audienceRoles(o.PendingNotifications()[mark:]))
	})

	t.Run("should not notify designers when rejected straight after confirmation", func(t *testing.T) {
		o := testOrder(t)
		mark := len(o.PendingNotifications())

		require.NoError(t, o.Reject("duplicate", "customer placed the order twice", testNow))

		assert.Equal(t, []kernel.Role{kernel.RoleCustomer},
			audienceRoles(o.PendingNotifications()[mark:]))
	})

	t.Run("should reduce the offer price when a specific item is cancelled", func(t *testing.T) {
		o := testOrder(t)
		basketID := o.Baskets()[0].ID()
		extra := testItem(t, 4, 100)
		require.NoError(t, o.AddItem(basketID, extra))
		itemID := extra.ID()

		require.NoError(t, o.Cancel("partial", "one line is unavailable", &itemID, testNow))

		assert.Equal(t, kernel.MoneyFromLira(250), o.OfferPrice())
		assert.Equal(t, RejectionCancelled, o.Rejection())
	})

	t.Run("should require a title and reason", func(t *testing.T) {
		o := testOrder(t)

		err := o.Reject("", "", testNow)

		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Equal(t, RejectionActive, o.Rejection())
	})

	t.Run("should reactivate without altering the status", func(t *testing.T) {
		o := testOrder(t)
		advanceOrderTo(t, o, DesignAdded)
		require.NoError(t, o.Reject("hold", "pricing dispute", testNow))
		mark := len(o.PendingNotifications())

		require.NoError(t, o.Reactivate(testNow))

		assert.Equal(t, RejectionActive, o.Rejection())
		assert.Equal(t, DesignAdded, o.Status())
		assert.True(t, o.Cancellation().IsEmpty())
		assert.Equal(t, []kernel.Role{kernel.RoleCustomer, kernel.RoleDesigner},
			audienceRoles(o.PendingNotifications()[mark:]))

		_, err := o.ReplaceDesign(testImage(t, ImageDesign, "designs/d3.pdf"), testNow)
		assert.NoError(t, err, "forward work resumes after reactivation")
	})

	t.Run("should refuse to reactivate an active order", func(t *testing.T) {
		o := testOrder(t)

		assert.ErrorIs(t, o.Reactivate(testNow), errs.ErrStatusConflict)
	})
}

func TestOrderCancellationRequest(t *testing.T) {
	t.Run("should freeze the order until staff resolve the request", func(t *testing.T) {
		o := testOrder(t)
		advanceOrderTo(t, o, DesignPhase)

		require.NoError(t, o.RequestCancellation("changed my mind", "no longer needed", testNow))
		assert.Equal(t, RejectionPending, o.Rejection())

		_, err := o.AttachDesign(testImage(t, ImageDesign, "designs/d1.pdf"), testNow)
		assert.ErrorIs(t, err, errs.ErrStatusConflict)

		require.NoError(t, o.ResolveCancellation(testNow))
		assert.Equal(t, RejectionActive, o.Rejection())
		assert.True(t, o.Cancellation().IsEmpty())

		_, err = o.AttachDesign(testImage(t, ImageDesign, "designs/d1.pdf"), testNow)
		assert.NoError(t, err)
	})

	t.Run("should refuse to resolve when no request is pending", func(t *testing.T) {
		o := testOrder(t)

		assert.ErrorIs(t, o.ResolveCancellation(testNow), errs.ErrStatusConflict)
	})

	t.Run("should cancel the order when staff grant the request", func(t *testing.T) {
		o := testOrder(t)
		advanceOrderTo(t, o, InProduction)
		require.NoError(t, o.RequestCancellation("changed my mind", "no longer needed", testNow))
		mark := len(o.PendingNotifications())

		require.NoError(t, o.ApproveCancellation(testNow))

		assert.Equal(t, RejectionCancelled, o.Rejection())
		assert.Equal(t, InProduction, o.Status())
		assert.Equal(t, "changed my mind", o.Cancellation().Title())
		assert.Equal(t, "no longer needed", o.Cancellation().Reason())
		assert.Equal(t, []kernel.Role{kernel.RoleCustomer, kernel.RoleManufacturer, kernel.RoleDesigner},
			audienceRoles(o.PendingNotifications()[mark:]))
	})

	t.Run("should refuse to approve when no request is pending", func(t *testing.T) {
		o := testOrder(t)

		assert.ErrorIs(t, o.ApproveCancellation(testNow), errs.ErrStatusConflict)
	})
}

func TestOrderSatelliteUpdates(t *testing.T) {
	t.Run("should replace the contact details", func(t *testing.T) {
		o := testOrder(t)
		updated, err := NewCustomerInfo("John Roe", "+90 555 111 1111", "john@example.com")
		require.NoError(t, err)

		require.NoError(t, o.UpdateCustomerInfo(updated))

		assert.Equal(t, "John Roe", o.Customer().Name())
	})

	t.Run("should discard the address when switching to office pickup", func(t *testing.T) {
		o := testOrder(t)

		require.NoError(t, o.UpdateShippingAddress(ShippingOfficePickup, Address{}))

		assert.Equal(t, ShippingOfficePickup, o.ShippingType())
		assert.True(t, o.Address().IsEmpty())
	})

	t.Run("should require an address for courier delivery", func(t *testing.T) {
		o := testOrder(t)

		err := o.UpdateShippingAddress(ShippingSenderPays, Address{})

		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should replace the billing details", func(t *testing.T) {
		o := testOrder(t)
		invoice, err := NewInvoiceInfo(InvoiceCorporate, "Acme Textiles", "Kadikoy", "1234567890")
		require.NoError(t, err)

		require.NoError(t, o.UpdateInvoiceInfo(invoice))

		assert.Equal(t, InvoiceCorporate, o.Invoice().Type())
		assert.Equal(t, "Acme Textiles", o.Invoice().Company())
	})

	t.Run("should correct the paid amount once the payment stage is reached", func(t *testing.T) {
		o := testOrder(t)
		advanceOrderTo(t, o, PaymentPhase)

		require.NoError(t, o.UpdatePaidAmount(kernel.MoneyFromLira(300)))

		assert.Equal(t, kernel.MoneyFromLira(300), o.PaidAmount())
	})

	t.Run("should refuse a paid amount before the payment stage", func(t *testing.T) {
		o := testOrder(t)

		assert.ErrorIs(t, o.UpdatePaidAmount(kernel.MoneyFromLira(300)), errs.ErrStatusConflict)
	})

	t.Run("should refuse satellite updates while the order is frozen", func(t *testing.T) {
		o := testOrder(t)
		require.NoError(t, o.Reject("duplicate", "customer placed the order twice", testNow))

		updated, err := NewCustomerInfo("John Roe", "+90 555 111 1111", "john@example.com")
		require.NoError(t, err)

		assert.ErrorIs(t, o.UpdateCustomerInfo(updated), errs.ErrStatusConflict)
		assert.ErrorIs(t, o.UpdateShippingAddress(ShippingOfficePickup, Address{}), errs.ErrStatusConflict)
	})
}

func TestOrderInvoice(t *testing.T) {
	t.Run("should attach the invoice at any active stage without advancing", func(t *testing.T) {
		o := testOrder(t)
		advanceOrderTo(t, o, DesignPhase)

		_, err := o.AttachInvoice(testImage(t, ImageInvoice, "invoices/i1.pdf"), testNow)
		require.NoError(t, err)

		current, ok := o.Image(ImageInvoice)
		require.True(t, ok)
		assert.Equal(t, "invoices/i1.pdf", current.Ref())
		assert.Equal(t, DesignPhase, o.Status())
	})

	t.Run("should refuse the invoice while the order is frozen", func(t *testing.T) {
		o := testOrder(t)
		require.NoError(t, o.Reject("duplicate", "customer placed the order twice", testNow))

		_, err := o.AttachInvoice(testImage(t, ImageInvoice, "invoices/i1.pdf"), testNow)
		assert.ErrorIs(t, err, errs.ErrStatusConflict)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should rehydrate a constructed aggregate from persisted state", func(t *testing.T) {
		id := kernel.NewUUID()
		customerID := kernel.NewUUID()
		basket := testBasket(t)

		o := RestoreOrder(RestoreOrderParams{
			ID:               id,
			Code:             "ORD-1735689600-QHTK",
			Name:             "team jerseys",
			CustomerID:       customerID,
			Status:           DesignAdded,
			Rejection:        RejectionActive,
			ProductionStatus: ProductionNotStarted,
			ShippingType:     ShippingSenderPays,
			OfferPrice:       kernel.MoneyFromLira(250),
			Baskets:          []*Basket{basket},
			CreatedAt:        testNow,
		})

		require.NoError(t, o.Validate())
		assert.Equal(t, DesignAdded, o.Status())
		assert.Empty(t, o.PendingNotifications())

		require.NoError(t, o.ApprovePayment(paymentParams(t), testNow))
		assert.Equal(t, PaymentPhase, o.Status())
	})

	t.Run("should reject a bare struct", func(t *testing.T) {
		var o Order

		assert.ErrorIs(t, o.Validate(), ErrOrderIsNotConstructed)
	})
}
