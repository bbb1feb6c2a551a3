package order

import (
	"errors"
	"strings"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"
)

const maxItemQuantity = 100000

// Item is a single product line inside a basket. Its subtotal feeds the
// order's offer price, which is always recomputed from items and never
// edited directly.
type Item struct {
	id        kernel.UUID
	product   string
	category  string
	typeTag   string
	color     string
	quantity  int
	unitPrice kernel.Money

	isConstructed bool
}

// NewItem creates a validated order line. The unit price must clear the
// policy floor.
func NewItem(product string, category string, typeTag string, color string,
	quantity int, unitPrice kernel.Money, pricing PricingPolicy) (*Item, error) {
	var e []error

	if strings.TrimSpace(product) == "" {
		e = append(e, errs.NewValueIsRequiredError("product"))
	}
	if quantity <= 0 || quantity > maxItemQuantity {
		e = append(e, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, maxItemQuantity))
	}
	if err := pricing.ValidateUnitPrice(unitPrice); err != nil {
		e = append(e, err)
	}
	if len(e) > 0 {
		return nil, errors.Join(e...)
	}

	return &Item{
		id:            kernel.NewUUID(),
		product:       product,
		category:      category,
		typeTag:       typeTag,
		color:         color,
		quantity:      quantity,
		unitPrice:     unitPrice,
		isConstructed: true,
	}, nil
}

// RestoreItem rehydrates an item from persistence without validation.
func RestoreItem(id kernel.UUID, product string, category string, typeTag string,
	color string, quantity int, unitPrice kernel.Money) *Item {
	return &Item{
		id:            id,
		product:       product,
		category:      category,
		typeTag:       typeTag,
		color:         color,
		quantity:      quantity,
		unitPrice:     unitPrice,
		isConstructed: true,
	}
}

// ID returns the item identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// Product returns the product name.
func (i *Item) Product() string {
	return i.product
}

// Category returns the product category.
func (i *Item) Category() string {
	return i.category
}

// TypeTag returns the free-form type tag.
func (i *Item) TypeTag() string {
	return i.typeTag
}

// Color returns the requested color.
func (i *Item) Color() string {
	return i.color
}

// Quantity returns the ordered quantity.
func (i *Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price per unit.
func (i *Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// Subtotal returns quantity times unit price.
func (i *Item) Subtotal() kernel.Money {
	return i.unitPrice.MultiplyBy(i.quantity)
}

// Update replaces the line's quantity and unit price. The caller is
// responsible for recomputing the order's offer price.
func (i *Item) Update(quantity int, unitPrice kernel.Money, pricing PricingPolicy) error {
	var e []error

	if quantity <= 0 || quantity > maxItemQuantity {
		e = append(e, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, maxItemQuantity))
	}
	if err := pricing.ValidateUnitPrice(unitPrice); err != nil {
		e = append(e, err)
	}
	if len(e) > 0 {
		return errors.Join(e...)
	}

	i.quantity = quantity
	i.unitPrice = unitPrice
	return nil
}
