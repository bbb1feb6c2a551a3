package order

import (
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"
)

// Basket groups the items and logo artwork that belong together within an
// order. An order has at least one basket.
type Basket struct {
	id    kernel.UUID
	items []*Item
	logos []Image

	isConstructed bool
}

// NewBasket creates an empty basket.
func NewBasket() *Basket {
	return &Basket{id: kernel.NewUUID(), isConstructed: true}
}

// RestoreBasket rehydrates a basket from persistence without validation.
func RestoreBasket(id kernel.UUID, items []*Item, logos []Image) *Basket {
	return &Basket{
		id:            id,
		items:         items,
		logos:         logos,
		isConstructed: true,
	}
}

// ID returns the basket identifier.
func (b *Basket) ID() kernel.UUID {
	return b.id
}

// Items returns the product lines in the basket.
func (b *Basket) Items() []*Item {
	return b.items
}

// Logos returns the artwork references attached to the basket.
func (b *Basket) Logos() []Image {
	return b.logos
}

// AddItem appends a product line to the basket.
func (b *Basket) AddItem(item *Item) {
	b.items = append(b.items, item)
}

// RemoveItem removes the line with the given ID and returns it. It returns
// ErrObjectNotFound when no such line exists in the basket.
func (b *Basket) RemoveItem(itemID kernel.UUID) (*Item, error) {
	for idx, item := range b.items {
		if item.ID().IsEqual(itemID) {
			b.items = append(b.items[:idx], b.items[idx+1:]...)
			return item, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("itemID", itemID)
}

// FindItem returns the line with the given ID, or ErrObjectNotFound.
func (b *Basket) FindItem(itemID kernel.UUID) (*Item, error) {
	for _, item := range b.items {
		if item.ID().IsEqual(itemID) {
			return item, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("itemID", itemID)
}

// AddLogo attaches an artwork reference to the basket.
func (b *Basket) AddLogo(logo Image) {
	b.logos = append(b.logos, logo)
}

// Total returns the sum of all item subtotals in the basket.
func (b *Basket) Total() kernel.Money {
	var total kernel.Money
	for _, item := range b.items {
		total = total.Add(item.Subtotal())
	}
	return total
}
