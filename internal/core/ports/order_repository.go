package ports

import (
	"context"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate together with its baskets, items
	// and satellite records.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order. The write is
	// conditional on the status and rejection state the caller observed
	// when loading the aggregate; when another request has moved the order
	// in the meantime the update affects no rows and ErrStatusConflict is
	// returned, leaving storage untouched.
	Update(ctx context.Context, aggregate *order.Order,
		expectedStatus order.Status, expectedRejection order.RejectionState) error

	// Get retrieves an order aggregate by its unique identifier, fully
	// loaded with baskets, items, images and satellite records.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
