package orderrepo

import (
	"context"
	"errors"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order aggregate with its baskets, items, logos and images.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	graph := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	if err := db.Create(&graph.order).Error; err != nil {
		return err
	}
	return r.insertChildren(db, graph)
}

// Update saves an existing order, conditional on the caller's observed status
// and rejection state. When a concurrent request moved the order first, the
// write affects no rows and ErrStatusConflict is returned.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order,
	expectedStatus order.Status, expectedRejection order.RejectionState) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	graph := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&OrderDTO{}).
		Where("id = ? AND status = ? AND rejection_state = ?",
			graph.order.ID, expectedStatus.Code(), expectedRejection.Code()).
		Select("*").Omit("id", "created_at").
		Updates(&graph.order)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var stored OrderDTO
		if err := db.Select("status", "rejection_state").
			First(&stored, "id = ?", graph.order.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NewObjectNotFoundError("order", aggregate.ID().String())
			}
			return err
		}
		current, err := order.StatusFromCode(stored.Status)
		if err != nil {
			return err
		}
		return errs.NewStatusConflictError(current.String(), expectedStatus.String())
	}

	if err := r.deleteChildren(db, graph.order.ID); err != nil {
		return err
	}
	return r.insertChildren(db, graph)
}

// Get retrieves an order aggregate by ID, fully loaded.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	db := r.db.WithContext(ctx)

	var graph orderGraph
	if err := db.First(&graph.order, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	if err := db.Find(&graph.baskets, "order_id = ?", graph.order.ID).Error; err != nil {
		return nil, err
	}

	basketIDs := make([]uuid.UUID, 0, len(graph.baskets))
	for _, basket := range graph.baskets {
		basketIDs = append(basketIDs, basket.ID)
	}
	if len(basketIDs) > 0 {
		if err := db.Find(&graph.items, "basket_id IN ?", basketIDs).Error; err != nil {
			return nil, err
		}
		if err := db.Find(&graph.logos, "basket_id IN ?", basketIDs).Error; err != nil {
			return nil, err
		}
	}

	if err := db.Find(&graph.images, "order_id = ?", graph.order.ID).Error; err != nil {
		return nil, err
	}

	return toDomain(graph)
}

func (r *GormOrderRepository) insertChildren(db *gorm.DB, graph orderGraph) error {
	if len(graph.baskets) > 0 {
		if err := db.Create(&graph.baskets).Error; err != nil {
			return err
		}
	}
	if len(graph.items) > 0 {
		if err := db.Create(&graph.items).Error; err != nil {
			return err
		}
	}
	if len(graph.logos) > 0 {
		if err := db.Create(&graph.logos).Error; err != nil {
			return err
		}
	}
	if len(graph.images) > 0 {
		if err := db.Create(&graph.images).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *GormOrderRepository) deleteChildren(db *gorm.DB, orderID uuid.UUID) error {
	var basketIDs []uuid.UUID
	if err := db.Model(&BasketDTO{}).Where("order_id = ?", orderID).Pluck("id", &basketIDs).Error; err != nil {
		return err
	}
	if len(basketIDs) > 0 {
		if err := db.Delete(&ItemDTO{}, "basket_id IN ?", basketIDs).Error; err != nil {
			return err
		}
		if err := db.Delete(&LogoDTO{}, "basket_id IN ?", basketIDs).Error; err != nil {
			return err
		}
	}
	if err := db.Delete(&BasketDTO{}, "order_id = ?", orderID).Error; err != nil {
		return err
	}
	return db.Delete(&ImageDTO{}, "order_id = ?", orderID).Error
}
