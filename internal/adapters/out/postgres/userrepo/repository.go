// Package userrepo provides the identity lookup the workflow needs. User
// accounts are owned by a separate system; this repository only verifies
// that referenced identities exist with the expected role.
package userrepo

import (
	"context"
	"time"

	"atelier/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserDTO represents the database structure for user accounts.
type UserDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Role      int       `gorm:"index"`
	Name      string
	Phone     string
	Email     string
	CreatedAt time.Time
}

// TableName specifies the database table name for user rows.
func (UserDTO) TableName() string {
	return "users"
}

// GormUserRepository implements UserRepository using GORM.
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GORM user repository.
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// ExistsWithRole reports whether a user with the given ID and role exists.
func (r *GormUserRepository) ExistsWithRole(ctx context.Context, id kernel.UUID, role kernel.Role) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}
	if err := role.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&UserDTO{}).
		Where("id = ? AND role = ?", id.Bytes(), int(role)).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
