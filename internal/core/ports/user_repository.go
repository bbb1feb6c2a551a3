package ports

import (
	"context"

	"atelier/internal/core/domain/model/kernel"
)

// UserRepository is the narrow identity lookup the workflow needs. User
// accounts themselves are managed elsewhere; the engine only verifies that
// referenced identities exist and carry the expected role.
type UserRepository interface {
	// ExistsWithRole reports whether a user with the given ID and role
	// exists.
	ExistsWithRole(ctx context.Context, id kernel.UUID, role kernel.Role) (bool, error)
}
