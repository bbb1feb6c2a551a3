package kernel_test

import (
	"testing"

	"atelier/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRole_Validate(t *testing.T) {
	t.Run("should accept all workflow roles", func(t *testing.T) {
		roles := []kernel.Role{
			kernel.RoleCustomer,
			kernel.RoleAdmin,
			kernel.RoleDesigner,
			kernel.RoleManufacturer,
			kernel.RoleCourier,
		}
		for _, r := range roles {
			require.NoError(t, r.Validate(), r.String())
		}
	})

	t.Run("should reject unknown role", func(t *testing.T) {
		require.Error(t, kernel.RoleUnknown.Validate())
		require.Error(t, kernel.Role(99).Validate())
	})
}

func TestRoleFromString(t *testing.T) {
	t.Run("should round-trip all role names", func(t *testing.T) {
		for _, r := range []kernel.Role{
			kernel.RoleCustomer,
			kernel.RoleAdmin,
			kernel.RoleDesigner,
			kernel.RoleManufacturer,
			kernel.RoleCourier,
		} {
			parsed, err := kernel.RoleFromString(r.String())
			require.NoError(t, err)
			assert.Equal(t, r, parsed)
		}
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		_, err := kernel.RoleFromString("Intern")
		require.Error(t, err)

		_, err = kernel.RoleFromString("Unknown")
		require.Error(t, err)
	})
}

func TestRole_IsGroup(t *testing.T) {
	t.Run("admin designer and courier are group audiences", func(t *testing.T) {
		assert.True(t, kernel.RoleAdmin.IsGroup())
		assert.True(t, kernel.RoleDesigner.IsGroup())
		assert.True(t, kernel.RoleCourier.IsGroup())
	})

	t.Run("customer and manufacturer are addressed individually", func(t *testing.T) {
		assert.False(t, kernel.RoleCustomer.IsGroup())
		assert.False(t, kernel.RoleManufacturer.IsGroup())
	})
}

func TestNewActor(t *testing.T) {
	t.Run("should create actor with valid id and role", func(t *testing.T) {
		id := kernel.NewUUID()

		actor, err := kernel.NewActor(id, kernel.RoleAdmin)

		require.NoError(t, err)
		assert.True(t, actor.ID().IsEqual(id))
		assert.Equal(t, kernel.RoleAdmin, actor.Role())
		require.NoError(t, actor.Validate())
	})

	t.Run("should fail with zero-value id", func(t *testing.T) {
		var id kernel.UUID

		_, err := kernel.NewActor(id, kernel.RoleAdmin)

		require.Error(t, err)
	})

	t.Run("should fail with unknown role", func(t *testing.T) {
		_, err := kernel.NewActor(kernel.NewUUID(), kernel.RoleUnknown)

		require.Error(t, err)
	})

	t.Run("Is should match any of the given roles", func(t *testing.T) {
		actor, _ := kernel.NewActor(kernel.NewUUID(), kernel.RoleDesigner)

		assert.True(t, actor.Is(kernel.RoleAdmin, kernel.RoleDesigner))
		assert.False(t, actor.Is(kernel.RoleAdmin, kernel.RoleCourier))
	})
}
