package kernel

import (
	"fmt"

	"atelier/internal/pkg/errs"
)

// Role identifies which side of the order workflow an actor belongs to.
// The set is closed: every authenticated user carries exactly one role,
// and every notification audience targets exactly one role.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleCustomer places orders and approves designs and payments.
	RoleCustomer

	// RoleAdmin drives the workflow between customer-facing stages.
	RoleAdmin

	// RoleDesigner produces and attaches design artwork.
	RoleDesigner

	// RoleManufacturer produces the physical goods for assigned orders.
	RoleManufacturer

	// RoleCourier handles shipping once the product is ready.
	RoleCourier
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:      "Unknown",
		RoleCustomer:     "Customer",
		RoleAdmin:        "Admin",
		RoleDesigner:     "Designer",
		RoleManufacturer: "Manufacturer",
		RoleCourier:      "Courier",
	}
}

// RoleFromString parses a role name as carried on the wire (case-sensitive,
// matching String output). Returns an error for unknown names.
func RoleFromString(s string) (Role, error) {
	for role, str := range getRoleStrings() {
		if role != RoleUnknown && str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
}

// String returns the human-readable name of the role.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "Unknown"
}

// Validate checks that the role is one of the defined workflow roles.
func (r Role) Validate() error {
	if r == RoleUnknown {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	if _, ok := getRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// IsGroup reports whether notifications for this role are broadcast to the
// whole role group rather than addressed to a single recipient.
// Customer and Manufacturer notifications always target a specific user.
func (r Role) IsGroup() bool {
	return r == RoleAdmin || r == RoleDesigner || r == RoleCourier
}

// Actor is the acting identity attached to an operation: who is performing
// it and in which role. It is supplied by the identity collaborator at the
// transport boundary and treated as opaque by the domain.
type Actor struct {
	id   UUID
	role Role
}

// NewActor creates a validated Actor.
func NewActor(id UUID, role Role) (Actor, error) {
	if err := id.Validate(); err != nil {
		return Actor{}, err
	}
	if err := role.Validate(); err != nil {
		return Actor{}, err
	}
	return Actor{id: id, role: role}, nil
}

// ID returns the acting user's identifier.
func (a Actor) ID() UUID {
	return a.id
}

// Role returns the acting user's role.
func (a Actor) Role() Role {
	return a.role
}

// Is reports whether the actor holds one of the given roles.
func (a Actor) Is(roles ...Role) bool {
	for _, r := range roles {
		if a.role == r {
			return true
		}
	}
	return false
}

// Validate checks that the actor carries a valid id and role.
func (a Actor) Validate() error {
	if err := a.id.Validate(); err != nil {
		return err
	}
	return a.role.Validate()
}
