package notification

import (
	"fmt"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"
)

// Audience is the addressing target of a notification: either a whole role
// group or a single recipient within a role. Group audiences (Admin,
// Designer, Courier) carry no recipient id and are resolved to concrete
// users at dispatch time by the identity collaborator; recipient audiences
// (Customer, Manufacturer) always name one user.
type Audience struct {
	role        kernel.Role
	recipientID *kernel.UUID
}

// NewGroupAudience creates an audience addressing every user of a group
// role. Returns an error for roles that require a recipient.
func NewGroupAudience(role kernel.Role) (Audience, error) {
	if err := role.Validate(); err != nil {
		return Audience{}, err
	}
	if !role.IsGroup() {
		return Audience{}, errs.NewValueIsInvalidErrorWithCause(
			"audience",
			fmt.Errorf("%s notifications must be addressed to a recipient", role),
		)
	}
	return Audience{role: role}, nil
}

// NewRecipientAudience creates an audience addressing one user in a role.
// Returns an error for group roles.
func NewRecipientAudience(role kernel.Role, recipientID kernel.UUID) (Audience, error) {
	if err := role.Validate(); err != nil {
		return Audience{}, err
	}
	if err := recipientID.Validate(); err != nil {
		return Audience{}, err
	}
	if role.IsGroup() {
		return Audience{}, errs.NewValueIsInvalidErrorWithCause(
			"audience",
			fmt.Errorf("%s notifications are broadcast to the role group", role),
		)
	}
	id := recipientID
	return Audience{role: role, recipientID: &id}, nil
}

// RestoreAudience reconstructs an audience from persistence without
// re-deriving it. The recipient id is required exactly when the role is
// not a group role.
func RestoreAudience(role kernel.Role, recipientID *kernel.UUID) (Audience, error) {
	if recipientID == nil {
		return NewGroupAudience(role)
	}
	return NewRecipientAudience(role, *recipientID)
}

// Role returns the audience's role.
func (a Audience) Role() kernel.Role {
	return a.role
}

// RecipientID returns the addressed user's id, or nil for group audiences.
func (a Audience) RecipientID() *kernel.UUID {
	if a.recipientID == nil {
		return nil
	}
	id := *a.recipientID
	return &id
}

// IsGroup reports whether the audience is a role-group broadcast.
func (a Audience) IsGroup() bool {
	return a.recipientID == nil
}

// Validate checks that the audience was created through a constructor.
func (a Audience) Validate() error {
	if err := a.role.Validate(); err != nil {
		return err
	}
	if a.role.IsGroup() != (a.recipientID == nil) {
		return errs.NewValueIsInvalidError("audience")
	}
	return nil
}

// RoutingKey returns the message-bus routing key for the audience,
// "notifications.<role>" for groups and "notifications.<role>.<user>" for
// addressed recipients.
func (a Audience) RoutingKey() string {
	if a.recipientID == nil {
		return fmt.Sprintf("notifications.%s", a.role)
	}
	return fmt.Sprintf("notifications.%s.%s", a.role, a.recipientID)
}

// CanBeMarkedReadBy reports whether the actor may mark a notification for
// this audience as read. Group notifications are shared and may be marked
// by any user holding the role; recipient notifications only by the
// addressed user.
func (a Audience) CanBeMarkedReadBy(actor kernel.Actor) bool {
	if actor.Role() != a.role {
		return false
	}
	if a.recipientID == nil {
		return true
	}
	return a.recipientID.IsEqual(actor.ID())
}
