package delivery

import (
	"errors"
	"fmt"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// ErrUnauthorized is the sentinel for transitions attempted by a party
// the lifecycle does not recognize for that move: not the record's
// sender, not its assigned driver, and not an administrator.
var ErrUnauthorized = errors.New("actor is not authorized")

// ErrActorIsNotConstructed is returned when attempting to use an
// improperly initialized Actor.
var ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor constructor")

// UnauthorizedError reports which actor attempted which lifecycle action.
type UnauthorizedError struct {
	ActorID kernel.UUID
	Role    Role
	Action  string
}

// NewUnauthorizedError creates an UnauthorizedError for the given actor
// and action name.
func NewUnauthorizedError(actor Actor, action string) *UnauthorizedError {
	return &UnauthorizedError{ActorID: actor.ID(), Role: actor.Role(), Action: action}
}

func (e *UnauthorizedError) Error() string {
	return fmt.Sprintf("%s: %s %s may not %s", ErrUnauthorized, e.Role, e.ActorID, e.Action)
}

func (e *UnauthorizedError) Unwrap() error {
	return ErrUnauthorized
}

// Role identifies the kind of party acting on a delivery record.
// The identity provider authenticates actors and supplies their role;
// the engine treats both as opaque trusted inputs.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleSender submits delivery requests and may cancel their own
	// records or edit receiver details before pickup.
	RoleSender

	// RoleDriver accepts available records and reports Delivered or
	// Returned outcomes for records assigned to them.
	RoleDriver

	// RoleAdmin may cancel any record.
	RoleAdmin
)

func getRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleSender: "sender",
		RoleDriver: "driver",
		RoleAdmin:  "admin",
	}
}

// Validate checks if the Role value is valid.
func (r Role) Validate() error {
	if _, ok := getRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the lowercase role name.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}

// RoleFromString parses a role name as supplied by the identity provider.
func RoleFromString(raw string) (Role, error) {
	for role, name := range getRoleStrings() {
		if name == raw {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", raw))
}

// Actor is the authenticated party performing an operation, as reported
// by the external identity provider.
type Actor struct { //nolint:recvcheck //using for validation
	id    kernel.UUID
	role  Role
	guard guard.ConstructorGuard
}

// NewActor creates an Actor from an authenticated identity and role.
func NewActor(id kernel.UUID, role Role) (Actor, error) {
	if err := errors.Join(id.Validate(), role.Validate()); err != nil {
		return Actor{}, err
	}

	return Actor{
		id:    id,
		role:  role,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the Actor was created via NewActor.
func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}

// ID returns the actor's identity.
func (a Actor) ID() kernel.UUID {
	return a.id
}

// Role returns the actor's role.
func (a Actor) Role() Role {
	return a.role
}

// IsAdmin reports whether the actor holds the administrator role.
func (a Actor) IsAdmin() bool {
	return a.role == RoleAdmin
}
