package commands

import (
	"errors"

	"rescue/internal/core/domain/model/kernel"
	"rescue/internal/core/domain/model/order"
	"rescue/internal/pkg/errs"
	"rescue/internal/pkg/guard"
)

// Role identifies the side an actor acts on.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleRequester is the end user who placed the order.
	RoleRequester

	// RoleManager is a manager of a provider organization.
	RoleManager
)

// String returns the canonical name of the role.
func (r Role) String() string {
	switch r {
	case RoleRequester:
		return "REQUESTER"
	case RoleManager:
		return "MANAGER"
	default:
		return "UNKNOWN"
	}
}

// RoleFromString parses a canonical role name.
func RoleFromString(value string) (Role, error) {
	switch value {
	case "REQUESTER":
		return RoleRequester, nil
	case "MANAGER":
		return RoleManager, nil
	default:
		return RoleUnknown, errs.NewValueIsInvalidError("actor role")
	}
}

// Validate checks if the Role value is valid.
func (r Role) Validate() error {
	if r != RoleRequester && r != RoleManager {
		return errs.NewValueIsInvalidError("actor role")
	}
	return nil
}

var ErrActorIsNotConstructed = errors.New(
	"Actor must be created via NewActor constructor")

// Actor is the authenticated principal executing a command. Authorization
// is checked inside every handler before any write: a requester may act
// only on their own orders, a manager only on orders of their organization.
type Actor struct { //nolint:recvcheck //using for validation
	id        kernel.UUID
	role      Role
	companyID kernel.UUID

	guard guard.ConstructorGuard
}

// NewActor creates an actor. Managers must carry the identifier of the
// organization they manage; for requesters it is ignored.
func NewActor(id kernel.UUID, role Role, companyID kernel.UUID) (Actor, error) {
	actor := Actor{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		actor.setID(id),
		actor.setRole(role),
	); err != nil {
		return Actor{}, err
	}

	if role == RoleManager {
		if err := companyID.Validate(); err != nil {
			return Actor{}, errs.NewValueIsRequiredErrorWithCause("companyID", err)
		}
		actor.companyID = companyID
	}

	return actor, nil
}

// Validate ensures the actor was created through the constructor.
func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}

// ID returns the actor's unique identifier.
func (a Actor) ID() kernel.UUID {
	return a.id
}

// Role returns the actor's role.
func (a Actor) Role() Role {
	return a.role
}

// CompanyID returns the managed organization's identifier. Zero for requesters.
func (a Actor) CompanyID() kernel.UUID {
	return a.companyID
}

// AuthorizeRequester checks that the actor is the order's requester.
func (a Actor) AuthorizeRequester(aggregate *order.Order, action string) error {
	if a.role != RoleRequester || !a.id.IsEqual(aggregate.RequesterID()) {
		return errs.NewUnauthorizedError(a.id.String(), action)
	}
	return nil
}

// AuthorizeManager checks that the actor manages the order's provider
// organization.
func (a Actor) AuthorizeManager(aggregate *order.Order, action string) error {
	if a.role != RoleManager || !a.companyID.IsEqual(aggregate.CompanyID()) {
		return errs.NewUnauthorizedError(a.id.String(), action)
	}
	return nil
}

func (a *Actor) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Actor) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	a.role = role
	return nil
}
