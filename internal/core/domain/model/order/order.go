package order

import (
	"errors"
	"time"

	"rescue/internal/core/domain/model/kernel"
	"rescue/internal/pkg/errs"
	"rescue/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder. This ensures all orders are properly validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

// Order represents a rescue-service request tracked through its lifecycle.
// It is the aggregate root that owns the order state machine; it is mutated
// exclusively through orchestrator transitions and never physically deleted
// by the normal flow (the soft lifecycle ends at a terminal status).
//
// Order invariants:
//   - Must reference a valid requester, offered service and provider company
//   - Status transitions follow the rules defined on Status
//   - The final price is set only when the status reaches PriceUpdated or later,
//     and is always strictly positive
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// requesterID references the user who filed the rescue request
	requesterID kernel.UUID

	// serviceID references the offered service being requested
	serviceID kernel.UUID

	// companyID references the provider organization handling the order
	companyID kernel.UUID

	// status is the current state in the order lifecycle
	status Status

	// estimatedPrice is the non-binding quote shown at creation (nil if none)
	estimatedPrice *kernel.Price

	// finalPrice is the negotiated price (nil until PriceUpdated)
	finalPrice *kernel.Price

	// notes carries free-text remarks from either side
	notes string

	// createdAt is the creation timestamp
	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates a new Order in Created status. This is the only way to
// create a fresh order, ensuring all business invariants are maintained.
// The estimated price is optional; when present it must be valid.
func NewOrder(
	id kernel.UUID,
	requesterID kernel.UUID,
	serviceID kernel.UUID,
	companyID kernel.UUID,
	estimatedPrice *kernel.Price,
	notes string,
) (*Order, error) {
	o := &Order{
		status:    Created,
		notes:     notes,
		createdAt: time.Now().UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setRequesterID(requesterID),
		o.setServiceID(serviceID),
		o.setCompanyID(companyID),
		o.setEstimatedPrice(estimatedPrice),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage,
// preserving its status, prices and creation time. The restored order
// behaves identically to one created through normal domain operations.
func RestoreOrder(
	id kernel.UUID,
	requesterID kernel.UUID,
	serviceID kernel.UUID,
	companyID kernel.UUID,
	status Status,
	estimatedPrice *kernel.Price,
	finalPrice *kernel.Price,
	notes string,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		notes:     notes,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setRequesterID(requesterID),
		o.setServiceID(serviceID),
		o.setCompanyID(companyID),
		o.setStatus(status),
		o.setEstimatedPrice(estimatedPrice),
		o.setFinalPrice(finalPrice),
	); err != nil {
		return nil, err
	}

	if err := o.status.ValidateCanHaveFinalPrice(o.finalPrice != nil); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
// Should be called when reconstructing orders from persistence.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// RequesterID returns the identifier of the user who filed the order.
func (o *Order) RequesterID() kernel.UUID {
	return o.requesterID
}

// ServiceID returns the identifier of the requested offered service.
func (o *Order) ServiceID() kernel.UUID {
	return o.serviceID
}

// CompanyID returns the identifier of the provider organization.
func (o *Order) CompanyID() kernel.UUID {
	return o.companyID
}

// Status returns the current lifecycle status of the order.
func (o *Order) Status() Status {
	return o.status
}

// EstimatedPrice returns the non-binding quote, or nil if none was given.
func (o *Order) EstimatedPrice() *kernel.Price {
	return o.estimatedPrice
}

// FinalPrice returns the negotiated price, or nil until the price was updated.
func (o *Order) FinalPrice() *kernel.Price {
	return o.finalPrice
}

// Notes returns the free-text remarks attached to the order.
func (o *Order) Notes() string {
	return o.notes
}

// CreatedAt returns the creation timestamp of the order.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Accept marks the order as taken by its provider company.
func (o *Order) Accept() error {
	return o.applyStatus(o.status.Accept())
}

// DispatchVehicle marks a rescue vehicle as dispatched for the order.
// The vehicle and dispatch bookkeeping are coordinated by the orchestrator
// within the same atomic transition.
func (o *Order) DispatchVehicle() error {
	return o.applyStatus(o.status.Dispatch())
}

// VehicleArrived marks the dispatched vehicle as arrived on scene.
func (o *Order) VehicleArrived() error {
	return o.applyStatus(o.status.Arrive())
}

// CompleteInspection marks the on-site inspection as finished.
func (o *Order) CompleteInspection() error {
	return o.applyStatus(o.status.FinishInspection())
}

// UpdatePrice sets the final price and moves the order to PriceUpdated.
// The price must be strictly positive; the status write and the price write
// happen together so the pricing invariant cannot be observed broken.
func (o *Order) UpdatePrice(price kernel.Price, notes string) error {
	if err := price.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.UpdatePrice()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.finalPrice = &price
	if notes != "" {
		o.notes = notes
	}
	return nil
}

// ConfirmPrice records the requester's acceptance of the final price.
func (o *Order) ConfirmPrice() error {
	return o.applyStatus(o.status.ConfirmPrice())
}

// RejectPrice records the requester's rejection of the final price.
// Terminal for the order as priced; no re-offer path exists.
func (o *Order) RejectPrice() error {
	return o.applyStatus(o.status.RejectPrice())
}

// StartRepair marks the repair work as started.
func (o *Order) StartRepair() error {
	return o.applyStatus(o.status.StartRepair())
}

// CompleteRepair finishes the repair and immediately moves the order to
// Invoiced. Completed is passed through inside the same transition, so the
// order is never persisted in Completed without its invoice.
func (o *Order) CompleteRepair() error {
	if err := o.applyStatus(o.status.Complete()); err != nil {
		return err
	}
	return o.applyStatus(o.status.Invoice())
}

// MarkPaid accepts the billing confirmation flow's Invoiced -> Paid transition.
func (o *Order) MarkPaid() error {
	return o.applyStatus(o.status.MarkPaid())
}

// Cancel cancels the order on behalf of the requester (byCompany=false)
// or the provider company (byCompany=true).
func (o *Order) Cancel(byCompany bool) error {
	return o.applyStatus(o.status.Cancel(byCompany))
}

// applyStatus commits the result of a status transition to the aggregate.
func (o *Order) applyStatus(newStatus Status, err error) error {
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setRequesterID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("requesterID", err)
	}
	o.requesterID = id
	return nil
}

func (o *Order) setServiceID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("serviceID", err)
	}
	o.serviceID = id
	return nil
}

func (o *Order) setCompanyID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("companyID", err)
	}
	o.companyID = id
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setEstimatedPrice(price *kernel.Price) error {
	if price == nil {
		return nil
	}
	if err := price.Validate(); err != nil {
		return err
	}
	o.estimatedPrice = price
	return nil
}

func (o *Order) setFinalPrice(price *kernel.Price) error {
	if price == nil {
		return nil
	}
	if err := price.Validate(); err != nil {
		return err
	}
	o.finalPrice = price
	return nil
}
