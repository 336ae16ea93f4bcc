package order

import (
	"rescue/internal/pkg/errs"
)

// Status represents the lifecycle state of a rescue order.
// It implements a state machine with defined transitions; every transition
// checks its precondition state and returns an invalid-state error on any
// mismatch, which makes double-processing a rejected no-op.
//
// State transitions:
//
//	Created ─> AcceptedByCompany ─> RescueVehicleDispatched ─> RescueVehicleArrived
//	   ─> InspectionDone ─> PriceUpdated ─┬─> PriceConfirmed ─> InProgress
//	                                      └─> RejectedByUser       │
//	                                         Completed <───────────┘
//	                                            │
//	                                         Invoiced ─> Paid
//
// Any non-terminal state up to and including PriceConfirmed can additionally
// be cancelled by the requester (CancelledByUser) or by the provider company
// (CancelledByCompany).
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status when a requester files a rescue order.
	Created

	// AcceptedByCompany indicates a provider company has taken the order.
	AcceptedByCompany

	// RescueVehicleDispatched indicates a vehicle is on its way to the scene.
	RescueVehicleDispatched

	// RescueVehicleArrived indicates the vehicle reached the scene.
	RescueVehicleArrived

	// InspectionDone indicates the on-site inspection is finished
	// and the company can quote a final price.
	InspectionDone

	// PriceUpdated indicates the company set the final price
	// and is waiting for the requester's decision.
	PriceUpdated

	// PriceConfirmed indicates the requester accepted the final price.
	PriceConfirmed

	// RejectedByUser indicates the requester rejected the final price.
	// Terminal: no re-offer path exists for the order as priced.
	RejectedByUser

	// InProgress indicates the repair work started.
	InProgress

	// Completed indicates the repair work finished. It is passed through
	// within the complete-repair transition, which ends at Invoiced.
	Completed

	// Invoiced indicates an invoice was generated for the completed order.
	Invoiced

	// Paid indicates the invoice was settled. Terminal. The transition is
	// driven by the external billing confirmation flow.
	Paid

	// CancelledByUser indicates the requester cancelled the order. Terminal.
	CancelledByUser

	// CancelledByCompany indicates the provider company cancelled the order. Terminal.
	CancelledByCompany
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:                 "UNKNOWN",
		Created:                 "CREATED",
		AcceptedByCompany:       "ACCEPTED_BY_COMPANY",
		RescueVehicleDispatched: "RESCUE_VEHICLE_DISPATCHED",
		RescueVehicleArrived:    "RESCUE_VEHICLE_ARRIVED",
		InspectionDone:          "INSPECTION_DONE",
		PriceUpdated:            "PRICE_UPDATED",
		PriceConfirmed:          "PRICE_CONFIRMED",
		RejectedByUser:          "REJECTED_BY_USER",
		InProgress:              "IN_PROGRESS",
		Completed:               "COMPLETED",
		Invoiced:                "INVOICED",
		Paid:                    "PAID",
		CancelledByUser:         "CANCELLED_BY_USER",
		CancelledByCompany:      "CANCELLED_BY_COMPANY",
	}
}

// StatusFromString parses a canonical status name as stored in the database.
func StatusFromString(value string) (Status, error) {
	for status, name := range getStatusStrings() {
		if name == value {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidError("status")
}

// Validate checks if the Status value is one of the defined lifecycle states.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if s == Unknown {
		return errs.NewValueIsInvalidError("status")
	}
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("status")
	}
	return nil
}

// String returns the canonical name of the status, e.g. "ACCEPTED_BY_COMPANY".
// Implements fmt.Stringer; safe to call on invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no further orchestrator transition is possible.
func (s Status) IsTerminal() bool {
	switch s {
	case Paid, CancelledByUser, CancelledByCompany, RejectedByUser:
		return true
	default:
		return false
	}
}

// IsCancellable reports whether the order can still be cancelled by either side.
// Cancellation is allowed up to and including PriceConfirmed; once the repair
// is in progress the order must run to completion or be rejected.
func (s Status) IsCancellable() bool {
	switch s {
	case Created, AcceptedByCompany, RescueVehicleDispatched,
		RescueVehicleArrived, InspectionDone, PriceUpdated, PriceConfirmed:
		return true
	default:
		return false
	}
}

// transition validates the precondition and returns the new status.
func (s Status) transition(operation string, from, to Status) (Status, error) {
	if s != from {
		return Unknown, errs.NewInvalidStateError(operation, s.String())
	}
	return to, nil
}

// Accept transitions Created -> AcceptedByCompany.
func (s Status) Accept() (Status, error) {
	return s.transition("accept", Created, AcceptedByCompany)
}

// Dispatch transitions AcceptedByCompany -> RescueVehicleDispatched.
func (s Status) Dispatch() (Status, error) {
	return s.transition("dispatchVehicle", AcceptedByCompany, RescueVehicleDispatched)
}

// Arrive transitions RescueVehicleDispatched -> RescueVehicleArrived.
func (s Status) Arrive() (Status, error) {
	return s.transition("vehicleArrived", RescueVehicleDispatched, RescueVehicleArrived)
}

// FinishInspection transitions RescueVehicleArrived -> InspectionDone.
func (s Status) FinishInspection() (Status, error) {
	return s.transition("inspectionDone", RescueVehicleArrived, InspectionDone)
}

// UpdatePrice transitions InspectionDone -> PriceUpdated.
func (s Status) UpdatePrice() (Status, error) {
	return s.transition("updatePrice", InspectionDone, PriceUpdated)
}

// ConfirmPrice transitions PriceUpdated -> PriceConfirmed.
func (s Status) ConfirmPrice() (Status, error) {
	return s.transition("confirmPrice", PriceUpdated, PriceConfirmed)
}

// RejectPrice transitions PriceUpdated -> RejectedByUser.
func (s Status) RejectPrice() (Status, error) {
	return s.transition("rejectPrice", PriceUpdated, RejectedByUser)
}

// StartRepair transitions PriceConfirmed -> InProgress.
func (s Status) StartRepair() (Status, error) {
	return s.transition("startRepair", PriceConfirmed, InProgress)
}

// Complete transitions InProgress -> Completed.
func (s Status) Complete() (Status, error) {
	return s.transition("completeRepair", InProgress, Completed)
}

// Invoice transitions Completed -> Invoiced.
func (s Status) Invoice() (Status, error) {
	return s.transition("invoice", Completed, Invoiced)
}

// MarkPaid transitions Invoiced -> Paid. The orchestrator accepts this
// externally driven transition as valid but never initiates it itself.
func (s Status) MarkPaid() (Status, error) {
	return s.transition("markPaid", Invoiced, Paid)
}

// Cancel transitions any cancellable state to the cancelled status matching
// the cancelling side.
func (s Status) Cancel(byCompany bool) (Status, error) {
	operation := "cancelByUser"
	target := CancelledByUser
	if byCompany {
		operation = "cancelByCompany"
		target = CancelledByCompany
	}

	if !s.IsCancellable() {
		return Unknown, errs.NewInvalidStateError(operation, s.String())
	}
	return target, nil
}

// ValidateCanHaveFinalPrice validates the consistency between order status
// and the presence of a final price. A final price is set only when the
// status reached PriceUpdated or later.
func (s Status) ValidateCanHaveFinalPrice(hasFinalPrice bool) error {
	// Cancellation may happen before or after pricing, so cancelled orders
	// are consistent either way.
	if s == CancelledByUser || s == CancelledByCompany {
		return nil
	}

	priced := s == PriceUpdated || s == PriceConfirmed || s == RejectedByUser ||
		s == InProgress || s == Completed || s == Invoiced || s == Paid

	if hasFinalPrice && !priced {
		return errs.NewValueIsInvalidError("final price is not allowed before PRICE_UPDATED")
	}
	if !hasFinalPrice && priced {
		return errs.NewValueIsInvalidError("final price is required from PRICE_UPDATED onward")
	}
	return nil
}
