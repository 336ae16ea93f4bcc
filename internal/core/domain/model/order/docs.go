// Package order contains the Order aggregate and its lifecycle state machine.
// The Order is the aggregate root for a rescue-service request: it is created
// by a requester, accepted and serviced by a provider company, priced after
// an on-site inspection and finally invoiced or cancelled.
//
// Status transitions are the only way an order changes state. Every
// transition validates its precondition and returns a typed invalid-state
// error on mismatch, so a mismatched call is always a rejected no-op.
package order
