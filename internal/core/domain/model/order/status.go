package order

import (
	"fmt"

	"parcel/internal/pkg/errs"
)

// Status represents the delivery lifecycle state of an order.
// It implements a state machine over the fixed chain
//
//	Pending ──> Assigned ──> PickedUp ──> InTransit ──> Delivered
//	    │            │            │            │
//	    └────────────┴────────────┴────────────┴──> Cancelled
//
// Delivered and Cancelled are terminal. Transitions never skip a stage and
// never move backward.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status of a freshly created order,
	// waiting for a driver to be assigned.
	StatusPending

	// StatusAssigned indicates a driver has been assigned to the order.
	StatusAssigned

	// StatusPickedUp indicates the driver has collected the package.
	StatusPickedUp

	// StatusInTransit indicates the package is on its way to the recipient.
	StatusInTransit

	// StatusDelivered indicates the package reached the recipient. Terminal.
	StatusDelivered

	// StatusCancelled indicates the order was cancelled before delivery. Terminal.
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "unknown",
		StatusPending:   "pending",
		StatusAssigned:  "assigned",
		StatusPickedUp:  "picked_up",
		StatusInTransit: "in_transit",
		StatusDelivered: "delivered",
		StatusCancelled: "cancelled",
	}
}

// chainIndex returns the position of a status on the linear delivery chain,
// or -1 for statuses outside the chain (Unknown, Cancelled).
func (s Status) chainIndex() int {
	switch s {
	case StatusPending:
		return 0
	case StatusAssigned:
		return 1
	case StatusPickedUp:
		return 2
	case StatusInTransit:
		return 3
	case StatusDelivered:
		return 4
	default:
		return -1
	}
}

// DeliveryStages returns the five chain stages in order, for timeline
// projection and display.
func DeliveryStages() []Status {
	return []Status{StatusPending, StatusAssigned, StatusPickedUp, StatusInTransit, StatusDelivered}
}

// StatusFromString parses a status from its wire/storage spelling.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != StatusUnknown {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// String returns the wire spelling of the status ("picked_up" etc.).
// Safe to call on any value; invalid values yield "unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Validate checks if the Status value is one of the defined statuses.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == StatusUnknown {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// IsTerminal reports whether no further status transition may leave s.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// Assign transitions the status to Assigned.
//
// The only valid source is Pending: an order is assigned exactly once and
// reassignment goes through cancellation and re-creation.
//
// Returns (StatusAssigned, nil) on success, or an InvalidTransitionError.
func (s Status) Assign() (Status, error) {
	if s != StatusPending {
		return StatusUnknown, errs.NewInvalidTransitionError(s.String(), StatusAssigned.String())
	}
	return StatusAssigned, nil
}

// Advance transitions the status one step along the delivery chain toward
// target. Any transition that skips a stage, moves backward, leaves a
// terminal status, or targets a status outside the chain is rejected.
//
// Advancing to Assigned is not possible through this method: assignment
// carries a driver and must go through Assign.
func (s Status) Advance(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return StatusUnknown, errs.NewInvalidTransitionErrorWithCause(s.String(), target.String(), err)
	}

	from := s.chainIndex()
	to := target.chainIndex()
	if from < 0 || to <= 1 || to != from+1 {
		return StatusUnknown, errs.NewInvalidTransitionError(s.String(), target.String())
	}

	return target, nil
}

// CancelTransition transitions the status to Cancelled.
// Valid from any non-terminal status.
func (s Status) CancelTransition() (Status, error) {
	if err := s.Validate(); err != nil {
		return StatusUnknown, errs.NewInvalidTransitionErrorWithCause(s.String(), StatusCancelled.String(), err)
	}
	if s.IsTerminal() {
		return StatusUnknown, errs.NewInvalidTransitionError(s.String(), StatusCancelled.String())
	}
	return StatusCancelled, nil
}
