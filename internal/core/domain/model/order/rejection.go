package order

import (
	"fmt"

	"atelier/internal/pkg/errs"
)

// RejectionState is the orthogonal lifecycle flag of an order. It can
// freeze the order at any status stage without altering the stage itself:
//
//	Active -> PendingCancellation -> Active      (customer asks, admin resolves)
//	Active -> Rejected            -> Active      (admin rejects, may reactivate)
//	Active -> Cancelled           -> Active      (admin cancels, may reactivate)
//
// Every forward status transition requires the Active state; a frozen
// order answers all of them with a status conflict.
type RejectionState int

const (
	// RejectionUnknown represents an invalid or undefined state.
	RejectionUnknown RejectionState = iota

	// RejectionActive is the normal working state.
	RejectionActive

	// RejectionPending marks an order with an open cancellation request
	// awaiting an admin decision.
	RejectionPending

	// RejectionRejected marks an order refused by the admin.
	RejectionRejected

	// RejectionCancelled marks a cancelled order.
	RejectionCancelled
)

func getRejectionStateStrings() map[RejectionState]string {
	return map[RejectionState]string{
		RejectionUnknown:   "Unknown",
		RejectionActive:    "Active",
		RejectionPending:   "PendingCancellation",
		RejectionRejected:  "Rejected",
		RejectionCancelled: "Cancelled",
	}
}

func getRejectionStateCodes() map[RejectionState]string {
	return map[RejectionState]string{
		RejectionActive:    "A",
		RejectionPending:   "P",
		RejectionRejected:  "R",
		RejectionCancelled: "C",
	}
}

// RejectionStateFromCode parses a short persistence code.
func RejectionStateFromCode(code string) (RejectionState, error) {
	for state, c := range getRejectionStateCodes() {
		if c == code {
			return state, nil
		}
	}
	return RejectionUnknown, errs.NewValueIsInvalidErrorWithCause(
		"rejectionState", fmt.Errorf("%q is not a valid rejection state code", code))
}

// String returns the stable name of the state.
func (s RejectionState) String() string {
	if str, ok := getRejectionStateStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Code returns the short persistence code of the state.
func (s RejectionState) Code() string {
	if code, ok := getRejectionStateCodes()[s]; ok {
		return code
	}
	return ""
}

// Validate checks that the state is one of the defined values.
func (s RejectionState) Validate() error {
	if _, ok := getRejectionStateCodes()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"rejectionState", fmt.Errorf("%d is not a valid rejection state", s))
	}
	return nil
}

// IsFrozen reports whether the state blocks forward status transitions.
func (s RejectionState) IsFrozen() bool {
	return s != RejectionActive
}
