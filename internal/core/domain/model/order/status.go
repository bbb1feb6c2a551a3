package order

import (
	"fmt"

	"atelier/internal/pkg/errs"
)

// Status represents the lifecycle stage of an order.
// It implements a state machine with a single legal chain of transitions:
//
//	Confirmed -> DesignPhase -> DesignAdded -> PaymentPhase -> PaymentReceived
//	          -> ManufacturerSelected -> InProduction -> ProductReady
//	          -> InTransit -> Delivered
//
// Each stage is reachable only from its predecessor. The orthogonal
// rejection state (see RejectionState) can freeze an order at any stage
// without altering its status.
//
// Status is a value object. Persistence uses the short stage codes
// returned by Code; human-readable labels are presentation-layer concerns
// and are never compared against.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// Confirmed is the initial stage of a freshly created order.
	Confirmed

	// DesignPhase indicates the admin accepted the order and the
	// designers were asked to produce artwork.
	DesignPhase

	// DesignAdded indicates the design image was attached and the
	// customer can review it and submit payment.
	DesignAdded

	// PaymentPhase indicates the customer uploaded a payment proof that
	// awaits admin verification.
	PaymentPhase

	// PaymentReceived indicates the admin verified the payment.
	PaymentReceived

	// ManufacturerSelected indicates a manufacturer was assigned and the
	// production window scheduled.
	ManufacturerSelected

	// InProduction indicates the assigned manufacturer started work.
	InProduction

	// ProductReady indicates the finished product was photographed and
	// awaits courier pickup.
	ProductReady

	// InTransit indicates the shipment was handed to the courier.
	InTransit

	// Delivered is the final stage; no further transitions are allowed.
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:        "Unknown",
		Confirmed:            "Confirmed",
		DesignPhase:          "DesignPhase",
		DesignAdded:          "DesignAdded",
		PaymentPhase:         "PaymentPhase",
		PaymentReceived:      "PaymentReceived",
		ManufacturerSelected: "ManufacturerSelected",
		InProduction:         "InProduction",
		ProductReady:         "ProductReady",
		InTransit:            "InTransit",
		Delivered:            "Delivered",
	}
}

// getStatusCodes returns the short persistence codes, mirroring the
// columns of the upstream order database.
func getStatusCodes() map[Status]string {
	return map[Status]string{
		Confirmed:            "OC",
		DesignPhase:          "DP",
		DesignAdded:          "DA",
		PaymentPhase:         "P",
		PaymentReceived:      "PA",
		ManufacturerSelected: "MS",
		InProduction:         "PP",
		ProductReady:         "PR",
		InTransit:            "PIT",
		Delivered:            "PD",
	}
}

// StatusFromCode parses a short persistence code into a Status.
func StatusFromCode(code string) (Status, error) {
	for status, c := range getStatusCodes() {
		if c == code {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status code", code))
}

// String returns the stable name of the status.
// It implements fmt.Stringer and is safe on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Code returns the short persistence code of the status.
func (s Status) Code() string {
	if code, ok := getStatusCodes()[s]; ok {
		return code
	}
	return ""
}

// Validate checks that the status is one of the defined lifecycle stages.
func (s Status) Validate() error {
	if _, ok := getStatusCodes()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// Next returns the successor stage in the transition chain.
// Delivered has no successor and reports false.
func (s Status) Next() (Status, bool) {
	if err := s.Validate(); err != nil || s == Delivered {
		return StatusUnknown, false
	}
	return s + 1, true
}

// Advance validates the transition from s to its successor and returns the
// successor. A StatusConflict error is returned when s does not match the
// expected predecessor stage.
func (s Status) Advance(expected Status) (Status, error) {
	if s != expected {
		return StatusUnknown, errs.NewStatusConflictError(s.String(), expected.String())
	}
	next, ok := s.Next()
	if !ok {
		return StatusUnknown, errs.NewStatusConflictError(s.String(), expected.String())
	}
	return next, nil
}
