package order

import (
	"fmt"

	"atelier/internal/pkg/errs"
)

// InvoiceType distinguishes individual from corporate billing. Corporate
// invoices require company billing details (see InvoiceInfo).
type InvoiceType int

const (
	InvoiceTypeUnknown InvoiceType = iota
	InvoiceIndividual
	InvoiceCorporate
)

func getInvoiceTypeCodes() map[InvoiceType]string {
	return map[InvoiceType]string{
		InvoiceIndividual: "I",
		InvoiceCorporate:  "C",
	}
}

// InvoiceTypeFromCode parses a short persistence code.
func InvoiceTypeFromCode(code string) (InvoiceType, error) {
	for t, c := range getInvoiceTypeCodes() {
		if c == code {
			return t, nil
		}
	}
	return InvoiceTypeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"invoiceType", fmt.Errorf("%q is not a valid invoice type code", code))
}

// Code returns the short persistence code of the invoice type.
func (t InvoiceType) Code() string {
	if code, ok := getInvoiceTypeCodes()[t]; ok {
		return code
	}
	return ""
}

func (t InvoiceType) String() string {
	switch t {
	case InvoiceIndividual:
		return "Individual"
	case InvoiceCorporate:
		return "Corporate"
	default:
		return "Unknown"
	}
}

// Validate checks that the invoice type is defined.
func (t InvoiceType) Validate() error {
	if _, ok := getInvoiceTypeCodes()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"invoiceType", fmt.Errorf("%d is not a valid invoice type", t))
	}
	return nil
}

// ShippingType selects how the finished product reaches the customer.
// Office pickup requires no shipping address; the other types do.
type ShippingType int

const (
	ShippingTypeUnknown ShippingType = iota
	ShippingRecipientPays
	ShippingSenderPays
	ShippingOfficePickup
)

func getShippingTypeCodes() map[ShippingType]string {
	return map[ShippingType]string{
		ShippingRecipientPays: "A",
		ShippingSenderPays:    "G",
		ShippingOfficePickup:  "T",
	}
}

// ShippingTypeFromCode parses a short persistence code.
func ShippingTypeFromCode(code string) (ShippingType, error) {
	for t, c := range getShippingTypeCodes() {
		if c == code {
			return t, nil
		}
	}
	return ShippingTypeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"shippingType", fmt.Errorf("%q is not a valid shipping type code", code))
}

// Code returns the short persistence code of the shipping type.
func (t ShippingType) Code() string {
	if code, ok := getShippingTypeCodes()[t]; ok {
		return code
	}
	return ""
}

func (t ShippingType) String() string {
	switch t {
	case ShippingRecipientPays:
		return "RecipientPays"
	case ShippingSenderPays:
		return "SenderPays"
	case ShippingOfficePickup:
		return "OfficePickup"
	default:
		return "Unknown"
	}
}

// Validate checks that the shipping type is defined.
func (t ShippingType) Validate() error {
	if _, ok := getShippingTypeCodes()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"shippingType", fmt.Errorf("%d is not a valid shipping type", t))
	}
	return nil
}

// RequiresAddress reports whether the shipping type needs a delivery
// address on the order.
func (t ShippingType) RequiresAddress() bool {
	return t != ShippingOfficePickup
}

// ProductionStatus tracks the manufacturing progress flag, independent of
// the status stage. Payment verification flips it to in progress; the
// product-ready transition completes it.
type ProductionStatus int

const (
	ProductionUnknown ProductionStatus = iota
	ProductionNotStarted
	ProductionInProgress
	ProductionCompleted
)

func getProductionStatusCodes() map[ProductionStatus]string {
	return map[ProductionStatus]string{
		ProductionNotStarted: "not_started",
		ProductionInProgress: "in_progress",
		ProductionCompleted:  "completed",
	}
}

// ProductionStatusFromCode parses a persistence code.
func ProductionStatusFromCode(code string) (ProductionStatus, error) {
	for s, c := range getProductionStatusCodes() {
		if c == code {
			return s, nil
		}
	}
	return ProductionUnknown, errs.NewValueIsInvalidErrorWithCause(
		"productionStatus", fmt.Errorf("%q is not a valid production status code", code))
}

// Code returns the persistence code of the production status.
func (s ProductionStatus) Code() string {
	if code, ok := getProductionStatusCodes()[s]; ok {
		return code
	}
	return ""
}

func (s ProductionStatus) String() string {
	switch s {
	case ProductionNotStarted:
		return "NotStarted"
	case ProductionInProgress:
		return "InProgress"
	case ProductionCompleted:
		return "Completed"
	default:
		return "Unknown"
	}
}

// Validate checks that the production status is defined.
func (s ProductionStatus) Validate() error {
	if _, ok := getProductionStatusCodes()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"productionStatus", fmt.Errorf("%d is not a valid production status", s))
	}
	return nil
}
