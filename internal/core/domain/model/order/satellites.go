package order

import (
	"errors"
	"strings"
	"time"

	"atelier/internal/pkg/errs"
)

// CustomerInfo is the contact snapshot captured at order creation. It is
// denormalized onto the order so that later account edits do not rewrite
// historical orders.
type CustomerInfo struct {
	name  string
	phone string
	email string
}

// NewCustomerInfo creates a validated customer contact snapshot.
func NewCustomerInfo(name string, phone string, email string) (CustomerInfo, error) {
	var e []error

	if strings.TrimSpace(name) == "" {
		e = append(e, errs.NewValueIsRequiredError("customerName"))
	}
	if strings.TrimSpace(phone) == "" {
		e = append(e, errs.NewValueIsRequiredError("customerPhone"))
	}
	if len(e) > 0 {
		return CustomerInfo{}, errors.Join(e...)
	}

	return CustomerInfo{name: name, phone: phone, email: email}, nil
}

// Name returns the customer name.
func (c CustomerInfo) Name() string {
	return c.name
}

// Phone returns the customer phone number.
func (c CustomerInfo) Phone() string {
	return c.phone
}

// Email returns the customer email address.
func (c CustomerInfo) Email() string {
	return c.email
}

// InvoiceInfo holds billing details. Corporate invoices require company,
// tax office and tax number; individual invoices carry none of them.
type InvoiceInfo struct {
	invoiceType InvoiceType
	company     string
	taxOffice   string
	taxNumber   string
}

// NewInvoiceInfo creates validated billing details for the given invoice type.
func NewInvoiceInfo(invoiceType InvoiceType, company string, taxOffice string, taxNumber string) (InvoiceInfo, error) {
	var e []error

	if err := invoiceType.Validate(); err != nil {
		e = append(e, err)
	}
	if invoiceType == InvoiceCorporate {
		if strings.TrimSpace(company) == "" {
			e = append(e, errs.NewValueIsRequiredError("company"))
		}
		if strings.TrimSpace(taxOffice) == "" {
			e = append(e, errs.NewValueIsRequiredError("taxOffice"))
		}
		if strings.TrimSpace(taxNumber) == "" {
			e = append(e, errs.NewValueIsRequiredError("taxNumber"))
		}
	}
	if len(e) > 0 {
		return InvoiceInfo{}, errors.Join(e...)
	}

	return InvoiceInfo{
		invoiceType: invoiceType,
		company:     company,
		taxOffice:   taxOffice,
		taxNumber:   taxNumber,
	}, nil
}

// Type returns the invoice type.
func (i InvoiceInfo) Type() InvoiceType {
	return i.invoiceType
}

// Company returns the billed company name.
func (i InvoiceInfo) Company() string {
	return i.company
}

// TaxOffice returns the company's tax office.
func (i InvoiceInfo) TaxOffice() string {
	return i.taxOffice
}

// TaxNumber returns the company's tax number.
func (i InvoiceInfo) TaxNumber() string {
	return i.taxNumber
}

// Address is the delivery destination. It is required for every shipping
// type except office pickup.
type Address struct {
	line     string
	district string
	city     string
}

// NewAddress creates a validated delivery address.
func NewAddress(line string, district string, city string) (Address, error) {
	var e []error

	if strings.TrimSpace(line) == "" {
		e = append(e, errs.NewValueIsRequiredError("addressLine"))
	}
	if strings.TrimSpace(city) == "" {
		e = append(e, errs.NewValueIsRequiredError("city"))
	}
	if len(e) > 0 {
		return Address{}, errors.Join(e...)
	}

	return Address{line: line, district: district, city: city}, nil
}

// Line returns the street address line.
func (a Address) Line() string {
	return a.line
}

// District returns the district.
func (a Address) District() string {
	return a.district
}

// City returns the city.
func (a Address) City() string {
	return a.city
}

// IsEmpty reports whether the address is the zero value.
func (a Address) IsEmpty() bool {
	return a == Address{}
}

// CancellationKind labels the reason category of a freeze record.
type CancellationKind int

const (
	CancellationKindUnknown CancellationKind = iota
	CancellationRejected
	CancellationCancelled
)

func (k CancellationKind) String() string {
	switch k {
	case CancellationRejected:
		return "rejected"
	case CancellationCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// CancellationRecord preserves why an order was rejected or cancelled. It
// lives only while the freeze does; reactivation discards it.
type CancellationRecord struct {
	kind      CancellationKind
	title     string
	reason    string
	createdAt time.Time
}

// NewCancellationRecord creates a validated freeze record.
func NewCancellationRecord(kind CancellationKind, title string, reason string, createdAt time.Time) (CancellationRecord, error) {
	var e []error

	if kind != CancellationRejected && kind != CancellationCancelled {
		e = append(e, errs.NewValueIsInvalidError("cancellationKind"))
	}
	if strings.TrimSpace(title) == "" {
		e = append(e, errs.NewValueIsRequiredError("title"))
	}
	if strings.TrimSpace(reason) == "" {
		e = append(e, errs.NewValueIsRequiredError("reason"))
	}
	if len(e) > 0 {
		return CancellationRecord{}, errors.Join(e...)
	}

	return CancellationRecord{kind: kind, title: title, reason: reason, createdAt: createdAt}, nil
}

// Kind returns the reason category.
func (r CancellationRecord) Kind() CancellationKind {
	return r.kind
}

// Title returns the short reason title.
func (r CancellationRecord) Title() string {
	return r.title
}

// Reason returns the free-form explanation.
func (r CancellationRecord) Reason() string {
	return r.reason
}

// CreatedAt returns when the freeze was recorded.
func (r CancellationRecord) CreatedAt() time.Time {
	return r.createdAt
}

// IsEmpty reports whether the record is the zero value.
func (r CancellationRecord) IsEmpty() bool {
	return r == CancellationRecord{}
}
