package queries

import (
	"errors"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order with its lines, images and satellite
// details for display.
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates the query.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the requested order's identifier.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderItemResponse is one product line in the read model.
type GetOrderItemResponse struct {
	ID             string `json:"id"`
	Product        string `json:"product"`
	Category       string `json:"category"`
	TypeTag        string `json:"type_tag"`
	Color          string `json:"color"`
	Quantity       int    `json:"quantity"`
	UnitPriceKurus int64  `json:"unit_price_kurus"`
}

// GetOrderImageResponse is one evidence image in the read model.
type GetOrderImageResponse struct {
	Kind     string `json:"kind"`
	Ref      string `json:"ref"`
	MimeType string `json:"mime_type"`
}

// GetOrderQueryResponse is the read model of an order. Monetary amounts are
// integer kurus; timestamps are RFC 3339 strings or empty.
type GetOrderQueryResponse struct {
	ID                      string                 `json:"id"`
	Code                    string                 `json:"code"`
	Name                    string                 `json:"name"`
	Note                    string                 `json:"note,omitempty"`
	Status                  string                 `json:"status"`
	RejectionState          string                 `json:"rejection_state"`
	ProductionStatus        string                 `json:"production_status"`
	CustomerID              string                 `json:"customer_id"`
	ManufacturerID          string                 `json:"manufacturer_id,omitempty"`
	CustomerName            string                 `json:"customer_name"`
	CustomerPhone           string                 `json:"customer_phone"`
	CustomerEmail           string                 `json:"customer_email,omitempty"`
	InvoiceType             string                 `json:"invoice_type,omitempty"`
	Company                 string                 `json:"company,omitempty"`
	ShippingType            string                 `json:"shipping_type"`
	AddressLine             string                 `json:"address_line,omitempty"`
	District                string                 `json:"district,omitempty"`
	City                    string                 `json:"city,omitempty"`
	OfferPriceKurus         int64                  `json:"offer_price_kurus"`
	PaidAmountKurus         int64                  `json:"paid_amount_kurus"`
	ProductionStartDate     string                 `json:"production_start_date,omitempty"`
	EstimatedProductionDate string                 `json:"estimated_production_date,omitempty"`
	ProductionDate          string                 `json:"production_date,omitempty"`
	CancellationTitle       string                 `json:"cancellation_title,omitempty"`
	CancellationReason      string                 `json:"cancellation_reason,omitempty"`
	CreatedAt               string                 `json:"created_at"`
	Items                   []GetOrderItemResponse `json:"items"`
	Images                  []GetOrderImageResponse `json:"images"`
}
