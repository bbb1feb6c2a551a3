// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between the domain model and its relational
// representation across the orders, order_baskets, order_items, order_logos
// and order_images tables.
package orderrepo

import (
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/errs"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Status and state columns store short codes; monetary amounts are integer
// kurus. Satellite structures are flattened onto the row since each order has
// at most one of each.
type OrderDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Code           string     `gorm:"uniqueIndex"`
	Name           string
	Note           string
	CustomerID     uuid.UUID  `gorm:"type:uuid;index"`
	ManufacturerID *uuid.UUID `gorm:"type:uuid;index"`

	Status           string `gorm:"index"`
	RejectionState   string
	ProductionStatus string

	CustomerName  string
	CustomerPhone string
	CustomerEmail string

	InvoiceType *string
	Company     string
	TaxOffice   string
	TaxNumber   string

	ShippingType string
	AddressLine  string
	District     string
	City         string

	OfferPrice int64
	PaidAmount int64

	AdminRead    bool
	CustomerRead bool

	ProductionStartDate     *time.Time
	EstimatedProductionDate *time.Time
	ProductionDate          *time.Time

	CancellationKind      *string
	CancellationTitle     string
	CancellationReason    string
	CancellationCreatedAt *time.Time

	CreatedAt time.Time
}

// TableName specifies the database table name for order rows.
func (OrderDTO) TableName() string {
	return "orders"
}

// BasketDTO represents one basket belonging to an order.
type BasketDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID uuid.UUID `gorm:"type:uuid;index"`
}

// TableName specifies the database table name for basket rows.
func (BasketDTO) TableName() string {
	return "order_baskets"
}

// ItemDTO represents one product line inside a basket.
type ItemDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	BasketID  uuid.UUID `gorm:"type:uuid;index"`
	Product   string
	Category  string
	TypeTag   string
	Color     string
	Quantity  int
	UnitPrice int64
}

// TableName specifies the database table name for item rows.
func (ItemDTO) TableName() string {
	return "order_items"
}

// LogoDTO represents one customer logo attached to a basket. Logos have no
// domain identity; the row key is generated on save.
type LogoDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	BasketID uuid.UUID `gorm:"type:uuid;index"`
	Ref      string
	MimeType string
}

// TableName specifies the database table name for logo rows.
func (LogoDTO) TableName() string {
	return "order_logos"
}

// ImageDTO represents the current evidence image of one kind for an order.
// Each order holds at most one image per kind.
type ImageDTO struct {
	OrderID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Kind     string    `gorm:"primaryKey"`
	Ref      string
	MimeType string
}

// TableName specifies the database table name for image rows.
func (ImageDTO) TableName() string {
	return "order_images"
}

// orderGraph bundles the full relational shape of one order aggregate.
type orderGraph struct {
	order   OrderDTO
	baskets []BasketDTO
	items   []ItemDTO
	logos   []LogoDTO
	images  []ImageDTO
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) orderGraph {
	var manufacturerID *uuid.UUID
	if id := aggregate.ManufacturerID(); id != nil {
		raw := id.Bytes()
		manufacturerID = &raw
	}

	var invoiceType *string
	if aggregate.Invoice().Type() != order.InvoiceTypeUnknown {
		code := aggregate.Invoice().Type().Code()
		invoiceType = &code
	}

	var cancellationKind *string
	var cancellationCreatedAt *time.Time
	if record := aggregate.Cancellation(); !record.IsEmpty() {
		kind := record.Kind().String()
		createdAt := record.CreatedAt()
		cancellationKind = &kind
		cancellationCreatedAt = &createdAt
	}

	dto := OrderDTO{
		ID:                      aggregate.ID().Bytes(),
		Code:                    aggregate.Code(),
		Name:                    aggregate.Name(),
		Note:                    aggregate.Note(),
		CustomerID:              aggregate.CustomerID().Bytes(),
		ManufacturerID:          manufacturerID,
		Status:                  aggregate.Status().Code(),
		RejectionState:          aggregate.Rejection().Code(),
		ProductionStatus:        aggregate.ProductionStatus().Code(),
		CustomerName:            aggregate.Customer().Name(),
		CustomerPhone:           aggregate.Customer().Phone(),
		CustomerEmail:           aggregate.Customer().Email(),
		InvoiceType:             invoiceType,
		Company:                 aggregate.Invoice().Company(),
		TaxOffice:               aggregate.Invoice().TaxOffice(),
		TaxNumber:               aggregate.Invoice().TaxNumber(),
		ShippingType:            aggregate.ShippingType().Code(),
		AddressLine:             aggregate.Address().Line(),
		District:                aggregate.Address().District(),
		City:                    aggregate.Address().City(),
		OfferPrice:              aggregate.OfferPrice().Kurus(),
		PaidAmount:              aggregate.PaidAmount().Kurus(),
		AdminRead:               aggregate.AdminRead(),
		CustomerRead:            aggregate.CustomerRead(),
		ProductionStartDate:     aggregate.ProductionStartDate(),
		EstimatedProductionDate: aggregate.EstimatedProductionDate(),
		ProductionDate:          aggregate.ProductionDate(),
		CancellationKind:        cancellationKind,
		CancellationTitle:       aggregate.Cancellation().Title(),
		CancellationReason:      aggregate.Cancellation().Reason(),
		CancellationCreatedAt:   cancellationCreatedAt,
		CreatedAt:               aggregate.CreatedAt(),
	}

	graph := orderGraph{order: dto}
	for _, basket := range aggregate.Baskets() {
		graph.baskets = append(graph.baskets, BasketDTO{
			ID:      basket.ID().Bytes(),
			OrderID: dto.ID,
		})
		for _, item := range basket.Items() {
			graph.items = append(graph.items, ItemDTO{
				ID:        item.ID().Bytes(),
				BasketID:  basket.ID().Bytes(),
				Product:   item.Product(),
				Category:  item.Category(),
				TypeTag:   item.TypeTag(),
				Color:     item.Color(),
				Quantity:  item.Quantity(),
				UnitPrice: item.UnitPrice().Kurus(),
			})
		}
		for _, logo := range basket.Logos() {
			graph.logos = append(graph.logos, LogoDTO{
				ID:       uuid.New(),
				BasketID: basket.ID().Bytes(),
				Ref:      logo.Ref(),
				MimeType: logo.MimeType(),
			})
		}
	}
	for _, img := range aggregate.Images() {
		graph.images = append(graph.images, ImageDTO{
			OrderID:  dto.ID,
			Kind:     img.Kind().String(),
			Ref:      img.Ref(),
			MimeType: img.MimeType(),
		})
	}

	return graph
}

// toDomain converts a database graph back to an order aggregate using
// RestoreOrder.
func toDomain(graph orderGraph) (*order.Order, error) {
	dto := graph.order

	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var manufacturerID *kernel.UUID
	if dto.ManufacturerID != nil {
		mID, mErr := kernel.UUIDFromBytes((*dto.ManufacturerID)[:])
		if mErr != nil {
			return nil, mErr
		}
		manufacturerID = &mID
	}

	status, err := order.StatusFromCode(dto.Status)
	if err != nil {
		return nil, err
	}
	rejection, err := order.RejectionStateFromCode(dto.RejectionState)
	if err != nil {
		return nil, err
	}
	productionStatus, err := order.ProductionStatusFromCode(dto.ProductionStatus)
	if err != nil {
		return nil, err
	}
	shippingType, err := order.ShippingTypeFromCode(dto.ShippingType)
	if err != nil {
		return nil, err
	}

	customer, err := order.NewCustomerInfo(dto.CustomerName, dto.CustomerPhone, dto.CustomerEmail)
	if err != nil {
		return nil, err
	}

	var invoice order.InvoiceInfo
	if dto.InvoiceType != nil {
		invoiceType, itErr := order.InvoiceTypeFromCode(*dto.InvoiceType)
		if itErr != nil {
			return nil, itErr
		}
		invoice, err = order.NewInvoiceInfo(invoiceType, dto.Company, dto.TaxOffice, dto.TaxNumber)
		if err != nil {
			return nil, err
		}
	}

	var address order.Address
	if dto.AddressLine != "" {
		address, err = order.NewAddress(dto.AddressLine, dto.District, dto.City)
		if err != nil {
			return nil, err
		}
	}

	var cancellation order.CancellationRecord
	if dto.CancellationKind != nil {
		kind, kErr := cancellationKindFromString(*dto.CancellationKind)
		if kErr != nil {
			return nil, kErr
		}
		var createdAt time.Time
		if dto.CancellationCreatedAt != nil {
			createdAt = *dto.CancellationCreatedAt
		}
		cancellation, err = order.NewCancellationRecord(kind, dto.CancellationTitle, dto.CancellationReason, createdAt)
		if err != nil {
			return nil, err
		}
	}

	offerPrice, err := kernel.NewMoney(dto.OfferPrice)
	if err != nil {
		return nil, err
	}
	paidAmount, err := kernel.NewMoney(dto.PaidAmount)
	if err != nil {
		return nil, err
	}

	baskets, err := basketsToDomain(graph)
	if err != nil {
		return nil, err
	}

	images := make(map[order.ImageKind]order.Image, len(graph.images))
	for _, imgDTO := range graph.images {
		kind, kErr := order.ImageKindFromString(imgDTO.Kind)
		if kErr != nil {
			return nil, kErr
		}
		img, iErr := order.NewImage(kind, imgDTO.Ref, imgDTO.MimeType)
		if iErr != nil {
			return nil, iErr
		}
		images[kind] = img
	}

	return order.RestoreOrder(order.RestoreOrderParams{
		ID:                      id,
		Code:                    dto.Code,
		Name:                    dto.Name,
		Note:                    dto.Note,
		CustomerID:              customerID,
		ManufacturerID:          manufacturerID,
		Status:                  status,
		Rejection:               rejection,
		ProductionStatus:        productionStatus,
		Customer:                customer,
		Invoice:                 invoice,
		ShippingType:            shippingType,
		Address:                 address,
		OfferPrice:              offerPrice,
		PaidAmount:              paidAmount,
		AdminRead:               dto.AdminRead,
		CustomerRead:            dto.CustomerRead,
		ProductionStartDate:     dto.ProductionStartDate,
		EstimatedProductionDate: dto.EstimatedProductionDate,
		ProductionDate:          dto.ProductionDate,
		Baskets:                 baskets,
		Images:                  images,
		Cancellation:            cancellation,
		CreatedAt:               dto.CreatedAt,
	}), nil
}

func basketsToDomain(graph orderGraph) ([]*order.Basket, error) {
	itemsByBasket := make(map[uuid.UUID][]*order.Item)
	for _, itemDTO := range graph.items {
		itemID, err := kernel.UUIDFromBytes(itemDTO.ID[:])
		if err != nil {
			return nil, err
		}
		unitPrice, err := kernel.NewMoney(itemDTO.UnitPrice)
		if err != nil {
			return nil, err
		}
		item := order.RestoreItem(itemID, itemDTO.Product, itemDTO.Category,
			itemDTO.TypeTag, itemDTO.Color, itemDTO.Quantity, unitPrice)
		itemsByBasket[itemDTO.BasketID] = append(itemsByBasket[itemDTO.BasketID], item)
	}

	logosByBasket := make(map[uuid.UUID][]order.Image)
	for _, logoDTO := range graph.logos {
		logo, err := order.NewImage(order.ImageLogo, logoDTO.Ref, logoDTO.MimeType)
		if err != nil {
			return nil, err
		}
		logosByBasket[logoDTO.BasketID] = append(logosByBasket[logoDTO.BasketID], logo)
	}

	baskets := make([]*order.Basket, 0, len(graph.baskets))
	for _, basketDTO := range graph.baskets {
		basketID, err := kernel.UUIDFromBytes(basketDTO.ID[:])
		if err != nil {
			return nil, err
		}
		baskets = append(baskets, order.RestoreBasket(basketID,
			itemsByBasket[basketDTO.ID], logosByBasket[basketDTO.ID]))
	}

	return baskets, nil
}

func cancellationKindFromString(s string) (order.CancellationKind, error) {
	switch s {
	case "rejected":
		return order.CancellationRejected, nil
	case "cancelled":
		return order.CancellationCancelled, nil
	default:
		return order.CancellationKindUnknown, errs.NewValueIsInvalidError("cancellationKind")
	}
}
