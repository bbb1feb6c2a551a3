package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"atelier/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const orderCacheTTL = 30 * time.Second

// GetOrderQueryHandler retrieves a single order read model from the database.
// Responses are cached in Redis for a short period to absorb repeated reads
// of the same order from polling clients.
type GetOrderQueryHandler struct {
	db    *gorm.DB
	cache *redis.Client
}

// NewGetOrderQueryHandler creates a handler for single order queries.
// The cache client is optional; when nil every read goes to the database.
func NewGetOrderQueryHandler(db *gorm.DB, cache *redis.Client) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db, cache: cache}
}

// Handle executes the query. Returns errs.ErrObjectNotFound when no order
// exists with the requested identifier.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	cacheKey := "order:" + query.OrderID().String()
	if h.cache != nil {
		if cached, err := h.cache.Get(ctx, cacheKey).Bytes(); err == nil {
			var resp GetOrderQueryResponse
			if err = json.Unmarshal(cached, &resp); err == nil {
				return resp, nil
			}
		}
	}

	resp, err := h.loadOrder(ctx, query)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	if h.cache != nil {
		if payload, err := json.Marshal(resp); err == nil {
			h.cache.Set(ctx, cacheKey, payload, orderCacheTTL)
		}
	}

	return resp, nil
}

func (h GetOrderQueryHandler) loadOrder(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	var resp GetOrderQueryResponse

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			code,
			name,
			note,
			status,
			rejection_state,
			production_status,
			customer_id,
			manufacturer_id,
			customer_name,
			customer_phone,
			customer_email,
			invoice_type,
			company,
			shipping_type,
			address_line,
			district,
			city,
			offer_price,
			paid_amount,
			production_start_date,
			estimated_production_date,
			production_date,
			cancellation_title,
			cancellation_reason,
			created_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().String()).Rows()
	if err != nil {
		return resp, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return resp, err
		}
		return resp, errs.NewObjectNotFoundError("order", query.OrderID())
	}

	var (
		id                 uuid.UUID
		customerID         uuid.UUID
		manufacturerID     sql.NullString
		note               sql.NullString
		customerEmail      sql.NullString
		invoiceType        sql.NullString
		company            sql.NullString
		addressLine        sql.NullString
		district           sql.NullString
		city               sql.NullString
		cancellationTitle  sql.NullString
		cancellationReason sql.NullString
		productionStart    sql.NullTime
		estimatedEnd       sql.NullTime
		productionDate     sql.NullTime
		createdAt          time.Time
	)

	err = rows.Scan(
		&id,
		&resp.Code,
		&resp.Name,
		&note,
		&resp.Status,
		&resp.RejectionState,
		&resp.ProductionStatus,
		&customerID,
		&manufacturerID,
		&resp.CustomerName,
		&resp.CustomerPhone,
		&customerEmail,
		&invoiceType,
		&company,
		&resp.ShippingType,
		&addressLine,
		&district,
		&city,
		&resp.OfferPriceKurus,
		&resp.PaidAmountKurus,
		&productionStart,
		&estimatedEnd,
		&productionDate,
		&cancellationTitle,
		&cancellationReason,
		&createdAt,
	)
	if err != nil {
		return resp, err
	}

	resp.ID = id.String()
	resp.CustomerID = customerID.String()
	resp.ManufacturerID = manufacturerID.String
	resp.Note = note.String
	resp.CustomerEmail = customerEmail.String
	resp.InvoiceType = invoiceType.String
	resp.Company = company.String
	resp.AddressLine = addressLine.String
	resp.District = district.String
	resp.City = city.String
	resp.CancellationTitle = cancellationTitle.String
	resp.CancellationReason = cancellationReason.String
	resp.CreatedAt = createdAt.Format(time.RFC3339)
	resp.ProductionStartDate = formatNullableDate(productionStart)
	resp.EstimatedProductionDate = formatNullableDate(estimatedEnd)
	resp.ProductionDate = formatNullableDate(productionDate)

	if err = rows.Err(); err != nil {
		return resp, err
	}

	resp.Items, err = h.loadItems(ctx, query)
	if err != nil {
		return resp, err
	}

	resp.Images, err = h.loadImages(ctx, query)
	if err != nil {
		return resp, err
	}

	return resp, nil
}

func (h GetOrderQueryHandler) loadItems(
	ctx context.Context,
	query GetOrderQuery,
) ([]GetOrderItemResponse, error) {
	items := make([]GetOrderItemResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			i.id,
			i.product,
			i.category,
			i.type_tag,
			i.color,
			i.quantity,
			i.unit_price
		FROM order_items i
		JOIN order_baskets b ON b.id = i.basket_id
		WHERE b.order_id = ?
		ORDER BY i.id
	`, query.OrderID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item GetOrderItemResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&item.Product,
			&item.Category,
			&item.TypeTag,
			&item.Color,
			&item.Quantity,
			&item.UnitPriceKurus,
		)
		if err != nil {
			return nil, err
		}

		item.ID = id.String()
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func (h GetOrderQueryHandler) loadImages(
	ctx context.Context,
	query GetOrderQuery,
) ([]GetOrderImageResponse, error) {
	images := make([]GetOrderImageResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT kind, ref, mime_type
		FROM order_images
		WHERE order_id = ?
		UNION ALL
		SELECT 'logo', l.ref, l.mime_type
		FROM order_logos l
		JOIN order_baskets b ON b.id = l.basket_id
		WHERE b.order_id = ?
	`, query.OrderID().String(), query.OrderID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var image GetOrderImageResponse

		err = rows.Scan(&image.Kind, &image.Ref, &image.MimeType)
		if err != nil {
			return nil, err
		}

		images = append(images, image)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return images, nil
}

func formatNullableDate(value sql.NullTime) string {
	if !value.Valid {
		return ""
	}
	return value.Time.Format(time.RFC3339)
}
