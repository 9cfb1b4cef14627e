package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"vendora-dispatch/internal/domain"
)

// OrderRepo reads paid orders together with their store location.
type OrderRepo struct {
	db *pgxpool.Pool
}

// NewOrderRepo creates a new OrderRepo.
func NewOrderRepo(db *pgxpool.Pool) *OrderRepo {
	return &OrderRepo{db: db}
}

// GetPaidOrder returns the order if it exists and is paid, otherwise (nil, nil).
// A store without a configured location yields nil base coordinates.
func (r *OrderRepo) GetPaidOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	row := r.db.QueryRow(ctx, `
        SELECT o.id, o.status, o.customer_name, o.customer_address,
               o.customer_lat, o.customer_lng, o.store_id, o.vendor_id,
               s.base_lat, s.base_lng, COALESCE(s.base_address, '')
        FROM orders o
        LEFT JOIN store_locations s ON s.store_id = o.store_id
        WHERE o.id = $1 AND o.status = $2
    `, orderID, domain.OrderStatusPaid)

	var o domain.Order
	err := row.Scan(
		&o.ID, &o.Status, &o.CustomerName, &o.CustomerAddress,
		&o.CustomerLat, &o.CustomerLng, &o.StoreID, &o.VendorID,
		&o.Store.BaseLat, &o.Store.BaseLng, &o.Store.BaseAddress,
	)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get paid order %q: %w", orderID, err)
	}
	o.Store.StoreID = o.StoreID
	return &o, nil
}
