package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"vendora-dispatch/internal/apperr"
	"vendora-dispatch/internal/domain"
)

const assignmentColumns = `
        id, order_id, rider_session_id, vendor_id,
        pickup_lat, pickup_lng, pickup_address,
        delivery_lat, delivery_lng, delivery_address,
        distance_km, delivery_fee_kobo, estimated_duration_minutes,
        status, created_at, updated_at`

// AssignmentRepo persists delivery assignments.
type AssignmentRepo struct {
	db *pgxpool.Pool
}

// NewAssignmentRepo creates a new AssignmentRepo.
func NewAssignmentRepo(db *pgxpool.Pool) *AssignmentRepo {
	return &AssignmentRepo{db: db}
}

// GetByOrderID returns the assignment for the order or (nil, nil).
func (r *AssignmentRepo) GetByOrderID(ctx context.Context, orderID string) (*domain.Assignment, error) {
	row := r.db.QueryRow(ctx, `SELECT `+assignmentColumns+`
        FROM delivery_assignments
        WHERE order_id = $1
    `, orderID)

	a, err := scanAssignment(row)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get assignment by order %q: %w", orderID, err)
	}
	return a, nil
}

// Insert stores a new assignment. A second assignment for the same order
// fails with apperr.ErrConflict.
func (r *AssignmentRepo) Insert(ctx context.Context, a *domain.Assignment) error {
	err := r.db.QueryRow(ctx, `
        INSERT INTO delivery_assignments (`+assignmentColumns+`)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
        RETURNING created_at, updated_at
    `,
		a.ID, a.OrderID, a.RiderSessionID, a.VendorID,
		a.PickupLat, a.PickupLng, a.PickupAddress,
		a.DeliveryLat, a.DeliveryLng, a.DeliveryAddress,
		a.DistanceKm, a.DeliveryFeeKobo, a.EstimatedDurationMinutes,
		string(a.Status), a.CreatedAt, a.UpdatedAt,
	).Scan(&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if IsDuplicate(err) {
			return fmt.Errorf("%w: assignment for order %q already exists", apperr.ErrConflict, a.OrderID)
		}
		return fmt.Errorf("insert assignment: %w", err)
	}
	return nil
}

func scanAssignment(row scanner) (*domain.Assignment, error) {
	var (
		a      domain.Assignment
		status string
	)
	err := row.Scan(
		&a.ID, &a.OrderID, &a.RiderSessionID, &a.VendorID,
		&a.PickupLat, &a.PickupLng, &a.PickupAddress,
		&a.DeliveryLat, &a.DeliveryLng, &a.DeliveryAddress,
		&a.DistanceKm, &a.DeliveryFeeKobo, &a.EstimatedDurationMinutes,
		&status, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	a.Status = domain.AssignmentStatus(status)
	a.CreatedAt = a.CreatedAt.UTC()
	a.UpdatedAt = a.UpdatedAt.UTC()
	return &a, nil
}
