package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"vendora-dispatch/internal/domain"
)

const listActiveRidersSQL = `
        SELECT id, name, phone, lat, lng, is_available, last_seen_at
        FROM rider_sessions
        WHERE is_available
          AND last_seen_at >= $1
          AND lat IS NOT NULL
          AND lng IS NOT NULL
        ORDER BY last_seen_at DESC, id
    `

const claimRiderSQL = `
        UPDATE rider_sessions
        SET is_available = false
        WHERE id = $1 AND is_available
    `

// RiderRepo reads rider sessions and claims riders.
type RiderRepo struct {
	db *pgxpool.Pool
}

// NewRiderRepo creates a new RiderRepo.
func NewRiderRepo(db *pgxpool.Pool) *RiderRepo {
	return &RiderRepo{db: db}
}

// ListActive returns available riders seen at or after seenSince with known
// coordinates, most recently seen first.
func (r *RiderRepo) ListActive(ctx context.Context, seenSince time.Time) ([]domain.RiderSession, error) {
	rows, err := r.db.Query(ctx, listActiveRidersSQL, seenSince)
	if err != nil {
		return nil, fmt.Errorf("list active riders: %w", err)
	}
	return collectRiders(rows)
}

// Claim flips the rider to unavailable if it still is available.
func (r *RiderRepo) Claim(ctx context.Context, riderID string) (bool, error) {
	ct, err := r.db.Exec(ctx, claimRiderSQL, riderID)
	if err != nil {
		return false, fmt.Errorf("claim rider %q: %w", riderID, err)
	}
	return ct.RowsAffected() > 0, nil
}

func collectRiders(rows pgx.Rows) ([]domain.RiderSession, error) {
	defer rows.Close()

	var out []domain.RiderSession
	for rows.Next() {
		var (
			rs       domain.RiderSession
			lastSeen *time.Time
		)
		if err := rows.Scan(&rs.ID, &rs.Name, &rs.Phone, &rs.Lat, &rs.Lng, &rs.IsAvailable, &lastSeen); err != nil {
			return nil, fmt.Errorf("scan rider: %w", err)
		}
		if lastSeen != nil {
			rs.LastSeenAt = lastSeen.UTC()
		}
		out = append(out, rs)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate riders: %w", err)
	}
	return out, nil
}
