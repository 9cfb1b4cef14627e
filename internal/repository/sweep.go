package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"vendora-dispatch/internal/domain"
	"vendora-dispatch/internal/ports/sweeptx"
)

// SweepRepo runs the queued-assignment sweep in a single transaction.
type SweepRepo struct {
	db *pgxpool.Pool
}

// NewSweepRepo creates a new SweepRepo.
func NewSweepRepo(db *pgxpool.Pool) *SweepRepo {
	return &SweepRepo{db: db}
}

// WithTx opens a transaction and executes fn within it.
func (r *SweepRepo) WithTx(ctx context.Context, fn func(tx sweeptx.Repository) error) (err error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	// откатываем при панике
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
	}()

	if err := fn(&TxRepo{tx: tx}); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback tx: %w (original error: %s)", rbErr, err.Error())
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// TxRepo is the sweep repository bound to an open transaction.
type TxRepo struct {
	tx pgx.Tx
}

// LockQueued locks up to limit queued assignments, oldest first. Rows locked
// by a concurrent sweep are skipped.
func (r *TxRepo) LockQueued(ctx context.Context, limit int) ([]domain.Assignment, error) {
	rows, err := r.tx.Query(ctx, `SELECT `+assignmentColumns+`
        FROM delivery_assignments
        WHERE status = $1
        ORDER BY created_at, id
        LIMIT $2
        FOR UPDATE SKIP LOCKED
    `, string(domain.AssignmentQueued), limit)
	if err != nil {
		return nil, fmt.Errorf("lock queued assignments: %w", err)
	}
	defer rows.Close()

	var out []domain.Assignment
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan queued assignment: %w", err)
		}
		out = append(out, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate queued assignments: %w", err)
	}
	return out, nil
}

// ListActiveRiders - same pool as RiderRepo.ListActive, read inside the transaction.
func (r *TxRepo) ListActiveRiders(ctx context.Context, seenSince time.Time) ([]domain.RiderSession, error) {
	rows, err := r.tx.Query(ctx, listActiveRidersSQL, seenSince)
	if err != nil {
		return nil, fmt.Errorf("list active riders: %w", err)
	}
	return collectRiders(rows)
}

// ClaimRider flips the rider to unavailable if it still is available.
func (r *TxRepo) ClaimRider(ctx context.Context, riderID string) (bool, error) {
	ct, err := r.tx.Exec(ctx, claimRiderSQL, riderID)
	if err != nil {
		return false, fmt.Errorf("claim rider %q: %w", riderID, err)
	}
	return ct.RowsAffected() > 0, nil
}

// OfferAssignment moves a queued assignment to offered for riderID.
func (r *TxRepo) OfferAssignment(ctx context.Context, assignmentID, riderID string) error {
	ct, err := r.tx.Exec(ctx, `
        UPDATE delivery_assignments
        SET rider_session_id = $2, status = $3, updated_at = now()
        WHERE id = $1 AND status = $4
    `, assignmentID, riderID, string(domain.AssignmentOffered), string(domain.AssignmentQueued))
	if err != nil {
		return fmt.Errorf("offer assignment %q: %w", assignmentID, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("queued assignment %q not found", assignmentID)
	}
	return nil
}
