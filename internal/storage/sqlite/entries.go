package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vritti-hub/slicingpie/internal/models"
	"github.com/vritti-hub/slicingpie/internal/storage"
)

// ListEntries retrieves all ledger entries newest-first. The rowid
// tiebreak keeps ordering stable among entries sharing a timestamp:
// later insertions sort first, matching head insertion.
func (s *SQLiteStore) ListEntries(ctx context.Context) ([]models.LedgerEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, founder_id, category_id, amount, description, created_at,
		        snap_market_salary, snap_paid_salary, snap_multiplier, snap_commission_percent
		 FROM entries ORDER BY created_at DESC, rowid DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	defer rows.Close()

	var entries []models.LedgerEntry
	for rows.Next() {
		var e models.LedgerEntry
		var categoryID string
		var commission sql.NullFloat64
		if err := rows.Scan(
			&e.ID, &e.FounderID, &categoryID, &e.Amount, &e.Description, &e.CreatedAt,
			&e.FounderSnapshot.MarketSalary, &e.FounderSnapshot.PaidSalary,
			&e.CategorySnapshot.Multiplier, &commission,
		); err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		e.CategoryID = models.CategoryID(categoryID)
		if commission.Valid {
			v := commission.Float64
			e.CategorySnapshot.CommissionPercent = &v
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate entries: %w", err)
	}
	return entries, nil
}

// CreateEntry persists a new ledger entry with its snapshots.
func (s *SQLiteStore) CreateEntry(ctx context.Context, entry *models.LedgerEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.CreatedAt == 0 {
		entry.CreatedAt = time.Now().Unix()
	}

	var commission interface{}
	if entry.CategorySnapshot.CommissionPercent != nil {
		commission = *entry.CategorySnapshot.CommissionPercent
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO entries (id, founder_id, category_id, amount, description, created_at,
		                      snap_market_salary, snap_paid_salary, snap_multiplier, snap_commission_percent)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.FounderID, string(entry.CategoryID), entry.Amount, entry.Description, entry.CreatedAt,
		entry.FounderSnapshot.MarketSalary, entry.FounderSnapshot.PaidSalary,
		entry.CategorySnapshot.Multiplier, commission,
	)
	if err != nil {
		return fmt.Errorf("failed to insert entry: %w", err)
	}
	return nil
}

// DeleteEntry removes a single ledger entry by ID.
func (s *SQLiteStore) DeleteEntry(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM entries WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: entry %s", storage.ErrNotFound, id)
	}
	return nil
}

// CountEntries returns the number of ledger entries.
func (s *SQLiteStore) CountEntries(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM entries").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count entries: %w", err)
	}
	return count, nil
}
