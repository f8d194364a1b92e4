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

// ListFounders retrieves all founders, oldest first.
func (s *SQLiteStore) ListFounders(ctx context.Context) ([]models.Founder, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, market_salary, paid_salary, created_at FROM founders ORDER BY created_at ASC, rowid ASC",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list founders: %w", err)
	}
	defer rows.Close()

	var founders []models.Founder
	for rows.Next() {
		var f models.Founder
		if err := rows.Scan(&f.ID, &f.Name, &f.MarketSalary, &f.PaidSalary, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan founder: %w", err)
		}
		founders = append(founders, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate founders: %w", err)
	}
	return founders, nil
}

// GetFounder retrieves a founder by ID.
func (s *SQLiteStore) GetFounder(ctx context.Context, id string) (*models.Founder, error) {
	f := &models.Founder{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, market_salary, paid_salary, created_at FROM founders WHERE id = ?",
		id,
	).Scan(&f.ID, &f.Name, &f.MarketSalary, &f.PaidSalary, &f.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: founder %s", storage.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get founder: %w", err)
	}
	return f, nil
}

// CreateFounder persists a new founder to the database.
func (s *SQLiteStore) CreateFounder(ctx context.Context, founder *models.Founder) error {
	if founder.ID == "" {
		founder.ID = uuid.New().String()
	}
	if founder.CreatedAt == 0 {
		founder.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO founders (id, name, market_salary, paid_salary, created_at) VALUES (?, ?, ?, ?, ?)",
		founder.ID, founder.Name, founder.MarketSalary, founder.PaidSalary, founder.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert founder: %w", err)
	}
	return nil
}

// UpdateFounder rewrites an existing founder row.
func (s *SQLiteStore) UpdateFounder(ctx context.Context, founder *models.Founder) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE founders SET name = ?, market_salary = ?, paid_salary = ? WHERE id = ?",
		founder.Name, founder.MarketSalary, founder.PaidSalary, founder.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update founder: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: founder %s", storage.ErrNotFound, founder.ID)
	}
	return nil
}

// DeleteFounder removes a founder. The entries foreign key cascades, so
// every ledger entry referencing the founder goes with it.
func (s *SQLiteStore) DeleteFounder(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM founders WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete founder: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: founder %s", storage.ErrNotFound, id)
	}
	return nil
}

// CountFounders returns the number of founders.
func (s *SQLiteStore) CountFounders(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM founders").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count founders: %w", err)
	}
	return count, nil
}
