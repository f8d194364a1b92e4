package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vritti-hub/slicingpie/internal/models"
	"github.com/vritti-hub/slicingpie/internal/storage"
)

const categoryColumns = "id, name, multiplier, input_type, is_auto_calculated, commission_percent, color, emoji"

func scanCategory(scan func(dest ...interface{}) error) (*models.Category, error) {
	c := &models.Category{}
	var id, inputType string
	var isAuto int
	var commission sql.NullFloat64
	if err := scan(&id, &c.Name, &c.Multiplier, &inputType, &isAuto, &commission, &c.Color, &c.Emoji); err != nil {
		return nil, err
	}
	c.ID = models.CategoryID(id)
	c.InputType = models.InputType(inputType)
	c.IsAutoCalculated = isAuto != 0
	if commission.Valid {
		v := commission.Float64
		c.CommissionPercent = &v
	}
	return c, nil
}

// ListCategories retrieves the fixed category set in its canonical order.
func (s *SQLiteStore) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	// Canonical order is the enumeration order, not alphabetical.
	for _, id := range models.CategoryIDs {
		c, err := s.GetCategory(ctx, id)
		if err != nil {
			return nil, err
		}
		categories = append(categories, *c)
	}
	return categories, nil
}

// GetCategory retrieves a category by ID.
func (s *SQLiteStore) GetCategory(ctx context.Context, id models.CategoryID) (*models.Category, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+categoryColumns+" FROM categories WHERE id = ?",
		string(id),
	)
	c, err := scanCategory(row.Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: category %s", storage.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return c, nil
}

// UpdateCategory rewrites an existing category row.
func (s *SQLiteStore) UpdateCategory(ctx context.Context, category *models.Category) error {
	var commission interface{}
	if category.CommissionPercent != nil {
		commission = *category.CommissionPercent
	}
	res, err := s.db.ExecContext(ctx,
		`UPDATE categories
		 SET name = ?, multiplier = ?, input_type = ?, is_auto_calculated = ?, commission_percent = ?, color = ?, emoji = ?
		 WHERE id = ?`,
		category.Name, category.Multiplier, string(category.InputType), boolToInt(category.IsAutoCalculated),
		commission, category.Color, category.Emoji, string(category.ID),
	)
	if err != nil {
		return fmt.Errorf("failed to update category: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: category %s", storage.ErrNotFound, category.ID)
	}
	return nil
}
