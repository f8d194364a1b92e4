package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vritti-hub/slicingpie/internal/auth"
	"github.com/vritti-hub/slicingpie/internal/models"
	"github.com/vritti-hub/slicingpie/internal/storage"
)

// CategoryUpdate is a sparse set of category field changes. Nil fields
// are left untouched. Category identities are fixed; there is no create
// or delete.
type CategoryUpdate struct {
	Name              *string  `json:"name,omitempty"`
	Multiplier        *float64 `json:"multiplier,omitempty"`
	CommissionPercent *float64 `json:"commissionPercent,omitempty"`
	IsAutoCalculated  *bool    `json:"isAutoCalculated,omitempty"`
	Color             *string  `json:"color,omitempty"`
	Emoji             *string  `json:"emoji,omitempty"`
}

// CategoryService manages the fixed category configuration.
type CategoryService struct {
	store storage.Store
}

// NewCategoryService creates a new CategoryService with the given storage backend.
func NewCategoryService(store storage.Store) *CategoryService {
	return &CategoryService{store: store}
}

// List returns the four categories in canonical order.
func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	return s.store.ListCategories(ctx)
}

// Update applies a partial update to a category. Existing ledger entries
// keep the snapshots captured at their creation; only entries recorded
// after this call see the new configuration.
func (s *CategoryService) Update(ctx context.Context, capability auth.Capability, id models.CategoryID, update CategoryUpdate) (*models.Category, error) {
	if !capability.CanMutateConfiguration() {
		return nil, ErrPermissionDenied
	}
	if !id.Valid() {
		return nil, fmt.Errorf("%w: unknown category %q", ErrValidation, id)
	}
	if update.Multiplier != nil && *update.Multiplier < 0 {
		return nil, fmt.Errorf("%w: multiplier must be >= 0", ErrValidation)
	}
	if update.CommissionPercent != nil {
		if id != models.CategoryRevenue {
			return nil, fmt.Errorf("%w: commissionPercent applies to revenue only", ErrValidation)
		}
		if *update.CommissionPercent < 0 || *update.CommissionPercent > 100 {
			return nil, fmt.Errorf("%w: commissionPercent must be between 0 and 100", ErrValidation)
		}
	}

	category, err := s.store.GetCategory(ctx, id)
	if err != nil {
		return nil, err
	}
	if update.Name != nil {
		category.Name = *update.Name
	}
	if update.Multiplier != nil {
		category.Multiplier = *update.Multiplier
	}
	if update.CommissionPercent != nil {
		commission := *update.CommissionPercent
		category.CommissionPercent = &commission
	}
	if update.IsAutoCalculated != nil {
		category.IsAutoCalculated = *update.IsAutoCalculated
	}
	if update.Color != nil {
		category.Color = *update.Color
	}
	if update.Emoji != nil {
		category.Emoji = *update.Emoji
	}

	if err := s.store.UpdateCategory(ctx, category); err != nil {
		slog.Error("UpdateCategory failed", "category_id", id, "error", err)
		return nil, err
	}
	slog.Info("Category updated", "category_id", id, "by", capability.UserID())
	return category, nil
}
