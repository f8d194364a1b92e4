package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vritti-hub/slicingpie/internal/auth"
	"github.com/vritti-hub/slicingpie/internal/models"
	"github.com/vritti-hub/slicingpie/internal/storage"
)

// Defaults for founders created without explicit fields, matching the
// seeded starter founder.
const (
	defaultMarketSalary = 100000.0
	defaultPaidSalary   = 0.0
)

// FounderUpdate is a sparse set of founder field changes. Nil fields are
// left untouched.
type FounderUpdate struct {
	Name         *string  `json:"name,omitempty"`
	MarketSalary *float64 `json:"marketSalary,omitempty"`
	PaidSalary   *float64 `json:"paidSalary,omitempty"`
}

func (u *FounderUpdate) validate() error {
	if u.MarketSalary != nil && *u.MarketSalary < 0 {
		return fmt.Errorf("%w: marketSalary must be >= 0", ErrValidation)
	}
	if u.PaidSalary != nil && *u.PaidSalary < 0 {
		return fmt.Errorf("%w: paidSalary must be >= 0", ErrValidation)
	}
	return nil
}

// FounderService manages founder configuration. Every mutation takes an
// explicit capability; reads do not.
type FounderService struct {
	store storage.Store
}

// NewFounderService creates a new FounderService with the given storage backend.
func NewFounderService(store storage.Store) *FounderService {
	return &FounderService{store: store}
}

// List returns all founders.
func (s *FounderService) List(ctx context.Context) ([]models.Founder, error) {
	return s.store.ListFounders(ctx)
}

// Create adds a founder. Missing fields are seeded with defaults: the
// name "Founder N" for the Nth founder, market 100000, paid 0.
func (s *FounderService) Create(ctx context.Context, capability auth.Capability, update FounderUpdate) (*models.Founder, error) {
	if !capability.CanMutateConfiguration() {
		return nil, ErrPermissionDenied
	}
	if err := update.validate(); err != nil {
		return nil, err
	}

	count, err := s.store.CountFounders(ctx)
	if err != nil {
		return nil, err
	}

	founder := &models.Founder{
		Name:         fmt.Sprintf("Founder %d", count+1),
		MarketSalary: defaultMarketSalary,
		PaidSalary:   defaultPaidSalary,
	}
	applyFounderUpdate(founder, update)

	if err := s.store.CreateFounder(ctx, founder); err != nil {
		slog.Error("CreateFounder failed", "error", err)
		return nil, err
	}
	slog.Info("Founder created", "founder_id", founder.ID, "name", founder.Name, "by", capability.UserID())
	return founder, nil
}

// Update applies a partial update to a founder. Editing salary terms
// never touches snapshots already captured in ledger entries.
func (s *FounderService) Update(ctx context.Context, capability auth.Capability, id string, update FounderUpdate) (*models.Founder, error) {
	if !capability.CanMutateConfiguration() {
		return nil, ErrPermissionDenied
	}
	if err := update.validate(); err != nil {
		return nil, err
	}

	founder, err := s.store.GetFounder(ctx, id)
	if err != nil {
		return nil, err
	}
	applyFounderUpdate(founder, update)

	if err := s.store.UpdateFounder(ctx, founder); err != nil {
		slog.Error("UpdateFounder failed", "founder_id", id, "error", err)
		return nil, err
	}
	slog.Info("Founder updated", "founder_id", id, "by", capability.UserID())
	return founder, nil
}

// Delete removes a founder, cascading to every ledger entry that
// references it. Removing the last remaining founder is rejected.
func (s *FounderService) Delete(ctx context.Context, capability auth.Capability, id string) error {
	if !capability.CanMutateConfiguration() {
		return ErrPermissionDenied
	}

	// Existence first, so an unknown id reports not-found rather than
	// tripping the last-founder guard.
	if _, err := s.store.GetFounder(ctx, id); err != nil {
		return err
	}

	count, err := s.store.CountFounders(ctx)
	if err != nil {
		return err
	}
	if count <= 1 {
		return fmt.Errorf("%w: %w", ErrValidation, ErrLastFounder)
	}

	if err := s.store.DeleteFounder(ctx, id); err != nil {
		slog.Error("DeleteFounder failed", "founder_id", id, "error", err)
		return err
	}
	slog.Info("Founder deleted", "founder_id", id, "by", capability.UserID())
	return nil
}

func applyFounderUpdate(founder *models.Founder, update FounderUpdate) {
	if update.Name != nil {
		founder.Name = *update.Name
	}
	if update.MarketSalary != nil {
		founder.MarketSalary = *update.MarketSalary
	}
	if update.PaidSalary != nil {
		founder.PaidSalary = *update.PaidSalary
	}
}
