package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vritti-hub/slicingpie/internal/models"
	"github.com/vritti-hub/slicingpie/internal/storage"
)

// EntryInput is the caller-supplied part of a new ledger entry. The
// snapshots are captured by the service, never by the client.
type EntryInput struct {
	FounderID   string            `json:"founderId"`
	CategoryID  models.CategoryID `json:"categoryId"`
	Amount      float64           `json:"amount"`
	Description string            `json:"description"`
}

// LedgerService manages the append/remove-only entry collection and
// performs snapshot capture on creation.
type LedgerService struct {
	store storage.Store
}

// NewLedgerService creates a new LedgerService with the given storage backend.
func NewLedgerService(store storage.Store) *LedgerService {
	return &LedgerService{store: store}
}

// List returns all ledger entries newest-first.
func (s *LedgerService) List(ctx context.Context) ([]models.LedgerEntry, error) {
	return s.store.ListEntries(ctx)
}

// Create records a contribution. The current founder and category records
// are looked up and their relevant fields copied into the entry, so later
// configuration edits cannot retroactively change this entry's value.
// Either lookup failing rejects the entry with nothing persisted.
func (s *LedgerService) Create(ctx context.Context, input EntryInput) (*models.LedgerEntry, error) {
	if input.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrValidation)
	}
	if !input.CategoryID.Valid() {
		return nil, fmt.Errorf("%w: unknown category %q", ErrValidation, input.CategoryID)
	}

	founder, err := s.store.GetFounder(ctx, input.FounderID)
	if err != nil {
		return nil, err
	}
	category, err := s.store.GetCategory(ctx, input.CategoryID)
	if err != nil {
		return nil, err
	}
	if category.IsAutoCalculated {
		return nil, fmt.Errorf("%w: category %q is auto-calculated and does not accept manual entries", ErrValidation, category.ID)
	}

	entry := &models.LedgerEntry{
		FounderID:        founder.ID,
		CategoryID:       category.ID,
		Amount:           input.Amount,
		Description:      input.Description,
		FounderSnapshot:  founder.Snapshot(),
		CategorySnapshot: category.Snapshot(),
	}
	if err := s.store.CreateEntry(ctx, entry); err != nil {
		slog.Error("CreateEntry failed", "founder_id", input.FounderID, "category_id", input.CategoryID, "error", err)
		return nil, err
	}

	slog.Info("Entry recorded",
		"entry_id", entry.ID,
		"founder_id", entry.FounderID,
		"category_id", entry.CategoryID,
		"amount", entry.Amount,
	)
	return entry, nil
}

// Delete removes a single entry. Entries are otherwise immutable.
func (s *LedgerService) Delete(ctx context.Context, id string) error {
	if err := s.store.DeleteEntry(ctx, id); err != nil {
		slog.Error("DeleteEntry failed", "entry_id", id, "error", err)
		return err
	}
	slog.Info("Entry deleted", "entry_id", id)
	return nil
}
