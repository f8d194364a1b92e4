package service

import (
	"context"

	"github.com/vritti-hub/slicingpie/internal/engine"
	"github.com/vritti-hub/slicingpie/internal/models"
	"github.com/vritti-hub/slicingpie/internal/storage"
)

// FounderEquity pairs a founder with their computed calculations and
// venture share.
type FounderEquity struct {
	Founder      models.Founder             `json:"founder"`
	Calculations engine.FounderCalculations `json:"calculations"`
	SharePercent float64                    `json:"sharePercent"`
}

// EquitySummary is the venture-wide equity picture: one block per
// founder plus aggregate totals.
type EquitySummary struct {
	Founders []FounderEquity      `json:"founders"`
	Totals   engine.VentureTotals `json:"totals"`
}

// EquityService recomputes the equity picture from scratch on every
// call. Nothing here is cached or stored: the engine is pure, and
// configuration edits must reflect immediately in the current-config
// display fields while leaving snapshot-based history untouched.
type EquityService struct {
	store storage.Store
}

// NewEquityService creates a new EquityService with the given storage backend.
func NewEquityService(store storage.Store) *EquityService {
	return &EquityService{store: store}
}

// Summary computes per-founder calculations, venture totals, and each
// founder's percentage share.
func (s *EquityService) Summary(ctx context.Context) (*EquitySummary, error) {
	founders, err := s.store.ListFounders(ctx)
	if err != nil {
		return nil, err
	}
	entries, err := s.store.ListEntries(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := s.store.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	calcs := make([]engine.FounderCalculations, len(founders))
	for i := range founders {
		calcs[i] = engine.ComputeFounderSlices(&founders[i], entries, categories)
	}
	totals := engine.Aggregate(calcs, len(entries))

	summary := &EquitySummary{
		Founders: make([]FounderEquity, len(founders)),
		Totals:   totals,
	}
	for i := range founders {
		summary.Founders[i] = FounderEquity{
			Founder:      founders[i],
			Calculations: calcs[i],
			SharePercent: engine.SharePercent(calcs[i].Slices.Total, totals.TotalSlices),
		}
	}
	return summary, nil
}
