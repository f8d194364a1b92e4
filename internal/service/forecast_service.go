package service

import (
	"context"
	"fmt"

	"github.com/vritti-hub/slicingpie/internal/engine"
	"github.com/vritti-hub/slicingpie/internal/models"
)

// ForecastInput maps founder ids to hypothetical per-category amounts.
// Founders absent from the map project zero slices.
type ForecastInput struct {
	Amounts map[string]engine.ForecastAmounts `json:"amounts"`
}

// FounderProjection pairs a founder with their projected slices and
// share of the projected total.
type FounderProjection struct {
	Founder      models.Founder         `json:"founder"`
	Projection   engine.FounderForecast `json:"projection"`
	SharePercent float64                `json:"sharePercent"`
}

// ForecastSummary is the what-if equity picture across all founders.
// Nothing in it is persisted.
type ForecastSummary struct {
	Founders    []FounderProjection `json:"founders"`
	TotalSlices float64             `json:"totalSlices"`
}

// Forecast projects equity for hypothetical contributions valued at the
// current configuration. Any authenticated user may forecast; it reads
// config but changes nothing.
func (s *EquityService) Forecast(ctx context.Context, input ForecastInput) (*ForecastSummary, error) {
	founders, err := s.store.ListFounders(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := s.store.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	if err := validateForecastInput(input, founders, categories); err != nil {
		return nil, err
	}

	summary := &ForecastSummary{
		Founders: make([]FounderProjection, len(founders)),
	}
	for i := range founders {
		projection := engine.ForecastFounderSlices(&founders[i], input.Amounts[founders[i].ID], categories)
		summary.Founders[i] = FounderProjection{
			Founder:    founders[i],
			Projection: projection,
		}
		summary.TotalSlices += projection.Slices.Total
	}
	for i := range summary.Founders {
		summary.Founders[i].SharePercent = engine.SharePercent(
			summary.Founders[i].Projection.Slices.Total, summary.TotalSlices)
	}
	return summary, nil
}

func validateForecastInput(input ForecastInput, founders []models.Founder, categories []models.Category) error {
	known := make(map[string]bool, len(founders))
	for i := range founders {
		known[founders[i].ID] = true
	}
	auto := make(map[models.CategoryID]bool, len(categories))
	for i := range categories {
		auto[categories[i].ID] = categories[i].IsAutoCalculated
	}

	for founderID, amounts := range input.Amounts {
		if !known[founderID] {
			return fmt.Errorf("%w: unknown founder %q", ErrValidation, founderID)
		}
		for categoryID, amount := range amounts {
			if !categoryID.Valid() {
				return fmt.Errorf("%w: unknown category %q", ErrValidation, categoryID)
			}
			if auto[categoryID] {
				return fmt.Errorf("%w: category %q is auto-calculated and cannot be forecast", ErrValidation, categoryID)
			}
			if amount < 0 {
				return fmt.Errorf("%w: amount for %q must be >= 0", ErrValidation, categoryID)
			}
		}
	}
	return nil
}
