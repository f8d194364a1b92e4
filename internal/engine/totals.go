package engine

// VentureTotals folds per-founder calculations into venture-wide figures.
type VentureTotals struct {
	// TotalSlices is the sum of every founder's slice total.
	TotalSlices float64 `json:"totalSlices"`

	// TotalCash is the sum of raw cash invested, not slice-converted.
	TotalCash float64 `json:"totalCash"`

	// ActiveFounders is the founder count.
	ActiveFounders int `json:"activeFounders"`

	// TotalEntries is the ledger entry count.
	TotalEntries int `json:"totalEntries"`
}

// Aggregate computes venture totals from per-founder calculations.
// totalEntries is the full ledger size, passed separately because the
// calculations only see per-founder views.
func Aggregate(calcs []FounderCalculations, totalEntries int) VentureTotals {
	totals := VentureTotals{
		ActiveFounders: len(calcs),
		TotalEntries:   totalEntries,
	}
	for _, c := range calcs {
		totals.TotalSlices += c.Slices.Total
		totals.TotalCash += c.CashInvested
	}
	return totals
}

// SharePercent is a founder's ownership share for display:
// their slice total over the venture total, as a percentage.
// Defined as 0 when the venture has no slices at all.
func SharePercent(founderTotal, totalSlices float64) float64 {
	if totalSlices == 0 {
		return 0
	}
	return founderTotal / totalSlices * 100
}
