package models

// Founder represents a founding team member and their current
// compensation terms. Salaries are monthly amounts in a single
// fixed currency unit.
//
// The salary fields feed two places: snapshot capture when a ledger
// entry is created, and the current-configuration display fields of
// the calculation engine (hourly rates, salary gap). Editing them
// never changes snapshots already embedded in entries.
type Founder struct {
	// ID is the unique identifier for the founder (UUID format).
	ID string `json:"id"`

	// Name is the display name of the founder.
	Name string `json:"name"`

	// MarketSalary is what the founder would earn on the open market
	// per month. Must be >= 0.
	MarketSalary float64 `json:"marketSalary"`

	// PaidSalary is what the venture actually pays per month. Must be >= 0.
	PaidSalary float64 `json:"paidSalary"`

	// CreatedAt is the Unix timestamp when the founder was added.
	CreatedAt int64 `json:"createdAt"`
}

// FounderSnapshot is the part of a Founder copied into a ledger entry
// at creation time.
type FounderSnapshot struct {
	MarketSalary float64 `json:"marketSalary"`
	PaidSalary   float64 `json:"paidSalary"`
}

// Snapshot returns the founder's salary terms as they are right now.
func (f *Founder) Snapshot() FounderSnapshot {
	return FounderSnapshot{
		MarketSalary: f.MarketSalary,
		PaidSalary:   f.PaidSalary,
	}
}
