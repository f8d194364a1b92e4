package models

// LedgerEntry is an immutable contribution fact: this founder contributed
// this amount in this category on this date. Entries are created through
// snapshot capture, optionally deleted, and never mutated in place.
type LedgerEntry struct {
	// ID is the unique identifier for the entry (UUID format).
	ID string `json:"id"`

	// FounderID references the contributing founder. Kept for filtering
	// and cascade deletion; calculations use FounderSnapshot instead.
	FounderID string `json:"founderId"`

	// CategoryID references the contribution category. Kept for grouping;
	// calculations use CategorySnapshot instead.
	CategoryID CategoryID `json:"categoryId"`

	// Amount is the contribution size, > 0. The unit depends on the
	// category's input type: currency for cash/revenue/expenses,
	// hours for time.
	Amount float64 `json:"amount"`

	// Description is optional free text.
	Description string `json:"description"`

	// CreatedAt is the Unix timestamp when the entry was recorded.
	// The ledger sorts newest-first on this field.
	CreatedAt int64 `json:"createdAt"`

	// FounderSnapshot holds the founder's salary terms at creation time.
	FounderSnapshot FounderSnapshot `json:"founderSnapshot"`

	// CategorySnapshot holds the category's conversion configuration at
	// creation time.
	CategorySnapshot CategorySnapshot `json:"categorySnapshot"`
}
