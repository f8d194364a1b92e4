package models

// CategoryID identifies one of the four fixed contribution categories.
// The set is closed: categories can be reconfigured but never created
// or deleted.
type CategoryID string

const (
	CategoryCash     CategoryID = "cash"
	CategoryTime     CategoryID = "time"
	CategoryRevenue  CategoryID = "revenue"
	CategoryExpenses CategoryID = "expenses"
)

// CategoryIDs lists all valid category identifiers.
var CategoryIDs = []CategoryID{CategoryCash, CategoryTime, CategoryRevenue, CategoryExpenses}

// Valid reports whether id is one of the four fixed categories.
func (id CategoryID) Valid() bool {
	switch id {
	case CategoryCash, CategoryTime, CategoryRevenue, CategoryExpenses:
		return true
	}
	return false
}

// InputType describes the unit of a category's entry amounts.
type InputType string

const (
	InputCurrency InputType = "currency"
	InputHours    InputType = "hours"
)

// Category describes one contribution type and how contributions in it
// convert to slices.
type Category struct {
	// ID is one of the four fixed category identifiers.
	ID CategoryID `json:"id"`

	// Name is the display name (e.g. "Cash Invested").
	Name string `json:"name"`

	// Multiplier scales contributions into slices. Must be >= 0.
	Multiplier float64 `json:"multiplier"`

	// InputType is the unit entry amounts are recorded in.
	InputType InputType `json:"inputType"`

	// IsAutoCalculated excludes the category from manual entry forms.
	IsAutoCalculated bool `json:"isAutoCalculated"`

	// CommissionPercent applies to revenue only (0-100). Nil for the
	// other categories.
	CommissionPercent *float64 `json:"commissionPercent,omitempty"`

	// Color and Emoji are presentation hints passed through to clients.
	// The engine ignores them.
	Color string `json:"color"`
	Emoji string `json:"emoji"`
}

// CategorySnapshot is the part of a Category copied into a ledger entry
// at creation time.
type CategorySnapshot struct {
	Multiplier        float64  `json:"multiplier"`
	CommissionPercent *float64 `json:"commissionPercent,omitempty"`
}

// Snapshot returns the category's conversion configuration as it is
// right now. The commission pointer is copied by value so later edits
// cannot reach into the snapshot.
func (c *Category) Snapshot() CategorySnapshot {
	snap := CategorySnapshot{Multiplier: c.Multiplier}
	if c.CommissionPercent != nil {
		commission := *c.CommissionPercent
		snap.CommissionPercent = &commission
	}
	return snap
}
