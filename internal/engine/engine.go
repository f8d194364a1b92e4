// Package engine computes founder equity from the contribution ledger.
//
// The engine is pure: ComputeFounderSlices and Aggregate have no side
// effects and are deterministic for fixed inputs, so callers recompute
// on every read rather than caching. Historical entries are valued with
// the snapshots embedded in them at creation; only the display fields
// (hourly rates, working months) and the cash-draw adjustment read the
// current configuration.
package engine

import (
	"math"

	"github.com/vritti-hub/slicingpie/internal/models"
)

const (
	// HoursPerMonth converts monthly salaries to hourly rates and hours
	// worked to working months.
	HoursPerMonth = 189.0

	// TotalPeriodMonths is the accounting period the cash draw is
	// charged over.
	TotalPeriodMonths = 12.0

	// LivingBenefitPerMonth is the assumed monthly cash consumption
	// charged against invested cash for months not covered by time
	// contribution.
	LivingBenefitPerMonth = 25000.0
)

// Default category configuration, used only when a category record is
// absent from the configuration store. A present category always wins,
// whatever its values.
const (
	DefaultCashMultiplier     = 4.0
	DefaultTimeMultiplier     = 2.0
	DefaultRevenueMultiplier  = 8.0
	DefaultRevenueCommission  = 10.0
	DefaultExpensesMultiplier = 4.0
)

// SliceBreakdown holds a founder's slices by category plus the total.
// Cash is the draw-adjusted value, floored at zero.
type SliceBreakdown struct {
	Cash     float64 `json:"cash"`
	Time     float64 `json:"time"`
	Revenue  float64 `json:"revenue"`
	Expenses float64 `json:"expenses"`
	Total    float64 `json:"total"`
}

// FounderCalculations is the computed equity picture for one founder.
// It is derived, never stored: recomputed from scratch on every read.
type FounderCalculations struct {
	FounderID string `json:"founderId"`

	// Hours and months. HoursWorked is the raw sum of time-entry
	// amounts; the months split against the accounting period drives
	// the cash draw.
	HoursWorked      float64 `json:"hoursWorked"`
	WorkingMonths    float64 `json:"workingMonths"`
	NonWorkingMonths float64 `json:"nonWorkingMonths"`

	// Hourly rates from the founder's current salary terms,
	// display only.
	HourlyMarketRate float64 `json:"hourlyMarketRate"`
	HourlyPaidRate   float64 `json:"hourlyPaidRate"`
	HourlyGap        float64 `json:"hourlyGap"`

	// Cash figures in raw currency (not slice-converted).
	CashInvested float64 `json:"cashInvested"`
	CashDraw     float64 `json:"cashDraw"`
	NetCash      float64 `json:"netCash"`

	// SalaryGapValue is the current hourly gap times hours worked,
	// informational; the time slices summed below use per-entry
	// snapshots instead.
	SalaryGapValue float64 `json:"salaryGapValue"`

	RevenueTotal  float64 `json:"revenueTotal"`
	ExpensesTotal float64 `json:"expensesTotal"`

	Slices SliceBreakdown `json:"slices"`
}

// ComputeFounderSlices turns the full entry history into one founder's
// equity figures. Entries belonging to other founders are ignored.
//
// Per-category slice values come from each entry's snapshots, so a later
// configuration edit changes only future entries. The cash draw is the
// exception flagged in the product notes: the draw converts to slices at
// the current cash multiplier, and the adjusted cash slices floor at zero.
//
// Entries are assumed to have positive amounts; that invariant is
// enforced at creation and not re-validated here.
func ComputeFounderSlices(founder *models.Founder, entries []models.LedgerEntry, categories []models.Category) FounderCalculations {
	calc := FounderCalculations{FounderID: founder.ID}

	for _, e := range entries {
		if e.FounderID != founder.ID {
			continue
		}
		switch e.CategoryID {
		case models.CategoryTime:
			snapGap := (e.FounderSnapshot.MarketSalary - e.FounderSnapshot.PaidSalary) / HoursPerMonth
			calc.Slices.Time += snapGap * e.Amount * e.CategorySnapshot.Multiplier
			calc.HoursWorked += e.Amount
		case models.CategoryCash:
			calc.Slices.Cash += e.Amount * e.CategorySnapshot.Multiplier
			calc.CashInvested += e.Amount
		case models.CategoryRevenue:
			commission := DefaultRevenueCommission
			if e.CategorySnapshot.CommissionPercent != nil {
				commission = *e.CategorySnapshot.CommissionPercent
			}
			calc.Slices.Revenue += e.Amount * commission / 100 * e.CategorySnapshot.Multiplier
			calc.RevenueTotal += e.Amount
		case models.CategoryExpenses:
			calc.Slices.Expenses += e.Amount * e.CategorySnapshot.Multiplier
			calc.ExpensesTotal += e.Amount
		}
	}

	calc.WorkingMonths = math.Min(calc.HoursWorked/HoursPerMonth, TotalPeriodMonths)
	calc.NonWorkingMonths = math.Max(TotalPeriodMonths-calc.WorkingMonths, 0)

	calc.HourlyMarketRate = founder.MarketSalary / HoursPerMonth
	calc.HourlyPaidRate = founder.PaidSalary / HoursPerMonth
	calc.HourlyGap = calc.HourlyMarketRate - calc.HourlyPaidRate
	calc.SalaryGapValue = calc.HourlyGap * calc.HoursWorked

	calc.CashDraw = calc.NonWorkingMonths * LivingBenefitPerMonth
	calc.NetCash = math.Max(calc.CashInvested-calc.CashDraw, 0)

	// Draw adjustment uses the current cash multiplier, not snapshots.
	// Draws can never push cash slices negative.
	cashMultiplier := currentMultiplier(categories, models.CategoryCash, DefaultCashMultiplier)
	calc.Slices.Cash = math.Max(calc.Slices.Cash-calc.CashDraw*cashMultiplier, 0)

	calc.Slices.Total = calc.Slices.Cash + calc.Slices.Time + calc.Slices.Revenue + calc.Slices.Expenses
	return calc
}

// currentMultiplier returns the live multiplier for a category, or the
// default when the category record is absent.
func currentMultiplier(categories []models.Category, id models.CategoryID, fallback float64) float64 {
	for i := range categories {
		if categories[i].ID == id {
			return categories[i].Multiplier
		}
	}
	return fallback
}
