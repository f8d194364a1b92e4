package engine

import (
	"math"
	"reflect"
	"testing"

	"github.com/vritti-hub/slicingpie/internal/models"
)

const tolerance = 1e-9

func pct(v float64) *float64 { return &v }

// defaultCategories mirrors the seeded configuration.
func defaultCategories() []models.Category {
	return []models.Category{
		{ID: models.CategoryCash, Multiplier: 4, InputType: models.InputCurrency},
		{ID: models.CategoryTime, Multiplier: 2, InputType: models.InputHours},
		{ID: models.CategoryRevenue, Multiplier: 8, InputType: models.InputCurrency, CommissionPercent: pct(10)},
		{ID: models.CategoryExpenses, Multiplier: 4, InputType: models.InputCurrency},
	}
}

// entry builds a ledger entry with snapshots taken from the given founder
// and category values, the way snapshot capture would at creation time.
func entry(founder *models.Founder, categoryID models.CategoryID, amount, multiplier float64, commission *float64) models.LedgerEntry {
	return models.LedgerEntry{
		ID:         "e-" + string(categoryID),
		FounderID:  founder.ID,
		CategoryID: categoryID,
		Amount:     amount,
		FounderSnapshot: models.FounderSnapshot{
			MarketSalary: founder.MarketSalary,
			PaidSalary:   founder.PaidSalary,
		},
		CategorySnapshot: models.CategorySnapshot{
			Multiplier:        multiplier,
			CommissionPercent: commission,
		},
	}
}

func TestComputeFounderSlices(t *testing.T) {
	founderA := &models.Founder{ID: "f1", Name: "A", MarketSalary: 150000, PaidSalary: 5000}

	tests := []struct {
		name         string
		founder      *models.Founder
		entries      []models.LedgerEntry
		categories   []models.Category
		validateFunc func(t *testing.T, calc FounderCalculations)
	}{
		{
			name:       "zero entries yields all-zero calculations",
			founder:    founderA,
			entries:    nil,
			categories: defaultCategories(),
			validateFunc: func(t *testing.T, calc FounderCalculations) {
				if calc.Slices.Total != 0 {
					t.Errorf("total = %v, want 0", calc.Slices.Total)
				}
				if calc.Slices.Cash != 0 || calc.Slices.Time != 0 || calc.Slices.Revenue != 0 || calc.Slices.Expenses != 0 {
					t.Errorf("sub-totals = %+v, want all zero", calc.Slices)
				}
				if calc.HoursWorked != 0 || calc.CashInvested != 0 {
					t.Errorf("hoursWorked = %v, cashInvested = %v, want 0", calc.HoursWorked, calc.CashInvested)
				}
				// Display fields still reflect current config.
				wantGap := (150000.0 - 5000.0) / HoursPerMonth
				if math.Abs(calc.HourlyGap-wantGap) > tolerance {
					t.Errorf("hourlyGap = %v, want %v", calc.HourlyGap, wantGap)
				}
			},
		},
		{
			name:    "time entries valued at snapshot hourly gap",
			founder: founderA,
			entries: []models.LedgerEntry{
				entry(founderA, models.CategoryTime, 160, 2, nil),
			},
			categories: defaultCategories(),
			validateFunc: func(t *testing.T, calc FounderCalculations) {
				want := (150000.0 - 5000.0) / HoursPerMonth * 160 * 2
				if math.Abs(calc.Slices.Time-want) > tolerance {
					t.Errorf("time slices = %v, want %v", calc.Slices.Time, want)
				}
				if calc.HoursWorked != 160 {
					t.Errorf("hoursWorked = %v, want 160", calc.HoursWorked)
				}
				wantWorking := 160.0 / HoursPerMonth
				if math.Abs(calc.WorkingMonths-wantWorking) > tolerance {
					t.Errorf("workingMonths = %v, want %v", calc.WorkingMonths, wantWorking)
				}
				if math.Abs(calc.NonWorkingMonths-(TotalPeriodMonths-wantWorking)) > tolerance {
					t.Errorf("nonWorkingMonths = %v, want %v", calc.NonWorkingMonths, TotalPeriodMonths-wantWorking)
				}
			},
		},
		{
			name:    "cash slices floored at zero when draw exceeds investment",
			founder: founderA,
			entries: []models.LedgerEntry{
				entry(founderA, models.CategoryCash, 50000, 4, nil),
			},
			categories: defaultCategories(),
			validateFunc: func(t *testing.T, calc FounderCalculations) {
				// No time entries: 12 non-working months of draw dwarf the
				// 200,000 invested slices.
				if calc.Slices.Cash != 0 {
					t.Errorf("cash slices = %v, want 0 (floored)", calc.Slices.Cash)
				}
				if calc.CashInvested != 50000 {
					t.Errorf("cashInvested = %v, want 50000", calc.CashInvested)
				}
				wantDraw := TotalPeriodMonths * LivingBenefitPerMonth
				if math.Abs(calc.CashDraw-wantDraw) > tolerance {
					t.Errorf("cashDraw = %v, want %v", calc.CashDraw, wantDraw)
				}
				if calc.NetCash != 0 {
					t.Errorf("netCash = %v, want 0 (floored)", calc.NetCash)
				}
			},
		},
		{
			name:    "cash slices survive when fully worked",
			founder: founderA,
			entries: []models.LedgerEntry{
				entry(founderA, models.CategoryCash, 50000, 4, nil),
				entry(founderA, models.CategoryTime, HoursPerMonth*TotalPeriodMonths, 2, nil),
			},
			categories: defaultCategories(),
			validateFunc: func(t *testing.T, calc FounderCalculations) {
				// Full-time for the whole period: no non-working months,
				// no draw, cash slices intact.
				if math.Abs(calc.NonWorkingMonths) > tolerance {
					t.Errorf("nonWorkingMonths = %v, want 0", calc.NonWorkingMonths)
				}
				if math.Abs(calc.Slices.Cash-200000) > tolerance {
					t.Errorf("cash slices = %v, want 200000", calc.Slices.Cash)
				}
			},
		},
		{
			name:    "revenue scaled by snapshot commission and multiplier",
			founder: founderA,
			entries: []models.LedgerEntry{
				entry(founderA, models.CategoryRevenue, 100000, 8, pct(15)),
			},
			categories: defaultCategories(),
			validateFunc: func(t *testing.T, calc FounderCalculations) {
				want := 100000.0 * 15 / 100 * 8
				if math.Abs(calc.Slices.Revenue-want) > tolerance {
					t.Errorf("revenue slices = %v, want %v", calc.Slices.Revenue, want)
				}
				if calc.RevenueTotal != 100000 {
					t.Errorf("revenueTotal = %v, want 100000", calc.RevenueTotal)
				}
			},
		},
		{
			name:    "revenue falls back to 10 percent commission when snapshot has none",
			founder: founderA,
			entries: []models.LedgerEntry{
				entry(founderA, models.CategoryRevenue, 100000, 8, nil),
			},
			categories: defaultCategories(),
			validateFunc: func(t *testing.T, calc FounderCalculations) {
				want := 100000.0 * 10 / 100 * 8
				if math.Abs(calc.Slices.Revenue-want) > tolerance {
					t.Errorf("revenue slices = %v, want %v", calc.Slices.Revenue, want)
				}
			},
		},
		{
			name:    "expenses use snapshot multiplier",
			founder: founderA,
			entries: []models.LedgerEntry{
				entry(founderA, models.CategoryExpenses, 12500, 4, nil),
			},
			categories: defaultCategories(),
			validateFunc: func(t *testing.T, calc FounderCalculations) {
				if math.Abs(calc.Slices.Expenses-50000) > tolerance {
					t.Errorf("expenses slices = %v, want 50000", calc.Slices.Expenses)
				}
			},
		},
		{
			name:    "other founders' entries are ignored",
			founder: founderA,
			entries: []models.LedgerEntry{
				{
					ID: "e-other", FounderID: "f2", CategoryID: models.CategoryCash,
					Amount:           99999,
					CategorySnapshot: models.CategorySnapshot{Multiplier: 4},
				},
				entry(founderA, models.CategoryExpenses, 100, 4, nil),
			},
			categories: defaultCategories(),
			validateFunc: func(t *testing.T, calc FounderCalculations) {
				if calc.CashInvested != 0 {
					t.Errorf("cashInvested = %v, want 0 (entry belongs to f2)", calc.CashInvested)
				}
				if math.Abs(calc.Slices.Expenses-400) > tolerance {
					t.Errorf("expenses slices = %v, want 400", calc.Slices.Expenses)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calc := ComputeFounderSlices(tt.founder, tt.entries, tt.categories)
			tt.validateFunc(t, calc)
		})
	}
}

// TestScenarioFounderA reproduces the reference scenario: market 150000,
// paid 5000, one 160h time entry at multiplier 2 and one 50,000 cash entry
// at multiplier 4. Every expected value derives from the same constants the
// engine uses, so the comparison is exact.
func TestScenarioFounderA(t *testing.T) {
	founder := &models.Founder{ID: "f1", Name: "A", MarketSalary: 150000, PaidSalary: 5000}
	entries := []models.LedgerEntry{
		entry(founder, models.CategoryTime, 160, 2, nil),
		entry(founder, models.CategoryCash, 50000, 4, nil),
	}
	calc := ComputeFounderSlices(founder, entries, defaultCategories())

	hourlyGap := (150000.0 - 5000.0) / HoursPerMonth
	if calc.HourlyGap != hourlyGap {
		t.Errorf("hourlyGap = %v, want %v", calc.HourlyGap, hourlyGap)
	}

	wantTime := hourlyGap * 160 * 2
	if calc.Slices.Time != wantTime {
		t.Errorf("time slices = %v, want %v", calc.Slices.Time, wantTime)
	}

	workingMonths := math.Min(160.0/HoursPerMonth, TotalPeriodMonths)
	nonWorking := math.Max(TotalPeriodMonths-workingMonths, 0)
	wantDraw := nonWorking * LivingBenefitPerMonth
	if calc.CashDraw != wantDraw {
		t.Errorf("cashDraw = %v, want %v", calc.CashDraw, wantDraw)
	}

	// Cash slices before adjustment are 200,000; the draw at the current
	// multiplier exceeds that, so the floor applies.
	wantCash := math.Max(50000.0*4-wantDraw*4, 0)
	if calc.Slices.Cash != wantCash {
		t.Errorf("cash slices = %v, want %v", calc.Slices.Cash, wantCash)
	}

	wantTotal := wantCash + wantTime
	if calc.Slices.Total != wantTotal {
		t.Errorf("total = %v, want %v", calc.Slices.Total, wantTotal)
	}
}

// TestSnapshotImmutability checks the central invariant: an entry created
// under one configuration keeps its value after the live configuration
// changes; only new entries pick up the new multiplier.
func TestSnapshotImmutability(t *testing.T) {
	founder := &models.Founder{ID: "f1", MarketSalary: 100000, PaidSalary: 0}
	categories := defaultCategories()

	// Entry captured at multiplier 4.
	old := entry(founder, models.CategoryExpenses, 1000, 4, nil)
	before := ComputeFounderSlices(founder, []models.LedgerEntry{old}, categories)

	// Live multiplier bumped to 10.
	for i := range categories {
		if categories[i].ID == models.CategoryExpenses {
			categories[i].Multiplier = 10
		}
	}
	after := ComputeFounderSlices(founder, []models.LedgerEntry{old}, categories)
	if after.Slices.Expenses != before.Slices.Expenses {
		t.Errorf("expenses slices changed after config edit: %v -> %v", before.Slices.Expenses, after.Slices.Expenses)
	}

	// A fresh entry captured under the new configuration uses it.
	fresh := entry(founder, models.CategoryExpenses, 1000, 10, nil)
	both := ComputeFounderSlices(founder, []models.LedgerEntry{old, fresh}, categories)
	want := 1000.0*4 + 1000.0*10
	if math.Abs(both.Slices.Expenses-want) > tolerance {
		t.Errorf("expenses slices = %v, want %v", both.Slices.Expenses, want)
	}
}

// TestCashDrawUsesCurrentMultiplier pins the flagged product decision:
// the draw adjustment converts at the live cash multiplier, not the
// snapshot one.
func TestCashDrawUsesCurrentMultiplier(t *testing.T) {
	founder := &models.Founder{ID: "f1", MarketSalary: 100000, PaidSalary: 0}
	entries := []models.LedgerEntry{
		entry(founder, models.CategoryCash, 1000000, 4, nil),
	}

	categories := defaultCategories()
	for i := range categories {
		if categories[i].ID == models.CategoryCash {
			categories[i].Multiplier = 1
		}
	}

	calc := ComputeFounderSlices(founder, entries, categories)
	// Slices from the entry snapshot: 4,000,000. Draw: 12 months at the
	// living benefit, converted at the current multiplier of 1.
	want := 1000000.0*4 - TotalPeriodMonths*LivingBenefitPerMonth*1
	if math.Abs(calc.Slices.Cash-want) > tolerance {
		t.Errorf("cash slices = %v, want %v", calc.Slices.Cash, want)
	}
}

func TestCashFloorNeverNegative(t *testing.T) {
	founder := &models.Founder{ID: "f1", MarketSalary: 50000, PaidSalary: 50000}
	amounts := []float64{1, 100, 5000, 50000, 299999}
	for _, amount := range amounts {
		entries := []models.LedgerEntry{
			entry(founder, models.CategoryCash, amount, 4, nil),
		}
		calc := ComputeFounderSlices(founder, entries, defaultCategories())
		if calc.Slices.Cash < 0 {
			t.Errorf("amount %v: cash slices = %v, want >= 0", amount, calc.Slices.Cash)
		}
	}
}

func TestComputeIsIdempotent(t *testing.T) {
	founder := &models.Founder{ID: "f1", MarketSalary: 150000, PaidSalary: 5000}
	entries := []models.LedgerEntry{
		entry(founder, models.CategoryTime, 160, 2, nil),
		entry(founder, models.CategoryCash, 50000, 4, nil),
		entry(founder, models.CategoryRevenue, 80000, 8, pct(10)),
		entry(founder, models.CategoryExpenses, 7000, 4, nil),
	}
	categories := defaultCategories()

	first := ComputeFounderSlices(founder, entries, categories)
	second := ComputeFounderSlices(founder, entries, categories)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated computation differs:\nfirst  = %+v\nsecond = %+v", first, second)
	}
}

func TestMissingCategoryFallsBackToDefaults(t *testing.T) {
	founder := &models.Founder{ID: "f1", MarketSalary: 100000, PaidSalary: 0}
	entries := []models.LedgerEntry{
		entry(founder, models.CategoryCash, 400000, 4, nil),
	}

	// No category records at all: the draw adjustment falls back to the
	// default cash multiplier.
	calc := ComputeFounderSlices(founder, entries, nil)
	want := math.Max(400000.0*4-TotalPeriodMonths*LivingBenefitPerMonth*DefaultCashMultiplier, 0)
	if math.Abs(calc.Slices.Cash-want) > tolerance {
		t.Errorf("cash slices = %v, want %v", calc.Slices.Cash, want)
	}
}
