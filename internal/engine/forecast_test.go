package engine

import (
	"math"
	"testing"

	"github.com/vritti-hub/slicingpie/internal/models"
)

func TestForecastFounderSlices(t *testing.T) {
	founder := &models.Founder{ID: "f1", Name: "A", MarketSalary: 150000, PaidSalary: 5000}
	hourlyGap := (150000.0 - 5000.0) / HoursPerMonth

	tests := []struct {
		name       string
		amounts    ForecastAmounts
		categories []models.Category
		want       SliceBreakdown
	}{
		{
			name:       "no amounts yields zero projection",
			amounts:    nil,
			categories: defaultCategories(),
			want:       SliceBreakdown{},
		},
		{
			name: "all categories at seeded configuration",
			amounts: ForecastAmounts{
				models.CategoryCash:     50000,
				models.CategoryTime:     160,
				models.CategoryRevenue:  80000,
				models.CategoryExpenses: 1000,
			},
			categories: defaultCategories(),
			want: SliceBreakdown{
				Cash:     50000 * 4,
				Time:     hourlyGap * 160 * 2,
				Revenue:  80000 * 10 / 100 * 8,
				Expenses: 1000 * 4,
			},
		},
		{
			name: "edited configuration values the projection, not the defaults",
			amounts: ForecastAmounts{
				models.CategoryCash:    10000,
				models.CategoryRevenue: 1000,
			},
			categories: []models.Category{
				{ID: models.CategoryCash, Multiplier: 6},
				{ID: models.CategoryRevenue, Multiplier: 3, CommissionPercent: pct(50)},
			},
			want: SliceBreakdown{
				Cash:    10000 * 6,
				Revenue: 1000 * 50 / 100 * 3,
			},
		},
		{
			name: "absent category records fall back to defaults",
			amounts: ForecastAmounts{
				models.CategoryCash:     100,
				models.CategoryTime:     189,
				models.CategoryRevenue:  100,
				models.CategoryExpenses: 100,
			},
			categories: nil,
			want: SliceBreakdown{
				Cash:     100 * DefaultCashMultiplier,
				Time:     hourlyGap * 189 * DefaultTimeMultiplier,
				Revenue:  100 * DefaultRevenueCommission / 100 * DefaultRevenueMultiplier,
				Expenses: 100 * DefaultExpensesMultiplier,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ForecastFounderSlices(founder, tt.amounts, tt.categories)
			if got.FounderID != founder.ID {
				t.Errorf("founderId = %q, want %q", got.FounderID, founder.ID)
			}
			if math.Abs(got.HourlyGap-hourlyGap) > tolerance {
				t.Errorf("hourlyGap = %v, want %v", got.HourlyGap, hourlyGap)
			}
			check := func(name string, got, want float64) {
				if math.Abs(got-want) > tolerance {
					t.Errorf("%s = %v, want %v", name, got, want)
				}
			}
			check("cash", got.Slices.Cash, tt.want.Cash)
			check("time", got.Slices.Time, tt.want.Time)
			check("revenue", got.Slices.Revenue, tt.want.Revenue)
			check("expenses", got.Slices.Expenses, tt.want.Expenses)
			wantTotal := tt.want.Cash + tt.want.Time + tt.want.Revenue + tt.want.Expenses
			check("total", got.Slices.Total, wantTotal)
		})
	}
}

// A forecast values everything at the current configuration; no cash
// draw applies even for a founder with no projected hours.
func TestForecastHasNoCashDraw(t *testing.T) {
	founder := &models.Founder{ID: "f1", MarketSalary: 100000, PaidSalary: 0}

	got := ForecastFounderSlices(founder, ForecastAmounts{
		models.CategoryCash: 1000,
	}, defaultCategories())

	if math.Abs(got.Slices.Cash-1000*4) > tolerance {
		t.Errorf("cash = %v, want %v", got.Slices.Cash, 1000*4)
	}
}
