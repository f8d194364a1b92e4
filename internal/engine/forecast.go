package engine

import "github.com/vritti-hub/slicingpie/internal/models"

// ForecastAmounts holds hypothetical contribution amounts for one
// founder, keyed by category: currency for cash, revenue, and expenses,
// hours for time. Absent categories count as zero.
type ForecastAmounts map[models.CategoryID]float64

// FounderForecast projects the slices one founder would earn from
// hypothetical contributions. Unlike ledger history, a forecast has no
// snapshots to draw on, so everything is valued at the current
// configuration, including the salary gap. No cash draw applies; the
// projection is the gross slice value of the contributions themselves.
type FounderForecast struct {
	FounderID string         `json:"founderId"`
	HourlyGap float64        `json:"hourlyGap"`
	Slices    SliceBreakdown `json:"slices"`
}

// ForecastFounderSlices values hypothetical contributions for one
// founder against the current category configuration. Pure and
// deterministic, like ComputeFounderSlices.
func ForecastFounderSlices(founder *models.Founder, amounts ForecastAmounts, categories []models.Category) FounderForecast {
	f := FounderForecast{FounderID: founder.ID}
	f.HourlyGap = (founder.MarketSalary - founder.PaidSalary) / HoursPerMonth

	f.Slices.Cash = amounts[models.CategoryCash] *
		currentMultiplier(categories, models.CategoryCash, DefaultCashMultiplier)
	f.Slices.Time = f.HourlyGap * amounts[models.CategoryTime] *
		currentMultiplier(categories, models.CategoryTime, DefaultTimeMultiplier)
	f.Slices.Revenue = amounts[models.CategoryRevenue] * currentCommission(categories) / 100 *
		currentMultiplier(categories, models.CategoryRevenue, DefaultRevenueMultiplier)
	f.Slices.Expenses = amounts[models.CategoryExpenses] *
		currentMultiplier(categories, models.CategoryExpenses, DefaultExpensesMultiplier)

	f.Slices.Total = f.Slices.Cash + f.Slices.Time + f.Slices.Revenue + f.Slices.Expenses
	return f
}

// currentCommission returns the live revenue commission percent, or the
// default when the category record or its commission is absent.
func currentCommission(categories []models.Category) float64 {
	for i := range categories {
		if categories[i].ID == models.CategoryRevenue {
			if categories[i].CommissionPercent != nil {
				return *categories[i].CommissionPercent
			}
			break
		}
	}
	return DefaultRevenueCommission
}
