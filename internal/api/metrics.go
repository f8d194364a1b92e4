package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var entriesCreated = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "slicingpie_entries_created_total",
	Help: "Ledger entries recorded, by category.",
}, []string{"category"})

var equityRecomputations = promauto.NewCounter(prometheus.CounterOpts{
	Name: "slicingpie_equity_recomputations_total",
	Help: "Equity summaries recomputed from the full entry history.",
})

var forecastsComputed = promauto.NewCounter(prometheus.CounterOpts{
	Name: "slicingpie_forecasts_computed_total",
	Help: "What-if equity projections computed.",
})
